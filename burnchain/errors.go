package burnchain

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors of the burnchain core. Together with the wrapper types
// below they form the closed failure taxonomy of this package; callers
// match them with errors.Is / errors.As.
var (
	// ErrUnsupportedBurnchain is returned when a (chain, network) pair is
	// not a supported burn chain. Configuration error; the caller must
	// not proceed.
	ErrUnsupportedBurnchain = errors.New("Unsupported burnchain")

	// ErrParse is returned on malformed chain data. The affected block or
	// transaction is discarded and processing continues.
	ErrParse = errors.New("Parse error")

	// ErrMissingHeaders is returned when burn-chain headers are absent.
	// The caller resynchronizes.
	ErrMissingHeaders = errors.New("Missing block headers")

	// ErrMissingParentBlock is returned when a block's parent has not
	// been processed. The caller resynchronizes.
	ErrMissingParentBlock = errors.New("Missing parent block")

	// ErrThreadChannel is returned when an internal signaling channel is
	// broken. Fatal to the current session.
	ErrThreadChannel = errors.New("Error in thread channel")

	// ErrBurnchainPeerBroken is returned when a remote burn-chain peer
	// violated protocol invariants. The peer is dropped or penalized.
	ErrBurnchainPeerBroken = errors.New("Remote burnchain peer has misbehaved")

	// ErrTrySyncAgain is returned on a transient sync condition; the
	// whole sync step is retried.
	ErrTrySyncAgain = errors.New("Try synchronizing again")

	// ErrCoordinatorClosed is returned when the chains coordinator
	// channel hung up. Fatal to the current session.
	ErrCoordinatorClosed = errors.New("ChainsCoordinator channel hung up")
)

// BitcoinError is a failure of the underlying bitcoin chain driver.
type BitcoinError struct {
	Message string
}

func (e *BitcoinError) Error() string {
	return e.Message
}

// DownloadError is a failure to download burn-chain data. Retry policy is
// the caller's.
type DownloadError struct {
	Message string
}

func (e *DownloadError) Error() string {
	return e.Message
}

// DBError wraps a failure of the sortition database. The display text is
// exactly the wrapped error's, so nothing is lost crossing the layer
// boundary.
type DBError struct {
	Err error
}

func (e *DBError) Error() string {
	return e.Err.Error()
}

func (e *DBError) Unwrap() error {
	return e.Err
}

// FSError wraps a filesystem failure from the OS.
type FSError struct {
	Err error
}

func (e *FSError) Error() string {
	return e.Err.Error()
}

func (e *FSError) Unwrap() error {
	return e.Err
}

// OpError wraps the structural or semantic validation failure of a single
// operation. Only that operation is rejected; the rest of the block keeps
// processing.
type OpError struct {
	Err error
}

func (e *OpError) Error() string {
	return e.Err.Error()
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// UnknownBlockError is returned when a referenced burn block hash is not
// locally present. The caller must fetch the block first.
type UnknownBlockError struct {
	Hash BurnchainHeaderHash
}

func (e *UnknownBlockError) Error() string {
	return fmt.Sprintf("Unknown burnchain block %s", e.Hash)
}

// NonCanonicalPoxIDError is returned when a claimed PoX id is not a
// descendant of the canonical one. Consensus violation; the claim is
// rejected.
type NonCanonicalPoxIDError struct {
	Canonical PoxID
	Claimed   PoxID
}

func (e *NonCanonicalPoxIDError) Error() string {
	return fmt.Sprintf("%s is not a descendant of the canonical parent PoxId: %s",
		e.Claimed, e.Canonical)
}
