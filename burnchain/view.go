package burnchain

import (
	"sort"

	"github.com/pkg/errors"
)

// MaxNeighborBlockDelay is how many burn blocks behind the stable tip a
// peer may lag and still be considered a neighbor.
const MaxNeighborBlockDelay uint64 = 25

// BurnchainView is a snapshot of a node's view of the burn chain: the tip,
// the stable tip, and the hashes of the recent blocks in between. Two peers
// exchange views during a handshake and compare the hash maps; a mismatch
// at some height signals divergence below it.
type BurnchainView struct {
	// BurnBlockHeight is the last-seen block height, at the chain tip.
	BurnBlockHeight uint64

	// BurnBlockHash is the last-seen burn block hash.
	BurnBlockHash BurnchainHeaderHash

	// BurnStableBlockHeight is the latest stable block height, e.g. the
	// chain tip minus the stable confirmation depth.
	BurnStableBlockHeight uint64

	// BurnStableBlockHash is the latest stable burn block hash.
	BurnStableBlockHash BurnchainHeaderHash

	// LastBurnBlockHashes maps every height in
	// [max(0, stable-delay), tip] to its block hash.
	LastBurnBlockHashes map[uint64]BurnchainHeaderHash
}

// NewBurnchainView projects a view snapshot from the tip and stable tip.
// The hash map covers [max(0, stableHeight-delay), tipHeight]; interior
// heights are filled from hashAt (zero hashes when hashAt is nil) while the
// tip and stable entries always carry the given hashes. The stable height
// must not exceed the tip height; a higher stable height yields a window
// truncated at the tip.
func NewBurnchainView(tipHeight uint64, tipHash BurnchainHeaderHash,
	stableHeight uint64, stableHash BurnchainHeaderHash,
	delay uint64, hashAt func(height uint64) BurnchainHeaderHash) *BurnchainView {

	oldestHeight := uint64(0)
	if stableHeight > delay {
		oldestHeight = stableHeight - delay
	}

	var windowSize uint64
	if tipHeight >= oldestHeight {
		windowSize = tipHeight - oldestHeight + 1
	}

	hashes := make(map[uint64]BurnchainHeaderHash, windowSize)
	for height := oldestHeight; height <= tipHeight; height++ {
		switch {
		case height == stableHeight:
			hashes[height] = stableHash
		case height == tipHeight:
			hashes[height] = tipHash
		case hashAt != nil:
			hashes[height] = hashAt(height)
		default:
			hashes[height] = BurnchainHeaderHash{}
		}
	}

	return &BurnchainView{
		BurnBlockHeight:       tipHeight,
		BurnBlockHash:         tipHash,
		BurnStableBlockHeight: stableHeight,
		BurnStableBlockHash:   stableHash,
		LastBurnBlockHashes:   hashes,
	}
}

// OperationCheck decides whether one operation is valid against current
// consensus state. The rules per operation kind live with the sortition
// engine, not here. A returned OpError or ErrParse rejects only that
// operation; any other error aborts the block.
type OperationCheck func(tx BurnchainTransaction) error

// BurnchainStateTransition is the ordered list of operations one burn block
// contributed to consensus state. It carries no block identity of its own;
// callers correlate it to the header it was computed against.
type BurnchainStateTransition struct {
	// AcceptedOps preserves the block's ascending VtxIndex order.
	AcceptedOps []BurnchainTransaction
}

// NewBurnchainStateTransition folds a block's operations through check and
// retains the ones that pass, in ascending VtxIndex order. Operations that
// fail validation (OpError) or decode (ErrParse) are logged and skipped so
// one bad operation never takes the rest of the block with it.
func NewBurnchainStateTransition(block BurnchainBlock, check OperationCheck) (
	*BurnchainStateTransition, error) {

	txs := block.Transactions()
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].VtxIndex() < txs[j].VtxIndex()
	})

	accepted := make([]BurnchainTransaction, 0, len(txs))
	for _, tx := range txs {
		err := check(tx)
		if err == nil {
			accepted = append(accepted, tx)
			continue
		}

		var opErr *OpError
		if errors.As(err, &opErr) || errors.Is(err, ErrParse) {
			log.Debugf("Rejected operation %s in burn block %d: %s",
				tx.TxID(), block.Height(), err)
			continue
		}
		return nil, err
	}

	return &BurnchainStateTransition{AcceptedOps: accepted}, nil
}
