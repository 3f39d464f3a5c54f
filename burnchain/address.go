package burnchain

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// AddressHashMode tags how an address hashes its key material. The tag is
// consensus-visible: it rides inside burn-chain operations, so its values
// are fixed.
type AddressHashMode byte

// Address hash modes. The single-sig modes hash one public key; the
// multi-sig modes hash a redeem script over an ordered key set.
const (
	// SerializeP2PKH hashes a single public key.
	SerializeP2PKH AddressHashMode = 0x00

	// SerializeP2SH hashes a multi-sig redeem script.
	SerializeP2SH AddressHashMode = 0x01

	// SerializeP2WPKH hashes a single-sig segwit-style witness program.
	SerializeP2WPKH AddressHashMode = 0x02

	// SerializeP2WSH hashes a multi-sig segwit-style witness program.
	SerializeP2WSH AddressHashMode = 0x03
)

// MessageSignatureLength is the size in bytes of a recoverable signature.
const MessageSignatureLength = 65

// MessageSignature is a recoverable signature over a message hash.
type MessageSignature [MessageSignatureLength]byte

// String returns the MessageSignature as a hexadecimal string.
func (s MessageSignature) String() string {
	return hex.EncodeToString(s[:])
}

// PublicKey is the verification capability expected of a burn-chain key
// implementation. Concrete curves live outside this package.
type PublicKey interface {
	// ToBytes returns the serialized key.
	ToBytes() []byte

	// Verify checks sig over dataHash.
	Verify(dataHash []byte, sig *MessageSignature) (bool, error)
}

// PrivateKey is the signing capability expected of a burn-chain key
// implementation.
type PrivateKey interface {
	// ToBytes returns the serialized key.
	ToBytes() []byte

	// Sign produces a recoverable signature over dataHash.
	Sign(dataHash []byte) (*MessageSignature, error)
}

// Address is the capability contract for burn-chain payout addresses.
type Address interface {
	fmt.Stringer

	// ToBytes returns the serialized address.
	ToBytes() []byte

	// IsBurn reports whether the address is the unspendable burn address.
	IsBurn() bool
}

// BurnchainSigner describes the m-of-n authorization behind a burn-chain
// operation: NumSigs signatures out of the ordered PublicKeys, combined
// under HashMode.
type BurnchainSigner struct {
	HashMode   AddressHashMode
	NumSigs    int
	PublicKeys []PublicKey
}

// Equal reports structural equality: same hash mode, same threshold and the
// same keys in the same order.
func (s *BurnchainSigner) Equal(other *BurnchainSigner) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.HashMode != other.HashMode || s.NumSigs != other.NumSigs ||
		len(s.PublicKeys) != len(other.PublicKeys) {
		return false
	}
	for i, key := range s.PublicKeys {
		if !bytes.Equal(key.ToBytes(), other.PublicKeys[i].ToBytes()) {
			return false
		}
	}
	return true
}

// BurnchainRecipient is one PoX payout or burn destination: where the value
// of a commit output goes, and how much.
type BurnchainRecipient struct {
	Address Address
	Amount  uint64
}
