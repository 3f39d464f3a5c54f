package burnchain

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// MagicBytesLength is the size in bytes of the network tag that prefixes
// burnchain-anchored protocol messages.
const MagicBytesLength = 2

// MagicBytes is the fixed network tag prefixing burnchain-anchored protocol
// messages. Peers on different networks carry different tags, so a message
// meant for one network is unreadable on another.
type MagicBytes [MagicBytesLength]byte

// BlockstackMagicMainnet is the mainnet network tag ("id").
var BlockstackMagicMainnet = MagicBytes{0x69, 0x64}

// DefaultMagicBytes returns the network tag used when none is configured,
// which is the mainnet tag.
func DefaultMagicBytes() MagicBytes {
	return BlockstackMagicMainnet
}

// String returns the MagicBytes as a hexadecimal string.
func (m MagicBytes) String() string {
	return hex.EncodeToString(m[:])
}

// CloneBytes returns a copy of the bytes which represent the tag as a byte
// slice.
func (m *MagicBytes) CloneBytes() []byte {
	newMagic := make([]byte, MagicBytesLength)
	copy(newMagic, m[:])

	return newMagic
}

// SetBytes sets the bytes which represent the tag. An error is returned if
// the number of bytes passed in is not MagicBytesLength.
func (m *MagicBytes) SetBytes(newMagic []byte) error {
	if len(newMagic) != MagicBytesLength {
		return errors.Errorf("invalid magic bytes length of %d, want %d",
			len(newMagic), MagicBytesLength)
	}
	copy(m[:], newMagic)

	return nil
}
