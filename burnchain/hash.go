// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2021 The Hyperchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package burnchain

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// HashSize is the size in bytes of the fixed-size identifiers used on the
// burn chain: transaction ids, burn block hashes and layer-1 block ids.
const HashSize = 32

// MaxHashStringSize is the maximum length of a hash string.
const MaxHashStringSize = HashSize * 2

// ErrHashStrSize describes an error that indicates the caller specified a
// hash string that has too many characters.
var ErrHashStrSize = errors.Errorf("max hash string length is %d bytes", MaxHashStringSize)

// Txid identifies a burn-chain transaction. Unlike bitcoin hashes, burn
// chain identifiers are raw byte sequences: the hexadecimal form encodes the
// bytes in the order they are stored, without byte reversal.
type Txid [HashSize]byte

// TxidEncodedSize is the size in bytes of a Txid on the wire.
const TxidEncodedSize = 32

// String returns the Txid as a hexadecimal string.
func (t Txid) String() string {
	return hex.EncodeToString(t[:])
}

// CloneBytes returns a copy of the bytes which represent the Txid as a byte
// slice.
func (t *Txid) CloneBytes() []byte {
	newTxid := make([]byte, HashSize)
	copy(newTxid, t[:])

	return newTxid
}

// SetBytes sets the bytes which represent the Txid. An error is returned if
// the number of bytes passed in is not HashSize.
func (t *Txid) SetBytes(newTxid []byte) error {
	if len(newTxid) != HashSize {
		return errors.Errorf("invalid txid length of %d, want %d",
			len(newTxid), HashSize)
	}
	copy(t[:], newTxid)

	return nil
}

// IsEqual returns true if target is the same as the Txid.
func (t *Txid) IsEqual(target *Txid) bool {
	if t == nil && target == nil {
		return true
	}
	if t == nil || target == nil {
		return false
	}
	return *t == *target
}

// NewTxid returns a new Txid from a byte slice. An error is returned if the
// number of bytes passed in is not HashSize.
func NewTxid(newTxid []byte) (*Txid, error) {
	var txid Txid
	err := txid.SetBytes(newTxid)
	if err != nil {
		return nil, err
	}
	return &txid, nil
}

// NewTxidFromStr creates a Txid from a hexadecimal string.
func NewTxidFromStr(txidStr string) (*Txid, error) {
	txid := new(Txid)
	err := decodeHashString(txid[:], txidStr)
	if err != nil {
		return nil, err
	}
	return txid, nil
}

// BurnchainHeaderHash is the hash of a burn-chain block header.
type BurnchainHeaderHash [HashSize]byte

// String returns the BurnchainHeaderHash as a hexadecimal string.
func (h BurnchainHeaderHash) String() string {
	return hex.EncodeToString(h[:])
}

// CloneBytes returns a copy of the bytes which represent the hash as a byte
// slice.
func (h *BurnchainHeaderHash) CloneBytes() []byte {
	newHash := make([]byte, HashSize)
	copy(newHash, h[:])

	return newHash
}

// SetBytes sets the bytes which represent the hash. An error is returned if
// the number of bytes passed in is not HashSize.
func (h *BurnchainHeaderHash) SetBytes(newHash []byte) error {
	if len(newHash) != HashSize {
		return errors.Errorf("invalid hash length of %d, want %d",
			len(newHash), HashSize)
	}
	copy(h[:], newHash)

	return nil
}

// IsEqual returns true if target is the same as the hash.
func (h *BurnchainHeaderHash) IsEqual(target *BurnchainHeaderHash) bool {
	if h == nil && target == nil {
		return true
	}
	if h == nil || target == nil {
		return false
	}
	return *h == *target
}

// NewBurnchainHeaderHash returns a new BurnchainHeaderHash from a byte
// slice. An error is returned if the number of bytes passed in is not
// HashSize.
func NewBurnchainHeaderHash(newHash []byte) (*BurnchainHeaderHash, error) {
	var hash BurnchainHeaderHash
	err := hash.SetBytes(newHash)
	if err != nil {
		return nil, err
	}
	return &hash, nil
}

// NewBurnchainHeaderHashFromStr creates a BurnchainHeaderHash from a
// hexadecimal string.
func NewBurnchainHeaderHashFromStr(hashStr string) (*BurnchainHeaderHash, error) {
	hash := new(BurnchainHeaderHash)
	err := decodeHashString(hash[:], hashStr)
	if err != nil {
		return nil, err
	}
	return hash, nil
}

// StacksBlockID identifies a block of the layer-1 Stacks chain that serves
// as the burn chain for the current BurnchainBlock variant.
type StacksBlockID [HashSize]byte

// String returns the StacksBlockID as a hexadecimal string.
func (id StacksBlockID) String() string {
	return hex.EncodeToString(id[:])
}

// SetBytes sets the bytes which represent the id. An error is returned if
// the number of bytes passed in is not HashSize.
func (id *StacksBlockID) SetBytes(newID []byte) error {
	if len(newID) != HashSize {
		return errors.Errorf("invalid block id length of %d, want %d",
			len(newID), HashSize)
	}
	copy(id[:], newID)

	return nil
}

// IsEqual returns true if target is the same as the id.
func (id *StacksBlockID) IsEqual(target *StacksBlockID) bool {
	if id == nil && target == nil {
		return true
	}
	if id == nil || target == nil {
		return false
	}
	return *id == *target
}

// NewStacksBlockIDFromStr creates a StacksBlockID from a hexadecimal string.
func NewStacksBlockIDFromStr(idStr string) (*StacksBlockID, error) {
	id := new(StacksBlockID)
	err := decodeHashString(id[:], idStr)
	if err != nil {
		return nil, err
	}
	return id, nil
}

// BurnchainHeaderHash converts the id into the burn chain's header hash
// form. Both are the same 32 raw bytes; the distinct types keep layer-1
// block ids from mixing with burn header hashes in signatures.
func (id StacksBlockID) BurnchainHeaderHash() BurnchainHeaderHash {
	return BurnchainHeaderHash(id)
}

// BlockHeaderHash is the hash of a hyperchain block header, carried inside
// commitment operations found on the burn chain.
type BlockHeaderHash [HashSize]byte

// String returns the BlockHeaderHash as a hexadecimal string.
func (h BlockHeaderHash) String() string {
	return hex.EncodeToString(h[:])
}

// IsEqual returns true if target is the same as the hash.
func (h *BlockHeaderHash) IsEqual(target *BlockHeaderHash) bool {
	if h == nil && target == nil {
		return true
	}
	if h == nil || target == nil {
		return false
	}
	return *h == *target
}

// NewBlockHeaderHashFromStr creates a BlockHeaderHash from a hexadecimal
// string.
func NewBlockHeaderHashFromStr(hashStr string) (*BlockHeaderHash, error) {
	hash := new(BlockHeaderHash)
	err := decodeHashString(hash[:], hashStr)
	if err != nil {
		return nil, err
	}
	return hash, nil
}

// decodeHashString decodes the hexadecimal string src into dst. The string
// must encode exactly len(dst) bytes; raw byte order, no reversal.
func decodeHashString(dst []byte, src string) error {
	if len(src) > len(dst)*2 {
		return ErrHashStrSize
	}
	if len(src) != len(dst)*2 {
		return errors.Errorf("hash string length is %d, want %d",
			len(src), len(dst)*2)
	}
	_, err := hex.Decode(dst, []byte(src))
	if err != nil {
		return errors.WithStack(err)
	}
	return nil
}
