// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2021 The Hyperchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package burnchain

import (
	"bytes"
	"testing"
)

// TestTxid tests the Txid API.
func TestTxid(t *testing.T) {
	txidStr := "3a81046b52a9a0660b5de59e74a1201ebbff1a723e0b02553227e5dbf0b30729"
	txid, err := NewTxidFromStr(txidStr)
	if err != nil {
		t.Fatalf("NewTxidFromStr: %v", err)
	}

	// Identifiers are raw byte sequences; the string form must not be
	// byte-reversed.
	if txid.String() != txidStr {
		t.Errorf("String: wrong txid string - got %v, want %v",
			txid.String(), txidStr)
	}
	if txid[0] != 0x3a || txid[HashSize-1] != 0x29 {
		t.Errorf("NewTxidFromStr: decoded bytes are not in raw order: %v", txid)
	}

	buf := bytes.Repeat([]byte{0x22}, HashSize)
	txid2, err := NewTxid(buf)
	if err != nil {
		t.Fatalf("NewTxid: unexpected error %v", err)
	}
	if !bytes.Equal(txid2.CloneBytes(), buf) {
		t.Errorf("CloneBytes: contents mismatch - got %v, want %v",
			txid2.CloneBytes(), buf)
	}

	err = txid2.SetBytes(txid.CloneBytes())
	if err != nil {
		t.Fatalf("SetBytes: %v", err)
	}
	if !txid2.IsEqual(txid) {
		t.Errorf("IsEqual: txid contents mismatch - got %v, want %v",
			txid2, txid)
	}

	// Ensure nil txids are handled properly.
	if !(*Txid)(nil).IsEqual(nil) {
		t.Error("IsEqual: nil txids should match")
	}
	if txid2.IsEqual(nil) {
		t.Error("IsEqual: non-nil txid matches nil txid")
	}

	// Invalid size for SetBytes.
	err = txid2.SetBytes([]byte{0x00})
	if err == nil {
		t.Error("SetBytes: failed to receive expected error - got nil")
	}

	// Invalid size for NewTxid.
	_, err = NewTxid(make([]byte, HashSize+1))
	if err == nil {
		t.Error("NewTxid: failed to receive expected error - got nil")
	}
}

// TestHashStrings tests string decoding edge cases shared by the id
// newtypes.
func TestHashStrings(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"valid", "000000000003ba27aa200b1cecaad478d2b00432346c3f1f3986da1afd33e506", false},
		{"empty", "", true},
		{"short", "ba27aa200b1ce", true},
		{"too long", "000000000003ba27aa200b1cecaad478d2b00432346c3f1f3986da1afd33e50600", true},
		{"bad characters", "g00000000003ba27aa200b1cecaad478d2b00432346c3f1f3986da1afd33e506", true},
	}

	for _, test := range tests {
		_, err := NewBurnchainHeaderHashFromStr(test.in)
		if (err != nil) != test.wantErr {
			t.Errorf("NewBurnchainHeaderHashFromStr (%s): expected error "+
				"status %t, got %t", test.name, test.wantErr, err != nil)
		}
		_, err = NewStacksBlockIDFromStr(test.in)
		if (err != nil) != test.wantErr {
			t.Errorf("NewStacksBlockIDFromStr (%s): expected error "+
				"status %t, got %t", test.name, test.wantErr, err != nil)
		}
		_, err = NewBlockHeaderHashFromStr(test.in)
		if (err != nil) != test.wantErr {
			t.Errorf("NewBlockHeaderHashFromStr (%s): expected error "+
				"status %t, got %t", test.name, test.wantErr, err != nil)
		}
	}
}

// TestStacksBlockIDConversion ensures layer-1 block ids convert to burn
// header hashes byte for byte.
func TestStacksBlockIDConversion(t *testing.T) {
	var id StacksBlockID
	for i := range id {
		id[i] = byte(i)
	}

	hash := id.BurnchainHeaderHash()
	if !bytes.Equal(hash[:], id[:]) {
		t.Errorf("BurnchainHeaderHash: contents mismatch - got %v, want %v",
			hash[:], id[:])
	}
}

// TestMagicBytes tests the MagicBytes API and the mainnet default.
func TestMagicBytes(t *testing.T) {
	def := DefaultMagicBytes()
	if def != BlockstackMagicMainnet {
		t.Errorf("DefaultMagicBytes: got %v, want %v", def, BlockstackMagicMainnet)
	}
	if def[0] != 0x69 || def[1] != 0x64 {
		t.Errorf("mainnet magic bytes changed: %v", def)
	}
	if def.String() != "6964" {
		t.Errorf("String: got %s, want 6964", def.String())
	}

	var m MagicBytes
	if err := m.SetBytes([]byte{0x01, 0x02, 0x03}); err == nil {
		t.Error("SetBytes: failed to receive expected error - got nil")
	}
	if err := m.SetBytes([]byte{0x54, 0x31}); err != nil {
		t.Errorf("SetBytes: %v", err)
	}
	if !bytes.Equal(m.CloneBytes(), []byte{0x54, 0x31}) {
		t.Errorf("CloneBytes: got %v", m.CloneBytes())
	}
}
