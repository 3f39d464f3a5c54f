package burnchain

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

// TestWrappedErrorText ensures the wrapper kinds forward the wrapped
// error's display text verbatim across the layer boundary.
func TestWrappedErrorText(t *testing.T) {
	storageErr := errors.New("database disk image is malformed")
	dbErr := &DBError{Err: storageErr}
	if dbErr.Error() != storageErr.Error() {
		t.Errorf("DBError display text %q differs from wrapped %q",
			dbErr.Error(), storageErr.Error())
	}

	osErr := errors.New("open /tmp/burn: permission denied")
	fsErr := &FSError{Err: osErr}
	if fsErr.Error() != osErr.Error() {
		t.Errorf("FSError display text %q differs from wrapped %q",
			fsErr.Error(), osErr.Error())
	}

	checkErr := errors.New("block commit has no recipients")
	opErr := &OpError{Err: checkErr}
	if opErr.Error() != checkErr.Error() {
		t.Errorf("OpError display text %q differs from wrapped %q",
			opErr.Error(), checkErr.Error())
	}
}

// TestErrorUnwrapping ensures errors.Is and errors.As see through the
// wrapper kinds.
func TestErrorUnwrapping(t *testing.T) {
	storageErr := errors.New("database disk image is malformed")
	var err error = &DBError{Err: storageErr}
	if !errors.Is(err, storageErr) {
		t.Error("errors.Is cannot see through DBError")
	}

	var dbErr *DBError
	if !errors.As(err, &dbErr) {
		t.Error("errors.As cannot recover the DBError")
	}

	var opErr *OpError
	if errors.As(err, &opErr) {
		t.Error("errors.As matched the wrong wrapper kind")
	}
}

// TestUnknownBlockError checks the unknown block display text includes the
// offending hash.
func TestUnknownBlockError(t *testing.T) {
	hash, err := NewBurnchainHeaderHashFromStr(bitcoinTestnetFirstBlockHash)
	if err != nil {
		t.Fatalf("NewBurnchainHeaderHashFromStr: %v", err)
	}

	unknownErr := &UnknownBlockError{Hash: *hash}
	if !strings.Contains(unknownErr.Error(), bitcoinTestnetFirstBlockHash) {
		t.Errorf("UnknownBlockError text %q does not name the block",
			unknownErr.Error())
	}
}

// TestNonCanonicalPoxIDError checks the consensus violation display text
// names both ids.
func TestNonCanonicalPoxIDError(t *testing.T) {
	canonical := PoxID{true, true, false}
	claimed := PoxID{true, false, true}

	poxErr := &NonCanonicalPoxIDError{Canonical: canonical, Claimed: claimed}
	text := poxErr.Error()
	if !strings.Contains(text, "110") || !strings.Contains(text, "101") {
		t.Errorf("NonCanonicalPoxIDError text %q does not name both ids", text)
	}
}

// TestPoxID exercises the fork id bit vector.
func TestPoxID(t *testing.T) {
	initial := InitialPoxID()
	if initial.String() != "1" {
		t.Errorf("InitialPoxID: got %s, want 1", initial)
	}

	extended := initial.Extend(false).Extend(true)
	if extended.String() != "101" {
		t.Errorf("Extend: got %s, want 101", extended)
	}
	if len(initial) != 1 {
		t.Error("Extend mutated its receiver")
	}

	if !extended.IsDescendantOf(initial) {
		t.Error("IsDescendantOf: extension is not a descendant of its prefix")
	}
	if initial.IsDescendantOf(extended) {
		t.Error("IsDescendantOf: prefix reported as descendant of extension")
	}
	other := PoxID{true, true}
	if extended.IsDescendantOf(other) {
		t.Error("IsDescendantOf: diverged id reported as descendant")
	}

	clone := extended.Clone()
	clone[1] = true
	if extended[1] {
		t.Error("Clone shares storage with its source")
	}
}
