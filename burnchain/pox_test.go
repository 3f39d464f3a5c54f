package burnchain

import "testing"

// TestDefaultPoxConstants ensures the compiled-in rulesets satisfy the
// structural invariants, i.e. their constructors do not panic, and that
// their geometry is self-consistent.
func TestDefaultPoxConstants(t *testing.T) {
	tests := []struct {
		name string
		pox  func() PoxConstants
	}{
		{"mainnet", MainnetPoxConstants},
		{"testnet", TestnetPoxConstants},
		{"regtest", RegtestPoxConstants},
	}

	for _, test := range tests {
		pox := test.pox()
		if pox.AnchorThreshold <= pox.PrepareLength/2 {
			t.Errorf("%s: anchor threshold %d does not exceed half the "+
				"prepare length %d", test.name, pox.AnchorThreshold, pox.PrepareLength)
		}
		if pox.PrepareLength >= pox.RewardCycleLength {
			t.Errorf("%s: prepare length %d not shorter than reward cycle %d",
				test.name, pox.PrepareLength, pox.RewardCycleLength)
		}
		if pox.SunsetStart > pox.SunsetEnd {
			t.Errorf("%s: sunset starts at %d after it ends at %d",
				test.name, pox.SunsetStart, pox.SunsetEnd)
		}
	}
}

// TestRewardSlots checks the reward slot count formula against the regtest
// geometry.
func TestRewardSlots(t *testing.T) {
	pox := RegtestPoxConstants()
	if pox.RewardCycleLength != 5 || pox.PrepareLength != 1 {
		t.Fatalf("regtest geometry changed: cycle %d, prepare %d",
			pox.RewardCycleLength, pox.PrepareLength)
	}
	want := uint32(4 * OutputsPerCommit)
	if slots := pox.RewardSlots(); slots != want {
		t.Errorf("RewardSlots: got %d, want %d", slots, want)
	}

	mainnet := MainnetPoxConstants()
	want = (mainnet.RewardCycleLength - mainnet.PrepareLength) * OutputsPerCommit
	if slots := mainnet.RewardSlots(); slots != want {
		t.Errorf("RewardSlots (mainnet): got %d, want %d", slots, want)
	}
}

// TestEnoughParticipation exercises the participation threshold decision,
// including liquid-supply magnitudes large enough to wrap 64-bit products.
func TestEnoughParticipation(t *testing.T) {
	const liquidSupply = uint64(40000000000000000) // 4*10^16 microunits

	tests := []struct {
		name          string
		thresholdPct  uint64
		participating uint64
		liquid        uint64
		want          bool
	}{
		{"full participation beats any threshold below 100", 99, liquidSupply, liquidSupply, true},
		{"zero participation never suffices", 1, 0, liquidSupply, false},
		{"mainnet threshold, just above", 5, liquidSupply/20 + 1, liquidSupply, true},
		{"mainnet threshold, exactly at", 5, liquidSupply / 20, liquidSupply, false},
		{"threshold 100 needs more than everything", 100, liquidSupply, liquidSupply, false},
		{"large products do not wrap", 100, liquidSupply, liquidSupply - 1, true},
	}

	for _, test := range tests {
		pox := NewPoxConstants(10, 5, 3, 25, test.thresholdPct, 5000, 10000)
		got := pox.EnoughParticipation(test.participating, test.liquid)
		if got != test.want {
			t.Errorf("EnoughParticipation (%s): got %t, want %t",
				test.name, got, test.want)
		}
	}
}

// TestNewPoxConstantsPanics ensures construction aborts on each violated
// structural invariant.
func TestNewPoxConstantsPanics(t *testing.T) {
	tests := []struct {
		name                   string
		cycle, prepare, anchor uint32
		sunsetStart, sunsetEnd uint64
	}{
		{"anchor threshold too low", 10, 6, 3, 0, 0},
		{"prepare phase spans whole cycle", 10, 10, 6, 0, 0},
		{"sunset ends before it starts", 10, 5, 3, 100, 99},
	}

	for _, test := range tests {
		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("NewPoxConstants (%s) did not panic as expected",
						test.name)
				}
			}()
			NewPoxConstants(test.cycle, test.prepare, test.anchor, 25, 5,
				test.sunsetStart, test.sunsetEnd)
		}()
	}
}
