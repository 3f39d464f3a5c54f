package burnchain

import (
	"math/big"
)

// OutputsPerCommit is the fixed fan-out of a block-commit operation: the
// number of PoX payout outputs each commit carries.
const OutputsPerCommit = 2

// Default PoX geometry. Testnet halves the mainnet windows; the sunset
// offsets are relative to each network's first burn block.
const (
	// PoxRewardCycleLength is the mainnet reward cycle length in burn
	// blocks.
	PoxRewardCycleLength uint32 = 2100

	// PoxPrepareWindowLength is the mainnet prepare phase length in burn
	// blocks.
	PoxPrepareWindowLength uint32 = 100

	// PoxSunsetStart is the offset from the first burn block at which the
	// PoX sunset phase begins.
	PoxSunsetStart uint64 = 100000

	// PoxSunsetEnd is the offset from the first burn block at which the
	// PoX sunset phase ends.
	PoxSunsetEnd uint64 = PoxSunsetStart + 400000
)

// PoxConstants is the immutable economic ruleset of PoX for one network.
// Every node must compute identically from these values, so they are
// compiled in and invariant-checked at construction.
type PoxConstants struct {
	// RewardCycleLength is the length (in burn blocks) of a reward cycle.
	RewardCycleLength uint32

	// PrepareLength is the length (in burn blocks) of the prepare phase.
	PrepareLength uint32

	// AnchorThreshold is the number of confirmations a PoX anchor block
	// must receive in order to become the anchor. Must be greater than
	// PrepareLength/2.
	AnchorThreshold uint32

	// PoxRejectionFraction is the fraction of the liquid supply that must
	// vote to reject PoX for it to revert to burning in the next cycle.
	PoxRejectionFraction uint64

	// PoxParticipationThresholdPct is the percentage of the liquid supply
	// that must participate for PoX to occur.
	PoxParticipationThresholdPct uint64

	// SunsetStart is the first burn block height of the sunset phase.
	SunsetStart uint64

	// SunsetEnd is the last+1 burn block height of the sunset phase.
	SunsetEnd uint64
}

// NewPoxConstants builds a PoxConstants and checks its structural
// invariants. It panics when one is violated: the inputs are compiled-in
// network constants, so a violation is a programming error, not a runtime
// condition. A future path that derives these values from untrusted or
// on-chain data must return an error instead of calling this.
func NewPoxConstants(rewardCycleLength, prepareLength, anchorThreshold uint32,
	poxRejectionFraction, poxParticipationThresholdPct uint64,
	sunsetStart, sunsetEnd uint64) PoxConstants {

	if anchorThreshold <= prepareLength/2 {
		panic("PoX anchor threshold must exceed half the prepare length")
	}
	if prepareLength >= rewardCycleLength {
		panic("PoX prepare length must be shorter than the reward cycle")
	}
	if sunsetStart > sunsetEnd {
		panic("PoX sunset cannot end before it starts")
	}

	return PoxConstants{
		RewardCycleLength:            rewardCycleLength,
		PrepareLength:                prepareLength,
		AnchorThreshold:              anchorThreshold,
		PoxRejectionFraction:         poxRejectionFraction,
		PoxParticipationThresholdPct: poxParticipationThresholdPct,
		SunsetStart:                  sunsetStart,
		SunsetEnd:                    sunsetEnd,
	}
}

// RewardSlots returns the total number of PoX-eligible commitment slots in
// one reward cycle: every non-prepare block carries OutputsPerCommit slots.
func (p *PoxConstants) RewardSlots() uint32 {
	return (p.RewardCycleLength - p.PrepareLength) * OutputsPerCommit
}

// EnoughParticipation reports whether participating microunits are enough
// to engage PoX in the next reward cycle, i.e. whether
// participating*100 > liquid*threshold. The products are computed in
// arbitrary precision, so no supply magnitude can wrap this
// consensus-critical comparison.
func (p *PoxConstants) EnoughParticipation(participating uint64, liquid uint64) bool {
	lhs := new(big.Int).Mul(new(big.Int).SetUint64(participating), big.NewInt(100))
	rhs := new(big.Int).Mul(
		new(big.Int).SetUint64(liquid),
		new(big.Int).SetUint64(p.PoxParticipationThresholdPct))
	return lhs.Cmp(rhs) > 0
}

// MainnetPoxConstants returns the PoX ruleset for mainnet.
func MainnetPoxConstants() PoxConstants {
	return NewPoxConstants(
		PoxRewardCycleLength,
		PoxPrepareWindowLength,
		80,
		25,
		5,
		BitcoinMainnetFirstBlockHeight+PoxSunsetStart,
		BitcoinMainnetFirstBlockHeight+PoxSunsetEnd,
	)
}

// TestnetPoxConstants returns the PoX ruleset for testnet.
func TestnetPoxConstants() PoxConstants {
	return NewPoxConstants(
		PoxRewardCycleLength/2,   // 1050
		PoxPrepareWindowLength/2, // 50
		40,
		12,
		2,
		BitcoinTestnetFirstBlockHeight+PoxSunsetStart,
		BitcoinTestnetFirstBlockHeight+PoxSunsetEnd,
	) // total liquid supply is 40000000000000000 microunits
}

// RegtestPoxConstants returns the PoX ruleset for regression test networks.
func RegtestPoxConstants() PoxConstants {
	return NewPoxConstants(
		5,
		1,
		1,
		3333333333333333,
		1,
		BitcoinRegtestFirstBlockHeight+PoxSunsetStart,
		BitcoinRegtestFirstBlockHeight+PoxSunsetEnd,
	)
}
