package burnchain

import (
	"testing"

	"github.com/pkg/errors"
)

// TestNewBurnchain checks bundle construction for supported and
// unsupported pairs.
func TestNewBurnchain(t *testing.T) {
	b, err := NewBurnchain("/tmp/burn", "bitcoin", "mainnet")
	if err != nil {
		t.Fatalf("NewBurnchain: %v", err)
	}
	if b.ChainName != "bitcoin" || b.NetworkName != "mainnet" {
		t.Errorf("bundle names: got %s/%s", b.ChainName, b.NetworkName)
	}
	if b.WorkingDir != "/tmp/burn" {
		t.Errorf("working dir: got %s", b.WorkingDir)
	}
	if b.FirstBlockHeight != BitcoinMainnetFirstBlockHeight {
		t.Errorf("first block height: got %d, want %d",
			b.FirstBlockHeight, BitcoinMainnetFirstBlockHeight)
	}
	if b.PoxConstants != MainnetPoxConstants() {
		t.Error("mainnet bundle does not carry the mainnet PoX constants")
	}
	if !b.IsMainnet() {
		t.Error("IsMainnet: mainnet bundle reported as testnet")
	}

	testnet, err := NewBurnchain("/tmp/burn", "bitcoin", "testnet")
	if err != nil {
		t.Fatalf("NewBurnchain: %v", err)
	}
	if testnet.PoxConstants != TestnetPoxConstants() {
		t.Error("testnet bundle does not carry the testnet PoX constants")
	}
	if testnet.IsMainnet() {
		t.Error("IsMainnet: testnet bundle reported as mainnet")
	}

	_, err = NewBurnchain("/tmp/burn", "ethereum", "mainnet")
	if !errors.Is(err, ErrUnsupportedBurnchain) {
		t.Errorf("NewBurnchain: got %v, want ErrUnsupportedBurnchain", err)
	}
}

// TestRewardCycleGeometry exercises the reward cycle helpers against the
// regtest geometry (cycle 5, prepare 1, first block 0).
func TestRewardCycleGeometry(t *testing.T) {
	b, err := NewBurnchain("", "bitcoin", "regtest")
	if err != nil {
		t.Fatalf("NewBurnchain: %v", err)
	}

	cycle, ok := b.BlockHeightToRewardCycle(12)
	if !ok || cycle != 2 {
		t.Errorf("BlockHeightToRewardCycle(12): got %d, %t, want 2, true", cycle, ok)
	}

	if start := b.RewardCycleToBlockHeight(2); start != 11 {
		t.Errorf("RewardCycleToBlockHeight(2): got %d, want 11", start)
	}
	if !b.IsRewardCycleStart(11) {
		t.Error("IsRewardCycleStart(11): cycle start not recognized")
	}
	if b.IsRewardCycleStart(12) {
		t.Error("IsRewardCycleStart(12): non-start recognized as start")
	}

	// With a prepare length of 1, the prepare phase is the last block of
	// each cycle.
	if !b.IsInPreparePhase(5) {
		t.Error("IsInPreparePhase(5): prepare block not recognized")
	}
	if b.IsInPreparePhase(4) {
		t.Error("IsInPreparePhase(4): reward block recognized as prepare")
	}
	if b.IsInPreparePhase(0) {
		t.Error("IsInPreparePhase(0): first block recognized as prepare")
	}

	// Heights below the first observed block are in no cycle. Mainnet
	// starts high enough to check this.
	mainnet, err := NewBurnchain("", "bitcoin", "mainnet")
	if err != nil {
		t.Fatalf("NewBurnchain: %v", err)
	}
	if _, ok := mainnet.BlockHeightToRewardCycle(mainnet.FirstBlockHeight - 1); ok {
		t.Error("BlockHeightToRewardCycle: pre-genesis height got a cycle")
	}
}

// TestProcessBlock ensures the per-block fold hands back a transition
// paired with the block's own header.
func TestProcessBlock(t *testing.T) {
	b, err := NewBurnchain("", "bitcoin", "regtest")
	if err != nil {
		t.Fatalf("NewBurnchain: %v", err)
	}

	var current, parent StacksBlockID
	current[0] = 0x01
	parent[0] = 0x02
	block := &StacksHyperBlock{
		CurrentBlock: current,
		ParentBlock:  parent,
		BlockHeight:  3,
		Ops:          []StacksHyperOp{testOp(0x0a, 0), testOp(0x0b, 1)},
	}

	transition, header, err := b.ProcessBlock(block,
		func(tx BurnchainTransaction) error { return nil })
	if err != nil {
		t.Fatalf("ProcessBlock: %v", err)
	}
	if len(transition.AcceptedOps) != 2 {
		t.Errorf("accepted %d ops, want 2", len(transition.AcceptedOps))
	}
	if header.BlockHeight != block.BlockHeight {
		t.Errorf("header height %d, want %d", header.BlockHeight, block.BlockHeight)
	}
	if got, want := header.BlockHash, current.BurnchainHeaderHash(); !got.IsEqual(&want) {
		t.Errorf("header hash %s, want %s", got, want)
	}
}
