package burnchain

// Burnchain bundles everything one processing session needs to know about
// its burn chain: genesis parameters, PoX constants and the working
// location. A bundle is built once and threaded through the pipeline;
// reconfiguring means building a new bundle.
type Burnchain struct {
	PeerVersion             uint32
	NetworkID               uint32
	ChainName               string
	NetworkName             string
	WorkingDir              string
	ConsensusHashLifetime   uint32
	StableConfirmations     uint32
	FirstBlockHeight        uint64
	FirstBlockHash          BurnchainHeaderHash
	FirstBlockTimestamp     uint32
	PoxConstants            PoxConstants
	InitialRewardStartBlock uint64
}

// NewBurnchain builds the session bundle for the given (chain, network)
// pair, rooted at workingDir. It returns ErrUnsupportedBurnchain when the
// pair is not a supported burn chain.
func NewBurnchain(workingDir string, chain string, network string) (*Burnchain, error) {
	params, ok := LookupParameters(chain, network)
	if !ok {
		return nil, ErrUnsupportedBurnchain
	}

	var pox PoxConstants
	switch network {
	case "mainnet":
		pox = MainnetPoxConstants()
	case "testnet":
		pox = TestnetPoxConstants()
	default:
		pox = RegtestPoxConstants()
	}

	return &Burnchain{
		PeerVersion:             DefaultPeerVersion,
		NetworkID:               params.NetworkID,
		ChainName:               params.ChainName,
		NetworkName:             params.NetworkName,
		WorkingDir:              workingDir,
		ConsensusHashLifetime:   params.ConsensusHashLifetime,
		StableConfirmations:     params.StableConfirmations,
		FirstBlockHeight:        params.FirstBlockHeight,
		FirstBlockHash:          params.FirstBlockHash,
		FirstBlockTimestamp:     params.FirstBlockTimestamp,
		PoxConstants:            pox,
		InitialRewardStartBlock: params.InitialRewardStartBlock,
	}, nil
}

// IsMainnet reports whether the bundle describes the main network.
func (b *Burnchain) IsMainnet() bool {
	return !IsTestnet(b.NetworkID)
}

// BlockHeightToRewardCycle returns the reward cycle containing the given
// burn block height, or false when the height precedes the first observed
// block.
func (b *Burnchain) BlockHeightToRewardCycle(blockHeight uint64) (uint64, bool) {
	if blockHeight < b.FirstBlockHeight {
		return 0, false
	}
	return (blockHeight - b.FirstBlockHeight) /
		uint64(b.PoxConstants.RewardCycleLength), true
}

// RewardCycleToBlockHeight returns the burn block height at which the given
// reward cycle begins.
func (b *Burnchain) RewardCycleToBlockHeight(rewardCycle uint64) uint64 {
	return b.FirstBlockHeight +
		rewardCycle*uint64(b.PoxConstants.RewardCycleLength) + 1
}

// IsRewardCycleStart reports whether the given burn block height is the
// first block of a reward cycle.
func (b *Burnchain) IsRewardCycleStart(blockHeight uint64) bool {
	if blockHeight < b.FirstBlockHeight {
		return false
	}
	effectiveHeight := blockHeight - b.FirstBlockHeight
	return effectiveHeight%uint64(b.PoxConstants.RewardCycleLength) == 1
}

// IsInPreparePhase reports whether the given burn block height falls inside
// the prepare phase of its reward cycle.
func (b *Burnchain) IsInPreparePhase(blockHeight uint64) bool {
	if blockHeight <= b.FirstBlockHeight {
		return false
	}
	effectiveHeight := blockHeight - b.FirstBlockHeight
	rewardIndex := effectiveHeight % uint64(b.PoxConstants.RewardCycleLength)
	return rewardIndex == 0 ||
		rewardIndex > uint64(b.PoxConstants.RewardCycleLength-b.PoxConstants.PrepareLength)
}

// ProcessBlock folds one burn block's operations into a state transition
// using check for per-operation validity, and returns the transition
// together with the block's normalized header so the caller can correlate
// the two.
func (b *Burnchain) ProcessBlock(block BurnchainBlock, check OperationCheck) (
	*BurnchainStateTransition, *BurnchainBlockHeader, error) {

	transition, err := NewBurnchainStateTransition(block, check)
	if err != nil {
		return nil, nil, err
	}
	return transition, block.Header(), nil
}
