// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2021 The Hyperchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package burnchain

// Genesis ("first burn block") constants for each supported burn-chain
// network. The hyperchain starts observing the burn chain at these heights;
// nothing below them is ever processed.
const (
	// BitcoinMainnetFirstBlockHeight is the burn-chain height at which the
	// mainnet hyperchain begins.
	BitcoinMainnetFirstBlockHeight uint64 = 666050

	// BitcoinMainnetFirstBlockTimestamp is the timestamp of the mainnet
	// first burn block.
	BitcoinMainnetFirstBlockTimestamp uint32 = 1610643248

	// BitcoinTestnetFirstBlockHeight is the burn-chain height at which the
	// testnet hyperchain begins.
	BitcoinTestnetFirstBlockHeight uint64 = 2000000

	// BitcoinTestnetFirstBlockTimestamp is the timestamp of the testnet
	// first burn block.
	BitcoinTestnetFirstBlockTimestamp uint32 = 1622691840

	// BitcoinRegtestFirstBlockHeight is the burn-chain height at which a
	// regtest hyperchain begins. Regtest chains start from scratch.
	BitcoinRegtestFirstBlockHeight uint64 = 0

	// BitcoinRegtestFirstBlockTimestamp is the timestamp of the regtest
	// first burn block.
	BitcoinRegtestFirstBlockTimestamp uint32 = 0
)

const (
	bitcoinMainnetFirstBlockHash = "0000000000000000000ab248c8e35c574514d052a83dbc12669e19bc43df486e"
	bitcoinTestnetFirstBlockHash = "000000000000010dd0863ec3d7a0bae17c1957ae1de9cbcdae8e77aad33e3b8c"
	bitcoinRegtestFirstBlockHash = "0000000000000000000000000000000000000000000000000000000000000000"
)

// Network ids for the supported burn-chain networks. Mainnet must be 0; see
// IsTestnet.
const (
	NetworkIDMainnet uint32 = 0
	NetworkIDTestnet uint32 = 1
	NetworkIDRegtest uint32 = 2
)

// DefaultPeerVersion is the peer protocol version advertised by nodes built
// against this package.
const DefaultPeerVersion uint32 = 0x18000000

// BurnchainParameters describes the genesis state and confirmation policy
// of one (chain, network) pair. Values are fixed at construction and never
// mutated.
type BurnchainParameters struct {
	// ChainName names the underlying chain, e.g. "bitcoin".
	ChainName string

	// NetworkName names the network flavor, e.g. "mainnet".
	NetworkName string

	// NetworkID disambiguates network flavors of the same chain.
	NetworkID uint32

	// StableConfirmations is the number of confirmations after which a
	// burn block is considered stable.
	StableConfirmations uint32

	// ConsensusHashLifetime is the number of burn blocks for which a
	// consensus hash stays fresh.
	ConsensusHashLifetime uint32

	// FirstBlockHeight is the burn-chain height of the first observed
	// block.
	FirstBlockHeight uint64

	// FirstBlockHash is the hash of the first observed block.
	FirstBlockHash BurnchainHeaderHash

	// FirstBlockTimestamp is the timestamp of the first observed block.
	FirstBlockTimestamp uint32

	// InitialRewardStartBlock is the burn-chain height at which the
	// initial mining reward schedule starts.
	InitialRewardStartBlock uint64
}

// LookupParameters returns the compiled-in parameters for the given
// (chain, network) pair. The second return value is false when the pair is
// not a supported burn chain; an unknown pair is absence, not an error.
func LookupParameters(chain string, network string) (*BurnchainParameters, bool) {
	switch {
	case chain == "bitcoin" && network == "mainnet":
		return BitcoinMainnetParameters(), true
	case chain == "bitcoin" && network == "testnet":
		return BitcoinTestnetParameters(), true
	case chain == "bitcoin" && network == "regtest":
		return BitcoinRegtestParameters(), true
	default:
		return nil, false
	}
}

// BitcoinMainnetParameters returns the burn-chain parameters for the main
// bitcoin network.
func BitcoinMainnetParameters() *BurnchainParameters {
	return &BurnchainParameters{
		ChainName:               "bitcoin",
		NetworkName:             "mainnet",
		NetworkID:               NetworkIDMainnet,
		StableConfirmations:     7,
		ConsensusHashLifetime:   24,
		FirstBlockHeight:        BitcoinMainnetFirstBlockHeight,
		FirstBlockHash:          *mustHashFromStr(bitcoinMainnetFirstBlockHash),
		FirstBlockTimestamp:     BitcoinMainnetFirstBlockTimestamp,
		InitialRewardStartBlock: BitcoinMainnetFirstBlockHeight,
	}
}

// BitcoinTestnetParameters returns the burn-chain parameters for the
// bitcoin test network.
func BitcoinTestnetParameters() *BurnchainParameters {
	return &BurnchainParameters{
		ChainName:             "bitcoin",
		NetworkName:           "testnet",
		NetworkID:             NetworkIDTestnet,
		StableConfirmations:   7,
		ConsensusHashLifetime: 24,
		FirstBlockHeight:      BitcoinTestnetFirstBlockHeight,
		FirstBlockHash:        *mustHashFromStr(bitcoinTestnetFirstBlockHash),
		FirstBlockTimestamp:   BitcoinTestnetFirstBlockTimestamp,
		// The testnet reward schedule starts 10000 blocks before the
		// first observed block.
		InitialRewardStartBlock: BitcoinTestnetFirstBlockHeight - 10000,
	}
}

// BitcoinRegtestParameters returns the burn-chain parameters for the
// bitcoin regression test network.
func BitcoinRegtestParameters() *BurnchainParameters {
	return &BurnchainParameters{
		ChainName:               "bitcoin",
		NetworkName:             "regtest",
		NetworkID:               NetworkIDRegtest,
		StableConfirmations:     1,
		ConsensusHashLifetime:   24,
		FirstBlockHeight:        BitcoinRegtestFirstBlockHeight,
		FirstBlockHash:          *mustHashFromStr(bitcoinRegtestFirstBlockHash),
		FirstBlockTimestamp:     BitcoinRegtestFirstBlockTimestamp,
		InitialRewardStartBlock: BitcoinRegtestFirstBlockHeight,
	}
}

// IsTestnet reports whether the given network id belongs to a test network.
// Any nonzero id counts as testnet, so regtest is "testnet" here too; keep
// that in mind before using this to pick between testnet and regtest.
func IsTestnet(networkID uint32) bool {
	return networkID != 0
}

// mustHashFromStr converts the passed hex string into a
// BurnchainHeaderHash. It only differs from NewBurnchainHeaderHashFromStr
// in that it panics on an error since it will only (and must only) be
// called with hard-coded, and therefore known good, hashes.
func mustHashFromStr(hexStr string) *BurnchainHeaderHash {
	hash, err := NewBurnchainHeaderHashFromStr(hexStr)
	if err != nil {
		// Ordinarily panics in library code are to be avoided, however
		// the only way this can fail is an error in the hard-coded
		// hashes above, so it can only ever trigger on init.
		panic(err)
	}
	return hash
}
