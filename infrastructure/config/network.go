package config

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/hyperchainnet/hyperchaind/burnchain"
)

// NetworkFlags holds the network configuration, that is which network is
// selected.
type NetworkFlags struct {
	TestNet        bool `long:"testnet" description:"Use the test network"`
	RegressionTest bool `long:"regtest" description:"Use the regression test network"`

	// ActiveParams holds the selected network parameters. Default value
	// is mainnet.
	ActiveParams *burnchain.BurnchainParameters
}

// ResolveNetwork parses the network command line arguments and sets
// ActiveParams accordingly. It returns an error if more than one network
// was selected, nil otherwise.
func (networkFlags *NetworkFlags) ResolveNetwork(parser *flags.Parser) error {
	networkFlags.ActiveParams = burnchain.BitcoinMainnetParameters()

	// Multiple networks can't be selected simultaneously.
	numNets := 0
	if networkFlags.TestNet {
		numNets++
		networkFlags.ActiveParams = burnchain.BitcoinTestnetParameters()
	}
	if networkFlags.RegressionTest {
		numNets++
		networkFlags.ActiveParams = burnchain.BitcoinRegtestParameters()
	}
	if numNets > 1 {
		err := errors.New("multiple network parameters (testnet, regtest) " +
			"cannot be used together. Please choose only one network")
		parser.WriteHelp(os.Stderr)
		return err
	}
	return nil
}

// NetworkName returns the name of the selected network.
func (networkFlags *NetworkFlags) NetworkName() string {
	return networkFlags.ActiveParams.NetworkName
}
