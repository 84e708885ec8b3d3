package chain

import (
	"github.com/pkg/errors"
)

type Network struct {
	Name          string
	APIPort       int
	RegistryPort  int
	ReverseRoot   string
	RegistrarAddr Address
}

var NetworkMain = &Network{
	Name:          "main",
	APIPort:       21039,
	RegistryPort:  21037,
	ReverseRoot:   ReverseRootDomain,
	RegistrarAddr: MustAddressFromHex("6b6167616d692d726576657273652d7265672d31"),
}

var NetworkRegtest = &Network{
	Name:          "regtest",
	APIPort:       23039,
	RegistryPort:  23037,
	ReverseRoot:   ReverseRootDomain,
	RegistrarAddr: MustAddressFromHex("6b6167616d692d726576657273652d7265672d72"),
}

func NetworkFromName(name string) (*Network, error) {
	switch name {
	case NetworkMain.Name:
		return NetworkMain, nil
	case NetworkRegtest.Name:
		return NetworkRegtest, nil
	default:
		return nil, errors.New("invalid network")
	}
}

// ReverseRootNode is the registrar's fixed root node on this network.
func (n *Network) ReverseRootNode() NodeID {
	return Namehash(n.ReverseRoot)
}
