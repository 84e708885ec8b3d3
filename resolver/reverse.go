package resolver

import (
	"github.com/mitsuha/kagami/chain"
	"github.com/mitsuha/kagami/registry"
	"github.com/pkg/errors"
)

// InterfaceID is a 4-byte capability identifier used by callers to
// probe what a resolver supports.
type InterfaceID [4]byte

var (
	// NameInterfaceID tags support for reverse name lookup.
	NameInterfaceID = InterfaceID{0x69, 0x1f, 0x34, 0x31}

	// DiscoveryInterfaceID tags support for capability discovery
	// itself.
	DiscoveryInterfaceID = InterfaceID{0x01, 0xff, 0xc9, 0xa7}
)

// ReverseResolver serves reverse name records. Reads never fail on
// absence: a node with no record resolves to the empty string.
type ReverseResolver struct {
	registry registry.Registry
	names    registry.NameStore
}

func NewReverseResolver(reg registry.Registry, names registry.NameStore) *ReverseResolver {
	return &ReverseResolver{
		registry: reg,
		names:    names,
	}
}

func (r *ReverseResolver) Name(node chain.NodeID) (string, error) {
	name, err := r.names.Name(node)
	if err != nil {
		return "", errors.Wrap(err, "error reading reverse name")
	}
	return name, nil
}

// SetName writes a node's reverse name record. Only the node's current
// owner may write; clearing a name is writing the empty string, which
// reads back identically to a record that never existed.
func (r *ReverseResolver) SetName(caller chain.Address, node chain.NodeID, name string) error {
	owner, err := r.registry.Owner(node)
	if err != nil {
		return errors.Wrap(err, "error reading node owner")
	}
	if !owner.Equal(caller) {
		return errors.Wrapf(registry.ErrNotAuthorized, "node %s is not owned by %s", node, caller)
	}
	return r.names.SetName(node, name)
}

func (r *ReverseResolver) SupportsInterface(id InterfaceID) bool {
	return id == NameInterfaceID || id == DiscoveryInterfaceID
}
