package registrar

import (
	"github.com/mitsuha/kagami/chain"
	"github.com/mitsuha/kagami/log"
	"github.com/mitsuha/kagami/registry"
	"github.com/pkg/errors"
)

var logger = log.ModuleLogger("registrar")

// ReverseRegistrar claims reverse record nodes under a fixed root. It
// holds no mutable state; its only side effect is the single ownership
// transfer issued per Claim.
type ReverseRegistrar struct {
	registry registry.Registry
	names    registry.NameStore
	rootNode chain.NodeID
	addr     chain.Address
}

func NewReverseRegistrar(reg registry.Registry, names registry.NameStore, rootNode chain.NodeID, addr chain.Address) *ReverseRegistrar {
	return &ReverseRegistrar{
		registry: reg,
		names:    names,
		rootNode: rootNode,
		addr:     addr,
	}
}

// Node derives the reverse node a Claim by addr would return, without
// touching the registry.
func (r *ReverseRegistrar) Node(addr chain.Address) chain.NodeID {
	return chain.HashNode(r.rootNode, addr.HexLabel())
}

// Claim transfers ownership of the caller's reverse node to owner. The
// returned node depends only on the caller address, never on owner, so
// a caller can delegate its reverse record to any identity without
// changing where the record lives. Store failures propagate untouched.
func (r *ReverseRegistrar) Claim(caller, owner chain.Address) (chain.NodeID, error) {
	label := caller.HexLabel()
	if err := r.registry.SetSubnodeOwner(r.rootNode, chain.LabelHash(label), owner); err != nil {
		return chain.NodeID{}, errors.Wrap(err, "error claiming reverse node")
	}

	node := chain.CombineNode(r.rootNode, chain.LabelHash(label))
	logger.Debug("claimed reverse node", "caller", caller.String(), "owner", owner.String(), "node", node.String())
	return node, nil
}

// SetName claims the caller's reverse node for the registrar itself,
// then writes the caller's reverse name record.
func (r *ReverseRegistrar) SetName(caller chain.Address, name string) (chain.NodeID, error) {
	node, err := r.Claim(caller, r.addr)
	if err != nil {
		return chain.NodeID{}, err
	}
	if err := r.names.SetName(node, name); err != nil {
		return chain.NodeID{}, errors.Wrap(err, "error writing reverse name")
	}
	return node, nil
}
