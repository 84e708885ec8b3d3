package registry

import (
	"strings"

	"github.com/mitsuha/kagami/chain"
	"github.com/mitsuha/kagami/gcrypto"
	"github.com/pkg/errors"
)

// LocalRegistry is a sqlite-backed Registry and NameStore. Mutations
// are performed as the actor identity fixed at construction: a subnode
// may only be reassigned when the actor owns its parent.
type LocalRegistry struct {
	engine *Engine
	actor  chain.Address
	bloom  *NodeBloom
}

func NewLocalRegistry(engine *Engine, actor chain.Address) (*LocalRegistry, error) {
	var nodes []chain.NodeID
	err := engine.Transaction(func(tx Transactor) error {
		var err error
		nodes, err = GetRecordedNodes(tx)
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "error warming node cache")
	}

	return &LocalRegistry{
		engine: engine,
		actor:  actor,
		bloom:  NewNodeBloomFromNodes(nodes),
	}, nil
}

func (r *LocalRegistry) Owner(node chain.NodeID) (chain.Address, error) {
	if !r.bloom.Test(node) {
		return chain.Address{}, nil
	}

	var owner chain.Address
	err := r.engine.Transaction(func(tx Transactor) error {
		var err error
		owner, err = GetNodeOwner(tx, node)
		return err
	})
	return owner, err
}

func (r *LocalRegistry) SetSubnodeOwner(parent chain.NodeID, labelHash gcrypto.Hash, owner chain.Address) error {
	node := chain.CombineNode(parent, labelHash)
	err := r.engine.Transaction(func(tx Transactor) error {
		parentOwner, err := GetNodeOwner(tx, parent)
		if err != nil {
			return err
		}
		if !parentOwner.Equal(r.actor) {
			return errors.Wrapf(ErrNotAuthorized, "node %s is not owned by %s", parent, r.actor)
		}
		return UpsertNodeOwner(tx, node, owner)
	})
	if err != nil {
		return err
	}

	r.bloom.Add(node)
	return nil
}

func (r *LocalRegistry) Name(node chain.NodeID) (string, error) {
	if !r.bloom.Test(node) {
		return "", nil
	}

	var name string
	err := r.engine.Transaction(func(tx Transactor) error {
		var err error
		name, err = GetNodeName(tx, node)
		return err
	})
	return name, err
}

func (r *LocalRegistry) SetName(node chain.NodeID, name string) error {
	err := r.engine.Transaction(func(tx Transactor) error {
		return UpsertNodeName(tx, node, name)
	})
	if err != nil {
		return err
	}

	r.bloom.Add(node)
	return nil
}

// EnsureRoot seeds ownership of the tree root and every node down to
// rootDomain for the actor. Claims against the reverse root fail with
// ErrNotAuthorized until this has run, which is a setup fault.
func (r *LocalRegistry) EnsureRoot(rootDomain string) error {
	err := r.engine.Transaction(func(tx Transactor) error {
		owner, err := GetNodeOwner(tx, chain.ZeroNode)
		if err != nil {
			return err
		}
		if !owner.IsZero() && !owner.Equal(r.actor) {
			return errors.Wrap(ErrNotAuthorized, "tree root is owned by another identity")
		}
		return UpsertNodeOwner(tx, chain.ZeroNode, r.actor)
	})
	if err != nil {
		return err
	}
	r.bloom.Add(chain.ZeroNode)

	node := chain.ZeroNode
	labels := strings.Split(rootDomain, ".")
	for i := len(labels) - 1; i >= 0; i-- {
		if err := r.SetSubnodeOwner(node, chain.LabelHash(labels[i]), r.actor); err != nil {
			return errors.Wrapf(err, "error delegating %s", labels[i])
		}
		node = chain.HashNode(node, labels[i])
	}

	logger.Info("seeded reverse root", "domain", rootDomain, "node", node.String(), "owner", r.actor.String())
	return nil
}
