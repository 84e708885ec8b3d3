package registry

import (
	"github.com/mitsuha/kagami/chain"
	"github.com/mitsuha/kagami/gcrypto"
	"github.com/pkg/errors"
)

// ErrNotAuthorized is returned when a mutation is attempted on a node
// whose parent is not owned by the acting identity. Seeing it on the
// reverse root is a deployment fault, not a runtime one.
var ErrNotAuthorized = errors.New("not authorized")

// Registry is the hierarchical ownership store. Owner returns the zero
// address for nodes that have never been claimed.
type Registry interface {
	Owner(node chain.NodeID) (chain.Address, error)
	SetSubnodeOwner(parent chain.NodeID, labelHash gcrypto.Hash, owner chain.Address) error
}

// NameStore holds the reverse name records. Name returns the empty
// string, never an error, for nodes with no record.
type NameStore interface {
	Name(node chain.NodeID) (string, error)
	SetName(node chain.NodeID, name string) error
}
