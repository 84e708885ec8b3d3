package chain

import (
	"database/sql/driver"
	"encoding/hex"
	"encoding/json"
	"reflect"
	"strings"

	"github.com/mitsuha/kagami/gcrypto"
	"github.com/pkg/errors"
)

const NodeIDSize = 32

// NodeID identifies a position in the name tree. It is a pure function
// of the parent node and the edge label, so equal derivations always
// collide on the same identifier.
type NodeID [NodeIDSize]byte

// ZeroNode is the root of the entire name tree.
var ZeroNode NodeID

func NewNodeIDFromBytes(b []byte) (NodeID, error) {
	var node NodeID
	if len(b) != NodeIDSize {
		return node, errors.Errorf("node ID must be %d bytes, got %d", NodeIDSize, len(b))
	}
	copy(node[:], b)
	return node, nil
}

func NewNodeIDFromHex(s string) (NodeID, error) {
	var node NodeID
	s = strings.TrimPrefix(s, "0x")
	buf, err := hex.DecodeString(s)
	if err != nil {
		return node, errors.Wrap(err, "error decoding node hex")
	}
	return NewNodeIDFromBytes(buf)
}

func MustNodeIDFromHex(s string) NodeID {
	node, err := NewNodeIDFromHex(s)
	if err != nil {
		panic(err)
	}
	return node
}

func (n NodeID) String() string {
	return hex.EncodeToString(n[:])
}

func (n NodeID) Bytes() []byte {
	return n[:]
}

func (n NodeID) IsZero() bool {
	return n == NodeID{}
}

func (n NodeID) Equal(other NodeID) bool {
	return n == other
}

func (n NodeID) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.String())
}

func (n *NodeID) UnmarshalJSON(b []byte) error {
	var hexStr string
	if err := json.Unmarshal(b, &hexStr); err != nil {
		return errors.WithStack(err)
	}
	node, err := NewNodeIDFromHex(hexStr)
	if err != nil {
		return err
	}
	*n = node
	return nil
}

func (n NodeID) Value() (driver.Value, error) {
	return n.String(), nil
}

func (n *NodeID) Scan(src interface{}) error {
	switch t := src.(type) {
	case string:
		node, err := NewNodeIDFromHex(t)
		if err != nil {
			return err
		}
		*n = node
	default:
		return errors.Errorf("cannot scan %v into node ID", reflect.TypeOf(src))
	}

	return nil
}

// LabelHash digests a single tree edge label.
func LabelHash(label string) gcrypto.Hash {
	return gcrypto.Keccak256([]byte(label))
}

// CombineNode derives a child node from a parent and an already-hashed
// label. This is the only node combinator in the tree; the label is
// always digested before being combined with the parent, and skipping
// that inner digest derives a node in a different (wrong) tree.
func CombineNode(parent NodeID, labelHash gcrypto.Hash) NodeID {
	child, err := NewNodeIDFromBytes(gcrypto.Keccak256(parent[:], labelHash))
	if err != nil {
		panic(err)
	}
	return child
}

func HashNode(parent NodeID, label string) NodeID {
	return CombineNode(parent, LabelHash(label))
}

// Namehash derives the node for a full dotted name, walking labels
// right to left from the tree root. Namehash("") is ZeroNode.
func Namehash(name string) NodeID {
	node := ZeroNode
	if name == "" {
		return node
	}

	labels := strings.Split(name, ".")
	for i := len(labels) - 1; i >= 0; i-- {
		node = HashNode(node, labels[i])
	}
	return node
}
