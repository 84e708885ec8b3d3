package registry

import (
	"sync"

	"github.com/mitsuha/kagami/chain"
	"github.com/willf/bloom"
)

// https://hur.st/bloomfilter/?n=1M&p=1.0E-7&m=&k=

const (
	NodeBloomM = 3354775
	NodeBloomK = 23
)

// NodeBloom is a negative cache over nodes with any ownership or name
// record. A miss means the node is definitely unrecorded, so reads can
// skip the database entirely.
type NodeBloom struct {
	filter *bloom.BloomFilter
	mtx    sync.Mutex
}

func NewNodeBloomFromNodes(nodes []chain.NodeID) *NodeBloom {
	filter := bloom.New(NodeBloomM, NodeBloomK)
	for _, node := range nodes {
		filter.Add(node.Bytes())
	}

	return &NodeBloom{
		filter: filter,
	}
}

func (b *NodeBloom) Add(node chain.NodeID) {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	b.filter.Add(node.Bytes())
}

func (b *NodeBloom) Test(node chain.NodeID) bool {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	return b.filter.Test(node.Bytes())
}
