package registrar

import (
	"testing"

	"github.com/mitsuha/kagami/chain"
	"github.com/mitsuha/kagami/gcrypto"
	"github.com/mitsuha/kagami/registry"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	owners   map[chain.NodeID]chain.Address
	names    map[chain.NodeID]string
	setCalls int
	failWith error
}

func newMockStore() *mockStore {
	return &mockStore{
		owners: make(map[chain.NodeID]chain.Address),
		names:  make(map[chain.NodeID]string),
	}
}

func (m *mockStore) Owner(node chain.NodeID) (chain.Address, error) {
	return m.owners[node], nil
}

func (m *mockStore) SetSubnodeOwner(parent chain.NodeID, labelHash gcrypto.Hash, owner chain.Address) error {
	m.setCalls++
	if m.failWith != nil {
		return m.failWith
	}
	m.owners[chain.CombineNode(parent, labelHash)] = owner
	return nil
}

func (m *mockStore) Name(node chain.NodeID) (string, error) {
	return m.names[node], nil
}

func (m *mockStore) SetName(node chain.NodeID, name string) error {
	m.names[node] = name
	return nil
}

var (
	callerAddr = chain.MustAddressFromHex("112234455c3a32fd11230c42e7bccd4a84e02010")
	ownerA     = chain.MustAddressFromHex("000000000000000000000000000000000000000a")
	ownerB     = chain.MustAddressFromHex("000000000000000000000000000000000000000b")
)

func newTestRegistrar(store *mockStore) *ReverseRegistrar {
	return NewReverseRegistrar(store, store, chain.AddrReverseNode, chain.NetworkRegtest.RegistrarAddr)
}

func TestClaimNodeDependsOnlyOnCaller(t *testing.T) {
	store := newMockStore()
	reg := newTestRegistrar(store)

	nodeA, err := reg.Claim(callerAddr, ownerA)
	require.NoError(t, err)
	nodeB, err := reg.Claim(callerAddr, ownerB)
	require.NoError(t, err)

	require.True(t, nodeA.Equal(nodeB))
	require.True(t, nodeA.Equal(chain.ReverseNode(callerAddr)))
	require.True(t, nodeA.Equal(reg.Node(callerAddr)))

	// Last write wins at the store.
	owner, err := store.Owner(nodeA)
	require.NoError(t, err)
	require.True(t, ownerB.Equal(owner))
}

func TestClaimSingleStoreCall(t *testing.T) {
	store := newMockStore()
	reg := newTestRegistrar(store)

	_, err := reg.Claim(callerAddr, ownerA)
	require.NoError(t, err)
	require.Equal(t, 1, store.setCalls)
}

func TestClaimIdempotent(t *testing.T) {
	store := newMockStore()
	reg := newTestRegistrar(store)

	node1, err := reg.Claim(callerAddr, ownerA)
	require.NoError(t, err)
	node2, err := reg.Claim(callerAddr, ownerA)
	require.NoError(t, err)

	require.True(t, node1.Equal(node2))
	owner, err := store.Owner(node1)
	require.NoError(t, err)
	require.True(t, ownerA.Equal(owner))
	require.Len(t, store.owners, 1)
}

func TestClaimDistinctCallers(t *testing.T) {
	store := newMockStore()
	reg := newTestRegistrar(store)

	other := chain.MustAddressFromHex("112234455c3a32fd11230c42e7bccd4a84e02011")
	node1, err := reg.Claim(callerAddr, ownerA)
	require.NoError(t, err)
	node2, err := reg.Claim(other, ownerA)
	require.NoError(t, err)
	require.False(t, node1.Equal(node2))
}

func TestClaimPropagatesStoreErrors(t *testing.T) {
	store := newMockStore()
	store.failWith = errors.WithStack(registry.ErrNotAuthorized)
	reg := newTestRegistrar(store)

	_, err := reg.Claim(callerAddr, ownerA)
	require.ErrorIs(t, err, registry.ErrNotAuthorized)
}

func TestSetName(t *testing.T) {
	store := newMockStore()
	reg := newTestRegistrar(store)

	node, err := reg.SetName(callerAddr, "alice.example")
	require.NoError(t, err)
	require.True(t, node.Equal(chain.ReverseNode(callerAddr)))

	owner, err := store.Owner(node)
	require.NoError(t, err)
	require.True(t, chain.NetworkRegtest.RegistrarAddr.Equal(owner))

	name, err := store.Name(node)
	require.NoError(t, err)
	require.Equal(t, "alice.example", name)
}

func TestClaimAgainstLocalRegistry(t *testing.T) {
	engine, err := registry.NewEngine(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, registry.MigrateDB(engine))
	local, err := registry.NewLocalRegistry(engine, chain.NetworkRegtest.RegistrarAddr)
	require.NoError(t, err)
	require.NoError(t, local.EnsureRoot(chain.ReverseRootDomain))

	reg := NewReverseRegistrar(local, local, chain.AddrReverseNode, chain.NetworkRegtest.RegistrarAddr)
	node, err := reg.Claim(callerAddr, ownerA)
	require.NoError(t, err)

	owner, err := local.Owner(node)
	require.NoError(t, err)
	require.True(t, ownerA.Equal(owner))
}
