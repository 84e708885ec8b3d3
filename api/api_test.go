package api

import (
	"net/http/httptest"
	"testing"

	"github.com/mitsuha/kagami/chain"
	"github.com/mitsuha/kagami/registrar"
	"github.com/mitsuha/kagami/registry"
	"github.com/mitsuha/kagami/resolver"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, apiKey string) (*httptest.Server, *Client) {
	engine, err := registry.NewEngine(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, registry.MigrateDB(engine))
	local, err := registry.NewLocalRegistry(engine, chain.NetworkRegtest.RegistrarAddr)
	require.NoError(t, err)
	require.NoError(t, local.EnsureRoot(chain.ReverseRootDomain))

	network := chain.NetworkRegtest
	reg := registrar.NewReverseRegistrar(local, local, network.ReverseRootNode(), network.RegistrarAddr)
	res := resolver.NewReverseResolver(local, local)

	srv := httptest.NewServer(NewAPI(network, reg, res, local, apiKey))
	t.Cleanup(srv.Close)
	return srv, NewClient(srv.URL, apiKey)
}

var (
	testCaller = chain.MustAddressFromHex("112234455c3a32fd11230c42e7bccd4a84e02010")
	testOwner  = chain.MustAddressFromHex("000000000000000000000000000000000000000a")
)

func TestAPIStatus(t *testing.T) {
	_, client := newTestServer(t, "")

	status, err := client.Status()
	require.NoError(t, err)
	require.Equal(t, "regtest", status.Network)
	require.True(t, chain.AddrReverseNode.Equal(status.RootNode))
	require.True(t, chain.NetworkRegtest.RegistrarAddr.Equal(status.Registrar))
}

func TestAPIClaim(t *testing.T) {
	_, client := newTestServer(t, "")

	res, err := client.Claim(testCaller, testOwner)
	require.NoError(t, err)
	require.True(t, chain.ReverseNode(testCaller).Equal(res.Node))

	ownerRes, err := client.Owner(res.Node)
	require.NoError(t, err)
	require.True(t, testOwner.Equal(ownerRes.Owner))

	// Claiming again for a different owner returns the same node.
	other := chain.MustAddressFromHex("000000000000000000000000000000000000000b")
	res2, err := client.Claim(testCaller, other)
	require.NoError(t, err)
	require.True(t, res.Node.Equal(res2.Node))

	ownerRes, err = client.Owner(res.Node)
	require.NoError(t, err)
	require.True(t, other.Equal(ownerRes.Owner))
}

func TestAPIReverseLookup(t *testing.T) {
	_, client := newTestServer(t, "")

	before, err := client.Reverse(testCaller)
	require.NoError(t, err)
	require.Equal(t, "", before.Name)

	nameRes, err := client.SetName(testCaller, "alice.example")
	require.NoError(t, err)

	after, err := client.Reverse(testCaller)
	require.NoError(t, err)
	require.True(t, nameRes.Node.Equal(after.Node))
	require.Equal(t, "alice.example", after.Name)
}

func TestAPIUnsetNameIsEmpty(t *testing.T) {
	_, client := newTestServer(t, "")

	res, err := client.Name(chain.Namehash("unset.addr.reverse"))
	require.NoError(t, err)
	require.Equal(t, "", res.Name)
}

func TestAPIBadAddress(t *testing.T) {
	srv, _ := newTestServer(t, "")

	client := NewClient(srv.URL, "")
	err := client.doGet("api/v1/reverse/nothex", new(ReverseRes))
	require.Error(t, err)
}

func TestAPIKeyRequired(t *testing.T) {
	srv, client := newTestServer(t, "sekrit")

	_, err := client.Status()
	require.NoError(t, err)

	badClient := NewClient(srv.URL, "wrong")
	_, err = badClient.Status()
	require.Error(t, err)
}
