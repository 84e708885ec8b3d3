package chain

import (
	"testing"

	"github.com/mitsuha/kagami/testutil"
	"github.com/stretchr/testify/require"
)

func TestNamehash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		out  string
	}{
		{
			"empty name",
			"",
			"0000000000000000000000000000000000000000000000000000000000000000",
		},
		{
			"top level",
			"eth",
			"93cdeb708b7545dc668eb9280176169d1c33cfd8ed6f04690a0bcc88a93fc4ae",
		},
		{
			"second level",
			"foo.eth",
			"de9b09fd7c5f901e23a3f19fecc54828e9c848539801e86591bd9801b019f84f",
		},
		{
			"reverse root",
			"addr.reverse",
			"91d1777781884d03a6757a803996e38de2a42967fb37eeaca72729271025a9e2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := Namehash(tt.in)
			require.Equal(t, tt.out, node.String())
		})
	}
}

func TestHashNodeDeterministic(t *testing.T) {
	t.Parallel()

	parent := Namehash("reverse")
	a := HashNode(parent, "addr")
	b := HashNode(parent, "addr")
	require.True(t, a.Equal(b))
	require.True(t, a.Equal(CombineNode(parent, LabelHash("addr"))))
}

func TestHashNodeParentSensitive(t *testing.T) {
	t.Parallel()

	a := HashNode(Namehash("eth"), "foo")
	b := HashNode(Namehash("reverse"), "foo")
	require.False(t, a.Equal(b))
}

func TestHashNodeInnerDigestRequired(t *testing.T) {
	t.Parallel()

	// Combining the raw label bytes with the parent, without the
	// inner label digest, lands on a different tree position.
	parent := Namehash("reverse")
	withInner := HashNode(parent, "addr")
	withoutInner := CombineNode(parent, []byte("addr"))
	require.False(t, withInner.Equal(withoutInner))
}

func TestReverseNode(t *testing.T) {
	t.Parallel()

	addr := MustAddressFromHex("0x112234455c3a32fd11230c42e7bccd4a84e02010")
	require.Equal(t, "112234455c3a32fd11230c42e7bccd4a84e02010.addr.reverse", ReverseName(addr))

	// Full chain from the tree root, label by label.
	exp := HashNode(HashNode(HashNode(ZeroNode, "reverse"), "addr"), addr.HexLabel())
	node := ReverseNode(addr)
	require.True(t, exp.Equal(node))
	require.True(t, node.Equal(Namehash(ReverseName(addr))))
	require.True(t, AddrReverseNode.Equal(Namehash("addr.reverse")))
}

func TestNodeIDCodecs(t *testing.T) {
	t.Parallel()

	node := Namehash("eth")
	parsed, err := NewNodeIDFromHex("0x" + node.String())
	require.NoError(t, err)
	require.True(t, node.Equal(parsed))
	testutil.RequireEqualHexBytes(t, node.String(), node.Bytes())

	_, err = NewNodeIDFromHex("1234")
	require.Error(t, err)
}

func TestNetworkRootNode(t *testing.T) {
	t.Parallel()

	for _, network := range []*Network{NetworkMain, NetworkRegtest} {
		require.True(t, network.ReverseRootNode().Equal(AddrReverseNode))
	}

	_, err := NetworkFromName("simnet")
	require.Error(t, err)
}
