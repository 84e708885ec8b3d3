package client

import (
	"encoding/base64"

	"github.com/mitsuha/kagami/chain"
	"github.com/mitsuha/kagami/gcrypto"
	"github.com/mitsuha/kagami/registry"
	"github.com/pkg/errors"
	"github.com/ybbus/jsonrpc/v2"
)

// NotAuthorizedCode is the JSON-RPC error code registry nodes return
// when the acting identity does not own the parent node.
const NotAuthorizedCode = -32001

// RegistryRPCClient implements registry.Registry and registry.NameStore
// against a remote registry node's JSON-RPC interface.
type RegistryRPCClient struct {
	client jsonrpc.RPCClient
}

func NewRegistryClient(url string, apiKey string) *RegistryRPCClient {
	var client jsonrpc.RPCClient
	if apiKey == "" {
		client = jsonrpc.NewClient(url)
	} else {
		client = jsonrpc.NewClientWithOpts(url, &jsonrpc.RPCClientOpts{
			CustomHeaders: map[string]string{
				"Authorization": "Basic " + base64.StdEncoding.EncodeToString([]byte("x:"+apiKey)),
			},
		})
	}

	return &RegistryRPCClient{
		client: client,
	}
}

func (c *RegistryRPCClient) Owner(node chain.NodeID) (chain.Address, error) {
	var ownerHex string
	err := c.client.CallFor(&ownerHex, "registry_owner", node.String())
	if err != nil {
		return chain.Address{}, errors.Wrap(err, "error getting node owner")
	}
	if ownerHex == "" {
		return chain.Address{}, nil
	}
	return chain.NewAddressFromHex(ownerHex)
}

func (c *RegistryRPCClient) SetSubnodeOwner(parent chain.NodeID, labelHash gcrypto.Hash, owner chain.Address) error {
	res, err := c.client.Call("registry_setSubnodeOwner", parent.String(), labelHash.String(), owner.HexLabel())
	if err != nil {
		return errors.Wrap(err, "error setting subnode owner")
	}
	return convertRPCError(res.Error)
}

func (c *RegistryRPCClient) Name(node chain.NodeID) (string, error) {
	var name string
	err := c.client.CallFor(&name, "resolver_name", node.String())
	if err != nil {
		return "", errors.Wrap(err, "error getting reverse name")
	}
	return name, nil
}

func (c *RegistryRPCClient) SetName(node chain.NodeID, name string) error {
	res, err := c.client.Call("resolver_setName", node.String(), name)
	if err != nil {
		return errors.Wrap(err, "error setting reverse name")
	}
	return convertRPCError(res.Error)
}

func convertRPCError(rpcErr *jsonrpc.RPCError) error {
	if rpcErr == nil {
		return nil
	}
	if rpcErr.Code == NotAuthorizedCode {
		return errors.Wrap(registry.ErrNotAuthorized, rpcErr.Message)
	}
	return errors.WithStack(rpcErr)
}
