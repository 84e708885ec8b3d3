package api

import (
	"fmt"

	"github.com/mitsuha/kagami/chain"
	"github.com/mitsuha/kagami/ghttp"
)

type Client struct {
	url    string
	apiKey string
}

func NewClient(url string, apiKey string) *Client {
	return &Client{
		url:    url,
		apiKey: apiKey,
	}
}

func (c *Client) Status() (*StatusRes, error) {
	res := new(StatusRes)
	err := c.doGet("api/v1/status", res)
	return res, err
}

func (c *Client) Claim(caller, owner chain.Address) (*ClaimRes, error) {
	res := new(ClaimRes)
	err := c.doPost("api/v1/claims", &ClaimReq{
		Caller: caller,
		Owner:  owner,
	}, res)
	return res, err
}

func (c *Client) SetName(caller chain.Address, name string) (*SetNameRes, error) {
	res := new(SetNameRes)
	err := c.doPost("api/v1/names", &SetNameReq{
		Caller: caller,
		Name:   name,
	}, res)
	return res, err
}

func (c *Client) Name(node chain.NodeID) (*NameRes, error) {
	res := new(NameRes)
	err := c.doGet("api/v1/names/"+node.String(), res)
	return res, err
}

func (c *Client) Owner(node chain.NodeID) (*OwnerRes, error) {
	res := new(OwnerRes)
	err := c.doGet("api/v1/owners/"+node.String(), res)
	return res, err
}

func (c *Client) Reverse(addr chain.Address) (*ReverseRes, error) {
	res := new(ReverseRes)
	err := c.doGet("api/v1/reverse/"+addr.HexLabel(), res)
	return res, err
}

func (c *Client) doGet(path string, resObj interface{}) error {
	return ghttp.DefaultClient.DoGetJSON(
		fmt.Sprintf("%s/%s", c.url, path),
		resObj,
		ghttp.WithHeader("X-API-Key", c.apiKey),
	)
}

func (c *Client) doPost(path string, reqObj interface{}, resObj interface{}) error {
	return ghttp.DefaultClient.DoPostJSON(
		fmt.Sprintf("%s/%s", c.url, path),
		reqObj,
		resObj,
		ghttp.WithHeader("X-API-Key", c.apiKey),
	)
}
