package api

import (
	"github.com/mitsuha/kagami/chain"
)

type StatusRes struct {
	Network   string        `json:"network"`
	RootNode  chain.NodeID  `json:"root_node"`
	Registrar chain.Address `json:"registrar"`
}

type ClaimReq struct {
	Caller chain.Address `json:"caller"`
	Owner  chain.Address `json:"owner"`
}

type ClaimRes struct {
	Node chain.NodeID `json:"node"`
}

type SetNameReq struct {
	Caller chain.Address `json:"caller"`
	Name   string        `json:"name"`
}

type SetNameRes struct {
	Node chain.NodeID `json:"node"`
}

type NameRes struct {
	Name string `json:"name"`
}

type ReverseRes struct {
	Node chain.NodeID `json:"node"`
	Name string       `json:"name"`
}

type OwnerRes struct {
	Owner chain.Address `json:"owner"`
}
