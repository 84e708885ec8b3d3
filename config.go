package kagami

import (
	"github.com/mitsuha/kagami/chain"
)

type config struct {
	Network *chain.Network
	Prefix  string
}

var Config = new(config)
