package main

import (
	"github.com/mitsuha/kagami/cmd/kagami/cmd"
)

func main() {
	cmd.Execute()
}
