package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mitsuha/kagami"
	"github.com/mitsuha/kagami/api"
	"github.com/pkg/errors"
)

func apiClient() (*api.Client, error) {
	var url string
	if serverURL == "" {
		url = fmt.Sprintf("http://localhost:%d", kagami.Config.Network.APIPort)
	} else {
		url = serverURL
	}

	client := api.NewClient(url, apiKey)

	_, err := client.Status()
	if err != nil {
		if strings.Contains(err.Error(), "connection refused") {
			return nil, errors.New("connection to kagami refused - did you select the right network?")
		}
		return nil, err
	}

	return client, nil
}

func printJSON(in interface{}) error {
	out, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))
	return nil
}
