package api

import (
	"fmt"
	"net/http"

	"github.com/mitsuha/kagami/chain"
	"github.com/mitsuha/kagami/client"
	"github.com/mitsuha/kagami/registrar"
	"github.com/mitsuha/kagami/registry"
	"github.com/mitsuha/kagami/resolver"
	"github.com/pkg/errors"
	"gopkg.in/tomb.v2"
)

// Start wires the service and serves it until the tomb dies. When
// registryURL is empty the registry lives in a local sqlite database
// under prefix; otherwise all ownership and name records go through the
// remote registry node at that URL.
func Start(tmb *tomb.Tomb, network *chain.Network, prefix, apiKey, registryURL, registryAPIKey string) error {
	var store registry.Registry
	var names registry.NameStore
	if registryURL == "" {
		engine, err := registry.NewEngine(prefix)
		if err != nil {
			return err
		}
		if err := registry.MigrateDB(engine); err != nil {
			return err
		}

		local, err := registry.NewLocalRegistry(engine, network.RegistrarAddr)
		if err != nil {
			return err
		}
		if err := local.EnsureRoot(network.ReverseRoot); err != nil {
			return errors.Wrap(err, "error seeding reverse root")
		}
		store = local
		names = local
	} else {
		remote := client.NewRegistryClient(registryURL, registryAPIKey)
		store = remote
		names = remote
	}

	rootNode := network.ReverseRootNode()
	reg := registrar.NewReverseRegistrar(store, names, rootNode, network.RegistrarAddr)
	res := resolver.NewReverseResolver(store, names)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", network.APIPort),
		Handler: NewAPI(network, reg, res, store, apiKey),
	}

	tmb.Go(func() error {
		apiLogger.Info("starting HTTP server", "port", network.APIPort)
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "error starting HTTP server")
		}
		return nil
	})

	apiLogger.Info("started reverse registrar", "root", rootNode.String())
	<-tmb.Dying()
	srv.Close()
	apiLogger.Info("shut down reverse registrar")
	return tmb.Err()
}
