package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mitsuha/kagami/chain"
	"github.com/mitsuha/kagami/log"
	"github.com/mitsuha/kagami/registrar"
	"github.com/mitsuha/kagami/registry"
	"github.com/mitsuha/kagami/resolver"
	"github.com/pkg/errors"
)

var apiLogger = log.ModuleLogger("api")

type ErrorResponse struct {
	Msg string `json:"msg"`
}

var invalidJSONRes = &ErrorResponse{
	Msg: "Mal-formed JSON payload.",
}

func UnmarshalRequestJSON(w http.ResponseWriter, r *http.Request, in interface{}) bool {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(in); err == nil {
		return true
	}
	w.WriteHeader(400)
	MarshalResponseJSON(w, invalidJSONRes)
	return false
}

func MarshalErrorJSON(w http.ResponseWriter, err error, code int) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(code)
	apiLogger.Error("error handling request", "err", err)
	MarshalResponseJSON(w, &ErrorResponse{Msg: err.Error()})
}

func MarshalResponseJSON(w http.ResponseWriter, out interface{}) {
	data, err := json.Marshal(out)
	if err != nil {
		apiLogger.Fatal("error marshaling JSON response, shutting down", "err", err)
	}
	if _, err := w.Write(data); err != nil {
		apiLogger.Warning("error writing JSON response")
	}
}

// API serves the reverse resolution service over HTTP. The caller
// field of mutating requests is the authenticated caller identity; the
// API key boundary is what keeps that field trustworthy, so deployments
// exposed beyond localhost must set one.
type API struct {
	network   *chain.Network
	registrar *registrar.ReverseRegistrar
	resolver  *resolver.ReverseResolver
	registry  registry.Registry
	apiKey    string
}

func NewAPI(network *chain.Network, reg *registrar.ReverseRegistrar, res *resolver.ReverseResolver, store registry.Registry, apiKey string) http.Handler {
	api := &API{
		network:   network,
		registrar: reg,
		resolver:  res,
		registry:  store,
		apiKey:    apiKey,
	}
	r := mux.NewRouter()
	r.Use(api.apiKeyMiddleware)
	v1 := r.PathPrefix("/api/v1").Subrouter()
	getOnly(v1.HandleFunc("/status", api.Status))
	jsonPostOnly(v1.HandleFunc("/claims", api.HandleClaimPOST))
	jsonPostOnly(v1.HandleFunc("/names", api.HandleSetNamePOST))
	getOnly(v1.HandleFunc("/names/{node}", api.HandleNameGET))
	getOnly(v1.HandleFunc("/owners/{node}", api.HandleOwnerGET))
	getOnly(v1.HandleFunc("/reverse/{address}", api.HandleReverseGET))
	return r
}

func (a *API) Status(w http.ResponseWriter, r *http.Request) {
	MarshalResponseJSON(w, &StatusRes{
		Network:   a.network.Name,
		RootNode:  a.network.ReverseRootNode(),
		Registrar: a.network.RegistrarAddr,
	})
}

func (a *API) HandleClaimPOST(w http.ResponseWriter, r *http.Request) {
	req := new(ClaimReq)
	if !UnmarshalRequestJSON(w, r, req) {
		return
	}

	node, err := a.registrar.Claim(req.Caller, req.Owner)
	if err != nil {
		MarshalErrorJSON(w, err, errCode(err))
		return
	}
	MarshalResponseJSON(w, &ClaimRes{Node: node})
}

func (a *API) HandleSetNamePOST(w http.ResponseWriter, r *http.Request) {
	req := new(SetNameReq)
	if !UnmarshalRequestJSON(w, r, req) {
		return
	}

	node, err := a.registrar.SetName(req.Caller, req.Name)
	if err != nil {
		MarshalErrorJSON(w, err, errCode(err))
		return
	}
	MarshalResponseJSON(w, &SetNameRes{Node: node})
}

func (a *API) HandleNameGET(w http.ResponseWriter, r *http.Request) {
	node, ok := nodeVar(w, r)
	if !ok {
		return
	}

	name, err := a.resolver.Name(node)
	if err != nil {
		MarshalErrorJSON(w, err, 500)
		return
	}
	MarshalResponseJSON(w, &NameRes{Name: name})
}

func (a *API) HandleOwnerGET(w http.ResponseWriter, r *http.Request) {
	node, ok := nodeVar(w, r)
	if !ok {
		return
	}

	owner, err := a.registry.Owner(node)
	if err != nil {
		MarshalErrorJSON(w, err, 500)
		return
	}
	MarshalResponseJSON(w, &OwnerRes{Owner: owner})
}

func (a *API) HandleReverseGET(w http.ResponseWriter, r *http.Request) {
	addr, err := chain.NewAddressFromHex(mux.Vars(r)["address"])
	if err != nil {
		MarshalErrorJSON(w, err, 400)
		return
	}

	node := a.registrar.Node(addr)
	name, err := a.resolver.Name(node)
	if err != nil {
		MarshalErrorJSON(w, err, 500)
		return
	}
	MarshalResponseJSON(w, &ReverseRes{Node: node, Name: name})
}

func (a *API) apiKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.apiKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		providedKey := r.Header.Get("X-API-Key")
		if providedKey != a.apiKey {
			MarshalErrorJSON(w, errors.New("invalid API key"), 401)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func nodeVar(w http.ResponseWriter, r *http.Request) (chain.NodeID, bool) {
	node, err := chain.NewNodeIDFromHex(mux.Vars(r)["node"])
	if err != nil {
		MarshalErrorJSON(w, err, 400)
		return chain.NodeID{}, false
	}
	return node, true
}

func errCode(err error) int {
	if errors.Is(err, registry.ErrNotAuthorized) {
		return 403
	}
	return 500
}

func getOnly(route *mux.Route) {
	route.Methods("GET")
}

func postOnly(route *mux.Route) *mux.Route {
	route.Methods("POST")
	return route
}

func jsonPostOnly(route *mux.Route) {
	postOnly(route).
		Headers("Content-Type", "application/json")
}
