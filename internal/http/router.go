package http

import (
	nethttp "net/http"

	"github.com/gorilla/mux"
)

// NewRouter registers the gateway routes. Profile routes require the
// auth middleware; health probes and search do not.
func NewRouter(handler *Handler, auth *AuthMiddleware) nethttp.Handler {
	router := mux.NewRouter()

	// Each subrouter resolves method mismatches on its own, so the
	// handler has to be set on every level.
	notAllowed := methodNotAllowedHandler()
	router.MethodNotAllowedHandler = notAllowed

	router.HandleFunc("/health", handler.Health).Methods(nethttp.MethodGet)
	router.HandleFunc("/ready", handler.Ready).Methods(nethttp.MethodGet)

	v1 := router.PathPrefix("/v1").Subrouter()
	v1.MethodNotAllowedHandler = notAllowed
	v1.HandleFunc("/search", handler.Search).Methods(nethttp.MethodPost)
	v1.HandleFunc("/providers/status", handler.ProvidersStatus).Methods(nethttp.MethodGet)

	me := v1.PathPrefix("/profile/me").Subrouter()
	me.MethodNotAllowedHandler = notAllowed
	me.Use(auth.Middleware)
	me.HandleFunc("", handler.Profile).Methods(nethttp.MethodGet)
	me.HandleFunc("/favorites", handler.ListFavorites).Methods(nethttp.MethodGet)
	me.HandleFunc("/favorites", handler.AddFavorite).Methods(nethttp.MethodPut)
	me.HandleFunc("/favorites/{type}/{name}", handler.RemoveFavorite).Methods(nethttp.MethodDelete)

	return router
}

func methodNotAllowedHandler() nethttp.Handler {
	return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(nethttp.StatusMethodNotAllowed)
		_, _ = w.Write([]byte(`{"error":"method not allowed"}` + "\n"))
	})
}
