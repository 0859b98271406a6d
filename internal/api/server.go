package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/specialistvlad/treegridgo/internal/foreststore"
)

// NewRouter wires the API routes and middleware. Stored forest routes are
// served from store.
func NewRouter(logger *slog.Logger, store *foreststore.Store) http.Handler {
	r := mux.NewRouter()
	r.Use(requestContext(logger))
	r.Use(accessLog)

	r.HandleFunc("/health", health).Methods(http.MethodGet)

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/forest", buildForest).Methods(http.MethodPost)
	v1.HandleFunc("/forest/find", findNode).Methods(http.MethodPost)
	v1.HandleFunc("/forest/options", parentOptions).Methods(http.MethodPost)
	v1.HandleFunc("/flatten", flatten).Methods(http.MethodPost)

	stored := &storedForests{store: store}
	v1.HandleFunc("/forests", stored.list).Methods(http.MethodGet)
	v1.HandleFunc("/forests/{name}", stored.get).Methods(http.MethodGet)
	v1.HandleFunc("/forests/{name}", stored.put).Methods(http.MethodPut)
	v1.HandleFunc("/forests/{name}", stored.delete).Methods(http.MethodDelete)
	v1.HandleFunc("/forests/{name}/records", stored.records).Methods(http.MethodGet)
	v1.HandleFunc("/forests/{name}/options", stored.options).Methods(http.MethodGet)
	v1.HandleFunc("/forests/{name}/nodes/{id}", stored.node).Methods(http.MethodGet)
	v1.HandleFunc("/forests/{name}/nodes/{id}/path", stored.path).Methods(http.MethodGet)
	v1.HandleFunc("/forests/{name}/nodes/{id}/descendants", stored.descendants).Methods(http.MethodGet)

	return r
}

// NewServer creates an HTTP server for the API on addr.
func NewServer(addr string, logger *slog.Logger, store *foreststore.Store) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           NewRouter(logger, store),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
