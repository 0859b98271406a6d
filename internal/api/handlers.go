package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/specialistvlad/treegridgo/internal/ctxlog"
	"github.com/specialistvlad/treegridgo/internal/mapping"
	"github.com/specialistvlad/treegridgo/internal/tree"
)

// maxBodyBytes bounds request bodies; console screens send a few thousand rows.
const maxBodyBytes = 8 << 20

// forestRequest is the body of every endpoint that builds a forest. Callers
// send either ready records or raw rows plus the preset naming their fields.
type forestRequest struct {
	Records      []tree.Record    `json:"records"`
	Preset       string           `json:"preset,omitempty"`
	Rows         []map[string]any `json:"rows,omitempty"`
	OrphanPolicy string           `json:"orphanPolicy,omitempty"`
}

type flattenRequest struct {
	Forest tree.Forest `json:"forest"`
}

// errorResponse is the JSON body of every failed request.
type errorResponse struct {
	Error string `json:"error"`
	// Kind is set for tree build failures.
	Kind string `json:"kind,omitempty"`
	// IDs names the offending records of a tree build failure.
	IDs []string `json:"ids,omitempty"`
}

func health(w http.ResponseWriter, r *http.Request) {
	ctxlog.FromContext(r.Context()).Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

func buildForest(w http.ResponseWriter, r *http.Request) {
	forest, ok := decodeAndBuild(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, forest)
}

func findNode(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, r, http.StatusBadRequest, errorResponse{Error: "query parameter 'id' is required"})
		return
	}
	forest, ok := decodeAndBuild(w, r)
	if !ok {
		return
	}
	node, found := tree.FindNode(forest, id)
	if !found {
		writeNodeNotFound(w, r, id)
		return
	}
	writeJSON(w, r, http.StatusOK, node)
}

func parentOptions(w http.ResponseWriter, r *http.Request) {
	forest, ok := decodeAndBuild(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, tree.FilterOptionsExcluding(forest, r.URL.Query().Get("exclude")))
}

func flatten(w http.ResponseWriter, r *http.Request) {
	var req flattenRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, r, http.StatusOK, tree.Flatten(req.Forest))
}

// decodeAndBuild decodes a forestRequest and builds its forest, writing the
// error response itself when something fails.
func decodeAndBuild(w http.ResponseWriter, r *http.Request) (tree.Forest, bool) {
	var req forestRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return nil, false
	}

	policy, err := tree.ParseOrphanPolicy(req.OrphanPolicy)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return nil, false
	}

	records := req.Records
	if len(req.Rows) > 0 {
		if len(records) > 0 {
			writeError(w, r, http.StatusBadRequest, errorResponse{Error: "send either 'records' or 'rows', not both"})
			return nil, false
		}
		fields, err := mapping.Preset(req.Preset)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return nil, false
		}
		records, err = fields.Records(req.Rows)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return nil, false
		}
	}

	forest, err := tree.BuildForest(records, tree.WithOrphanPolicy(policy))
	if err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, buildErrorResponse(err))
		return nil, false
	}
	ctxlog.FromContext(r.Context()).Debug("Forest built.", "records", len(records), "roots", len(forest))
	return forest, true
}

// buildErrorResponse classifies a tree build error.
func buildErrorResponse(err error) errorResponse {
	resp := errorResponse{Error: err.Error()}

	var (
		dupErr    *tree.DuplicateIDError
		orphanErr *tree.OrphanReferenceError
		cycErr    *tree.CyclicReferenceError
		emptyErr  *tree.EmptyIDError
	)
	switch {
	case errors.As(err, &dupErr):
		resp.Kind, resp.IDs = "duplicate_id", []string{dupErr.ID}
	case errors.As(err, &orphanErr):
		resp.Kind, resp.IDs = "orphan_reference", []string{orphanErr.ID, orphanErr.ParentID}
	case errors.As(err, &cycErr):
		resp.Kind, resp.IDs = "cyclic_reference", cycErr.IDs
	case errors.As(err, &emptyErr):
		resp.Kind = "empty_id"
	}
	return resp
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.FromContext(r.Context()).Error("Failed to write response.", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, resp errorResponse) {
	ctxlog.FromContext(r.Context()).Warn("Request rejected.", "status", status, "error", resp.Error)
	writeJSON(w, r, status, resp)
}
