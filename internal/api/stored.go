package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/specialistvlad/treegridgo/internal/ctxlog"
	"github.com/specialistvlad/treegridgo/internal/foreststore"
	"github.com/specialistvlad/treegridgo/internal/tree"
)

// storedForests serves the /v1/forests routes backed by a forest store.
type storedForests struct {
	store *foreststore.Store
}

// pathEntry is one step of a breadcrumb.
type pathEntry struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

func (h *storedForests) list(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.store.List(r.Context()))
}

func (h *storedForests) put(w http.ResponseWriter, r *http.Request) {
	forest, ok := decodeAndBuild(w, r)
	if !ok {
		return
	}
	snap, err := h.store.Put(r.Context(), mux.Vars(r)["name"], forest)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	ctxlog.FromContext(r.Context()).Info("Forest replaced.", "name", snap.Name, "nodes", snap.Stats.Nodes)
	writeJSON(w, r, http.StatusOK, snap)
}

func (h *storedForests) get(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, snap.Forest)
}

func (h *storedForests) delete(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if !h.store.Delete(r.Context(), name) {
		writeError(w, r, http.StatusNotFound, errorResponse{Error: fmt.Sprintf("forest %q not found", name)})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *storedForests) records(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, tree.Flatten(snap.Forest))
}

func (h *storedForests) options(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, tree.FilterOptionsExcluding(snap.Forest, r.URL.Query().Get("exclude")))
}

func (h *storedForests) node(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}
	id := mux.Vars(r)["id"]
	node, found := tree.FindNode(snap.Forest, id)
	if !found {
		writeNodeNotFound(w, r, id)
		return
	}
	writeJSON(w, r, http.StatusOK, node)
}

func (h *storedForests) path(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}
	id := mux.Vars(r)["id"]
	nodes, found := tree.PathTo(snap.Forest, id)
	if !found {
		writeNodeNotFound(w, r, id)
		return
	}
	entries := make([]pathEntry, len(nodes))
	for i, n := range nodes {
		entries[i] = pathEntry{ID: n.ID, Label: n.Label}
	}
	writeJSON(w, r, http.StatusOK, entries)
}

func (h *storedForests) descendants(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}
	id := mux.Vars(r)["id"]
	ids := tree.Descendants(snap.Forest, id)
	if ids == nil {
		writeNodeNotFound(w, r, id)
		return
	}
	writeJSON(w, r, http.StatusOK, ids)
}

// snapshot looks up the forest named in the route, writing a 404 when it is
// not stored.
func (h *storedForests) snapshot(w http.ResponseWriter, r *http.Request) (*foreststore.Snapshot, bool) {
	name := mux.Vars(r)["name"]
	snap, ok := h.store.Get(r.Context(), name)
	if !ok {
		writeError(w, r, http.StatusNotFound, errorResponse{Error: fmt.Sprintf("forest %q not found", name)})
		return nil, false
	}
	return snap, true
}

func writeNodeNotFound(w http.ResponseWriter, r *http.Request, id string) {
	writeError(w, r, http.StatusNotFound, errorResponse{Error: fmt.Sprintf("node %q not found", id)})
}
