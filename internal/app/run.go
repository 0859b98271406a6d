package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/specialistvlad/treegridgo/internal/api"
	"github.com/specialistvlad/treegridgo/internal/ctxlog"
	"github.com/specialistvlad/treegridgo/internal/foreststore"
	"github.com/specialistvlad/treegridgo/internal/render"
	"github.com/specialistvlad/treegridgo/internal/tree"
)

const shutdownTimeout = 5 * time.Second

// Run executes the configured action. For "serve" it blocks until ctx is
// cancelled, preloading the source forest when a source is configured; every
// other action loads the records once and returns.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.With(ctxlog.WithLogger(ctx, a.logger), "action", a.config.Action)
	ctxlog.FromContext(ctx).Debug("App.Run method started.")

	a.startHealthcheckServer(ctx)
	defer a.closeHealthcheckServer(ctx)

	if a.config.Action == ActionServe {
		return a.serve(ctx)
	}

	forest, err := a.buildForest(ctx)
	if err != nil {
		return err
	}

	format := render.Format(a.config.OutputFormat)
	switch a.config.Action {
	case ActionTree:
		return render.Forest(a.outW, forest, format)
	case ActionFlatten:
		return render.Records(a.outW, tree.Flatten(forest), format)
	case ActionFind:
		return a.find(ctx, forest, format)
	case ActionOptions:
		excluded := tree.Descendants(forest, a.config.TargetID)
		ctxlog.FromContext(ctx).Debug("Excluding subtree from parent options.", "id", a.config.TargetID, "descendants", len(excluded))
		return render.Options(a.outW, tree.FilterOptionsExcluding(forest, a.config.TargetID), format)
	default:
		return fmt.Errorf("unknown action %q", a.config.Action)
	}
}

func (a *App) buildForest(ctx context.Context) (tree.Forest, error) {
	logger := ctxlog.FromContext(ctx)

	records, err := a.source.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	logger.Debug("Records loaded.", "count", len(records))

	forest, err := tree.BuildForest(records, tree.WithOrphanPolicy(tree.OrphanPolicy(a.config.OrphanPolicy)))
	if err != nil {
		return nil, fmt.Errorf("failed to build forest: %w", err)
	}

	stats := tree.StatsOf(forest)
	logger.Info("🌲 Forest built.",
		"nodes", stats.Nodes,
		"roots", stats.Roots,
		"leaves", stats.Leaves,
		"max_depth", stats.MaxDepth,
	)
	return forest, nil
}

func (a *App) find(ctx context.Context, forest tree.Forest, format render.Format) error {
	logger := ctxlog.FromContext(ctx)
	path, ok := tree.PathTo(forest, a.config.TargetID)
	if !ok {
		logger.Warn("Node not found.", "id", a.config.TargetID)
		_, err := fmt.Fprintf(a.outW, "node %q not found\n", a.config.TargetID)
		return err
	}

	ids := make([]string, len(path))
	for i, n := range path {
		ids[i] = n.ID
	}
	logger.Info("Node found.", "id", a.config.TargetID, "path", strings.Join(ids, " > "))

	return render.Forest(a.outW, tree.Forest{path[len(path)-1]}, format)
}

func (a *App) serve(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	store := foreststore.New()
	if a.config.HasSource() {
		forest, err := a.buildForest(ctx)
		if err != nil {
			return err
		}
		if _, err := store.Put(ctx, a.config.ForestName, forest); err != nil {
			return err
		}
		logger.Info("Source forest preloaded.", "name", a.config.ForestName)
	}

	srv := api.NewServer(a.config.ListenAddr, a.logger, store)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("🚀 API server starting", "address", a.config.ListenAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("api server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	logger.Info("🏁 Shutting down API server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("api server shutdown failed: %w", err)
	}
	return nil
}
