package workers

import (
	"context"
	"time"

	postPort "mingle/internal/ports/post"
	userPort "mingle/internal/ports/user"

	"go.uber.org/zap"
)

// IdentityWarmer periodically resolves the author ids present in the feed
// through the cached resolver, so interactive reads land on warm cache
// entries instead of hitting MySQL.
type IdentityWarmer struct {
	PostRepo  postPort.PostRepository
	Resolver  userPort.IdentityResolver
	Interval  time.Duration
	BatchSize int
	Logger    *zap.Logger
}

func NewIdentityWarmer(
	postRepo postPort.PostRepository,
	resolver userPort.IdentityResolver,
	interval time.Duration,
	batchSize int,
	logger *zap.Logger,
) *IdentityWarmer {
	return &IdentityWarmer{
		PostRepo:  postRepo,
		Resolver:  resolver,
		Interval:  interval,
		BatchSize: batchSize,
		Logger:    logger,
	}
}

// Run warms immediately, then on every tick until the context is cancelled.
func (w *IdentityWarmer) Run(ctx context.Context) {
	w.Logger.Info("🚀 IdentityWarmer started")
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	w.warmOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			w.Logger.Info("🛑 IdentityWarmer stopped")
			return
		case <-ticker.C:
			w.warmOnce(ctx)
		}
	}
}

func (w *IdentityWarmer) warmOnce(ctx context.Context) {
	posts, err := w.PostRepo.FindAll(ctx)
	if err != nil {
		w.Logger.Error("❌ Error fetching posts for identity warmup:", zap.Error(err))
		return
	}

	seen := make(map[string]struct{})
	var ids []string
	for _, p := range posts {
		if _, ok := seen[p.AuthorID]; !ok {
			seen[p.AuthorID] = struct{}{}
			ids = append(ids, p.AuthorID)
		}
		for _, c := range p.Comments {
			if _, ok := seen[c.AuthorID]; !ok {
				seen[c.AuthorID] = struct{}{}
				ids = append(ids, c.AuthorID)
			}
		}
	}

	if len(ids) == 0 {
		return
	}

	warmed := 0
	for i := 0; i < len(ids); i += w.BatchSize {
		end := min(i+w.BatchSize, len(ids))
		batch := ids[i:end]

		resolved, err := w.Resolver.ResolveMany(ctx, batch)
		if err != nil {
			w.Logger.Warn("⚠️ Warning: could not warm identity batch", zap.Error(err))
			continue
		}
		warmed += len(resolved)
	}

	w.Logger.Info("✅ Identity cache warmed", zap.Int("requested", len(ids)), zap.Int("resolved", warmed))
}

// min helper function
func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
