package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	postEntity "mingle/internal/core/post"
	postPort "mingle/internal/ports/post"
	userPort "mingle/internal/ports/user"

	"go.uber.org/zap"
)

type fakeWarmStore struct {
	postPort.PostRepository
	posts []*postEntity.Post
}

func (f *fakeWarmStore) FindAll(ctx context.Context) ([]*postEntity.Post, error) {
	return f.posts, nil
}

type recordingResolver struct {
	mu      sync.Mutex
	batches [][]string
}

func (r *recordingResolver) ResolveMany(ctx context.Context, ids []string) (map[string]*userPort.IdentityDTO, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, append([]string(nil), ids...))
	out := make(map[string]*userPort.IdentityDTO, len(ids))
	for _, id := range ids {
		out[id] = &userPort.IdentityDTO{ID: id}
	}
	return out, nil
}

func (r *recordingResolver) snapshot() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string(nil), r.batches...)
}

func TestIdentityWarmer_StopsOnCancel(t *testing.T) {
	w := NewIdentityWarmer(&fakeWarmStore{}, &recordingResolver{}, time.Hour, 10, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run must return promptly after cancel, not wait out the interval")
	}
}

func TestIdentityWarmer_WarmsDedupedAuthorsInBatches(t *testing.T) {
	posts := []*postEntity.Post{
		{ID: "p1", AuthorID: "u1", Comments: []postEntity.Comment{{ID: "c1", AuthorID: "u2"}}},
		{ID: "p2", AuthorID: "u1"},
		{ID: "p3", AuthorID: "u3"},
	}
	resolver := &recordingResolver{}
	w := NewIdentityWarmer(&fakeWarmStore{posts: posts}, resolver, time.Hour, 2, zap.NewNop())

	w.warmOnce(context.Background())

	batches := resolver.snapshot()
	if len(batches) != 2 {
		t.Fatalf("expected 2 batches of size <= 2, got %v", batches)
	}
	var ids []string
	for _, b := range batches {
		ids = append(ids, b...)
	}
	want := []string{"u1", "u2", "u3"}
	if len(ids) != len(want) {
		t.Fatalf("expected deduped ids %v, got %v", want, ids)
	}
	for i, id := range want {
		if ids[i] != id {
			t.Fatalf("expected %s at %d, got %v", id, i, ids)
		}
	}
}
