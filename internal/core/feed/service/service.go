package feedapp

import (
	"context"
	"sort"

	postEntity "mingle/internal/core/post"
	postPort "mingle/internal/ports/post"
	userPort "mingle/internal/ports/user"
)

// FeedService assembles the display-ready feed: posts newest first, author
// and commenter ids resolved to identities. It is a pure read-side
// projection and never writes to the post store.
type FeedService struct {
	PostRepository postPort.PostRepository
	Identities     userPort.IdentityResolver
}

func NewFeedService(postRepo postPort.PostRepository, identities userPort.IdentityResolver) *FeedService {
	return &FeedService{
		PostRepository: postRepo,
		Identities:     identities,
	}
}

// GetFeed returns every post sorted by creation time descending. The sort is
// stable, so posts sharing a timestamp keep their insertion order.
func (s *FeedService) GetFeed(ctx context.Context) ([]*postPort.PostDTO, error) {
	posts, err := s.PostRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	identities, err := s.Identities.ResolveMany(ctx, collectAuthorIDs(posts))
	if err != nil {
		return nil, err
	}

	feed := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		feed = append(feed, toDTO(p, identities))
	}
	return feed, nil
}

// ResolvePost projects a single aggregate, resolving its author and comment
// authors. Used for mutation responses that return the updated post.
func (s *FeedService) ResolvePost(ctx context.Context, p *postEntity.Post) (*postPort.PostDTO, error) {
	identities, err := s.Identities.ResolveMany(ctx, collectAuthorIDs([]*postEntity.Post{p}))
	if err != nil {
		return nil, err
	}
	return toDTO(p, identities), nil
}

func collectAuthorIDs(posts []*postEntity.Post) []string {
	seen := make(map[string]struct{})
	var ids []string
	add := func(id string) {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	for _, p := range posts {
		add(p.AuthorID)
		for _, c := range p.Comments {
			add(c.AuthorID)
		}
	}
	return ids
}

// identityOr substitutes a placeholder when an id no longer resolves, so one
// removed account never fails the whole feed.
func identityOr(identities map[string]*userPort.IdentityDTO, id string) *userPort.IdentityDTO {
	if dto, ok := identities[id]; ok {
		return dto
	}
	return &userPort.IdentityDTO{ID: id, Name: "Unknown"}
}

func toDTO(p *postEntity.Post, identities map[string]*userPort.IdentityDTO) *postPort.PostDTO {
	comments := make([]postPort.CommentDTO, 0, len(p.Comments))
	for _, c := range p.Comments {
		comments = append(comments, postPort.CommentDTO{
			ID:        c.ID,
			Author:    identityOr(identities, c.AuthorID),
			Text:      c.Text,
			CreatedAt: c.CreatedAt,
		})
	}

	likedBy := p.LikedBy
	if likedBy == nil {
		likedBy = []string{}
	}

	return &postPort.PostDTO{
		ID:        p.ID,
		Author:    identityOr(identities, p.AuthorID),
		Content:   p.Content,
		ImageURL:  p.ImageURL,
		LikeCount: len(p.LikedBy),
		LikedBy:   likedBy,
		Comments:  comments,
		CreatedAt: p.CreatedAt,
	}
}
