package postapp

import (
	"context"
	"strings"
	"time"

	"mingle/internal/apperrors"
	postEntity "mingle/internal/core/post"
	postPort "mingle/internal/ports/post"

	"github.com/gofrs/uuid"
)

// PostService owns the mutation rules for post aggregates and their
// embedded comments.
type PostService struct {
	PostRepository postPort.PostRepository
}

func NewPostService(postRepo postPort.PostRepository) *PostService {
	return &PostService{
		PostRepository: postRepo,
	}
}

// CreatePost persists a new aggregate. A post needs at least a text body or
// an image reference.
func (s *PostService) CreatePost(ctx context.Context, authorID, content, imageURL string) (*postEntity.Post, error) {
	content = strings.TrimSpace(content)
	imageURL = strings.TrimSpace(imageURL)
	if content == "" && imageURL == "" {
		return nil, apperrors.Validationf("post cannot be empty")
	}

	p := &postEntity.Post{
		ID:        uuid.Must(uuid.NewV4()).String(),
		AuthorID:  authorID,
		Content:   content,
		ImageURL:  imageURL,
		LikedBy:   []string{},
		Comments:  []postEntity.Comment{},
		CreatedAt: time.Now().UTC(),
	}

	return s.PostRepository.Create(ctx, p)
}

// DeletePost removes the aggregate and everything embedded in it. Only the
// author may delete; deletion is permanent, there is no soft-delete.
func (s *PostService) DeletePost(ctx context.Context, postID, requesterID string) error {
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if p.AuthorID != requesterID {
		return apperrors.Forbiddenf("user %s is not the author of post %s", requesterID, postID)
	}
	return s.PostRepository.Delete(ctx, postID)
}

// ToggleLike flips the caller's membership in the like set and reports the
// new state. The set mutation is atomic in the store, so two concurrent
// togglers by different users are both reflected.
func (s *PostService) ToggleLike(ctx context.Context, postID, userID string) (*postPort.LikeResultDTO, error) {
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	var updated *postEntity.Post
	liked := !p.LikedByUser(userID)
	if liked {
		updated, err = s.PostRepository.AddLike(ctx, postID, userID)
	} else {
		updated, err = s.PostRepository.RemoveLike(ctx, postID, userID)
	}
	if err != nil {
		return nil, err
	}

	return &postPort.LikeResultDTO{
		Liked:     liked,
		LikeCount: len(updated.LikedBy),
	}, nil
}

// AddComment appends a comment to the end of the post's comment list and
// returns the updated aggregate for display.
func (s *PostService) AddComment(ctx context.Context, postID, authorID, text string) (*postEntity.Post, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.Validationf("comment cannot be empty")
	}

	c := postEntity.Comment{
		ID:        uuid.Must(uuid.NewV4()).String(),
		AuthorID:  authorID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	return s.PostRepository.PushComment(ctx, postID, c)
}

// DeleteComment removes the comment matching both the comment id and the
// requester. A missing post is an error; a non-matching comment is not --
// callers may only delete their own comments, and anything else quietly
// leaves the post untouched.
func (s *PostService) DeleteComment(ctx context.Context, postID, commentID, requesterID string) error {
	if _, err := s.PostRepository.FindByID(ctx, postID); err != nil {
		return err
	}
	return s.PostRepository.PullComment(ctx, postID, commentID, requesterID)
}
