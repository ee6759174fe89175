package post

import (
	"context"
	"time"

	"mingle/internal/core/post"
	userPort "mingle/internal/ports/user"
)

// PostRepository is the outbound port for the post document store. Array
// mutations (likes, comments) must be atomic updates against the current
// document, never a read-whole/re-save-whole overwrite.
type PostRepository interface {
	Create(ctx context.Context, p *post.Post) (*post.Post, error)
	FindByID(ctx context.Context, id string) (*post.Post, error)
	FindAll(ctx context.Context) ([]*post.Post, error)
	Delete(ctx context.Context, id string) error

	// AddLike and RemoveLike return the post as it stands after the update.
	AddLike(ctx context.Context, postID, userID string) (*post.Post, error)
	RemoveLike(ctx context.Context, postID, userID string) (*post.Post, error)

	// PushComment appends to the comment array and returns the updated post.
	// PullComment removes the comment matching both commentID and authorID;
	// no match on a live post is a silent no-op.
	PushComment(ctx context.Context, postID string, c post.Comment) (*post.Post, error)
	PullComment(ctx context.Context, postID, commentID, authorID string) error
}

// DTOs for the use cases
type CommentDTO struct {
	ID        string                `json:"id"`
	Author    *userPort.IdentityDTO `json:"author"`
	Text      string                `json:"text"`
	CreatedAt time.Time             `json:"createdAt"`
}

type PostDTO struct {
	ID        string                `json:"id"`
	Author    *userPort.IdentityDTO `json:"author"`
	Content   string                `json:"content,omitempty"`
	ImageURL  string                `json:"imageUrl,omitempty"`
	LikeCount int                   `json:"likeCount"`
	LikedBy   []string              `json:"likedBy"`
	Comments  []CommentDTO          `json:"comments"`
	CreatedAt time.Time             `json:"createdAt"`
}

type LikeResultDTO struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}
