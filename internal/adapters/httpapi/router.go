package httpapi

import (
	"context"

	"mingle/internal/adapters/httpapi/middleware"
	postEntity "mingle/internal/core/post"
	postPort "mingle/internal/ports/post"
	userPort "mingle/internal/ports/user"

	"github.com/gin-gonic/gin"
)

// Inbound ports: the interfaces the controllers need from the use cases.
type UserUseCase interface {
	LoginUser(ctx context.Context, email, password string) (*userPort.LoginResponse, error)
	RegisterUser(ctx context.Context, name, email, password, avatarURL string) (*userPort.IdentityDTO, error)
	GetMe(ctx context.Context, userID string) (*userPort.IdentityDTO, error)
}

type PostUseCase interface {
	CreatePost(ctx context.Context, authorID, content, imageURL string) (*postEntity.Post, error)
	DeletePost(ctx context.Context, postID, requesterID string) error
	ToggleLike(ctx context.Context, postID, userID string) (*postPort.LikeResultDTO, error)
	AddComment(ctx context.Context, postID, authorID, text string) (*postEntity.Post, error)
	DeleteComment(ctx context.Context, postID, commentID, requesterID string) error
}

type FeedUseCase interface {
	GetFeed(ctx context.Context) ([]*postPort.PostDTO, error)
	ResolvePost(ctx context.Context, p *postEntity.Post) (*postPort.PostDTO, error)
}

// SetupRoutes wires the controllers; use cases are injected from outside.
func SetupRoutes(
	userUC UserUseCase,
	postUC PostUseCase,
	feedUC FeedUseCase,
) *gin.Engine {
	r := gin.Default()
	uc := NewUserController(userUC)
	pc := NewPostController(postUC, feedUC)
	fc := NewFeedController(feedUC)

	r.POST("/auth/register", uc.RegisterUser)
	r.POST("/auth/login", uc.LoginUser)
	r.GET("/auth/me", middleware.JWTAuthMiddleware(), uc.GetMe)

	r.GET("/posts", middleware.JWTAuthMiddleware(), fc.GetFeed)
	r.POST("/posts", middleware.JWTAuthMiddleware(), pc.CreatePost)
	r.DELETE("/posts/:id", middleware.JWTAuthMiddleware(), pc.DeletePost)
	r.PUT("/posts/:id/like", middleware.JWTAuthMiddleware(), pc.ToggleLike)
	r.POST("/posts/:id/comment", middleware.JWTAuthMiddleware(), pc.AddComment)
	r.DELETE("/posts/:id/comment/:commentId", middleware.JWTAuthMiddleware(), pc.DeleteComment)

	return r
}
