package user

import (
	"context"
	"mingle/internal/core/user"
)

// UserRepository is the outbound port for user accounts.
type UserRepository interface {
	Create(user *user.User) (*user.User, error)
	FindByEmail(email string) (*user.User, error)
	FindByID(id string) (*user.User, error)
}

// IdentityResolver turns user ids into display identities. Unknown ids are
// simply absent from the result map; only infrastructure faults error.
type IdentityResolver interface {
	ResolveMany(ctx context.Context, ids []string) (map[string]*IdentityDTO, error)
}

// DTOs for the use cases
type IdentityDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt int64        `json:"expiresAt"`
	User      *IdentityDTO `json:"user"`
}
