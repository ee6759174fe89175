package database

import (
	"context"

	"mingle/internal/config"
	"mingle/internal/core/user"
	userPort "mingle/internal/ports/user"
)

// IdentityResolverDatabase resolves user ids to display identities straight
// from MySQL. Ids without a matching account are left out of the result map.
type IdentityResolverDatabase struct{}

func NewIdentityResolverDatabase() *IdentityResolverDatabase {
	return &IdentityResolverDatabase{}
}

func (repo *IdentityResolverDatabase) ResolveMany(ctx context.Context, ids []string) (map[string]*userPort.IdentityDTO, error) {
	identities := make(map[string]*userPort.IdentityDTO, len(ids))
	if len(ids) == 0 {
		return identities, nil
	}

	var users []*user.User
	if err := config.DB.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}

	for _, u := range users {
		identities[u.ID.String()] = &userPort.IdentityDTO{
			ID:        u.ID.String(),
			Name:      u.Name,
			Email:     u.Email,
			AvatarURL: u.AvatarURL,
		}
	}
	return identities, nil
}
