package database

import (
	"mingle/internal/config"
	"mingle/internal/core/user"
)

// UserRepositoryDatabase implements the user port over MySQL.
type UserRepositoryDatabase struct{}

func NewUserRepositoryDatabase() *UserRepositoryDatabase {
	return &UserRepositoryDatabase{}
}

func (repo *UserRepositoryDatabase) Create(user *user.User) (*user.User, error) {
	if err := config.DB.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (repo *UserRepositoryDatabase) FindByEmail(email string) (*user.User, error) {
	var user user.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *UserRepositoryDatabase) FindByID(id string) (*user.User, error) {
	var user user.User
	if err := config.DB.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
