package userapp

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"mingle/internal/apperrors"
	userEntity "mingle/internal/core/user"
	userPort "mingle/internal/ports/user"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofrs/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService is the identity provider: registration, login and lookup of
// the authenticated caller.
type UserService struct {
	UserRepository userPort.UserRepository
	jwtKey         []byte
}

func NewUserService(repo userPort.UserRepository, jwtKey []byte) *UserService {
	return &UserService{
		UserRepository: repo,
		jwtKey:         jwtKey,
	}
}

// LoginUser checks credentials and issues a JWT.
func (s *UserService) LoginUser(ctx context.Context, email, password string) (*userPort.LoginResponse, error) {
	user, err := s.UserRepository.FindByEmail(normalizeEmail(email))
	if err != nil {
		log.Println("Error finding user:", err)
		return nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Println("invalid password")
		return nil, errors.New("invalid credentials")
	}

	expiresAt := time.Now().Add(24 * time.Hour)
	token, err := s.generateJWT(user, expiresAt)
	if err != nil {
		log.Println("Error generating JWT:", err)
		return nil, errors.New("could not generate token")
	}

	return &userPort.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
		User:      toIdentity(user),
	}, nil
}

func (s *UserService) generateJWT(user *userEntity.User, expiresAt time.Time) (string, error) {
	claims := &jwt.StandardClaims{
		Subject:   user.ID.String(),
		Issuer:    "mingle",
		ExpiresAt: expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}

// RegisterUser creates a new account with a bcrypt-hashed password. The
// avatar URL is optional; an empty string leaves the profile without one.
func (s *UserService) RegisterUser(ctx context.Context, name, email, password, avatarURL string) (*userPort.IdentityDTO, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" {
		return nil, apperrors.Validationf("name and email are required")
	}
	if len(password) < 6 {
		return nil, apperrors.Validationf("password must be at least 6 characters")
	}

	existingUser, err := s.UserRepository.FindByEmail(email)
	switch {
	case err == nil && existingUser != nil:
		return nil, apperrors.Conflictf("email already registered")
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &userEntity.User{
		ID:        uuid.Must(uuid.NewV4()),
		Name:      name,
		Email:     email,
		Password:  string(hashedPassword),
		AvatarURL: strings.TrimSpace(avatarURL),
		Role:      "user",
	}

	u, err := s.UserRepository.Create(user)
	if err != nil {
		return nil, err
	}

	return toIdentity(u), nil
}

// GetMe returns the display identity of the authenticated caller.
func (s *UserService) GetMe(ctx context.Context, userID string) (*userPort.IdentityDTO, error) {
	user, err := s.UserRepository.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("user %s", userID)
		}
		return nil, err
	}
	return toIdentity(user), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toIdentity(u *userEntity.User) *userPort.IdentityDTO {
	return &userPort.IdentityDTO{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
	}
}
