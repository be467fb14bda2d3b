package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventbook/event-booking-api/internal/models"
	"github.com/eventbook/event-booking-api/pkg/apperrors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserStore holds user credentials. Passwords are stored as bcrypt
// hashes and never leave this package in any other form.
type UserStore struct {
	db         *gorm.DB
	bcryptCost int
}

func NewUserStore(db *gorm.DB, bcryptCost int) *UserStore {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserStore{db: db, bcryptCost: bcryptCost}
}

// Register creates a new user. The role defaults to participant and the
// display name defaults to the username.
func (s *UserStore) Register(ctx context.Context, username, password, role, name string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", apperrors.ErrInvalidInput)
	}
	if role == "" {
		role = models.RoleParticipant
	}
	if name == "" {
		name = username
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: user already exists", apperrors.ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Password: string(hash),
		Role:     role,
		Name:     name,
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies a username/password pair. Unknown user and
// wrong password return the same error so the endpoint cannot be used
// to enumerate accounts.
func (s *UserStore) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}
	return &user, nil
}
