package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/pawscare/vet-clinic-site/models"
	"gorm.io/gorm"
)

// UserRepository stores back-office accounts
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates the account store
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByUsername returns the account named username, or nil if there is none
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// SavePasswordHash creates the account or replaces its password hash
func (r *UserRepository) SavePasswordHash(ctx context.Context, username, passwordHash string) (*models.User, error) {
	user, err := r.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if user == nil {
		user = &models.User{Username: username, PasswordHash: passwordHash}
		if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
			if isDuplicateKeyError(err) {
				return nil, fmt.Errorf("create user: %w", ErrDuplicate)
			}
			return nil, fmt.Errorf("create user: %w", err)
		}
		return user, nil
	}

	user.PasswordHash = passwordHash
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}
