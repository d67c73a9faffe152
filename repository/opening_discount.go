package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pawscare/vet-clinic-site/models"
	"gorm.io/gorm"
)

// ErrPhoneAlreadyRegistered is returned by Register when the phone number is taken.
// The unique index on phone_number is what guarantees it; PhoneExists is only advisory.
var ErrPhoneAlreadyRegistered = errors.New("phone number already registered")

// OpeningDiscountRepository stores promotional registrations
type OpeningDiscountRepository struct {
	*Repository[models.OpeningDiscount]
	db *gorm.DB
}

// NewOpeningDiscountRepository creates the registration store
func NewOpeningDiscountRepository(db *gorm.DB) *OpeningDiscountRepository {
	return &OpeningDiscountRepository{
		Repository: New[models.OpeningDiscount](db),
		db:         db,
	}
}

// Register inserts a registration, failing with ErrPhoneAlreadyRegistered on a duplicate phone number
func (r *OpeningDiscountRepository) Register(ctx context.Context, registration *models.OpeningDiscount) error {
	err := r.Create(ctx, registration)
	if errors.Is(err, ErrDuplicate) {
		return ErrPhoneAlreadyRegistered
	}
	return err
}

// PhoneExists reports whether a registration already uses phone
func (r *OpeningDiscountRepository) PhoneExists(ctx context.Context, phone string) (bool, error) {
	return r.exists(ctx, "phone_number = ?", phone)
}

// EmailExists reports whether a registration already uses email, ignoring case
func (r *OpeningDiscountRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "LOWER(email_address) = ?", strings.ToLower(strings.TrimSpace(email)))
}

// Recent returns up to limit registrations, newest first. A limit of zero or less returns all of them.
func (r *OpeningDiscountRepository) Recent(ctx context.Context, limit int) ([]models.OpeningDiscount, error) {
	registrations := []models.OpeningDiscount{}
	query := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&registrations).Error; err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return registrations, nil
}

func (r *OpeningDiscountRepository) exists(ctx context.Context, where string, value string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.OpeningDiscount{}).
		Where(where, value).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check registration: %w", err)
	}
	return count > 0, nil
}
