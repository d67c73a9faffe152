// Package repository is the entity store: typed CRUD over the gorm models.
// Absent rows are reported as nil results or false, never as errors.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrDuplicate is returned when an insert or update violates a unique constraint
var ErrDuplicate = errors.New("duplicate record")

// Repository provides CRUD for one model type
type Repository[T any] struct {
	db *gorm.DB
}

// New creates a repository for T backed by db
func New[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// List returns every record ordered by id
func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	records := []T{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return records, nil
}

// Get returns the record with id, or nil when no such record exists
func (r *Repository[T]) Get(ctx context.Context, id uint) (*T, error) {
	var record T
	err := r.db.WithContext(ctx).First(&record, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %d: %w", id, err)
	}
	return &record, nil
}

// Create inserts record and fills in its generated fields
func (r *Repository[T]) Create(ctx context.Context, record *T) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("create: %w", ErrDuplicate)
		}
		return fmt.Errorf("create: %w", err)
	}
	return nil
}

// Update loads the record with id, lets apply merge changes into it and writes every column back.
// Fields apply does not touch keep their stored values. Returns nil when no such record exists,
// including when it is deleted between the read and the write.
func (r *Repository[T]) Update(ctx context.Context, id uint, apply func(*T)) (*T, error) {
	record, err := r.Get(ctx, id)
	if err != nil || record == nil {
		return nil, err
	}

	apply(record)

	result := r.db.WithContext(ctx).Model(record).Select("*").Where("id = ?", id).Updates(record)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return nil, fmt.Errorf("update %d: %w", id, ErrDuplicate)
		}
		return nil, fmt.Errorf("update %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return record, nil
}

// Delete removes the record with id and reports whether a row was removed
func (r *Repository[T]) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return false, fmt.Errorf("delete %d: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Count returns the number of stored records
func (r *Repository[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(new(T)).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return count, nil
}

// isDuplicateKeyError recognises unique violations. gorm translates them when
// TranslateError is on; the message check covers handles opened without it.
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint")
}
