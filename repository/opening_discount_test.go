package repository

import (
	"context"
	"testing"

	"github.com/pawscare/vet-clinic-site/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registration(phone, email string) *models.OpeningDiscount {
	return &models.OpeningDiscount{
		FirstName:    "Noura",
		LastName:     "Alharbi",
		PhoneNumber:  phone,
		EmailAddress: email,
		Language:     "ar",
	}
}

func TestRegisterRejectsDuplicatePhone(t *testing.T) {
	repo := NewOpeningDiscountRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Register(ctx, registration("0551234567", "noura@example.com")))

	err := repo.Register(ctx, registration("0551234567", "other@example.com"))
	assert.ErrorIs(t, err, ErrPhoneAlreadyRegistered)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "Exactly one record should exist for the phone number")
}

func TestRegisterAllowsDuplicateEmail(t *testing.T) {
	repo := NewOpeningDiscountRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Register(ctx, registration("0551234567", "family@example.com")))
	assert.NoError(t, repo.Register(ctx, registration("0557654321", "family@example.com")))
}

func TestPhoneExists(t *testing.T) {
	repo := NewOpeningDiscountRepository(setupTestDB(t))
	ctx := context.Background()

	exists, err := repo.PhoneExists(ctx, "0551234567")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Register(ctx, registration("0551234567", "noura@example.com")))

	exists, err = repo.PhoneExists(ctx, "0551234567")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestEmailExistsIgnoresCase(t *testing.T) {
	repo := NewOpeningDiscountRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Register(ctx, registration("0551234567", "noura@example.com")))

	exists, err := repo.EmailExists(ctx, " Noura@Example.COM ")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.EmailExists(ctx, "someone@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRecentReturnsNewestFirst(t *testing.T) {
	repo := NewOpeningDiscountRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Register(ctx, registration("0550000001", "a@example.com")))
	require.NoError(t, repo.Register(ctx, registration("0550000002", "b@example.com")))
	require.NoError(t, repo.Register(ctx, registration("0550000003", "c@example.com")))

	recent, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "0550000003", recent[0].PhoneNumber)
	assert.Equal(t, "0550000002", recent[1].PhoneNumber)

	all, err := repo.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
