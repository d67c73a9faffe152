package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawscare/vet-clinic-site/services"
	"github.com/pawscare/vet-clinic-site/tests/testutil"
)

func TestNewCacheFallsBackToMemory(t *testing.T) {
	cfg := testutil.TestConfig()

	cache, closeCache := newCache(context.Background(), cfg)
	defer closeCache()
	assert.IsType(t, &services.MemoryCache{}, cache, "No REDIS_URL should select the in-memory cache")

	cfg.RedisURL = "not a redis url"
	cache, closeCache = newCache(context.Background(), cfg)
	defer closeCache()
	assert.IsType(t, &services.MemoryCache{}, cache, "An unusable REDIS_URL should fall back to memory")
}

func TestNewObjectStorageSelection(t *testing.T) {
	cfg := testutil.TestConfig()

	storage, err := newObjectStorage(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &services.S3ObjectStorage{}, storage)

	cfg.AWSS3Bucket = ""
	storage, err = newObjectStorage(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, services.DisabledObjectStorage{}, storage)
}

func TestNewMailerSelection(t *testing.T) {
	cfg := testutil.TestConfig()

	mailer, err := newMailer(cfg)
	require.NoError(t, err)
	assert.IsType(t, services.DisabledMailer{}, mailer)

	cfg.MailAPIKey = "SG.test"
	cfg.MailFromAddress = "no-reply@pawscare.example"
	mailer, err = newMailer(cfg)
	require.NoError(t, err)
	assert.IsType(t, &services.HTTPMailer{}, mailer)
}
