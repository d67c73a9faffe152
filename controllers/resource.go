package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/pawscare/vet-clinic-site/repository"
	"github.com/pawscare/vet-clinic-site/services"
)

// CacheHeader reports whether a list response came from the cache
const CacheHeader = "X-Cache"

// Resource serves list/get/create/update/delete for one admin-managed entity.
// C is the create request body, U the partial update body.
type Resource[M any, C any, U any] struct {
	label    string
	cacheKey string
	genKey   string
	repo     *repository.Repository[M]
	cache    services.Cache
	cacheTTL time.Duration
	build    func(*C) *M
	apply    func(*U, *M)
}

// ResourceOptions configures a Resource
type ResourceOptions[M any, C any, U any] struct {
	// Name is the collection path segment, e.g. "service-packages"
	Name string
	// Label names one record in messages, e.g. "Service package"
	Label    string
	Repo     *repository.Repository[M]
	Cache    services.Cache
	CacheTTL time.Duration
	Build    func(*C) *M
	Apply    func(*U, *M)
}

// NewResource creates a resource controller
func NewResource[M any, C any, U any](opts ResourceOptions[M, C, U]) *Resource[M, C, U] {
	return &Resource[M, C, U]{
		label:    opts.Label,
		cacheKey: "list:" + opts.Name,
		genKey:   "list:" + opts.Name + ":gen",
		repo:     opts.Repo,
		cache:    opts.Cache,
		cacheTTL: opts.CacheTTL,
		build:    opts.Build,
		apply:    opts.Apply,
	}
}

// listKey is the cache key for the list at generation gen. Invalidate bumps the generation,
// so a fill computed from rows read before a write lands on a key no reader asks for.
func (r *Resource[M, C, U]) listKey(gen int64) string {
	return fmt.Sprintf("%s:%d", r.cacheKey, gen)
}

// generation reads the current list generation; a missing counter is generation zero
func (r *Resource[M, C, U]) generation(ctx context.Context) (int64, error) {
	raw, err := r.cache.Get(ctx, r.genKey)
	if errors.Is(err, services.ErrCacheMiss) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	gen, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid list generation %q: %w", raw, err)
	}
	return gen, nil
}

// currentListKey returns the key for the current generation, or "" when the cache cannot be read
func (r *Resource[M, C, U]) currentListKey(ctx context.Context) string {
	gen, err := r.generation(ctx)
	if err != nil {
		log.Warn().Err(err).Str("key", r.genKey).Msg("Cache read failed")
		return ""
	}
	return r.listKey(gen)
}

// List handles GET /api/<name>
func (r *Resource[M, C, U]) List(c *gin.Context) {
	ctx := c.Request.Context()

	// the generation is read before the rows so a write that commits meanwhile moves readers to a new key
	var key string
	if r.cache != nil {
		key = r.currentListKey(ctx)
	}

	if key != "" {
		cached, err := r.cache.Get(ctx, key)
		if err == nil {
			c.Header(CacheHeader, "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			return
		}
		if !errors.Is(err, services.ErrCacheMiss) {
			log.Warn().Err(err).Str("key", key).Msg("Cache read failed")
		}
	}

	records, err := r.repo.List(ctx)
	if err != nil {
		respondServerError(c, CodeDatabase, "Failed to load records", err)
		return
	}

	body, err := json.Marshal(gin.H{"success": true, "data": records})
	if err != nil {
		respondServerError(c, CodeInternal, "Failed to encode records", err)
		return
	}

	if key != "" {
		if err := r.cache.Set(ctx, key, body, r.cacheTTL); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Cache write failed")
		}
	}
	if r.cache != nil {
		c.Header(CacheHeader, "MISS")
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// Get handles GET /api/<name>/:id
func (r *Resource[M, C, U]) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	record, err := r.repo.Get(c.Request.Context(), id)
	if err != nil {
		respondServerError(c, CodeDatabase, "Failed to load record", err)
		return
	}
	if record == nil {
		respondNotFound(c, r.label)
		return
	}

	respondData(c, http.StatusOK, record)
}

// Create handles POST /api/<name>
func (r *Resource[M, C, U]) Create(c *gin.Context) {
	var req C
	if !bindJSON(c, &req) {
		return
	}

	record := r.build(&req)
	if err := r.repo.Create(c.Request.Context(), record); err != nil {
		respondServerError(c, CodeDatabase, "Failed to create record", err)
		return
	}

	r.Invalidate(c.Request.Context())
	respondData(c, http.StatusCreated, record)
}

// Update handles PUT /api/<name>/:id; fields missing from the body keep their stored values
func (r *Resource[M, C, U]) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req U
	if !bindJSON(c, &req) {
		return
	}

	record, err := r.repo.Update(c.Request.Context(), id, func(m *M) {
		r.apply(&req, m)
	})
	if err != nil {
		respondServerError(c, CodeDatabase, "Failed to update record", err)
		return
	}
	if record == nil {
		respondNotFound(c, r.label)
		return
	}

	r.Invalidate(c.Request.Context())
	respondData(c, http.StatusOK, record)
}

// Delete handles DELETE /api/<name>/:id
func (r *Resource[M, C, U]) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := r.repo.Delete(c.Request.Context(), id)
	if err != nil {
		respondServerError(c, CodeDatabase, "Failed to delete record", err)
		return
	}
	if !deleted {
		respondNotFound(c, r.label)
		return
	}

	r.Invalidate(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// Invalidate moves the list to a new generation so the next read sees the change,
// then drops the entry cached under the previous one
func (r *Resource[M, C, U]) Invalidate(ctx context.Context) {
	if r.cache == nil {
		return
	}

	gen, err := r.cache.Incr(ctx, r.genKey)
	if err != nil {
		log.Warn().Err(err).Str("key", r.genKey).Msg("Cache invalidation failed")
		if key := r.currentListKey(ctx); key != "" {
			_ = r.cache.Delete(ctx, key)
		}
		return
	}
	if err := r.cache.Delete(ctx, r.listKey(gen-1)); err != nil {
		log.Warn().Err(err).Str("key", r.listKey(gen-1)).Msg("Cache cleanup failed")
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, CodeInvalidID, "ID must be a positive integer")
		return 0, false
	}
	return uint(id), true
}
