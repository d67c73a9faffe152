package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/pawscare/vet-clinic-site/models"
	"github.com/pawscare/vet-clinic-site/repository"
	"github.com/pawscare/vet-clinic-site/services"
	"github.com/pawscare/vet-clinic-site/utils"
)

const objectCacheControl = "public, max-age=3600"

// Invalidator drops cached list responses after a write
type Invalidator interface {
	Invalidate(ctx context.Context)
}

// SetPartnerLogoRequest carries the URL the browser uploaded a logo to
type SetPartnerLogoRequest struct {
	LogoURL string `json:"logoURL" binding:"required,notblank"`
}

// ObjectController issues upload URLs and streams stored objects
type ObjectController struct {
	storage  services.ObjectStorage
	partners *repository.Repository[models.Partner]
	cache    Invalidator
}

// NewObjectController creates the object controller; cache is told about partner logo changes
func NewObjectController(storage services.ObjectStorage, partners *repository.Repository[models.Partner], cache Invalidator) *ObjectController {
	return &ObjectController{storage: storage, partners: partners, cache: cache}
}

// UploadURL handles POST /api/objects/upload
func (ctl *ObjectController) UploadURL(c *gin.Context) {
	uploadURL, objectPath, err := ctl.storage.NewUploadURL(c.Request.Context())
	if err != nil {
		respondServerError(c, CodeStorage, "Failed to create upload URL", err)
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"uploadURL":  uploadURL,
		"objectPath": objectPath,
	})
}

// SetPartnerLogo handles PUT /api/partners/:id/logo.
// The uploaded object is made public-read; an ACL failure is logged and the path is stored anyway.
func (ctl *ObjectController) SetPartnerLogo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req SetPartnerLogoRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	partner, err := ctl.partners.Get(ctx, id)
	if err != nil {
		respondServerError(c, CodeDatabase, "Failed to load partner", err)
		return
	}
	if partner == nil {
		respondNotFound(c, "Partner")
		return
	}

	objectPath, err := ctl.storage.NormalizeObjectPath(req.LogoURL)
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "Invalid request data",
			FieldError{Field: "logoURL", Message: "must be a URL of an uploaded object"})
		return
	}

	if err := ctl.storage.SetPublicACL(ctx, objectPath); err != nil {
		log.Warn().Err(err).Str("object_path", objectPath).Msg("Failed to set public ACL on logo")
	}

	partner, err = ctl.partners.Update(ctx, id, func(p *models.Partner) {
		p.LogoURL = &objectPath
	})
	if err != nil {
		respondServerError(c, CodeDatabase, "Failed to update partner", err)
		return
	}
	if partner == nil {
		respondNotFound(c, "Partner")
		return
	}

	if ctl.cache != nil {
		ctl.cache.Invalidate(ctx)
	}

	respondData(c, http.StatusOK, gin.H{
		"objectPath": objectPath,
		"partner":    partner,
	})
}

// ServePrivate handles GET /objects/*path
func (ctl *ObjectController) ServePrivate(c *gin.Context) {
	objectPath := utils.ObjectPathPrefix + strings.TrimPrefix(c.Param("path"), "/")
	object, err := ctl.storage.OpenPrivate(c.Request.Context(), objectPath)
	ctl.stream(c, object, err)
}

// ServePublic handles GET /public-objects/*path
func (ctl *ObjectController) ServePublic(c *gin.Context) {
	object, err := ctl.storage.OpenPublic(c.Request.Context(), c.Param("path"))
	ctl.stream(c, object, err)
}

func (ctl *ObjectController) stream(c *gin.Context, object *services.StoredObject, err error) {
	if err != nil {
		if errors.Is(err, services.ErrObjectNotFound) || errors.Is(err, utils.ErrInvalidObjectPath) {
			respondError(c, http.StatusNotFound, CodeObjectNotFound, "Object not found")
			return
		}
		respondServerError(c, CodeStorage, "Failed to read object", err)
		return
	}
	defer object.Body.Close()

	c.DataFromReader(http.StatusOK, object.ContentLength, object.ContentType, object.Body, map[string]string{
		"Cache-Control": objectCacheControl,
	})
}
