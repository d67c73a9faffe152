package controllers

import (
	"time"

	"github.com/pawscare/vet-clinic-site/models"
	"github.com/pawscare/vet-clinic-site/repository"
	"github.com/pawscare/vet-clinic-site/services"
)

// CreatePartnerRequest represents the request body for creating a partner
type CreatePartnerRequest struct {
	Name    string  `json:"name" binding:"required,notblank"`
	NameAr  *string `json:"nameAr"`
	LogoURL *string `json:"logoUrl" binding:"omitempty,logo_url"`
}

// UpdatePartnerRequest is a partial update; an empty logoUrl removes the logo
type UpdatePartnerRequest struct {
	Name    *string `json:"name" binding:"omitnil,notblank"`
	NameAr  *string `json:"nameAr"`
	LogoURL *string `json:"logoUrl" binding:"omitempty,logo_url"`
}

// PartnerController serves /api/partners
type PartnerController = Resource[models.Partner, CreatePartnerRequest, UpdatePartnerRequest]

// NewPartnerController creates the partner resource
func NewPartnerController(repo *repository.Repository[models.Partner], cache services.Cache, ttl time.Duration) *PartnerController {
	return NewResource(ResourceOptions[models.Partner, CreatePartnerRequest, UpdatePartnerRequest]{
		Name:     "partners",
		Label:    "Partner",
		Repo:     repo,
		Cache:    cache,
		CacheTTL: ttl,
		Build: func(req *CreatePartnerRequest) *models.Partner {
			return &models.Partner{
				Name:    req.Name,
				NameAr:  optionalString(req.NameAr),
				LogoURL: optionalString(req.LogoURL),
			}
		},
		Apply: func(req *UpdatePartnerRequest, partner *models.Partner) {
			if req.Name != nil {
				partner.Name = *req.Name
			}
			patchOptional(&partner.NameAr, req.NameAr)
			patchOptional(&partner.LogoURL, req.LogoURL)
		},
	})
}
