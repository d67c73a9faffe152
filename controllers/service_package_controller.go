package controllers

import (
	"time"

	"github.com/pawscare/vet-clinic-site/models"
	"github.com/pawscare/vet-clinic-site/repository"
	"github.com/pawscare/vet-clinic-site/services"
)

// CreateServicePackageRequest represents the request body for creating a service package
type CreateServicePackageRequest struct {
	Name       string   `json:"name" binding:"required,notblank"`
	NameAr     *string  `json:"nameAr"`
	Price      string   `json:"price" binding:"required,notblank"`
	Period     string   `json:"period" binding:"required,notblank"`
	PeriodAr   *string  `json:"periodAr"`
	Popular    *bool    `json:"popular"`
	Features   []string `json:"features" binding:"required,min=1,dive,notblank"`
	FeaturesAr []string `json:"featuresAr" binding:"omitempty,dive,notblank"`
}

// UpdateServicePackageRequest is a partial update; nil fields are left untouched
type UpdateServicePackageRequest struct {
	Name       *string   `json:"name" binding:"omitnil,notblank"`
	NameAr     *string   `json:"nameAr"`
	Price      *string   `json:"price" binding:"omitnil,notblank"`
	Period     *string   `json:"period" binding:"omitnil,notblank"`
	PeriodAr   *string   `json:"periodAr"`
	Popular    *bool     `json:"popular"`
	Features   *[]string `json:"features" binding:"omitnil,min=1,dive,notblank"`
	FeaturesAr *[]string `json:"featuresAr" binding:"omitnil,dive,notblank"`
}

// ServicePackageController serves /api/service-packages
type ServicePackageController = Resource[models.ServicePackage, CreateServicePackageRequest, UpdateServicePackageRequest]

// NewServicePackageController creates the service package resource
func NewServicePackageController(repo *repository.Repository[models.ServicePackage], cache services.Cache, ttl time.Duration) *ServicePackageController {
	return NewResource(ResourceOptions[models.ServicePackage, CreateServicePackageRequest, UpdateServicePackageRequest]{
		Name:     "service-packages",
		Label:    "Service package",
		Repo:     repo,
		Cache:    cache,
		CacheTTL: ttl,
		Build:    buildServicePackage,
		Apply:    applyServicePackage,
	})
}

func buildServicePackage(req *CreateServicePackageRequest) *models.ServicePackage {
	pkg := &models.ServicePackage{
		Name:       req.Name,
		NameAr:     optionalString(req.NameAr),
		Price:      req.Price,
		Period:     req.Period,
		PeriodAr:   optionalString(req.PeriodAr),
		Features:   optionalList(req.Features),
		FeaturesAr: optionalList(req.FeaturesAr),
	}
	if req.Popular != nil {
		pkg.Popular = *req.Popular
	}
	return pkg
}

func applyServicePackage(req *UpdateServicePackageRequest, pkg *models.ServicePackage) {
	if req.Name != nil {
		pkg.Name = *req.Name
	}
	patchOptional(&pkg.NameAr, req.NameAr)
	if req.Price != nil {
		pkg.Price = *req.Price
	}
	if req.Period != nil {
		pkg.Period = *req.Period
	}
	patchOptional(&pkg.PeriodAr, req.PeriodAr)
	if req.Popular != nil {
		pkg.Popular = *req.Popular
	}
	if req.Features != nil {
		pkg.Features = optionalList(*req.Features)
	}
	if req.FeaturesAr != nil {
		pkg.FeaturesAr = optionalList(*req.FeaturesAr)
	}
}
