package controllers

import (
	"time"

	"github.com/pawscare/vet-clinic-site/models"
	"github.com/pawscare/vet-clinic-site/repository"
	"github.com/pawscare/vet-clinic-site/services"
)

// CreateCustomerReviewRequest represents the request body for creating a review
type CreateCustomerReviewRequest struct {
	Name    string  `json:"name" binding:"required,notblank"`
	NameAr  *string `json:"nameAr"`
	Rating  *int    `json:"rating" binding:"required,min=1,max=5"`
	Message string  `json:"message" binding:"required,notblank"`
}

// UpdateCustomerReviewRequest is a partial update; nil fields are left untouched
type UpdateCustomerReviewRequest struct {
	Name    *string `json:"name" binding:"omitnil,notblank"`
	NameAr  *string `json:"nameAr"`
	Rating  *int    `json:"rating" binding:"omitnil,min=1,max=5"`
	Message *string `json:"message" binding:"omitnil,notblank"`
}

// CustomerReviewController serves /api/customer-reviews
type CustomerReviewController = Resource[models.CustomerReview, CreateCustomerReviewRequest, UpdateCustomerReviewRequest]

// NewCustomerReviewController creates the customer review resource
func NewCustomerReviewController(repo *repository.Repository[models.CustomerReview], cache services.Cache, ttl time.Duration) *CustomerReviewController {
	return NewResource(ResourceOptions[models.CustomerReview, CreateCustomerReviewRequest, UpdateCustomerReviewRequest]{
		Name:     "customer-reviews",
		Label:    "Customer review",
		Repo:     repo,
		Cache:    cache,
		CacheTTL: ttl,
		Build: func(req *CreateCustomerReviewRequest) *models.CustomerReview {
			return &models.CustomerReview{
				Name:    req.Name,
				NameAr:  optionalString(req.NameAr),
				Rating:  *req.Rating,
				Message: req.Message,
			}
		},
		Apply: func(req *UpdateCustomerReviewRequest, review *models.CustomerReview) {
			if req.Name != nil {
				review.Name = *req.Name
			}
			patchOptional(&review.NameAr, req.NameAr)
			if req.Rating != nil {
				review.Rating = *req.Rating
			}
			if req.Message != nil {
				review.Message = *req.Message
			}
		},
	})
}
