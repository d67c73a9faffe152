package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/pawscare/vet-clinic-site/middleware"
	"github.com/pawscare/vet-clinic-site/models"
	"github.com/pawscare/vet-clinic-site/repository"
	"github.com/pawscare/vet-clinic-site/utils"
)

// PhoneExistsMessage is the error text of a 409 on a taken phone number
const PhoneExistsMessage = "Phone number already registered"

// ConfirmationSender sends the registrant's discount email
type ConfirmationSender interface {
	SendOpeningDiscountConfirmation(ctx context.Context, reg *models.OpeningDiscount, lang string) error
}

// CreateOpeningDiscountRequest represents the promotional signup form
type CreateOpeningDiscountRequest struct {
	FirstName    string `json:"firstName" binding:"required,notblank"`
	LastName     string `json:"lastName" binding:"required,notblank"`
	PhoneNumber  string `json:"phoneNumber" binding:"required,phone10"`
	EmailAddress string `json:"emailAddress" binding:"required,email"`
	Language     string `json:"language" binding:"omitempty,oneof=en ar"`
}

// OpeningDiscountController serves /api/opening-discount
type OpeningDiscountController struct {
	repo     *repository.OpeningDiscountRepository
	notifier ConfirmationSender
}

// NewOpeningDiscountController creates the registration controller
func NewOpeningDiscountController(repo *repository.OpeningDiscountRepository, notifier ConfirmationSender) *OpeningDiscountController {
	return &OpeningDiscountController{repo: repo, notifier: notifier}
}

// Create handles POST /api/opening-discount.
// The unique index on phone_number decides duplicates; the confirmation email is best effort.
func (ctl *OpeningDiscountController) Create(c *gin.Context) {
	var req CreateOpeningDiscountRequest
	if !bindJSON(c, &req) {
		return
	}

	lang := req.Language
	if lang == "" {
		lang = middleware.GetLanguage(c)
	}

	registration := &models.OpeningDiscount{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		PhoneNumber:  req.PhoneNumber,
		EmailAddress: strings.TrimSpace(req.EmailAddress),
		Language:     lang,
	}

	if err := ctl.repo.Register(c.Request.Context(), registration); err != nil {
		if errors.Is(err, repository.ErrPhoneAlreadyRegistered) {
			respondError(c, http.StatusConflict, CodePhoneExists, PhoneExistsMessage)
			return
		}
		respondServerError(c, CodeDatabase, "Failed to save registration", err)
		return
	}

	// the registration is already committed; a client disconnect must not abort the send
	ctx := context.WithoutCancel(c.Request.Context())
	if err := ctl.notifier.SendOpeningDiscountConfirmation(ctx, registration, lang); err != nil {
		log.Warn().Err(err).Uint("registration_id", registration.ID).Msg("Opening discount email failed")
	}

	respondData(c, http.StatusCreated, registration)
}

// CheckPhone handles GET /api/opening-discount/check-phone/:phoneNumber
func (ctl *OpeningDiscountController) CheckPhone(c *gin.Context) {
	phone := c.Param("phoneNumber")
	if !utils.IsTenDigitPhone(phone) {
		respondError(c, http.StatusBadRequest, CodeValidation, "Invalid request data",
			FieldError{Field: "phoneNumber", Message: "must be exactly 10 digits"})
		return
	}

	exists, err := ctl.repo.PhoneExists(c.Request.Context(), phone)
	if err != nil {
		respondServerError(c, CodeDatabase, "Failed to check phone number", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "exists": exists})
}

// CheckEmail handles GET /api/opening-discount/check-email/:email
func (ctl *OpeningDiscountController) CheckEmail(c *gin.Context) {
	email := strings.TrimSpace(c.Param("email"))
	if err := validateVar(email, "required,email"); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "Invalid request data",
			FieldError{Field: "email", Message: "must be a valid email address"})
		return
	}

	exists, err := ctl.repo.EmailExists(c.Request.Context(), email)
	if err != nil {
		respondServerError(c, CodeDatabase, "Failed to check email address", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "exists": exists})
}

// List handles GET /api/opening-discount (admin only), newest first
func (ctl *OpeningDiscountController) List(c *gin.Context) {
	registrations, err := ctl.repo.Recent(c.Request.Context(), 0)
	if err != nil {
		respondServerError(c, CodeDatabase, "Failed to load registrations", err)
		return
	}
	respondData(c, http.StatusOK, registrations)
}
