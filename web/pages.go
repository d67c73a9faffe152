package web

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/pawscare/vet-clinic-site/i18n"
	"github.com/pawscare/vet-clinic-site/middleware"
	"github.com/pawscare/vet-clinic-site/models"
	"github.com/pawscare/vet-clinic-site/repository"
	"github.com/pawscare/vet-clinic-site/utils"
)

// serviceKeys are the accordion entries on the home page, in display order
var serviceKeys = []string{"checkups", "vaccination", "surgery", "dental", "grooming", "emergency"}

// ServiceItem is one accordion entry
type ServiceItem struct {
	Key   string
	Title string
	Body  string
}

// PackageCard is a service package in the active language
type PackageCard struct {
	Name     string
	Price    string
	Period   string
	Features []string
	Popular  bool
}

// ReviewCard is a customer review in the active language
type ReviewCard struct {
	Name    string
	Rating  int
	Message string
}

// PartnerLogo is one entry in the partners strip
type PartnerLogo struct {
	Name string
	// LogoURL is re-validated before being trusted, since inline logos are data URIs
	LogoURL template.URL
}

// HomePage is the data behind GET /
type HomePage struct {
	Page
	Services []ServiceItem
	Packages []PackageCard
	Reviews  []ReviewCard
	Partners []PartnerLogo
}

// SiteHandler renders the public pages
type SiteHandler struct {
	renderer *Renderer
	packages *repository.Repository[models.ServicePackage]
	reviews  *repository.Repository[models.CustomerReview]
	partners *repository.Repository[models.Partner]
}

// NewSiteHandler creates the public page handler
func NewSiteHandler(db *gorm.DB, renderer *Renderer) *SiteHandler {
	return &SiteHandler{
		renderer: renderer,
		packages: repository.New[models.ServicePackage](db),
		reviews:  repository.New[models.CustomerReview](db),
		partners: repository.New[models.Partner](db),
	}
}

// Home handles GET /
func (h *SiteHandler) Home(c *gin.Context) {
	ctx := c.Request.Context()
	lang := middleware.GetLanguage(c)

	// a failing section renders as empty rather than taking the page down
	packages, err := h.packages.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load packages for home page")
	}
	reviews, err := h.reviews.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load reviews for home page")
	}
	partners, err := h.partners.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load partners for home page")
	}

	h.renderer.Render(c, http.StatusOK, "home", BuildHomePage(NewPage(c, lang, "brand.name"), packages, reviews, partners))
}

// NotFound renders the 404 page for unmatched routes
func (h *SiteHandler) NotFound(c *gin.Context) {
	lang := middleware.GetLanguage(c)
	h.renderer.Render(c, http.StatusNotFound, "not_found", NewPage(c, lang, "notfound.title"))
}

// BuildHomePage localizes the stored records for the page language
func BuildHomePage(page Page, packages []models.ServicePackage, reviews []models.CustomerReview, partners []models.Partner) HomePage {
	lang := page.Lang
	home := HomePage{Page: page}

	for _, key := range serviceKeys {
		home.Services = append(home.Services, ServiceItem{
			Key:   key,
			Title: i18n.T(lang, "services."+key+".title"),
			Body:  i18n.T(lang, "services."+key+".body"),
		})
	}

	for _, p := range packages {
		home.Packages = append(home.Packages, PackageCard{
			Name:     i18n.Localized(lang, p.Name, p.NameAr),
			Price:    p.Price,
			Period:   i18n.Localized(lang, p.Period, p.PeriodAr),
			Features: i18n.LocalizedList(lang, p.Features, p.FeaturesAr),
			Popular:  p.Popular,
		})
	}

	for _, r := range reviews {
		home.Reviews = append(home.Reviews, ReviewCard{
			Name:    i18n.Localized(lang, r.Name, r.NameAr),
			Rating:  r.Rating,
			Message: r.Message,
		})
	}

	for _, p := range partners {
		logo := PartnerLogo{Name: i18n.Localized(lang, p.Name, p.NameAr)}
		if p.LogoURL != nil && utils.ValidateLogoURL(*p.LogoURL) == nil {
			logo.LogoURL = template.URL(*p.LogoURL)
		}
		home.Partners = append(home.Partners, logo)
	}

	return home
}
