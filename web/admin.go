package web

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/pawscare/vet-clinic-site/i18n"
	"github.com/pawscare/vet-clinic-site/middleware"
	"github.com/pawscare/vet-clinic-site/models"
	"github.com/pawscare/vet-clinic-site/repository"
)

// FieldKind selects the form control rendered for a field
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldTextarea FieldKind = "textarea"
	FieldNumber   FieldKind = "number"
	FieldCheckbox FieldKind = "checkbox"
	// FieldList is edited as one item per line and sent as a JSON array
	FieldList FieldKind = "list"
	// FieldImage accepts a URL or an uploaded file
	FieldImage FieldKind = "image"
)

// FieldDef describes one input of an admin form
type FieldDef struct {
	Name     string
	LabelKey string
	Kind     FieldKind
	Required bool
	Min      int
	Max      int
	// RTL marks Arabic-language inputs
	RTL bool
}

// Column is one table column; Cell renders a record's value for the active language
type Column[M any] struct {
	LabelKey string
	Cell     func(m *M, lang string) string
}

// AdminRow is a record prepared for the manage table
type AdminRow struct {
	ID     uint
	Cells  []string
	Record string
}

// ScreenMeta is the entity-independent part of a manage screen
type ScreenMeta struct {
	Slug     string
	TitleKey string
	Endpoint string
	Fields   []FieldDef
	Headers  []string
	// LogoUpload enables the object upload button in edit mode
	LogoUpload bool
}

// Screen is a manage screen for one entity
type Screen interface {
	Meta() ScreenMeta
	Rows(ctx context.Context, lang string) ([]AdminRow, error)
	Count(ctx context.Context) (int64, error)
}

// EntityScreen renders list + form for entity M from its field and column definitions
type EntityScreen[M any] struct {
	meta    ScreenMeta
	repo    *repository.Repository[M]
	columns []Column[M]
	id      func(*M) uint
}

// NewEntityScreen builds a manage screen for M
func NewEntityScreen[M any](meta ScreenMeta, repo *repository.Repository[M], columns []Column[M], id func(*M) uint) *EntityScreen[M] {
	meta.Headers = make([]string, len(columns))
	for i, col := range columns {
		meta.Headers[i] = col.LabelKey
	}
	return &EntityScreen[M]{meta: meta, repo: repo, columns: columns, id: id}
}

func (s *EntityScreen[M]) Meta() ScreenMeta {
	return s.meta
}

func (s *EntityScreen[M]) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// Rows lists every record with its rendered cells and its JSON for the edit form
func (s *EntityScreen[M]) Rows(ctx context.Context, lang string) ([]AdminRow, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]AdminRow, 0, len(records))
	for i := range records {
		record := &records[i]
		encoded, err := json.Marshal(record)
		if err != nil {
			return nil, err
		}
		cells := make([]string, len(s.columns))
		for j, col := range s.columns {
			cells[j] = col.Cell(record, lang)
		}
		rows = append(rows, AdminRow{ID: s.id(record), Cells: cells, Record: string(encoded)})
	}
	return rows, nil
}

// DefaultScreens are the manage screens for packages, reviews and partners, in menu order
func DefaultScreens(db *gorm.DB) []Screen {
	packages := NewEntityScreen(ScreenMeta{
		Slug:     "packages",
		TitleKey: "admin.packages",
		Endpoint: "/api/service-packages",
		Fields: []FieldDef{
			{Name: "name", LabelKey: "field.name", Kind: FieldText, Required: true},
			{Name: "nameAr", LabelKey: "field.name_ar", Kind: FieldText, RTL: true},
			{Name: "price", LabelKey: "field.price", Kind: FieldText, Required: true},
			{Name: "period", LabelKey: "field.period", Kind: FieldText, Required: true},
			{Name: "periodAr", LabelKey: "field.period_ar", Kind: FieldText, RTL: true},
			{Name: "popular", LabelKey: "field.popular", Kind: FieldCheckbox},
			{Name: "features", LabelKey: "field.features", Kind: FieldList, Required: true, Min: 1},
			{Name: "featuresAr", LabelKey: "field.features_ar", Kind: FieldList, RTL: true},
		},
	}, repository.New[models.ServicePackage](db), []Column[models.ServicePackage]{
		{LabelKey: "field.name", Cell: func(p *models.ServicePackage, lang string) string {
			return i18n.Localized(lang, p.Name, p.NameAr)
		}},
		{LabelKey: "field.price", Cell: func(p *models.ServicePackage, lang string) string {
			return p.Price + " " + i18n.Localized(lang, p.Period, p.PeriodAr)
		}},
		{LabelKey: "field.popular", Cell: func(p *models.ServicePackage, _ string) string {
			if p.Popular {
				return "✓"
			}
			return ""
		}},
		{LabelKey: "field.features", Cell: func(p *models.ServicePackage, lang string) string {
			return strings.Join(i18n.LocalizedList(lang, p.Features, p.FeaturesAr), ", ")
		}},
	}, func(p *models.ServicePackage) uint { return p.ID })

	reviews := NewEntityScreen(ScreenMeta{
		Slug:     "reviews",
		TitleKey: "admin.reviews",
		Endpoint: "/api/customer-reviews",
		Fields: []FieldDef{
			{Name: "name", LabelKey: "field.name", Kind: FieldText, Required: true},
			{Name: "nameAr", LabelKey: "field.name_ar", Kind: FieldText, RTL: true},
			{Name: "rating", LabelKey: "field.rating", Kind: FieldNumber, Required: true, Min: 1, Max: 5},
			{Name: "message", LabelKey: "field.message", Kind: FieldTextarea, Required: true},
		},
	}, repository.New[models.CustomerReview](db), []Column[models.CustomerReview]{
		{LabelKey: "field.name", Cell: func(r *models.CustomerReview, lang string) string {
			return i18n.Localized(lang, r.Name, r.NameAr)
		}},
		{LabelKey: "field.rating", Cell: func(r *models.CustomerReview, _ string) string {
			return Stars(r.Rating)
		}},
		{LabelKey: "field.message", Cell: func(r *models.CustomerReview, _ string) string {
			return truncate(r.Message, 80)
		}},
	}, func(r *models.CustomerReview) uint { return r.ID })

	partners := NewEntityScreen(ScreenMeta{
		Slug:     "partners",
		TitleKey: "admin.partners",
		Endpoint: "/api/partners",
		Fields: []FieldDef{
			{Name: "name", LabelKey: "field.name", Kind: FieldText, Required: true},
			{Name: "nameAr", LabelKey: "field.name_ar", Kind: FieldText, RTL: true},
			{Name: "logoUrl", LabelKey: "field.logo", Kind: FieldImage},
		},
		LogoUpload: true,
	}, repository.New[models.Partner](db), []Column[models.Partner]{
		{LabelKey: "field.name", Cell: func(p *models.Partner, lang string) string {
			return i18n.Localized(lang, p.Name, p.NameAr)
		}},
		{LabelKey: "field.logo", Cell: func(p *models.Partner, _ string) string {
			if p.LogoURL == nil {
				return ""
			}
			if strings.HasPrefix(*p.LogoURL, "data:") {
				return "inline image"
			}
			return *p.LogoURL
		}},
	}, func(p *models.Partner) uint { return p.ID })

	return []Screen{packages, reviews, partners}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}

// ScreenSummary is a dashboard tile
type ScreenSummary struct {
	Meta  ScreenMeta
	Count int64
}

// DashboardPage is the data behind GET /admin
type DashboardPage struct {
	Page
	Screens            []ScreenSummary
	RegistrationsTotal int64
	Registrations      []models.OpeningDiscount
}

// ManagePage is the data behind GET /admin/:entity
type ManagePage struct {
	Page
	Screens []ScreenMeta
	Screen  ScreenMeta
	Rows    []AdminRow
}

// AdminHandler renders the back-office pages
type AdminHandler struct {
	renderer      *Renderer
	screens       []Screen
	bySlug        map[string]Screen
	registrations *repository.OpeningDiscountRepository
}

// NewAdminHandler creates the back-office handler for screens
func NewAdminHandler(db *gorm.DB, renderer *Renderer, screens []Screen) *AdminHandler {
	bySlug := make(map[string]Screen, len(screens))
	for _, s := range screens {
		bySlug[s.Meta().Slug] = s
	}
	return &AdminHandler{
		renderer:      renderer,
		screens:       screens,
		bySlug:        bySlug,
		registrations: repository.NewOpeningDiscountRepository(db),
	}
}

func (h *AdminHandler) page(c *gin.Context, titleKey string) Page {
	page := NewPage(c, middleware.GetLanguage(c), titleKey)
	page.Admin = true
	if username, err := middleware.GetUsername(c); err == nil {
		page.Username = username
	}
	return page
}

// Login handles GET /admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	h.renderer.Render(c, http.StatusOK, "login", h.page(c, "admin.login.title"))
}

// Dashboard handles GET /admin
func (h *AdminHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	data := DashboardPage{Page: h.page(c, "admin.dashboard")}

	for _, s := range h.screens {
		count, err := s.Count(ctx)
		if err != nil {
			log.Error().Err(err).Str("screen", s.Meta().Slug).Msg("Failed to count records")
		}
		data.Screens = append(data.Screens, ScreenSummary{Meta: s.Meta(), Count: count})
	}

	total, err := h.registrations.Count(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to count registrations")
	}
	data.RegistrationsTotal = total

	recent, err := h.registrations.Recent(ctx, 10)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load recent registrations")
	}
	data.Registrations = recent

	h.renderer.Render(c, http.StatusOK, "dashboard", data)
}

// Manage handles GET /admin/:entity
func (h *AdminHandler) Manage(c *gin.Context) {
	screen, ok := h.bySlug[c.Param("entity")]
	if !ok {
		h.renderer.Render(c, http.StatusNotFound, "not_found", h.page(c, "notfound.title"))
		return
	}

	meta := screen.Meta()
	page := h.page(c, meta.TitleKey)
	rows, err := screen.Rows(c.Request.Context(), page.Lang)
	if err != nil {
		log.Error().Err(err).Str("screen", meta.Slug).Msg("Failed to load rows")
		c.String(http.StatusInternalServerError, "Failed to load records")
		return
	}

	metas := make([]ScreenMeta, len(h.screens))
	for i, s := range h.screens {
		metas[i] = s.Meta()
	}

	h.renderer.Render(c, http.StatusOK, "manage", ManagePage{
		Page:    page,
		Screens: metas,
		Screen:  meta,
		Rows:    rows,
	})
}

// Screen returns the manage screen registered under slug
func (h *AdminHandler) Screen(slug string) (Screen, bool) {
	s, ok := h.bySlug[slug]
	return s, ok
}
