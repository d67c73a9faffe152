package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawscare/vet-clinic-site/models"
)

func homeFixtures() ([]models.ServicePackage, []models.CustomerReview, []models.Partner) {
	packages := []models.ServicePackage{{
		Name:       "Basic Care",
		NameAr:     strPtr("الرعاية الأساسية"),
		Price:      "299",
		Period:     "SAR/year",
		PeriodAr:   strPtr("ريال/سنة"),
		Popular:    true,
		Features:   []string{"Annual Exam", "Vaccines"},
		FeaturesAr: []string{"فحص سنوي", "تطعيمات"},
	}, {
		Name:     "Dental",
		Price:    "150",
		Period:   "SAR",
		Features: []string{"Cleaning"},
	}}
	reviews := []models.CustomerReview{{Name: "Sara", NameAr: strPtr("سارة"), Rating: 5, Message: "Great care"}}
	partners := []models.Partner{
		{Name: "Royal Canin", LogoURL: strPtr("/objects/uploads/abc")},
		{Name: "Broken", LogoURL: strPtr("javascript:alert(1)")},
		{Name: "Plain"},
	}
	return packages, reviews, partners
}

func pageFor(lang string) Page {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return NewPage(c, lang, "brand.name")
}

func TestBuildHomePageEnglish(t *testing.T) {
	packages, reviews, partners := homeFixtures()

	home := BuildHomePage(pageFor("en"), packages, reviews, partners)

	require.Len(t, home.Services, len(serviceKeys))
	assert.Equal(t, "checkups", home.Services[0].Key)
	assert.NotEmpty(t, home.Services[0].Title)

	require.Len(t, home.Packages, 2)
	assert.Equal(t, "Basic Care", home.Packages[0].Name)
	assert.Equal(t, []string{"Annual Exam", "Vaccines"}, home.Packages[0].Features)
	assert.True(t, home.Packages[0].Popular)

	assert.Equal(t, "Sara", home.Reviews[0].Name)
}

func TestBuildHomePageArabicFallsBackToEnglish(t *testing.T) {
	packages, reviews, partners := homeFixtures()

	home := BuildHomePage(pageFor("ar"), packages, reviews, partners)

	assert.Equal(t, "الرعاية الأساسية", home.Packages[0].Name)
	assert.Equal(t, "ريال/سنة", home.Packages[0].Period)
	assert.Equal(t, []string{"فحص سنوي", "تطعيمات"}, home.Packages[0].Features)
	assert.Equal(t, "Dental", home.Packages[1].Name, "Missing Arabic text should fall back to English")
	assert.Equal(t, []string{"Cleaning"}, home.Packages[1].Features)
	assert.Equal(t, "سارة", home.Reviews[0].Name)
}

func TestBuildHomePageDropsUnsafeLogos(t *testing.T) {
	packages, reviews, partners := homeFixtures()

	home := BuildHomePage(pageFor("en"), packages, reviews, partners)

	require.Len(t, home.Partners, 3)
	assert.Equal(t, "/objects/uploads/abc", string(home.Partners[0].LogoURL))
	assert.Empty(t, home.Partners[1].LogoURL)
	assert.Empty(t, home.Partners[2].LogoURL)
}

func TestHomePageRendersStoredContent(t *testing.T) {
	db := setupTestDB(t)
	packages, reviews, partners := homeFixtures()
	require.NoError(t, db.Create(&packages).Error)
	require.NoError(t, db.Create(&reviews).Error)
	require.NoError(t, db.Create(&partners).Error)

	router := siteRouter(t, db)

	w := get(router, "/")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `dir="ltr"`)
	assert.Contains(t, body, "Basic Care")
	assert.Contains(t, body, "Great care")
	assert.Contains(t, body, `src="/objects/uploads/abc"`)
	assert.NotContains(t, body, "javascript:alert")
	assert.Contains(t, body, `id="discount-form"`)

	w = get(router, "/?lang=ar")
	require.Equal(t, http.StatusOK, w.Code)
	body = w.Body.String()
	assert.Contains(t, body, `dir="rtl"`)
	assert.Contains(t, body, "الرعاية الأساسية")
	assert.Contains(t, w.Header().Get("Set-Cookie"), "lang=ar")
}

func TestHomePageRendersEmptySections(t *testing.T) {
	router := siteRouter(t, setupTestDB(t))

	w := get(router, "/")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Packages are coming soon.")
	assert.Contains(t, w.Body.String(), "No reviews yet.")
}

func TestUnknownRouteRendersNotFoundPage(t *testing.T) {
	router := siteRouter(t, setupTestDB(t))

	w := get(router, "/no/such/page")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page not found")
}

func TestDefaultScreenRows(t *testing.T) {
	db := setupTestDB(t)
	packages, reviews, _ := homeFixtures()
	require.NoError(t, db.Create(&packages).Error)
	require.NoError(t, db.Create(&reviews).Error)

	screens := DefaultScreens(db)
	require.Len(t, screens, 3)
	assert.Equal(t, "packages", screens[0].Meta().Slug)
	assert.Equal(t, "/api/customer-reviews", screens[1].Meta().Endpoint)
	assert.True(t, screens[2].Meta().LogoUpload)

	rows, err := screens[0].Rows(context.Background(), "en")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, packages[0].ID, rows[0].ID)
	assert.Equal(t, "Basic Care", rows[0].Cells[0])
	assert.Equal(t, "299 SAR/year", rows[0].Cells[1])
	assert.Contains(t, rows[0].Record, `"features":["Annual Exam","Vaccines"]`)
	assert.Len(t, rows[0].Cells, len(screens[0].Meta().Headers))

	reviewRows, err := screens[1].Rows(context.Background(), "ar")
	require.NoError(t, err)
	assert.Equal(t, "سارة", reviewRows[0].Cells[0])
	assert.Equal(t, "★★★★★", reviewRows[0].Cells[1])

	count, err := screens[1].Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abc…", truncate("abcdef", 3))
	assert.Equal(t, "سار…", truncate("سارة جدا", 3))
}
