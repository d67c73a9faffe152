package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawscare/vet-clinic-site/middleware"
	"github.com/pawscare/vet-clinic-site/routes"
	"github.com/pawscare/vet-clinic-site/tests/testutil"
)

func serve(app *testutil.TestApp, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	return w
}

func jsonRequest(method, path string, body interface{}) *http.Request {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSetupRequiresDependencies(t *testing.T) {
	_, err := routes.Setup(routes.Dependencies{})
	assert.Error(t, err)
}

func TestHealthRoute(t *testing.T) {
	app := testutil.NewTestApp(t)

	w := serve(app, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Vet clinic API is running")
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestPublicReadsAreOpen(t *testing.T) {
	app := testutil.NewTestApp(t)

	for _, path := range []string{"/api/service-packages", "/api/customer-reviews", "/api/partners", "/api/translations/ar"} {
		w := serve(app, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestWritesRequireAdminToken(t *testing.T) {
	app := testutil.NewTestApp(t)

	guarded := []*http.Request{
		jsonRequest(http.MethodPost, "/api/service-packages", map[string]interface{}{}),
		jsonRequest(http.MethodPut, "/api/customer-reviews/1", map[string]interface{}{}),
		httptest.NewRequest(http.MethodDelete, "/api/partners/1", nil),
		jsonRequest(http.MethodPut, "/api/partners/1/logo", map[string]interface{}{}),
		httptest.NewRequest(http.MethodPost, "/api/objects/upload", nil),
		httptest.NewRequest(http.MethodGet, "/api/opening-discount", nil),
		httptest.NewRequest(http.MethodGet, "/api/auth/me", nil),
	}

	for _, req := range guarded {
		w := serve(app, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, req.Method+" "+req.URL.Path)
		assert.Contains(t, w.Body.String(), `"code":"UNAUTHORIZED"`)
	}
}

func TestAdminTokenUnlocksWrites(t *testing.T) {
	app := testutil.NewTestApp(t)

	req := app.Authorize(t, jsonRequest(http.MethodPost, "/api/partners", map[string]interface{}{"name": "Royal Canin"}))
	w := serve(app, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestSessionCookieUnlocksWrites(t *testing.T) {
	app := testutil.NewTestApp(t)

	req := jsonRequest(http.MethodPost, "/api/partners", map[string]interface{}{"name": "Hill's"})
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: app.AdminToken(t)})
	w := serve(app, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestOpeningDiscountSignupIsPublic(t *testing.T) {
	app := testutil.NewTestApp(t)

	w := serve(app, jsonRequest(http.MethodPost, "/api/opening-discount", map[string]interface{}{
		"firstName":    "Omar",
		"lastName":     "Haddad",
		"phoneNumber":  "0551234567",
		"emailAddress": "omar@example.com",
	}))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = serve(app, httptest.NewRequest(http.MethodGet, "/api/opening-discount/check-phone/0551234567", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"exists":true`)
}

func TestAdminPagesRedirectToLogin(t *testing.T) {
	app := testutil.NewTestApp(t)

	for _, path := range []string{"/admin", "/admin/packages"} {
		w := serve(app, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, routes.LoginPath, w.Header().Get("Location"))
	}

	w := serve(app, httptest.NewRequest(http.MethodGet, routes.LoginPath, nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminPagesWithSession(t *testing.T) {
	app := testutil.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/partners", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: app.AdminToken(t)})
	w := serve(app, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), testutil.AdminUsername)
	assert.Contains(t, w.Body.String(), `data-endpoint="/api/partners"`)
}

func TestPagesAndStaticAssets(t *testing.T) {
	app := testutil.NewTestApp(t)

	w := serve(app, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/html"))

	w = serve(app, httptest.NewRequest(http.MethodGet, "/static/js/site.js", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(app, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page not found")
}

func TestObjectStreamingRoutes(t *testing.T) {
	app := testutil.NewTestApp(t)
	app.Storage.Put("/objects/uploads/logo", []byte("png"), "image/png")

	w := serve(app, httptest.NewRequest(http.MethodGet, "/objects/uploads/logo", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "png", w.Body.String())

	w = serve(app, httptest.NewRequest(http.MethodGet, "/public-objects/missing.png", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	app := testutil.NewTestApp(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/partners", nil)
	req.Header.Set("Origin", "https://clinic.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := serve(app, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
