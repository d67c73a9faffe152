package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/pawscare/vet-clinic-site/tests/testutil"
)

// envelope is the common shape of every JSON response
type envelope struct {
	Success bool              `json:"success"`
	Data    json.RawMessage   `json:"data"`
	Error   string            `json:"error"`
	Code    string            `json:"code"`
	Exists  *bool             `json:"exists"`
	Details []json.RawMessage `json:"details"`
}

func newRequest(method, path string, body interface{}) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func perform(app *testutil.TestApp, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	return w
}

func decode(w *httptest.ResponseRecorder) envelope {
	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return env
}
