package web

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"

	"github.com/pawscare/vet-clinic-site/i18n"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// pages are the templates that define a "content" block for the shared layout
var pages = []string{"home", "login", "dashboard", "manage", "not_found"}

// Page carries what the layout needs on every request
type Page struct {
	Lang      string
	Dir       string
	Title     string
	OtherLang string
	Path      string
	Admin     bool
	Username  string
}

// NewPage fills the layout fields for lang
func NewPage(c *gin.Context, lang, titleKey string) Page {
	other := i18n.Arabic
	if lang == i18n.Arabic {
		other = i18n.English
	}
	return Page{
		Lang:      lang,
		Dir:       i18n.Direction(lang),
		Title:     i18n.T(lang, titleKey),
		OtherLang: other,
		Path:      c.Request.URL.Path,
	}
}

// Renderer executes the embedded page templates
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the layout once and clones it for every page
func NewRenderer() (*Renderer, error) {
	base, err := template.New("layout.html").Funcs(FuncMap()).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		tmpl, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone layout for %s: %w", name, err)
		}
		if _, err := tmpl.ParseFS(templateFS, "templates/"+name+".html"); err != nil {
			return nil, fmt.Errorf("failed to parse page %s: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

// Render writes page with data. The page is rendered to a buffer first so a template error yields a clean 500.
func (r *Renderer) Render(c *gin.Context, status int, page string, data interface{}) {
	tmpl, ok := r.pages[page]
	if !ok {
		log.Error().Str("page", page).Msg("Unknown page template")
		c.String(http.StatusInternalServerError, "Template error")
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Error().Err(err).Str("page", page).Msg("Render error")
		c.String(http.StatusInternalServerError, "Render error")
		return
	}

	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

// StaticFiles serves the embedded css and js under /static
func StaticFiles() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// FuncMap holds the helpers available to every template
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"t":   i18n.T,
		"dir": i18n.Direction,
		"tf": func(lang, key string, args ...interface{}) string {
			return fmt.Sprintf(i18n.T(lang, key), args...)
		},
		"localized":     i18n.Localized,
		"localizedList": i18n.LocalizedList,
		"stars":         Stars,
		"humanizeTime": func(val interface{}) string {
			t, err := cast.ToTimeE(val)
			if err != nil || t.IsZero() {
				return ""
			}
			return humanize.Time(t)
		},
		"formatCount": func(val interface{}) string {
			return humanize.Comma(cast.ToInt64(val))
		},
		"formatDate": func(val interface{}) string {
			t, err := cast.ToTimeE(val)
			if err != nil || t.IsZero() {
				return ""
			}
			return t.Format(time.DateTime)
		},
		"join": strings.Join,
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"toJSON": func(val interface{}) (string, error) {
			b, err := json.Marshal(val)
			if err != nil {
				return "", err
			}
			return string(b), nil
		},
		"dict": func(values ...interface{}) (map[string]interface{}, error) {
			if len(values)%2 != 0 {
				return nil, errors.New("invalid dict call")
			}
			dict := make(map[string]interface{}, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					return nil, errors.New("dict keys must be strings")
				}
				dict[key] = values[i+1]
			}
			return dict, nil
		},
		"seq": func(n interface{}) []int {
			count := cast.ToInt(n)
			out := make([]int, 0, count)
			for i := 1; i <= count; i++ {
				out = append(out, i)
			}
			return out
		},
	}
}

// Stars renders a 1..5 rating as filled and empty stars
func Stars(rating interface{}) string {
	n := cast.ToInt(rating)
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}
