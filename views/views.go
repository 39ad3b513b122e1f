// Package views renders the HTML pages of the service from embedded
// templates.
package views

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/pkg/errors"

	"github.com/mbolis/survey-editor/httpx"
)

//go:embed templates
var templatesFS embed.FS

// Page names, one per file under templates/pages.
const (
	SignInRequired     = "sign_in_required"
	NotFound           = "not_found"
	EditSurveyLanguage = "edit_survey_language"
	Surveys            = "surveys"
	Login              = "login"
)

type Views struct {
	pages map[string]*template.Template
}

// New parses every page together with the layout and the partials.
func New() (*Views, error) {
	shared, err := template.New("").ParseFS(templatesFS, "templates/layout.html", "templates/partials/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "views.parse_layout")
	}

	files, err := fs.Glob(templatesFS, "templates/pages/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "views.glob")
	}

	v := &Views{pages: map[string]*template.Template{}}
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), ".html")
		base, err := shared.Clone()
		if err != nil {
			return nil, errors.Wrap(err, name)
		}
		page, err := base.ParseFS(templatesFS, file)
		if err != nil {
			return nil, errors.Wrapf(err, "views.parse %s", name)
		}
		v.pages[name] = page
	}
	return v, nil
}

// Render executes page name into a buffer first, so that a failing template
// never leaves a half-written response behind.
func (v *Views) Render(w http.ResponseWriter, status int, name string, data any) error {
	page, ok := v.pages[name]
	if !ok {
		return errors.Errorf("views: unknown page %q", name)
	}

	buf := httpx.NewResponseBuffer()
	buf.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteHeader(status)
	if err := page.ExecuteTemplate(buf, "layout", data); err != nil {
		return errors.Wrapf(err, "views.render %s", name)
	}
	return buf.Flush(w)
}
