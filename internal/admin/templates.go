package admin

import (
	"embed"
	"html/template"
	"time"

	"github.com/oldoaktown/backend/internal/models"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// cardData is the per-listing-card template context.
type cardData struct {
	Sub         models.Submission
	ShowApprove bool
}

var pageTemplates = template.Must(
	template.New("admin").Funcs(template.FuncMap{
		"card": func(sub models.Submission, showApprove bool) cardData {
			return cardData{Sub: sub, ShowApprove: showApprove}
		},
		"fmtTime": func(t *time.Time) string {
			if t == nil {
				return ""
			}
			return t.Local().Format("2 Jan 2006 15:04")
		},
		"fmtTimeVal": func(t time.Time) string {
			return t.Local().Format("2 Jan 2006 15:04")
		},
		"orNA": func(s string) string {
			if s == "" {
				return "N/A"
			}
			return s
		},
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
	}).ParseFS(templateFS, "templates/*.tmpl"),
)
