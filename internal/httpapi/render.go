package httpapi

import (
	"embed"
	"html/template"
	"log"
	"net/http"

	"github.com/gorilla/csrf"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = parseTemplates()

func parseTemplates() map[string]*template.Template {
	pages := []string{"form.html", "success.html", "login.html", "admin.html"}
	parsed := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		parsed[page] = template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/"+page))
	}
	return parsed
}

type basePage struct {
	Title     string
	AppName   string
	CSRFField template.HTML
}

func (h *Handler) basePage(r *http.Request, title string) basePage {
	return basePage{
		Title:     title,
		AppName:   h.cfg.AppName,
		CSRFField: csrf.TemplateField(r),
	}
}

func (h *Handler) render(w http.ResponseWriter, page string, data interface{}) {
	tpl, ok := pageTemplates[page]
	if !ok {
		log.Printf("render unknown page=%s", page)
		http.Error(w, "Terjadi kesalahan pada server.", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		log.Printf("render page=%s error=%v", page, err)
	}
}
