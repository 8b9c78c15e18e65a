package httpadapter

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"ads-dashboard/web"
)

var pageTmpl = template.Must(template.ParseFS(web.TemplatesFS, "templates/dashboard.html"))

type pageData struct {
	Title   string
	Options optionsDTO
}

// handlePage renders the dashboard shell with the selectors pre-filled. The
// charts and KPIs are fetched by the page script.
func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Title:   "Dashboard Facebook Ads",
		Options: toOptionsDTO(h.svc.Options(r.Context())),
	}

	var buf bytes.Buffer
	if err := pageTmpl.ExecuteTemplate(&buf, "dashboard.html", data); err != nil {
		h.logger.Error("render page error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("write page error", slog.Any("error", err))
	}
}
