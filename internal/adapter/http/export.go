package httpadapter

import (
	"bytes"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"ads-dashboard/internal/adapter/xlsx"
	"ads-dashboard/internal/core/domain"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// exportSheet names the worksheet of exported workbooks so they can be fed
// back in as a dataset.
const exportSheet = "Campanhas"

// handleExport downloads the selected campaign's rows within the period as
// a workbook. It accepts the same parameters as the dashboard endpoint;
// metric is ignored.
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	opts := h.svc.Options(r.Context())
	q := r.URL.Query()
	q.Del("metric")
	sel, err := parseSelection(q, opts.Default)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err = xlsx.Write(&buf, exportSheet, h.svc.Records(r.Context(), sel)); err != nil {
		h.logger.Error("export error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	name := fmt.Sprintf("%s_%s_%s.xlsx", sel.Campaign,
		sel.Start.Format(domain.DateLayout), sel.End.Format(domain.DateLayout))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err = buf.WriteTo(w); err != nil {
		h.logger.Error("write export error", slog.Any("error", err))
	}
}
