package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math"
	"mime"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ads-dashboard/internal/adapter/xlsx"
	"ads-dashboard/internal/core/domain"
	"ads-dashboard/internal/core/port"
	"ads-dashboard/internal/core/port/mocks"
	"ads-dashboard/internal/core/present"
)

func day(d int) time.Time {
	return time.Date(2025, time.September, d, 0, 0, 0, 0, time.UTC)
}

var options = port.Options{
	Campaigns: []string{"Verão", "Inverno"},
	MinDate:   day(1),
	MaxDate:   day(10),
	Metrics:   domain.Metrics,
	Default:   domain.Selection{Campaign: "Verão", Start: day(1), End: day(10), Metric: domain.MetricClicks},
}

func newTestHandler(t *testing.T) (*mocks.MockDashboardUseCase, http.Handler) {
	t.Helper()
	svc := mocks.NewMockDashboardUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return svc, NewHandler(svc, logger).Router()
}

func serve(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func emptyView(sel domain.Selection) *port.DashboardView {
	summary := domain.KPISummary{MeanCTR: math.NaN(), MeanCPC: math.NaN()}
	return &port.DashboardView{
		Selection:  sel,
		Summary:    summary,
		KPIs:       present.KPIs(summary),
		Clicks:     present.ClicksChart(sel.Campaign, nil),
		Spend:      present.SpendChart(sel.Campaign, nil),
		Comparison: present.ComparisonChart(domain.Comparison{Metric: sel.Metric, Aggregation: sel.Metric.Aggregation()}),
	}
}

func TestDashboardDefaults(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().Options(mock.Anything).Return(options)
	svc.EXPECT().Refresh(mock.Anything, options.Default).Return(emptyView(options.Default), nil)

	rec := serve(h, "/api/v1/dashboard")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	sel := body["selection"].(map[string]any)
	assert.Equal(t, "Verão", sel["campaign"])
	assert.Equal(t, "2025-09-01", sel["start"])
	assert.Equal(t, "2025-09-10", sel["end"])
	assert.Equal(t, "sum", sel["aggregation"])

	summary := body["summary"].(map[string]any)
	assert.Nil(t, summary["meanCtr"], "undefined means serialise as null")
	assert.Nil(t, summary["meanCpc"])
	assert.Equal(t, float64(0), summary["totalClicks"])

	kpis := body["kpis"].([]any)
	require.Len(t, kpis, 4)
	assert.Equal(t, present.NotAvailable, kpis[2].(map[string]any)["value"])

	charts := body["charts"].(map[string]any)
	assert.Equal(t, "line", charts["clicks"].(map[string]any)["kind"])
	assert.Equal(t, "outside", charts["comparison"].(map[string]any)["textPosition"])
}

func TestDashboardQuery(t *testing.T) {
	svc, h := newTestHandler(t)
	want := domain.Selection{Campaign: "Inverno", Start: day(2), End: day(3), Metric: domain.MetricCTR}
	svc.EXPECT().Options(mock.Anything).Return(options)
	svc.EXPECT().Refresh(mock.Anything, want).Return(emptyView(want), nil)

	q := url.Values{
		"campaign": {"Inverno"},
		"start":    {"2025-09-02"},
		"end":      {"2025-09-03T18:30:00Z"},
		"metric":   {"CTR (%)"},
	}
	rec := serve(h, "/api/v1/dashboard?"+q.Encode())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"aggregation":"mean"`)
}

func TestDashboardBadRequest(t *testing.T) {
	tests := []struct {
		name  string
		query url.Values
	}{
		{"malformed start", url.Values{"start": {"ontem"}}},
		{"malformed end", url.Values{"end": {"2025-13-01"}}},
		{"unknown metric", url.Values{"metric": {"Impressões"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, h := newTestHandler(t)
			svc.EXPECT().Options(mock.Anything).Return(options)

			rec := serve(h, "/api/v1/dashboard?"+tt.query.Encode())

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestDashboardRefreshErrors(t *testing.T) {
	t.Run("unknown metric", func(t *testing.T) {
		svc, h := newTestHandler(t)
		svc.EXPECT().Options(mock.Anything).Return(options)
		svc.EXPECT().Refresh(mock.Anything, mock.Anything).Return(nil, domain.ErrUnknownMetric)

		assert.Equal(t, http.StatusBadRequest, serve(h, "/api/v1/dashboard").Code)
	})

	t.Run("internal", func(t *testing.T) {
		svc, h := newTestHandler(t)
		svc.EXPECT().Options(mock.Anything).Return(options)
		svc.EXPECT().Refresh(mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

		rec := serve(h, "/api/v1/dashboard")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "boom")
	})
}

func TestOptionsEndpoint(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().Options(mock.Anything).Return(options)

	rec := serve(h, "/api/v1/options")

	require.Equal(t, http.StatusOK, rec.Code)
	var body optionsDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"Verão", "Inverno"}, body.Campaigns)
	assert.Equal(t, "2025-09-01", body.MinDate)
	assert.Equal(t, "2025-09-10", body.MaxDate)
	require.Len(t, body.Metrics, 4)
	assert.Equal(t, metricDTO{Value: "CPC (R$)", Label: "🎯 CPC (R$)", Aggregation: "mean"}, body.Metrics[3])
	assert.Equal(t, "Cliques", body.Default.Metric)
}

func TestExport(t *testing.T) {
	svc, h := newTestHandler(t)
	sel := domain.Selection{Campaign: "Inverno", Start: day(2), End: day(4), Metric: domain.MetricClicks}
	records := []domain.Record{
		{Campaign: "Inverno", Date: day(2), Clicks: 7, Spend: 70, CTR: 1.1, CPC: 10},
		{Campaign: "Inverno", Date: day(3), Clicks: 3, Spend: 30, CTR: 0.9, CPC: 10},
	}
	svc.EXPECT().Options(mock.Anything).Return(options)
	svc.EXPECT().Records(mock.Anything, sel).Return(records)

	rec := serve(h, "/api/v1/export?campaign=Inverno&start=2025-09-02&end=2025-09-04&metric=ignored")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	disposition, params, err := mime.ParseMediaType(rec.Header().Get("Content-Disposition"))
	require.NoError(t, err)
	assert.Equal(t, "attachment", disposition)
	assert.Equal(t, "Inverno_2025-09-02_2025-09-04.xlsx", params["filename"])

	ds, err := xlsx.Read(context.Background(), bytes.NewReader(rec.Body.Bytes()), exportSheet)
	require.NoError(t, err)
	assert.Equal(t, records, ds.Records())
}

func TestPage(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().Options(mock.Anything).Return(options)

	rec := serve(h, "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Dashboard Facebook Ads</title>")
	assert.Contains(t, body, `<option value="Verão" selected>Verão</option>`)
	assert.Contains(t, body, `min="2025-09-01"`)
	assert.Contains(t, body, `max="2025-09-10"`)
}

func TestHealthz(t *testing.T) {
	_, h := newTestHandler(t)

	rec := serve(h, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRequestID(t *testing.T) {
	_, h := newTestHandler(t)

	rec := serve(h, "/healthz")
	_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
	assert.NoError(t, err, "a fresh id is assigned")

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestUnknownRoute(t *testing.T) {
	_, h := newTestHandler(t)

	assert.Equal(t, http.StatusNotFound, serve(h, "/api/v1/nope").Code)
}
