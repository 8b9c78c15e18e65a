package httpadapter

import (
	"fmt"
	"net/url"
	"time"

	"ads-dashboard/internal/core/domain"
	"ads-dashboard/internal/core/port"
)

// parseSelection reads campaign, start, end and metric from q. Absent
// parameters take the value of def. Dates are YYYY-MM-DD or RFC3339; only
// the calendar date is kept.
func parseSelection(q url.Values, def domain.Selection) (domain.Selection, error) {
	sel := def
	if v := q.Get("campaign"); v != "" {
		sel.Campaign = v
	}

	var err error
	if sel.Start, err = parseDateParam(q, "start", def.Start); err != nil {
		return sel, err
	}
	if sel.End, err = parseDateParam(q, "end", def.End); err != nil {
		return sel, err
	}

	if v := q.Get("metric"); v != "" {
		if sel.Metric, err = domain.ParseMetric(v); err != nil {
			return sel, err
		}
	}
	return sel, nil
}

func parseDateParam(q url.Values, key string, def time.Time) (time.Time, error) {
	v := q.Get(key)
	if v == "" {
		return def, nil
	}
	if t, err := time.Parse(domain.DateLayout, v); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid '%s' date %q", key, v)
	}
	return domain.DateOf(t), nil
}

type selectionDTO struct {
	Campaign    string `json:"campaign"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Metric      string `json:"metric"`
	Aggregation string `json:"aggregation"`
}

func toSelectionDTO(sel domain.Selection) selectionDTO {
	return selectionDTO{
		Campaign:    sel.Campaign,
		Start:       sel.Start.Format(domain.DateLayout),
		End:         sel.End.Format(domain.DateLayout),
		Metric:      string(sel.Metric),
		Aggregation: string(sel.Metric.Aggregation()),
	}
}

type metricDTO struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Aggregation string `json:"aggregation"`
}

type optionsDTO struct {
	Campaigns []string     `json:"campaigns"`
	MinDate   string       `json:"minDate"`
	MaxDate   string       `json:"maxDate"`
	Metrics   []metricDTO  `json:"metrics"`
	Default   selectionDTO `json:"default"`
}

func toOptionsDTO(o port.Options) optionsDTO {
	metrics := make([]metricDTO, 0, len(o.Metrics))
	for _, m := range o.Metrics {
		metrics = append(metrics, metricDTO{Value: string(m), Label: m.Label(), Aggregation: string(m.Aggregation())})
	}
	return optionsDTO{
		Campaigns: o.Campaigns,
		MinDate:   o.MinDate.Format(domain.DateLayout),
		MaxDate:   o.MaxDate.Format(domain.DateLayout),
		Metrics:   metrics,
		Default:   toSelectionDTO(o.Default),
	}
}
