package winword

import (
	"time"

	"go.uber.org/zap"
)

// DateRange is a provider-side date window filter
type DateRange struct {
	GTE string `json:"gte"`
	LTE string `json:"lte"`
}

// InsightOption is one provider-defined shipment categorization offered in
// the filter panel. An option carries either one or more field values
// (each expanded into its own field/value pair in the request) or a date
// range. Date ranges are not yet supported by the multi-field request
// path; see BuildFilterRequest.
type InsightOption struct {
	Title  string     `json:"title"`
	Field  string     `json:"field"`
	Values []string   `json:"values,omitempty"`
	Range  *DateRange `json:"range,omitempty"`
}

// InsightOptions is the filter-panel catalog. The arriving-soon window is
// anchored at the supplied time.
func InsightOptions(now time.Time) []InsightOption {
	return []InsightOption{
		{
			Title: "Arriving soon (1-3 days)",
			Field: "shipment_arriving_at",
			Range: &DateRange{
				GTE: now.Format(time.RFC3339),
				LTE: now.AddDate(0, 0, 3).Format(time.RFC3339),
			},
		},
		{Title: "Arrived", Field: "shipment_voyage_status", Values: []string{"arrived"}},
		{Title: "Tracking completed", Field: "shipment_voyage_status", Values: []string{"trackingCompleted"}},
		{Title: "Rollover at POL", Field: "shipment_delay_reasons", Values: []string{"RLV_POL"}},
		{Title: "Rollover at TSP", Field: "shipment_delay_reasons", Values: []string{"RLV_TSP"}},
		{Title: "Late departure", Field: "shipment_delay_reasons", Values: []string{"LTD_POL"}},
		{Title: "Transshipment delay", Field: "shipment_delay_reasons", Values: []string{"TSD_TSP"}},
		{Title: "Insufficient T/S time", Field: "shipment_delay_reasons", Values: []string{"ITT_TSP"}},
		{Title: "Routing deficiency", Field: "shipment_delay_reasons", Values: []string{"RDF_TSP", "RDF_POL"}},
		{Title: "Late allocation", Field: "shipment_delay_reasons", Values: []string{"FVD_POD"}},
	}
}

// FilterRequest is the field/value pairs for the provider's multi-field
// filter endpoint. Fields[i] pairs with Values[i].
type FilterRequest struct {
	Fields []string
	Values []string
}

// BuildFilterRequest translates selected insight titles into the provider
// request. Multi-value options expand into one field/value pair per value.
// Date-range options cannot be expressed in the multi-field request path
// and are skipped with a warning; unknown titles are skipped the same way.
func BuildFilterRequest(selectedTitles []string, options []InsightOption, logger *zap.Logger) FilterRequest {
	var req FilterRequest

	for _, title := range selectedTitles {
		option, ok := findOption(options, title)
		if !ok {
			logger.Warn("Unknown insight filter selected", zap.String("insight", title))
			continue
		}
		if option.Range != nil {
			logger.Warn("Date-range insight filters are not supported by the multi-field request",
				zap.String("insight", title),
			)
			continue
		}
		for _, value := range option.Values {
			req.Fields = append(req.Fields, option.Field)
			req.Values = append(req.Values, value)
		}
	}

	return req
}

func findOption(options []InsightOption, title string) (InsightOption, bool) {
	for _, option := range options {
		if option.Title == title {
			return option, true
		}
	}
	return InsightOption{}, false
}
