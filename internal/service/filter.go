package service

import (
	"regexp"
	"strconv"

	"github.com/cargoview/opsdash/internal/domain"
)

// FilterState is the active filter selection for a dashboard session.
// Company codes and status tags take effect immediately; insight titles
// sit in PendingInsights while the filter panel is open and move to
// Insights only on an explicit apply. Insight filters are never evaluated
// locally: they drive the provider-side filter request instead.
type FilterState struct {
	Companies       []string `json:"companies"`
	Search          string   `json:"search"`
	Insights        []string `json:"insights"`
	PendingInsights []string `json:"pendingInsights"`
	Statuses        []string `json:"statuses"`
}

// FilterRows narrows rows by the locally evaluable filters, each applied
// independently in turn: company set, free-text search, status tags.
// Empty selections are no-ops. Insight selections are ignored here.
func FilterRows(rows []domain.ShipmentRow, state FilterState) []domain.ShipmentRow {
	result := rows

	if len(state.Companies) > 0 {
		selected := make(map[string]bool, len(state.Companies))
		for _, code := range state.Companies {
			selected[code] = true
		}
		result = keep(result, func(row domain.ShipmentRow) bool {
			return selected[row.CustomerNumber]
		})
	}

	if state.Search != "" {
		// The query is escaped before compilation and matched
		// case-insensitively against the string form of every field.
		// Deliberately broad: it matches inside formatted dates, port
		// strings and numeric fields, not just the obvious columns.
		pattern, err := regexp.Compile("(?i)" + regexp.QuoteMeta(state.Search))
		if err == nil {
			result = keep(result, func(row domain.ShipmentRow) bool {
				for _, value := range searchableValues(row) {
					if pattern.MatchString(value) {
						return true
					}
				}
				return false
			})
		}
	}

	if len(state.Statuses) > 0 {
		result = keep(result, func(row domain.ShipmentRow) bool {
			for _, tag := range state.Statuses {
				if domain.StatusTagMatches(row.StatusInsight, tag) {
					return true
				}
			}
			return false
		})
	}

	return result
}

func keep(rows []domain.ShipmentRow, match func(domain.ShipmentRow) bool) []domain.ShipmentRow {
	filtered := make([]domain.ShipmentRow, 0, len(rows))
	for _, row := range rows {
		if match(row) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// searchableValues is the string representation of every row field that
// the free-text filter scans.
func searchableValues(row domain.ShipmentRow) []string {
	values := []string{
		row.ID,
		row.ContainerNumber,
		row.BOL,
		row.Carrier,
		row.InitialCarrierETD,
		row.LatestCarrierETDOrATD,
		row.POL,
		row.POD,
		row.Path.POL,
		row.Path.POD,
		strconv.FormatFloat(row.Path.ProgressPercent, 'f', -1, 64),
		row.ContainerStatus,
		row.CurrentVessel,
		row.InitialCarrierETA,
		row.LatestCarrierETAOrATA,
		row.PredictedETA,
		row.StatusInsight,
		row.OriginCountry,
		row.SupplierName,
		row.ConsigneeAddress,
		row.CustomerReference,
		row.CustomerNumber,
		row.VoyageStatus,
	}
	if row.DiffFromCarrierDays != nil {
		values = append(values, strconv.Itoa(*row.DiffFromCarrierDays))
	}
	for _, ev := range row.Events {
		if ev.Description != "" {
			values = append(values, ev.Description)
		}
	}
	return values
}

// Clone returns a deep copy of the state, used when handing a snapshot to
// the filter engine so later mutations cannot race a scan in progress.
func (s FilterState) Clone() FilterState {
	clone := s
	clone.Companies = append([]string(nil), s.Companies...)
	clone.Insights = append([]string(nil), s.Insights...)
	clone.PendingInsights = append([]string(nil), s.PendingInsights...)
	clone.Statuses = append([]string(nil), s.Statuses...)
	return clone
}

// toggle adds value to list or removes it when already present
func toggle(list []string, value string) []string {
	for i, v := range list {
		if v == value {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return append(list, value)
}
