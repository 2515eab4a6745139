package service

import (
	"strings"

	"github.com/cargoview/opsdash/internal/domain"
)

// Stats is the per-bucket summary shown above the table. Computed over the
// filtered, pre-pagination set so it reflects everything the operator can
// scroll through, not just the visible page.
type Stats struct {
	Total     int `json:"total"`
	OnTime    int `json:"onTime"`
	Early     int `json:"early"`
	Delayed   int `json:"delayed"`
	Critical  int `json:"critical"`
	Completed int `json:"completed"`
}

// AggregateStats tallies rows into delay-status buckets in a single pass.
// Rows with an "N/A" or "Unknown" insight land in no bucket, so the bucket
// counts sum to at most Total.
func AggregateStats(rows []domain.ShipmentRow) Stats {
	stats := Stats{Total: len(rows)}

	for _, row := range rows {
		insight := row.StatusInsight
		switch {
		case insight == domain.InsightTrackingCompleted:
			stats.Completed++
		case strings.HasPrefix(insight, "On Time"):
			stats.OnTime++
		case strings.HasPrefix(insight, "Early"):
			stats.Early++
		case strings.HasPrefix(insight, "Significant delay"):
			stats.Delayed++
		case strings.HasPrefix(insight, "Critical delay"):
			stats.Critical++
		}
	}

	return stats
}
