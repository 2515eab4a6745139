package service

import (
	"testing"

	"github.com/cargoview/opsdash/internal/domain"
)

func insightRow(insight string) domain.ShipmentRow {
	return domain.ShipmentRow{ID: insight, StatusInsight: insight}
}

func TestAggregateStats(t *testing.T) {
	rows := []domain.ShipmentRow{
		insightRow("On Time"),
		insightRow("On Time"),
		insightRow("Early (2+ days)"),
		insightRow("Significant delay (3 days)"),
		insightRow("Critical delay (7+ days)"),
		insightRow("Critical delay (12+ days)"),
		insightRow(domain.InsightTrackingCompleted),
		insightRow("N/A"),
		insightRow("Unknown"),
	}

	stats := AggregateStats(rows)
	want := Stats{Total: 9, OnTime: 2, Early: 1, Delayed: 1, Critical: 2, Completed: 1}
	if stats != want {
		t.Fatalf("got %+v, want %+v", stats, want)
	}

	bucketSum := stats.OnTime + stats.Early + stats.Delayed + stats.Critical + stats.Completed
	if bucketSum > stats.Total {
		t.Errorf("bucket counts sum to %d, exceeding total %d", bucketSum, stats.Total)
	}
}

func TestAggregateStatsEmpty(t *testing.T) {
	if stats := AggregateStats(nil); stats != (Stats{}) {
		t.Errorf("got %+v, want zero stats", stats)
	}
}
