package domain

import (
	"fmt"
	"strings"
)

// VoyageStatus values reported by the provider
const (
	VoyageStatusInTransit         = "inTransit"
	VoyageStatusArrived           = "arrived"
	VoyageStatusTrackingCompleted = "trackingCompleted"
)

// Status insight labels. Early and critical delay are open-ended bands so
// their labels carry a "+" floor; significant delay is bounded (1-4 days)
// so the exact day count is shown.
const (
	InsightOnTime            = "On Time"
	InsightTrackingCompleted = "Tracking Completed"
	InsightNA                = "N/A"

	insightEarlyPrefix       = "Early"
	insightSignificantPrefix = "Significant delay"
	insightCriticalPrefix    = "Critical delay"
)

// ClassifyStatus buckets a shipment into a delay-status insight label.
// A completed voyage overrides the delay arithmetic; a missing day-offset
// means the provider has no prediction and the bucket is unknowable.
func ClassifyStatus(voyageStatus string, diffFromCarrierDays *int) string {
	if voyageStatus == VoyageStatusTrackingCompleted {
		return InsightTrackingCompleted
	}
	if diffFromCarrierDays == nil {
		return InsightNA
	}

	diff := *diffFromCarrierDays
	switch {
	case diff == 0:
		return InsightOnTime
	case diff < 0:
		return fmt.Sprintf("%s (%d+ days)", insightEarlyPrefix, -diff)
	case diff <= 4:
		return fmt.Sprintf("%s (%d days)", insightSignificantPrefix, diff)
	default:
		return fmt.Sprintf("%s (%d+ days)", insightCriticalPrefix, diff)
	}
}

// StatusTagMatches reports whether an insight label falls under a status
// filter tag. Tags match by the label prefix before any parenthesis, so
// "Critical delay (5+ days)" matches every critical-delay row regardless
// of the day count baked into its label.
func StatusTagMatches(insight, tag string) bool {
	prefix := strings.TrimSpace(strings.SplitN(tag, "(", 2)[0])
	if prefix == "" {
		return false
	}
	return strings.HasPrefix(insight, prefix)
}

// StatusTagOptions are the five locally computable delay buckets offered
// by the status filter.
var StatusTagOptions = []string{
	"On Time",
	"Early (1+ days)",
	"Significant delay (1-4 days)",
	"Critical delay (5+ days)",
	"Tracking Completed",
}
