package domain

import (
	"strings"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		name         string
		voyageStatus string
		diff         *int
		want         string
	}{
		{"completed overrides early", VoyageStatusTrackingCompleted, intPtr(-3), "Tracking Completed"},
		{"completed overrides critical", VoyageStatusTrackingCompleted, intPtr(9), "Tracking Completed"},
		{"completed with no prediction", VoyageStatusTrackingCompleted, nil, "Tracking Completed"},
		{"no prediction", VoyageStatusInTransit, nil, "N/A"},
		{"on time", VoyageStatusInTransit, intPtr(0), "On Time"},
		{"one day early", VoyageStatusInTransit, intPtr(-1), "Early (1+ days)"},
		{"ten days early", VoyageStatusInTransit, intPtr(-10), "Early (10+ days)"},
		{"one day late", VoyageStatusInTransit, intPtr(1), "Significant delay (1 days)"},
		{"four days late", VoyageStatusInTransit, intPtr(4), "Significant delay (4 days)"},
		{"five days late", VoyageStatusInTransit, intPtr(5), "Critical delay (5+ days)"},
		{"seven days late", "inTransit", intPtr(7), "Critical delay (7+ days)"},
		{"arrived still classified by diff", VoyageStatusArrived, intPtr(2), "Significant delay (2 days)"},
		{"empty voyage status", "", intPtr(0), "On Time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyStatus(tt.voyageStatus, tt.diff)
			if got != tt.want {
				t.Errorf("ClassifyStatus(%q, %v) = %q, want %q", tt.voyageStatus, tt.diff, got, tt.want)
			}
		})
	}
}

func TestClassifyStatusBands(t *testing.T) {
	// Total over a wide integer range: every diff lands in exactly one band.
	for diff := -30; diff <= 30; diff++ {
		got := ClassifyStatus(VoyageStatusInTransit, intPtr(diff))
		switch {
		case diff == 0:
			if got != "On Time" {
				t.Errorf("diff %d: got %q, want On Time", diff, got)
			}
		case diff < 0:
			if !strings.HasPrefix(got, "Early") {
				t.Errorf("diff %d: got %q, want Early prefix", diff, got)
			}
		case diff <= 4:
			if !strings.HasPrefix(got, "Significant delay") {
				t.Errorf("diff %d: got %q, want Significant delay prefix", diff, got)
			}
		default:
			if !strings.HasPrefix(got, "Critical delay") {
				t.Errorf("diff %d: got %q, want Critical delay prefix", diff, got)
			}
		}
	}
}

func TestStatusTagMatches(t *testing.T) {
	tests := []struct {
		name    string
		insight string
		tag     string
		want    bool
	}{
		{"critical matches any day count", "Critical delay (7+ days)", "Critical delay (5+ days)", true},
		{"early matches any day count", "Early (12+ days)", "Early (1+ days)", true},
		{"significant exact band", "Significant delay (3 days)", "Significant delay (1-4 days)", true},
		{"on time exact", "On Time", "On Time", true},
		{"completed exact", "Tracking Completed", "Tracking Completed", true},
		{"critical does not match significant", "Critical delay (7+ days)", "Significant delay (1-4 days)", false},
		{"na matches nothing", "N/A", "On Time", false},
		{"empty tag matches nothing", "On Time", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusTagMatches(tt.insight, tt.tag); got != tt.want {
				t.Errorf("StatusTagMatches(%q, %q) = %v, want %v", tt.insight, tt.tag, got, tt.want)
			}
		})
	}
}

func TestEventIconFor(t *testing.T) {
	icon := EventIconFor("Empty to shipper")
	if icon.Src != "/Empty_to_shipper.png" || icon.Alt != "Empty to shipper" {
		t.Errorf("unexpected icon: %+v", icon)
	}

	if icon := EventIconFor("Some unheard-of milestone"); icon.Src != "" || icon.Alt != "" {
		t.Errorf("unmatched description should yield empty icon, got %+v", icon)
	}
}
