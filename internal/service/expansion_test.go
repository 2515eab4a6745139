package service

import (
	"testing"

	"github.com/cargoview/opsdash/internal/domain"
)

func pageFixture() []domain.ShipmentRow {
	return []domain.ShipmentRow{
		{
			ID:                "ship-1",
			ContainerNumber:   "AAAA1111111",
			CurrentEventIndex: 1,
			Events: []domain.TrackingEvent{
				{Description: "Gate in at first POL", Location: "Shanghai", Voyage: "101E", PlannedAt: "2025-03-01T08:00:00Z"},
				{Description: "Loaded at first POL", Location: "Shanghai", Vessel: &domain.Vessel{Name: "EVER GIVEN"}, PlannedAt: "2025-03-02T04:00:00Z", ActualAt: "2025-03-02T06:30:00Z"},
				{Description: "Discharge at final POD", Location: "Rotterdam"},
			},
		},
		{ID: "ship-2", ContainerNumber: "BBBB2222222", CurrentEventIndex: -1},
		{ID: "ship-3", ContainerNumber: "CCCC3333333"},
	}
}

func TestFlattenPageNoExpansion(t *testing.T) {
	page := pageFixture()

	display := FlattenPage(page, "")
	if len(display) != len(page) {
		t.Fatalf("got %d display rows, want %d", len(display), len(page))
	}
	for i, d := range display {
		if d.Kind != domain.RowKindPrimary {
			t.Errorf("row %d has kind %q, want primary", i, d.Kind)
		}
		if d.ID != page[i].ID {
			t.Errorf("row %d has id %q, want %q", i, d.ID, page[i].ID)
		}
	}
}

func TestFlattenPageAbsentIDIsIdentity(t *testing.T) {
	page := pageFixture()

	display := FlattenPage(page, "ship-not-here")
	if len(display) != len(page) {
		t.Fatalf("got %d display rows, want %d", len(display), len(page))
	}
}

func TestFlattenPageExpanded(t *testing.T) {
	page := pageFixture()

	display := FlattenPage(page, "ship-1")
	// page rows + header + one row per event
	if want := len(page) + 1 + len(page[0].Events); len(display) != want {
		t.Fatalf("got %d display rows, want %d", len(display), want)
	}

	header := display[1]
	if header.Kind != domain.RowKindDetailHeader {
		t.Fatalf("row 1 has kind %q, want detail header", header.Kind)
	}
	if header.ParentID != "ship-1" || header.ID != "ship-1-header" {
		t.Errorf("header ids wrong: %+v", header)
	}
	if header.Description != "Status" || header.TimeInfo != "Planned / Actual At" {
		t.Errorf("header labels wrong: %+v", header)
	}

	events := display[2:5]
	for i, d := range events {
		if d.Kind != domain.RowKindDetailEvent {
			t.Errorf("event %d has kind %q", i, d.Kind)
		}
		if d.ParentID != "ship-1" || d.Ordinal != i {
			t.Errorf("event %d parent/ordinal wrong: %+v", i, d)
		}
	}

	// Current-event marking relative to index 1
	if events[0].IsCurrentEvent || events[0].IsAfterCurrentEvent {
		t.Errorf("event 0 flags wrong: %+v", events[0])
	}
	if !events[1].IsCurrentEvent || events[1].IsAfterCurrentEvent {
		t.Errorf("event 1 flags wrong: %+v", events[1])
	}
	if events[2].IsCurrentEvent || !events[2].IsAfterCurrentEvent {
		t.Errorf("event 2 flags wrong: %+v", events[2])
	}

	// Column rendering
	if events[1].Vessel != "EVER GIVEN" {
		t.Errorf("event 1 vessel = %q", events[1].Vessel)
	}
	if events[0].Vessel != "N/A" || events[0].Voyage != "101E" {
		t.Errorf("event 0 columns wrong: %+v", events[0])
	}
	if events[0].TimeInfo != "01 Mar'25 8:00 AM" {
		t.Errorf("event 0 time = %q", events[0].TimeInfo)
	}
	if events[1].TimeInfo != "02 Mar'25 4:00 AM / 02 Mar'25 6:30 AM" {
		t.Errorf("event 1 time = %q", events[1].TimeInfo)
	}
	if events[2].TimeInfo != "N/A" {
		t.Errorf("event 2 time = %q", events[2].TimeInfo)
	}
	if events[1].Icon.Src == "" {
		t.Errorf("event 1 has no icon for %q", "Loaded at first POL")
	}

	// Rows after the splice continue as primaries
	if display[5].Kind != domain.RowKindPrimary || display[5].ID != "ship-2" {
		t.Errorf("row after splice wrong: %+v", display[5])
	}
}

func TestFlattenPageExpandedNoEvents(t *testing.T) {
	page := pageFixture()

	display := FlattenPage(page, "ship-3")
	if want := len(page) + 2; len(display) != want {
		t.Fatalf("got %d display rows, want %d", len(display), want)
	}

	placeholder := display[len(display)-1]
	if placeholder.Kind != domain.RowKindDetailEmpty {
		t.Fatalf("last row has kind %q, want detail empty", placeholder.Kind)
	}
	if placeholder.Description != "No tracking events available" {
		t.Errorf("placeholder text = %q", placeholder.Description)
	}
	if placeholder.ParentID != "ship-3" || placeholder.ID != "ship-3-detail-0" {
		t.Errorf("placeholder ids wrong: %+v", placeholder)
	}
}

func TestFlattenPageNoCurrentEventMarksAllAfter(t *testing.T) {
	rows := []domain.ShipmentRow{{
		ID:                "ship-x",
		CurrentEventIndex: -1,
		Events:            []domain.TrackingEvent{{Description: "Gate out"}, {Description: "Discharged"}},
	}}
	out := FlattenPage(rows, "ship-x")
	for _, d := range out[2:] {
		if d.IsCurrentEvent {
			t.Errorf("event %d marked current with no match", d.Ordinal)
		}
		if !d.IsAfterCurrentEvent {
			t.Errorf("event %d not marked after-current", d.Ordinal)
		}
	}
}
