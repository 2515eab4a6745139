package service

import (
	"github.com/cargoview/opsdash/internal/domain"
)

// Column-label placeholders carried by the timeline header row so the
// renderer can print and style it like a bold table head.
const (
	detailHeaderStatus   = "Status"
	detailHeaderLocation = "Location"
	detailHeaderVessel   = "Vessel"
	detailHeaderVoyage   = "Voyage"
	detailHeaderTime     = "Planned / Actual At"

	noEventsPlaceholder = "No tracking events available"
)

// FlattenPage renders one page of filtered rows as display rows, splicing
// the expanded shipment's timeline in directly below it. With no expansion
// (empty expandedID, or an id not on the page) the output is the page
// itself, row for row.
//
// For the expanded shipment the splice is: one header row, then one row
// per tracking event in original order, or a single placeholder row when
// the shipment has no events.
func FlattenPage(page []domain.ShipmentRow, expandedID string) []domain.DisplayRow {
	display := make([]domain.DisplayRow, 0, len(page))

	for i := range page {
		row := &page[i]
		display = append(display, domain.DisplayRow{
			Kind: domain.RowKindPrimary,
			ID:   row.ID,
			Row:  row,
		})

		if expandedID == "" || row.ID != expandedID {
			continue
		}

		display = append(display, domain.DisplayRow{
			Kind:        domain.RowKindDetailHeader,
			ID:          domain.DetailHeaderID(row.ID),
			ParentID:    row.ID,
			Description: detailHeaderStatus,
			Location:    detailHeaderLocation,
			Vessel:      detailHeaderVessel,
			Voyage:      detailHeaderVoyage,
			TimeInfo:    detailHeaderTime,
		})

		if len(row.Events) == 0 {
			display = append(display, domain.DisplayRow{
				Kind:        domain.RowKindDetailEmpty,
				ID:          domain.DetailEventID(row.ID, 0),
				ParentID:    row.ID,
				Description: noEventsPlaceholder,
			})
			continue
		}

		for j, ev := range row.Events {
			display = append(display, eventRow(row, j, ev))
		}
	}

	return display
}

func eventRow(parent *domain.ShipmentRow, ordinal int, ev domain.TrackingEvent) domain.DisplayRow {
	vessel := "N/A"
	if ev.Vessel != nil && ev.Vessel.Name != "" {
		vessel = ev.Vessel.Name
	}

	return domain.DisplayRow{
		Kind:                domain.RowKindDetailEvent,
		ID:                  domain.DetailEventID(parent.ID, ordinal),
		ParentID:            parent.ID,
		Ordinal:             ordinal,
		Description:         orNA(ev.Description),
		Location:            orNA(ev.Location),
		Vessel:              vessel,
		Voyage:              orNA(ev.Voyage),
		TimeInfo:            eventTimeInfo(ev),
		Icon:                domain.EventIconFor(ev.Description),
		IsCurrentEvent:      ordinal == parent.CurrentEventIndex,
		IsAfterCurrentEvent: ordinal > parent.CurrentEventIndex,
	}
}

// eventTimeInfo renders the event timestamp column: "planned / actual"
// when both are present, the single formatted timestamp when only one is,
// "N/A" otherwise.
func eventTimeInfo(ev domain.TrackingEvent) string {
	planned := formatDate(ev.PlannedAt)
	actual := formatDate(ev.ActualAt)
	switch {
	case planned != "N/A" && actual != "N/A":
		return planned + " / " + actual
	case actual != "N/A":
		return actual
	default:
		return planned
	}
}
