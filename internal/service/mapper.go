package service

import (
	"fmt"
	"time"

	"github.com/zoobzio/clockz"

	"github.com/cargoview/opsdash/internal/domain"
)

// RowMapper converts raw tracked-shipment records into normalized table
// rows. Pure and total: no input, however sparse, makes it fail; missing
// data resolves to "N/A" (strings) or zero (progress).
type RowMapper struct {
	clock clockz.Clock
}

// NewRowMapper creates a row mapper using the real clock
func NewRowMapper() *RowMapper {
	return &RowMapper{}
}

// WithClock sets a custom clock, used in tests to pin "now" for the
// path-progress computation.
func (m *RowMapper) WithClock(clock clockz.Clock) *RowMapper {
	m.clock = clock
	return m
}

func (m *RowMapper) getClock() clockz.Clock {
	if m.clock == nil {
		return clockz.RealClock
	}
	return m.clock
}

// MapAll maps a whole collection in order
func (m *RowMapper) MapAll(shipments []domain.TrackedShipment) []domain.ShipmentRow {
	rows := make([]domain.ShipmentRow, len(shipments))
	for i, tracked := range shipments {
		rows[i] = m.Map(tracked)
	}
	return rows
}

// Map converts one raw record into one ShipmentRow
func (m *RowMapper) Map(tracked domain.TrackedShipment) domain.ShipmentRow {
	status := tracked.Shipment.Status

	var pol, pod domain.PortProperties
	if status != nil && status.POL != nil && status.POL.Properties != nil {
		pol = *status.POL.Properties
	}
	if status != nil && status.POD != nil && status.POD.Properties != nil {
		pod = *status.POD.Properties
	}

	// POD display prefers the customer's discharge-port name over the
	// provider's port name.
	podPort := orNA(tracked.BusinessValue("Discharge Port"))

	var lastEvent *domain.TrackingEvent
	var currentEvent *domain.TrackingEvent
	var events []domain.TrackingEvent
	voyageStatus := ""
	if status != nil {
		events = status.Events
		if len(events) > 0 {
			lastEvent = &events[len(events)-1]
		}
		currentEvent = status.CurrentEvent
		voyageStatus = status.VoyageStatus
	}

	row := domain.ShipmentRow{
		ID:              rowID(tracked),
		ContainerNumber: orNA(tracked.Shipment.ContainerNumber),
		BOL:             orNA(tracked.Shipment.BOL),
		Carrier:         "N/A",

		InitialCarrierETD: formatDate(tracked.Shipment.InitialCarrierETD),
		InitialCarrierETA: formatDate(tracked.Shipment.InitialCarrierETA),

		POL: portDisplay(pol.Locode, pol.Name),
		POD: portDisplay(pod.Locode, podPort),
		Path: domain.PathInfo{
			POL:             orNA(pol.Locode),
			POD:             orNA(pod.Locode),
			ProgressPercent: m.pathProgress(tracked.Shipment),
		},

		ContainerStatus: "Unknown",
		CurrentVessel:   "N/A",

		LatestCarrierETDOrATD: "N/A",
		LatestCarrierETAOrATA: "N/A",
		PredictedETA:          "N/A",

		OriginCountry:     orNA(tracked.BusinessValue("Origin Country")),
		SupplierName:      orNA(tracked.BusinessValue("Supplier Name")),
		ConsigneeAddress:  orNA(tracked.BusinessValue("Consignee Address")),
		CustomerReference: orNA(tracked.BusinessValue("Customer Reference")),
		CustomerNumber:    orNA(tracked.BusinessValue("Customer Code")),

		VoyageStatus:      orNA(voyageStatus),
		Events:            events,
		CurrentEventIndex: currentEventIndex(events, currentEvent),

		POLLocode: orNA(pol.Locode),
		POLName:   orNA(pol.Name),
		PODLocode: orNA(pod.Locode),
		PODName:   orNA(pod.Name),
	}

	if tracked.Shipment.Carrier != nil {
		row.Carrier = orNA(tracked.Shipment.Carrier.ShortName)
	}

	// Container status and vessel: current event first, then last event
	if currentEvent != nil && currentEvent.Description != "" {
		row.ContainerStatus = currentEvent.Description
	} else if lastEvent != nil && lastEvent.Description != "" {
		row.ContainerStatus = lastEvent.Description
	}
	if currentEvent != nil && currentEvent.Vessel != nil && currentEvent.Vessel.Name != "" {
		row.CurrentVessel = currentEvent.Vessel.Name
	} else if lastEvent != nil && lastEvent.Vessel != nil && lastEvent.Vessel.Name != "" {
		row.CurrentVessel = lastEvent.Vessel.Name
	}

	if status != nil {
		// Departure and arrival each fall back actual -> estimated -> N/A
		if status.ActualDepartureAt != "" {
			row.LatestCarrierETDOrATD = formatDate(status.ActualDepartureAt)
		} else if status.EstimatedDepartureAt != "" {
			row.LatestCarrierETDOrATD = formatDate(status.EstimatedDepartureAt)
		}
		if status.ActualArrivalAt != "" {
			row.LatestCarrierETAOrATA = formatDate(status.ActualArrivalAt)
		} else if status.EstimatedArrivalAt != "" {
			row.LatestCarrierETAOrATA = formatDate(status.EstimatedArrivalAt)
		}
		if status.Predicted != nil {
			row.PredictedETA = formatDate(status.Predicted.Datetime)
			row.DiffFromCarrierDays = status.Predicted.DiffFromCarrierDays
		}
	}

	row.StatusInsight = domain.ClassifyStatus(voyageStatus, row.DiffFromCarrierDays)

	return row
}

// rowID picks a stable identifier for the row: tracked-record id first,
// then the shipment id, then the container number. Keeping this stable
// across refetches is what keeps detail-row parent references valid.
func rowID(tracked domain.TrackedShipment) string {
	if tracked.ID != "" {
		return tracked.ID
	}
	if tracked.Shipment.ID != "" {
		return tracked.Shipment.ID
	}
	return orNA(tracked.Shipment.ContainerNumber)
}

// currentEventIndex finds the first event whose description matches the
// status current event. Matching by description rather than index is the
// tie-break: multiple events can share a description and the provider only
// names the current one.
func currentEventIndex(events []domain.TrackingEvent, current *domain.TrackingEvent) int {
	if current == nil {
		return -1
	}
	for i, ev := range events {
		if ev.Description == current.Description {
			return i
		}
	}
	return -1
}

// pathProgress computes the percentage of the voyage window elapsed, clamped
// to [0, 100]. Missing status, initial ETA or prediction means 0; a
// degenerate window (start >= end) means 100.
func (m *RowMapper) pathProgress(shipment domain.ShipmentData) float64 {
	status := shipment.Status
	if status == nil || shipment.InitialCarrierETA == "" || status.Predicted == nil || status.Predicted.Datetime == "" {
		return 0
	}

	startRaw := status.ActualDepartureAt
	if startRaw == "" {
		startRaw = status.EstimatedDepartureAt
	}
	endRaw := status.Predicted.Datetime
	if endRaw == "" {
		endRaw = status.ActualArrivalAt
	}

	start, okStart := parseDate(startRaw)
	end, okEnd := parseDate(endRaw)
	if !okStart || !okEnd {
		return 0
	}
	if !start.Before(end) {
		return 100
	}

	now := m.getClock().Now()
	progress := float64(now.Sub(start)) / float64(end.Sub(start)) * 100
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

// dateLayouts are tried in order when parsing provider timestamps
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// formatDate renders a provider timestamp in the table's display form,
// e.g. "04 Mar'25 6:30 PM". Empty or unparseable input becomes "N/A".
func formatDate(raw string) string {
	if raw == "" {
		return "N/A"
	}
	t, ok := parseDate(raw)
	if !ok {
		return "N/A"
	}
	return t.Format("02 Jan'06 3:04 PM")
}

// portDisplay combines flag, port name and UN/LOCODE into the column's
// display string, or "N/A" when either part is missing.
func portDisplay(locode, name string) string {
	if locode == "" || name == "" || name == "N/A" {
		return "N/A"
	}
	flag := flagEmoji(locode)
	if flag == "" {
		return fmt.Sprintf("%s %s", name, locode)
	}
	return fmt.Sprintf("%s %s %s", flag, name, locode)
}

// flagEmoji derives a country flag from the first two letters of a
// UN/LOCODE (the ISO country prefix). Non-letter prefixes yield no flag.
func flagEmoji(locode string) string {
	if len(locode) < 2 {
		return ""
	}
	a, b := locode[0], locode[1]
	if a >= 'a' && a <= 'z' {
		a -= 'a' - 'A'
	}
	if b >= 'a' && b <= 'z' {
		b -= 'a' - 'A'
	}
	if a < 'A' || a > 'Z' || b < 'A' || b > 'Z' {
		return ""
	}
	return string([]rune{rune(0x1F1E6 + int32(a-'A')), rune(0x1F1E6 + int32(b-'A'))})
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
