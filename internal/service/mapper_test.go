package service

import (
	"testing"
	"time"

	"github.com/zoobzio/clockz"

	"github.com/cargoview/opsdash/internal/domain"
)

func intPtr(v int) *int { return &v }

func fullShipment() domain.TrackedShipment {
	return domain.TrackedShipment{
		ID: "ts-1",
		Metadata: &domain.Metadata{
			BusinessData: []domain.BusinessDataItem{
				{Key: "Origin Country", Value: "China"},
				{Key: "Supplier Name", Value: "Acme Manufacturing"},
				{Key: "Consignee Address", Value: "1 Harbor Way"},
				{Key: "Customer Reference", Value: "PO-4711"},
				{Key: "Discharge Port", Value: "Ashdod"},
				{Key: "Customer Code", Value: "10023"},
			},
		},
		Shipment: domain.ShipmentData{
			ID:                "ship-1",
			ContainerNumber:   "ABCD1234567",
			BOL:               "BOL-99",
			Carrier:           &domain.Carrier{ShortName: "MSC"},
			InitialCarrierETA: "2025-03-20T08:00:00Z",
			InitialCarrierETD: "2025-03-01T10:00:00Z",
			Status: &domain.ShipmentStatus{
				POL: &domain.PortData{Properties: &domain.PortProperties{Locode: "CNSHA", Name: "Shanghai"}},
				POD: &domain.PortData{Properties: &domain.PortProperties{Locode: "ILASH", Name: "Ashdod Port"}},
				CurrentEvent: &domain.TrackingEvent{
					Description: "Departure from first POL",
					Vessel:      &domain.Vessel{Name: "MSC Oscar"},
				},
				ActualDepartureAt:    "2025-03-02T04:00:00Z",
				EstimatedDepartureAt: "2025-03-01T10:00:00Z",
				EstimatedArrivalAt:   "2025-03-21T09:00:00Z",
				Predicted: &domain.Predicted{
					Datetime:            "2025-03-22T09:00:00Z",
					DiffFromCarrierDays: intPtr(2),
				},
				VoyageStatus: domain.VoyageStatusInTransit,
				Events: []domain.TrackingEvent{
					{Description: "Empty to shipper", Location: "Shanghai"},
					{Description: "Departure from first POL", Location: "Shanghai", Vessel: &domain.Vessel{Name: "MSC Oscar"}},
					{Description: "Arrival at final POD", Location: "Ashdod"},
				},
			},
		},
	}
}

func TestMapFullRecord(t *testing.T) {
	row := NewRowMapper().Map(fullShipment())

	if row.ID != "ts-1" {
		t.Errorf("ID = %q, want ts-1", row.ID)
	}
	if row.ContainerNumber != "ABCD1234567" {
		t.Errorf("ContainerNumber = %q", row.ContainerNumber)
	}
	if row.Carrier != "MSC" {
		t.Errorf("Carrier = %q, want MSC", row.Carrier)
	}
	if row.CustomerNumber != "10023" {
		t.Errorf("CustomerNumber = %q, want 10023", row.CustomerNumber)
	}
	// Departure has an actual timestamp, so the latest ETD reflects it
	if row.LatestCarrierETDOrATD != "02 Mar'25 4:00 AM" {
		t.Errorf("LatestCarrierETDOrATD = %q", row.LatestCarrierETDOrATD)
	}
	// Arrival has no actual timestamp, falls back to estimated
	if row.LatestCarrierETAOrATA != "21 Mar'25 9:00 AM" {
		t.Errorf("LatestCarrierETAOrATA = %q", row.LatestCarrierETAOrATA)
	}
	if row.ContainerStatus != "Departure from first POL" {
		t.Errorf("ContainerStatus = %q", row.ContainerStatus)
	}
	if row.CurrentVessel != "MSC Oscar" {
		t.Errorf("CurrentVessel = %q", row.CurrentVessel)
	}
	if row.StatusInsight != "Significant delay (2 days)" {
		t.Errorf("StatusInsight = %q", row.StatusInsight)
	}
	// First event matching the current event's description
	if row.CurrentEventIndex != 1 {
		t.Errorf("CurrentEventIndex = %d, want 1", row.CurrentEventIndex)
	}
	if row.Path.POL != "CNSHA" || row.Path.POD != "ILASH" {
		t.Errorf("Path = %+v", row.Path)
	}
}

func TestMapEmptyRecordIsTotal(t *testing.T) {
	// An entirely empty record must map without panicking, and every
	// string field must still be populated.
	row := NewRowMapper().Map(domain.TrackedShipment{})

	stringFields := map[string]string{
		"ID":                    row.ID,
		"ContainerNumber":       row.ContainerNumber,
		"BOL":                   row.BOL,
		"Carrier":               row.Carrier,
		"InitialCarrierETD":     row.InitialCarrierETD,
		"LatestCarrierETDOrATD": row.LatestCarrierETDOrATD,
		"POL":                   row.POL,
		"POD":                   row.POD,
		"ContainerStatus":       row.ContainerStatus,
		"CurrentVessel":         row.CurrentVessel,
		"InitialCarrierETA":     row.InitialCarrierETA,
		"LatestCarrierETAOrATA": row.LatestCarrierETAOrATA,
		"PredictedETA":          row.PredictedETA,
		"StatusInsight":         row.StatusInsight,
		"OriginCountry":         row.OriginCountry,
		"SupplierName":          row.SupplierName,
		"ConsigneeAddress":      row.ConsigneeAddress,
		"CustomerReference":     row.CustomerReference,
		"CustomerNumber":        row.CustomerNumber,
		"VoyageStatus":          row.VoyageStatus,
	}
	for name, value := range stringFields {
		if value == "" {
			t.Errorf("field %s is empty, want a value or N/A", name)
		}
	}

	if row.CurrentEventIndex != -1 {
		t.Errorf("CurrentEventIndex = %d, want -1", row.CurrentEventIndex)
	}
	if row.Path.ProgressPercent != 0 {
		t.Errorf("ProgressPercent = %v, want 0", row.Path.ProgressPercent)
	}
	if row.StatusInsight != "N/A" {
		t.Errorf("StatusInsight = %q, want N/A", row.StatusInsight)
	}
	if row.ContainerStatus != "Unknown" {
		t.Errorf("ContainerStatus = %q, want Unknown", row.ContainerStatus)
	}
}

func TestMapMalformedDates(t *testing.T) {
	tracked := fullShipment()
	tracked.Shipment.InitialCarrierETD = "not-a-date"
	tracked.Shipment.Status.ActualDepartureAt = "also garbage"
	tracked.Shipment.Status.EstimatedDepartureAt = ""

	row := NewRowMapper().Map(tracked)
	if row.InitialCarrierETD != "N/A" {
		t.Errorf("InitialCarrierETD = %q, want N/A", row.InitialCarrierETD)
	}
	if row.LatestCarrierETDOrATD != "N/A" {
		t.Errorf("LatestCarrierETDOrATD = %q, want N/A", row.LatestCarrierETDOrATD)
	}
}

func TestMapFallsBackToLastEvent(t *testing.T) {
	tracked := fullShipment()
	tracked.Shipment.Status.CurrentEvent = nil

	row := NewRowMapper().Map(tracked)
	if row.ContainerStatus != "Arrival at final POD" {
		t.Errorf("ContainerStatus = %q, want last event description", row.ContainerStatus)
	}
	if row.CurrentEventIndex != -1 {
		t.Errorf("CurrentEventIndex = %d, want -1 without a current event", row.CurrentEventIndex)
	}
}

func TestPathProgress(t *testing.T) {
	clock := clockz.NewFakeClock()
	now := clock.Now()
	mapper := NewRowMapper().WithClock(clock)

	shipmentWithWindow := func(start, end time.Time) domain.TrackedShipment {
		tracked := fullShipment()
		tracked.Shipment.Status.ActualDepartureAt = start.Format(time.RFC3339)
		tracked.Shipment.Status.EstimatedDepartureAt = ""
		tracked.Shipment.Status.Predicted.Datetime = end.Format(time.RFC3339)
		return tracked
	}

	t.Run("halfway through the window", func(t *testing.T) {
		row := mapper.Map(shipmentWithWindow(now.Add(-time.Hour), now.Add(time.Hour)))
		if row.Path.ProgressPercent < 49.9 || row.Path.ProgressPercent > 50.1 {
			t.Errorf("ProgressPercent = %v, want ~50", row.Path.ProgressPercent)
		}
	})

	t.Run("window fully elapsed clamps to 100", func(t *testing.T) {
		row := mapper.Map(shipmentWithWindow(now.Add(-4*time.Hour), now.Add(-time.Hour)))
		if row.Path.ProgressPercent != 100 {
			t.Errorf("ProgressPercent = %v, want 100", row.Path.ProgressPercent)
		}
	})

	t.Run("window not started clamps to 0", func(t *testing.T) {
		row := mapper.Map(shipmentWithWindow(now.Add(time.Hour), now.Add(2*time.Hour)))
		if row.Path.ProgressPercent != 0 {
			t.Errorf("ProgressPercent = %v, want 0", row.Path.ProgressPercent)
		}
	})

	t.Run("degenerate window is 100", func(t *testing.T) {
		point := now.Add(time.Hour)
		row := mapper.Map(shipmentWithWindow(point, point))
		if row.Path.ProgressPercent != 100 {
			t.Errorf("ProgressPercent = %v, want 100", row.Path.ProgressPercent)
		}
	})

	t.Run("missing prediction is 0", func(t *testing.T) {
		tracked := fullShipment()
		tracked.Shipment.Status.Predicted = nil
		row := mapper.Map(tracked)
		if row.Path.ProgressPercent != 0 {
			t.Errorf("ProgressPercent = %v, want 0", row.Path.ProgressPercent)
		}
	})

	t.Run("missing initial ETA is 0", func(t *testing.T) {
		tracked := shipmentWithWindow(now.Add(-time.Hour), now.Add(time.Hour))
		tracked.Shipment.InitialCarrierETA = ""
		row := mapper.Map(tracked)
		if row.Path.ProgressPercent != 0 {
			t.Errorf("ProgressPercent = %v, want 0", row.Path.ProgressPercent)
		}
	})
}

func TestRowIDFallbacks(t *testing.T) {
	tracked := fullShipment()

	tracked.ID = ""
	if got := NewRowMapper().Map(tracked).ID; got != "ship-1" {
		t.Errorf("ID = %q, want shipment id fallback", got)
	}

	tracked.Shipment.ID = ""
	if got := NewRowMapper().Map(tracked).ID; got != "ABCD1234567" {
		t.Errorf("ID = %q, want container number fallback", got)
	}
}
