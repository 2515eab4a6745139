package domain

import "strings"

// Raw record types as delivered by the tracking provider. Every nested
// field can be absent; consumers must treat missing data as "N/A".

// BusinessDataItem is one free-form key/value pair from shipment metadata
type BusinessDataItem struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Metadata carries customer-facing business data attached to a tracked shipment
type Metadata struct {
	BusinessData []BusinessDataItem `json:"businessData,omitempty"`
}

// Carrier identifies the shipping line
type Carrier struct {
	ShortName string `json:"shortName,omitempty"`
}

// Vessel identifies the ship carrying the container
type Vessel struct {
	Name string `json:"name,omitempty"`
}

// TrackingEvent is one entry in a shipment's ordered event timeline.
// Order is chronological and significant; the current event is identified
// by matching Description against the status CurrentEvent, not by index.
type TrackingEvent struct {
	Description string  `json:"description,omitempty"`
	Location    string  `json:"location,omitempty"`
	Vessel      *Vessel `json:"vessel,omitempty"`
	Voyage      string  `json:"voyage,omitempty"`
	PlannedAt   string  `json:"plannedAt,omitempty"`
	ActualAt    string  `json:"actualAt,omitempty"`
}

// PortProperties carries a port's UN/LOCODE and display name
type PortProperties struct {
	Locode string `json:"locode,omitempty"`
	Name   string `json:"name,omitempty"`
}

// PortData wraps port properties in the provider's GeoJSON-ish envelope
type PortData struct {
	Properties *PortProperties `json:"properties,omitempty"`
}

// Predicted is the provider's AI arrival estimate with a signed day-offset
// from the carrier's original ETA. DiffFromCarrierDays is nil when the
// provider has no prediction.
type Predicted struct {
	Datetime            string `json:"datetime,omitempty"`
	DiffFromCarrierDays *int   `json:"diffFromCarrierDays,omitempty"`
}

// ShipmentStatus is the provider's latest view of a voyage
type ShipmentStatus struct {
	POL                  *PortData       `json:"pol,omitempty"`
	POD                  *PortData       `json:"pod,omitempty"`
	CurrentEvent         *TrackingEvent  `json:"currentEvent,omitempty"`
	ActualDepartureAt    string          `json:"actualDepartureAt,omitempty"`
	EstimatedDepartureAt string          `json:"estimatedDepartureAt,omitempty"`
	ActualArrivalAt      string          `json:"actualArrivalAt,omitempty"`
	EstimatedArrivalAt   string          `json:"estimatedArrivalAt,omitempty"`
	Predicted            *Predicted      `json:"predicted,omitempty"`
	VoyageStatus         string          `json:"voyageStatus,omitempty"`
	Events               []TrackingEvent `json:"events,omitempty"`
}

// ShipmentData is the shipment body of a tracked record
type ShipmentData struct {
	ID                string          `json:"id,omitempty"`
	ContainerNumber   string          `json:"containerNumber,omitempty"`
	BOL               string          `json:"bol,omitempty"`
	Carrier           *Carrier        `json:"carrier,omitempty"`
	Status            *ShipmentStatus `json:"status,omitempty"`
	InitialCarrierETA string          `json:"initialCarrierETA,omitempty"`
	InitialCarrierETD string          `json:"initialCarrierETD,omitempty"`
}

// TrackedShipment is one raw record from the provider
type TrackedShipment struct {
	ID       string       `json:"id,omitempty"`
	Metadata *Metadata    `json:"metadata,omitempty"`
	Shipment ShipmentData `json:"shipment"`
}

// TrackedShipmentsEnvelope is the provider's response wrapper:
// { data: { trackedShipments: { data: [...] } } }
type TrackedShipmentsEnvelope struct {
	Data struct {
		TrackedShipments struct {
			Data []TrackedShipment `json:"data"`
		} `json:"trackedShipments"`
	} `json:"data"`
}

// BusinessValue returns the first metadata value whose key matches, or ""
// when the key is absent. Keys are compared after trimming whitespace
// because upstream records carry padded keys on some fields.
func (t *TrackedShipment) BusinessValue(key string) string {
	if t.Metadata == nil {
		return ""
	}
	for _, item := range t.Metadata.BusinessData {
		if strings.TrimSpace(item.Key) == key {
			return item.Value
		}
	}
	return ""
}
