package domain

import "fmt"

// PathInfo summarizes the voyage leg shown in the table's path column
type PathInfo struct {
	POL             string  `json:"pol"`
	POD             string  `json:"pod"`
	ProgressPercent float64 `json:"progressPercent"`
}

// ShipmentRow is the normalized table row derived from one TrackedShipment.
// Every string field is always populated; absent data becomes "N/A".
type ShipmentRow struct {
	ID                    string          `json:"id"`
	ContainerNumber       string          `json:"containerNumber"`
	BOL                   string          `json:"bol"`
	Carrier               string          `json:"carrier"`
	InitialCarrierETD     string          `json:"initialCarrierETD"`
	LatestCarrierETDOrATD string          `json:"latestCarrierETDOrATD"`
	POL                   string          `json:"pol"`
	POD                   string          `json:"pod"`
	Path                  PathInfo        `json:"path"`
	ContainerStatus       string          `json:"containerStatus"`
	CurrentVessel         string          `json:"currentVessel"`
	InitialCarrierETA     string          `json:"initialCarrierETA"`
	LatestCarrierETAOrATA string          `json:"latestCarrierETAOrATA"`
	PredictedETA          string          `json:"maritimeAiPredictedETA"`
	StatusInsight         string          `json:"statusInsight"`
	OriginCountry         string          `json:"originCountry"`
	SupplierName          string          `json:"supplierName"`
	ConsigneeAddress      string          `json:"consigneeAddress"`
	CustomerReference     string          `json:"customerReference"`
	CustomerNumber        string          `json:"customerNumber"`
	DiffFromCarrierDays   *int            `json:"differenceFromCarrierDays"`
	VoyageStatus          string          `json:"voyageStatus"`
	Events                []TrackingEvent `json:"events"`
	// CurrentEventIndex is the position in Events whose description matches
	// the status current event, or -1 when none matches.
	CurrentEventIndex int `json:"currentEventIndex"`

	// Plain locode/name parts kept for spreadsheet export, where the
	// composed POL/POD display strings are unpacked differently.
	POLLocode string `json:"polLocode"`
	POLName   string `json:"polName"`
	PODLocode string `json:"podLocode"`
	PODName   string `json:"podName"`
}

// RowKind discriminates primary table rows from synthetic detail rows
type RowKind string

const (
	RowKindPrimary      RowKind = "primary"
	RowKindDetailHeader RowKind = "detailHeader"
	RowKindDetailEvent  RowKind = "detailEvent"
	RowKindDetailEmpty  RowKind = "detailEmpty"
)

// IsDetail reports whether the kind is any of the synthetic detail variants
func (k RowKind) IsDetail() bool {
	return k == RowKindDetailHeader || k == RowKindDetailEvent || k == RowKindDetailEmpty
}

// EventIcon is the rendered milestone icon for a timeline event. An empty
// Src means no icon; the renderer shows a dash instead.
type EventIcon struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// DisplayRow is one entry of the rendered row list: either a primary
// shipment row or a synthetic timeline row spliced in under its parent.
// Kind, ParentID and Ordinal carry the relationship explicitly; the string
// ID is derived from them for render stability and is never parsed back.
type DisplayRow struct {
	Kind     RowKind `json:"kind"`
	ID       string  `json:"id"`
	ParentID string  `json:"parentId,omitempty"`
	Ordinal  int     `json:"ordinal,omitempty"`

	// Set for primary rows only
	Row *ShipmentRow `json:"row,omitempty"`

	// Set for detail rows only
	Description         string    `json:"description,omitempty"`
	Location            string    `json:"location,omitempty"`
	Vessel              string    `json:"vessel,omitempty"`
	Voyage              string    `json:"voyage,omitempty"`
	TimeInfo            string    `json:"timeInfo,omitempty"`
	Icon                EventIcon `json:"icon,omitempty"`
	IsCurrentEvent      bool      `json:"isCurrentEvent,omitempty"`
	IsAfterCurrentEvent bool      `json:"isAfterCurrentEvent,omitempty"`
}

// DetailHeaderID derives the stable id of a timeline header row
func DetailHeaderID(parentID string) string {
	return parentID + "-header"
}

// DetailEventID derives the stable id of the nth timeline event row
func DetailEventID(parentID string, ordinal int) string {
	return fmt.Sprintf("%s-detail-%d", parentID, ordinal)
}
