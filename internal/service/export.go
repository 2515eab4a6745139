package service

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/jszwec/csvutil"

	"github.com/cargoview/opsdash/internal/domain"
)

// ExportRecord is one flat spreadsheet row. Object-valued row fields
// (path, pol, pod, events) are resolved to display strings before export.
type ExportRecord struct {
	ContainerNumber       string `csv:"Container Number"`
	BOL                   string `csv:"BOL"`
	Carrier               string `csv:"Latest Carrier"`
	InitialCarrierETD     string `csv:"Initial Carrier ETD"`
	LatestCarrierETDOrATD string `csv:"Latest Carrier ETD/ATD"`
	POL                   string `csv:"POL"`
	Path                  string `csv:"Path"`
	POD                   string `csv:"POD"`
	ContainerStatus       string `csv:"Container Status"`
	CurrentVessel         string `csv:"Current Vessel"`
	InitialCarrierETA     string `csv:"Initial Carrier ETA"`
	LatestCarrierETAOrATA string `csv:"Latest Carrier ETA/ATA"`
	PredictedETA          string `csv:"Maritime AI Predicted ETA"`
	StatusInsight         string `csv:"Status & Insights"`
	OriginCountry         string `csv:"Origin Country"`
	SupplierName          string `csv:"Supplier Name"`
	ConsigneeAddress      string `csv:"Consignee Address"`
	CustomerReference     string `csv:"Customer Reference"`
	Events                string `csv:"Events"`
}

// ExportRecords flattens rows into spreadsheet records
func ExportRecords(rows []domain.ShipmentRow) []ExportRecord {
	records := make([]ExportRecord, len(rows))
	for i, row := range rows {
		records[i] = ExportRecord{
			ContainerNumber:       row.ContainerNumber,
			BOL:                   row.BOL,
			Carrier:               row.Carrier,
			InitialCarrierETD:     row.InitialCarrierETD,
			LatestCarrierETDOrATD: row.LatestCarrierETDOrATD,
			POL:                   portExport(row.POLLocode, row.POLName),
			Path:                  pathExport(row.Path),
			POD:                   portExport(row.PODLocode, row.PODName),
			ContainerStatus:       row.ContainerStatus,
			CurrentVessel:         row.CurrentVessel,
			InitialCarrierETA:     row.InitialCarrierETA,
			LatestCarrierETAOrATA: row.LatestCarrierETAOrATA,
			PredictedETA:          row.PredictedETA,
			StatusInsight:         row.StatusInsight,
			OriginCountry:         row.OriginCountry,
			SupplierName:          row.SupplierName,
			ConsigneeAddress:      row.ConsigneeAddress,
			CustomerReference:     row.CustomerReference,
			Events:                eventsExport(row.Events),
		}
	}
	return records
}

// WriteCSV writes the flattened rows as CSV
func WriteCSV(w io.Writer, rows []domain.ShipmentRow) error {
	data, err := csvutil.Marshal(ExportRecords(rows))
	if err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func portExport(locode, name string) string {
	if locode == "N/A" || name == "N/A" {
		return "N/A"
	}
	return locode + " - " + name
}

func pathExport(path domain.PathInfo) string {
	return fmt.Sprintf("%s → %s (%d%%)", path.POL, path.POD, int(math.Round(path.ProgressPercent)))
}

func eventsExport(events []domain.TrackingEvent) string {
	if len(events) == 0 {
		return "N/A"
	}
	descriptions := make([]string, len(events))
	for i, ev := range events {
		if ev.Description == "" {
			descriptions[i] = "Unknown"
		} else {
			descriptions[i] = ev.Description
		}
	}
	return strings.Join(descriptions, ", ")
}
