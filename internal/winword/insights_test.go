package winword

import (
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestBuildFilterRequestSingleValue(t *testing.T) {
	options := InsightOptions(time.Now())

	req := BuildFilterRequest([]string{"Arrived"}, options, zap.NewNop())
	want := FilterRequest{
		Fields: []string{"shipment_voyage_status"},
		Values: []string{"arrived"},
	}
	if !reflect.DeepEqual(req, want) {
		t.Fatalf("got %+v, want %+v", req, want)
	}
}

func TestBuildFilterRequestExpandsMultiValueOptions(t *testing.T) {
	options := InsightOptions(time.Now())

	req := BuildFilterRequest([]string{"Routing deficiency"}, options, zap.NewNop())
	want := FilterRequest{
		Fields: []string{"shipment_delay_reasons", "shipment_delay_reasons"},
		Values: []string{"RDF_TSP", "RDF_POL"},
	}
	if !reflect.DeepEqual(req, want) {
		t.Fatalf("got %+v, want %+v", req, want)
	}
}

func TestBuildFilterRequestCombinesSelections(t *testing.T) {
	options := InsightOptions(time.Now())

	req := BuildFilterRequest([]string{"Late departure", "Late allocation"}, options, zap.NewNop())
	if len(req.Fields) != 2 || len(req.Values) != 2 {
		t.Fatalf("got %+v, want two field/value pairs", req)
	}
	if req.Values[0] != "LTD_POL" || req.Values[1] != "FVD_POD" {
		t.Errorf("values in wrong order: %+v", req.Values)
	}
}

func TestBuildFilterRequestSkipsDateRangeAndUnknown(t *testing.T) {
	options := InsightOptions(time.Now())

	req := BuildFilterRequest(
		[]string{"Arriving soon (1-3 days)", "No such insight", "Arrived"},
		options, zap.NewNop(),
	)
	want := FilterRequest{
		Fields: []string{"shipment_voyage_status"},
		Values: []string{"arrived"},
	}
	if !reflect.DeepEqual(req, want) {
		t.Fatalf("got %+v, want only the expressible selection %+v", req, want)
	}
}

func TestInsightOptionsArrivingSoonWindow(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	options := InsightOptions(now)

	var arriving *InsightOption
	for i := range options {
		if options[i].Title == "Arriving soon (1-3 days)" {
			arriving = &options[i]
		}
	}
	if arriving == nil || arriving.Range == nil {
		t.Fatal("arriving-soon option missing or without a range")
	}
	if arriving.Range.GTE != "2025-03-10T12:00:00Z" {
		t.Errorf("range start = %q", arriving.Range.GTE)
	}
	if arriving.Range.LTE != "2025-03-13T12:00:00Z" {
		t.Errorf("range end = %q", arriving.Range.LTE)
	}
}
