package domain

// eventIcons is the authoritative milestone-icon table, keyed by exact
// event description. The vocabulary is the fixed set of carrier-reported
// milestones; it is not dynamically extensible.
var eventIcons = map[string]EventIcon{
	"Empty to shipper": {Src: "/Empty_to_shipper.png", Alt: "Empty to shipper"},
	"Gate in at first POL": {Src: "/Gate_in_at_first_POL.png", Alt: "Gate in at first POL"},
	"Arrival at POL": {Src: "/Arrival_at_POL.png", Alt: "Arrival at POL"},
	"Loaded at first POL": {Src: "/loaded_at_first_POL.png", Alt: "Loaded at first POL"},
	"Departure from first POL": {Src: "/Departure_from_first_POL.png", Alt: "Departure from first POL"},
	"Port call": {Src: "/Port_call.png", Alt: "Port call"},
	"Discharge at T/S port": {Src: "/Discharge_at_TS_port.png", Alt: "Discharge at T/S port"},
	"Arrival at T/S port": {Src: "/Arrival_at_TS_port.png", Alt: "Arrival at T/S port"},
	"Loaded at T/S port": {Src: "/Loaded_at_TS_port.png", Alt: "Loaded at T/S port"},
	"Departure from T/S port": {Src: "/Departure_from_TS_port.png", Alt: "Departure from T/S port"},
	"Arrival at final POD": {Src: "/Arrival_at_final_POD.png", Alt: "Arrival at final POD"},
	"Discharge at final POD": {Src: "/Discharge_at_final_POD.png", Alt: "Discharge at final POD"},
	"Gate out from final POD": {Src: "/Gate_out_from_final_POD.png", Alt: "Gate out from final POD"},
	"Empty return to depot": {Src: "/Empty_return_to_depot.png", Alt: "Empty return to depot"},
	"Pickup at shipper": {Src: "/Pickup_at_shipper.png", Alt: "Pickup at shipper"},
	"Delivery to consignee": {Src: "/Delivery_to_consignee.png", Alt: "Delivery to consignee"},
	"In transshipment": {Src: "/In_transshipment.png", Alt: "In transshipment"},
	"Unknown": {Src: "/Unknown.png", Alt: "Unknown"},
}

// EventIconFor returns the milestone icon for an event description.
// Unmatched descriptions yield the zero icon, rendered as a text dash.
func EventIconFor(description string) EventIcon {
	return eventIcons[description]
}
