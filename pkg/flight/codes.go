package flight

// Code descriptions from the AFDS feed documentation.

// NatureDescriptions maps flight nature codes to readable descriptions.
var NatureDescriptions = map[string]string{
	"CGO": "Cargo Flight",
	"GEN": "General Flight",
	"PAX": "Passenger Flight",
	"SPE": "Special Flight",
	"VIP": "VIP Flight",
}

// SectorDescriptions maps flight sector codes to readable descriptions.
var SectorDescriptions = map[string]string{
	"D": "Domestic",
	"I": "International",
}

// StatusDescriptions maps flight status codes to readable descriptions.
var StatusDescriptions = map[string]string{
	"AB": "Airborne",
	"AD": "Advanced Flight",
	"BD": "Boarding",
	"CC": "Check-in close",
	"CI": "Check-in open",
	"CN": "Confirmed",
	"CX": "Cancelled",
	"DV": "Diverted",
	"ES": "Estimated",
	"EX": "Expected",
	"FB": "First Bag",
	"FS": "Final Approach",
	"FX": "Flight Fixed",
	"GA": "Gate Attended",
	"GC": "Gate Closed",
	"GO": "Gate Open",
	"LB": "Last Bag",
	"LC": "Last Call",
	"LD": "Landed",
	"NI": "Next Information",
	"NO": "Non-operational",
	"NT": "New Time",
	"OB": "On/Off Blocks",
	"OT": "On Time",
	"OV": "Overshoot",
	"RS": "Return To Stand",
	"SH": "Scheduled",
	"XF": "Flight Fixed",
	"ZN": "Zoning",
}

// DescribeNature returns the description for a nature code, falling back to
// the raw code for values the feed documentation does not cover.
func DescribeNature(code string) string {
	if d, ok := NatureDescriptions[code]; ok {
		return d
	}
	return code
}

// DescribeSector returns the description for a sector code.
func DescribeSector(code string) string {
	if d, ok := SectorDescriptions[code]; ok {
		return d
	}
	return code
}

// DescribeStatus returns the description for a status code.
func DescribeStatus(code string) string {
	if d, ok := StatusDescriptions[code]; ok {
		return d
	}
	return code
}
