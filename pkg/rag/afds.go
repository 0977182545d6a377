package rag

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/paa-ai/skydesk/pkg/flight"
)

// envelopePattern pulls individual AFDS envelopes out of a feed file. Feed
// dumps concatenate envelopes without a document root, so they cannot be
// parsed as one XML document.
var envelopePattern = regexp.MustCompile(`(?s)<Envelope[\s\S]*?</Envelope>`)

// CheckinDeskRange is the parsed form of a desk range string such as
// "02-09-02-15" (zone 2 desks 9 through 15).
type CheckinDeskRange struct {
	ZoneStart    int `json:"zone_start"`
	CounterStart int `json:"counter_start"`
	ZoneEnd      int `json:"zone_end"`
	CounterEnd   int `json:"counter_end"`
}

// FlightRecord is one flight movement extracted from an AFDS envelope.
type FlightRecord struct {
	FlightNumber   string `json:"flight_number"`
	Direction      string `json:"direction"`
	ScheduledDate  string `json:"scheduled_date"`
	CarrierICAO    string `json:"carrier_icao"`
	CarrierIATA    string `json:"carrier_iata"`
	CarrierName    string `json:"carrier_name"`
	Airport        string `json:"airport"`
	NatureCode     string `json:"flight_nature_code"`
	NatureDesc     string `json:"flight_nature_desc"`
	SectorCode     string `json:"flight_sector_code"`
	SectorDesc     string `json:"flight_sector_desc"`
	StatusCode     string `json:"flight_status_code"`
	StatusDesc     string `json:"flight_status_desc"`
	ScheduledTime  string `json:"scheduled_time"`
	ActualTime     string `json:"actual_time"`
	PortOfCallIATA string `json:"port_of_call_iata"`
	PortOfCallICAO string `json:"port_of_call_icao"`
	CheckinOpen    string `json:"checkin_open"`
	CheckinClose   string `json:"checkin_close"`
	CheckinType    string `json:"checkin_type"`
	GateOpen       string `json:"gate_open"`
	GateClose      string `json:"gate_close"`
	GateNumber     string `json:"gate_number"`
	StandPosition  string `json:"stand_position"`
	HandlingAgent  string `json:"handling_agent"`

	CheckinDesks *CheckinDeskRange `json:"checkin_desk_range,omitempty"`
}

// Summary renders the one-sentence description that gets embedded and
// returned as the retrieval snippet.
func (r *FlightRecord) Summary() string {
	return fmt.Sprintf(
		"Flight %s (%s) is a %s flight. Nature: %s, Sector: %s, Status: %s. "+
			"Airport: %s, Gate: %s. Scheduled: %s, Latest Known: %s.",
		r.FlightNumber, r.CarrierName, r.Direction,
		r.NatureDesc, r.SectorDesc, r.StatusDesc,
		r.Airport, r.GateNumber, r.ScheduledTime, r.ActualTime,
	)
}

// ParseCheckinDeskRange parses a "zone-desk-zone-desk" range string.
// Malformed strings return nil.
func ParseCheckinDeskRange(raw string) *CheckinDeskRange {
	parts := strings.Split(strings.TrimSpace(raw), "-")
	if len(parts) != 4 {
		return nil
	}
	values := make([]int, 4)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil
		}
		values[i] = n
	}
	return &CheckinDeskRange{
		ZoneStart:    values[0],
		CounterStart: values[1],
		ZoneEnd:      values[2],
		CounterEnd:   values[3],
	}
}

// ParseAFDS extracts flight records from raw AFDS feed content. Envelopes
// that fail to parse are skipped; a feed with zero parsable envelopes is
// not an error, it just yields no records.
func ParseAFDS(raw string) []FlightRecord {
	cleaned := CleanText(raw)

	var records []FlightRecord
	for _, envelope := range envelopePattern.FindAllString(cleaned, -1) {
		record, ok := parseEnvelope(envelope)
		if !ok {
			continue
		}
		records = append(records, record)
	}
	return records
}

// parseEnvelope walks one envelope's tokens, capturing fields by local
// element name. The AFDS schema nests elements several layers deep under a
// vendor namespace; matching on local names keeps the parser tolerant of
// envelope-version differences.
func parseEnvelope(envelope string) (FlightRecord, bool) {
	var record FlightRecord
	seenFlightData := false

	decoder := xml.NewDecoder(strings.NewReader(envelope))
	var current string
	var inAirport, inOperationalTimes bool

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			current = t.Name.Local
			switch current {
			case "AFDSFlightData":
				seenFlightData = true
			case "Airport":
				inAirport = true
			case "OperationalTimes":
				inOperationalTimes = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "Airport":
				inAirport = false
			case "OperationalTimes":
				inOperationalTimes = false
			}
			current = ""
		case xml.CharData:
			value := strings.TrimSpace(string(t))
			if value == "" || current == "" {
				continue
			}
			record.assign(current, value, inAirport, inOperationalTimes)
		}
	}

	if !seenFlightData || record.FlightNumber == "" {
		return FlightRecord{}, false
	}
	record.resolve()
	return record, true
}

func (r *FlightRecord) assign(name, value string, inAirport, inOperationalTimes bool) {
	switch name {
	case "FlightIdentity":
		r.FlightNumber = value
	case "FlightDirection":
		r.Direction = value
	case "ScheduledDate":
		r.ScheduledDate = value
	case "CarrierICAOCode":
		r.CarrierICAO = value
	case "CarrierIATACode":
		if r.CarrierIATA == "" {
			r.CarrierIATA = value
		}
	case "AirportIATACode":
		if inAirport {
			r.Airport = value
		}
	case "FlightNatureCode":
		r.NatureCode = value
	case "FlightSectorCode":
		r.SectorCode = value
	case "FlightStatusCode":
		r.StatusCode = value
	case "ScheduledDateTime":
		if inOperationalTimes {
			r.ScheduledTime = value
		}
	case "LatestKnownDateTime":
		if inOperationalTimes {
			r.ActualTime = value
		}
	case "PortOfCallIATACode":
		r.PortOfCallIATA = value
	case "PortOfCallICAOCode":
		r.PortOfCallICAO = value
	case "CheckinOpenDateTime":
		r.CheckinOpen = value
	case "CheckinCloseDateTime":
		r.CheckinClose = value
	case "CheckinDeskRange":
		r.CheckinDesks = ParseCheckinDeskRange(value)
	case "CheckinTypeCode":
		r.CheckinType = value
	case "GateOpenDateTime":
		r.GateOpen = value
	case "GateCloseDateTime":
		r.GateClose = value
	case "GateNumber":
		r.GateNumber = value
	case "StandPosition":
		r.StandPosition = value
	case "HandlingAgentIATACode":
		r.HandlingAgent = value
	}
}

// resolve fills in the carrier and code descriptions from the lookup
// tables. The ICAO mapping wins over the feed's own IATA code.
func (r *FlightRecord) resolve() {
	if iata, ok := flight.AirlineICAOToIATA[r.CarrierICAO]; ok {
		r.CarrierIATA = iata
	}
	r.CarrierName = flight.AirlineName(r.CarrierIATA)
	r.NatureDesc = flight.DescribeNature(r.NatureCode)
	r.SectorDesc = flight.DescribeSector(r.SectorCode)
	r.StatusDesc = flight.DescribeStatus(r.StatusCode)
}
