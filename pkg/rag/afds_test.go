package rag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `garbage before the first envelope
<Envelope xmlns="http://schema.ultra-as.com">
  <Body>
    <AFDSFlightData>
      <FlightIdentification>
        <FlightIdentity>SV726</FlightIdentity>
        <FlightDirection>Arrival</FlightDirection>
        <ScheduledDate>2026-08-30</ScheduledDate>
      </FlightIdentification>
      <FlightData>
        <Airport>
          <AirportIATACode>KHI</AirportIATACode>
          <GateNumber>12</GateNumber>
          <StandPosition>A4</StandPosition>
        </Airport>
        <Flight>
          <CarrierICAOCode>SVA</CarrierICAOCode>
          <FlightNatureCode>PAX</FlightNatureCode>
          <FlightSectorCode>I</FlightSectorCode>
          <FlightStatusCode>LD</FlightStatusCode>
          <PortOfCallIATACode>JED</PortOfCallIATACode>
          <CheckinDeskRange>02-09-02-15</CheckinDeskRange>
        </Flight>
        <OperationalTimes>
          <ScheduledDateTime>2026-08-30T14:30:00</ScheduledDateTime>
          <LatestKnownDateTime>2026-08-30T14:55:00</LatestKnownDateTime>
        </OperationalTimes>
      </FlightData>
    </AFDSFlightData>
  </Body>
</Envelope>
<Envelope xmlns="http://schema.ultra-as.com">
  <Body>
    <AFDSFlightData>
      <FlightIdentification>
        <FlightIdentity>PK300</FlightIdentity>
        <FlightDirection>Departure</FlightDirection>
      </FlightIdentification>
      <FlightData>
        <Flight>
          <CarrierICAOCode>PIA</CarrierICAOCode>
          <FlightNatureCode>PAX</FlightNatureCode>
          <FlightSectorCode>D</FlightSectorCode>
          <FlightStatusCode>BD</FlightStatusCode>
        </Flight>
      </FlightData>
    </AFDSFlightData>
  </Body>
</Envelope>`

func TestParseAFDSExtractsRecords(t *testing.T) {
	records := ParseAFDS(sampleFeed)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "SV726", first.FlightNumber)
	assert.Equal(t, "Arrival", first.Direction)
	assert.Equal(t, "KHI", first.Airport)
	assert.Equal(t, "12", first.GateNumber)
	assert.Equal(t, "SV", first.CarrierIATA)
	assert.Equal(t, "Saudi Airline", first.CarrierName)
	assert.Equal(t, "Passenger Flight", first.NatureDesc)
	assert.Equal(t, "International", first.SectorDesc)
	assert.Equal(t, "Landed", first.StatusDesc)
	assert.Equal(t, "2026-08-30T14:30:00", first.ScheduledTime)
	assert.Equal(t, "2026-08-30T14:55:00", first.ActualTime)
	assert.Equal(t, "JED", first.PortOfCallIATA)

	require.NotNil(t, first.CheckinDesks)
	assert.Equal(t, 2, first.CheckinDesks.ZoneStart)
	assert.Equal(t, 9, first.CheckinDesks.CounterStart)
	assert.Equal(t, 2, first.CheckinDesks.ZoneEnd)
	assert.Equal(t, 15, first.CheckinDesks.CounterEnd)

	second := records[1]
	assert.Equal(t, "PK300", second.FlightNumber)
	assert.Equal(t, "PK", second.CarrierIATA)
	assert.Equal(t, "Boarding", second.StatusDesc)
	assert.Equal(t, "Domestic", second.SectorDesc)
}

func TestParseAFDSSurvivesControlCharacters(t *testing.T) {
	dirty := "\x00\x01" + sampleFeed[:200] + "\x02" + sampleFeed[200:]
	records := ParseAFDS(dirty)
	assert.Len(t, records, 2)
}

func TestParseAFDSSkipsBrokenEnvelopes(t *testing.T) {
	feed := `<Envelope><unclosed</Envelope>` + sampleFeed
	records := ParseAFDS(feed)
	assert.Len(t, records, 2)
}

func TestParseAFDSEmptyFeed(t *testing.T) {
	assert.Empty(t, ParseAFDS(""))
	assert.Empty(t, ParseAFDS("no envelopes at all"))
}

func TestFlightRecordSummary(t *testing.T) {
	records := ParseAFDS(sampleFeed)
	require.NotEmpty(t, records)

	summary := records[0].Summary()
	assert.Contains(t, summary, "Flight SV726 (Saudi Airline)")
	assert.Contains(t, summary, "Arrival flight")
	assert.Contains(t, summary, "Status: Landed")
	assert.Contains(t, summary, "Gate: 12")
	assert.Contains(t, summary, "Scheduled: 2026-08-30T14:30:00")
}

func TestParseCheckinDeskRange(t *testing.T) {
	assert.Nil(t, ParseCheckinDeskRange("02-09"))
	assert.Nil(t, ParseCheckinDeskRange("a-b-c-d"))
	assert.Nil(t, ParseCheckinDeskRange(""))

	parsed := ParseCheckinDeskRange("01-05-01-08")
	require.NotNil(t, parsed)
	assert.Equal(t, 1, parsed.ZoneStart)
	assert.Equal(t, 8, parsed.CounterEnd)
}
