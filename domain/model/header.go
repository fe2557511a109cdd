package model

import "time"

// HeaderIndex is a column offset within a header row.
type HeaderIndex int

// Header row columns.
const (
	HeaderRecordType     HeaderIndex = 0
	HeaderCountryCode    HeaderIndex = 1
	HeaderTrackCode      HeaderIndex = 2
	HeaderRaceDate       HeaderIndex = 3
	HeaderNumberOfRaces  HeaderIndex = 4
	HeaderDayEveningFlag HeaderIndex = 5
	HeaderSendingTrack   HeaderIndex = 6
)

const headerWidth = 7

// raceDateLayout is the layout of race_date columns (YYYYMMDD)
const raceDateLayout = "20060102"

var headerSchema = newSchema(RecordTypeHeader, headerWidth,
	textField("country_code", HeaderCountryCode),
	textField("track_code", HeaderTrackCode),
	textField("race_date", HeaderRaceDate),
	intField("number_of_races", HeaderNumberOfRaces),
	textField("day_evening_flag", HeaderDayEveningFlag),
	textField("sending_track", HeaderSendingTrack),
)

// Header identifies the race card a chart file describes.
type Header struct {
	CountryCode    string
	TrackCode      string
	RaceDate       string
	NumberOfRaces  int
	DayEveningFlag string
	SendingTrack   string
}

// DecodeHeader decodes a header row.
func DecodeHeader(row Row) Header {
	return Header{
		CountryCode:    ExtractText(row, HeaderCountryCode),
		TrackCode:      ExtractText(row, HeaderTrackCode),
		RaceDate:       ExtractText(row, HeaderRaceDate),
		NumberOfRaces:  ExtractInt(row, HeaderNumberOfRaces),
		DayEveningFlag: ExtractText(row, HeaderDayEveningFlag),
		SendingTrack:   ExtractText(row, HeaderSendingTrack),
	}
}

// Kind implements Record.
func (h Header) Kind() RecordType {
	return RecordTypeHeader
}

// Schema implements Record.
func (h Header) Schema() Schema {
	return headerSchema
}

// Values implements Record.
func (h Header) Values() []any {
	return []any{
		h.CountryCode,
		h.TrackCode,
		h.RaceDate,
		h.NumberOfRaces,
		h.DayEveningFlag,
		h.SendingTrack,
	}
}

// Date parses RaceDate. It reports false when the field is blank or malformed.
func (h Header) Date() (time.Time, bool) {
	return parseRaceDate(h.RaceDate)
}

func parseRaceDate(s string) (time.Time, bool) {
	t, err := time.Parse(raceDateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
