package model

import "time"

// CommentIndex is a column offset within a comment row.
type CommentIndex int

// Comment row columns.
const (
	CommentRecordType       CommentIndex = 0
	CommentRaceNumber       CommentIndex = 1
	CommentCountryCode      CommentIndex = 2
	CommentTrackCode        CommentIndex = 3
	CommentRaceDate         CommentIndex = 4
	CommentResultRaceNumber CommentIndex = 5
	CommentDayEveningFlag   CommentIndex = 6
	CommentType             CommentIndex = 7
	CommentText             CommentIndex = 8
)

const commentWidth = 9

var commentSchema = newSchema(RecordTypeComment, commentWidth,
	intField("race_number", CommentRaceNumber),
	textField("country_code", CommentCountryCode),
	textField("track_code", CommentTrackCode),
	textField("race_date", CommentRaceDate),
	intField("result_race_number", CommentResultRaceNumber),
	textField("day_evening_flag", CommentDayEveningFlag),
	textField("comment_type", CommentType),
	textField("comment_text", CommentText),
)

// Comment is a free-text comment or race oddity. The result columns point
// at the race the comment refers to, which may belong to another card.
type Comment struct {
	RaceNumber       int
	CountryCode      string
	TrackCode        string
	RaceDate         string
	ResultRaceNumber int
	DayEveningFlag   string
	CommentType      string
	Text             string
}

// DecodeComment decodes a comment row.
func DecodeComment(row Row) Comment {
	return Comment{
		RaceNumber:       ExtractInt(row, CommentRaceNumber),
		CountryCode:      ExtractText(row, CommentCountryCode),
		TrackCode:        ExtractText(row, CommentTrackCode),
		RaceDate:         ExtractText(row, CommentRaceDate),
		ResultRaceNumber: ExtractInt(row, CommentResultRaceNumber),
		DayEveningFlag:   ExtractText(row, CommentDayEveningFlag),
		CommentType:      ExtractText(row, CommentType),
		Text:             ExtractText(row, CommentText),
	}
}

// Kind implements Record.
func (c Comment) Kind() RecordType {
	return RecordTypeComment
}

// Schema implements Record.
func (c Comment) Schema() Schema {
	return commentSchema
}

// Values implements Record.
func (c Comment) Values() []any {
	return []any{
		c.RaceNumber,
		c.CountryCode,
		c.TrackCode,
		c.RaceDate,
		c.ResultRaceNumber,
		c.DayEveningFlag,
		c.CommentType,
		c.Text,
	}
}

// Date parses RaceDate.
func (c Comment) Date() (time.Time, bool) {
	return parseRaceDate(c.RaceDate)
}
