package model

// FootnoteIndex is a column offset within a footnote row.
type FootnoteIndex int

// Footnote row columns.
const (
	FootnoteRecordType     FootnoteIndex = 0
	FootnoteRaceNumber     FootnoteIndex = 1
	FootnoteSequenceNumber FootnoteIndex = 2
	FootnoteText           FootnoteIndex = 3
)

const footnoteWidth = 4

var footnoteSchema = newSchema(RecordTypeFootnote, footnoteWidth,
	intField("race_number", FootnoteRaceNumber),
	intField("sequence_number", FootnoteSequenceNumber),
	textField("text", FootnoteText),
)

// Footnote is one line of a race's footnote text.
// Long footnotes span several records ordered by SequenceNumber.
type Footnote struct {
	RaceNumber     int
	SequenceNumber int
	Text           string
}

// DecodeFootnote decodes a footnote row.
func DecodeFootnote(row Row) Footnote {
	return Footnote{
		RaceNumber:     ExtractInt(row, FootnoteRaceNumber),
		SequenceNumber: ExtractInt(row, FootnoteSequenceNumber),
		Text:           ExtractText(row, FootnoteText),
	}
}

// Kind implements Record.
func (f Footnote) Kind() RecordType {
	return RecordTypeFootnote
}

// Schema implements Record.
func (f Footnote) Schema() Schema {
	return footnoteSchema
}

// Values implements Record.
func (f Footnote) Values() []any {
	return []any{f.RaceNumber, f.SequenceNumber, f.Text}
}
