package model

// Chart groups the decoded records of one chart file by kind.
// Records keep file order within each kind. No joins are made between kinds.
type Chart struct {
	Headers      []Header
	Races        []Race
	Starters     []Starter
	ExoticWagers []ExoticWager
	Attendance   []Attendance
	Comments     []Comment
	Footnotes    []Footnote
}

// NewChart create new Chart.
func NewChart() *Chart {
	return &Chart{}
}

// Add appends a record to the group of its kind.
// Records of an unknown concrete type are ignored.
func (c *Chart) Add(rec Record) {
	switch r := rec.(type) {
	case Header:
		c.Headers = append(c.Headers, r)
	case Race:
		c.Races = append(c.Races, r)
	case Starter:
		c.Starters = append(c.Starters, r)
	case ExoticWager:
		c.ExoticWagers = append(c.ExoticWagers, r)
	case Attendance:
		c.Attendance = append(c.Attendance, r)
	case Comment:
		c.Comments = append(c.Comments, r)
	case Footnote:
		c.Footnotes = append(c.Footnotes, r)
	}
}

// Records returns the records of one kind as Record values.
func (c *Chart) Records(kind RecordType) []Record {
	switch kind {
	case RecordTypeHeader:
		return toRecords(c.Headers)
	case RecordTypeRace:
		return toRecords(c.Races)
	case RecordTypeStarter:
		return toRecords(c.Starters)
	case RecordTypeExoticWager:
		return toRecords(c.ExoticWagers)
	case RecordTypeAttendance:
		return toRecords(c.Attendance)
	case RecordTypeComment:
		return toRecords(c.Comments)
	case RecordTypeFootnote:
		return toRecords(c.Footnotes)
	default:
		return nil
	}
}

// Count returns the number of records of one kind.
func (c *Chart) Count(kind RecordType) int {
	switch kind {
	case RecordTypeHeader:
		return len(c.Headers)
	case RecordTypeRace:
		return len(c.Races)
	case RecordTypeStarter:
		return len(c.Starters)
	case RecordTypeExoticWager:
		return len(c.ExoticWagers)
	case RecordTypeAttendance:
		return len(c.Attendance)
	case RecordTypeComment:
		return len(c.Comments)
	case RecordTypeFootnote:
		return len(c.Footnotes)
	default:
		return 0
	}
}

// Len returns the total number of records.
func (c *Chart) Len() int {
	n := 0
	for _, kind := range recordTypes {
		n += c.Count(kind)
	}
	return n
}

// Header returns the first header record, if any.
func (c *Chart) Header() (Header, bool) {
	if len(c.Headers) == 0 {
		return Header{}, false
	}
	return c.Headers[0], true
}

// StartersOf returns the starters of one race number in file order.
func (c *Chart) StartersOf(raceNumber int) []Starter {
	var out []Starter
	for _, s := range c.Starters {
		if s.RaceNumber == raceNumber {
			out = append(out, s)
		}
	}
	return out
}

func toRecords[T Record](in []T) []Record {
	if len(in) == 0 {
		return nil
	}
	out := make([]Record, len(in))
	for i, r := range in {
		out[i] = r
	}
	return out
}
