package model

// AttendanceIndex is a column offset within an attendance row.
type AttendanceIndex int

// Attendance row columns. Offsets 6 and 7 are reserved and never read.
const (
	AttendanceRecordType   AttendanceIndex = 0
	AttendanceRaceNumber   AttendanceIndex = 1
	AttendanceLocationType AttendanceIndex = 2
	AttendanceLocation     AttendanceIndex = 3
	AttendanceCount        AttendanceIndex = 4
	AttendanceHandle       AttendanceIndex = 5
)

const attendanceWidth = 8

var attendanceSchema = newSchema(RecordTypeAttendance, attendanceWidth,
	intField("race_number", AttendanceRaceNumber),
	textField("location_type", AttendanceLocationType),
	textField("location", AttendanceLocation),
	intField("attendance", AttendanceCount),
	realField("handle", AttendanceHandle),
)

// Attendance is the on-track or off-track attendance and handle.
type Attendance struct {
	RaceNumber   int
	LocationType string
	Location     string
	Attendance   int
	Handle       float64
}

// DecodeAttendance decodes an attendance row.
func DecodeAttendance(row Row) Attendance {
	return Attendance{
		RaceNumber:   ExtractInt(row, AttendanceRaceNumber),
		LocationType: ExtractText(row, AttendanceLocationType),
		Location:     ExtractText(row, AttendanceLocation),
		Attendance:   ExtractInt(row, AttendanceCount),
		Handle:       ExtractReal(row, AttendanceHandle),
	}
}

// Kind implements Record.
func (a Attendance) Kind() RecordType {
	return RecordTypeAttendance
}

// Schema implements Record.
func (a Attendance) Schema() Schema {
	return attendanceSchema
}

// Values implements Record.
func (a Attendance) Values() []any {
	return []any{
		a.RaceNumber,
		a.LocationType,
		a.Location,
		a.Attendance,
		a.Handle,
	}
}
