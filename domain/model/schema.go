package model

import "slices"

// Field is one named column of a record layout.
type Field struct {
	// Name is the snake_case field name, also used as SQL column name
	Name string
	// Offset is the zero-based column position within the row
	Offset int
	// Type is the decoded value type
	Type ColumnType
}

// Schema is the immutable column layout of one record kind.
//
// The tag column (offset 0) and reserved columns are part of Width but are
// not named fields. Schemas are built once at package init and only read
// afterwards, so they may be shared between goroutines.
type Schema struct {
	kind   RecordType
	width  int
	fields []Field
	byName map[string]int
}

func newSchema(kind RecordType, width int, fields ...Field) Schema {
	sorted := slices.Clone(fields)
	slices.SortStableFunc(sorted, func(a, b Field) int {
		return a.Offset - b.Offset
	})

	byName := make(map[string]int, len(sorted))
	for i, f := range sorted {
		byName[f.Name] = i
	}
	return Schema{
		kind:   kind,
		width:  width,
		fields: sorted,
		byName: byName,
	}
}

func textField[I Offset](name string, offset I) Field {
	return Field{Name: name, Offset: int(offset), Type: ColumnTypeText}
}

func intField[I Offset](name string, offset I) Field {
	return Field{Name: name, Offset: int(offset), Type: ColumnTypeInteger}
}

func realField[I Offset](name string, offset I) Field {
	return Field{Name: name, Offset: int(offset), Type: ColumnTypeReal}
}

// Kind returns the record type this layout belongs to.
func (s Schema) Kind() RecordType {
	return s.kind
}

// Width returns the total column count of the layout, including the tag
// column and reserved columns.
func (s Schema) Width() int {
	return s.width
}

// Len returns the number of named fields.
func (s Schema) Len() int {
	return len(s.fields)
}

// Fields returns the named fields ordered by offset.
func (s Schema) Fields() []Field {
	return slices.Clone(s.fields)
}

// Names returns the field names ordered by offset.
func (s Schema) Names() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

// Field looks up a field by name.
func (s Schema) Field(name string) (Field, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Offset returns the column offset of the named field.
func (s Schema) Offset(name string) (int, bool) {
	f, ok := s.Field(name)
	if !ok {
		return 0, false
	}
	return f.Offset, true
}

// Reserved returns the offsets that the format defines but never names.
// These columns are never read by a decoder.
func (s Schema) Reserved() []int {
	used := make(map[int]bool, len(s.fields)+1)
	used[0] = true
	for _, f := range s.fields {
		used[f.Offset] = true
	}

	var reserved []int
	for i := range s.width {
		if !used[i] {
			reserved = append(reserved, i)
		}
	}
	return reserved
}

// SchemaFor returns the layout for a record type.
func SchemaFor(kind RecordType) (Schema, bool) {
	switch kind {
	case RecordTypeHeader:
		return headerSchema, true
	case RecordTypeRace:
		return raceSchema, true
	case RecordTypeStarter:
		return starterSchema, true
	case RecordTypeExoticWager:
		return exoticWagerSchema, true
	case RecordTypeAttendance:
		return attendanceSchema, true
	case RecordTypeComment:
		return commentSchema, true
	case RecordTypeFootnote:
		return footnoteSchema, true
	default:
		return Schema{}, false
	}
}

// Schemas returns every layout in file order.
func Schemas() []Schema {
	out := make([]Schema, 0, len(recordTypes))
	for _, kind := range recordTypes {
		s, _ := SchemaFor(kind)
		out = append(out, s)
	}
	return out
}
