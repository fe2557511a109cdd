package model

import (
	"errors"
	"fmt"
)

// ErrUnknownRecordType is returned when a row's tag matches no record kind
var ErrUnknownRecordType = errors.New("unknown record type")

// Record is a decoded chart record of any kind.
type Record interface {
	// Kind returns the record type tag
	Kind() RecordType
	// Schema returns the column layout the record was decoded with
	Schema() Schema
	// Values returns the decoded values in schema field order.
	// Each value is a string, int or float64 matching the field's ColumnType.
	Values() []any
}

// Decoder turns a row into a record of one fixed kind.
type Decoder func(Row) Record

// DecoderFor returns the decoder of a record type.
func DecoderFor(kind RecordType) (Decoder, bool) {
	switch kind {
	case RecordTypeHeader:
		return func(r Row) Record { return DecodeHeader(r) }, true
	case RecordTypeRace:
		return func(r Row) Record { return DecodeRace(r) }, true
	case RecordTypeStarter:
		return func(r Row) Record { return DecodeStarter(r) }, true
	case RecordTypeExoticWager:
		return func(r Row) Record { return DecodeExoticWager(r) }, true
	case RecordTypeAttendance:
		return func(r Row) Record { return DecodeAttendance(r) }, true
	case RecordTypeComment:
		return func(r Row) Record { return DecodeComment(r) }, true
	case RecordTypeFootnote:
		return func(r Row) Record { return DecodeFootnote(r) }, true
	default:
		return nil, false
	}
}

// Decode selects a decoder from the row's tag and applies it.
func Decode(row Row) (Record, error) {
	tag := row.Tag()
	kind, ok := ParseRecordType(tag)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRecordType, tag)
	}
	decode, _ := DecoderFor(kind)
	return decode(row), nil
}
