// Package model provides the decoding core for text chart records.
//
// A chart file is a sequence of delimited lines. Each line is one record of
// one of seven kinds, selected by a leading one-character tag. This package
// owns the per-kind column layouts (schemas), the fail-soft scalar
// extractors, the packed time transforms and one decoder per record kind.
// It performs no I/O: callers hand it rows that are already split.
package model

import "strings"

// RecordType is the leading tag that selects a record layout.
type RecordType string

const (
	// RecordTypeHeader tags the per-file header record
	RecordTypeHeader RecordType = "H"
	// RecordTypeRace tags race conditions and results
	RecordTypeRace RecordType = "R"
	// RecordTypeStarter tags starter performance records
	RecordTypeStarter RecordType = "S"
	// RecordTypeExoticWager tags exotic wagering payoffs
	RecordTypeExoticWager RecordType = "E"
	// RecordTypeAttendance tags attendance and handle records
	RecordTypeAttendance RecordType = "A"
	// RecordTypeComment tags comments and race oddities
	RecordTypeComment RecordType = "C"
	// RecordTypeFootnote tags footnote records
	RecordTypeFootnote RecordType = "F"
)

// recordTypes lists every tag in file order.
var recordTypes = []RecordType{
	RecordTypeHeader,
	RecordTypeRace,
	RecordTypeStarter,
	RecordTypeExoticWager,
	RecordTypeAttendance,
	RecordTypeComment,
	RecordTypeFootnote,
}

// RecordTypes returns every known record type in file order.
func RecordTypes() []RecordType {
	out := make([]RecordType, len(recordTypes))
	copy(out, recordTypes)
	return out
}

// ParseRecordType converts a raw tag to a RecordType.
// Surrounding whitespace is ignored; the tag is case sensitive.
func ParseRecordType(tag string) (RecordType, bool) {
	rt := RecordType(strings.TrimSpace(tag))
	for _, known := range recordTypes {
		if rt == known {
			return rt, true
		}
	}
	return "", false
}

// String returns the tag.
func (rt RecordType) String() string {
	return string(rt)
}

// Name returns the table-style name of the record kind.
func (rt RecordType) Name() string {
	switch rt {
	case RecordTypeHeader:
		return "header"
	case RecordTypeRace:
		return "race"
	case RecordTypeStarter:
		return "starter"
	case RecordTypeExoticWager:
		return "exotic_wager"
	case RecordTypeAttendance:
		return "attendance"
	case RecordTypeComment:
		return "comment"
	case RecordTypeFootnote:
		return "footnote"
	default:
		return "unknown"
	}
}

// ColumnType represents the SQL column type of a schema field
type ColumnType int

const (
	// ColumnTypeText represents TEXT column type
	ColumnTypeText ColumnType = iota
	// ColumnTypeInteger represents INTEGER column type
	ColumnTypeInteger
	// ColumnTypeReal represents REAL column type
	ColumnTypeReal
)

const (
	// sqlTypeText is the SQL TEXT type string
	sqlTypeText = "TEXT"
	// sqlTypeInteger is the SQL INTEGER type string
	sqlTypeInteger = "INTEGER"
	// sqlTypeReal is the SQL REAL type string
	sqlTypeReal = "REAL"
)

// String returns the SQL column type string
func (ct ColumnType) String() string {
	switch ct {
	case ColumnTypeText:
		return sqlTypeText
	case ColumnTypeInteger:
		return sqlTypeInteger
	case ColumnTypeReal:
		return sqlTypeReal
	default:
		return sqlTypeText
	}
}

// BreedIndicator identifies the breed a race is written for.
type BreedIndicator string

const (
	// BreedThoroughbred is a thoroughbred race
	BreedThoroughbred BreedIndicator = "TB"
	// BreedQuarterHorse is a quarter horse race
	BreedQuarterHorse BreedIndicator = "QH"
	// BreedArabian is an arabian race
	BreedArabian BreedIndicator = "AR"
	// BreedPaint is a paint race
	BreedPaint BreedIndicator = "PT"
	// BreedMixed is a mixed breeds race
	BreedMixed BreedIndicator = "MX"
)

// Valid reports whether b is a known breed code.
func (b BreedIndicator) Valid() bool {
	switch b {
	case BreedThoroughbred, BreedQuarterHorse, BreedArabian, BreedPaint, BreedMixed:
		return true
	default:
		return false
	}
}

// String returns the code.
func (b BreedIndicator) String() string {
	return string(b)
}

// RestrictionCode is one letter of a race's restriction field.
type RestrictionCode string

const (
	// RestrictionAuction restricts to auction purchases
	RestrictionAuction RestrictionCode = "A"
	// RestrictionRestricted marks a restricted race
	RestrictionRestricted RestrictionCode = "R"
	// RestrictionStateBred restricts to state breds
	RestrictionStateBred RestrictionCode = "S"
)

// Valid reports whether r is a known restriction code.
func (r RestrictionCode) Valid() bool {
	switch r {
	case RestrictionAuction, RestrictionRestricted, RestrictionStateBred:
		return true
	default:
		return false
	}
}

// String returns the code.
func (r RestrictionCode) String() string {
	return string(r)
}

// SexRestriction limits the sexes eligible for a race.
// The empty code means the race is open.
type SexRestriction string

const (
	// SexOpen is an open race
	SexOpen SexRestriction = ""
	// SexColtsGeldings admits colts and geldings
	SexColtsGeldings SexRestriction = "A"
	// SexFilliesMares admits fillies and mares
	SexFilliesMares SexRestriction = "B"
	// SexColts admits colts
	SexColts SexRestriction = "C"
	// SexColtsFillies admits colts and fillies
	SexColtsFillies SexRestriction = "D"
	// SexFilliesGeldings admits fillies and geldings
	SexFilliesGeldings SexRestriction = "E"
	// SexGeldings admits geldings
	SexGeldings SexRestriction = "G"
	// SexHorses admits horses
	SexHorses SexRestriction = "H"
	// SexMares admits mares
	SexMares SexRestriction = "M"
)

// Valid reports whether s is a known sex restriction code.
func (s SexRestriction) Valid() bool {
	switch s {
	case SexOpen, SexColtsGeldings, SexFilliesMares, SexColts, SexColtsFillies,
		SexFilliesGeldings, SexGeldings, SexHorses, SexMares:
		return true
	default:
		return false
	}
}

// String returns the code.
func (s SexRestriction) String() string {
	return string(s)
}

// SurfaceCode is the racing surface.
type SurfaceCode string

const (
	// SurfaceDirt is dirt
	SurfaceDirt SurfaceCode = "D"
	// SurfaceEquitrack is a synthetic all weather surface
	SurfaceEquitrack SurfaceCode = "E"
	// SurfaceTurf is turf
	SurfaceTurf SurfaceCode = "T"
)

// Valid reports whether s is a known surface code.
func (s SurfaceCode) Valid() bool {
	switch s {
	case SurfaceDirt, SurfaceEquitrack, SurfaceTurf:
		return true
	default:
		return false
	}
}

// String returns the code.
func (s SurfaceCode) String() string {
	return string(s)
}

// CourseCode is the course type a race was run on.
type CourseCode string

const (
	// CourseAllWeatherTraining is an all weather training track
	CourseAllWeatherTraining CourseCode = "A"
	// CourseDirt is the main dirt course
	CourseDirt CourseCode = "D"
	// CourseAllWeatherTrack is an all weather track
	CourseAllWeatherTrack CourseCode = "E"
	// CourseDirtTraining is a dirt training track
	CourseDirtTraining CourseCode = "F"
	// CourseInnerTrack is the inner dirt track
	CourseInnerTrack CourseCode = "N"
	// CourseWoodChips is a wood chips course
	CourseWoodChips CourseCode = "W"
	// CourseTimber is a timber course
	CourseTimber CourseCode = "B"
	// CourseDownhillTurf is a downhill turf course
	CourseDownhillTurf CourseCode = "C"
	// CourseTurfTraining is a turf training track
	CourseTurfTraining CourseCode = "G"
	// CourseInnerTurf is the inner turf course
	CourseInnerTurf CourseCode = "I"
	// CourseJump is a jump course
	CourseJump CourseCode = "J"
	// CourseHurdle is a hurdle course
	CourseHurdle CourseCode = "M"
	// CourseOuterTurf is the outer turf course
	CourseOuterTurf CourseCode = "O"
	// CourseSteeplechase is a steeplechase course
	CourseSteeplechase CourseCode = "S"
	// CourseTurf is the main turf course
	CourseTurf CourseCode = "T"
	// CourseHuntOnTurf is a hunt meeting on turf
	CourseHuntOnTurf CourseCode = "U"
)

// Valid reports whether c is a known course code.
func (c CourseCode) Valid() bool {
	switch c {
	case CourseAllWeatherTraining, CourseDirt, CourseAllWeatherTrack, CourseDirtTraining,
		CourseInnerTrack, CourseWoodChips, CourseTimber, CourseDownhillTurf,
		CourseTurfTraining, CourseInnerTurf, CourseJump, CourseHurdle,
		CourseOuterTurf, CourseSteeplechase, CourseTurf, CourseHuntOnTurf:
		return true
	default:
		return false
	}
}

// String returns the code.
func (c CourseCode) String() string {
	return string(c)
}
