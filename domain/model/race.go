package model

import "strings"

// RaceIndex is a column offset within a race row.
type RaceIndex int

// Race row columns. Offset 46 is reserved by the format and never read.
const (
	RaceRecordType                RaceIndex = 0
	RaceNumber                    RaceIndex = 1
	RaceBreedIndicator            RaceIndex = 2
	RaceType                      RaceIndex = 3
	RaceRestrictions              RaceIndex = 4
	RaceSexRestriction            RaceIndex = 5
	RaceAgeRestriction            RaceIndex = 6
	RaceDivision                  RaceIndex = 7
	RacePurse                     RaceIndex = 8
	RaceRevertsMoney              RaceIndex = 9
	RaceAvailableMoney            RaceIndex = 10
	RacePaidToOthers              RaceIndex = 11
	RaceAddedGuaranteedFlag       RaceIndex = 12
	RaceAddedMoney                RaceIndex = 13
	RaceIncludes1Type             RaceIndex = 14
	RaceIncludes1Money            RaceIndex = 15
	RaceIncludes2Type             RaceIndex = 16
	RaceIncludes2Money            RaceIndex = 17
	RaceIncludes3Type             RaceIndex = 18
	RaceIncludes3Money            RaceIndex = 19
	RacePlus1Type                 RaceIndex = 20
	RacePlus1Money                RaceIndex = 21
	RacePlus2Type                 RaceIndex = 22
	RacePlus2Money                RaceIndex = 23
	RacePlus3Type                 RaceIndex = 24
	RacePlus3Money                RaceIndex = 25
	RaceMinimumClaimingPrice      RaceIndex = 26
	RaceMaximumClaimingPrice      RaceIndex = 27
	RaceAboutDistanceIndicator    RaceIndex = 28
	RaceDistance                  RaceIndex = 29
	RaceDistanceUnit              RaceIndex = 30
	RaceSurface                   RaceIndex = 31
	RaceCourseType                RaceIndex = 32
	RaceNumberOfHorses            RaceIndex = 33
	RaceGrade                     RaceIndex = 34
	RaceName                      RaceIndex = 35
	RaceAbbreviatedName           RaceIndex = 36
	RacePostTime                  RaceIndex = 37
	RaceNextRaceOffTime           RaceIndex = 38
	RaceOffTime                   RaceIndex = 39
	RaceChuteStarts               RaceIndex = 40
	RaceClassCodes                RaceIndex = 41
	RaceTrackCondition            RaceIndex = 42
	RaceOffTurfIndicator          RaceIndex = 43
	RaceTrackVariant              RaceIndex = 44
	RaceDRFSpeedNumber            RaceIndex = 45
	RaceWindSpeed                 RaceIndex = 47
	RaceWindDirection             RaceIndex = 48
	RaceTemperature               RaceIndex = 49
	RaceFinalTime                 RaceIndex = 50
	RaceFraction1                 RaceIndex = 51
	RaceFraction2                 RaceIndex = 52
	RaceFraction3                 RaceIndex = 53
	RaceFraction4                 RaceIndex = 54
	RaceFraction5                 RaceIndex = 55
	RaceIndividualTime            RaceIndex = 56
	RaceTimerType                 RaceIndex = 57
	RaceWPSPool                   RaceIndex = 58
	RaceStartDescription          RaceIndex = 59
	RaceWeather                   RaceIndex = 60
	RaceTemporaryRailDistance     RaceIndex = 61
	RaceOffTurfDistanceChangeFlag RaceIndex = 62
	RaceOfficialIndicator         RaceIndex = 63
)

const raceWidth = 64

var raceSchema = newSchema(RecordTypeRace, raceWidth,
	intField("race_number", RaceNumber),
	textField("breed_indicator", RaceBreedIndicator),
	textField("race_type", RaceType),
	textField("restrictions", RaceRestrictions),
	textField("sex_restriction", RaceSexRestriction),
	textField("age_restriction", RaceAgeRestriction),
	textField("division", RaceDivision),
	intField("purse", RacePurse),
	intField("reverts_money", RaceRevertsMoney),
	intField("available_money", RaceAvailableMoney),
	intField("paid_to_others", RacePaidToOthers),
	textField("added_guaranteed_flag", RaceAddedGuaranteedFlag),
	intField("added_money", RaceAddedMoney),
	textField("includes1_type", RaceIncludes1Type),
	intField("includes1_money", RaceIncludes1Money),
	textField("includes2_type", RaceIncludes2Type),
	intField("includes2_money", RaceIncludes2Money),
	textField("includes3_type", RaceIncludes3Type),
	intField("includes3_money", RaceIncludes3Money),
	textField("plus1_type", RacePlus1Type),
	intField("plus1_money", RacePlus1Money),
	textField("plus2_type", RacePlus2Type),
	intField("plus2_money", RacePlus2Money),
	textField("plus3_type", RacePlus3Type),
	intField("plus3_money", RacePlus3Money),
	intField("minimum_claiming_price", RaceMinimumClaimingPrice),
	intField("maximum_claiming_price", RaceMaximumClaimingPrice),
	textField("about_distance_indicator", RaceAboutDistanceIndicator),
	intField("distance", RaceDistance),
	textField("distance_unit", RaceDistanceUnit),
	textField("surface", RaceSurface),
	textField("course_type", RaceCourseType),
	intField("number_of_horses", RaceNumberOfHorses),
	textField("race_grade", RaceGrade),
	textField("race_name", RaceName),
	textField("abbreviated_race_name", RaceAbbreviatedName),
	textField("post_time", RacePostTime),
	textField("next_race_off_time", RaceNextRaceOffTime),
	textField("off_time", RaceOffTime),
	textField("chute_starts", RaceChuteStarts),
	textField("race_class_codes", RaceClassCodes),
	textField("track_condition", RaceTrackCondition),
	textField("off_turf_indicator", RaceOffTurfIndicator),
	intField("track_variant", RaceTrackVariant),
	intField("drf_speed_number", RaceDRFSpeedNumber),
	intField("wind_speed", RaceWindSpeed),
	textField("wind_direction", RaceWindDirection),
	intField("race_temperature", RaceTemperature),
	realField("final_time", RaceFinalTime),
	realField("fraction1", RaceFraction1),
	realField("fraction2", RaceFraction2),
	realField("fraction3", RaceFraction3),
	realField("fraction4", RaceFraction4),
	realField("fraction5", RaceFraction5),
	realField("individual_time", RaceIndividualTime),
	textField("timer_type", RaceTimerType),
	intField("wps_pool", RaceWPSPool),
	textField("start_description", RaceStartDescription),
	textField("weather", RaceWeather),
	intField("temporary_rail_distance", RaceTemporaryRailDistance),
	textField("off_turf_distance_change_flag", RaceOffTurfDistanceChangeFlag),
	textField("official_indicator", RaceOfficialIndicator),
)

// Race holds the conditions and running of one race.
// FinalTime and Fraction1..Fraction5 are elapsed seconds.
type Race struct {
	RaceNumber                int
	BreedIndicator            string
	RaceType                  string
	Restrictions              string
	SexRestriction            string
	AgeRestriction            string
	Division                  string
	Purse                     int
	RevertsMoney              int
	AvailableMoney            int
	PaidToOthers              int
	AddedGuaranteedFlag       string
	AddedMoney                int
	Includes1Type             string
	Includes1Money            int
	Includes2Type             string
	Includes2Money            int
	Includes3Type             string
	Includes3Money            int
	Plus1Type                 string
	Plus1Money                int
	Plus2Type                 string
	Plus2Money                int
	Plus3Type                 string
	Plus3Money                int
	MinimumClaimingPrice      int
	MaximumClaimingPrice      int
	AboutDistanceIndicator    string
	Distance                  int
	DistanceUnit              string
	Surface                   string
	CourseType                string
	NumberOfHorses            int
	RaceGrade                 string
	RaceName                  string
	AbbreviatedRaceName       string
	PostTime                  string
	NextRaceOffTime           string
	OffTime                   string
	ChuteStarts               string
	RaceClassCodes            string
	TrackCondition            string
	OffTurfIndicator          string
	TrackVariant              int
	DRFSpeedNumber            int
	WindSpeed                 int
	WindDirection             string
	RaceTemperature           int
	FinalTime                 float64
	Fraction1                 float64
	Fraction2                 float64
	Fraction3                 float64
	Fraction4                 float64
	Fraction5                 float64
	IndividualTime            float64
	TimerType                 string
	WPSPool                   int
	StartDescription          string
	Weather                   string
	TemporaryRailDistance     int
	OffTurfDistanceChangeFlag string
	OfficialIndicator         string
}

// DecodeRace decodes a race row.
func DecodeRace(row Row) Race {
	return Race{
		RaceNumber:                ExtractInt(row, RaceNumber),
		BreedIndicator:            ExtractText(row, RaceBreedIndicator),
		RaceType:                  ExtractText(row, RaceType),
		Restrictions:              ExtractText(row, RaceRestrictions),
		SexRestriction:            ExtractText(row, RaceSexRestriction),
		AgeRestriction:            ExtractText(row, RaceAgeRestriction),
		Division:                  ExtractText(row, RaceDivision),
		Purse:                     ExtractInt(row, RacePurse),
		RevertsMoney:              ExtractInt(row, RaceRevertsMoney),
		AvailableMoney:            ExtractInt(row, RaceAvailableMoney),
		PaidToOthers:              ExtractInt(row, RacePaidToOthers),
		AddedGuaranteedFlag:       ExtractText(row, RaceAddedGuaranteedFlag),
		AddedMoney:                ExtractInt(row, RaceAddedMoney),
		Includes1Type:             ExtractText(row, RaceIncludes1Type),
		Includes1Money:            ExtractInt(row, RaceIncludes1Money),
		Includes2Type:             ExtractText(row, RaceIncludes2Type),
		Includes2Money:            ExtractInt(row, RaceIncludes2Money),
		Includes3Type:             ExtractText(row, RaceIncludes3Type),
		Includes3Money:            ExtractInt(row, RaceIncludes3Money),
		Plus1Type:                 ExtractText(row, RacePlus1Type),
		Plus1Money:                ExtractInt(row, RacePlus1Money),
		Plus2Type:                 ExtractText(row, RacePlus2Type),
		Plus2Money:                ExtractInt(row, RacePlus2Money),
		Plus3Type:                 ExtractText(row, RacePlus3Type),
		Plus3Money:                ExtractInt(row, RacePlus3Money),
		MinimumClaimingPrice:      ExtractInt(row, RaceMinimumClaimingPrice),
		MaximumClaimingPrice:      ExtractInt(row, RaceMaximumClaimingPrice),
		AboutDistanceIndicator:    ExtractText(row, RaceAboutDistanceIndicator),
		Distance:                  ExtractInt(row, RaceDistance),
		DistanceUnit:              ExtractText(row, RaceDistanceUnit),
		Surface:                   ExtractText(row, RaceSurface),
		CourseType:                ExtractText(row, RaceCourseType),
		NumberOfHorses:            ExtractInt(row, RaceNumberOfHorses),
		RaceGrade:                 ExtractText(row, RaceGrade),
		RaceName:                  ExtractText(row, RaceName),
		AbbreviatedRaceName:       ExtractText(row, RaceAbbreviatedName),
		PostTime:                  ExtractText(row, RacePostTime),
		NextRaceOffTime:           ExtractText(row, RaceNextRaceOffTime),
		OffTime:                   ExtractText(row, RaceOffTime),
		ChuteStarts:               ExtractText(row, RaceChuteStarts),
		RaceClassCodes:            ExtractText(row, RaceClassCodes),
		TrackCondition:            ExtractText(row, RaceTrackCondition),
		OffTurfIndicator:          ExtractText(row, RaceOffTurfIndicator),
		TrackVariant:              ExtractInt(row, RaceTrackVariant),
		DRFSpeedNumber:            ExtractInt(row, RaceDRFSpeedNumber),
		WindSpeed:                 ExtractInt(row, RaceWindSpeed),
		WindDirection:             ExtractText(row, RaceWindDirection),
		RaceTemperature:           ExtractInt(row, RaceTemperature),
		FinalTime:                 FinalTimeSeconds(ExtractReal(row, RaceFinalTime)),
		Fraction1:                 FractionSeconds(ExtractReal(row, RaceFraction1)),
		Fraction2:                 FractionSeconds(ExtractReal(row, RaceFraction2)),
		Fraction3:                 FractionSeconds(ExtractReal(row, RaceFraction3)),
		Fraction4:                 FractionSeconds(ExtractReal(row, RaceFraction4)),
		Fraction5:                 FractionSeconds(ExtractReal(row, RaceFraction5)),
		IndividualTime:            ExtractReal(row, RaceIndividualTime),
		TimerType:                 ExtractText(row, RaceTimerType),
		WPSPool:                   ExtractInt(row, RaceWPSPool),
		StartDescription:          ExtractText(row, RaceStartDescription),
		Weather:                   ExtractText(row, RaceWeather),
		TemporaryRailDistance:     ExtractInt(row, RaceTemporaryRailDistance),
		OffTurfDistanceChangeFlag: ExtractText(row, RaceOffTurfDistanceChangeFlag),
		OfficialIndicator:         ExtractText(row, RaceOfficialIndicator),
	}
}

// Kind implements Record.
func (r Race) Kind() RecordType {
	return RecordTypeRace
}

// Schema implements Record.
func (r Race) Schema() Schema {
	return raceSchema
}

// Values implements Record.
func (r Race) Values() []any {
	return []any{
		r.RaceNumber,
		r.BreedIndicator,
		r.RaceType,
		r.Restrictions,
		r.SexRestriction,
		r.AgeRestriction,
		r.Division,
		r.Purse,
		r.RevertsMoney,
		r.AvailableMoney,
		r.PaidToOthers,
		r.AddedGuaranteedFlag,
		r.AddedMoney,
		r.Includes1Type,
		r.Includes1Money,
		r.Includes2Type,
		r.Includes2Money,
		r.Includes3Type,
		r.Includes3Money,
		r.Plus1Type,
		r.Plus1Money,
		r.Plus2Type,
		r.Plus2Money,
		r.Plus3Type,
		r.Plus3Money,
		r.MinimumClaimingPrice,
		r.MaximumClaimingPrice,
		r.AboutDistanceIndicator,
		r.Distance,
		r.DistanceUnit,
		r.Surface,
		r.CourseType,
		r.NumberOfHorses,
		r.RaceGrade,
		r.RaceName,
		r.AbbreviatedRaceName,
		r.PostTime,
		r.NextRaceOffTime,
		r.OffTime,
		r.ChuteStarts,
		r.RaceClassCodes,
		r.TrackCondition,
		r.OffTurfIndicator,
		r.TrackVariant,
		r.DRFSpeedNumber,
		r.WindSpeed,
		r.WindDirection,
		r.RaceTemperature,
		r.FinalTime,
		r.Fraction1,
		r.Fraction2,
		r.Fraction3,
		r.Fraction4,
		r.Fraction5,
		r.IndividualTime,
		r.TimerType,
		r.WPSPool,
		r.StartDescription,
		r.Weather,
		r.TemporaryRailDistance,
		r.OffTurfDistanceChangeFlag,
		r.OfficialIndicator,
	}
}

// Fractions returns the five fractional times in call order.
func (r Race) Fractions() [5]float64 {
	return [5]float64{r.Fraction1, r.Fraction2, r.Fraction3, r.Fraction4, r.Fraction5}
}

// Breed returns the breed indicator as a code.
func (r Race) Breed() BreedIndicator {
	return BreedIndicator(r.BreedIndicator)
}

// SexRestrictionCode returns the sex restriction as a code.
func (r Race) SexRestrictionCode() SexRestriction {
	return SexRestriction(r.SexRestriction)
}

// SurfaceCode returns the surface as a code.
func (r Race) SurfaceCode() SurfaceCode {
	return SurfaceCode(r.Surface)
}

// CourseCode returns the course type as a code.
func (r Race) CourseCode() CourseCode {
	return CourseCode(r.CourseType)
}

// RestrictionCodes splits the restrictions field into one code per letter.
// Blanks are skipped.
func (r Race) RestrictionCodes() []RestrictionCode {
	var codes []RestrictionCode
	for _, c := range strings.TrimSpace(r.Restrictions) {
		if c == ' ' {
			continue
		}
		codes = append(codes, RestrictionCode(string(c)))
	}
	return codes
}
