package model

// StarterIndex is a column offset within a starter row.
type StarterIndex int

// Starter row columns.
const (
	StarterRecordType                 StarterIndex = 0
	StarterRaceNumber                 StarterIndex = 1
	StarterHorseKey                   StarterIndex = 2
	StarterHorseName                  StarterIndex = 3
	StarterFoalingDate                StarterIndex = 4
	StarterAreaFoaled                 StarterIndex = 5
	StarterBreed                      StarterIndex = 6
	StarterSex                        StarterIndex = 7
	StarterColor                      StarterIndex = 8
	StarterDamName                    StarterIndex = 9
	StarterDamYearOfBirth             StarterIndex = 10
	StarterDamBreedType               StarterIndex = 11
	StarterSireName                   StarterIndex = 12
	StarterSireYearOfBirth            StarterIndex = 13
	StarterSireBreedType              StarterIndex = 14
	StarterBroodmareSireName          StarterIndex = 15
	StarterBroodmareSireYearOfBirth   StarterIndex = 16
	StarterBroodmareSireBreedType     StarterIndex = 17
	StarterSiresSireName              StarterIndex = 18
	StarterSiresSireYearOfBirth       StarterIndex = 19
	StarterSiresSireBreedType         StarterIndex = 20
	StarterWeightCarried              StarterIndex = 21
	StarterHorseWeight                StarterIndex = 22
	StarterMedications                StarterIndex = 23
	StarterEquipment                  StarterIndex = 24
	StarterEarnings                   StarterIndex = 25
	StarterJockeyLastName             StarterIndex = 26
	StarterJockeyFirstName            StarterIndex = 27
	StarterJockeyMiddleName           StarterIndex = 28
	StarterApprenticeType             StarterIndex = 29
	StarterTrainerLastName            StarterIndex = 30
	StarterTrainerFirstName           StarterIndex = 31
	StarterTrainerMiddleName          StarterIndex = 32
	StarterOwnerLastName              StarterIndex = 33
	StarterOwnerFirstName             StarterIndex = 34
	StarterOwnerMiddleName            StarterIndex = 35
	StarterOdds                       StarterIndex = 36
	StarterNonbettingIndicator        StarterIndex = 37
	StarterCoupledFlag                StarterIndex = 38
	StarterCoupledFinish              StarterIndex = 39
	StarterFavoriteIndicator          StarterIndex = 40
	StarterPostPosition               StarterIndex = 41
	StarterProgramNumber              StarterIndex = 42
	StarterPositionAtStart            StarterIndex = 43
	StarterPositionAtPOC1             StarterIndex = 44
	StarterPositionAtPOC2             StarterIndex = 45
	StarterPositionAtPOC3             StarterIndex = 46
	StarterPositionAtPOC4             StarterIndex = 47
	StarterPositionAtPOC5             StarterIndex = 48
	StarterOriginalFinish             StarterIndex = 49
	StarterOfficialFinish             StarterIndex = 50
	StarterLengthAheadAtPOC1          StarterIndex = 51
	StarterLengthAheadAtPOC2          StarterIndex = 52
	StarterLengthAheadAtPOC3          StarterIndex = 53
	StarterLengthAheadAtPOC4          StarterIndex = 54
	StarterLengthAheadAtPOC5          StarterIndex = 55
	StarterLengthAheadAtFinish        StarterIndex = 56
	StarterLengthBehindAtPOC1         StarterIndex = 57
	StarterLengthBehindAtPOC2         StarterIndex = 58
	StarterLengthBehindAtPOC3         StarterIndex = 59
	StarterLengthBehindAtPOC4         StarterIndex = 60
	StarterLengthBehindAtPOC5         StarterIndex = 61
	StarterLengthBehindAtFinish       StarterIndex = 62
	StarterDeadHeatFlag               StarterIndex = 63
	StarterClaimingPrice              StarterIndex = 64
	StarterShortComment               StarterIndex = 65
	StarterLongComment                StarterIndex = 66
	StarterWinPayoff                  StarterIndex = 67
	StarterPlacePayoff                StarterIndex = 68
	StarterShowPayoff                 StarterIndex = 69
	StarterClaimedIndicator           StarterIndex = 70
	StarterClaimingTrainerKey         StarterIndex = 71
	StarterClaimingTrainerType        StarterIndex = 72
	StarterClaimingTrainerLastName    StarterIndex = 73
	StarterClaimingTrainerFirstName   StarterIndex = 74
	StarterClaimingTrainerMiddleName  StarterIndex = 75
	StarterClaimingOwnerKey           StarterIndex = 76
	StarterClaimingOwnerType          StarterIndex = 77
	StarterClaimingOwnerLastName      StarterIndex = 78
	StarterClaimingOwnerFirstName     StarterIndex = 79
	StarterClaimingOwnerMiddleName    StarterIndex = 80
	StarterScratchReasonCode          StarterIndex = 81
	StarterDisqualificationIndicator  StarterIndex = 82
	StarterDisqualificationPlacing    StarterIndex = 83
	StarterTroubleIndicator           StarterIndex = 84
	StarterCorrectedWeightIndicator   StarterIndex = 85
	StarterOverWeight                 StarterIndex = 86
	StarterIndividualTime             StarterIndex = 87
	StarterSpeedIndex                 StarterIndex = 88
	StarterBreederName                StarterIndex = 89
	StarterJockeyKey                  StarterIndex = 90
	StarterTrainerKey                 StarterIndex = 91
)

const starterWidth = 92

var starterSchema = newSchema(RecordTypeStarter, starterWidth,
	intField("race_number", StarterRaceNumber),
	textField("horse_key", StarterHorseKey),
	textField("horse_name", StarterHorseName),
	textField("foaling_date", StarterFoalingDate),
	textField("area_foaled", StarterAreaFoaled),
	textField("breed", StarterBreed),
	textField("sex", StarterSex),
	textField("color", StarterColor),
	textField("dam_name", StarterDamName),
	textField("dam_year_of_birth", StarterDamYearOfBirth),
	textField("dam_breed_type", StarterDamBreedType),
	textField("sire_name", StarterSireName),
	textField("sire_year_of_birth", StarterSireYearOfBirth),
	textField("sire_breed_type", StarterSireBreedType),
	textField("broodmare_sire_name", StarterBroodmareSireName),
	textField("broodmare_sire_year_of_birth", StarterBroodmareSireYearOfBirth),
	textField("broodmare_sire_breed_type", StarterBroodmareSireBreedType),
	textField("sires_sire_name", StarterSiresSireName),
	textField("sires_sire_year_of_birth", StarterSiresSireYearOfBirth),
	textField("sires_sire_breed_type", StarterSiresSireBreedType),
	intField("weight_carried", StarterWeightCarried),
	intField("horse_weight", StarterHorseWeight),
	textField("medications", StarterMedications),
	textField("equipment", StarterEquipment),
	intField("earnings", StarterEarnings),
	textField("jockey_last_name", StarterJockeyLastName),
	textField("jockey_first_name", StarterJockeyFirstName),
	textField("jockey_middle_name", StarterJockeyMiddleName),
	textField("apprentice_type", StarterApprenticeType),
	textField("trainer_last_name", StarterTrainerLastName),
	textField("trainer_first_name", StarterTrainerFirstName),
	textField("trainer_middle_name", StarterTrainerMiddleName),
	textField("owner_last_name", StarterOwnerLastName),
	textField("owner_first_name", StarterOwnerFirstName),
	textField("owner_middle_name", StarterOwnerMiddleName),
	realField("odds", StarterOdds),
	textField("nonbetting_indicator", StarterNonbettingIndicator),
	textField("coupled_flag", StarterCoupledFlag),
	textField("coupled_finish", StarterCoupledFinish),
	textField("favorite_indicator", StarterFavoriteIndicator),
	intField("post_position", StarterPostPosition),
	textField("program_number", StarterProgramNumber),
	intField("position_at_start", StarterPositionAtStart),
	intField("position_at_poc1", StarterPositionAtPOC1),
	intField("position_at_poc2", StarterPositionAtPOC2),
	intField("position_at_poc3", StarterPositionAtPOC3),
	intField("position_at_poc4", StarterPositionAtPOC4),
	intField("position_at_poc5", StarterPositionAtPOC5),
	intField("original_finish", StarterOriginalFinish),
	intField("official_finish", StarterOfficialFinish),
	realField("length_ahead_at_poc1", StarterLengthAheadAtPOC1),
	realField("length_ahead_at_poc2", StarterLengthAheadAtPOC2),
	realField("length_ahead_at_poc3", StarterLengthAheadAtPOC3),
	realField("length_ahead_at_poc4", StarterLengthAheadAtPOC4),
	realField("length_ahead_at_poc5", StarterLengthAheadAtPOC5),
	realField("length_ahead_at_finish", StarterLengthAheadAtFinish),
	realField("length_behind_at_poc1", StarterLengthBehindAtPOC1),
	realField("length_behind_at_poc2", StarterLengthBehindAtPOC2),
	realField("length_behind_at_poc3", StarterLengthBehindAtPOC3),
	realField("length_behind_at_poc4", StarterLengthBehindAtPOC4),
	realField("length_behind_at_poc5", StarterLengthBehindAtPOC5),
	realField("length_behind_at_finish", StarterLengthBehindAtFinish),
	textField("dead_heat_flag", StarterDeadHeatFlag),
	realField("claiming_price", StarterClaimingPrice),
	textField("short_comment", StarterShortComment),
	textField("long_comment", StarterLongComment),
	realField("win_payoff", StarterWinPayoff),
	realField("place_payoff", StarterPlacePayoff),
	realField("show_payoff", StarterShowPayoff),
	textField("claimed_indicator", StarterClaimedIndicator),
	intField("claiming_trainer_key", StarterClaimingTrainerKey),
	textField("claiming_trainer_type", StarterClaimingTrainerType),
	textField("claiming_trainer_last_name", StarterClaimingTrainerLastName),
	textField("claiming_trainer_first_name", StarterClaimingTrainerFirstName),
	textField("claiming_trainer_middle_name", StarterClaimingTrainerMiddleName),
	intField("claiming_owner_key", StarterClaimingOwnerKey),
	textField("claiming_owner_type", StarterClaimingOwnerType),
	textField("claiming_owner_last_name", StarterClaimingOwnerLastName),
	textField("claiming_owner_first_name", StarterClaimingOwnerFirstName),
	textField("claiming_owner_middle_name", StarterClaimingOwnerMiddleName),
	textField("scratch_reason_code", StarterScratchReasonCode),
	textField("disqualification_indicator", StarterDisqualificationIndicator),
	intField("disqualification_placing", StarterDisqualificationPlacing),
	textField("trouble_indicator", StarterTroubleIndicator),
	textField("corrected_weight_indicator", StarterCorrectedWeightIndicator),
	intField("over_weight", StarterOverWeight),
	realField("individual_time", StarterIndividualTime),
	intField("speed_index", StarterSpeedIndex),
	textField("breeder_name", StarterBreederName),
	intField("jockey_key", StarterJockeyKey),
	intField("trainer_key", StarterTrainerKey),
)

// Starter is one horse's performance in a race.
//
// Positions and lengths are given at up to five points of call (POC).
// Numeric fields that were blank in the file are 0 (integers) or NaN (reals).
type Starter struct {
	RaceNumber                int
	HorseKey                  string
	HorseName                 string
	FoalingDate               string
	AreaFoaled                string
	Breed                     string
	Sex                       string
	Color                     string
	DamName                   string
	DamYearOfBirth            string
	DamBreedType              string
	SireName                  string
	SireYearOfBirth           string
	SireBreedType             string
	BroodmareSireName         string
	BroodmareSireYearOfBirth  string
	BroodmareSireBreedType    string
	SiresSireName             string
	SiresSireYearOfBirth      string
	SiresSireBreedType        string
	WeightCarried             int
	HorseWeight               int
	Medications               string
	Equipment                 string
	Earnings                  int
	JockeyLastName            string
	JockeyFirstName           string
	JockeyMiddleName          string
	ApprenticeType            string
	TrainerLastName           string
	TrainerFirstName          string
	TrainerMiddleName         string
	OwnerLastName             string
	OwnerFirstName            string
	OwnerMiddleName           string
	Odds                      float64
	NonbettingIndicator       string
	CoupledFlag               string
	CoupledFinish             string
	FavoriteIndicator         string
	PostPosition              int
	ProgramNumber             string
	PositionAtStart           int
	PositionAtPOC1            int
	PositionAtPOC2            int
	PositionAtPOC3            int
	PositionAtPOC4            int
	PositionAtPOC5            int
	OriginalFinish            int
	OfficialFinish            int
	LengthAheadAtPOC1         float64
	LengthAheadAtPOC2         float64
	LengthAheadAtPOC3         float64
	LengthAheadAtPOC4         float64
	LengthAheadAtPOC5         float64
	LengthAheadAtFinish       float64
	LengthBehindAtPOC1        float64
	LengthBehindAtPOC2        float64
	LengthBehindAtPOC3        float64
	LengthBehindAtPOC4        float64
	LengthBehindAtPOC5        float64
	LengthBehindAtFinish      float64
	DeadHeatFlag              string
	ClaimingPrice             float64
	ShortComment              string
	LongComment               string
	WinPayoff                 float64
	PlacePayoff               float64
	ShowPayoff                float64
	ClaimedIndicator          string
	ClaimingTrainerKey        int
	ClaimingTrainerType       string
	ClaimingTrainerLastName   string
	ClaimingTrainerFirstName  string
	ClaimingTrainerMiddleName string
	ClaimingOwnerKey          int
	ClaimingOwnerType         string
	ClaimingOwnerLastName     string
	ClaimingOwnerFirstName    string
	ClaimingOwnerMiddleName   string
	ScratchReasonCode         string
	DisqualificationIndicator string
	DisqualificationPlacing   int
	TroubleIndicator          string
	CorrectedWeightIndicator  string
	OverWeight                int
	IndividualTime            float64
	SpeedIndex                int
	BreederName               string
	JockeyKey                 int
	TrainerKey                int
}

// DecodeStarter decodes a starter row.
func DecodeStarter(row Row) Starter {
	return Starter{
		RaceNumber:                ExtractInt(row, StarterRaceNumber),
		HorseKey:                  ExtractText(row, StarterHorseKey),
		HorseName:                 ExtractText(row, StarterHorseName),
		FoalingDate:               ExtractText(row, StarterFoalingDate),
		AreaFoaled:                ExtractText(row, StarterAreaFoaled),
		Breed:                     ExtractText(row, StarterBreed),
		Sex:                       ExtractText(row, StarterSex),
		Color:                     ExtractText(row, StarterColor),
		DamName:                   ExtractText(row, StarterDamName),
		DamYearOfBirth:            ExtractText(row, StarterDamYearOfBirth),
		DamBreedType:              ExtractText(row, StarterDamBreedType),
		SireName:                  ExtractText(row, StarterSireName),
		SireYearOfBirth:           ExtractText(row, StarterSireYearOfBirth),
		SireBreedType:             ExtractText(row, StarterSireBreedType),
		BroodmareSireName:         ExtractText(row, StarterBroodmareSireName),
		BroodmareSireYearOfBirth:  ExtractText(row, StarterBroodmareSireYearOfBirth),
		BroodmareSireBreedType:    ExtractText(row, StarterBroodmareSireBreedType),
		SiresSireName:             ExtractText(row, StarterSiresSireName),
		SiresSireYearOfBirth:      ExtractText(row, StarterSiresSireYearOfBirth),
		SiresSireBreedType:        ExtractText(row, StarterSiresSireBreedType),
		WeightCarried:             ExtractInt(row, StarterWeightCarried),
		HorseWeight:               ExtractInt(row, StarterHorseWeight),
		Medications:               ExtractText(row, StarterMedications),
		Equipment:                 ExtractText(row, StarterEquipment),
		Earnings:                  ExtractInt(row, StarterEarnings),
		JockeyLastName:            ExtractText(row, StarterJockeyLastName),
		JockeyFirstName:           ExtractText(row, StarterJockeyFirstName),
		JockeyMiddleName:          ExtractText(row, StarterJockeyMiddleName),
		ApprenticeType:            ExtractText(row, StarterApprenticeType),
		TrainerLastName:           ExtractText(row, StarterTrainerLastName),
		TrainerFirstName:          ExtractText(row, StarterTrainerFirstName),
		TrainerMiddleName:         ExtractText(row, StarterTrainerMiddleName),
		OwnerLastName:             ExtractText(row, StarterOwnerLastName),
		OwnerFirstName:            ExtractText(row, StarterOwnerFirstName),
		OwnerMiddleName:           ExtractText(row, StarterOwnerMiddleName),
		Odds:                      ExtractReal(row, StarterOdds),
		NonbettingIndicator:       ExtractText(row, StarterNonbettingIndicator),
		CoupledFlag:               ExtractText(row, StarterCoupledFlag),
		CoupledFinish:             ExtractText(row, StarterCoupledFinish),
		FavoriteIndicator:         ExtractText(row, StarterFavoriteIndicator),
		PostPosition:              ExtractInt(row, StarterPostPosition),
		ProgramNumber:             ExtractText(row, StarterProgramNumber),
		PositionAtStart:           ExtractInt(row, StarterPositionAtStart),
		PositionAtPOC1:            ExtractInt(row, StarterPositionAtPOC1),
		PositionAtPOC2:            ExtractInt(row, StarterPositionAtPOC2),
		PositionAtPOC3:            ExtractInt(row, StarterPositionAtPOC3),
		PositionAtPOC4:            ExtractInt(row, StarterPositionAtPOC4),
		PositionAtPOC5:            ExtractInt(row, StarterPositionAtPOC5),
		OriginalFinish:            ExtractInt(row, StarterOriginalFinish),
		OfficialFinish:            ExtractInt(row, StarterOfficialFinish),
		LengthAheadAtPOC1:         ExtractReal(row, StarterLengthAheadAtPOC1),
		LengthAheadAtPOC2:         ExtractReal(row, StarterLengthAheadAtPOC2),
		LengthAheadAtPOC3:         ExtractReal(row, StarterLengthAheadAtPOC3),
		LengthAheadAtPOC4:         ExtractReal(row, StarterLengthAheadAtPOC4),
		LengthAheadAtPOC5:         ExtractReal(row, StarterLengthAheadAtPOC5),
		LengthAheadAtFinish:       ExtractReal(row, StarterLengthAheadAtFinish),
		LengthBehindAtPOC1:        ExtractReal(row, StarterLengthBehindAtPOC1),
		LengthBehindAtPOC2:        ExtractReal(row, StarterLengthBehindAtPOC2),
		LengthBehindAtPOC3:        ExtractReal(row, StarterLengthBehindAtPOC3),
		LengthBehindAtPOC4:        ExtractReal(row, StarterLengthBehindAtPOC4),
		LengthBehindAtPOC5:        ExtractReal(row, StarterLengthBehindAtPOC5),
		LengthBehindAtFinish:      ExtractReal(row, StarterLengthBehindAtFinish),
		DeadHeatFlag:              ExtractText(row, StarterDeadHeatFlag),
		ClaimingPrice:             ExtractReal(row, StarterClaimingPrice),
		ShortComment:              ExtractText(row, StarterShortComment),
		LongComment:               ExtractText(row, StarterLongComment),
		WinPayoff:                 ExtractReal(row, StarterWinPayoff),
		PlacePayoff:               ExtractReal(row, StarterPlacePayoff),
		ShowPayoff:                ExtractReal(row, StarterShowPayoff),
		ClaimedIndicator:          ExtractText(row, StarterClaimedIndicator),
		ClaimingTrainerKey:        ExtractInt(row, StarterClaimingTrainerKey),
		ClaimingTrainerType:       ExtractText(row, StarterClaimingTrainerType),
		ClaimingTrainerLastName:   ExtractText(row, StarterClaimingTrainerLastName),
		ClaimingTrainerFirstName:  ExtractText(row, StarterClaimingTrainerFirstName),
		ClaimingTrainerMiddleName: ExtractText(row, StarterClaimingTrainerMiddleName),
		ClaimingOwnerKey:          ExtractInt(row, StarterClaimingOwnerKey),
		ClaimingOwnerType:         ExtractText(row, StarterClaimingOwnerType),
		ClaimingOwnerLastName:     ExtractText(row, StarterClaimingOwnerLastName),
		ClaimingOwnerFirstName:    ExtractText(row, StarterClaimingOwnerFirstName),
		ClaimingOwnerMiddleName:   ExtractText(row, StarterClaimingOwnerMiddleName),
		ScratchReasonCode:         ExtractText(row, StarterScratchReasonCode),
		DisqualificationIndicator: ExtractText(row, StarterDisqualificationIndicator),
		DisqualificationPlacing:   ExtractInt(row, StarterDisqualificationPlacing),
		TroubleIndicator:          ExtractText(row, StarterTroubleIndicator),
		CorrectedWeightIndicator:  ExtractText(row, StarterCorrectedWeightIndicator),
		OverWeight:                ExtractInt(row, StarterOverWeight),
		IndividualTime:            ExtractReal(row, StarterIndividualTime),
		SpeedIndex:                ExtractInt(row, StarterSpeedIndex),
		BreederName:               ExtractText(row, StarterBreederName),
		JockeyKey:                 ExtractInt(row, StarterJockeyKey),
		TrainerKey:                ExtractInt(row, StarterTrainerKey),
	}
}

// Kind implements Record.
func (s Starter) Kind() RecordType {
	return RecordTypeStarter
}

// Schema implements Record.
func (s Starter) Schema() Schema {
	return starterSchema
}

// Values implements Record.
func (s Starter) Values() []any {
	return []any{
		s.RaceNumber,
		s.HorseKey,
		s.HorseName,
		s.FoalingDate,
		s.AreaFoaled,
		s.Breed,
		s.Sex,
		s.Color,
		s.DamName,
		s.DamYearOfBirth,
		s.DamBreedType,
		s.SireName,
		s.SireYearOfBirth,
		s.SireBreedType,
		s.BroodmareSireName,
		s.BroodmareSireYearOfBirth,
		s.BroodmareSireBreedType,
		s.SiresSireName,
		s.SiresSireYearOfBirth,
		s.SiresSireBreedType,
		s.WeightCarried,
		s.HorseWeight,
		s.Medications,
		s.Equipment,
		s.Earnings,
		s.JockeyLastName,
		s.JockeyFirstName,
		s.JockeyMiddleName,
		s.ApprenticeType,
		s.TrainerLastName,
		s.TrainerFirstName,
		s.TrainerMiddleName,
		s.OwnerLastName,
		s.OwnerFirstName,
		s.OwnerMiddleName,
		s.Odds,
		s.NonbettingIndicator,
		s.CoupledFlag,
		s.CoupledFinish,
		s.FavoriteIndicator,
		s.PostPosition,
		s.ProgramNumber,
		s.PositionAtStart,
		s.PositionAtPOC1,
		s.PositionAtPOC2,
		s.PositionAtPOC3,
		s.PositionAtPOC4,
		s.PositionAtPOC5,
		s.OriginalFinish,
		s.OfficialFinish,
		s.LengthAheadAtPOC1,
		s.LengthAheadAtPOC2,
		s.LengthAheadAtPOC3,
		s.LengthAheadAtPOC4,
		s.LengthAheadAtPOC5,
		s.LengthAheadAtFinish,
		s.LengthBehindAtPOC1,
		s.LengthBehindAtPOC2,
		s.LengthBehindAtPOC3,
		s.LengthBehindAtPOC4,
		s.LengthBehindAtPOC5,
		s.LengthBehindAtFinish,
		s.DeadHeatFlag,
		s.ClaimingPrice,
		s.ShortComment,
		s.LongComment,
		s.WinPayoff,
		s.PlacePayoff,
		s.ShowPayoff,
		s.ClaimedIndicator,
		s.ClaimingTrainerKey,
		s.ClaimingTrainerType,
		s.ClaimingTrainerLastName,
		s.ClaimingTrainerFirstName,
		s.ClaimingTrainerMiddleName,
		s.ClaimingOwnerKey,
		s.ClaimingOwnerType,
		s.ClaimingOwnerLastName,
		s.ClaimingOwnerFirstName,
		s.ClaimingOwnerMiddleName,
		s.ScratchReasonCode,
		s.DisqualificationIndicator,
		s.DisqualificationPlacing,
		s.TroubleIndicator,
		s.CorrectedWeightIndicator,
		s.OverWeight,
		s.IndividualTime,
		s.SpeedIndex,
		s.BreederName,
		s.JockeyKey,
		s.TrainerKey,
	}
}

// Scratched reports whether the horse was withdrawn before the start.
func (s Starter) Scratched() bool {
	return s.ScratchReasonCode != ""
}
