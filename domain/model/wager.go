package model

// ExoticWagerIndex is a column offset within an exotic wager row.
type ExoticWagerIndex int

// Exotic wager row columns.
const (
	ExoticWagerRecordType     ExoticWagerIndex = 0
	ExoticWagerRaceNumber     ExoticWagerIndex = 1
	ExoticWagerType           ExoticWagerIndex = 2
	ExoticWagerAmount         ExoticWagerIndex = 3
	ExoticWagerWinningNumbers ExoticWagerIndex = 4
	ExoticWagerMinimum        ExoticWagerIndex = 5
	ExoticWagerPoolTotal      ExoticWagerIndex = 6
	ExoticWagerPayoff         ExoticWagerIndex = 7
	ExoticWagerCarryover      ExoticWagerIndex = 8
)

const exoticWagerWidth = 9

var exoticWagerSchema = newSchema(RecordTypeExoticWager, exoticWagerWidth,
	intField("race_number", ExoticWagerRaceNumber),
	textField("wager_type", ExoticWagerType),
	intField("wager_amount", ExoticWagerAmount),
	textField("winning_numbers", ExoticWagerWinningNumbers),
	intField("minimum", ExoticWagerMinimum),
	realField("pool_total", ExoticWagerPoolTotal),
	realField("payoff", ExoticWagerPayoff),
	realField("carryover", ExoticWagerCarryover),
)

// ExoticWager is the payoff of one exotic pool in a race.
type ExoticWager struct {
	RaceNumber     int
	WagerType      string
	WagerAmount    int
	WinningNumbers string
	Minimum        int
	PoolTotal      float64
	Payoff         float64
	Carryover      float64
}

// DecodeExoticWager decodes an exotic wager row.
func DecodeExoticWager(row Row) ExoticWager {
	return ExoticWager{
		RaceNumber:     ExtractInt(row, ExoticWagerRaceNumber),
		WagerType:      ExtractText(row, ExoticWagerType),
		WagerAmount:    ExtractInt(row, ExoticWagerAmount),
		WinningNumbers: ExtractText(row, ExoticWagerWinningNumbers),
		Minimum:        ExtractInt(row, ExoticWagerMinimum),
		PoolTotal:      ExtractReal(row, ExoticWagerPoolTotal),
		Payoff:         ExtractReal(row, ExoticWagerPayoff),
		Carryover:      ExtractReal(row, ExoticWagerCarryover),
	}
}

// Kind implements Record.
func (e ExoticWager) Kind() RecordType {
	return RecordTypeExoticWager
}

// Schema implements Record.
func (e ExoticWager) Schema() Schema {
	return exoticWagerSchema
}

// Values implements Record.
func (e ExoticWager) Values() []any {
	return []any{
		e.RaceNumber,
		e.WagerType,
		e.WagerAmount,
		e.WinningNumbers,
		e.Minimum,
		e.PoolTotal,
		e.Payoff,
		e.Carryover,
	}
}
