package model

// Day is one complete seating across all tables
type Day struct {
	Number uint64  // 1-based
	Tables []Table // Sorted by index
	Score  uint64  // Total score right after the day was seated
}

type Arrangement struct {
	Days    []Day
	Persons Persons // Final opponent sets
}

func (arrangement Arrangement) Score() uint64 {
	return arrangement.Persons.Score()
}

type Arranger interface {
	Build(modelInput ModelInput) (Arrangement, error)

	Verify(arrangement Arrangement, modelInput ModelInput) bool
}
