package model

import (
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

type greedyArranger struct {
	logger zerolog.Logger
}

func NewGreedyArranger(logger zerolog.Logger) Arranger {
	return &greedyArranger{
		logger: logger.With().Str("arranger", "greedy").Logger(),
	}
}

func (arranger *greedyArranger) Build(modelInput ModelInput) (Arrangement, error) {
	if err := modelInput.Validate(); err != nil {
		return Arrangement{}, err
	}

	//** Initialize run state
	template := SortBySeats(TablesFromCapacities(modelInput.Capacities))
	persons := NewPersons(modelInput.Persons)
	days := make([]Day, 0, min(modelInput.Days, 1024))

	//** Arrange every day on top of the previous days' acquaintances
	for number := uint64(1); number <= modelInput.Days; number++ {
		tables, err := arrangeDay(template, persons)
		if err != nil {
			return Arrangement{}, eris.Wrapf(err, "cannot arrange day %d", number)
		}

		day := Day{
			Number: number,
			Tables: tables,
			Score:  persons.Score(),
		}
		days = append(days, day)

		arranger.logger.Debug().
			Uint64("day", day.Number).
			Uint64("score", day.Score).
			Msg("day arranged")
	}

	arranger.logger.Info().
		Uint64("days", modelInput.Days).
		Uint64("persons", modelInput.Persons).
		Int("tables", len(template)).
		Uint64("score", persons.Score()).
		Msg("arrangement built")

	return Arrangement{
		Days:    days,
		Persons: persons,
	}, nil
}

func (arranger *greedyArranger) Verify(arrangement Arrangement, modelInput ModelInput) bool {
	if err := verify(arrangement, modelInput); err != nil {
		arranger.logger.Warn().Err(err).Msg("arrangement verification failed")
		return false
	}
	return true
}

// Seats every table of a single day. Tables are filled in the template's order and share one set
// of used persons, so nobody sits at two tables on the same day. Returns the tables sorted by index.
func arrangeDay(template []Table, persons Persons) ([]Table, error) {
	tables := CloneForDay(template)
	used := make(map[uint64]bool, len(persons))

	for i := range tables {
		for j := uint64(0); j < tables[i].Capacity; j++ {
			if _, err := sitPerson(&tables[i], persons, used); err != nil {
				return nil, err
			}
		}
	}

	return SortByIndex(tables), nil
}
