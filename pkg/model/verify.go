package model

import (
	"github.com/rotisserie/eris"
)

// Checks the arrangement against the input: one full seating per day, nobody at two tables on the
// same day, symmetric opponents, and opponents being exactly the persons ever seated together
func verify(arrangement Arrangement, modelInput ModelInput) error {
	persons := arrangement.Persons
	template := TablesFromCapacities(modelInput.Capacities)

	if uint64(len(arrangement.Days)) != modelInput.Days {
		return eris.Errorf("expected %d days, got %d", modelInput.Days, len(arrangement.Days))
	}
	if uint64(len(persons)) != modelInput.Persons {
		return eris.Errorf("expected %d persons, got %d", modelInput.Persons, len(persons))
	}

	//** Derive acquaintances from the seating itself
	derived := make([]map[uint64]bool, len(persons))
	for i := range derived {
		derived[i] = make(map[uint64]bool)
	}

	var previousScore uint64
	for i, day := range arrangement.Days {
		if day.Number != uint64(i+1) {
			return eris.Errorf("day at position %d is numbered %d", i, day.Number)
		}
		if len(day.Tables) != len(template) {
			return eris.Errorf("day %d: expected %d tables, got %d", day.Number, len(template), len(day.Tables))
		}
		if day.Score < previousScore {
			return eris.Errorf("day %d: score decreased from %d to %d", day.Number, previousScore, day.Score)
		}
		previousScore = day.Score

		seated := make(map[uint64]bool)
		for j, table := range day.Tables {
			// Check that:
			// - Tables keep the template's index and capacity
			// - Every table is exactly full
			// - Every occupant exists and sits at a single table that day
			if table.Index != template[j].Index || table.Capacity != template[j].Capacity {
				return eris.Errorf("day %d: table %d does not match the template", day.Number, table.Index)
			}
			if uint64(len(table.Occupants)) != table.Capacity {
				return eris.Errorf("day %d: table %d has %d occupants for %d seats", day.Number, table.Index, len(table.Occupants), table.Capacity)
			}
			for occupant := range table.Occupants {
				if occupant >= uint64(len(persons)) {
					return eris.Errorf("day %d: table %d seats unknown person %d", day.Number, table.Index, occupant)
				}
				if seated[occupant] {
					return eris.Errorf("day %d: person %d is seated twice", day.Number, occupant)
				}
				seated[occupant] = true

				for other := range table.Occupants {
					if other != occupant {
						derived[occupant][other] = true
					}
				}
			}
		}
		if uint64(len(seated)) != totalSeats(template) {
			return eris.Errorf("day %d: %d persons seated for %d seats", day.Number, len(seated), totalSeats(template))
		}
	}

	//** Compare stored opponents with derived ones
	for i, person := range persons {
		if person.Id != uint64(i) {
			return eris.Errorf("person at position %d has id %d", i, person.Id)
		}
		if len(person.Opponents) != len(derived[person.Id]) {
			return eris.Errorf("person %d has %d opponents, seating implies %d", person.Id, len(person.Opponents), len(derived[person.Id]))
		}
		for opponent := range person.Opponents {
			if !derived[person.Id][opponent] {
				return eris.Errorf("person %d never sat with opponent %d", person.Id, opponent)
			}
			if !persons[opponent].Opponents[person.Id] {
				return eris.Errorf("opponents %d and %d are not symmetric", person.Id, opponent)
			}
		}
	}

	if len(arrangement.Days) > 0 && previousScore != persons.Score() {
		return eris.Errorf("last day score %d differs from final score %d", previousScore, persons.Score())
	}

	return nil
}
