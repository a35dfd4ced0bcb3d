package model

import (
	"github.com/rotisserie/eris"
)

// Returns the occupants of the table that the person has not shared a table with yet
func newOpponents(table *Table, person Person) []uint64 {
	opponents := make([]uint64, 0, len(table.Occupants))
	for occupant := range table.Occupants {
		if !person.Opponents[occupant] {
			opponents = append(opponents, occupant)
		}
	}
	return opponents
}

// Seats the best unused person at the next open seat of the table and returns its id.
//
// The best person is the one gaining the most new opponents; among those, the one with the
// fewest opponents so far. Candidates are scanned in ascending id order starting from the first
// unused person, and a candidate only replaces the current best when it is strictly better, so
// remaining ties go to the lowest id.
func sitPerson(table *Table, persons Persons, used map[uint64]bool) (uint64, error) {
	if table.Full() {
		return 0, eris.Wrapf(ErrTableFull, "table %d has %d seats", table.Index, table.Capacity)
	}

	//** Find first unused person
	first := -1
	for i := range persons {
		if !used[persons[i].Id] {
			first = i
			break
		}
	}
	if first == -1 {
		return 0, eris.Wrapf(ErrOversubscribed, "no unseated person left for table %d (%d persons, %d seated)", table.Index, len(persons), len(table.Occupants))
	}

	//** Select best person
	best := first
	bestOpponents := newOpponents(table, persons[first])
	for i := first + 1; i < len(persons); i++ {
		person := persons[i]
		if used[person.Id] {
			continue
		}

		opponents := newOpponents(table, person)
		if len(opponents) > len(bestOpponents) ||
			(len(opponents) == len(bestOpponents) && len(person.Opponents) < len(persons[best].Opponents)) {
			best = i
			bestOpponents = opponents
		}
	}

	//** Seat best person
	person := persons[best]
	table.Occupants[person.Id] = true
	used[person.Id] = true
	for _, opponent := range bestOpponents {
		persons.Acquaint(person.Id, opponent)
	}

	return person.Id, nil
}
