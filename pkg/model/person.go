package model

import (
	"slices"

	"github.com/samber/lo"
)

type Person struct {
	Id        uint64
	Opponents map[uint64]bool // Persons this person has shared a table with on any day so far
}

// Returns the person's opponents sorted in ascending order
func (person Person) SortedOpponents() []uint64 {
	opponents := lo.Keys(person.Opponents)
	slices.Sort(opponents)
	return opponents
}

// Persons is the registry of every person in the run, indexed by id
type Persons []Person

func NewPersons(n uint64) Persons {
	persons := make(Persons, n)
	for id := uint64(0); id < n; id++ {
		persons[id] = Person{
			Id:        id,
			Opponents: make(map[uint64]bool),
		}
	}
	return persons
}

// Records that a and b have shared a table. The relation is symmetric and recording it twice is a no-op
func (persons Persons) Acquaint(a, b uint64) {
	if a == b {
		return
	}
	persons[a].Opponents[b] = true
	persons[b].Opponents[a] = true
}

// Sum over all persons of their opponent-set size
func (persons Persons) Score() uint64 {
	return lo.SumBy(persons, func(person Person) uint64 {
		return uint64(len(person.Opponents))
	})
}

