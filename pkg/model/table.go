package model

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
)

type Table struct {
	Index     uint64          // 1-based, fixed by input order
	Capacity  uint64          // Number of seats
	Occupants map[uint64]bool // Persons seated at the table on the current day
}

func (table Table) Full() bool {
	return uint64(len(table.Occupants)) >= table.Capacity
}

func (table Table) SortedOccupants() []uint64 {
	occupants := lo.Keys(table.Occupants)
	slices.Sort(occupants)
	return occupants
}

// Builds one empty table per capacity, assigning 1-based indices in input order
func TablesFromCapacities(capacities []uint64) []Table {
	return lo.Map(capacities, func(capacity uint64, i int) Table {
		return Table{
			Index:     uint64(i + 1),
			Capacity:  capacity,
			Occupants: make(map[uint64]bool),
		}
	})
}

// Instantiates the template for a new day: same indices and capacities, no occupants
func CloneForDay(template []Table) []Table {
	return lo.Map(template, func(table Table, _ int) Table {
		return Table{
			Index:     table.Index,
			Capacity:  table.Capacity,
			Occupants: make(map[uint64]bool),
		}
	})
}

// Returns the tables in filling order: descending capacity, ascending index among equal capacities
func SortBySeats(tables []Table) []Table {
	sorted := slices.Clone(tables)
	slices.SortStableFunc(sorted, func(a, b Table) int {
		if byCapacity := cmp.Compare(b.Capacity, a.Capacity); byCapacity != 0 {
			return byCapacity
		}
		return cmp.Compare(a.Index, b.Index)
	})
	return sorted
}

// Returns the tables in reporting order: ascending index
func SortByIndex(tables []Table) []Table {
	sorted := slices.Clone(tables)
	slices.SortFunc(sorted, func(a, b Table) int {
		return cmp.Compare(a.Index, b.Index)
	})
	return sorted
}

func totalSeats(tables []Table) uint64 {
	return lo.SumBy(tables, func(table Table) uint64 { return table.Capacity })
}
