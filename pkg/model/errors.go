package model

import "github.com/rotisserie/eris"

var (
	// Returned when a seat is still empty but every person has already been seated that day,
	// which happens whenever the sum of the table capacities exceeds the number of persons
	ErrOversubscribed = eris.New("table capacities exceed the number of persons")

	ErrTableFull       = eris.New("table is already full")
	ErrMalformedInput  = eris.New("malformed input")
	ErrInvalidCapacity = eris.New("table capacity must be positive")
)
