package model

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
)

const malformedDirectory = "../../test/malformed/"

func TestInputFromText(t *testing.T) {
	input, err := InputFromText(strings.NewReader("20 4 5\n6 5\n5 4\n"))

	assert.Nil(t, err)
	assert.Equal(t, ModelInput{Persons: 20, Days: 5, Capacities: []uint64{6, 5, 5, 4}}, input)
}

func TestInputFromTextWithoutTables(t *testing.T) {
	input, err := InputFromText(strings.NewReader("3 0 2"))

	assert.Nil(t, err)
	assert.Equal(t, uint64(3), input.Persons)
	assert.Equal(t, uint64(2), input.Days)
	assert.Empty(t, input.Capacities)
}

func TestInputFromTextMalformed(t *testing.T) {
	scenarios := []string{
		"",
		"4 2",
		"4 2 x 2 2",
		"4 2 1 2",
		"4 -2 1 2 2",
		"4 2 1 2 2.5",
	}

	for _, scenario := range scenarios {
		_, err := InputFromText(strings.NewReader(scenario))
		assert.Truef(t, eris.Is(err, ErrMalformedInput), "input %q", scenario)
	}
}

func TestInputFromFile(t *testing.T) {
	scenarios := map[string]ModelInput{
		instancesDirectory + "two_pairs.txt":     {Persons: 4, Days: 2, Capacities: []uint64{2, 2}},
		instancesDirectory + "conference.json":   {Persons: 30, Days: 6, Capacities: []uint64{8, 6, 6, 5, 5}},
		instancesDirectory + "retreat.yaml":      {Persons: 16, Days: 3, Capacities: []uint64{4, 4, 4, 4}},
		instancesDirectory + "uneven_tables.txt": {Persons: 20, Days: 5, Capacities: []uint64{6, 5, 5, 4}},
	}

	for file, expected := range scenarios {
		input, err := InputFromFile(file)

		assert.Nil(t, err)
		assert.Equal(t, expected, input, file)
	}
}

func TestInputFromFileMalformed(t *testing.T) {
	for _, file := range []string{"not_a_number.txt", "missing_capacity.txt", "missing_key.json", "fractional.json", "negative_days.yaml"} {
		_, err := InputFromFile(malformedDirectory + file)
		assert.Truef(t, eris.Is(err, ErrMalformedInput), "file %v", file)
	}

	_, err := InputFromFile(malformedDirectory + "does_not_exist.txt")
	assert.NotNil(t, err)
	assert.False(t, eris.Is(err, ErrMalformedInput))
}

func TestInputFromJsonRejectsFractions(t *testing.T) {
	//** Arrange
	file := filepath.Join(t.TempDir(), "input.json")
	assert.Nil(t, os.WriteFile(file, []byte(`{"persons": 4, "days": 1, "capacities": [2, 2.5]}`), 0666))

	//** Act
	_, err := InputFromJson(file)

	//** Assert
	assert.True(t, eris.Is(err, ErrMalformedInput))
}

func TestInputFromJsonAcceptsWholeNumbers(t *testing.T) {
	file := filepath.Join(t.TempDir(), "input.json")
	assert.Nil(t, os.WriteFile(file, []byte(`{"persons": 4.0, "days": 2, "capacities": [2, 2e0]}`), 0666))

	input, err := InputFromJson(file)

	assert.Nil(t, err)
	assert.Equal(t, ModelInput{Persons: 4, Days: 2, Capacities: []uint64{2, 2}}, input)
}

func TestValidate(t *testing.T) {
	assert.Nil(t, ModelInput{Persons: 2, Days: 1, Capacities: []uint64{1, 1}}.Validate())
	assert.Nil(t, ModelInput{Persons: MaxPersons, Days: MaxDays}.Validate())
	assert.True(t, eris.Is(ModelInput{Persons: 2, Days: 1, Capacities: []uint64{1, 0}}.Validate(), ErrInvalidCapacity))
	assert.True(t, eris.Is(ModelInput{Persons: MaxPersons + 1, Days: 1}.Validate(), ErrMalformedInput))
	assert.True(t, eris.Is(ModelInput{Persons: 2, Days: MaxDays + 1}.Validate(), ErrMalformedInput))
}
