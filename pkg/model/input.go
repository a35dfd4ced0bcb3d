package model

import (
	"bufio"
	"encoding/json"
	"io"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

type ModelInput struct {
	Persons    uint64   `mapstructure:"persons"`
	Days       uint64   `mapstructure:"days"`
	Capacities []uint64 `mapstructure:"capacities"` // One entry per table, in display order
}

// Upper bounds on the run size; larger values are rejected before anything is allocated
const (
	MaxPersons uint64 = 1 << 20
	MaxDays    uint64 = 1 << 16
)

func (input ModelInput) Validate() error {
	if input.Persons > MaxPersons {
		return eris.Wrapf(ErrMalformedInput, "person count %d exceeds %d", input.Persons, MaxPersons)
	}
	if input.Days > MaxDays {
		return eris.Wrapf(ErrMalformedInput, "day count %d exceeds %d", input.Days, MaxDays)
	}
	for i, capacity := range input.Capacities {
		if capacity == 0 {
			return eris.Wrapf(ErrInvalidCapacity, "table %d", i+1)
		}
	}
	return nil
}

// Chooses the decoder according to the file extension; anything that is not JSON or YAML is read as text
func InputFromFile(file string) (ModelInput, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".json":
		return InputFromJson(file)
	case ".yaml", ".yml":
		return InputFromYaml(file)
	}

	reader, err := os.Open(file)
	if err != nil {
		return ModelInput{}, eris.Wrapf(err, "cannot open input file %v", file)
	}
	defer reader.Close()
	return InputFromText(reader)
}

func InputFromJson(file string) (ModelInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return ModelInput{}, eris.Wrapf(err, "cannot read input file %v", file)
	}
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return ModelInput{}, eris.Wrapf(ErrMalformedInput, "invalid json: %v", err)
	}
	return decodeInput(inputJson)
}

func InputFromYaml(file string) (ModelInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return ModelInput{}, eris.Wrapf(err, "cannot read input file %v", file)
	}
	var inputYaml map[string]any
	if err := yaml.Unmarshal(bytes, &inputYaml); err != nil {
		return ModelInput{}, eris.Wrapf(ErrMalformedInput, "invalid yaml: %v", err)
	}
	return decodeInput(inputYaml)
}

func decodeInput(raw map[string]any) (ModelInput, error) {
	for _, key := range []string{"persons", "days", "capacities"} {
		if _, ok := raw[key]; !ok {
			return ModelInput{}, eris.Wrapf(ErrMalformedInput, "missing key %q", key)
		}
	}

	var input ModelInput
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &input,
		DecodeHook: integralFloatHook,
	})
	if err != nil {
		return ModelInput{}, eris.Wrap(err, "cannot build input decoder")
	}
	if err := decoder.Decode(raw); err != nil {
		return ModelInput{}, eris.Wrapf(ErrMalformedInput, "%v", err)
	}
	return input, nil
}

// JSON numbers arrive as float64; only whole, non-negative values may become counts
func integralFloatHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Uint64 || (from.Kind() != reflect.Float64 && from.Kind() != reflect.Float32) {
		return data, nil
	}
	value := reflect.ValueOf(data).Float()
	if value < 0 || value != math.Trunc(value) || value >= math.MaxUint64 {
		return nil, eris.Errorf("%v is not a non-negative integer", value)
	}
	return uint64(value), nil
}

// Reads whitespace-separated integers: persons, tables and days, followed by one capacity per table
func InputFromText(reader io.Reader) (ModelInput, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanWords)

	position := 0
	next := func(name string) (uint64, error) {
		position++
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, eris.Wrapf(err, "cannot read %v", name)
			}
			return 0, eris.Wrapf(ErrMalformedInput, "missing %v (token %d)", name, position)
		}
		value, err := strconv.ParseUint(scanner.Text(), 10, 64)
		if err != nil {
			return 0, eris.Wrapf(ErrMalformedInput, "%v must be a non-negative integer, got %q (token %d)", name, scanner.Text(), position)
		}
		return value, nil
	}

	persons, err := next("person count")
	if err != nil {
		return ModelInput{}, err
	}
	tables, err := next("table count")
	if err != nil {
		return ModelInput{}, err
	}
	days, err := next("day count")
	if err != nil {
		return ModelInput{}, err
	}

	capacities := make([]uint64, 0, min(tables, 1024))
	for i := uint64(0); i < tables; i++ {
		capacity, err := next("capacity of table " + strconv.FormatUint(i+1, 10))
		if err != nil {
			return ModelInput{}, err
		}
		capacities = append(capacities, capacity)
	}

	return ModelInput{
		Persons:    persons,
		Days:       days,
		Capacities: capacities,
	}, nil
}

