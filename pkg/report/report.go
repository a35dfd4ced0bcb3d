package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/limaJavier/seating/pkg/model"

	"github.com/rotisserie/eris"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	Text Format = "text"
	Json Format = "json"
	Yaml Format = "yaml"
)

var ErrUnknownFormat = eris.New("unknown report format")

var formats = []Format{Text, Json, Yaml}

func ParseFormat(value string) (Format, error) {
	format, ok := lo.Find(formats, func(format Format) bool {
		return string(format) == strings.ToLower(value)
	})
	if !ok {
		return "", eris.Wrapf(ErrUnknownFormat, "%q (allowed: %v)", value, formats)
	}
	return format, nil
}

// All ids in a report are 1-based
type Table struct {
	Index     uint64   `json:"index" yaml:"index"`
	Occupants []uint64 `json:"occupants" yaml:"occupants"`
}

type Day struct {
	Number uint64  `json:"day" yaml:"day"`
	Tables []Table `json:"tables" yaml:"tables"`
	Score  uint64  `json:"score" yaml:"score"`
}

type Person struct {
	Id        uint64   `json:"person" yaml:"person"`
	Count     uint64   `json:"count" yaml:"count"`
	Opponents []uint64 `json:"opponents" yaml:"opponents"`
}

type Report struct {
	Days    []Day    `json:"days" yaml:"days"`
	Persons []Person `json:"persons" yaml:"persons"`
	Score   uint64   `json:"score" yaml:"score"`
}

func Build(arrangement model.Arrangement) Report {
	oneBased := func(id uint64, _ int) uint64 { return id + 1 }

	days := lo.Map(arrangement.Days, func(day model.Day, _ int) Day {
		return Day{
			Number: day.Number,
			Tables: lo.Map(model.SortByIndex(day.Tables), func(table model.Table, _ int) Table {
				return Table{
					Index:     table.Index,
					Occupants: lo.Map(table.SortedOccupants(), oneBased),
				}
			}),
			Score: day.Score,
		}
	})

	persons := lo.Map(arrangement.Persons, func(person model.Person, _ int) Person {
		return Person{
			Id:        person.Id + 1,
			Count:     uint64(len(person.Opponents)),
			Opponents: lo.Map(person.SortedOpponents(), oneBased),
		}
	})

	return Report{
		Days:    days,
		Persons: persons,
		Score:   arrangement.Score(),
	}
}

func Write(writer io.Writer, report Report, format Format) error {
	switch format {
	case Text:
		return writeText(writer, report)
	case Json:
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		return eris.Wrap(encoder.Encode(report), "cannot encode json report")
	case Yaml:
		encoder := yaml.NewEncoder(writer)
		encoder.SetIndent(2)
		if err := encoder.Encode(report); err != nil {
			return eris.Wrap(err, "cannot encode yaml report")
		}
		return eris.Wrap(encoder.Close(), "cannot flush yaml report")
	}
	return eris.Wrapf(ErrUnknownFormat, "%q", format)
}

func writeText(writer io.Writer, report Report) error {
	var builder strings.Builder

	for _, day := range report.Days {
		fmt.Fprintf(&builder, "Day №%d\n", day.Number)
		for _, table := range day.Tables {
			fmt.Fprintf(&builder, "table №%d:%v\n", table.Index, joinIds(table.Occupants))
		}
		builder.WriteString("\n")
	}

	// The text protocol lists opponents by 0-based id, unlike persons and occupants
	builder.WriteString("Persons:\n")
	for _, person := range report.Persons {
		opponents := lo.Map(person.Opponents, func(id uint64, _ int) uint64 { return id - 1 })
		fmt.Fprintf(&builder, "Person №%d: %d |%v\n", person.Id, person.Count, joinIds(opponents))
	}
	fmt.Fprintf(&builder, "\nTotal score: %d\n", report.Score)

	_, err := io.WriteString(writer, builder.String())
	return eris.Wrap(err, "cannot write text report")
}

// Renders ids as " a b c", the leading space separating them from the label
func joinIds(ids []uint64) string {
	return strings.Join(lo.Map(ids, func(id uint64, _ int) string { return fmt.Sprintf(" %d", id) }), "")
}
