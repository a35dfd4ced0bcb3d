package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/limaJavier/seating/pkg/model"

	. "github.com/onsi/gomega"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const twoPairsReport = `Day №1
table №1: 1 2
table №2: 3 4

Day №2
table №1: 1 3
table №2: 2 4

Persons:
Person №1: 2 | 1 2
Person №2: 2 | 0 3
Person №3: 2 | 0 3
Person №4: 2 | 1 2

Total score: 8
`

const unevenTablesReport = `Day №1
table №1: 4 5
table №2: 1 2 3

Day №2
table №1: 2 3
table №2: 1 4 5

Persons:
Person №1: 4 | 1 2 3 4
Person №2: 2 | 0 2
Person №3: 2 | 0 1
Person №4: 2 | 0 4
Person №5: 2 | 0 3

Total score: 12
`

func build(t *testing.T, input model.ModelInput) Report {
	t.Helper()
	arrangement, err := model.NewGreedyArranger(zerolog.Nop()).Build(input)
	if err != nil {
		t.Fatalf("cannot build arrangement: %v", err)
	}
	return Build(arrangement)
}

func TestTextReport(t *testing.T) {
	g := NewWithT(t)

	scenarios := map[string]struct {
		input    model.ModelInput
		expected string
	}{
		"two pairs": {
			input:    model.ModelInput{Persons: 4, Days: 2, Capacities: []uint64{2, 2}},
			expected: twoPairsReport,
		},
		"uneven tables": {
			input:    model.ModelInput{Persons: 5, Days: 2, Capacities: []uint64{2, 3}},
			expected: unevenTablesReport,
		},
	}

	for name, scenario := range scenarios {
		var buffer bytes.Buffer
		err := Write(&buffer, build(t, scenario.input), Text)

		g.Expect(err).NotTo(HaveOccurred(), name)
		g.Expect(buffer.String()).To(Equal(scenario.expected), name)
	}
}

func TestTextReportListsOpponentsFromZero(t *testing.T) {
	g := NewWithT(t)
	report := build(t, model.ModelInput{Persons: 2, Days: 1, Capacities: []uint64{2}})

	var buffer bytes.Buffer
	g.Expect(Write(&buffer, report, Text)).To(Succeed())

	// Structured reports keep 1-based opponents
	g.Expect(report.Persons[0].Opponents).To(Equal([]uint64{2}))
	g.Expect(buffer.String()).To(ContainSubstring("table №1: 1 2\n"))
	g.Expect(buffer.String()).To(ContainSubstring("Person №1: 1 | 1\nPerson №2: 1 | 0\n"))
}

func TestTextReportWithoutPersonsOrDays(t *testing.T) {
	g := NewWithT(t)

	var buffer bytes.Buffer
	err := Write(&buffer, build(t, model.ModelInput{}), Text)

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(buffer.String()).To(Equal("Persons:\n\nTotal score: 0\n"))
}

func TestStructuredReports(t *testing.T) {
	g := NewWithT(t)
	report := build(t, model.ModelInput{Persons: 3, Days: 1, Capacities: []uint64{3}})

	var jsonBuffer bytes.Buffer
	g.Expect(Write(&jsonBuffer, report, Json)).To(Succeed())
	var fromJson Report
	g.Expect(json.Unmarshal(jsonBuffer.Bytes(), &fromJson)).To(Succeed())

	var yamlBuffer bytes.Buffer
	g.Expect(Write(&yamlBuffer, report, Yaml)).To(Succeed())
	var fromYaml Report
	g.Expect(yaml.Unmarshal(yamlBuffer.Bytes(), &fromYaml)).To(Succeed())

	for _, decoded := range []Report{fromJson, fromYaml} {
		g.Expect(decoded.Score).To(Equal(uint64(6)))
		g.Expect(decoded.Days).To(HaveLen(1))
		g.Expect(decoded.Days[0].Tables).To(Equal([]Table{{Index: 1, Occupants: []uint64{1, 2, 3}}}))
		g.Expect(decoded.Persons[0]).To(Equal(Person{Id: 1, Count: 2, Opponents: []uint64{2, 3}}))
	}
	g.Expect(jsonBuffer.String()).To(ContainSubstring(`"score": 6`))
}

func TestParseFormat(t *testing.T) {
	g := NewWithT(t)

	for value, expected := range map[string]Format{"text": Text, "JSON": Json, "Yaml": Yaml} {
		format, err := ParseFormat(value)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(format).To(Equal(expected))
	}

	_, err := ParseFormat("xml")
	g.Expect(eris.Is(err, ErrUnknownFormat)).To(BeTrue())
	g.Expect(eris.Is(Write(&bytes.Buffer{}, Report{}, Format("csv")), ErrUnknownFormat)).To(BeTrue())
}
