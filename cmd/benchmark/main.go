package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/limaJavier/seating/pkg/model"
	"github.com/limaJavier/seating/pkg/report"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

const (
	executablePath     = "../../bin/seating"
	instancesDirectory = "../../test/instances/"
	resultsFile        = "benchmark_results.csv"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

type TestMetadata struct {
	Name    string
	Persons uint64
	Tables  int
	Seats   uint64
	Days    uint64
}

type BenchmarkResult struct {
	Test          TestMetadata
	Duration      int64
	Memory        float32
	CpuPercentage int64
	Score         uint64
}

func main() {
	tests := getTests()
	results := make([]BenchmarkResult, 0, len(tests))

	for _, test := range tests {
		logger.Info().Str("test", test.Name).Msg("benchmarking")

		duration, maxMemory, cpuPercentage, score := measure(test.Name)

		results = append(results, BenchmarkResult{
			Test:          test,
			Duration:      duration,
			Memory:        maxMemory,
			CpuPercentage: cpuPercentage,
			Score:         score,
		})
	}

	toCsv(results)
}

func getTests() []TestMetadata {
	testFiles, err := os.ReadDir(instancesDirectory)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot read directory")
	}

	return lo.Map(testFiles, func(file os.DirEntry, _ int) TestMetadata {
		filename := instancesDirectory + file.Name()
		input, err := model.InputFromFile(filename)
		if err != nil {
			logger.Fatal().Err(err).Str("file", filename).Msg("cannot parse input file")
		}

		return TestMetadata{
			Name:    filename,
			Persons: input.Persons,
			Tables:  len(input.Capacities),
			Seats:   lo.Sum(input.Capacities),
			Days:    input.Days,
		}
	})
}

func measure(testFile string) (duration int64, maxMemory float32, cpuPercentage int64, score uint64) {
	cmd := exec.Command("/usr/bin/time", "-v", executablePath, "--file", testFile, "--format", "json")

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stdErr bytes.Buffer
	cmd.Stderr = &stdErr

	cmd.Run()
	if cmd.ProcessState.ExitCode() != 0 {
		logger.Fatal().Str("test", testFile).Str("stderr", stdErr.String()).Msg("an error occurred during the execution of \"seating\"")
	}

	var result report.Report
	if err := json.Unmarshal(stdOut.Bytes(), &result); err != nil {
		logger.Fatal().Err(err).Str("test", testFile).Msg("cannot parse report")
	}
	score = result.Score

	splits := strings.Split(stdErr.String(), "\n")
	getLine := func(substr string) string {
		line, ok := lo.Find(splits, func(line string) bool {
			return strings.Contains(strings.ToLower(line), substr)
		})
		if !ok {
			logger.Fatal().Msgf("Substring \"%v\" could not be found", substr)
		}
		return line
	}

	duration = parseDurationLine(getLine("wall clock"))
	maxMemory = parseMemoryLine(getLine("maximum resident set size"))
	cpuPercentage = parseCpuPercentageLine(getLine("percent of cpu"))

	return duration, maxMemory, cpuPercentage, score
}

func toCsv(results []BenchmarkResult) {
	file, err := os.Create(resultsFile)
	if err != nil {
		logger.Panic().Err(err).Msg("cannot create CSV file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Test", "Persons", "Tables", "Seats", "Days", "Duration(ms)", "Memory(MB)", "CPU(%)", "Score"}
	if err := writer.Write(header); err != nil {
		logger.Panic().Err(err).Msg("cannot write CSV header")
	}

	for _, result := range results {
		record := []string{
			result.Test.Name,
			fmt.Sprintf("%d", result.Test.Persons),
			fmt.Sprintf("%d", result.Test.Tables),
			fmt.Sprintf("%d", result.Test.Seats),
			fmt.Sprintf("%d", result.Test.Days),
			fmt.Sprintf("%d", result.Duration),
			fmt.Sprintf("%.1f", result.Memory),
			fmt.Sprintf("%d", result.CpuPercentage),
			fmt.Sprintf("%d", result.Score),
		}
		if err := writer.Write(record); err != nil {
			logger.Panic().Err(err).Msg("cannot write CSV record")
		}
	}
}

// Returns the trimmed text following marker in a "/usr/bin/time -v" line
func valueAfter(line, marker string) string {
	_, value, found := strings.Cut(line, marker)
	if !found {
		logger.Fatal().Msgf("%q not found in line %q", marker, line)
	}
	return strings.TrimSpace(value)
}

func parseDurationLine(line string) int64 {
	return parseDuration(valueAfter(line, "(h:mm:ss or m:ss):"))
}

// Converts "h:mm:ss.ff" or "m:ss.ff" into milliseconds
func parseDuration(value string) int64 {
	parts := strings.Split(value, ":")
	if len(parts) != 2 && len(parts) != 3 {
		logger.Fatal().Msgf("unexpected duration format: %v", value)
	}

	var minutes int64
	for _, part := range parts[:len(parts)-1] {
		minutes = minutes*60 + lo.Must(strconv.ParseInt(part, 10, 64))
	}
	seconds := lo.Must(strconv.ParseFloat(parts[len(parts)-1], 64))

	return minutes*60*1000 + int64(math.Round(seconds*1000))
}

func parseMemoryLine(line string) float32 {
	kilobytes := lo.Must(strconv.ParseFloat(valueAfter(line, ":"), 32))
	return float32(kilobytes) / 1024
}

func parseCpuPercentageLine(line string) int64 {
	return lo.Must(strconv.ParseInt(strings.TrimSuffix(valueAfter(line, ":"), "%"), 10, 64))
}
