package main

import (
	"os"

	"github.com/limaJavier/seating/pkg/model"
	"github.com/limaJavier/seating/pkg/report"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

// Exit code used when the built arrangement does not pass verification
const verificationFailedExitCode = 15

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := newApp(logger).Run(os.Args); err != nil {
		logger.Fatal().Err(err).Msg("seating failed")
	}
}

func newApp(logger zerolog.Logger) *cli.App {
	return &cli.App{
		Name:  "seating",
		Usage: "builds daily seating plans that keep introducing people who have not shared a table yet",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Path to the input file (.json, .yaml/.yml or whitespace-separated text); if empty, text is read from the Standard Input",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Path to the file where the report will be written; if empty, it'll be written into the Standard Output",
			},
			&cli.StringFlag{
				Name:    "format",
				Value:   string(report.Text),
				Usage:   `Report format. Allowed values are: "text", "json" and "yaml"`,
				EnvVars: []string{"SEATING_FORMAT"},
			},
			&cli.BoolFlag{
				Name:  "verify",
				Usage: "Verify the arrangement before writing the report",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "Log every arranged day",
				EnvVars: []string{"SEATING_VERBOSE"},
			},
		},
		Action: func(ctx *cli.Context) error {
			level := zerolog.InfoLevel
			if ctx.Bool("verbose") {
				level = zerolog.DebugLevel
			}
			return run(ctx, logger.Level(level))
		},
	}
}

func run(ctx *cli.Context, logger zerolog.Logger) error {
	// Validate arguments
	format, err := report.ParseFormat(ctx.String("format"))
	if err != nil {
		return err
	}

	// Extract input
	input, err := readInput(ctx.String("file"))
	if err != nil {
		return eris.Wrap(err, "cannot parse input")
	}

	// Build arrangement
	arranger := model.NewGreedyArranger(logger)
	arrangement, err := arranger.Build(input)
	if err != nil {
		return eris.Wrap(err, "an error occurred during arrangement construction")
	}

	// Verify arrangement correctness
	if ctx.Bool("verify") && !arranger.Verify(arrangement, input) {
		return cli.Exit("arrangement verification failed", verificationFailedExitCode)
	}

	// Write report to the out file or, if empty, to the Standard Output
	if outFile := ctx.String("out"); outFile != "" {
		return writeReport(outFile, report.Build(arrangement), format)
	}
	return report.Write(os.Stdout, report.Build(arrangement), format)
}

// Closing flushes the file, so its error counts as a failed write
func writeReport(outFile string, rep report.Report, format report.Format) (err error) {
	file, err := os.Create(outFile)
	if err != nil {
		return eris.Wrapf(err, "cannot create output file %v", outFile)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = eris.Wrapf(closeErr, "cannot close output file %v", outFile)
		}
	}()

	return report.Write(file, rep, format)
}

func readInput(file string) (model.ModelInput, error) {
	if file == "" {
		return model.InputFromText(os.Stdin)
	}
	return model.InputFromFile(file)
}
