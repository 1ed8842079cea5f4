package main

import (
	"fmt"
	"os"

	"github.com/hamzabinkhalid/dataset-comparator/internal/compare"
	"github.com/hamzabinkhalid/dataset-comparator/internal/db"
	"github.com/hamzabinkhalid/dataset-comparator/internal/keys"
	"github.com/hamzabinkhalid/dataset-comparator/models"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   string(models.FormatText),
		Usage:   "Output format: text, yaml, json, csv",
	}
}

func dataDirFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "data-dir",
		Value: models.DefaultDataDir,
		Usage: "Directory that bare file names are resolved against",
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write the report to this file instead of stdout",
	}
}

func forceFlag() cli.Flag {
	return &cli.BoolFlag{Name: "force", Usage: "Overwrite an existing --output file"}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "dscmp",
		Usage: "Compare the key columns of two CSV files",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Enable debug logging on stderr"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "Only log errors"},
			&cli.StringFlag{Name: "db", Usage: "History database path (default: next to the binary)"},
		},
		Commands: []*cli.Command{
			{
				Name:      "compare",
				Usage:     "Count rows, distinct keys and overlap between two files",
				ArgsUsage: "[left.csv right.csv]",
				Flags: []cli.Flag{
					formatFlag(),
					dataDirFlag(),
					outputFlag(),
					forceFlag(),
					&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML config file"},
					&cli.StringSliceFlag{Name: "left", Usage: "File(s) for the first side, merged when repeated"},
					&cli.StringSliceFlag{Name: "right", Usage: "File(s) for the second side, merged when repeated"},
					&cli.IntFlag{Name: "top", Usage: "Show the N keys contributing most to the total overlap"},
					&cli.BoolFlag{Name: "diff", Usage: "List keys unique to each side and common to both"},
					&cli.BoolFlag{Name: "save", Usage: "Record the run in the history database"},
				},
				Action: compare.CompareAction,
			},
			{
				Name:      "keys",
				Usage:     "Print the key frequencies of one file",
				ArgsUsage: "<file.csv>",
				Flags: []cli.Flag{
					formatFlag(),
					dataDirFlag(),
					outputFlag(),
					forceFlag(),
					&cli.IntFlag{Name: "top", Usage: "Limit to the N most frequent keys (0 = all)"},
				},
				Action: keys.KeysAction,
			},
			{
				Name:  "history",
				Usage: "List recorded comparison runs",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Value: 20, Usage: "Maximum runs to list (0 = all)"},
				},
				Action: db.RunsAction,
				Subcommands: []*cli.Command{
					{
						Name:      "show",
						Usage:     "Show one run (latest when no ID is given)",
						ArgsUsage: "[run-id]",
						Flags:     []cli.Flag{formatFlag()},
						Action:    db.RunAction,
					},
				},
			},
		},
		DefaultCommand: "compare",
	}
}
