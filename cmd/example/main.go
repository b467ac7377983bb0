package main

import (
	"fmt"
	"log"
	"openhours-service/internal/pkg/dateresolver"
	"openhours-service/internal/pkg/openhours"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v2"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

func main() {
	app := cli.NewApp()
	app.Name = "openhours"
	app.Version = fmt.Sprintf("%s (%s)", Version, Tag)
	app.Usage = "evaluate open hours statements for one day"
	app.Description = `Statements are written as OPEN|CLOSE|LABEL, e.g. "9:00|17:00|Front desk".
   OPEN and CLOSE accept times of day, keywords such as noon or midnight, dates
   understood by dateparse, or @<epoch> for an absolute instant. LABEL is optional.`
	app.Flags = []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "open",
			Aliases: []string{"o"},
			Usage:   "open hours statement, may be repeated",
		},
		&cli.StringSliceFlag{
			Name:    "control",
			Aliases: []string{"c"},
			Usage:   "control hours statement restricting the open hours, may be repeated",
		},
		&cli.IntFlag{
			Name:  "interval",
			Value: openhours.DefaultInterval,
			Usage: "slot width in minutes, must divide a day evenly",
		},
		&cli.StringFlag{
			Name:  "format",
			Value: openhours.DefaultFormat,
			Usage: "time format of the rendered ranges",
		},
		&cli.StringFlag{
			Name:  "timezone",
			Value: "Local",
			Usage: "IANA zone the statements are read in",
		},
		&cli.BoolFlag{
			Name:  "track-date",
			Usage: "anchor the result to a calendar day",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "print the ranges as JSON",
		},
	}
	app.Action = evaluate

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func evaluate(c *cli.Context) error {
	location, err := time.LoadLocation(c.String("timezone"))
	if err != nil {
		return fmt.Errorf("cannot load timezone: %w", err)
	}

	calculator, err := openhours.New(dateresolver.New(location, nil), c.Int("interval"), c.Bool("track-date"))
	if err != nil {
		return err
	}
	if !calculator.SetFormat(c.String("format")) {
		return fmt.Errorf("format %q has no time format characters", c.String("format"))
	}

	opens, err := parseStatements(c.StringSlice("open"))
	if err != nil {
		return err
	}
	controls, err := parseStatements(c.StringSlice("control"))
	if err != nil {
		return err
	}
	for _, s := range opens {
		calculator.AddOpenHours(s.open, s.close, s.label)
	}
	for _, s := range controls {
		calculator.AddControlHours(s.open, s.close, s.label)
	}

	hours := calculator.Hours()
	if c.Bool("json") {
		out, err := json.MarshalIndent(hours, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, string(out))
		return nil
	}

	if hours.HasDate() {
		fmt.Fprintf(c.App.Writer, "%s: ", hours.Date)
	}
	fmt.Fprintf(c.App.Writer, "%s [%s]\n", hours, calculator.Status())
	return nil
}
