// evtinfo shows information about Windows Event Log (EVT) files and resolves
// Windows locale identifiers.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/language"

	"greg-hacke/go-evtinfo/config"
	"greg-hacke/go-evtinfo/evt"
	"greg-hacke/go-evtinfo/locale"
	"greg-hacke/go-evtinfo/report"
)

// Build information, set with -ldflags "-X main.Version=..."
var (
	// Version is the release version of evtinfo
	Version = "development"

	// BuildTime is the time the binary was built
	BuildTime = "unknown"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

// newApp builds the CLI writing reports to out
func newApp(out io.Writer) *cli.App {
	var cfg *config.Config

	return &cli.App{
		Name:        "evtinfo",
		Usage:       "Show information about a Windows Event Log (EVT) file",
		ArgsUsage:   "<file.evt>",
		Writer:      out,
		HideVersion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "Read settings from a dotenv file (default: ./.env when present)",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   "Set log level (panic, fatal, error, warn, info, debug, trace)",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log the gathered fields",
			},
			&cli.StringFlag{
				Name:  "locale-catalog",
				Value: locale.CatalogPrimary,
				Usage: "Locale catalog used by the locale command (primary, extended)",
			},
		},
		Before: func(c *cli.Context) error {
			loaded, err := loadConfig(c, out)
			if err != nil {
				return err
			}
			level, _ := loaded.Level()
			logrus.SetLevel(level)
			cfg = loaded
			return nil
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return cli.ShowAppHelp(c)
			}
			return runInfo(cfg, c.Args().First())
		},
		Commands: []*cli.Command{
			{
				Name:      "info",
				Usage:     "Print the file summary of an EVT file",
				ArgsUsage: "<file.evt>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return errors.New("info expects exactly one file")
					}
					return runInfo(cfg, c.Args().First())
				},
			},
			{
				Name:      "locale",
				Usage:     "Resolve language tags and locale identifiers",
				ArgsUsage: "<tag|identifier>...",
				Action: func(c *cli.Context) error {
					if c.NArg() < 1 {
						return errors.New("locale expects at least one tag or identifier")
					}
					return runLocale(cfg, c.Args().Slice())
				},
			},
			{
				Name:  "version",
				Usage: "Print version information",
				Action: func(c *cli.Context) error {
					fmt.Fprintf(cfg.Output, "evtinfo %s (built %s)\n", Version, BuildTime)
					return nil
				},
			},
		},
	}
}

// loadConfig loads settings from the environment and applies explicit flags
func loadConfig(c *cli.Context, out io.Writer) (*config.Config, error) {
	cfg, err := config.Load(c.String("env-file"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("verbose") {
		cfg.Verbose = c.Bool("verbose")
	}
	if c.IsSet("locale-catalog") {
		cfg.LocaleCatalog = c.String("locale-catalog")
	}
	cfg.Output = out

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runInfo prints the summary report of the file at path
func runInfo(cfg *config.Config, path string) error {
	logger := logrus.WithField("file", path)

	file, err := evt.Open(path)
	if err != nil {
		return errors.Wrap(err, "unable to open input file")
	}

	logType := evt.LogTypeFromFilename(path)
	logger.WithField("log_type", logType.String()).Debug("Determined log type from filename")

	reportErr := report.New(cfg.Output, logger).Report(file, logType)

	if err := file.Close(); err != nil && reportErr == nil {
		return errors.Wrap(err, "unable to close input file")
	}
	if reportErr != nil {
		return errors.Wrap(reportErr, "unable to print file information")
	}
	return nil
}

// runLocale resolves each argument and prints one line per argument
func runLocale(cfg *config.Config, args []string) error {
	table, err := locale.ForCatalog(cfg.LocaleCatalog)
	if err != nil {
		return err
	}

	for _, arg := range args {
		entry, ok := resolveLocaleArg(table, arg)
		if !ok {
			fmt.Fprintf(cfg.Output, "%s\tnot supported\n", arg)
			continue
		}
		fmt.Fprintf(cfg.Output, "%s\t0x%04x\t%s\t%s\n", arg, entry.ID, entry.Tag, entry.Name)
	}
	return nil
}

// resolveLocaleArg treats numeric arguments as identifiers and anything else
// as a language tag
func resolveLocaleArg(table *locale.Table, arg string) (locale.Entry, bool) {
	if id, err := strconv.ParseUint(arg, 0, 32); err == nil {
		return table.Entry(uint32(id))
	}

	id, ok := table.Lookup(arg)
	if !ok {
		// Deprecated two-letter codes such as "iw" resolve through their
		// replacement, which must itself be a two-letter code
		tag, err := language.Parse(arg)
		if err != nil {
			return locale.Entry{}, false
		}
		base, _ := tag.Base()
		if len(base.String()) != 2 {
			return locale.Entry{}, false
		}
		if id, ok = table.Lookup(base.String()); !ok {
			return locale.Entry{}, false
		}
	}
	return table.Entry(id)
}
