// gen-locales generates locale/catalog_gen.go from a locale catalog file.
package main

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"greg-hacke/go-evtinfo/parser"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	app := &cli.App{
		Name:      "gen-locales",
		Usage:     "Generate the Go locale catalog from a catalog file",
		ArgsUsage: "<catalog_file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "catalog_gen.go",
				Usage:   "Output path of the generated Go file",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return cli.ShowAppHelp(c)
			}
			return generate(c.Args().First(), c.String("output"))
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

// generate parses the catalog file and writes the Go source
func generate(catalogPath, outputPath string) error {
	absCatalog, err := filepath.Abs(catalogPath)
	if err != nil {
		return errors.Wrap(err, "resolve catalog path")
	}
	absOutput, err := filepath.Abs(outputPath)
	if err != nil {
		return errors.Wrap(err, "resolve output path")
	}

	logrus.Infof("Parsing locale catalog %s", absCatalog)
	catalog, err := parser.ParseCatalogFile(absCatalog)
	if err != nil {
		return err
	}
	for _, warning := range catalog.Warnings {
		logrus.Warn(warning)
	}

	logrus.WithFields(logrus.Fields{
		"primary":  len(catalog.Primary()),
		"regional": len(catalog.Regional()),
	}).Infof("Generating %s", absOutput)

	return parser.GenerateGoFile(catalog, absOutput)
}
