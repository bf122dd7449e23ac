package report

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"greg-hacke/go-evtinfo/evt"
)

// Reporter writes file summaries to an output stream
type Reporter struct {
	output io.Writer
	logger logrus.FieldLogger
}

// New creates a reporter writing to output. A nil output selects stdout and a
// nil logger selects the standard logrus logger.
func New(output io.Writer, logger logrus.FieldLogger) *Reporter {
	if output == nil {
		output = os.Stdout
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Reporter{
		output: output,
		logger: logger,
	}
}

// Report gathers the summary of f and writes it. Nothing is written unless
// every field was retrieved.
func (r *Reporter) Report(f evt.File, logType evt.LogType) error {
	summary, err := Gather(f, logType)
	if err != nil {
		return err
	}

	r.logger.WithFields(logrus.Fields{
		"version":   fmt.Sprintf("%d.%d", summary.MajorVersion, summary.MinorVersion),
		"flags":     summary.Flags.String(),
		"corrupted": summary.IsCorrupted,
		"records":   summary.RecordCount,
		"recovered": summary.RecoveredRecordCount,
		"log_type":  summary.LogType.String(),
	}).Debug("Gathered file summary")

	if d, ok := f.(evt.Diagnostics); ok && summary.IsCorrupted {
		for _, problem := range d.Problems() {
			r.logger.WithField("problem", problem).Warn("File header is inconsistent")
		}
	}

	if _, err := summary.WriteTo(r.output); err != nil {
		return errors.Wrap(err, "write report")
	}
	return nil
}
