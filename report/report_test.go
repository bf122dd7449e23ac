package report

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greg-hacke/go-evtinfo/evt"
)

// fakeFile is an evt.File returning fixed values, failing on the accessor
// named by failOn
type fakeFile struct {
	major, minor uint32
	flags        evt.FileFlags
	corrupted    bool
	records      int
	recovered    int
	problems     []string

	failOn string
	err    error
}

func (f *fakeFile) fail(accessor string) error {
	if f.failOn == accessor {
		return f.err
	}
	return nil
}

func (f *fakeFile) Version() (uint32, uint32, error) {
	return f.major, f.minor, f.fail("version")
}

func (f *fakeFile) Flags() (evt.FileFlags, error) {
	return f.flags, f.fail("flags")
}

func (f *fakeFile) IsCorrupted() (bool, error) {
	return f.corrupted, f.fail("corrupted")
}

func (f *fakeFile) NumberOfRecords() (int, error) {
	return f.records, f.fail("records")
}

func (f *fakeFile) NumberOfRecoveredRecords() (int, error) {
	return f.recovered, f.fail("recovered")
}

func (f *fakeFile) Close() error { return nil }

func (f *fakeFile) Problems() []string { return f.problems }

func newTestReporter(buf *bytes.Buffer) (*Reporter, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return New(buf, logger), hook
}

func TestReportPlainSystemLog(t *testing.T) {
	var buf bytes.Buffer
	r, _ := newTestReporter(&buf)

	f := &fakeFile{major: 1, minor: 1, records: 42}
	require.NoError(t, r.Report(f, evt.LogTypeSystem))

	want := "Windows Event Log (EVT) information:\n" +
		"\tVersion\t\t\t\t: 1.1\n" +
		"\tNumber of records\t\t: 42\n" +
		"\tNumber of recovered records\t: 0\n" +
		"\tLog type\t\t\t: System\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestReportFlagsInOrder(t *testing.T) {
	var buf bytes.Buffer
	r, _ := newTestReporter(&buf)

	f := &fakeFile{major: 1, minor: 1, records: 3, recovered: 1, flags: evt.FlagIsFull | evt.FlagHasWrapped}
	require.NoError(t, r.Report(f, evt.LogTypeApplication))

	want := "Windows Event Log (EVT) information:\n" +
		"\tVersion\t\t\t\t: 1.1\n" +
		"\tNumber of records\t\t: 3\n" +
		"\tNumber of recovered records\t: 1\n" +
		"\tLog type\t\t\t: Application\n" +
		"\tFlags:\n" +
		"\t\tHas wrapped\n" +
		"\t\tIs full\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestReportAllFlags(t *testing.T) {
	s := &Summary{
		MajorVersion: 1,
		MinorVersion: 1,
		Flags:        evt.FlagIsDirty | evt.FlagHasWrapped | evt.FlagIsFull | evt.FlagArchive,
	}
	assert.Contains(t, string(Render(s)),
		"\tFlags:\n\t\tIs dirty\n\t\tHas wrapped\n\t\tIs full\n\t\tShould be archived\n\n")
}

func TestReportCorruptedMarker(t *testing.T) {
	var buf bytes.Buffer
	r, hook := newTestReporter(&buf)

	f := &fakeFile{
		major:     1,
		minor:     1,
		corrupted: true,
		flags:     evt.FlagIsDirty,
		problems:  []string{"header size copy mismatch"},
	}
	require.NoError(t, r.Report(f, evt.LogTypeSecurity))

	want := "Windows Event Log (EVT) information:\n" +
		"\tVersion\t\t\t\t: 1.1\n" +
		"\tNumber of records\t\t: 0\n" +
		"\tNumber of recovered records\t: 0\n" +
		"\tLog type\t\t\t: Security\n" +
		"\tIs corrupted\n" +
		"\tFlags:\n" +
		"\t\tIs dirty\n" +
		"\n"
	assert.Equal(t, want, buf.String())

	var warned bool
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			warned = true
			assert.Equal(t, "header size copy mismatch", entry.Data["problem"])
		}
	}
	assert.True(t, warned)
}

func TestReportUnknownLogTypeOmitsLine(t *testing.T) {
	var buf bytes.Buffer
	r, _ := newTestReporter(&buf)

	require.NoError(t, r.Report(&fakeFile{major: 1, minor: 1}, evt.LogTypeUnknown))
	assert.NotContains(t, buf.String(), "Log type")
	assert.Equal(t, "Windows Event Log (EVT) information:\n"+
		"\tVersion\t\t\t\t: 1.1\n"+
		"\tNumber of records\t\t: 0\n"+
		"\tNumber of recovered records\t: 0\n"+
		"\n", buf.String())
}

func TestReportIsAllOrNothing(t *testing.T) {
	for _, accessor := range []string{"version", "flags", "corrupted", "records", "recovered"} {
		t.Run(accessor, func(t *testing.T) {
			var buf bytes.Buffer
			r, _ := newTestReporter(&buf)

			injected := errors.New("read failure")
			f := &fakeFile{major: 1, minor: 1, records: 7, failOn: accessor, err: injected}

			err := r.Report(f, evt.LogTypeSystem)
			require.Error(t, err)
			assert.Equal(t, injected, errors.Cause(err))
			assert.Zero(t, buf.Len())
		})
	}
}

func TestGatherNilFile(t *testing.T) {
	_, err := Gather(nil, evt.LogTypeSystem)
	assert.Error(t, err)

	var buf bytes.Buffer
	r, _ := newTestReporter(&buf)
	assert.Error(t, r.Report(nil, evt.LogTypeSystem))
	assert.Zero(t, buf.Len())
}

func TestGatherLogsFields(t *testing.T) {
	var buf bytes.Buffer
	r, hook := newTestReporter(&buf)

	f := &fakeFile{major: 1, minor: 1, records: 5, flags: evt.FlagArchive}
	require.NoError(t, r.Report(f, evt.LogTypeInternetExplorer))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, "1.1", entry.Data["version"])
	assert.Equal(t, "archive", entry.Data["flags"])
	assert.Equal(t, 5, entry.Data["records"])
	assert.Equal(t, "Internet Explorer", entry.Data["log_type"])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestReportWriteError(t *testing.T) {
	logger, _ := test.NewNullLogger()
	r := New(failingWriter{}, logger)

	err := r.Report(&fakeFile{major: 1, minor: 1}, evt.LogTypeSystem)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write report")
}
