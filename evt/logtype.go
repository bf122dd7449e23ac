package evt

import (
	"path/filepath"
	"strings"
)

// logTypeFilenames maps the default Windows event log file names to types
var logTypeFilenames = map[string]LogType{
	"appevent.evt": LogTypeApplication,
	"internet.evt": LogTypeInternetExplorer,
	"secevent.evt": LogTypeSecurity,
	"sysevent.evt": LogTypeSystem,
}

// LogTypeFromFilename determines the log type from the base name of path.
// Matching is case-insensitive; unrecognized names yield LogTypeUnknown.
func LogTypeFromFilename(path string) LogType {
	if path == "" {
		return LogTypeUnknown
	}

	// Accept both separators, EVT files are usually copied off Windows hosts
	base := filepath.Base(strings.ReplaceAll(path, `\`, "/"))

	if logType, ok := logTypeFilenames[strings.ToLower(base)]; ok {
		return logType
	}
	return LogTypeUnknown
}
