package shared

import (
	"os"

	charmlog "github.com/charmbracelet/log"
)

func NewLogger(prefix, level string) *charmlog.Logger {
	lvl, err := charmlog.ParseLevel(level)
	if err != nil {
		lvl = charmlog.InfoLevel
	}
	return charmlog.NewWithOptions(os.Stdout, charmlog.Options{
		Level:           lvl,
		ReportCaller:    lvl == charmlog.DebugLevel,
		ReportTimestamp: false,
		Prefix:          prefix,
	})
}
