package notify

import (
	"fmt"
	"strings"

	"github.com/gen2brain/beeep"
)

const appName = "tlog"

func Info(title, message string) error {
	return beeep.Notify(title, message, "")
}

func Done(message string) error {
	return beeep.Alert(appName, message, "")
}

func FormatStarted(project, task string) (string, string) {
	return "Timer started", fmt.Sprintf("%s / %s", project, task)
}

func FormatClosed(record string) string {
	return "Logged: " + strings.TrimSpace(record)
}

// Desktop sends a desktop notification for every committed entry.
type Desktop struct{}

func (Desktop) Started(project, task string) error {
	title, msg := FormatStarted(project, task)
	return Info(title, msg)
}

func (Desktop) Closed(record string) error {
	return Done(FormatClosed(record))
}
