package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sajee05/effortless-time-tracker/internal/api"
	"github.com/sajee05/effortless-time-tracker/internal/config"
	"github.com/sajee05/effortless-time-tracker/internal/errors"
	"github.com/sajee05/effortless-time-tracker/internal/validation"
)

// timeNow is a variable so command tests can pin the clock
var timeNow = time.Now

// App bundles what every command handler needs: the API facade, the loaded
// configuration and the writer command output goes to.
type App struct {
	api    api.API
	config *config.Config
	out    io.Writer
}

// NewApp creates the CLI application around an assembled API.
func NewApp(apiInstance api.API, conf *config.Config) *App {
	return &App{
		api:    apiInstance,
		config: conf,
		out:    os.Stdout,
	}
}

// printf writes formatted command output.
func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// println writes a line of command output.
func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// parseDay turns a date argument into local midnight. "today" and
// "yesterday" are accepted alongside YYYY-MM-DD.
func parseDay(arg string) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "today":
		return midnight(timeNow()), nil
	case "yesterday":
		return midnight(timeNow()).AddDate(0, 0, -1), nil
	}

	day, err := validation.NewValidator().ParseDay(arg, time.Local)
	if err != nil {
		return time.Time{}, errors.NewValidationError(
			fmt.Sprintf("invalid date %q, want YYYY-MM-DD, today or yesterday", arg), err)
	}
	return day, nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// parseMinutes parses a whole-minute argument. Signs are allowed so that
// adjustments can shrink sessions.
func parseMinutes(arg string) (int64, error) {
	minutes, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		return 0, errors.NewValidationError(
			fmt.Sprintf("invalid minutes %q, want a whole number", arg), err)
	}
	return minutes, nil
}

// parseSessionID parses a session id argument.
func parseSessionID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewValidationError(
			fmt.Sprintf("invalid session id %q", arg), err)
	}
	return id, nil
}

// formatDuration renders a duration as compact hours and minutes, the way
// totals read best: "25m", "2h 05m", "0m".
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Minute)
	hours := int(d / time.Hour)
	minutes := int(d % time.Hour / time.Minute)
	if hours == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %02dm", hours, minutes)
}

// formatClock renders a running elapsed time with second precision,
// "mm:ss" under an hour and "h:mm:ss" above.
func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	hours := total / 3600
	minutes := total % 3600 / 60
	seconds := total % 60
	if hours == 0 {
		return fmt.Sprintf("%02d:%02d", minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
}

// formatDay renders a calendar day.
func formatDay(t time.Time) string {
	return t.Format("2006-01-02")
}

// formatStamp renders a timestamp for the session log.
func formatStamp(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}
