// Package chatlog appends channel messages to per-channel, per-day text
// files, one tab-separated line per message.
package chatlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const timestampLayout = "2006-01-02 15:04:05"

// Logger writes channel messages under root/<channel>/<date>.txt.
type Logger struct {
	root string
}

func New(root string) *Logger {
	return &Logger{root: root}
}

// LogMessage appends one message line to the channel's file for the
// timestamp's UTC date, creating the channel directory on first use.
func (l *Logger) LogMessage(channel, sender string, ts time.Time, body string) error {
	// Strip the # from channel names so they stay filesystem-friendly.
	dir := filepath.Join(l.root, strings.ReplaceAll(channel, "#", ""))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	name := filepath.Join(dir, ts.UTC().Format("2006-01-02")+".txt")
	f, err := os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("%s\t%s\t%s\n", ts.UTC().Format(timestampLayout), sender, body)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("failed to write log line: %w", err)
	}

	return nil
}
