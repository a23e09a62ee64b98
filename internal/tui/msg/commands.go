package msg

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Frame returns a command that sends a FrameMsg for gen after interval.
func Frame(gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Generation: gen, Time: t}
	})
}

// Err returns a command reporting err, or nil for a nil error.
func Err(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	return func() tea.Msg {
		return ErrMsg{Err: err}
	}
}

// ClearErrAfter returns a command that sends ClearErrMsg after d.
func ClearErrAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearErrMsg{}
	})
}
