package app

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color modes accepted by NewTerminalNotifier.
const (
	ColorAuto = "auto"
	ColorOn   = "on"
	ColorOff  = "off"
)

// TerminalNotifier writes notifications as prefixed lines.
type TerminalNotifier struct {
	mu  sync.Mutex
	out io.Writer

	info *color.Color
	warn *color.Color
	fail *color.Color
}

// NewTerminalNotifier creates a notifier writing to out. mode is one of
// auto, on or off; auto colours only when out is a terminal.
func NewTerminalNotifier(out io.Writer, mode string) *TerminalNotifier {
	n := &TerminalNotifier{
		out:  out,
		info: color.New(color.FgCyan),
		warn: color.New(color.FgYellow, color.Bold),
		fail: color.New(color.FgRed, color.Bold),
	}

	enabled := UseColor(out, mode)
	for _, c := range []*color.Color{n.info, n.warn, n.fail} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return n
}

// UseColor reports whether output to w should be coloured in mode.
func UseColor(w io.Writer, mode string) bool {
	switch mode {
	case ColorOn:
		return true
	case ColorOff:
		return false
	}
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Info shows an informational message.
func (n *TerminalNotifier) Info(msg string) {
	n.write(n.info, "info:", msg)
}

// Warn shows a warning.
func (n *TerminalNotifier) Warn(msg string) {
	n.write(n.warn, "warning:", msg)
}

// Error shows an error.
func (n *TerminalNotifier) Error(msg string) {
	n.write(n.fail, "error:", msg)
}

func (n *TerminalNotifier) write(c *color.Color, label, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.out, "%s %s\n", c.Sprint(label), msg)
}

// Notification is one recorded message.
type Notification struct {
	Level   string
	Message string
}

// RecordingNotifier collects notifications in memory.
type RecordingNotifier struct {
	mu    sync.Mutex
	notes []Notification
}

// NewRecordingNotifier creates an empty recording notifier.
func NewRecordingNotifier() *RecordingNotifier {
	return &RecordingNotifier{}
}

// Info records an informational message.
func (r *RecordingNotifier) Info(msg string) { r.add("info", msg) }

// Warn records a warning.
func (r *RecordingNotifier) Warn(msg string) { r.add("warning", msg) }

// Error records an error.
func (r *RecordingNotifier) Error(msg string) { r.add("error", msg) }

func (r *RecordingNotifier) add(level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, Notification{Level: level, Message: msg})
}

// Notifications returns a copy of the recorded notifications.
func (r *RecordingNotifier) Notifications() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.notes...)
}

// teeNotifier forwards to several notifiers.
type teeNotifier []interface {
	Info(string)
	Warn(string)
	Error(string)
}

func (t teeNotifier) Info(msg string) {
	for _, n := range t {
		n.Info(msg)
	}
}

func (t teeNotifier) Warn(msg string) {
	for _, n := range t {
		n.Warn(msg)
	}
}

func (t teeNotifier) Error(msg string) {
	for _, n := range t {
		n.Error(msg)
	}
}
