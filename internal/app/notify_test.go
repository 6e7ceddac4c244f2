package app

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTerminalNotifierPlain(t *testing.T) {
	var buf bytes.Buffer
	n := NewTerminalNotifier(&buf, ColorOff)

	n.Info("Logged total")
	n.Warn("No variable under cursor")
	n.Error("python language is not supported")

	want := "info: Logged total\nwarning: No variable under cursor\nerror: python language is not supported\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestTerminalNotifierColor(t *testing.T) {
	var buf bytes.Buffer
	n := NewTerminalNotifier(&buf, ColorOn)
	n.Warn("careful")

	if !bytes.Contains(buf.Bytes(), []byte("\x1b[")) {
		t.Errorf("expected ANSI escape in %q", buf.String())
	}
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer
	if UseColor(&buf, ColorAuto) {
		t.Error("auto mode should not colour a non-terminal writer")
	}
	if !UseColor(&buf, ColorOn) {
		t.Error("on mode should always colour")
	}
	if UseColor(&buf, ColorOff) {
		t.Error("off mode should never colour")
	}
}

func TestRecordingNotifier(t *testing.T) {
	r := NewRecordingNotifier()
	tee := teeNotifier{r, NewRecordingNotifier()}

	tee.Warn("a")
	tee.Error("b")

	want := []Notification{{"warning", "a"}, {"error", "b"}}
	if diff := cmp.Diff(want, r.Notifications()); diff != "" {
		t.Errorf("notifications mismatch (-want +got):\n%s", diff)
	}
}
