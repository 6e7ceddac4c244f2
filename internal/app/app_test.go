package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/easylog/internal/config"
	"github.com/dshills/easylog/internal/easylog"
	"github.com/dshills/easylog/internal/engine/buffer"
)

func newTestApp(t *testing.T) (*Application, *RecordingNotifier, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	notes := NewRecordingNotifier()
	app, err := New(Options{
		Config:   config.Default(),
		Logger:   NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &logs}),
		Notifier: notes,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return app, notes, &logs
}

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLogAndSave(t *testing.T) {
	app, notes, logs := newTestApp(t)
	path := writeSource(t, "main.ts", "const x = foo.bar.baz;\nrun(x);\n")

	out, err := app.Log(context.Background(), Cursor(path, buffer.Point{Line: 0, Column: 15}))
	if err != nil {
		t.Fatalf("Log: %v", err)
	}

	if out.Target != "foo.bar" {
		t.Errorf("Target = %q, want foo.bar", out.Target)
	}
	if out.LanguageID != "typescript" {
		t.Errorf("LanguageID = %q, want typescript", out.LanguageID)
	}
	if !out.Changed {
		t.Error("Changed = false, want true")
	}
	want := "const x = foo.bar.baz;\nconsole.log(\"====== foo.bar =====\", foo.bar);\n\nrun(x);\n"
	if diff := cmp.Diff(want, out.Content); diff != "" {
		t.Errorf("content mismatch (-want +got):\n%s", diff)
	}
	if len(notes.Notifications()) != 0 {
		t.Errorf("unexpected notifications: %v", notes.Notifications())
	}

	// Not written until saved.
	disk, _ := os.ReadFile(path)
	if string(disk) != "const x = foo.bar.baz;\nrun(x);\n" {
		t.Errorf("file written before Save: %q", disk)
	}
	if err := app.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	disk, _ = os.ReadFile(path)
	if diff := cmp.Diff(want, string(disk)); diff != "" {
		t.Errorf("saved file mismatch (-want +got):\n%s", diff)
	}

	if !strings.Contains(logs.String(), "invocation="+out.Invocation) {
		t.Errorf("log output missing invocation id %s:\n%s", out.Invocation, logs.String())
	}
}

func TestLogPreservesCRLF(t *testing.T) {
	app, _, _ := newTestApp(t)
	path := writeSource(t, "a.js", "let total = 1;\r\nuse(total);\r\n")

	out, err := app.Log(context.Background(), Request{
		Path:   path,
		Anchor: buffer.Point{Line: 0, Column: 4},
		Head:   buffer.Point{Line: 0, Column: 9},
	})
	if err != nil {
		t.Fatalf("Log: %v", err)
	}
	want := "let total = 1;\r\nconsole.log(\"====== total =====\", total);\r\n\r\nuse(total);\r\n"
	if diff := cmp.Diff(want, out.Content); diff != "" {
		t.Errorf("content mismatch (-want +got):\n%s", diff)
	}
	if out.Mode != "selection" {
		t.Errorf("Mode = %q, want selection", out.Mode)
	}
}

func TestLogPreservesMixedLineEndings(t *testing.T) {
	app, _, _ := newTestApp(t)
	original := "let total = 1;\r\nfoo();\r\nbar();\n"
	path := writeSource(t, "mixed.js", original)

	out, err := app.Log(context.Background(), Cursor(path, buffer.Point{Line: 0, Column: 6}))
	if err != nil {
		t.Fatalf("Log: %v", err)
	}

	// The statement takes the dominant style; untouched lines keep their own.
	want := "let total = 1;\r\nconsole.log(\"====== total =====\", total);\r\n\r\nfoo();\r\nbar();\n"
	if diff := cmp.Diff(want, out.Content); diff != "" {
		t.Errorf("content mismatch (-want +got):\n%s", diff)
	}

	if err := app.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	disk, _ := os.ReadFile(path)
	if diff := cmp.Diff(want, string(disk)); diff != "" {
		t.Errorf("saved file mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveRequiresOpenDocument(t *testing.T) {
	app, _, _ := newTestApp(t)
	path := writeSource(t, "a.js", "x;\n")

	err := app.Save(path)
	if !errors.Is(err, ErrDocumentNotFound) {
		t.Errorf("Save of unopened document error = %v, want ErrDocumentNotFound", err)
	}
}

func TestLogUnsupportedLanguage(t *testing.T) {
	app, notes, _ := newTestApp(t)
	path := writeSource(t, "script.py", "total = 1\n")

	out, err := app.Log(context.Background(), Cursor(path, buffer.Point{Line: 0, Column: 2}))
	if !errors.Is(err, easylog.ErrUnsupportedLanguage) {
		t.Fatalf("Log error = %v, want ErrUnsupportedLanguage", err)
	}
	if !errors.Is(err, ErrCommandFailed) {
		t.Errorf("Log error = %v, want ErrCommandFailed", err)
	}
	var opErr *OperationError
	if !errors.As(err, &opErr) || opErr.Target != path {
		t.Errorf("error = %v, want OperationError for %s", err, path)
	}
	if out.Changed {
		t.Error("document changed on rejection")
	}

	wantNotes := []Notification{{Level: "error", Message: "python language is not supported"}}
	if diff := cmp.Diff(wantNotes, notes.Notifications()); diff != "" {
		t.Errorf("notifications mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantNotes, out.Notifications); diff != "" {
		t.Errorf("outcome notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestLogLanguageOverride(t *testing.T) {
	app, _, _ := newTestApp(t)
	path := writeSource(t, "notes.txt", "value\n")

	out, err := app.Resolve(context.Background(), Request{
		Path:       path,
		LanguageID: "javascript",
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if out.Target != "value" || out.Changed {
		t.Errorf("Resolve = %+v, want target value and no change", out)
	}
}

func TestLogNoActiveEditor(t *testing.T) {
	app, notes, _ := newTestApp(t)

	_, err := app.Log(context.Background(), Request{LanguageID: "typescript"})
	if !errors.Is(err, easylog.ErrNoActiveEditor) {
		t.Fatalf("Log error = %v, want ErrNoActiveEditor", err)
	}
	want := []Notification{{Level: "error", Message: "No active editor"}}
	if diff := cmp.Diff(want, notes.Notifications()); diff != "" {
		t.Errorf("notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestLogDryRun(t *testing.T) {
	app, _, _ := newTestApp(t)
	path := writeSource(t, "a.vue", "  item.id\n")

	req := Cursor(path, buffer.Point{Line: 0, Column: 9})
	req.DryRun = true
	out, err := app.Log(context.Background(), req)
	if err != nil {
		t.Fatalf("Log: %v", err)
	}
	if out.Changed || out.Content != "  item.id\n" {
		t.Errorf("dry run changed document: %q", out.Content)
	}
	want := easylog.Synthesize("item.id", 0)
	if diff := cmp.Diff(want, out.Directive); diff != "" {
		t.Errorf("directive mismatch (-want +got):\n%s", diff)
	}
}

func TestLogCancelledContext(t *testing.T) {
	app, _, _ := newTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := app.Log(ctx, Request{}); !errors.Is(err, context.Canceled) {
		t.Errorf("Log error = %v, want context.Canceled", err)
	}
}

func TestLogMissingFile(t *testing.T) {
	app, _, _ := newTestApp(t)
	_, err := app.Log(context.Background(), Cursor(filepath.Join(t.TempDir(), "none.ts"), buffer.Point{}))

	var opErr *OperationError
	if !errors.As(err, &opErr) || opErr.Op != "open" {
		t.Errorf("error = %v, want open OperationError", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist", err)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Set("notify.color", "rainbow")

	if _, err := New(Options{Config: cfg, Notifier: NewRecordingNotifier()}); !errors.Is(err, config.ErrValidationFailed) {
		t.Errorf("New error = %v, want ErrValidationFailed", err)
	}
}
