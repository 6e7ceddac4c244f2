package easylog_test

import (
	"errors"
	"testing"

	"github.com/dshills/easylog/internal/easylog"
)

func TestPlanCursorChain(t *testing.T) {
	line := "const x = foo.bar.baz;"

	d, err := easylog.Plan(easylog.LangTypeScript, easylog.CursorSource(line, 15), 3)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	if d.Text != "\nconsole.log(\"====== foo.bar =====\", foo.bar);\n" {
		t.Errorf("unexpected text %q", d.Text)
	}
	if d.Line != 3 || d.Column != easylog.EndOfLine {
		t.Errorf("unexpected position (%d, %d)", d.Line, d.Column)
	}
}

func TestPlanSelection(t *testing.T) {
	d, err := easylog.Plan(easylog.LangJavaScript, easylog.SelectionSource(" total "), 0)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if d.Text != "\nconsole.log(\"====== total =====\", total);\n" {
		t.Errorf("unexpected text %q", d.Text)
	}
}

func TestPlanSelectionRejectsDots(t *testing.T) {
	_, err := easylog.Plan(easylog.LangJavaScript, easylog.SelectionSource("a.b"), 0)
	if !errors.Is(err, easylog.ErrInvalidIdentifier) {
		t.Errorf("expected ErrInvalidIdentifier, got %v", err)
	}
}

func TestLocateSupportedLanguages(t *testing.T) {
	for _, lang := range easylog.SupportedLanguages() {
		target, err := easylog.Locate(lang, easylog.SelectionSource("value"))
		if err != nil {
			t.Errorf("Locate(%s) unexpected error: %v", lang, err)
			continue
		}
		if target.String() != "value" {
			t.Errorf("Locate(%s) = %q", lang, target.String())
		}
	}

	for _, lang := range []string{"python", "typescriptreact", "go", "", "JavaScript"} {
		_, err := easylog.Locate(lang, easylog.SelectionSource("value"))
		if !errors.Is(err, easylog.ErrUnsupportedLanguage) {
			t.Errorf("Locate(%q) error = %v, want ErrUnsupportedLanguage", lang, err)
		}
	}
}

func TestLocateCursorSegments(t *testing.T) {
	line := "a.b.c"
	tests := []struct {
		column int
		want   string
	}{
		{0, "a"},
		{1, "a"},
		{3, "a.b"},
		{5, "a.b.c"},
	}

	for _, tc := range tests {
		target, err := easylog.Locate(easylog.LangVue, easylog.CursorSource(line, tc.column))
		if err != nil {
			t.Fatalf("Locate column %d: %v", tc.column, err)
		}
		if target.String() != tc.want {
			t.Errorf("column %d: got %q, want %q", tc.column, target.String(), tc.want)
		}
	}
}

func TestModeString(t *testing.T) {
	if easylog.ModeCursor.String() != "cursor" || easylog.ModeSelection.String() != "selection" {
		t.Error("unexpected mode names")
	}
	if easylog.Mode(7).String() != "unknown" {
		t.Error("expected unknown for out-of-range mode")
	}
}
