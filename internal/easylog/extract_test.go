package easylog

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractSelection(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    Chain
		wantErr error
	}{
		{"plain", "total", Chain{"total"}, nil},
		{"trimmed", " total ", Chain{"total"}, nil},
		{"tabs and newlines", "\t\nvalue\n", Chain{"value"}, nil},
		{"empty", "", nil, ErrEmptySelection},
		{"whitespace only", "   \t", nil, ErrEmptySelection},
		{"dotted", "a.b", nil, ErrInvalidIdentifier},
		{"leading digit", "9lives", nil, ErrInvalidIdentifier},
		{"expression", "a + b", nil, ErrInvalidIdentifier},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cand, err := Extract(LangJavaScript, SelectionSource(tc.text))
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("error = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cand.Mode != ModeSelection {
				t.Errorf("mode = %v, want selection", cand.Mode)
			}
			if diff := cmp.Diff(tc.want, cand.Chain); diff != "" {
				t.Errorf("chain mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractCursor(t *testing.T) {
	line := "const x = foo.bar.baz;"

	tests := []struct {
		name      string
		line      string
		column    int
		wantChain Chain
		wantStart int
		wantErr   error
	}{
		{"inside chain", line, 15, Chain{"foo", "bar", "baz"}, 10, nil},
		{"chain start", line, 10, Chain{"foo", "bar", "baz"}, 10, nil},
		{"just after chain", line, 21, Chain{"foo", "bar", "baz"}, 10, nil},
		{"simple name", line, 6, Chain{"x"}, 6, nil},
		{"between spaces", "a  b", 2, nil, 0, ErrNoWordAtCursor},
		{"on operator", line, 8, nil, 0, ErrNoWordAtCursor},
		{"empty line", "", 0, nil, 0, ErrNoWordAtCursor},
		{"double dot", "a..b", 1, nil, 0, ErrInvalidIdentifier},
		{"trailing dot", "foo.", 2, nil, 0, ErrInvalidIdentifier},
		{"only dots", "x = ...;", 5, nil, 0, ErrInvalidIdentifier},
		{"numeric literal", "x = 3.14", 6, nil, 0, ErrInvalidIdentifier},
		{"column clamped", "abc", 99, Chain{"abc"}, 0, nil},
		{"negative column", "abc", -4, Chain{"abc"}, 0, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cand, err := Extract(LangTypeScript, CursorSource(tc.line, tc.column))
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("error = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.wantChain, cand.Chain); diff != "" {
				t.Errorf("chain mismatch (-want +got):\n%s", diff)
			}
			if cand.Start != tc.wantStart {
				t.Errorf("start = %d, want %d", cand.Start, tc.wantStart)
			}
		})
	}
}

func TestExtractChecksLanguageFirst(t *testing.T) {
	sources := []Source{
		SelectionSource("total"),
		SelectionSource(""),
		SelectionSource("a.b"),
		CursorSource("foo.bar", 2),
		CursorSource("   ", 1),
	}

	for _, src := range sources {
		_, err := Extract("python", src)
		if !errors.Is(err, ErrUnsupportedLanguage) {
			t.Errorf("Extract(python, %+v) error = %v, want ErrUnsupportedLanguage", src, err)
		}
	}
}

func TestWordRangeAt(t *testing.T) {
	tests := []struct {
		line       string
		column     int
		start, end int
		ok         bool
	}{
		{"foo.bar", 0, 0, 7, true},
		{"foo.bar", 7, 0, 7, true},
		{" foo ", 4, 1, 4, true},
		{" foo ", 0, 0, 0, false},
		{"(a)", 1, 1, 2, true},
		{"(a)", 2, 1, 2, true},
		{"x=$y", 2, 2, 4, true},
	}

	for _, tc := range tests {
		start, end, ok := WordRangeAt(tc.line, tc.column)
		if start != tc.start || end != tc.end || ok != tc.ok {
			t.Errorf("WordRangeAt(%q, %d) = (%d, %d, %v), want (%d, %d, %v)",
				tc.line, tc.column, start, end, ok, tc.start, tc.end, tc.ok)
		}
	}
}
