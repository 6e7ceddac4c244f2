package easylog

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValidIdentifier(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"x", true},
		{"total", true},
		{"_private", true},
		{"$el", true},
		{"a1_$", true},
		{"CamelCase", true},
		{"", false},
		{"1abc", false},
		{"a.b", false},
		{"a-b", false},
		{"a b", false},
		{"foo()", false},
		{"arr[0]", false},
		{"naïve", false},
	}

	for _, tc := range tests {
		if got := ValidIdentifier(tc.input); got != tc.want {
			t.Errorf("ValidIdentifier(%q) = %v, want %v", tc.input, got, tc.want)
		}
		// Same answer on a second call.
		if got := ValidIdentifier(tc.input); got != tc.want {
			t.Errorf("second ValidIdentifier(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseChain(t *testing.T) {
	tests := []struct {
		input   string
		want    Chain
		wantErr error
	}{
		{"a", Chain{"a"}, nil},
		{"a.b.c", Chain{"a", "b", "c"}, nil},
		{"response.data.items", Chain{"response", "data", "items"}, nil},
		{"", nil, ErrNoValidVariable},
		{"a..b", nil, ErrInvalidIdentifier},
		{".a", nil, ErrInvalidIdentifier},
		{"a.", nil, ErrInvalidIdentifier},
		{"a.1b", nil, ErrInvalidIdentifier},
		{"1.5", nil, ErrInvalidIdentifier},
	}

	for _, tc := range tests {
		got, err := ParseChain(tc.input)
		if tc.wantErr != nil {
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("ParseChain(%q) error = %v, want %v", tc.input, err, tc.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseChain(%q) unexpected error: %v", tc.input, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("ParseChain(%q) mismatch (-want +got):\n%s", tc.input, diff)
		}
	}
}

func TestChainPrefix(t *testing.T) {
	c := Chain{"a", "b", "c"}

	tests := []struct {
		index int
		want  string
	}{
		{-1, ""},
		{0, "a"},
		{1, "a.b"},
		{2, "a.b.c"},
		{7, "a.b.c"},
	}

	for _, tc := range tests {
		if got := c.Prefix(tc.index); got != tc.want {
			t.Errorf("Prefix(%d) = %q, want %q", tc.index, got, tc.want)
		}
	}

	if c.String() != "a.b.c" {
		t.Errorf("String() = %q", c.String())
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d", c.Len())
	}
}

func TestIsWordChar(t *testing.T) {
	for _, c := range []byte("azAZ09_$.") {
		if !isWordChar(c) {
			t.Errorf("isWordChar(%q) = false, want true", c)
		}
	}
	for _, c := range []byte(" ;()[]-+=\"'`\t") {
		if isWordChar(c) {
			t.Errorf("isWordChar(%q) = true, want false", c)
		}
	}
}
