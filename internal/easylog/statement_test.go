package easylog

import (
	"testing"

	"github.com/dshills/easylog/internal/engine/buffer"
	"github.com/google/go-cmp/cmp"
)

func TestStatement(t *testing.T) {
	tests := []struct {
		target string
		want   string
	}{
		{"total", "\nconsole.log(\"====== total =====\", total);\n"},
		{"foo.bar", "\nconsole.log(\"====== foo.bar =====\", foo.bar);\n"},
		{"$el", "\nconsole.log(\"====== $el =====\", $el);\n"},
	}

	for _, tc := range tests {
		if got := Statement(tc.target); got != tc.want {
			t.Errorf("Statement(%q) = %q, want %q", tc.target, got, tc.want)
		}
	}
}

func TestSynthesize(t *testing.T) {
	got := Synthesize("x", 4)
	want := Directive{
		Target: "x",
		Text:   "\nconsole.log(\"====== x =====\", x);\n",
		Line:   4,
		Column: EndOfLine,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Synthesize mismatch (-want +got):\n%s", diff)
	}
}

func TestDirectiveOffsetIsEndOfLine(t *testing.T) {
	buf := buffer.NewBufferFromString("let a = 1;\nlet b = a + 1;\nreturn b;")

	d := Synthesize("b", 1)
	if got := d.Offset(buf); got != buf.LineEndOffset(1) {
		t.Errorf("Offset = %d, want end of line 1 (%d)", got, buf.LineEndOffset(1))
	}

	last := Synthesize("b", 2)
	if got := last.Offset(buf); got != buf.Len() {
		t.Errorf("Offset on last line = %d, want %d", got, buf.Len())
	}
}
