package easylog

import (
	"fmt"
	"math"

	"github.com/dshills/easylog/internal/engine/buffer"
)

// EndOfLine is the column used for insertion; buffers clamp it to the
// line length.
const EndOfLine = math.MaxUint32

// Directive is a statement to insert and where to insert it.
type Directive struct {
	Target string
	Text   string
	Line   uint32
	Column uint32
}

// Statement returns the debug-print text for target. The text begins and
// ends with a newline so it occupies its own line.
func Statement(target string) string {
	return fmt.Sprintf("\nconsole.log(\"====== %s =====\", %s);\n", target, target)
}

// Synthesize builds the directive that logs target after line.
func Synthesize(target string, line uint32) Directive {
	return Directive{
		Target: target,
		Text:   Statement(target),
		Line:   line,
		Column: EndOfLine,
	}
}

// Point returns the insertion position.
func (d Directive) Point() buffer.Point {
	return buffer.Point{Line: d.Line, Column: d.Column}
}

// PointResolver converts positions to offsets, clamping columns to the
// line length.
type PointResolver interface {
	PointToOffset(point buffer.Point) buffer.ByteOffset
}

// Offset resolves the insertion position against a document.
func (d Directive) Offset(r PointResolver) buffer.ByteOffset {
	return r.PointToOffset(d.Point())
}
