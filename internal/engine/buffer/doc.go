// Package buffer provides a thread-safe text buffer for the documents the
// debug-log command edits.
//
// The buffer keeps its content with LF line endings and an index of line
// start offsets, so the conversions the command needs (offset to line/column,
// end of a given line) are a binary search away. The original line ending of
// a loaded file is remembered and restored by Export.
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("const x = foo.bar;\n")
//
//	// Append after the first line
//	end := buf.LineEndOffset(0)
//	buf.Insert(end, "\nconsole.log(x);\n")
//
// Position Types:
//
//   - ByteOffset: Raw byte position in the buffer
//   - Point: Line and column position (0-indexed, column in bytes)
package buffer
