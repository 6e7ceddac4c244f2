// Package easylog locates the variable a debug-print statement should log
// and synthesizes that statement.
//
// The package is pure: callers pass the document language, the text around
// the cursor or the selected text, and the line to append after. Nothing
// here touches a buffer; the debuglog handler applies the result.
//
// # Sources
//
// A Source is either a selection or a cursor:
//
//	easylog.SelectionSource(" total ")                   // selected text
//	easylog.CursorSource("const x = foo.bar.baz;", 15)  // line text and column
//
// Selection mode trims the text and requires a single identifier; dotted
// names are rejected. Cursor mode expands over the run of identifier and dot
// characters around the column and accepts dotted chains.
//
// # Targets
//
// For a dotted chain in cursor mode the logged expression is the prefix of
// the chain ending at the segment under the cursor:
//
//	response.data.items
//	         ^            -> response.data
//
// # Statements
//
// The inserted text is always
//
//	\nconsole.log("====== T =====", T);\n
//
// placed at the end of the cursor's line.
package easylog
