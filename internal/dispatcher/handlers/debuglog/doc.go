// Package debuglog provides the handler for the debug-log command.
//
// # Actions
//
//   - debuglog.log: insert a console.log statement for the variable under
//     the cursor, or for the selected variable, after the current line
//   - debuglog.resolve: report the variable debuglog.log would log without
//     editing the document
//
// With an empty selection the command works in cursor mode: it expands
// over the identifier-and-dot run around the cursor and logs the chain
// prefix ending at the segment the cursor is on. With a selection it logs
// the trimmed selected text, which must be a single identifier.
//
// Every rejection sends one notification (a warning for bad input, an error
// for an unsupported language or a failed edit) and returns an error result.
// Nothing is inserted on a rejected path.
//
// # Usage
//
//	dispatcher.RegisterNamespace(debuglog.Namespace, debuglog.NewHandler())
//
//	result := dispatcher.DispatchWithContext(input.Action{
//	    Name: debuglog.ActionLog,
//	}, &input.Context{FileType: "typescript"})
package debuglog
