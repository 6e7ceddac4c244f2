// Package dispatcher routes actions to handlers and coordinates execution.
//
// Handlers register for a namespace, the prefix before the first dot of an
// action name:
//
//	d := dispatcher.NewWithDefaults()
//	d.RegisterNamespace("debuglog", debuglog.NewHandler())
//	d.SetEngine(buf)
//	d.SetCursors(cursors)
//
//	result := d.Dispatch(input.Action{Name: "debuglog.log"})
//
// Each dispatch builds a fresh execctx.ExecutionContext from the current
// engine, cursors and notifier, runs pre-dispatch hooks (which may cancel),
// the handler, and post-dispatch hooks. Handler panics are converted into
// error results when RecoverFromPanic is set.
package dispatcher
