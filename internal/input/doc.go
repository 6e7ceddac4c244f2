// Package input defines the actions the dispatcher routes and the context
// they are invoked in.
//
// An Action names a command ("debuglog.log") and carries its arguments and
// origin. Commands are invoked without arguments from a keybinding, the
// command palette, a script or the CLI; the Source field records which.
//
// # Usage
//
//	action := input.Action{Name: "debuglog.log", Source: input.SourcePalette}
//	result := dispatcher.Dispatch(action)
package input
