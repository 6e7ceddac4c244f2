// Package lua runs easylog scripts in a sandboxed gopher-lua state.
//
// # State
//
// The State type manages a Lua runtime with only the base, table, string
// and math libraries opened:
//
//	state, err := lua.NewState(
//	    lua.WithExecutionTimeout(5 * time.Second),
//	    lua.WithOutput(os.Stdout),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer state.Close()
//
//	if err := state.DoFile(ctx, "fix.lua"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Sandbox
//
// The Sandbox removes dofile, loadfile, load and loadstring, limits
// require to the safe built-in modules and "easylog", redirects print to
// the state's output, and counts host calls against the instruction limit.
//
// # easylog module
//
// NewModule exposes the debug-log command to scripts, both as the global
// "easylog" and through require("easylog"):
//
//	easylog.valid(name)                   -> bool
//	easylog.supported(lang)               -> bool
//	easylog.resolve(line, col, [lang])    -> target | nil, message
//	easylog.statement(target)             -> text
//	easylog.log(path, line, col, [lang])  -> target | nil, message
//
// Lines and columns are 1-based. easylog.log edits and saves the file.
package lua
