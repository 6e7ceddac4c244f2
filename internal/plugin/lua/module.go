package lua

import (
	"context"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/easylog/internal/app"
	"github.com/dshills/easylog/internal/easylog"
	"github.com/dshills/easylog/internal/engine/buffer"
	"github.com/dshills/easylog/internal/input"
)

// Module is a table of Go functions exposed to scripts.
type Module interface {
	Name() string
	Table(L *lua.LState, sb *Sandbox) *lua.LTable
}

// Host runs commands on behalf of scripts. *app.Application implements it.
type Host interface {
	Log(ctx context.Context, req app.Request) (app.Outcome, error)
	Save(path string) error
}

// defaultLanguage is used when a script omits the language argument.
const defaultLanguage = easylog.LangJavaScript

// EasylogModule implements the easylog API module.
type EasylogModule struct {
	host Host
	ctx  context.Context
}

// NewModule creates the easylog module. host may be nil, in which case
// easylog.log reports an error.
func NewModule(ctx context.Context, host Host) *EasylogModule {
	if ctx == nil {
		ctx = context.Background()
	}
	return &EasylogModule{host: host, ctx: ctx}
}

// Name returns the module name.
func (m *EasylogModule) Name() string {
	return "easylog"
}

// Table builds the module table.
func (m *EasylogModule) Table(L *lua.LState, sb *Sandbox) *lua.LTable {
	funcs := map[string]lua.LGFunction{
		"valid":     m.valid,
		"supported": m.supported,
		"resolve":   m.resolve,
		"statement": m.statement,
		"log":       m.log,
	}

	mod := L.NewTable()
	for name, fn := range funcs {
		fn := fn
		L.SetField(mod, name, L.NewFunction(func(L *lua.LState) int {
			sb.Charge(L)
			return fn(L)
		}))
	}
	L.SetField(mod, "languages", stringList(L, easylog.SupportedLanguages()))
	return mod
}

// valid(name) -> bool
func (m *EasylogModule) valid(L *lua.LState) int {
	L.Push(lua.LBool(easylog.ValidIdentifier(L.CheckString(1))))
	return 1
}

// supported(lang) -> bool
func (m *EasylogModule) supported(L *lua.LState) int {
	L.Push(lua.LBool(easylog.IsSupportedLanguage(L.CheckString(1))))
	return 1
}

// resolve(line_text, col, [lang]) -> target | nil, message
// col is 1-based; col 1 is before the first character.
func (m *EasylogModule) resolve(L *lua.LState) int {
	line := L.CheckString(1)
	col := L.CheckInt(2)
	lang := L.OptString(3, defaultLanguage)

	target, err := easylog.Locate(lang, easylog.CursorSource(line, col-1))
	if err != nil {
		return pushFailure(L, err)
	}
	L.Push(lua.LString(target.String()))
	return 1
}

// statement(target) -> text
func (m *EasylogModule) statement(L *lua.LState) int {
	L.Push(lua.LString(easylog.Statement(L.CheckString(1))))
	return 1
}

// log(path, line, col, [lang]) -> target | nil, message
// Runs the command at the 1-based position and saves the file.
func (m *EasylogModule) log(L *lua.LState) int {
	path := L.CheckString(1)
	line := L.CheckInt(2)
	col := L.CheckInt(3)
	lang := L.OptString(4, "")

	if m.host == nil {
		L.Push(lua.LNil)
		L.Push(lua.LString("no host available"))
		return 2
	}
	if line < 1 || col < 1 {
		L.ArgError(2, "line and column are 1-based")
		return 0
	}

	point := buffer.Point{Line: uint32(line - 1), Column: uint32(col - 1)}
	req := app.Cursor(path, point)
	req.LanguageID = lang
	req.Source = input.SourcePlugin

	out, err := m.host.Log(m.ctx, req)
	if err != nil {
		return pushFailure(L, err)
	}
	if err := m.host.Save(path); err != nil {
		return pushFailure(L, err)
	}
	L.Push(lua.LString(out.Target))
	return 1
}

// pushFailure pushes nil and the user-facing message for err.
func pushFailure(L *lua.LState, err error) int {
	L.Push(lua.LNil)
	L.Push(lua.LString(easylog.Message(err)))
	return 2
}

func stringList(L *lua.LState, items []string) *lua.LTable {
	tbl := L.NewTable()
	for i, item := range items {
		tbl.RawSetInt(i+1, lua.LString(item))
	}
	return tbl
}
