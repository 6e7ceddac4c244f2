package lua

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	glua "github.com/yuin/gopher-lua"

	"github.com/dshills/easylog/internal/app"
	"github.com/dshills/easylog/internal/config"
)

func newModuleState(t *testing.T, host Host) *State {
	t.Helper()
	state, _ := newTestState(t)
	if err := state.Register(NewModule(context.Background(), host)); err != nil {
		t.Fatalf("Register: %v", err)
	}
	return state
}

func TestModuleFunctions(t *testing.T) {
	state := newModuleState(t, nil)

	script := `
local el = require("easylog")
r_valid = el.valid("total")
r_invalid = el.valid("a.b")
r_supported = el.supported("vue")
r_unsupported = el.supported("python")
r_target = el.resolve("const x = foo.bar.baz;", 17)
r_nil, r_msg = el.resolve("x = 1", 5, "python")
r_stmt = el.statement("total")
r_langs = table.concat(el.languages, ",")
`
	if err := state.DoString(context.Background(), script); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}

	got := map[string]string{}
	for _, name := range []string{"r_valid", "r_invalid", "r_supported", "r_unsupported", "r_target", "r_nil", "r_msg", "r_stmt", "r_langs"} {
		got[name] = state.GetGlobal(name).String()
	}

	want := map[string]string{
		"r_valid":       "true",
		"r_invalid":     "false",
		"r_supported":   "true",
		"r_unsupported": "false",
		"r_target":      "foo.bar",
		"r_nil":         "nil",
		"r_msg":         "python language is not supported",
		"r_stmt":        "\nconsole.log(\"====== total =====\", total);\n",
		"r_langs":       "javascript,javascriptreact,vue,typescript",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
}

func TestModuleLogWithoutHost(t *testing.T) {
	state := newModuleState(t, nil)

	if err := state.DoString(context.Background(), `r, msg = easylog.log("a.ts", 1, 1)`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}
	if got := state.GetGlobal("msg").String(); got != "no host available" {
		t.Errorf("msg = %q, want no host available", got)
	}
}

func TestModuleLogEditsFile(t *testing.T) {
	application, err := app.New(app.Options{
		Config:   config.Default(),
		Logger:   app.NullLogger,
		Notifier: app.NewRecordingNotifier(),
	})
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "user.js")
	if err := os.WriteFile(path, []byte("function f(user) {\n  return user.profile.name;\n}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	state := newModuleState(t, application)
	state.SetGlobal("path", lstring(path))

	script := `
target, msg = easylog.log(path, 2, 16)
bad, bad_msg = easylog.log(path, 2, 1)
`
	if err := state.DoString(context.Background(), script); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}

	if got := state.GetGlobal("target").String(); got != "user.profile" {
		t.Errorf("target = %q, want user.profile (msg %v)", got, state.GetGlobal("msg"))
	}
	if got := state.GetGlobal("bad_msg").String(); got != "No variable under cursor" {
		t.Errorf("bad_msg = %q, want No variable under cursor", got)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "function f(user) {\n  return user.profile.name;\nconsole.log(\"====== user.profile =====\", user.profile);\n\n}\n"
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Errorf("file mismatch (-want +got):\n%s", diff)
	}
}

func lstring(s string) glua.LString { return glua.LString(s) }
