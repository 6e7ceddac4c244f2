package lua

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"

	lua "github.com/yuin/gopher-lua"
)

// Sandbox restricts Lua execution to safe operations.
type Sandbox struct {
	L *lua.LState

	instructionLimit int64
	instructionCount int64
	exceeded         atomic.Bool

	output io.Writer

	mu      sync.RWMutex
	allowed map[string]bool
}

// NewSandbox creates a new sandbox for the Lua state.
func NewSandbox(L *lua.LState, instructionLimit int64, output io.Writer) *Sandbox {
	if output == nil {
		output = io.Discard
	}
	return &Sandbox{
		L:                L,
		instructionLimit: instructionLimit,
		output:           output,
		allowed: map[string]bool{
			"string": true,
			"table":  true,
			"math":   true,
		},
	}
}

// Install sets up the sandbox restrictions.
func (s *Sandbox) Install() {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		s.L.SetGlobal(name, lua.LNil)
	}
	s.installPrint()
	s.installRequire()
}

// Allow permits require(name).
func (s *Sandbox) Allow(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.allowed[name] = true
}

// installPrint replaces print with one writing to the sandbox output.
func (s *Sandbox) installPrint() {
	s.L.SetGlobal("print", s.L.NewFunction(func(L *lua.LState) int {
		n := L.GetTop()
		parts := make([]string, 0, n)
		for i := 1; i <= n; i++ {
			parts = append(parts, L.ToStringMeta(L.Get(i)).String())
		}
		fmt.Fprintln(s.output, strings.Join(parts, "\t"))
		return 0
	}))
}

// installRequire clears the on-disk search paths and replaces require with
// a whitelist check in front of the original.
func (s *Sandbox) installRequire() {
	if pkg, ok := s.L.GetGlobal("package").(*lua.LTable); ok {
		s.L.SetField(pkg, "path", lua.LString(""))
		s.L.SetField(pkg, "cpath", lua.LString(""))
	}

	originalRequire := s.L.GetGlobal("require")
	s.L.SetGlobal("require", s.L.NewFunction(func(L *lua.LState) int {
		modName := L.CheckString(1)

		s.mu.RLock()
		ok := s.allowed[modName]
		s.mu.RUnlock()
		if !ok {
			L.RaiseError("module %q is not available", modName)
			return 0
		}

		if mod := L.GetGlobal(modName); mod != lua.LNil {
			L.Push(mod)
			return 1
		}
		L.Push(originalRequire)
		L.Push(lua.LString(modName))
		L.Call(1, 1)
		return 1
	}))
}

// ResetInstructionCount resets the instruction counter.
func (s *Sandbox) ResetInstructionCount() {
	atomic.StoreInt64(&s.instructionCount, 0)
	s.exceeded.Store(false)
}

// InstructionCount returns the current instruction count.
func (s *Sandbox) InstructionCount() int64 {
	return atomic.LoadInt64(&s.instructionCount)
}

// IncrementInstructions adds to the instruction count and returns true if
// the limit is exceeded.
func (s *Sandbox) IncrementInstructions(n int64) bool {
	if s.instructionLimit <= 0 {
		return false
	}
	if atomic.AddInt64(&s.instructionCount, n) > s.instructionLimit {
		s.exceeded.Store(true)
		return true
	}
	return false
}

// LimitExceeded reports whether the current run went over the limit.
func (s *Sandbox) LimitExceeded() bool {
	return s.exceeded.Load()
}

// Charge counts one host call and raises a Lua error past the limit.
func (s *Sandbox) Charge(L *lua.LState) {
	if s.IncrementInstructions(1) {
		L.RaiseError("%v", ErrInstructionLimit)
	}
}
