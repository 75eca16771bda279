// Package solution runs learner-provided Lua solutions of the first
// letters exercise inside a restricted gopher-lua state.
package solution

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

// Solution is a compiled Lua chunk exposing a global function that maps a
// sentence to its acronym.
type Solution struct {
	name     string
	function string
	limits   Limits
	proto    *lua.FunctionProto
	tooLarge bool
}

// Load reads and compiles the Lua file at path.
func Load(path, function string, limits Limits) (*Solution, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read solution: %w", err)
	}
	return New(path, string(b), function, limits)
}

// New compiles source. Syntax errors are returned immediately; runtime
// errors surface per call.
func New(name, source, function string, limits Limits) (*Solution, error) {
	if function == "" {
		return nil, fmt.Errorf("solution %s: function name is empty", name)
	}
	chunk, err := parse.Parse(strings.NewReader(source), name)
	if err != nil {
		return nil, fmt.Errorf("solution %s: %v", name, err)
	}
	proto, err := lua.Compile(chunk, name)
	if err != nil {
		return nil, fmt.Errorf("solution %s: %v", name, err)
	}
	return &Solution{
		name:     name,
		function: function,
		limits:   limits,
		proto:    proto,
		tooLarge: instructionLimitWouldTrip(source, limits.InstructionLimit),
	}, nil
}

// Name returns the solution's source name.
func (s *Solution) Name() string { return s.name }

// Call runs the solution on sentence in a fresh state. A sandbox violation
// is reported through violation with a nil error; err carries Lua runtime
// errors and wrong return types.
func (s *Solution) Call(ctx context.Context, sentence string) (got string, violation string, err error) {
	if s.tooLarge {
		return "", ViolationInstruction, nil
	}
	L := newSandboxLuaState(s.name, sentence, s.limits)
	defer L.Close()

	if s.limits.TimeoutMs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(s.limits.TimeoutMs)*time.Millisecond)
		defer cancel()
	}
	L.SetContext(ctx)

	L.Push(L.NewFunctionFromProto(s.proto))
	if err := L.PCall(0, 0, nil); err != nil {
		violation, err = classify(err)
		return "", violation, err
	}
	fn, ok := L.GetGlobal(s.function).(*lua.LFunction)
	if !ok {
		return "", "", fmt.Errorf("function %s is not defined", s.function)
	}
	if err := L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, lua.LString(sentence)); err != nil {
		violation, err = classify(err)
		return "", violation, err
	}
	ret := L.Get(-1)
	L.Pop(1)
	str, ok := ret.(lua.LString)
	if !ok {
		return "", "", fmt.Errorf("function %s returned %s, expected string", s.function, ret.Type().String())
	}
	if s.limits.MemoryLimitBytes > 0 && len(str) > s.limits.MemoryLimitBytes {
		return "", ViolationMemory, nil
	}
	return string(str), "", nil
}

func classify(err error) (string, error) {
	if isTimeoutError(err) {
		return ViolationTimeout, nil
	}
	if isMemoryError(err) {
		return ViolationMemory, nil
	}
	return "", err
}
