package solution

import (
	"context"
	"hash/fnv"
	"math/rand"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

const (
	ViolationTimeout     = "sandbox timeout"
	ViolationInstruction = "sandbox instruction limit"
	ViolationMemory      = "sandbox memory limit"
)

// Limits bounds a single solution call. Zero disables a limit.
type Limits struct {
	TimeoutMs        int
	InstructionLimit int
	MemoryLimitBytes int
}

func newSandboxLuaState(name, sentence string, limits Limits) *lua.LState {
	L := lua.NewState(lua.Options{
		SkipOpenLibs:     true,
		RegistrySize:     256,
		RegistryMaxSize:  registryMaxFromMemory(limits.MemoryLimitBytes),
		RegistryGrowStep: 0,
	})
	openLib := func(name string, f lua.LGFunction) {
		L.Push(L.NewFunction(f))
		L.Push(lua.LString(name))
		L.Call(1, 0)
	}
	openLib(lua.BaseLibName, lua.OpenBase)
	openLib(lua.StringLibName, lua.OpenString)
	openLib(lua.TabLibName, lua.OpenTable)
	openLib(lua.MathLibName, lua.OpenMath)
	installDeterministicRandom(L, deterministicSeed(name, sentence))
	// base opens these; a solution has no business touching the filesystem.
	for _, g := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(g, lua.LNil)
	}
	return L
}

func registryMaxFromMemory(memoryLimitBytes int) int {
	if memoryLimitBytes <= 0 {
		return 256 * 1024
	}
	// Best-effort: the registry ceiling follows the memory limit.
	n := memoryLimitBytes / 64
	if n < 1024 {
		n = 1024
	}
	if n > 256*1024 {
		n = 256 * 1024
	}
	return n
}

func deterministicSeed(name, sentence string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(sentence))
	return int64(h.Sum64() & 0x7fffffffffffffff)
}

func installDeterministicRandom(L *lua.LState, seed int64) {
	mathTbl, ok := L.GetGlobal("math").(*lua.LTable)
	if !ok || mathTbl == nil {
		return
	}
	rng := rand.New(rand.NewSource(seed))
	mathTbl.RawSetString("random", L.NewFunction(func(L *lua.LState) int {
		switch L.GetTop() {
		case 0:
			L.Push(lua.LNumber(rng.Float64()))
			return 1
		case 1:
			max := L.CheckInt(1)
			if max < 1 {
				L.ArgError(1, "interval is empty")
				return 0
			}
			L.Push(lua.LNumber(rng.Intn(max) + 1))
			return 1
		default:
			min := L.CheckInt(1)
			max := L.CheckInt(2)
			if max < min {
				L.ArgError(2, "interval is empty")
				return 0
			}
			L.Push(lua.LNumber(rng.Intn(max-min+1) + min))
			return 1
		}
	}))
	mathTbl.RawSetString("randomseed", L.NewFunction(func(L *lua.LState) int {
		return 0
	}))
}

// instructionLimitWouldTrip estimates the cost of loading source. gopher-lua
// has no instruction hook, so loops are bounded by the timeout instead.
func instructionLimitWouldTrip(source string, instructionLimit int) bool {
	if instructionLimit <= 0 {
		return false
	}
	return len(source)*10 > instructionLimit
}

func isTimeoutError(err error) bool {
	if err == nil {
		return false
	}
	if err == context.DeadlineExceeded {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "deadline") || strings.Contains(msg, "context canceled")
}

func isMemoryError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "registry overflow") || strings.Contains(msg, "stack overflow")
}
