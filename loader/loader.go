package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/nathoo/delver/engine/state"
)

// mainFile is executed before any other file in a config directory.
const mainFile = "dungeon.lua"

// collector accumulates Lua definitions during file execution.
type collector struct {
	dungeon  *lua.LTable
	player   *lua.LTable
	monsters []rawMonster
}

// Load reads a .lua file, or every .lua file in a directory, compiles the
// declarations over the defaults, validates the result and returns the
// immutable Defs. Warnings go to log, which may be nil. The Lua VM is
// discarded after loading.
func Load(path string, log *zap.Logger) (*state.Defs, error) {
	if log == nil {
		log = zap.NewNop()
	}

	files, err := luaFiles(path)
	if err != nil {
		return nil, err
	}

	// Create sandboxed VM.
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	for _, f := range files {
		if err := L.DoFile(f); err != nil {
			return nil, fmt.Errorf("executing %s: %w", filepath.Base(f), err)
		}
	}

	defs, err := compile(coll)
	if err != nil {
		return nil, fmt.Errorf("compiling config: %w", err)
	}

	if err := validate(defs, log.With(zap.String("config", path))); err != nil {
		return nil, err
	}
	return defs, nil
}

// luaFiles resolves path into the ordered list of files to execute.
func luaFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("reading config directory %s: %w", path, err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no .lua files found in %s", path)
	}

	names = sortedLuaFiles(names)
	files := make([]string, len(names))
	for i, n := range names {
		files[i] = filepath.Join(path, n)
	}
	return files, nil
}

// sortedLuaFiles puts dungeon.lua first and the rest in alphabetical order.
func sortedLuaFiles(files []string) []string {
	out := make([]string, 0, len(files))
	var rest []string
	for _, f := range files {
		if f == mainFile {
			out = append(out, f)
		} else {
			rest = append(rest, f)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	// Base library (print, type, tostring, tonumber, pairs, ipairs, etc.)
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes dangerous globals and functions.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}

	// The dungeon seed is the only source of randomness.
	if mathTbl := L.GetGlobal("math"); mathTbl != lua.LNil {
		if tbl, ok := mathTbl.(*lua.LTable); ok {
			tbl.RawSetString("random", lua.LNil)
			tbl.RawSetString("randomseed", lua.LNil)
		}
	}
}
