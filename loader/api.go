package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the config constructors as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Dungeon { width = 80, ... }; a later call replaces an earlier one.
	L.SetGlobal("Dungeon", L.NewFunction(func(L *lua.LState) int {
		coll.dungeon = L.CheckTable(1)
		return 0
	}))

	// Player { hp = 30, ... }
	L.SetGlobal("Player", L.NewFunction(func(L *lua.LState) int {
		coll.player = L.CheckTable(1)
		return 0
	}))

	// Monster "id" { ... } — curried: Monster("id") returns a function that takes a table.
	L.SetGlobal("Monster", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.monsters = append(coll.monsters, rawMonster{id: id, table: tbl})
			return 0
		}))
		return 1
	}))
}
