package scripting

import lua "github.com/yuin/gopher-lua"

// luaString wraps a Go string as a Lua value.
func luaString(s string) lua.LValue {
	return lua.LString(s)
}

// luaToString unwraps a Lua string value; ok is false for any other type.
func luaToString(v lua.LValue) (string, bool) {
	if s, ok := v.(lua.LString); ok {
		return string(s), true
	}
	return "", false
}
