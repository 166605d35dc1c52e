package scripting

import "fmt"

// ResultGlobal is the Lua global an effect script assigns its outcome text to.
const ResultGlobal = "result"

// RunChunk executes source in a fresh sandboxed VM with the given string
// globals preset, and returns the value of the "result" global.
//
// Precondition: source must be non-empty.
// Postcondition: Returns the script's result string, or an error when the
// script fails, exceeds the instruction limit, or leaves no result string.
func RunChunk(source string, instLimit int, globals map[string]string) (string, error) {
	if source == "" {
		return "", fmt.Errorf("scripting: empty chunk")
	}

	L := NewSandboxedState(instLimit)
	defer L.Close()

	for name, value := range globals {
		L.SetGlobal(name, luaString(value))
	}

	if err := L.DoString(source); err != nil {
		return "", fmt.Errorf("scripting: chunk failed: %w", err)
	}

	result := L.GetGlobal(ResultGlobal)
	s, ok := luaToString(result)
	if !ok {
		return "", fmt.Errorf("scripting: chunk set no %q string", ResultGlobal)
	}
	return s, nil
}
