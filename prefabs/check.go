package prefabs

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

const checkScript = "level_check.tengo"

// RunLevelCheck feeds placed object counts to the level check script
// and returns its warnings. The script defines check(level) returning
// an array of strings; an empty array means the level passes.
func RunLevelCheck(counts map[string]int) ([]string, error) {
	src, err := LoadScript(checkScript)
	if err != nil {
		// No script configured means nothing to check.
		return nil, nil
	}
	return runCheck(src, counts)
}

func runCheck(src []byte, counts map[string]int) ([]string, error) {
	code := make([]byte, 0, len(src)+48)
	code = append(code, src...)
	code = append(code, []byte("\n__warnings__ := check(level)\n")...)

	script := tengo.NewScript(code)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	// Every key the script may touch must exist; tengo errors on
	// arithmetic with undefined.
	level := map[string]any{"tiles": 0, "hazards": 0, "mobs": 0, "players": 0}
	for k, v := range counts {
		level[k] = v
	}
	if err := script.Add("level", level); err != nil {
		return nil, fmt.Errorf("prefabs: level check add globals: %w", err)
	}

	compiled, err := script.Run()
	if err != nil {
		return nil, fmt.Errorf("prefabs: level check: %w", err)
	}

	var warnings []string
	for _, v := range compiled.Get("__warnings__").Array() {
		if s, ok := v.(string); ok {
			warnings = append(warnings, s)
		}
	}
	return warnings, nil
}
