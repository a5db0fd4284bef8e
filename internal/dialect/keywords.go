package dialect

import (
	"rolint/internal/source"
)

type identSignal struct {
	Dialect Kind
	Score   int
	Reason  string
}

var identSignals = map[string][]identSignal{
	// Roblox globals and datatypes
	"game":      {{Dialect: Roblox, Score: 3, Reason: "roblox global `game`"}},
	"workspace": {{Dialect: Roblox, Score: 3, Reason: "roblox global `workspace`"}},
	"script":    {{Dialect: Roblox, Score: 2, Reason: "roblox global `script`"}},
	"Instance":  {{Dialect: Roblox, Score: 4, Reason: "roblox datatype `Instance`"}},
	"Enum":      {{Dialect: Roblox, Score: 3, Reason: "roblox global `Enum`"}},
	"Vector3":   {{Dialect: Roblox, Score: 3, Reason: "roblox datatype `Vector3`"}},
	"UDim2":     {{Dialect: Roblox, Score: 4, Reason: "roblox datatype `UDim2`"}},
	"Color3":    {{Dialect: Roblox, Score: 3, Reason: "roblox datatype `Color3`"}},
	"Roact":     {{Dialect: Roblox, Score: 5, Reason: "roact library"}},
	"task":      {{Dialect: Roblox, Score: 1, Reason: "roblox library `task`"}},

	// Lua 5.1 environment functions gone from Luau
	"setfenv":    {{Dialect: Lua51, Score: 3, Reason: "lua 5.1 `setfenv`"}},
	"getfenv":    {{Dialect: Lua51, Score: 2, Reason: "lua 5.1 `getfenv`"}},
	"module":     {{Dialect: Lua51, Score: 2, Reason: "lua 5.1 `module`"}},
	"loadstring": {{Dialect: Lua51, Score: 1, Reason: "lua 5.1 `loadstring`"}},
	"dofile":     {{Dialect: Lua51, Score: 2, Reason: "lua 5.1 `dofile`"}},
}

// RecordIdent collects evidence for an identifier token.
func RecordIdent(e *Evidence, ident string, span source.Span) {
	if e == nil || ident == "" {
		return
	}
	for _, sig := range identSignals[ident] {
		e.Add(Hint{
			Dialect: sig.Dialect,
			Score:   sig.Score,
			Reason:  sig.Reason,
			Span:    span,
		})
	}
}
