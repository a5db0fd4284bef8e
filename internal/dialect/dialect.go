package dialect

import "fmt"

// Kind represents a Lua flavour a file may be written in.
type Kind uint8

const (
	Unknown Kind = iota
	Lua51
	Roblox

	kindCount
)

func (k Kind) String() string {
	switch k {
	case Lua51:
		return "lua51"
	case Roblox:
		return "roblox"
	default:
		return "unknown"
	}
}

func (k Kind) GoString() string {
	return fmt.Sprintf("dialect.Kind(%s)", k.String())
}

// Parse maps a configuration name to a Kind.
func Parse(s string) (Kind, bool) {
	switch s {
	case "lua51":
		return Lua51, true
	case "roblox":
		return Roblox, true
	}
	return Unknown, false
}
