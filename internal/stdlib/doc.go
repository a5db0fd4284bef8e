// Package stdlib loads standard-library definitions: which Roblox classes
// exist and which properties and events they carry.
//
// Definitions are TOML files:
//
//	name = "roblox"
//	base = "lua51"
//
//	[roblox_classes.GuiObject]
//	superclass = "GuiBase2d"
//	properties = ["Size", "Position"]
//	events = ["InputBegan"]
//
// Member lookups walk the superclass chain. A *Library satisfies
// lint.ClassSchema.
package stdlib
