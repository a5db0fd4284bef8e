// Package dialect provides lightweight detection of which Lua flavour a file
// is written in (plain Lua 5.1 or Roblox Luau).
//
// Evidence collection must never change lexing or parsing; it only feeds the
// classifier the driver consults when the configured standard library is "auto".
package dialect
