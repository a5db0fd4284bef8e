package ast

import "testing"

func TestDecodeString(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{`"Frame"`, "Frame", true},
		{`'Text\tLabel'`, "Text\tLabel", true},
		{`"a\65\066c"`, "aABc", true},
		{`"\x41\u{48}"`, "AH", true},
		{"\"a\\z  \n  b\"", "ab", true},
		{`"quote\"s"`, `quote"s`, true},
		{"[[\nfirst line]]", "first line", true},
		{"[==[a]]b]==]", "a]]b", true},
		{"\"e\u0301\"", "\u00e9", true}, // NFC
		{`"\q"`, "", false},
		{`"\x4"`, "", false},
		{`"\999"`, "", false},
		{`"open`, "", false},
		{`x`, "", false},
	}
	for _, tt := range tests {
		got, ok := DecodeString(tt.raw)
		if ok != tt.ok || got != tt.want {
			t.Errorf("DecodeString(%q) = %q, %v; want %q, %v", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}

func TestStringBodyKeepsEscapes(t *testing.T) {
	tests := []struct {
		raw  string
		body string
		long bool
		ok   bool
	}{
		{`""`, "", false, true},
		{`"Fr\97me"`, `Fr\97me`, false, true},
		{`'Frame\0'`, `Frame\0`, false, true},
		{"[==[\nx]]y]==]", "\nx]]y", true, true},
		{`"open`, "open", false, false},
		{"[=[a]]", "a]]", true, false},
		{`x`, "", false, false},
	}
	for _, tt := range tests {
		body, long, ok := StringBody(tt.raw)
		if body != tt.body || long != tt.long || ok != tt.ok {
			t.Errorf("StringBody(%q) = %q, %v, %v; want %q, %v, %v", tt.raw, body, long, ok, tt.body, tt.long, tt.ok)
		}
	}
}
