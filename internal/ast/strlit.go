package ast

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// StringBody strips the delimiters of a string token and leaves everything
// else as written: escapes stay escaped, a long string keeps its leading
// newline. For an unterminated token ok is false and body is what follows
// the opening delimiter.
func StringBody(raw string) (body string, long, ok bool) {
	if raw == "" {
		return "", false, false
	}
	switch raw[0] {
	case '"', '\'':
		if len(raw) < 2 || raw[len(raw)-1] != raw[0] {
			return raw[1:], false, false
		}
		return raw[1 : len(raw)-1], false, true
	case '[':
		level := 1
		for level < len(raw) && raw[level] == '=' {
			level++
		}
		// raw = "[" + "="*(level-1) + "[" ... "]" + "="*(level-1) + "]"
		open := level + 1
		if open > len(raw) || raw[level] != '[' {
			return "", true, false
		}
		if len(raw) < 2*open || raw[len(raw)-open:] != "]"+raw[1:level]+"]" {
			return raw[open:], true, false
		}
		return raw[open : len(raw)-open], true, true
	}
	return "", false, false
}

// DecodeString turns the raw text of a string token (quoted or long-bracket)
// into its value, NFC-normalised. ok is false for malformed input, which the
// lexer has already reported.
func DecodeString(raw string) (value string, ok bool) {
	body, long, ok := StringBody(raw)
	if !ok {
		return "", false
	}
	if long {
		// первый перевод строки сразу после открывающей скобки отбрасывается
		value = strings.TrimPrefix(body, "\n")
	} else if value, ok = unescape(body); !ok {
		return "", false
	}
	return norm.NFC.String(value), true
}

func unescape(s string) (string, bool) {
	if !strings.Contains(s, `\`) {
		return s, true
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			return "", false
		}
		switch c = s[i]; c {
		case 'a':
			b.WriteByte('\a')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n', '\n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'v':
			b.WriteByte('\v')
		case '\\', '"', '\'', '`', '{':
			b.WriteByte(c)
		case 'z':
			for i+1 < len(s) && isSpaceOrNewline(s[i+1]) {
				i++
			}
		case 'x':
			if i+2 >= len(s) {
				return "", false
			}
			v, err := strconv.ParseUint(s[i+1:i+3], 16, 8)
			if err != nil {
				return "", false
			}
			b.WriteByte(byte(v))
			i += 2
		case 'u':
			end := strings.IndexByte(s[i:], '}')
			if i+1 >= len(s) || s[i+1] != '{' || end < 0 {
				return "", false
			}
			v, err := strconv.ParseUint(s[i+2:i+end], 16, 32)
			if err != nil || v > utf8.MaxRune {
				return "", false
			}
			b.WriteRune(rune(v))
			i += end
		default:
			if c < '0' || c > '9' {
				return "", false
			}
			j := i
			for j < len(s) && j < i+3 && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			v, err := strconv.ParseUint(s[i:j], 10, 16)
			if err != nil || v > 255 {
				return "", false
			}
			b.WriteByte(byte(v))
			i = j - 1
		}
	}
	return b.String(), true
}

func isSpaceOrNewline(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}
