package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"
)

const utf8RuneSelf = 0x80

// bumpRune перемещает курсор на размер текущей руны
func (lx *Lexer) bumpRune() {
	if lx.cursor.EOF() {
		return
	}
	_, sz := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("bumpRune overflow: %w", err))
	}
	lx.cursor.Off += usz
}

// Идентификаторы Lua - только ASCII.
func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return isDec(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\f' || b == '\v'
}

// Проверка для кейса ".5": текущая точка, дальше цифра?
func (lx *Lexer) isNumberAfterDot() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '.' && isDec(b1)
}

// try2/try3 пробуют "съесть" 2/3 байта, если совпадает.
func (lx *Lexer) try3(a, b, c byte) bool {
	b0, b1, b2, ok := lx.cursor.Peek3()
	if !ok || b0 != a || b1 != b || b2 != c {
		return false
	}
	lx.cursor.Off += 3
	return true
}

func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	lx.cursor.Off += 2
	return true
}

// longBracketLevel looks at `[`, `=`*, `[` without consuming it and returns
// the number of `=`; -1 when the cursor is not at a long bracket opener.
func (lx *Lexer) longBracketLevel() int {
	if lx.cursor.Peek() != '[' {
		return -1
	}
	var n uint32 = 1
	for lx.cursor.PeekAt(n) == '=' {
		n++
	}
	if lx.cursor.PeekAt(n) != '[' {
		return -1
	}
	return int(n - 1)
}

// skipLongBracketBody consumes an opener of the given level and everything up
// to the matching closer. It returns false if the file ends first.
func (lx *Lexer) skipLongBracketBody(level int) bool {
	lx.cursor.Off += uint32(level) + 2 // [ =* [
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() != ']' {
			continue
		}
		n := 0
		for n < level && lx.cursor.Peek() == '=' {
			lx.cursor.Bump()
			n++
		}
		if n == level && lx.cursor.Peek() == ']' {
			lx.cursor.Bump()
			return true
		}
	}
	return false
}
