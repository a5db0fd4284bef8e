package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexTokenTooLong             Code = 1005
	LexUnterminatedLongString   Code = 1006
	LexBadEscape                Code = 1007
	LexUnterminatedInterpString Code = 1008

	// Парсерные
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnclosedParen      Code = 2002
	SynUnclosedBrace      Code = 2003
	SynUnclosedBracket    Code = 2004
	SynExpectExpression   Code = 2005
	SynExpectIdentifier   Code = 2006
	SynExpectEnd          Code = 2007
	SynExpectThen         Code = 2008
	SynExpectDo           Code = 2009
	SynExpectUntil        Code = 2010
	SynForBadHeader       Code = 2011
	SynBadAssignTarget    Code = 2012
	SynExpectEquals       Code = 2013
	SynBadTypeAnnotation  Code = 2014
	SynVarargOutsideVarFn Code = 2015
	SynTooManyErrors      Code = 2016

	// Линтер: один код на правило
	LintInfo                Code = 4000
	LintIncorrectRoactUsage Code = 4001

	// Ввод/вывод
	IOLoadFileError Code = 5001
	IOReadDirError  Code = 5002
	IOCacheError    Code = 5003
)

var (
	codeDescription = map[Code]string{
		UnknownCode:                 "Unknown error",
		LexInfo:                     "Lexical information",
		LexUnknownChar:              "Unknown character",
		LexUnterminatedString:       "Unterminated string literal",
		LexUnterminatedBlockComment: "Unterminated block comment",
		LexBadNumber:                "Malformed number literal",
		LexTokenTooLong:             "Token exceeds maximum length",
		LexUnterminatedLongString:   "Unterminated long string",
		LexBadEscape:                "Invalid escape sequence",
		LexUnterminatedInterpString: "Unterminated interpolated string",
		SynInfo:                     "Syntax information",
		SynUnexpectedToken:          "Unexpected token",
		SynUnclosedParen:            "Unclosed parenthesis",
		SynUnclosedBrace:            "Unclosed brace",
		SynUnclosedBracket:          "Unclosed bracket",
		SynExpectExpression:         "Expected expression",
		SynExpectIdentifier:         "Expected identifier",
		SynExpectEnd:                "Expected 'end'",
		SynExpectThen:               "Expected 'then'",
		SynExpectDo:                 "Expected 'do'",
		SynExpectUntil:              "Expected 'until'",
		SynForBadHeader:             "Malformed for loop header",
		SynBadAssignTarget:          "Invalid assignment target",
		SynExpectEquals:             "Expected '='",
		SynBadTypeAnnotation:        "Malformed type annotation",
		SynVarargOutsideVarFn:       "'...' outside a vararg function",
		SynTooManyErrors:            "Too many syntax errors",
		LintInfo:                    "Lint information",
		LintIncorrectRoactUsage:     "Incorrect Roact usage",
		IOLoadFileError:             "Failed to load file",
		IOReadDirError:              "Failed to read directory",
		IOCacheError:                "Cache access failed",
	}

	lintCodes = map[string]Code{
		"roblox_incorrect_roact_usage": LintIncorrectRoactUsage,
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("LNT%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// IsLint reports whether the code belongs to a lint rule.
func (c Code) IsLint() bool {
	return c >= 4000 && c < 5000
}

// LintCode maps a rule name to its diagnostic code.
func LintCode(rule string) (Code, bool) {
	c, ok := lintCodes[rule]
	return c, ok
}

// LintName is the inverse of LintCode; non-lint codes yield "".
func (c Code) LintName() string {
	for name, code := range lintCodes {
		if code == c {
			return name
		}
	}
	return ""
}
