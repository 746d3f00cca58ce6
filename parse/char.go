package parse

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Satisfies consumes one rune and succeeds with it (as a one-rune
// string) when predicate accepts it. The enclosing Or/Maybe discards
// the consumption when the predicate rejects.
func Satisfies(predicate func(rune) bool) Parser {
	return Bind(Token(), func(value any) Parser {
		r, _ := utf8.DecodeRuneInString(value.(string))
		if predicate(r) {
			return Value(value)
		}
		return Fail("token does not match predicate", "")
	})
}

// Character matches exactly r.
func Character(r rune) Parser {
	return Bind(Token(), func(value any) Parser {
		if c, _ := utf8.DecodeRuneInString(value.(string)); c == r {
			return Value(value)
		}
		return Fail(fmt.Sprintf("expected %q", r), KindExpectation)
	})
}

// OneOf matches any rune contained in set.
func OneOf(set string) Parser {
	return Satisfies(func(r rune) bool { return strings.ContainsRune(set, r) })
}

// NoneOf matches any rune not contained in set.
func NoneOf(set string) Parser {
	return Satisfies(func(r rune) bool { return !strings.ContainsRune(set, r) })
}

// String matches s rune by rune and yields s itself.
func String(s string) Parser {
	if s == "" {
		return Value("")
	}
	r, size := utf8.DecodeRuneInString(s)
	return And(Character(r), String(s[size:]), Value(s))
}

// Space matches a single whitespace rune.
func Space() Parser {
	return Satisfies(unicode.IsSpace)
}

// Spaces matches one or more whitespace runes and yields " ".
func Spaces() Parser {
	return And(OneOrMore(Space()), Value(" "))
}

// DigitCharacter matches one decimal digit and yields it as a string.
func DigitCharacter() Parser {
	return DigitCharacterInBase(10)
}

// DigitCharacterInBase matches one digit valid in the given base.
func DigitCharacterInBase(base int) Parser {
	return Satisfies(func(r rune) bool {
		return digitValue(r) >= 0 && digitValue(r) < base
	})
}

func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10
	}
	return -1
}

// Text applies parser one or more times and yields the concatenation
// of the produced values as a string.
func Text(parser Parser) Parser {
	return Bind(OneOrMore(parser), func(value any) Parser {
		var b strings.Builder
		for _, part := range value.([]any) {
			if s, ok := part.(string); ok {
				b.WriteString(s)
			} else {
				fmt.Fprint(&b, part)
			}
		}
		return Value(b.String())
	})
}
