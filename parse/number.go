package parse

// Digit matches one decimal digit and yields its numeric value.
func Digit() Parser {
	return DigitInBase(10)
}

// DigitInBase matches one digit in the given base and yields its
// numeric value.
func DigitInBase(base int) Parser {
	return Bind(DigitCharacterInBase(base), func(value any) Parser {
		r := []rune(value.(string))[0]
		return Value(digitValue(r))
	})
}

// NaturalNumber matches one or more decimal digits and yields the
// accumulated int.
func NaturalNumber() Parser {
	return NaturalNumberInBase(10)
}

// NaturalNumberInBase matches one or more digits in the given base.
func NaturalNumberInBase(base int) Parser {
	return Bind(OneOrMore(DigitInBase(base)), func(value any) Parser {
		n := 0
		for _, d := range value.([]any) {
			n = n*base + d.(int)
		}
		return Value(n)
	})
}

// Integer matches an optionally signed decimal number: "1234",
// "+1234" and "-1234" all parse, the last to a negative value.
func Integer() Parser {
	return Bind(Maybe(OneOf("+-")), func(sign any) Parser {
		return Bind(NaturalNumber(), func(value any) Parser {
			n := value.(int)
			if s, ok := sign.(string); ok && s == "-" {
				n = -n
			}
			return Value(n)
		})
	})
}
