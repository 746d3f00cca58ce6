// Package csv parses comma-separated records with the parse
// combinators: fields split on commas, records on newlines, quoted
// fields with doubled-quote escapes, and empty fields allowed.
package csv

import (
	"github.com/dhamidi/parsec/parse"
)

// Parse reads input into records of fields. A trailing newline is
// accepted and does not produce an empty final record; empty input
// yields no records.
func Parse(input string) ([][]string, error) {
	if input == "" {
		return nil, nil
	}
	// The record separator refuses to match right before EOF so a
	// trailing newline is left for the Maybe below instead of
	// opening an empty record.
	separator := parse.And(newline(), parse.Not(parse.EOF()))
	p := parse.FollowedBy(
		parse.SeparatedBy(record(), separator),
		parse.Maybe(newline()),
		parse.EOF(),
	)
	value, err := parse.Parse(p, input)
	if err != nil {
		return nil, err
	}

	var records [][]string
	for _, rec := range value.([]any) {
		var fields []string
		for _, f := range rec.([]any) {
			fields = append(fields, f.(string))
		}
		records = append(records, fields)
	}
	return records, nil
}

func record() parse.Parser {
	return parse.SeparatedBy(field(), parse.Character(','))
}

// field tries a quoted field first so that a leading quote is never
// mistaken for bare-field content. The empty field comes last since
// it matches anywhere.
func field() parse.Parser {
	return parse.Or(quoted(), bare(), parse.Value(""))
}

// bare is a run of at least one rune that is neither a delimiter nor
// a quote.
func bare() parse.Parser {
	return parse.Text(parse.NoneOf(",\"\r\n"))
}

// quoted is a double-quoted field; "" inside quotes denotes one
// literal quote.
func quoted() parse.Parser {
	content := parse.Bind(
		parse.ZeroOrMore(parse.Or(
			parse.And(parse.String(`""`), parse.Value(`"`)),
			parse.NoneOf(`"`),
		)),
		func(value any) parse.Parser {
			text := ""
			for _, part := range value.([]any) {
				text += part.(string)
			}
			return parse.Value(text)
		},
	)
	return parse.Sequence(func(s parse.Step) parse.Parser {
		s(parse.Character('"'))
		text := s(content)
		s(parse.Character('"'))
		return parse.Value(text)
	})
}

// newline accepts both \n and \r\n line endings.
func newline() parse.Parser {
	return parse.Or(
		parse.And(parse.Character('\r'), parse.Character('\n')),
		parse.Character('\n'),
	)
}
