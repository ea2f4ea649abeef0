package command

import "strings"

// ParseResult holds the parsed verb and target phrase from a command line.
type ParseResult struct {
	// Verb is the first word of the input, matched case-sensitively against
	// the registry.
	Verb string
	// Target is the raw text after the verb, trimmed. May be empty.
	Target string
}

// Parse splits a command line at the first whitespace run into a verb and a
// target phrase.
//
// Postcondition: Returns a ParseResult. If line is blank, Verb is empty.
func Parse(line string) ParseResult {
	line = strings.TrimSpace(line)
	if line == "" {
		return ParseResult{}
	}

	idx := strings.IndexAny(line, " \t")
	if idx < 0 {
		return ParseResult{Verb: line}
	}

	return ParseResult{
		Verb:   line[:idx],
		Target: strings.TrimSpace(line[idx+1:]),
	}
}
