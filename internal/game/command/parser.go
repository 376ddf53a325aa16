package command

import "strings"

// ParseResult holds the normalized input line split at its first space.
type ParseResult struct {
	// Line is the whole input, trimmed and lowercased.
	Line string
	// Command is the first word of the input.
	Command string
	// RawArgs is the text after the command with outer whitespace trimmed.
	RawArgs string
}

// Parse normalizes a text line and splits it at the first space.
//
// Postcondition: Returns a ParseResult whose fields are all lowercase. If line
// is empty or whitespace, Command is empty.
func Parse(line string) ParseResult {
	line = strings.ToLower(strings.TrimSpace(line))
	if line == "" {
		return ParseResult{}
	}

	spaceIdx := strings.IndexByte(line, ' ')
	if spaceIdx < 0 {
		return ParseResult{
			Line:    line,
			Command: line,
		}
	}

	return ParseResult{
		Line:    line,
		Command: line[:spaceIdx],
		RawArgs: strings.TrimSpace(line[spaceIdx+1:]),
	}
}
