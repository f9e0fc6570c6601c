package dispatch

import "os"

// ArgSource yields raw argument tokens one at a time. Sources are forward-only
// and finite; the first token must be the program name, which the parser
// discards unconditionally.
type ArgSource interface {
	// Next returns the next token, or false when the source is exhausted.
	Next() (string, bool)
}

type sliceSource struct {
	tokens []string
	pos    int
}

func (s *sliceSource) Next() (string, bool) {
	if s.pos >= len(s.tokens) {
		return "", false
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok, true
}

// Args returns an in-memory ArgSource over the given tokens. The first token
// stands in for the program name.
func Args(tokens ...string) ArgSource {
	return &sliceSource{tokens: tokens}
}

// OSArgs returns an ArgSource over the process arguments, program name first.
func OSArgs() ArgSource {
	return &sliceSource{tokens: os.Args}
}
