package text

import (
	"fmt"
	"sort"
	"sync"
)

// Parser builds a Face from raw TTF or OTF data.
type Parser func(data []byte) (Face, error)

// Names of the built-in parsers.
const (
	ParserSFNT   = "sfnt"
	ParserGoText = "gotext"
)

// DefaultParser is the parser used when none is named.
const DefaultParser = ParserSFNT

var (
	parsersMu      sync.RWMutex
	parserRegistry = map[string]Parser{
		ParserSFNT:   NewSFNTFace,
		ParserGoText: NewGoTextFace,
	}
)

// RegisterParser registers a font parser under name, replacing any
// parser already registered with that name.
func RegisterParser(name string, p Parser) {
	parsersMu.Lock()
	defer parsersMu.Unlock()
	parserRegistry[name] = p
}

// Parsers returns the registered parser names in sorted order.
func Parsers() []string {
	parsersMu.RLock()
	defer parsersMu.RUnlock()
	names := make([]string, 0, len(parserRegistry))
	for name := range parserRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseFace parses data with the named parser. An empty name selects
// DefaultParser.
func ParseFace(data []byte, parser string) (Face, error) {
	if parser == "" {
		parser = DefaultParser
	}
	parsersMu.RLock()
	p, ok := parserRegistry[parser]
	parsersMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParser, parser)
	}
	return p(data)
}
