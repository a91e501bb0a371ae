package domain

import "strings"

type SpanKind int

const (
	SpanPlain SpanKind = iota
	SpanBold
)

type Span struct {
	Kind SpanKind
	Text string
}

const boldDelimiter = "**"

// ParseAdviceMarkup lexes the backend's lightweight advice markup into typed
// spans: text between a matched pair of ** delimiters is bold, everything else
// is plain. The grammar is non-nesting. An unmatched trailing delimiter is not
// an error; the remaining text is emitted as a plain span.
func ParseAdviceMarkup(text string) []Span {
	parts := strings.Split(text, boldDelimiter)
	spans := make([]Span, 0, len(parts))

	for i, part := range parts {
		if part == "" {
			continue
		}

		kind := SpanPlain
		if i%2 == 1 && i < len(parts)-1 {
			kind = SpanBold
		}
		spans = append(spans, Span{Kind: kind, Text: part})
	}

	return spans
}
