package x12

import (
	"fmt"
	"strings"
	"unicode"
)

// Delimiters holds the three single-character separators of one interchange.
// Outbound transmissions use DefaultDelimiters; inbound transmissions carry
// their own set inside the interchange header and must be detected.
type Delimiters struct {
	Element   byte
	Segment   byte
	Component byte
}

// DefaultDelimiters is the conventional separator set for encoding.
var DefaultDelimiters = Delimiters{Element: '*', Segment: '~', Component: ':'}

// RepetitionSeparator is only ever transmitted inside one interchange-header
// element; it never delimits anything this codec produces or consumes.
const RepetitionSeparator byte = '^'

// Segment is one line of the wire format: a short tag followed by ordered
// elements. Element values may themselves be composites joined by the
// component separator.
type Segment struct {
	Tag      string
	Elements []string
}

// Element returns the element at 1-based position i, or the empty string when
// the segment is shorter than i. Out-of-range access is deliberately not an
// error: trailing optional elements are routinely omitted on the wire.
func (s Segment) Element(i int) string {
	if i < 1 || i > len(s.Elements) {
		return ""
	}
	return s.Elements[i-1]
}

// ElementCount reports how many elements follow the tag.
func (s Segment) ElementCount() int {
	return len(s.Elements)
}

// BuildSegment renders one segment with the given delimiters, terminator
// included.
func BuildSegment(tag string, elements []string, d Delimiters) string {
	var b strings.Builder
	b.WriteString(tag)
	for _, el := range elements {
		b.WriteByte(d.Element)
		b.WriteString(el)
	}
	b.WriteByte(d.Segment)
	return b.String()
}

// Tokenize splits raw transmission content into segments using the given
// delimiters. Whitespace around segment boundaries (newlines in the
// human-readable rendering) is discarded, as are empty segments.
func Tokenize(raw string, d Delimiters) []Segment {
	var segments []Segment
	for _, chunk := range strings.Split(raw, string(d.Segment)) {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		parts := strings.Split(chunk, string(d.Element))
		segments = append(segments, Segment{Tag: parts[0], Elements: parts[1:]})
	}
	return segments
}

// SplitComposite breaks a composite element into its components.
func SplitComposite(value string, d Delimiters) []string {
	return strings.Split(value, string(d.Component))
}

// JoinComposite assembles a composite element, dropping trailing empty
// components so optional modifier slots are not transmitted.
func JoinComposite(components []string, d Delimiters) string {
	end := len(components)
	for end > 0 && components[end-1] == "" {
		end--
	}
	return strings.Join(components[:end], string(d.Component))
}

// DetectDelimiters reads the separator set out of an inbound interchange
// header. The element separator is the byte directly after the tag and the
// component separator occupies a fixed offset near the end of the fixed-width
// header; the segment terminator is the first non-whitespace byte after it,
// which tolerates headers padded with spaces or newlines.
func DetectDelimiters(raw []byte) (Delimiters, error) {
	if len(raw) < isaMinHeaderLength {
		return Delimiters{}, fmt.Errorf("interchange header truncated: %d bytes", len(raw))
	}
	d := Delimiters{
		Element:   raw[isaElementSeparatorOffset],
		Component: raw[isaComponentSeparatorOffset],
	}
	for i := isaComponentSeparatorOffset + 1; i < len(raw); i++ {
		if !unicode.IsSpace(rune(raw[i])) {
			d.Segment = raw[i]
			return d, nil
		}
	}
	return Delimiters{}, fmt.Errorf("no segment terminator found after interchange header")
}

// Sanitize strips the reserved delimiter characters from free-text field
// values and trims surrounding whitespace. Values are cleaned rather than
// rejected: stray separators in a name or street line must never corrupt the
// segment structure.
func Sanitize(value string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch byte(r) {
		case DefaultDelimiters.Element, DefaultDelimiters.Segment, DefaultDelimiters.Component:
			return -1
		}
		return r
	}, value)
	return strings.TrimSpace(cleaned)
}
