package x12

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestHeader(element, component, terminator byte) string {
	d := Delimiters{Element: element, Segment: terminator, Component: component}
	isa := BuildSegment(TagInterchangeHeader, []string{
		"00", PadRight("", 10), "00", PadRight("", 10),
		"ZZ", PadRight("SENDER", 15), "ZZ", PadRight("RECEIVER", 15),
		"240115", "0930", string(RepetitionSeparator), "00501",
		"000000905", "1", "P", string(component),
	}, d)
	return isa
}

func TestDetectDelimiters(t *testing.T) {
	t.Run("Conventional Separators", func(t *testing.T) {
		raw := buildTestHeader('*', ':', '~') + "GS*HP*A*B~"
		d, err := DetectDelimiters([]byte(raw))
		require.NoError(t, err)
		assert.Equal(t, byte('*'), d.Element)
		assert.Equal(t, byte(':'), d.Component)
		assert.Equal(t, byte('~'), d.Segment)
	})

	t.Run("Alternate Component Separator", func(t *testing.T) {
		raw := buildTestHeader('*', '>', '~')
		d, err := DetectDelimiters([]byte(raw))
		require.NoError(t, err)
		assert.Equal(t, byte('>'), d.Component)
	})

	t.Run("Padded Header", func(t *testing.T) {
		isa := buildTestHeader('*', ':', '~')
		// Drop the terminator and re-append it behind whitespace padding.
		padded := strings.TrimSuffix(isa, "~") + "  \n~GS*HP~"
		d, err := DetectDelimiters([]byte(padded))
		require.NoError(t, err)
		assert.Equal(t, byte('~'), d.Segment)
	})

	t.Run("Truncated Header", func(t *testing.T) {
		_, err := DetectDelimiters([]byte("ISA*00*short"))
		assert.Error(t, err)
	})

	t.Run("Missing Terminator", func(t *testing.T) {
		isa := strings.TrimSuffix(buildTestHeader('*', ':', '~'), "~")
		_, err := DetectDelimiters([]byte(isa + "   \n"))
		assert.Error(t, err)
	})
}

func TestBuildAndTokenizeRoundTrip(t *testing.T) {
	d := DefaultDelimiters
	raw := BuildSegment("CLP", []string{"CLAIM001", "1", "285.00", "227.50", "57.50"}, d) +
		BuildSegment("CAS", []string{"CO", "45", "57.50"}, d)

	segments := Tokenize(raw, d)
	require.Len(t, segments, 2)
	assert.Equal(t, "CLP", segments[0].Tag)
	assert.Equal(t, "CLAIM001", segments[0].Element(1))
	assert.Equal(t, "285.00", segments[0].Element(3))
	assert.Equal(t, "CAS", segments[1].Tag)
	assert.Equal(t, "57.50", segments[1].Element(3))
}

func TestTokenizeIgnoresInterSegmentWhitespace(t *testing.T) {
	d := DefaultDelimiters
	raw := "ST*835*0001~\nBPR*I*65.00*C*ACH~\n\nSE*2*0001~\n"
	segments := Tokenize(raw, d)
	require.Len(t, segments, 3)
	assert.Equal(t, []string{"ST", "BPR", "SE"}, []string{segments[0].Tag, segments[1].Tag, segments[2].Tag})
}

func TestSegmentElementOutOfRange(t *testing.T) {
	seg := Segment{Tag: "TRN", Elements: []string{"1", "CHK12345"}}
	assert.Equal(t, "CHK12345", seg.Element(2))
	assert.Equal(t, "", seg.Element(3))
	assert.Equal(t, "", seg.Element(0))
}

func TestComposites(t *testing.T) {
	d := DefaultDelimiters
	assert.Equal(t, "HC:97110:GP", JoinComposite([]string{"HC", "97110", "GP", "", ""}, d))
	assert.Equal(t, []string{"HC", "97110", "GP"}, SplitComposite("HC:97110:GP", d))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "SMITH  JONES PT", Sanitize("  SMITH ~ JONES* PT: "))
	assert.Equal(t, "PLAIN", Sanitize("PLAIN"))
}
