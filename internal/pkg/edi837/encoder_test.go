package edi837

import (
	"strings"
	"testing"
	"time"

	"claimgate-service/internal/pkg/x12"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var encodeAt = time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

func mustEncode(t *testing.T, input *Claim837PInput) *EncodeResult {
	t.Helper()
	result, findings := Encode(input, encodeAt)
	require.NotNil(t, result, "unexpected refusal: %v", findings)
	return result
}

func segmentsOf(result *EncodeResult) []x12.Segment {
	return x12.Tokenize(result.Compact, x12.DefaultDelimiters)
}

func TestEncodeRefusesInvalidInput(t *testing.T) {
	input := validClaimInput()
	input.BillingProvider.NPI = ""

	result, findings := Encode(input, encodeAt)
	assert.Nil(t, result, "no partial output on validation errors")
	require.True(t, HasErrors(findings))
	assert.Contains(t, findingFields(findings, SeverityError), "billing_provider.npi")
}

func TestEncodeSegmentOrder(t *testing.T) {
	segments := segmentsOf(mustEncode(t, validClaimInput()))

	var tags []string
	for _, s := range segments {
		tags = append(tags, s.Tag)
	}
	assert.Equal(t, []string{
		"ISA", "GS", "ST", "BHT",
		"NM1", "PER", "NM1",
		"HL", "PRV", "NM1", "N3", "N4", "REF",
		"HL", "SBR", "NM1", "N3", "N4", "DMG", "NM1",
		"CLM", "DTP", "HI", "NM1", "PRV",
		"LX", "SV1", "DTP",
		"LX", "SV1", "DTP",
		"LX", "SV1", "DTP",
		"SE", "GE", "IEA",
	}, tags)
}

func TestEncodeBothRenderingsTokenizeIdentically(t *testing.T) {
	result := mustEncode(t, validClaimInput())

	compact := x12.Tokenize(result.Compact, x12.DefaultDelimiters)
	readable := x12.Tokenize(result.Readable, x12.DefaultDelimiters)
	assert.Equal(t, compact, readable)
	assert.NotContains(t, result.Compact, "\n")
	assert.Contains(t, result.Readable, "\n")
}

func TestEncodeControlNumberConsistency(t *testing.T) {
	for i := 0; i < 25; i++ {
		result := mustEncode(t, validClaimInput())
		segments := segmentsOf(result)

		byTag := map[string]x12.Segment{}
		for _, s := range segments {
			byTag[s.Tag] = s
		}
		require.Len(t, byTag["ISA"].Element(13), 9)
		require.Len(t, byTag["GS"].Element(6), 6)
		require.Len(t, byTag["ST"].Element(2), 4)
		assert.Equal(t, byTag["ISA"].Element(13), byTag["IEA"].Element(2))
		assert.Equal(t, byTag["GS"].Element(6), byTag["GE"].Element(2))
		assert.Equal(t, byTag["ST"].Element(2), byTag["SE"].Element(2))
	}
}

func TestEncodeTransactionTrailerCount(t *testing.T) {
	segments := segmentsOf(mustEncode(t, validClaimInput()))

	start, end := -1, -1
	for i, s := range segments {
		switch s.Tag {
		case "ST":
			start = i
		case "SE":
			end = i
		}
	}
	require.GreaterOrEqual(t, start, 0)
	require.Greater(t, end, start)

	se := segments[end]
	assert.Equal(t, strings.TrimLeft(se.Element(1), "0"), se.Element(1))
	assert.Equal(t, end-start+1, atoiOrZero(se.Element(1)))
}

func TestEncodeInterchangeFixedWidths(t *testing.T) {
	isa := segmentsOf(mustEncode(t, validClaimInput()))[0]

	assert.Len(t, isa.Element(2), 10)
	assert.Len(t, isa.Element(4), 10)
	assert.Len(t, isa.Element(6), 15)
	assert.Len(t, isa.Element(8), 15)
	assert.Len(t, isa.Element(9), 6)
	assert.Len(t, isa.Element(10), 4)
	assert.Equal(t, "00501", isa.Element(12))
	assert.Equal(t, "T", isa.Element(15), "non-production input must flag a test interchange")

	production := validClaimInput()
	production.Production = true
	isa = segmentsOf(mustEncode(t, production))[0]
	assert.Equal(t, "P", isa.Element(15))
}

func TestEncodeClaimContent(t *testing.T) {
	input := validClaimInput()
	input.Claim.DiagnosisCodes = []string{"M54.50", "M25.551"}
	input.Claim.PriorAuthNumber = "AUTH991"
	input.ServiceLines[0].DiagnosisPointers = []int{1, 2}
	segments := segmentsOf(mustEncode(t, input))

	var clm, hi, ref, firstSV1 x12.Segment
	for _, s := range segments {
		switch {
		case s.Tag == "CLM":
			clm = s
		case s.Tag == "HI":
			hi = s
		case s.Tag == "REF" && s.Element(1) == "G1":
			ref = s
		case s.Tag == "SV1" && firstSV1.Tag == "":
			firstSV1 = s
		}
	}

	assert.Equal(t, "CLAIM0001", clm.Element(1))
	assert.Equal(t, "285.00", clm.Element(2))
	assert.Equal(t, "11:B:1", clm.Element(5))
	assert.Equal(t, "ABK:M5450", hi.Element(1), "principal diagnosis, decimal stripped")
	assert.Equal(t, "ABF:M25551", hi.Element(2))
	assert.Equal(t, "AUTH991", ref.Element(2))
	assert.Equal(t, "HC:97110:GP", firstSV1.Element(1))
	assert.Equal(t, "120.00", firstSV1.Element(2))
	assert.Equal(t, "UN", firstSV1.Element(3))
	assert.Equal(t, "1:2", firstSV1.Element(7))
}

func TestEncodeSampleScenarioRoundTrip(t *testing.T) {
	// Three service lines charging 120.00, 90.00 and 75.00 against a 285.00
	// total with one diagnosis code: the decoded-back segment count and the
	// charge total must match exactly.
	result := mustEncode(t, validClaimInput())
	segments := segmentsOf(result)
	require.Len(t, segments, result.SegmentCount)

	total := decimal.Zero
	lineCount := 0
	for _, s := range segments {
		if s.Tag == "SV1" {
			total = total.Add(x12.ParseAmount(s.Element(2)))
			lineCount++
		}
	}
	assert.Equal(t, 3, lineCount)
	assert.True(t, total.Equal(decimal.NewFromFloat(285.00)), "got %s", total)
}

func TestEncodeWarningsAccompanyOutput(t *testing.T) {
	input := validClaimInput()
	input.Claim.TotalCharge = decimal.NewFromFloat(300.00)

	result, _ := Encode(input, encodeAt)
	require.NotNil(t, result, "warnings must not block encoding")
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, SeverityWarning, result.Warnings[0].Severity)
}

func TestBuildFileName(t *testing.T) {
	a := BuildFileName("RBPT01", encodeAt)
	b := BuildFileName("RBPT01", encodeAt)

	assert.True(t, strings.HasPrefix(a, "CLM_RBPT01_20240115_093000_"))
	assert.True(t, strings.HasSuffix(a, ".dat"))
	assert.NotEqual(t, a, b, "same-second outputs must not collide")
}

func atoiOrZero(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}
