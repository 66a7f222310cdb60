package x12

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDateFormatting(t *testing.T) {
	at := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "20240115", FormatDate(at))
	assert.Equal(t, "240115", FormatDateShort(at))
	assert.Equal(t, "0930", FormatTime(at))
	assert.Equal(t, "20240115", CalendarToWireDate("2024-01-15"))
	assert.Equal(t, "2024-01-15", WireToCalendarDate("20240115"))
	assert.Equal(t, "2024115", WireToCalendarDate("2024115"))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "285.00", FormatAmount(decimal.NewFromInt(285)))
	assert.Equal(t, "-200.00", FormatAmount(decimal.NewFromInt(-200)))
	assert.Equal(t, "0.10", FormatAmount(decimal.NewFromFloat(0.1)))
}

func TestParseAmount(t *testing.T) {
	assert.True(t, ParseAmount(" 65.00 ").Equal(decimal.NewFromFloat(65.00)))
	assert.True(t, ParseAmount("-200.00").IsNegative())
	assert.True(t, ParseAmount("garbage").IsZero())
	assert.True(t, ParseAmount("").IsZero())
}

func TestIdentifierNormalizers(t *testing.T) {
	assert.Equal(t, "0001234567", NormalizeNPI("1234567"))
	assert.Equal(t, "1234567890", NormalizeNPI("123-456-7890"))
	assert.Equal(t, "123456789", NormalizeTaxID("12-3456789"))
}

func TestPredicates(t *testing.T) {
	cases := []struct {
		name string
		got  bool
		want bool
	}{
		{"npi ok", ValidNPI("1234567890"), true},
		{"npi short", ValidNPI("123456789"), false},
		{"npi alpha", ValidNPI("12345678AB"), false},
		{"taxid ok", ValidTaxID("123456789"), true},
		{"taxid dashed", ValidTaxID("12-3456789"), false},
		{"date ok", ValidCalendarDate("2024-01-15"), true},
		{"date bad shape", ValidCalendarDate("20240115"), false},
		{"date impossible", ValidCalendarDate("2024-13-45"), false},
		{"state ok", ValidStateCode("CA"), true},
		{"state number", ValidStateCode("C1"), false},
		{"proc ok", ValidProcedureCode("97110"), true},
		{"proc short", ValidProcedureCode("9711"), false},
		{"modifier ok", ValidModifier("GP"), true},
		{"modifier long", ValidModifier("GPX"), false},
		{"phone ok", ValidPhone("(555) 123-4567"), true},
		{"phone short", ValidPhone("555-1234"), false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.got, tc.name)
	}
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "SENDER         ", PadRight("SENDER", 15))
	assert.Equal(t, "TOOLONGVALUE"[:5], PadRight("TOOLONGVALUE", 5))
	assert.Len(t, PadRight("", 10), 10)
}
