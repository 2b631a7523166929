package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRange(t *testing.T) {
	today := MustParseDate("2025-10-01")

	tests := []struct {
		name    string
		start   string
		end     string
		valid   bool
		message string
	}{
		{name: "unparseable start", start: "not-a-date", end: "2025-10-20", message: MsgInvalidDates},
		{name: "unparseable end", start: "2025-10-13", end: "", message: MsgInvalidDates},
		{name: "start in the past", start: "2025-09-30", end: "2025-10-20", message: MsgStartInPast},
		{name: "end equals start", start: "2025-10-13", end: "2025-10-13", message: MsgEndNotAfter},
		{name: "end before start", start: "2025-10-13", end: "2025-10-10", message: MsgEndNotAfter},
		{name: "five day span", start: "2025-10-13", end: "2025-10-18", message: MsgRangeTooShort},
		{name: "six day span", start: "2025-10-13", end: "2025-10-19", message: MsgRangeTooShort},
		{name: "exactly one week", start: "2025-10-13", end: "2025-10-20", valid: true},
		{name: "starting today", start: "2025-10-01", end: "2025-10-31", valid: true},
		{name: "exactly ninety days", start: "2025-10-01", end: "2025-12-30", valid: true},
		{name: "ninety one days", start: "2025-10-01", end: "2025-12-31", message: MsgRangeTooLong},
		{name: "timestamps are read as dates", start: "2025-10-13T18:00:00Z", end: "2025-10-20T01:00:00Z", valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateRange(tt.start, tt.end, today)
			assert.Equal(t, tt.valid, got.Valid)
			assert.Equal(t, tt.message, got.Message)
		})
	}
}

func TestValidateRange_SpanProperty(t *testing.T) {
	today := MustParseDate("2025-10-01")
	start := today.AddDays(3)

	for span := -5; span <= 120; span++ {
		end := start.AddDays(span)
		got := ValidateDates(start, end, today)
		want := span >= MinRangeDays && span <= MaxRangeDays
		assert.Equal(t, want, got.Valid, "span %d", span)
	}
}

func TestValidateRange_PastStartWinsOverSpan(t *testing.T) {
	today := MustParseDate("2025-10-01")
	got := ValidateRange("2025-09-01", "2025-09-03", today)
	assert.Equal(t, MsgStartInPast, got.Message)
}
