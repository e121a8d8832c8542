package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanTextDigitConfusions(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"O before digit becomes zero", "EXP O5/12/25", "EXP 05/12/25"},
		{"I before digit becomes one", "LOT I2345 BB I2/06/26", "LOT 12345 BB 12/06/26"},
		{"S before digit becomes five", "BATCH S123", "BATCH 5123"},
		{"B before digit becomes eight", "B8 CODE B2", "88 CODE 82"},
		{"zero before uppercase becomes O", "0K FRESH", "OK FRESH"},
		{"zero after digit keeps zero", "2025-10-19", "2025-10-19"},
		{"letters inside words untouched", "JUST ORANGE JUICE", "JUST ORANGE JUICE"},
		{"best before phrase untouched", "BEST BEFORE", "BEST BEFORE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestCleanTextGlyphs(t *testing.T) {
	assert.Equal(t, "A B", CleanText("A\tB"))
	assert.Equal(t, "AB", CleanText("A\rB"))
	assert.Equal(t, "2025-10-19", CleanText("2025–10—19"), "dash glyphs canonicalized")
	assert.Equal(t, "12/06/26", CleanText("|2/06/26"), "bar reads as I, then as 1 before a digit")
}

func TestCleanTextIdempotent(t *testing.T) {
	samples := []string{
		"EXP O5/12/25",
		"BEST BEFORE I2 DEC 2025",
		"ORGANIC APPLE JUICE\nEXP: 2025.10.19",
		"LOT S123 B8",
		"0K TO EAT UNTIL 0CT",
	}
	for _, s := range samples {
		once := CleanText(s)
		assert.Equal(t, once, CleanText(once), "input: %q", s)
	}
}
