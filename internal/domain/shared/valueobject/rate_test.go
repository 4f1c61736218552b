package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSanitizeVATRate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain integer", "20", "20"},
		{"decimal point", "7.5", "7.5"},
		{"comma decimal", "7,5", "7.5"},
		{"padded", "  14 ", "14"},
		{"garbage coerces to zero", "abc", "0"},
		{"empty coerces to zero", "", "0"},
		{"negative coerces to zero", "-10", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, _ := decimal.NewFromString(tt.want)
			assert.True(t, SanitizeVATRate(tt.raw).Equal(want), "got %s", SanitizeVATRate(tt.raw))
		})
	}
}

func TestSanitizeVATRateDecimal(t *testing.T) {
	assert.True(t, SanitizeVATRateDecimal(decimal.NewFromInt(-5)).IsZero())
	assert.True(t, SanitizeVATRateDecimal(decimal.NewFromInt(20)).Equal(decimal.NewFromInt(20)))
}

func TestClampDiscountPercent(t *testing.T) {
	tests := []struct {
		name  string
		input int64
		want  int64
	}{
		{"negative clamps to zero", -10, 0},
		{"in range passes through", 35, 35},
		{"over 100 clamps to 100", 150, 100},
		{"boundary 100", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampDiscountPercent(decimal.NewFromInt(tt.input))
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "got %s", got)
		})
	}
}
