package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "₱0.00"},
		{"10", "₱10.00"},
		{"1234.5", "₱1,234.50"},
		{"999.999", "₱1,000.00"},
		{"1000000", "₱1,000,000.00"},
		{"123456.78", "₱123,456.78"},
		{"-5", "-₱5.00"},
		{"-0.001", "₱0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(decimal.RequireFromString(tt.in), DefaultSymbol))
		})
	}
}

func TestFormatter(t *testing.T) {
	assert.Equal(t, "$20.00", NewFormatter("$").Format(decimal.NewFromInt(20)))
	assert.Equal(t, "₱20.00", NewFormatter("").Format(decimal.NewFromInt(20)))
}
