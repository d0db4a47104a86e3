package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		cents   int64
		wantErr bool
	}{
		{name: "plain decimal", input: "12.34", cents: 1234},
		{name: "comma separator", input: "12,34", cents: 1234},
		{name: "no fraction", input: "100", cents: 10000},
		{name: "single fractional digit", input: "50.5", cents: 5050},
		{name: "third digit rounds down", input: "12.344", cents: 1234},
		{name: "third digit rounds up", input: "12.345", cents: 1235},
		{name: "leading dot", input: ".75", cents: 75},
		{name: "whitespace trimmed", input: " 9.99 ", cents: 999},
		{name: "empty", input: "", wantErr: true},
		{name: "negative", input: "-5.00", wantErr: true},
		{name: "explicit plus", input: "+5.00", wantErr: true},
		{name: "zero", input: "0.00", wantErr: true},
		{name: "letters", input: "12.3a", wantErr: true},
		{name: "two separators", input: "1.2.3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMoney(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.cents, got.Cents)
		})
	}
}

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "170.50", Money{Cents: 17050}.String())
	assert.Equal(t, "0.05", Money{Cents: 5}.String())
	assert.Equal(t, "3.00", Money{Cents: 300}.String())

	// Negative magnitudes never come out of ParseMoney, but a hand-built
	// value still formats with a single leading sign.
	assert.Equal(t, "-0.50", Money{Cents: -50}.String())
	assert.Equal(t, "-12.34", Money{Cents: -1234}.String())
}

func TestMoneyAdd(t *testing.T) {
	sum := Money{Cents: 10000}.Add(Money{Cents: 5050})
	assert.Equal(t, int64(15050), sum.Cents)
}
