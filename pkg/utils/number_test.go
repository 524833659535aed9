package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "dízima", in: 33.3333, want: 33.33},
		{name: "arredonda para cima", in: 66.666, want: 66.67},
		{name: "meio", in: 12.345, want: 12.35},
		{name: "zero", in: 0, want: 0},
		{name: "NaN", in: math.NaN(), want: 0},
		{name: "infinito", in: math.Inf(1), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundWithTwoDecimalPlace(tt.in))
		})
	}
}
