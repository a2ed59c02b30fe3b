package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestImpliedWinProbability(t *testing.T) {
	cases := []struct {
		name      string
		moneyline *int
		want      float64
	}{
		{"underdog +150", intPtr(150), 0.40},
		{"favorite -150", intPtr(-150), 0.60},
		{"pickem +100", intPtr(100), 0.50},
		{"pickem -100", intPtr(-100), 0.50},
		{"long shot +400", intPtr(400), 0.20},
		{"heavy favorite -400", intPtr(-400), 0.80},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ImpliedWinProbability(tc.moneyline)
			require.NotNil(t, got)
			assert.InDelta(t, tc.want, *got, 1e-9)
		})
	}
}

func TestImpliedWinProbabilityAbsentMoneyline(t *testing.T) {
	assert.Nil(t, ImpliedWinProbability(nil))
	assert.Nil(t, ImpliedWinProbability(intPtr(0)), "zero is not a valid American line")
}
