package pricing_test

import (
	"fmt"
	"math"
	"testing"

	"taza/internal/core/domain/model/pricing"
	"taza/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_MarketAlignedPrice(t *testing.T) {
	t.Run("price equal to average classifies as fair", func(t *testing.T) {
		eval, err := pricing.Evaluate(1000, 1000)

		require.NoError(t, err)
		assert.Equal(t, 0, eval.DeltaPercent)
		assert.Equal(t, pricing.Fair, eval.Band)
		assert.Equal(t, 100, eval.Index)
		assert.False(t, eval.ProtectionEnabled)
		assert.InDelta(t, 1000.0, eval.RecommendedPrice, 0.0001)
	})
}

func TestEvaluate_BelowMarketPrice(t *testing.T) {
	t.Run("forty percent below average is too_low", func(t *testing.T) {
		eval, err := pricing.Evaluate(600, 1000)

		require.NoError(t, err)
		assert.Equal(t, -40, eval.DeltaPercent)
		assert.Equal(t, pricing.TooLow, eval.Band)
		assert.Equal(t, 60, eval.Index)
		assert.False(t, eval.ProtectionEnabled)
	})

	t.Run("below-market offers get the fair band edge recommended", func(t *testing.T) {
		eval, err := pricing.Evaluate(600, 1000)

		require.NoError(t, err)
		assert.InDelta(t, 900.0, eval.RecommendedPrice, 0.0001)
	})

	t.Run("twenty percent below average is moderately_low", func(t *testing.T) {
		eval, err := pricing.Evaluate(800, 1000)

		require.NoError(t, err)
		assert.Equal(t, -20, eval.DeltaPercent)
		assert.Equal(t, pricing.ModeratelyLow, eval.Band)
		assert.InDelta(t, 900.0, eval.RecommendedPrice, 0.0001)
	})
}

func TestEvaluate_AboveMarketPrice(t *testing.T) {
	t.Run("forty percent above average is vip with protection", func(t *testing.T) {
		eval, err := pricing.Evaluate(1400, 1000)

		require.NoError(t, err)
		assert.Equal(t, 40, eval.DeltaPercent)
		assert.Equal(t, pricing.VIP, eval.Band)
		assert.Equal(t, 140, eval.Index)
		assert.True(t, eval.ProtectionEnabled)
	})

	t.Run("twenty percent above average is premium without protection", func(t *testing.T) {
		eval, err := pricing.Evaluate(1200, 1000)

		require.NoError(t, err)
		assert.Equal(t, pricing.Premium, eval.Band)
		assert.Equal(t, 120, eval.Index)
		assert.False(t, eval.ProtectionEnabled)
	})

	t.Run("above-market offers are not corrected downward", func(t *testing.T) {
		eval, err := pricing.Evaluate(1400, 1000)

		require.NoError(t, err)
		assert.InDelta(t, 1000.0, eval.RecommendedPrice, 0.0001)
	})
}

func TestEvaluate_BandBoundaries(t *testing.T) {
	testCases := []struct {
		price    float64
		expected pricing.Band
	}{
		{700, pricing.TooLow},        // -30, inclusive edge of too_low
		{710, pricing.ModeratelyLow}, // -29, just inside moderately_low
		{890, pricing.ModeratelyLow}, // -11, just outside fair
		{900, pricing.Fair},          // -10, inclusive edge of fair
		{1100, pricing.Fair},         // +10, inclusive edge of fair
		{1110, pricing.Premium},      // +11, just inside premium
		{1300, pricing.Premium},      // +30, inclusive edge of premium
		{1310, pricing.VIP},          // +31, just inside vip
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("price %.0f maps to %s", tc.price, tc.expected), func(t *testing.T) {
			eval, err := pricing.Evaluate(tc.price, 1000)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, eval.Band)
		})
	}
}

func TestEvaluate_Monotonicity(t *testing.T) {
	t.Run("delta never decreases as price increases", func(t *testing.T) {
		prevDelta := math.MinInt
		prevBand := pricing.BandUnknown

		for price := 0.0; price <= 2000; price += 25 {
			eval, err := pricing.Evaluate(price, 1000)
			require.NoError(t, err)

			assert.GreaterOrEqual(t, eval.DeltaPercent, prevDelta,
				"delta decreased at price %.0f", price)
			if prevBand != pricing.BandUnknown {
				assert.GreaterOrEqual(t, int(eval.Band), int(prevBand),
					"band moved backward at price %.0f", price)
			}
			prevDelta = eval.DeltaPercent
			prevBand = eval.Band
		}
	})
}

func TestEvaluate_Determinism(t *testing.T) {
	t.Run("identical inputs produce identical output", func(t *testing.T) {
		first, err := pricing.Evaluate(777, 1234)
		require.NoError(t, err)

		second, err := pricing.Evaluate(777, 1234)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestEvaluate_InvalidInput(t *testing.T) {
	t.Run("rejects non-positive market average", func(t *testing.T) {
		for _, avg := range []float64{0, -1, -1000} {
			_, err := pricing.Evaluate(1000, avg)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := pricing.Evaluate(-1, 1000)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects non-finite inputs", func(t *testing.T) {
		_, err := pricing.Evaluate(math.NaN(), 1000)
		require.Error(t, err)

		_, err = pricing.Evaluate(1000, math.Inf(1))
		require.Error(t, err)
	})
}

func TestEvaluation_DisplayIndex(t *testing.T) {
	t.Run("caps the index at 150 for display", func(t *testing.T) {
		eval, err := pricing.Evaluate(2000, 1000)

		require.NoError(t, err)
		assert.Equal(t, 200, eval.Index)
		assert.Equal(t, 150, eval.DisplayIndex())
	})

	t.Run("leaves indexes under the cap untouched", func(t *testing.T) {
		eval, err := pricing.Evaluate(1200, 1000)

		require.NoError(t, err)
		assert.Equal(t, 120, eval.DisplayIndex())
	})
}

func TestBand_Attributes(t *testing.T) {
	t.Run("bands expose stable identifiers", func(t *testing.T) {
		assert.Equal(t, "too_low", pricing.TooLow.ID())
		assert.Equal(t, "moderately_low", pricing.ModeratelyLow.ID())
		assert.Equal(t, "fair", pricing.Fair.ID())
		assert.Equal(t, "premium", pricing.Premium.ID())
		assert.Equal(t, "vip", pricing.VIP.ID())
		assert.Equal(t, "unknown", pricing.BandUnknown.ID())
	})

	t.Run("fair has the lowest severity rank", func(t *testing.T) {
		assert.Equal(t, 0, pricing.Fair.SeverityRank())
		assert.Greater(t, pricing.TooLow.SeverityRank(), pricing.ModeratelyLow.SeverityRank())
		assert.Greater(t, pricing.ModeratelyLow.SeverityRank(), pricing.VIP.SeverityRank())
		assert.Greater(t, pricing.VIP.SeverityRank(), pricing.Premium.SeverityRank())
	})
}
