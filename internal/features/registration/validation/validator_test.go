package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paygate-onboarding-gateway/internal/features/registration/models"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func completeDraft() *models.RegistrationDraft {
	return &models.RegistrationDraft{
		OpenChannelID:            "-1001234567890",
		OpenChannelTitle:         "Preview Channel",
		OpenChannelDescription:   "Free previews",
		ClosedChannelID:          "-1009876543210",
		ClosedChannelTitle:       "Premium Channel",
		ClosedChannelDescription: "Paid content",
		TierCount:                1,
		Sub1Price:                floatPtr(9.99),
		Sub1Time:                 intPtr(30),
		ClientWalletAddress:      "0xabc0000000000000000000000000000000000000",
		ClientPayoutCurrency:     "USDT",
		ClientPayoutNetwork:      "ETH",
	}
}

func TestValidateCompleteDraft(t *testing.T) {
	res := Validate(completeDraft())

	assert.True(t, res.Valid)
	assert.Empty(t, res.FieldErrors)
	assert.Empty(t, res.FormErrors)
}

func TestValidateEmptyDraft(t *testing.T) {
	res := Validate(models.NewDraft())

	require.False(t, res.Valid)
	assert.Equal(t, MsgOpenChannelIDRequired, res.FieldErrors[models.FieldOpenChannelID])
	assert.Equal(t, MsgClosedChannelIDRequired, res.FieldErrors[models.FieldClosedChannelID])
	assert.Equal(t, MsgTitleRequired, res.FieldErrors[models.FieldOpenChannelTitle])
	assert.Equal(t, MsgDescriptionRequired, res.FieldErrors[models.FieldOpenChannelDescription])
	assert.Equal(t, MsgNetworkRequired, res.FieldErrors[models.FieldClientPayoutNetwork])
	assert.Equal(t, MsgCurrencyRequired, res.FieldErrors[models.FieldClientPayoutCurrency])
	assert.Equal(t, MsgWalletRequired, res.FieldErrors[models.FieldClientWalletAddress])
	// Form-level rule waits until the per-field checks pass.
	assert.Empty(t, res.FormErrors)
}

func TestValidateChannelID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{"valid", "-100123", ""},
		{"missing prefix", "100123", MsgChannelIDPrefix},
		{"bare dash", "-", ""},
		{"empty", "", MsgOpenChannelIDRequired},
		{"too long", "-" + strings.Repeat("1", MaxChannelIDLength), MsgChannelIDTooLong},
		{"at limit", "-" + strings.Repeat("1", MaxChannelIDLength-1), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := completeDraft()
			d.OpenChannelID = tt.id
			assert.Equal(t, tt.want, ValidateField(d, models.FieldOpenChannelID))
		})
	}
}

func TestValidateLengthLimits(t *testing.T) {
	d := completeDraft()
	d.OpenChannelTitle = strings.Repeat("a", MaxTitleLength+1)
	d.ClosedChannelDescription = strings.Repeat("b", MaxDescriptionLength+1)
	d.ClientWalletAddress = strings.Repeat("c", MaxWalletAddressLength+1)

	res := Validate(d)

	require.False(t, res.Valid)
	assert.Equal(t, MsgTitleTooLong, res.FieldErrors[models.FieldOpenChannelTitle])
	assert.Equal(t, MsgDescriptionTooLong, res.FieldErrors[models.FieldClosedChannelDescription])
	assert.Equal(t, MsgWalletTooLong, res.FieldErrors[models.FieldClientWalletAddress])
}

func TestValidateTierValues(t *testing.T) {
	t.Run("price below minimum", func(t *testing.T) {
		d := completeDraft()
		d.Sub1Price = floatPtr(0.001)

		res := Validate(d)
		require.False(t, res.Valid)
		assert.Equal(t, MsgPriceTooLow, res.FieldErrors[models.FieldSub1Price])
	})

	t.Run("duration below minimum", func(t *testing.T) {
		d := completeDraft()
		d.Sub1Time = intPtr(0)

		res := Validate(d)
		require.False(t, res.Valid)
		assert.Equal(t, MsgDurationTooLow, res.FieldErrors[models.FieldSub1Time])
	})

	t.Run("populated non-required slot is still checked", func(t *testing.T) {
		d := completeDraft()
		d.TierCount = 1
		d.Sub3Price = floatPtr(0.001)

		res := Validate(d)
		require.False(t, res.Valid)
		assert.Equal(t, MsgPriceTooLow, res.FieldErrors[models.FieldSub3Price])
	})

	t.Run("empty non-required slot passes", func(t *testing.T) {
		d := completeDraft()
		d.TierCount = 1
		d.Sub2Price = nil
		d.Sub2Time = nil

		assert.True(t, Validate(d).Valid)
	})
}

func TestValidateTiersCrossField(t *testing.T) {
	t.Run("missing duration on a required tier", func(t *testing.T) {
		d := completeDraft()
		d.TierCount = 2
		d.Sub2Price = floatPtr(19.99)
		// Sub2Time left empty.

		res := Validate(d)
		require.False(t, res.Valid)
		assert.Empty(t, res.FieldErrors)
		assert.Equal(t, []string{MsgTiersIncomplete}, res.FormErrors)
	})

	t.Run("all three tiers populated", func(t *testing.T) {
		d := completeDraft()
		d.TierCount = 3
		d.Sub2Price = floatPtr(19.99)
		d.Sub2Time = intPtr(90)
		d.Sub3Price = floatPtr(49.99)
		d.Sub3Time = intPtr(365)

		assert.True(t, Validate(d).Valid)
	})

	t.Run("cross-field rule waits for field errors", func(t *testing.T) {
		d := completeDraft()
		d.TierCount = 2
		d.OpenChannelID = "nodash"
		// Tier 2 incomplete too, but only the field error surfaces.

		res := Validate(d)
		require.False(t, res.Valid)
		assert.Equal(t, MsgChannelIDPrefix, res.FieldErrors[models.FieldOpenChannelID])
		assert.Empty(t, res.FormErrors)
	})
}

func TestRequiredTiers(t *testing.T) {
	assert.Equal(t, []int{1}, RequiredTiers(1))
	assert.Equal(t, []int{1, 2}, RequiredTiers(2))
	assert.Equal(t, []int{1, 2, 3}, RequiredTiers(3))
	// Out-of-range counts fall back to the minimum.
	assert.Equal(t, []int{1}, RequiredTiers(0))
	assert.Equal(t, []int{1}, RequiredTiers(7))
}

func TestTierRequired(t *testing.T) {
	assert.True(t, TierRequired(2, 1))
	assert.True(t, TierRequired(2, 2))
	assert.False(t, TierRequired(2, 3))
	assert.False(t, TierRequired(1, 0))
}

func TestValidTierCount(t *testing.T) {
	for _, n := range []int{1, 2, 3} {
		assert.True(t, ValidTierCount(n))
	}
	for _, n := range []int{0, -1, 4} {
		assert.False(t, ValidTierCount(n))
	}
}
