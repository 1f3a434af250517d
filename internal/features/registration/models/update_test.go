package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestApplyTouchesOnlyPresentFields(t *testing.T) {
	d := NewDraft()
	d.OpenChannelTitle = "Old title"

	touched := (&DraftUpdate{
		OpenChannelID: strPtr("-100123"),
		Sub1Price:     floatPtr(9.99),
	}).Apply(d)

	assert.ElementsMatch(t, []string{FieldOpenChannelID, FieldSub1Price}, touched)
	assert.Equal(t, "-100123", d.OpenChannelID)
	require.NotNil(t, d.Sub1Price)
	assert.Equal(t, 9.99, *d.Sub1Price)
	// Absent fields stay untouched.
	assert.Equal(t, "Old title", d.OpenChannelTitle)
	assert.Nil(t, d.Sub1Time)
}

func TestApplyNetworkChangeResetsCurrency(t *testing.T) {
	d := NewDraft()
	d.ClientPayoutNetwork = "ETH"
	d.ClientPayoutCurrency = "USDT"

	touched := (&DraftUpdate{ClientPayoutNetwork: strPtr("TON")}).Apply(d)

	assert.Equal(t, "TON", d.ClientPayoutNetwork)
	assert.Empty(t, d.ClientPayoutCurrency)
	// Both fields count as touched so the currency is revalidated.
	assert.ElementsMatch(t, []string{FieldClientPayoutNetwork, FieldClientPayoutCurrency}, touched)
}

func TestApplySameNetworkKeepsCurrency(t *testing.T) {
	d := NewDraft()
	d.ClientPayoutNetwork = "ETH"
	d.ClientPayoutCurrency = "USDT"

	touched := (&DraftUpdate{ClientPayoutNetwork: strPtr("ETH")}).Apply(d)

	assert.Equal(t, "USDT", d.ClientPayoutCurrency)
	assert.Empty(t, touched)
}

func TestApplyNetworkAndCurrencyTogether(t *testing.T) {
	d := NewDraft()
	d.ClientPayoutNetwork = "ETH"
	d.ClientPayoutCurrency = "USDT"

	(&DraftUpdate{
		ClientPayoutNetwork:  strPtr("TON"),
		ClientPayoutCurrency: strPtr("TON"),
	}).Apply(d)

	// The currency lands on the new network instead of being lost to the reset.
	assert.Equal(t, "TON", d.ClientPayoutNetwork)
	assert.Equal(t, "TON", d.ClientPayoutCurrency)
}

func TestTierAccessor(t *testing.T) {
	d := NewDraft()
	d.Sub2Price = floatPtr(19.99)
	d.Sub2Time = intPtr(90)

	price, days := d.Tier(2)
	require.NotNil(t, price)
	require.NotNil(t, days)
	assert.Equal(t, 19.99, *price)
	assert.Equal(t, 90, *days)

	price, days = d.Tier(1)
	assert.Nil(t, price)
	assert.Nil(t, days)

	price, days = d.Tier(5)
	assert.Nil(t, price)
	assert.Nil(t, days)
}

func TestPayloadCarriesEverything(t *testing.T) {
	d := NewDraft()
	d.OpenChannelID = "-100123"
	d.TierCount = 1
	d.Sub1Price = floatPtr(9.99)
	d.Sub1Time = intPtr(30)
	// Populated values beyond the tier count pass through as-is.
	d.Sub3Price = floatPtr(49.99)
	d.ClientPayoutNetwork = "ETH"
	d.ClientPayoutCurrency = "USDT"
	d.ClientWalletAddress = "0xabc"

	payload := d.Payload("tok-1")

	assert.Equal(t, "tok-1", payload.CaptchaToken)
	assert.Equal(t, "-100123", payload.OpenChannelID)
	assert.Equal(t, d.Sub1Price, payload.Sub1Price)
	assert.Equal(t, d.Sub3Price, payload.Sub3Price)
	assert.Nil(t, payload.Sub2Price)
	assert.Equal(t, "ETH", payload.ClientPayoutNetwork)
}
