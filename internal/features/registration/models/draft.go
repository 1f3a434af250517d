package models

import "time"

const (
	MinTierCount = 1
	MaxTierCount = 3
)

// RegistrationDraft is the in-progress form state for one onboarding session.
// Tier slots beyond the selected count keep their values; whether a slot is
// required is derived from TierCount, never stored.
type RegistrationDraft struct {
	OpenChannelID          string `json:"open_channel_id"`
	OpenChannelTitle       string `json:"open_channel_title"`
	OpenChannelDescription string `json:"open_channel_description"`

	ClosedChannelID          string `json:"closed_channel_id"`
	ClosedChannelTitle       string `json:"closed_channel_title"`
	ClosedChannelDescription string `json:"closed_channel_description"`

	TierCount int `json:"tier_count"`

	Sub1Price *float64 `json:"sub_1_price,omitempty"`
	Sub1Time  *int     `json:"sub_1_time,omitempty"`
	Sub2Price *float64 `json:"sub_2_price,omitempty"`
	Sub2Time  *int     `json:"sub_2_time,omitempty"`
	Sub3Price *float64 `json:"sub_3_price,omitempty"`
	Sub3Time  *int     `json:"sub_3_time,omitempty"`

	ClientWalletAddress  string `json:"client_wallet_address"`
	ClientPayoutCurrency string `json:"client_payout_currency"`
	ClientPayoutNetwork  string `json:"client_payout_network"`
}

// NewDraft returns an empty draft with the default single tier.
func NewDraft() *RegistrationDraft {
	return &RegistrationDraft{TierCount: MinTierCount}
}

// Tier returns the price and duration of tier slot i (1-based).
func (d *RegistrationDraft) Tier(i int) (price *float64, days *int) {
	switch i {
	case 1:
		return d.Sub1Price, d.Sub1Time
	case 2:
		return d.Sub2Price, d.Sub2Time
	case 3:
		return d.Sub3Price, d.Sub3Time
	}
	return nil, nil
}

// Payload assembles the outbound registration record. Tier values not covered
// by the selected count pass through as-is: present if populated, absent
// otherwise.
func (d *RegistrationDraft) Payload(captchaToken string) *RegistrationPayload {
	return &RegistrationPayload{
		OpenChannelID:            d.OpenChannelID,
		OpenChannelTitle:         d.OpenChannelTitle,
		OpenChannelDescription:   d.OpenChannelDescription,
		ClosedChannelID:          d.ClosedChannelID,
		ClosedChannelTitle:       d.ClosedChannelTitle,
		ClosedChannelDescription: d.ClosedChannelDescription,
		Sub1Price:                d.Sub1Price,
		Sub1Time:                 d.Sub1Time,
		Sub2Price:                d.Sub2Price,
		Sub2Time:                 d.Sub2Time,
		Sub3Price:                d.Sub3Price,
		Sub3Time:                 d.Sub3Time,
		ClientWalletAddress:      d.ClientWalletAddress,
		ClientPayoutCurrency:     d.ClientPayoutCurrency,
		ClientPayoutNetwork:      d.ClientPayoutNetwork,
		CaptchaToken:             captchaToken,
	}
}

// RegistrationPayload is the wire record sent to the registration API.
type RegistrationPayload struct {
	OpenChannelID            string   `json:"open_channel_id"`
	OpenChannelTitle         string   `json:"open_channel_title"`
	OpenChannelDescription   string   `json:"open_channel_description"`
	ClosedChannelID          string   `json:"closed_channel_id"`
	ClosedChannelTitle       string   `json:"closed_channel_title"`
	ClosedChannelDescription string   `json:"closed_channel_description"`
	Sub1Price                *float64 `json:"sub_1_price,omitempty"`
	Sub1Time                 *int     `json:"sub_1_time,omitempty"`
	Sub2Price                *float64 `json:"sub_2_price,omitempty"`
	Sub2Time                 *int     `json:"sub_2_time,omitempty"`
	Sub3Price                *float64 `json:"sub_3_price,omitempty"`
	Sub3Time                 *int     `json:"sub_3_time,omitempty"`
	ClientWalletAddress      string   `json:"client_wallet_address"`
	ClientPayoutCurrency     string   `json:"client_payout_currency"`
	ClientPayoutNetwork      string   `json:"client_payout_network"`
	CaptchaToken             string   `json:"captcha_token"`
}

// RegistrationResult is the server-confirmed outcome. Immutable once received;
// displayed, never re-submitted.
type RegistrationResult struct {
	ID                 int64     `json:"id"`
	OpenChannelID      string    `json:"open_channel_id"`
	OpenChannelTitle   string    `json:"open_channel_title"`
	ClosedChannelID    string    `json:"closed_channel_id"`
	ClosedChannelTitle string    `json:"closed_channel_title"`
	CreatedAt          time.Time `json:"created_at"`
	IsActive           bool      `json:"is_active"`
	Verified           bool      `json:"verified"`
}
