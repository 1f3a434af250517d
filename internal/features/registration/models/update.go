package models

// Field names used by the validator and by PATCH updates.
const (
	FieldOpenChannelID            = "open_channel_id"
	FieldOpenChannelTitle         = "open_channel_title"
	FieldOpenChannelDescription   = "open_channel_description"
	FieldClosedChannelID          = "closed_channel_id"
	FieldClosedChannelTitle       = "closed_channel_title"
	FieldClosedChannelDescription = "closed_channel_description"
	FieldSub1Price                = "sub_1_price"
	FieldSub1Time                 = "sub_1_time"
	FieldSub2Price                = "sub_2_price"
	FieldSub2Time                 = "sub_2_time"
	FieldSub3Price                = "sub_3_price"
	FieldSub3Time                 = "sub_3_time"
	FieldClientWalletAddress      = "client_wallet_address"
	FieldClientPayoutCurrency     = "client_payout_currency"
	FieldClientPayoutNetwork      = "client_payout_network"
)

// DraftUpdate is a partial form edit: only present fields are applied.
type DraftUpdate struct {
	OpenChannelID          *string `json:"open_channel_id,omitempty"`
	OpenChannelTitle       *string `json:"open_channel_title,omitempty"`
	OpenChannelDescription *string `json:"open_channel_description,omitempty"`

	ClosedChannelID          *string `json:"closed_channel_id,omitempty"`
	ClosedChannelTitle       *string `json:"closed_channel_title,omitempty"`
	ClosedChannelDescription *string `json:"closed_channel_description,omitempty"`

	Sub1Price *float64 `json:"sub_1_price,omitempty"`
	Sub1Time  *int     `json:"sub_1_time,omitempty"`
	Sub2Price *float64 `json:"sub_2_price,omitempty"`
	Sub2Time  *int     `json:"sub_2_time,omitempty"`
	Sub3Price *float64 `json:"sub_3_price,omitempty"`
	Sub3Time  *int     `json:"sub_3_time,omitempty"`

	ClientWalletAddress  *string `json:"client_wallet_address,omitempty"`
	ClientPayoutCurrency *string `json:"client_payout_currency,omitempty"`
	ClientPayoutNetwork  *string `json:"client_payout_network,omitempty"`
}

// Apply mutates the draft with the present fields and returns the names of the
// fields that were touched. Changing the payout network resets the currency so
// a currency from the previous network can never survive the switch.
func (u *DraftUpdate) Apply(d *RegistrationDraft) []string {
	var touched []string

	setStr := func(dst *string, src *string, name string) {
		if src != nil {
			*dst = *src
			touched = append(touched, name)
		}
	}
	setFloat := func(dst **float64, src *float64, name string) {
		if src != nil {
			*dst = src
			touched = append(touched, name)
		}
	}
	setInt := func(dst **int, src *int, name string) {
		if src != nil {
			*dst = src
			touched = append(touched, name)
		}
	}

	setStr(&d.OpenChannelID, u.OpenChannelID, FieldOpenChannelID)
	setStr(&d.OpenChannelTitle, u.OpenChannelTitle, FieldOpenChannelTitle)
	setStr(&d.OpenChannelDescription, u.OpenChannelDescription, FieldOpenChannelDescription)
	setStr(&d.ClosedChannelID, u.ClosedChannelID, FieldClosedChannelID)
	setStr(&d.ClosedChannelTitle, u.ClosedChannelTitle, FieldClosedChannelTitle)
	setStr(&d.ClosedChannelDescription, u.ClosedChannelDescription, FieldClosedChannelDescription)

	setFloat(&d.Sub1Price, u.Sub1Price, FieldSub1Price)
	setInt(&d.Sub1Time, u.Sub1Time, FieldSub1Time)
	setFloat(&d.Sub2Price, u.Sub2Price, FieldSub2Price)
	setInt(&d.Sub2Time, u.Sub2Time, FieldSub2Time)
	setFloat(&d.Sub3Price, u.Sub3Price, FieldSub3Price)
	setInt(&d.Sub3Time, u.Sub3Time, FieldSub3Time)

	setStr(&d.ClientWalletAddress, u.ClientWalletAddress, FieldClientWalletAddress)

	if u.ClientPayoutNetwork != nil && *u.ClientPayoutNetwork != d.ClientPayoutNetwork {
		d.ClientPayoutNetwork = *u.ClientPayoutNetwork
		d.ClientPayoutCurrency = ""
		touched = append(touched, FieldClientPayoutNetwork, FieldClientPayoutCurrency)
	}
	// Currency applies after the network so an update carrying both lands on
	// the new network.
	setStr(&d.ClientPayoutCurrency, u.ClientPayoutCurrency, FieldClientPayoutCurrency)

	return touched
}
