package validation

import (
	"strings"

	"paygate-onboarding-gateway/internal/features/registration/models"
)

// Field limits, mirrored by the registration API.
const (
	MaxChannelIDLength     = 50
	MaxTitleLength         = 100
	MaxDescriptionLength   = 500
	MaxWalletAddressLength = 110

	MinTierPrice    = 0.01
	MinTierDuration = 1
)

// User-facing messages. These are rendered next to the fields verbatim, so
// wording changes are breaking.
const (
	MsgOpenChannelIDRequired   = "Open Channel ID is required"
	MsgClosedChannelIDRequired = "Closed Channel ID is required"
	MsgChannelIDPrefix         = `Channel ID must start with "-"`
	MsgChannelIDTooLong        = "Channel ID too long"
	MsgTitleRequired           = "Channel title is required"
	MsgTitleTooLong            = "Title too long"
	MsgDescriptionRequired     = "Description is required"
	MsgDescriptionTooLong      = "Description too long"
	MsgPriceTooLow             = "Price must be at least 0.01"
	MsgDurationTooLow          = "Duration must be at least 1 day"
	MsgNetworkRequired         = "Network is required"
	MsgCurrencyRequired        = "Currency is required"
	MsgWalletRequired          = "Wallet address is required"
	MsgWalletTooLong           = "Wallet address too long"

	MsgTiersIncomplete = "All selected tiers must have price and time values"
)

// Result is the structured outcome of validating a draft. Validation never
// reports through Go errors; the caller renders these as-is.
type Result struct {
	Valid       bool              `json:"valid"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
	FormErrors  []string          `json:"form_errors,omitempty"`
}

// RequiredTiers returns the tier indices that must be fully populated for the
// given tier count. Derived on demand, never cached.
func RequiredTiers(count int) []int {
	if count < models.MinTierCount || count > models.MaxTierCount {
		count = models.MinTierCount
	}
	tiers := make([]int, 0, count)
	for i := 1; i <= count; i++ {
		tiers = append(tiers, i)
	}
	return tiers
}

// TierRequired reports whether tier slot i must be populated under count.
func TierRequired(count, i int) bool {
	return i >= models.MinTierCount && i <= count
}

// ValidTierCount reports whether n is a legal tier count.
func ValidTierCount(n int) bool {
	return n >= models.MinTierCount && n <= models.MaxTierCount
}

// Validate runs every per-field rule and, when those all pass, the cross-field
// tier rule. Pure: no I/O, no mutation of the draft.
func Validate(d *models.RegistrationDraft) Result {
	res := Result{FieldErrors: map[string]string{}}

	for _, field := range allFields {
		if msg := ValidateField(d, field); msg != "" {
			res.FieldErrors[field] = msg
		}
	}

	// The cross-field rule is only evaluated once the per-field checks pass,
	// matching the submit-time behavior of the form.
	if len(res.FieldErrors) == 0 {
		if !tiersComplete(d) {
			res.FormErrors = append(res.FormErrors, MsgTiersIncomplete)
		}
	}

	res.Valid = len(res.FieldErrors) == 0 && len(res.FormErrors) == 0
	if len(res.FieldErrors) == 0 {
		res.FieldErrors = nil
	}
	return res
}

var allFields = []string{
	models.FieldOpenChannelID,
	models.FieldOpenChannelTitle,
	models.FieldOpenChannelDescription,
	models.FieldClosedChannelID,
	models.FieldClosedChannelTitle,
	models.FieldClosedChannelDescription,
	models.FieldSub1Price,
	models.FieldSub1Time,
	models.FieldSub2Price,
	models.FieldSub2Time,
	models.FieldSub3Price,
	models.FieldSub3Time,
	models.FieldClientPayoutNetwork,
	models.FieldClientPayoutCurrency,
	models.FieldClientWalletAddress,
}

// ValidateField checks a single field for eager, per-keystroke feedback.
// Returns the empty string when the field passes. Tier price/duration values
// are checked whenever present, even on slots the current tier count does not
// require; presence itself is the cross-field rule's concern.
func ValidateField(d *models.RegistrationDraft, field string) string {
	switch field {
	case models.FieldOpenChannelID:
		return channelIDError(d.OpenChannelID, MsgOpenChannelIDRequired)
	case models.FieldClosedChannelID:
		return channelIDError(d.ClosedChannelID, MsgClosedChannelIDRequired)
	case models.FieldOpenChannelTitle:
		return titleError(d.OpenChannelTitle)
	case models.FieldClosedChannelTitle:
		return titleError(d.ClosedChannelTitle)
	case models.FieldOpenChannelDescription:
		return descriptionError(d.OpenChannelDescription)
	case models.FieldClosedChannelDescription:
		return descriptionError(d.ClosedChannelDescription)
	case models.FieldSub1Price:
		return priceError(d.Sub1Price)
	case models.FieldSub2Price:
		return priceError(d.Sub2Price)
	case models.FieldSub3Price:
		return priceError(d.Sub3Price)
	case models.FieldSub1Time:
		return durationError(d.Sub1Time)
	case models.FieldSub2Time:
		return durationError(d.Sub2Time)
	case models.FieldSub3Time:
		return durationError(d.Sub3Time)
	case models.FieldClientPayoutNetwork:
		if d.ClientPayoutNetwork == "" {
			return MsgNetworkRequired
		}
	case models.FieldClientPayoutCurrency:
		if d.ClientPayoutCurrency == "" {
			return MsgCurrencyRequired
		}
	case models.FieldClientWalletAddress:
		if d.ClientWalletAddress == "" {
			return MsgWalletRequired
		}
		if len(d.ClientWalletAddress) > MaxWalletAddressLength {
			return MsgWalletTooLong
		}
	}
	return ""
}

func channelIDError(id, requiredMsg string) string {
	if id == "" {
		return requiredMsg
	}
	if !strings.HasPrefix(id, "-") {
		return MsgChannelIDPrefix
	}
	if len(id) > MaxChannelIDLength {
		return MsgChannelIDTooLong
	}
	return ""
}

func titleError(title string) string {
	if title == "" {
		return MsgTitleRequired
	}
	if len(title) > MaxTitleLength {
		return MsgTitleTooLong
	}
	return ""
}

func descriptionError(desc string) string {
	if desc == "" {
		return MsgDescriptionRequired
	}
	if len(desc) > MaxDescriptionLength {
		return MsgDescriptionTooLong
	}
	return ""
}

func priceError(price *float64) string {
	if price != nil && *price < MinTierPrice {
		return MsgPriceTooLow
	}
	return ""
}

func durationError(days *int) string {
	if days != nil && *days < MinTierDuration {
		return MsgDurationTooLow
	}
	return ""
}

func tiersComplete(d *models.RegistrationDraft) bool {
	for _, i := range RequiredTiers(d.TierCount) {
		price, days := d.Tier(i)
		if price == nil || days == nil {
			return false
		}
	}
	return true
}
