package service

import (
	"context"
	"time"

	apperrors "paygate-onboarding-gateway/internal/common/errors"
	"paygate-onboarding-gateway/internal/common/logger"
	"paygate-onboarding-gateway/internal/common/metrics"
	"paygate-onboarding-gateway/internal/features/registration/models"
	"paygate-onboarding-gateway/internal/features/registration/repository"
	"paygate-onboarding-gateway/internal/features/registration/validation"
	"paygate-onboarding-gateway/internal/platform/recaptcha"
)

// CaptchaAction scopes the anti-abuse token to the registration submit.
const CaptchaAction = "register"

const (
	MsgCaptchaNotReady  = "reCAPTCHA not ready. Please wait and try again."
	MsgCaptchaFailed    = "reCAPTCHA verification could not be completed. Please try again."
	MsgSubmitInFlight   = "A submission is already in progress."
	MsgCurrencyMismatch = "Selected currency is not available on the chosen network"
)

// submitLockTTL caps how long a crashed submission can block retries.
const submitLockTTL = 30 * time.Second

// Registrar is the upstream side of the submit pipeline.
type Registrar interface {
	Register(ctx context.Context, payload *models.RegistrationPayload) (*models.RegistrationResult, error)
}

// CurrencyChecker verifies the network/currency pairing against the cached
// reference data.
type CurrencyChecker interface {
	Supports(ctx context.Context, networkCode, currencyCode string) (bool, error)
}

// DraftView is what draft-mutating operations hand back to the UI: the new
// state, eager validation feedback for the touched fields, and any advisory
// wallet warnings.
type DraftView struct {
	Draft       *models.RegistrationDraft `json:"draft"`
	FieldErrors map[string]string         `json:"field_errors,omitempty"`
	Warnings    []string                  `json:"warnings,omitempty"`
}

type RegistrationService interface {
	// CreateDraft starts a fresh, empty draft for the session.
	CreateDraft(ctx context.Context, sessionID string) (*models.RegistrationDraft, error)
	// GetDraft returns the draft with a full validation snapshot.
	GetDraft(ctx context.Context, sessionID string) (*models.RegistrationDraft, validation.Result, error)
	// UpdateDraft applies a partial edit and validates the touched fields.
	UpdateDraft(ctx context.Context, sessionID string, update *models.DraftUpdate) (*DraftView, error)
	// SetTierCount switches the active tier count. Always legal; stored tier
	// values survive a lower count.
	SetTierCount(ctx context.Context, sessionID string, count int) (*DraftView, error)
	// Submit runs the submission pipeline exactly once for this call.
	Submit(ctx context.Context, sessionID string) (*models.RegistrationResult, error)
	// Result returns the stored outcome of a successful submit.
	Result(ctx context.Context, sessionID string) (*models.RegistrationResult, error)
}

type registrationService struct {
	repo       repository.DraftRepository
	registrar  Registrar
	captcha    recaptcha.Provider
	currencies CurrencyChecker
}

func NewRegistrationService(
	repo repository.DraftRepository,
	registrar Registrar,
	captcha recaptcha.Provider,
	currencies CurrencyChecker,
) RegistrationService {
	return &registrationService{
		repo:       repo,
		registrar:  registrar,
		captcha:    captcha,
		currencies: currencies,
	}
}

func (s *registrationService) CreateDraft(ctx context.Context, sessionID string) (*models.RegistrationDraft, error) {
	draft := models.NewDraft()
	if err := s.repo.SaveDraft(ctx, sessionID, draft); err != nil {
		return nil, apperrors.NewCacheError("save draft", err)
	}
	return draft, nil
}

func (s *registrationService) GetDraft(ctx context.Context, sessionID string) (*models.RegistrationDraft, validation.Result, error) {
	draft, err := s.loadDraft(ctx, sessionID)
	if err != nil {
		return nil, validation.Result{}, err
	}
	return draft, validation.Validate(draft), nil
}

func (s *registrationService) UpdateDraft(ctx context.Context, sessionID string, update *models.DraftUpdate) (*DraftView, error) {
	draft, err := s.loadDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	touched := update.Apply(draft)

	if err := s.repo.SaveDraft(ctx, sessionID, draft); err != nil {
		return nil, apperrors.NewCacheError("save draft", err)
	}

	view := &DraftView{Draft: draft}
	for _, field := range touched {
		if msg := validation.ValidateField(draft, field); msg != "" {
			if view.FieldErrors == nil {
				view.FieldErrors = map[string]string{}
			}
			view.FieldErrors[field] = msg
		}
	}

	if warn := validation.CheckWalletFormat(draft.ClientWalletAddress, draft.ClientPayoutNetwork); warn != "" {
		view.Warnings = append(view.Warnings, warn)
	}

	return view, nil
}

func (s *registrationService) SetTierCount(ctx context.Context, sessionID string, count int) (*DraftView, error) {
	if !validation.ValidTierCount(count) {
		return nil, apperrors.New(apperrors.ErrCodeBadRequest, "tier count must be 1, 2 or 3").
			WithDetail("count", count)
	}

	draft, err := s.loadDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Lowering the count only changes which slots are required; values stay.
	draft.TierCount = count

	if err := s.repo.SaveDraft(ctx, sessionID, draft); err != nil {
		return nil, apperrors.NewCacheError("save draft", err)
	}

	return &DraftView{Draft: draft}, nil
}

// Submit orchestrates the side-effecting pipeline: captcha readiness, full
// validation, token acquisition, payload assembly, one registration call,
// result handling. Any abort before the registration call leaves the draft
// untouched for correction and retry.
func (s *registrationService) Submit(ctx context.Context, sessionID string) (*models.RegistrationResult, error) {
	if err := s.repo.AcquireSubmitLock(ctx, sessionID, submitLockTTL); err != nil {
		if err == repository.ErrLocked {
			return nil, apperrors.New(apperrors.ErrCodeSubmitInFlight, MsgSubmitInFlight)
		}
		return nil, apperrors.NewCacheError("acquire submit lock", err)
	}
	defer func() {
		if err := s.repo.ReleaseSubmitLock(ctx, sessionID); err != nil {
			logger.Warn().Err(err).Str("session_id", sessionID).Msg("failed to release submit lock")
		}
	}()

	if !s.captcha.Ready() {
		metrics.RecordSubmission("captcha_not_ready")
		return nil, apperrors.New(apperrors.ErrCodeCaptchaNotReady, MsgCaptchaNotReady)
	}

	draft, err := s.loadDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if res := validation.Validate(draft); !res.Valid {
		metrics.RecordSubmission("validation_failed")
		return nil, validationError(res)
	}

	// Defensive re-check of the structural network/currency invariant; the
	// selectors should make a mismatch impossible, but the cached mappings
	// may have changed since the currency was picked.
	supported, err := s.currencies.Supports(ctx, draft.ClientPayoutNetwork, draft.ClientPayoutCurrency)
	if err == nil && !supported {
		metrics.RecordSubmission("validation_failed")
		res := validation.Result{
			FieldErrors: map[string]string{
				models.FieldClientPayoutCurrency: MsgCurrencyMismatch,
			},
		}
		return nil, validationError(res)
	}
	if err != nil {
		logger.Warn().Err(err).Msg("currency check skipped: mappings unavailable")
	}

	token, err := s.captcha.Execute(ctx, CaptchaAction)
	if err != nil {
		logger.Warn().Err(err).Str("session_id", sessionID).Msg("captcha token acquisition failed")
		metrics.RecordSubmission("captcha_failed")
		return nil, apperrors.Wrap(err, apperrors.ErrCodeCaptchaFailed, MsgCaptchaFailed)
	}

	result, err := s.registrar.Register(ctx, draft.Payload(token))
	if err != nil {
		// Draft survives every failure so the user can correct and retry.
		metrics.RecordSubmission("rejected")
		return nil, err
	}

	if err := s.repo.SaveResult(ctx, sessionID, result); err != nil {
		logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to store registration result")
	}
	if err := s.repo.DeleteDraft(ctx, sessionID); err != nil {
		logger.Warn().Err(err).Str("session_id", sessionID).Msg("failed to discard submitted draft")
	}

	metrics.RecordSubmission("success")
	logger.Info().
		Int64("registration_id", result.ID).
		Str("open_channel_id", result.OpenChannelID).
		Msg("channel registered")

	return result, nil
}

func (s *registrationService) Result(ctx context.Context, sessionID string) (*models.RegistrationResult, error) {
	result, err := s.repo.GetResult(ctx, sessionID)
	if err == repository.ErrNotFound {
		return nil, apperrors.New(apperrors.ErrCodeResultNotFound, "no registration result for this session")
	}
	if err != nil {
		return nil, apperrors.NewCacheError("load result", err)
	}
	return result, nil
}

func (s *registrationService) loadDraft(ctx context.Context, sessionID string) (*models.RegistrationDraft, error) {
	draft, err := s.repo.GetDraft(ctx, sessionID)
	if err == repository.ErrNotFound {
		return nil, apperrors.New(apperrors.ErrCodeDraftNotFound, "no draft for this session")
	}
	if err != nil {
		return nil, apperrors.NewCacheError("load draft", err)
	}
	return draft, nil
}

func validationError(res validation.Result) *apperrors.AppError {
	err := apperrors.New(apperrors.ErrCodeValidation, "registration draft is invalid")
	if len(res.FieldErrors) > 0 {
		err = err.WithDetail("field_errors", res.FieldErrors)
	}
	if len(res.FormErrors) > 0 {
		err = err.WithDetail("form_errors", res.FormErrors)
	}
	return err
}
