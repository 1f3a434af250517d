package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "paygate-onboarding-gateway/internal/common/errors"
	"paygate-onboarding-gateway/internal/features/registration/models"
	"paygate-onboarding-gateway/internal/features/registration/repository"
	"paygate-onboarding-gateway/internal/features/registration/validation"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }

type fakeRepo struct {
	drafts  map[string]*models.RegistrationDraft
	results map[string]*models.RegistrationResult
	locked  map[string]bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		drafts:  map[string]*models.RegistrationDraft{},
		results: map[string]*models.RegistrationResult{},
		locked:  map[string]bool{},
	}
}

func (r *fakeRepo) GetDraft(_ context.Context, sessionID string) (*models.RegistrationDraft, error) {
	draft, ok := r.drafts[sessionID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *draft
	return &copied, nil
}

func (r *fakeRepo) SaveDraft(_ context.Context, sessionID string, draft *models.RegistrationDraft) error {
	copied := *draft
	r.drafts[sessionID] = &copied
	return nil
}

func (r *fakeRepo) DeleteDraft(_ context.Context, sessionID string) error {
	delete(r.drafts, sessionID)
	return nil
}

func (r *fakeRepo) GetResult(_ context.Context, sessionID string) (*models.RegistrationResult, error) {
	result, ok := r.results[sessionID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return result, nil
}

func (r *fakeRepo) SaveResult(_ context.Context, sessionID string, result *models.RegistrationResult) error {
	r.results[sessionID] = result
	return nil
}

func (r *fakeRepo) AcquireSubmitLock(_ context.Context, sessionID string, _ time.Duration) error {
	if r.locked[sessionID] {
		return repository.ErrLocked
	}
	r.locked[sessionID] = true
	return nil
}

func (r *fakeRepo) ReleaseSubmitLock(_ context.Context, sessionID string) error {
	delete(r.locked, sessionID)
	return nil
}

type fakeCaptcha struct {
	ready bool
	token string
	err   error
	calls int
}

func (c *fakeCaptcha) Ready() bool { return c.ready }

func (c *fakeCaptcha) Execute(_ context.Context, _ string) (string, error) {
	c.calls++
	if c.err != nil {
		return "", c.err
	}
	return c.token, nil
}

type fakeRegistrar struct {
	result  *models.RegistrationResult
	err     error
	calls   int
	payload *models.RegistrationPayload
}

func (r *fakeRegistrar) Register(_ context.Context, payload *models.RegistrationPayload) (*models.RegistrationResult, error) {
	r.calls++
	r.payload = payload
	if r.err != nil {
		return nil, r.err
	}
	return r.result, nil
}

type fakeCurrencies struct {
	supported bool
	err       error
}

func (c *fakeCurrencies) Supports(_ context.Context, _, _ string) (bool, error) {
	return c.supported, c.err
}

func validDraft() *models.RegistrationDraft {
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

type fixture struct {
	repo      *fakeRepo
	captcha   *fakeCaptcha
	registrar *fakeRegistrar
	svc       RegistrationService
}

func newFixture(captcha *fakeCaptcha, registrar *fakeRegistrar, currencies *fakeCurrencies) *fixture {
	repo := newFakeRepo()
	return &fixture{
		repo:      repo,
		captcha:   captcha,
		registrar: registrar,
		svc:       NewRegistrationService(repo, registrar, captcha, currencies),
	}
}

func TestSubmitSuccess(t *testing.T) {
	want := &models.RegistrationResult{ID: 42, OpenChannelID: "-1001234567890", IsActive: true}
	f := newFixture(
		&fakeCaptcha{ready: true, token: "tok-123"},
		&fakeRegistrar{result: want},
		&fakeCurrencies{supported: true},
	)
	f.repo.drafts["s1"] = validDraft()

	result, err := f.svc.Submit(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, want, result)
	assert.Equal(t, 1, f.registrar.calls)
	assert.Equal(t, "tok-123", f.registrar.payload.CaptchaToken)

	// Draft consumed, result stored, lock released.
	_, ok := f.repo.drafts["s1"]
	assert.False(t, ok)
	assert.Equal(t, want, f.repo.results["s1"])
	assert.False(t, f.repo.locked["s1"])
}

func TestSubmitCaptchaNotReady(t *testing.T) {
	f := newFixture(
		&fakeCaptcha{ready: false},
		&fakeRegistrar{},
		&fakeCurrencies{supported: true},
	)
	f.repo.drafts["s1"] = validDraft()

	_, err := f.svc.Submit(context.Background(), "s1")

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeCaptchaNotReady, appErr.Code)
	assert.Equal(t, MsgCaptchaNotReady, appErr.Message)
	assert.Zero(t, f.registrar.calls)
	assert.Zero(t, f.captcha.calls)

	// Draft preserved for retry.
	_, ok = f.repo.drafts["s1"]
	assert.True(t, ok)
}

func TestSubmitInvalidDraft(t *testing.T) {
	f := newFixture(
		&fakeCaptcha{ready: true, token: "tok"},
		&fakeRegistrar{},
		&fakeCurrencies{supported: true},
	)
	draft := validDraft()
	draft.OpenChannelID = "nodash"
	f.repo.drafts["s1"] = draft

	_, err := f.svc.Submit(context.Background(), "s1")

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
	fieldErrors := appErr.Details["field_errors"].(map[string]string)
	assert.Equal(t, validation.MsgChannelIDPrefix, fieldErrors[models.FieldOpenChannelID])

	// No token spent, no upstream call.
	assert.Zero(t, f.captcha.calls)
	assert.Zero(t, f.registrar.calls)
}

func TestSubmitTokenFailure(t *testing.T) {
	f := newFixture(
		&fakeCaptcha{ready: true, err: errors.New("challenge timeout")},
		&fakeRegistrar{},
		&fakeCurrencies{supported: true},
	)
	f.repo.drafts["s1"] = validDraft()

	_, err := f.svc.Submit(context.Background(), "s1")

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeCaptchaFailed, appErr.Code)
	assert.Zero(t, f.registrar.calls)
}

func TestSubmitCurrencyMismatch(t *testing.T) {
	f := newFixture(
		&fakeCaptcha{ready: true, token: "tok"},
		&fakeRegistrar{},
		&fakeCurrencies{supported: false},
	)
	f.repo.drafts["s1"] = validDraft()

	_, err := f.svc.Submit(context.Background(), "s1")

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
	fieldErrors := appErr.Details["field_errors"].(map[string]string)
	assert.Equal(t, MsgCurrencyMismatch, fieldErrors[models.FieldClientPayoutCurrency])
	assert.Zero(t, f.registrar.calls)
}

func TestSubmitCurrencyCheckSkippedWhenMappingsUnavailable(t *testing.T) {
	want := &models.RegistrationResult{ID: 7}
	f := newFixture(
		&fakeCaptcha{ready: true, token: "tok"},
		&fakeRegistrar{result: want},
		&fakeCurrencies{err: errors.New("mappings unavailable")},
	)
	f.repo.drafts["s1"] = validDraft()

	result, err := f.svc.Submit(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, want, result)
}

func TestSubmitUpstreamRejection(t *testing.T) {
	upstreamErr := apperrors.New(apperrors.ErrCodeUpstreamRejected, "Open channel ID already registered")
	f := newFixture(
		&fakeCaptcha{ready: true, token: "tok"},
		&fakeRegistrar{err: upstreamErr},
		&fakeCurrencies{supported: true},
	)
	f.repo.drafts["s1"] = validDraft()

	_, err := f.svc.Submit(context.Background(), "s1")

	assert.Equal(t, upstreamErr, err)

	// Rejection preserves the draft and stores no result.
	_, ok := f.repo.drafts["s1"]
	assert.True(t, ok)
	_, ok = f.repo.results["s1"]
	assert.False(t, ok)
}

func TestSubmitConcurrentRejected(t *testing.T) {
	f := newFixture(
		&fakeCaptcha{ready: true, token: "tok"},
		&fakeRegistrar{},
		&fakeCurrencies{supported: true},
	)
	f.repo.drafts["s1"] = validDraft()
	f.repo.locked["s1"] = true

	_, err := f.svc.Submit(context.Background(), "s1")

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeSubmitInFlight, appErr.Code)
	assert.Zero(t, f.registrar.calls)
}

func TestSubmitWithoutDraft(t *testing.T) {
	f := newFixture(
		&fakeCaptcha{ready: true, token: "tok"},
		&fakeRegistrar{},
		&fakeCurrencies{supported: true},
	)

	_, err := f.svc.Submit(context.Background(), "s1")

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeDraftNotFound, appErr.Code)
}

func TestUpdateDraftEagerValidation(t *testing.T) {
	f := newFixture(&fakeCaptcha{ready: true}, &fakeRegistrar{}, &fakeCurrencies{supported: true})
	f.repo.drafts["s1"] = validDraft()

	view, err := f.svc.UpdateDraft(context.Background(), "s1", &models.DraftUpdate{
		OpenChannelID: strPtr("nodash"),
	})

	require.NoError(t, err)
	assert.Equal(t, validation.MsgChannelIDPrefix, view.FieldErrors[models.FieldOpenChannelID])
	// Only the touched field is reported.
	assert.Len(t, view.FieldErrors, 1)
}

func TestUpdateDraftNetworkChangeResetsCurrency(t *testing.T) {
	f := newFixture(&fakeCaptcha{ready: true}, &fakeRegistrar{}, &fakeCurrencies{supported: true})
	f.repo.drafts["s1"] = validDraft()

	view, err := f.svc.UpdateDraft(context.Background(), "s1", &models.DraftUpdate{
		ClientPayoutNetwork: strPtr("TON"),
	})

	require.NoError(t, err)
	assert.Equal(t, "TON", view.Draft.ClientPayoutNetwork)
	assert.Empty(t, view.Draft.ClientPayoutCurrency)
	// The cleared currency is revalidated eagerly.
	assert.Equal(t, validation.MsgCurrencyRequired, view.FieldErrors[models.FieldClientPayoutCurrency])
}

func TestUpdateDraftWalletWarning(t *testing.T) {
	f := newFixture(&fakeCaptcha{ready: true}, &fakeRegistrar{}, &fakeCurrencies{supported: true})
	f.repo.drafts["s1"] = validDraft()

	view, err := f.svc.UpdateDraft(context.Background(), "s1", &models.DraftUpdate{
		ClientWalletAddress: strPtr("clearly-not-an-eth-address"),
	})

	require.NoError(t, err)
	// Advisory only: a warning, not a field error.
	assert.NotEmpty(t, view.Warnings)
	assert.Empty(t, view.FieldErrors)
}

func TestSetTierCount(t *testing.T) {
	f := newFixture(&fakeCaptcha{ready: true}, &fakeRegistrar{}, &fakeCurrencies{supported: true})
	draft := validDraft()
	draft.TierCount = 3
	draft.Sub2Price = floatPtr(19.99)
	draft.Sub2Time = intPtr(90)
	draft.Sub3Price = floatPtr(49.99)
	draft.Sub3Time = intPtr(365)
	f.repo.drafts["s1"] = draft

	view, err := f.svc.SetTierCount(context.Background(), "s1", 1)

	require.NoError(t, err)
	assert.Equal(t, 1, view.Draft.TierCount)
	// Lowering the count never deletes stored tier values.
	require.NotNil(t, view.Draft.Sub3Price)
	assert.Equal(t, 49.99, *view.Draft.Sub3Price)
}

func TestSetTierCountOutOfRange(t *testing.T) {
	f := newFixture(&fakeCaptcha{ready: true}, &fakeRegistrar{}, &fakeCurrencies{supported: true})
	f.repo.drafts["s1"] = validDraft()

	for _, count := range []int{0, 4, -1} {
		_, err := f.svc.SetTierCount(context.Background(), "s1", count)
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeBadRequest, appErr.Code)
	}
}

func TestCreateDraftDefaults(t *testing.T) {
	f := newFixture(&fakeCaptcha{ready: true}, &fakeRegistrar{}, &fakeCurrencies{supported: true})

	draft, err := f.svc.CreateDraft(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, 1, draft.TierCount)
	assert.Empty(t, draft.OpenChannelID)
}

func TestResultNotFound(t *testing.T) {
	f := newFixture(&fakeCaptcha{ready: true}, &fakeRegistrar{}, &fakeCurrencies{supported: true})

	_, err := f.svc.Result(context.Background(), "s1")

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeResultNotFound, appErr.Code)
}
