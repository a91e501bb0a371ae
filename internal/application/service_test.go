package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afyajamii/afya-cli/internal/domain"
)

type fakeBackend struct {
	loginToken string
	loginErr   error

	signupMessage string
	signupErr     error

	submitResult domain.VitalsResult
	submitErr    error
	submitCalls  int
	submitToken  string
	submitVitals domain.VitalsSubmission

	adviceResult domain.Advice
	adviceErr    error
	adviceCalls  int

	vitalsHistory    []domain.VitalsRecord
	vitalsHistoryErr error

	conversations    []domain.ConversationTurn
	conversationsErr error
}

func (f *fakeBackend) Login(_ context.Context, _, _ string) (string, error) {
	return f.loginToken, f.loginErr
}

func (f *fakeBackend) Signup(_ context.Context, _ domain.SignupRequest) (string, error) {
	return f.signupMessage, f.signupErr
}

func (f *fakeBackend) SubmitVitals(_ context.Context, token string, vitals domain.VitalsSubmission) (domain.VitalsResult, error) {
	f.submitCalls++
	f.submitToken = token
	f.submitVitals = vitals
	return f.submitResult, f.submitErr
}

func (f *fakeBackend) ChatAdvice(_ context.Context, _, _ string) (domain.Advice, error) {
	f.adviceCalls++
	return f.adviceResult, f.adviceErr
}

func (f *fakeBackend) VitalsHistory(_ context.Context, _ string) ([]domain.VitalsRecord, error) {
	return f.vitalsHistory, f.vitalsHistoryErr
}

func (f *fakeBackend) ConversationHistory(_ context.Context, _ string) ([]domain.ConversationTurn, error) {
	return f.conversations, f.conversationsErr
}

type fakeSessionStore struct {
	session  domain.Session
	loginErr error
}

func (f *fakeSessionStore) Current(_ context.Context) (domain.Session, error) {
	return f.session, nil
}

func (f *fakeSessionStore) Login(_ context.Context, session domain.Session) error {
	if f.loginErr != nil {
		return f.loginErr
	}
	f.session = session
	return nil
}

func (f *fakeSessionStore) Logout(_ context.Context) error {
	f.session = domain.Session{}
	return nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func TestLoginStoresSession(t *testing.T) {
	backend := &fakeBackend{loginToken: "tok-123"}
	store := &fakeSessionStore{}
	service := NewService(backend, store, fixedClock{})

	session, err := service.Login(context.Background(), "amina", "hunter2", domain.AccountTypePregnant)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", session.Token)
	assert.Equal(t, "amina", session.Username)
	assert.Equal(t, domain.AccountTypePregnant, session.AccountType)
	assert.Equal(t, session, store.session)
}

func TestLoginDoesNotStoreSessionOnBackendFailure(t *testing.T) {
	backend := &fakeBackend{loginErr: errors.New("Invalid username or password")}
	store := &fakeSessionStore{}
	service := NewService(backend, store, nil)

	_, err := service.Login(context.Background(), "amina", "wrong", "")
	require.Error(t, err)
	assert.False(t, store.session.Authenticated())
}

func TestSubmitVitalsRequiresLogin(t *testing.T) {
	backend := &fakeBackend{}
	service := NewService(backend, &fakeSessionStore{}, nil)

	_, err := service.SubmitVitals(context.Background(), domain.VitalsSubmission{Age: 28})
	require.ErrorIs(t, err, domain.ErrNotLoggedIn)
	assert.Zero(t, backend.submitCalls, "no network call without a session")
}

func TestSubmitVitalsUsesStoredTokenAndAccountType(t *testing.T) {
	backend := &fakeBackend{}
	store := &fakeSessionStore{session: domain.Session{
		Token:       "tok-123",
		Username:    "amina",
		AccountType: domain.AccountTypePostnatal,
	}}
	service := NewService(backend, store, nil)

	_, err := service.SubmitVitals(context.Background(), domain.VitalsSubmission{Age: 28})
	require.NoError(t, err)
	assert.Equal(t, "tok-123", backend.submitToken)
	assert.Equal(t, domain.AccountTypePostnatal, backend.submitVitals.AccountType)
}

func TestSubmitVitalsKeepsExplicitAccountType(t *testing.T) {
	backend := &fakeBackend{}
	store := &fakeSessionStore{session: domain.Session{Token: "tok", AccountType: domain.AccountTypeGeneral}}
	service := NewService(backend, store, nil)

	_, err := service.SubmitVitals(context.Background(), domain.VitalsSubmission{AccountType: domain.AccountTypePregnant})
	require.NoError(t, err)
	assert.Equal(t, domain.AccountTypePregnant, backend.submitVitals.AccountType)
}

func TestAskRequiresLogin(t *testing.T) {
	backend := &fakeBackend{}
	service := NewService(backend, &fakeSessionStore{}, nil)

	_, err := service.Ask(context.Background(), "is this normal?")
	require.ErrorIs(t, err, domain.ErrNotLoggedIn)
	assert.Zero(t, backend.adviceCalls)
}

func TestAskStampsMissingAdviceTimestamp(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	backend := &fakeBackend{adviceResult: domain.Advice{Text: "Rest well."}}
	store := &fakeSessionStore{session: domain.Session{Token: "tok"}}
	service := NewService(backend, store, fixedClock{now: now})

	advice, err := service.Ask(context.Background(), "is this normal?")
	require.NoError(t, err)
	assert.Equal(t, now, advice.Timestamp)
}

func TestAskKeepsBackendAdviceTimestamp(t *testing.T) {
	backendTime := time.Date(2026, 8, 30, 11, 0, 0, 0, time.UTC)
	backend := &fakeBackend{adviceResult: domain.Advice{Text: "Rest well.", Timestamp: backendTime}}
	store := &fakeSessionStore{session: domain.Session{Token: "tok"}}
	service := NewService(backend, store, fixedClock{now: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)})

	advice, err := service.Ask(context.Background(), "is this normal?")
	require.NoError(t, err)
	assert.Equal(t, backendTime, advice.Timestamp)
}

func TestWhoamiReportsNotLoggedIn(t *testing.T) {
	service := NewService(&fakeBackend{}, &fakeSessionStore{}, nil)

	_, err := service.Whoami(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotLoggedIn)
}

func TestLoadHistoryReturnsBothCollections(t *testing.T) {
	backend := &fakeBackend{
		vitalsHistory: []domain.VitalsRecord{{ID: 1, RiskLabel: "low risk"}},
		conversations: []domain.ConversationTurn{{ID: 2, Question: "ok?"}},
	}
	store := &fakeSessionStore{session: domain.Session{Token: "tok"}}
	service := NewService(backend, store, nil)

	history, err := service.LoadHistory(context.Background())
	require.NoError(t, err)
	assert.Len(t, history.Vitals, 1)
	assert.Len(t, history.Conversations, 1)
}

func TestLoadHistoryFailsWhenVitalsFetchFails(t *testing.T) {
	backend := &fakeBackend{
		vitalsHistoryErr: errors.New("Failed to fetch vitals history"),
		conversations:    []domain.ConversationTurn{{ID: 2}},
	}
	store := &fakeSessionStore{session: domain.Session{Token: "tok"}}
	service := NewService(backend, store, nil)

	history, err := service.LoadHistory(context.Background())
	require.Error(t, err)
	assert.Empty(t, history.Vitals)
	assert.Empty(t, history.Conversations, "all-or-nothing join returns nothing partial")
}

func TestLoadHistoryFailsWhenConversationsFetchFails(t *testing.T) {
	backend := &fakeBackend{
		vitalsHistory:    []domain.VitalsRecord{{ID: 1}},
		conversationsErr: errors.New("Failed to fetch conversations history"),
	}
	store := &fakeSessionStore{session: domain.Session{Token: "tok"}}
	service := NewService(backend, store, nil)

	_, err := service.LoadHistory(context.Background())
	require.Error(t, err)
	assert.EqualError(t, err, "Failed to fetch conversations history")
}

func TestLogoutClearsStore(t *testing.T) {
	store := &fakeSessionStore{session: domain.Session{Token: "tok", Username: "amina"}}
	service := NewService(&fakeBackend{}, store, nil)

	require.NoError(t, service.Logout(context.Background()))
	assert.False(t, store.session.Authenticated())
}
