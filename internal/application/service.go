package application

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/afyajamii/afya-cli/internal/domain"
	"github.com/afyajamii/afya-cli/internal/ports"
)

// Service orchestrates the backend client and the session store. It is the
// only writer of the session; commands never touch the store directly.
type Service struct {
	backend  ports.Backend
	sessions ports.SessionStore
	clock    ports.Clock
}

func NewService(backend ports.Backend, sessions ports.SessionStore, clock ports.Clock) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Service{
		backend:  backend,
		sessions: sessions,
		clock:    clock,
	}
}

// Login exchanges credentials for a token and persists the session. The
// account type is optional; the login endpoint does not return one, so it is
// whatever the caller already knows (usually nothing).
func (s *Service) Login(ctx context.Context, username, password string, accountType domain.AccountType) (domain.Session, error) {
	token, err := s.backend.Login(ctx, username, password)
	if err != nil {
		return domain.Session{}, err
	}

	session := domain.Session{
		Token:       token,
		Username:    username,
		AccountType: accountType,
	}
	if err := s.sessions.Login(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("persist session: %w", err)
	}

	return session, nil
}

func (s *Service) Signup(ctx context.Context, req domain.SignupRequest) (string, error) {
	return s.backend.Signup(ctx, req)
}

func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessions.Logout(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}

// Whoami returns the current session, or domain.ErrNotLoggedIn when no token
// is stored.
func (s *Service) Whoami(ctx context.Context) (domain.Session, error) {
	session, err := s.sessions.Current(ctx)
	if err != nil {
		return domain.Session{}, fmt.Errorf("load session: %w", err)
	}
	if !session.Authenticated() {
		return domain.Session{}, domain.ErrNotLoggedIn
	}

	return session, nil
}

// SubmitVitals sends one set of measurements under the stored token. When the
// submission carries no account type, the session's is used.
func (s *Service) SubmitVitals(ctx context.Context, vitals domain.VitalsSubmission) (domain.VitalsResult, error) {
	session, err := s.Whoami(ctx)
	if err != nil {
		return domain.VitalsResult{}, err
	}

	if vitals.AccountType == "" {
		vitals.AccountType = session.AccountType
	}

	result, err := s.backend.SubmitVitals(ctx, session.Token, vitals)
	if err != nil {
		return domain.VitalsResult{}, err
	}

	if result.Advice.Timestamp.IsZero() {
		result.Advice.Timestamp = s.clock.Now()
	}

	return result, nil
}

func (s *Service) Ask(ctx context.Context, question string) (domain.Advice, error) {
	session, err := s.Whoami(ctx)
	if err != nil {
		return domain.Advice{}, err
	}

	advice, err := s.backend.ChatAdvice(ctx, session.Token, question)
	if err != nil {
		return domain.Advice{}, err
	}

	// Some backend deployments omit the advice timestamp; stamp receipt time
	// so history-style output always has one.
	if advice.Timestamp.IsZero() {
		advice.Timestamp = s.clock.Now()
	}

	return advice, nil
}

// History is the combined result of the two independent history fetches.
type History struct {
	Vitals        []domain.VitalsRecord
	Conversations []domain.ConversationTurn
}

// LoadHistory fetches both collections concurrently. The join is
// all-or-nothing: if either fetch fails the whole load fails and nothing
// partial is returned.
func (s *Service) LoadHistory(ctx context.Context) (History, error) {
	session, err := s.Whoami(ctx)
	if err != nil {
		return History{}, err
	}

	var history History
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		vitals, err := s.backend.VitalsHistory(groupCtx, session.Token)
		if err != nil {
			return err
		}
		history.Vitals = vitals
		return nil
	})
	group.Go(func() error {
		conversations, err := s.backend.ConversationHistory(groupCtx, session.Token)
		if err != nil {
			return err
		}
		history.Conversations = conversations
		return nil
	})

	if err := group.Wait(); err != nil {
		return History{}, err
	}

	return history, nil
}
