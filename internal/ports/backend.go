package ports

import (
	"context"

	"github.com/afyajamii/afya-cli/internal/domain"
)

// Backend is the HTTP boundary to the AfyaJamii service, one method per
// backend capability. Authenticated calls take the bearer token explicitly.
type Backend interface {
	Login(ctx context.Context, username, password string) (string, error)
	Signup(ctx context.Context, req domain.SignupRequest) (string, error)
	SubmitVitals(ctx context.Context, token string, vitals domain.VitalsSubmission) (domain.VitalsResult, error)
	ChatAdvice(ctx context.Context, token, question string) (domain.Advice, error)
	VitalsHistory(ctx context.Context, token string) ([]domain.VitalsRecord, error)
	ConversationHistory(ctx context.Context, token string) ([]domain.ConversationTurn, error)
}
