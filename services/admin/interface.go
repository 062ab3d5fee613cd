package admin

import (
	"context"

	"therewecome/models"
)

// AdminAPI is the part of the remote API the admin console calls.
type AdminAPI interface {
	ListUsers(ctx context.Context, token string) ([]models.UserSummary, error)
	GetMetrics(ctx context.Context, token string) (*models.Metrics, error)
	Invite(ctx context.Context, token, email string) error
}
