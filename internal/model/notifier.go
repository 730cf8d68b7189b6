package model

import (
	"context"

	"github.com/google/uuid"
)

// Notifier delivers account notifications to users.
type Notifier interface {
	SendInvitation(ctx context.Context, email, firstName string, userID uuid.UUID) error
}
