package notifier

import (
	"context"

	"github.com/google/uuid"

	"github.com/dtroode/whiskersm-users/internal/logger"
	"github.com/dtroode/whiskersm-users/internal/model"
)

var _ model.Notifier = (*Log)(nil)

// Log writes invitations to the application log instead of sending them.
// Used when SMTP delivery is disabled.
type Log struct {
	frontendURL string
	logger      *logger.Logger
}

func NewLog(frontendURL string, logger *logger.Logger) *Log {
	return &Log{frontendURL: frontendURL, logger: logger}
}

func (n *Log) SendInvitation(_ context.Context, email, firstName string, userID uuid.UUID) error {
	link, err := ActivationLink(n.frontendURL, userID)
	if err != nil {
		return err
	}

	n.logger.Info("Notifier: invitation",
		"subject", InvitationSubject,
		"email", email,
		"first_name", firstName,
		"link", link)

	return nil
}
