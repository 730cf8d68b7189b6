package notifier

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wneessen/go-mail"

	"github.com/dtroode/whiskersm-users/internal/config"
	"github.com/dtroode/whiskersm-users/internal/logger"
	"github.com/dtroode/whiskersm-users/internal/model"
)

// sender is the subset of *mail.Client used by Mailer.
type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

var _ model.Notifier = (*Mailer)(nil)

// Mailer sends invitation emails over SMTP.
type Mailer struct {
	client      sender
	from        string
	frontendURL string
	logger      *logger.Logger
}

// NewMailer creates a Mailer authenticating with the configured SMTP account.
func NewMailer(cfg config.Email, frontendURL string, logger *logger.Logger) (*Mailer, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.User),
		mail.WithPassword(cfg.Pass),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail client: %w", err)
	}

	return newMailer(client, cfg.User, frontendURL, logger), nil
}

func newMailer(client sender, from, frontendURL string, logger *logger.Logger) *Mailer {
	return &Mailer{
		client:      client,
		from:        from,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

// SendInvitation emails the activation link for userID to email.
func (m *Mailer) SendInvitation(ctx context.Context, email, firstName string, userID uuid.UUID) error {
	link, err := ActivationLink(m.frontendURL, userID)
	if err != nil {
		return err
	}

	body, err := renderInvitation(firstName, link)
	if err != nil {
		return err
	}

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(email); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(InvitationSubject)
	msg.SetBodyString(mail.TypeTextHTML, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send invitation: %w", err)
	}

	m.logger.Info("Mailer: invitation sent",
		"email", email,
		"user_id", userID)

	return nil
}
