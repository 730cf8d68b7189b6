// Package notifier delivers invitation messages to invited users.
package notifier

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"

	"github.com/google/uuid"
)

// InvitationSubject is the subject line of invitation emails.
const InvitationSubject = "Invitation to Register"

var invitationTemplate = template.Must(template.New("invitation").Parse(`
<p>Hello {{.FirstName}},</p>
<p>You have been invited to register for our application.</p>
<p>Please complete your registration by visiting the registration link.</p>
<p><a href="{{.Link}}">Register</a></p>
<p>Thank you!</p>
`))

// ActivationLink builds the frontend link where the user completes activation.
func ActivationLink(frontendURL string, userID uuid.UUID) (string, error) {
	link, err := url.JoinPath(frontendURL, "users", userID.String(), "activation")
	if err != nil {
		return "", fmt.Errorf("failed to build activation link: %w", err)
	}
	return link, nil
}

func renderInvitation(firstName, link string) (string, error) {
	var buf bytes.Buffer
	err := invitationTemplate.Execute(&buf, struct {
		FirstName string
		Link      string
	}{FirstName: firstName, Link: link})
	if err != nil {
		return "", fmt.Errorf("failed to render invitation: %w", err)
	}
	return buf.String(), nil
}
