// Package email delivers generated fleet reports through one of three
// providers: Amazon SES, SendGrid, or Mailgun.
package email

import (
	"fmt"
	"strings"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

type Provider string

const (
	ProviderSES      Provider = "ses"
	ProviderSendgrid Provider = "sendgrid"
	ProviderMailgun  Provider = "mailgun"
)

/*
Attachment is a file carried along with the message (e.g. the PDF version
of a report). Providers that cannot attach files log a warning and send
the message without them.
*/
type Attachment struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
}

/*
SendMessage sends one message through the chosen provider.

sendEmails is the dry-run gate: nil or false logs what would have been sent
and returns without contacting the provider, so report generation can run
end to end without side effects. Credentials come from the provider's usual
environment variables (AWS_*, SENDGRID_API_KEY, MAILGUN_DOMAIN and
MAILGUN_API_KEY).
*/
func SendMessage(provider Provider, sendEmails *bool, senderAddress string, recipientAddresses []string, subject string, textBody string, htmlBody string, attachments []Attachment) (e *xerr.Error) {
	if len(recipientAddresses) == 0 {
		return xerr.NewError(fmt.Errorf("no recipients"), "Refusing to send email without recipients", subject)
	}

	if sendEmails == nil || !*sendEmails {
		tl.Log(
			tl.Notice, palette.YellowBold, "Dry run: would send '%s' from '%s' to '%s' via '%s'",
			subject, senderAddress, strings.Join(recipientAddresses, ","), provider,
		)
		return e
	}

	tl.Log(
		tl.Info, palette.Blue, "%s '%s' to '%s' via '%s'",
		"Sending", subject, strings.Join(recipientAddresses, ","), provider,
	)

	switch provider {
	case ProviderSES:
		e = sendWithSES(senderAddress, recipientAddresses, subject, textBody, htmlBody, attachments)
	case ProviderSendgrid:
		e = sendWithSendgrid(senderAddress, recipientAddresses, subject, textBody, htmlBody, attachments)
	case ProviderMailgun:
		e = sendWithMailgun(senderAddress, recipientAddresses, subject, textBody, htmlBody, attachments)
	default:
		e = xerr.NewError(fmt.Errorf("unknown provider '%s'", provider), "Unknown email provider", provider)
	}

	if e == nil {
		tl.Log(tl.Info1, palette.Green, "Sent '%s' via '%s'", subject, provider)
	}

	return e
}
