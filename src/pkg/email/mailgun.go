package email

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mailgun/mailgun-go/v4"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

const mailgunSendTimeout = 30 * time.Second

/*
sendWithMailgun sends through the Mailgun messages API (MAILGUN_DOMAIN,
MAILGUN_API_KEY).
*/
func sendWithMailgun(senderAddress string, recipientAddresses []string, subject string, textBody string, htmlBody string, attachments []Attachment) (e *xerr.Error) {
	domain := os.Getenv("MAILGUN_DOMAIN")
	apiKey := os.Getenv("MAILGUN_API_KEY")
	if domain == "" || apiKey == "" {
		return xerr.NewError(fmt.Errorf("MAILGUN_DOMAIN or MAILGUN_API_KEY is not set"), "Missing Mailgun credentials", nil)
	}

	mg := mailgun.NewMailgun(domain, apiKey)

	message := mg.NewMessage(senderAddress, subject, textBody, recipientAddresses...)
	message.SetHtml(htmlBody)
	for _, attachment := range attachments {
		message.AddBufferAttachment(attachment.Filename, attachment.Data)
	}

	ctx, cancel := context.WithTimeout(context.Background(), mailgunSendTimeout)
	defer cancel()

	_, messageID, sendErr := mg.Send(ctx, message)
	if sendErr != nil {
		return xerr.NewError(sendErr, "Mailgun send failed", map[string]any{"subject": subject})
	}

	tl.Log(tl.Verbose, palette.CyanDim, "Mailgun message id is '%s'", messageID)

	return e
}
