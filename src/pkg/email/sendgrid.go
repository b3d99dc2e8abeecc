package email

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

/*
sendWithSendgrid sends through the SendGrid v3 API (SENDGRID_API_KEY).
All recipients go on one personalization so they share the message.
*/
func sendWithSendgrid(senderAddress string, recipientAddresses []string, subject string, textBody string, htmlBody string, attachments []Attachment) (e *xerr.Error) {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		return xerr.NewError(fmt.Errorf("SENDGRID_API_KEY is not set"), "Missing SendGrid credentials", nil)
	}

	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail("", senderAddress))
	message.Subject = subject

	personalization := mail.NewPersonalization()
	for _, recipientAddress := range recipientAddresses {
		personalization.AddTos(mail.NewEmail("", recipientAddress))
	}
	message.AddPersonalizations(personalization)

	message.AddContent(mail.NewContent("text/plain", textBody))
	message.AddContent(mail.NewContent("text/html", htmlBody))

	for _, attachment := range attachments {
		mailAttachment := mail.NewAttachment()
		mailAttachment.SetFilename(attachment.Filename)
		mailAttachment.SetType(attachment.ContentType)
		mailAttachment.SetContent(base64.StdEncoding.EncodeToString(attachment.Data))
		mailAttachment.SetDisposition("attachment")
		message.AddAttachment(mailAttachment)
	}

	client := sendgrid.NewSendClient(apiKey)

	var response *rest.Response
	response, sendErr := client.Send(message)
	if sendErr != nil {
		return xerr.NewError(sendErr, "SendGrid send failed", map[string]any{"subject": subject})
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return xerr.NewError(fmt.Errorf("status is '%v'", response.StatusCode), "SendGrid returned non-success status", response.Body)
	}

	tl.Log(tl.Verbose, palette.CyanDim, "SendGrid responded with status '%v'", response.StatusCode)

	return e
}
