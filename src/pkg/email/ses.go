package email

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	sestypes "github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

/*
sendWithSES sends through Amazon SES v2 using the default AWS credential
chain (AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, AWS_REGION).

The simple-content API has no attachment support here; attachments are
dropped with a warning rather than failing the whole report delivery.
*/
func sendWithSES(senderAddress string, recipientAddresses []string, subject string, textBody string, htmlBody string, attachments []Attachment) (e *xerr.Error) {
	if len(attachments) > 0 {
		tl.Log(tl.Warning, palette.YellowDim, "SES provider drops '%v' attachments for '%s'", len(attachments), subject)
	}

	ctx := context.Background()

	awsCfg, loadErr := awsconfig.LoadDefaultConfig(ctx)
	if loadErr != nil {
		return xerr.NewError(loadErr, "Failed to load AWS configuration", nil)
	}

	client := sesv2.NewFromConfig(awsCfg)

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(senderAddress),
		Destination: &sestypes.Destination{
			ToAddresses: recipientAddresses,
		},
		Content: &sestypes.EmailContent{
			Simple: &sestypes.Message{
				Subject: &sestypes.Content{Data: aws.String(subject)},
				Body: &sestypes.Body{
					Text: &sestypes.Content{Data: aws.String(textBody)},
					Html: &sestypes.Content{Data: aws.String(htmlBody)},
				},
			},
		},
	}

	output, sendErr := client.SendEmail(ctx, input)
	if sendErr != nil {
		return xerr.NewError(sendErr, "SES SendEmail failed", map[string]any{"subject": subject})
	}

	if output.MessageId != nil {
		tl.Log(tl.Verbose, palette.CyanDim, "SES message id is '%s'", *output.MessageId)
	}

	return e
}
