package deliverer

import (
	"context"
	"medreminder/internal/core/domain/notification"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const emailCharset = "UTF-8"

type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type Email struct {
	ses sesAPI
	// This address must be verified with Amazon SES.
	sender    string
	recipient string
}

func NewEmail(awsConfig aws.Config, sender string, recipient string) *Email {
	return newEmail(ses.NewFromConfig(awsConfig), sender, recipient)
}

func newEmail(client sesAPI, sender string, recipient string) *Email {
	return &Email{ses: client, sender: sender, recipient: recipient}
}

func (s *Email) Deliver(ctx context.Context, n notification.Notification) error {
	_, err := s.ses.SendEmail(
		ctx,
		&ses.SendEmailInput{
			Source: aws.String(s.sender),
			Destination: &types.Destination{
				ToAddresses: []string{s.recipient},
			},
			Message: &types.Message{
				Subject: &types.Content{Charset: aws.String(emailCharset), Data: aws.String(n.Title)},
				Body: &types.Body{
					Text: &types.Content{Charset: aws.String(emailCharset), Data: aws.String(n.Body)},
				},
			},
		},
	)
	return err
}
