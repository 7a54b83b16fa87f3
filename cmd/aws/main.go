package main

import (
	"context"
	"flag"
	"fmt"
	"medreminder/internal/config"
	"medreminder/internal/core/domain/notification"
	"medreminder/internal/implementations/deliverer"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
)

// Verifies the reminder email addresses with Amazon SES and optionally sends
// a test reminder.
func main() {
	sendTest := flag.Bool("send-test", false, "send a test reminder after verification")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fail(err)
	}
	if !cfg.EmailEnabled() {
		fail(fmt.Errorf("AWS_EMAIL_SENDER is not set"))
	}

	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(cfg.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AwsAccessKey,
				cfg.AwsSecretKey,
				"",
			),
		),
	)
	if err != nil {
		fail(err)
	}

	svc := ses.NewFromConfig(awsCfg)
	for _, address := range []string{cfg.AwsEmailSender, cfg.AwsEmailRecipient} {
		_, err := svc.VerifyEmailIdentity(
			context.Background(),
			&ses.VerifyEmailIdentityInput{EmailAddress: aws.String(address)},
		)
		if err != nil {
			fail(fmt.Errorf("could not verify %s: %w", address, err))
		}
		fmt.Printf("Verification email sent to %s\n", address)
	}

	if *sendTest {
		email := deliverer.NewEmail(awsCfg, cfg.AwsEmailSender, cfg.AwsEmailRecipient)
		err := email.Deliver(context.Background(), notification.Notification{
			Handle: "test",
			Title:  notification.ReminderTitle,
			Body:   notification.ReminderBody("teste"),
			FireAt: time.Now(),
		})
		if err != nil {
			fail(err)
		}
		fmt.Printf("Test reminder sent to %s\n", cfg.AwsEmailRecipient)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
