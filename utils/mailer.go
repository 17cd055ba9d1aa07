package utils

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// Mailer sends operational alert emails through SES.
type Mailer struct {
	client *ses.Client
	source string
}

func NewMailer() (*Mailer, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &Mailer{
		client: ses.NewFromConfig(cfg),
		source: os.Getenv("SES_EMAIL"),
	}, nil
}

func (m *Mailer) send(to, subject, body string) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(m.source),
	}

	if _, err := m.client.SendEmail(context.TODO(), input); err != nil {
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

// SendRollupAlert notifies operators about a bulk rollup run with failures.
func (m *Mailer) SendRollupAlert(to, date string, updated, failed int, detail string) error {
	subject := fmt.Sprintf("[nutritrack] daily rollup for %s finished with %d failure(s)", date, failed)
	body := fmt.Sprintf(
		"Daily rollup for %s:\n\n  updated: %d\n  failed:  %d\n\n%s\n\nFailed users stay stale until the next scheduled run or a manual backfill.",
		date, updated, failed, detail)
	return m.send(to, subject, body)
}
