package service

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/kbdigital/ytselleradda/internal/model"
)

// LeadNotifier forwards a seller's submission to the marketplace team.
type LeadNotifier interface {
	NotifySellSubmission(ctx context.Context, s model.SellSubmission, message string) error
}

// NoopLeadNotifier drops every lead. Used when mail delivery is not configured.
type NoopLeadNotifier struct{}

func (NoopLeadNotifier) NotifySellSubmission(context.Context, model.SellSubmission, string) error {
	return nil
}

type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESLeadNotifier emails each sell submission through Amazon SES.
type SESLeadNotifier struct {
	client    sesAPI
	sender    string
	recipient string
}

// NewSESLeadNotifier loads the default AWS credential chain for region.
func NewSESLeadNotifier(ctx context.Context, region, sender, recipient string) (*SESLeadNotifier, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return newSESLeadNotifier(ses.NewFromConfig(cfg), sender, recipient), nil
}

func newSESLeadNotifier(client sesAPI, sender, recipient string) *SESLeadNotifier {
	return &SESLeadNotifier{client: client, sender: sender, recipient: recipient}
}

func (n *SESLeadNotifier) NotifySellSubmission(ctx context.Context, s model.SellSubmission, message string) error {
	subject := "New channel listing request"
	if s.Name != "" {
		subject += ": " + s.Name
	}

	_, err := n.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(n.sender),
		Destination: &types.Destination{
			ToAddresses: []string{n.recipient},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(message)},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("ses send: %w", err)
	}
	return nil
}
