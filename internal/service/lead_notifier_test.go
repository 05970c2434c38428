package service

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbdigital/ytselleradda/internal/model"
)

type fakeSES struct {
	inputs []*ses.SendEmailInput
	err    error
}

func (f *fakeSES) SendEmail(_ context.Context, params *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func TestSESLeadNotifier_SendsSubmission(t *testing.T) {
	fake := &fakeSES{}
	n := newSESLeadNotifier(fake, "noreply@example.com", "leads@example.com")

	err := n.NotifySellSubmission(context.Background(), model.SellSubmission{Name: "Cook Corner"}, "body text")
	require.NoError(t, err)
	require.Len(t, fake.inputs, 1)

	in := fake.inputs[0]
	assert.Equal(t, "noreply@example.com", aws.ToString(in.Source))
	assert.Equal(t, []string{"leads@example.com"}, in.Destination.ToAddresses)
	assert.Equal(t, "New channel listing request: Cook Corner", aws.ToString(in.Message.Subject.Data))
	assert.Equal(t, "body text", aws.ToString(in.Message.Body.Text.Data))
}

func TestSESLeadNotifier_WrapsError(t *testing.T) {
	boom := errors.New("throttled")
	n := newSESLeadNotifier(&fakeSES{err: boom}, "a@example.com", "b@example.com")

	err := n.NotifySellSubmission(context.Background(), model.SellSubmission{}, "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestNoopLeadNotifier(t *testing.T) {
	assert.NoError(t, NoopLeadNotifier{}.NotifySellSubmission(context.Background(), model.SellSubmission{}, "x"))
}
