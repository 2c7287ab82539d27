package services

import (
	"fmt"
	"os"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// SMSSender is the transport capability the verification service depends on.
type SMSSender interface {
	SendSMS(to string, body string) error
}

// TwilioService sends SMS messages through the Twilio REST API.
type TwilioService struct {
	client *twilio.RestClient
	from   string
	logger *zap.Logger
}

// NewTwilioService creates a new Twilio service instance from environment
// credentials. Returns an error when any credential is missing; callers may
// run without SMS in that case.
func NewTwilioService(logger *zap.Logger) (*TwilioService, error) {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	from := os.Getenv("TWILIO_PHONE_NUMBER")

	if accountSid == "" || authToken == "" || from == "" {
		return nil, fmt.Errorf("missing Twilio credentials in environment variables")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})

	return &TwilioService{
		client: client,
		from:   from,
		logger: logger,
	}, nil
}

// SendSMS sends a plain text message to the given E.164 number.
func (t *TwilioService) SendSMS(to string, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(t.from)
	params.SetTo(to)
	params.SetBody(body)

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		t.logger.Error("twilio send failed", zap.String("to", to), zap.Error(err))
		return err
	}

	t.logger.Info("sms sent", zap.Stringp("sid", resp.Sid))
	return nil
}
