package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"locodhaasu-be/internal/logger"

	"go.uber.org/zap"
)

const twilioBaseURL = "https://api.twilio.com"

// SMSGateway sends a single SMS message to an E.164 phone number.
type SMSGateway interface {
	Send(ctx context.Context, to, body string) error
}

type twilioGateway struct {
	accountSID string
	authToken  string
	from       string
	httpClient *http.Client
}

func NewTwilioGateway(accountSID, authToken, from string) SMSGateway {
	return &twilioGateway{
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (g *twilioGateway) Send(ctx context.Context, to, body string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("gateway", "twilio"),
		zap.String("to", to),
	)

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", g.from)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", twilioBaseURL, g.accountSID)

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		log.Error("Failed creating request", zap.Error(err))
		return err
	}

	req.SetBasicAuth(g.accountSID, g.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Error("Twilio request failed", zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read response body", zap.Error(err))
		return fmt.Errorf("failed to read twilio response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Error("Twilio returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return fmt.Errorf("twilio error: %s", string(bodyBytes))
	}

	var res struct {
		SID    string `json:"sid"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(bodyBytes, &res); err != nil {
		log.Error("Failed decoding Twilio response", zap.Error(err))
		return err
	}

	log.Info("SMS accepted by Twilio",
		zap.String("message_sid", res.SID),
		zap.String("status", res.Status),
	)
	return nil
}
