package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"locodhaasu-be/internal/logger"

	"go.uber.org/zap"
)

const sendgridBaseURL = "https://api.sendgrid.com"

// EmailGateway sends a single HTML email through the transactional relay.
type EmailGateway interface {
	Send(ctx context.Context, to, subject, html string) error
}

type sendgridGateway struct {
	apiKey     string
	from       string
	httpClient *http.Client
}

func NewSendGridGateway(apiKey, from string) EmailGateway {
	return &sendgridGateway{
		apiKey: apiKey,
		from:   from,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (g *sendgridGateway) Send(ctx context.Context, to, subject, html string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("gateway", "sendgrid"),
		zap.String("to", to),
		zap.String("subject", subject),
	)

	body := map[string]interface{}{
		"personalizations": []map[string]interface{}{
			{"to": []map[string]string{{"email": to}}},
		},
		"from":    map[string]string{"email": g.from},
		"subject": subject,
		"content": []map[string]string{
			{"type": "text/html", "value": html},
		},
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		log.Error("Failed to marshal mail request", zap.Error(err))
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", sendgridBaseURL+"/v3/mail/send", bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error("Failed creating request", zap.Error(err))
		return err
	}

	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Error("SendGrid request failed", zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted && resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		log.Error("SendGrid returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return fmt.Errorf("sendgrid error: %s", string(bodyBytes))
	}

	log.Info("Email accepted by SendGrid")
	return nil
}
