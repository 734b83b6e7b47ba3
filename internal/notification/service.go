package notification

import (
	"context"

	"locodhaasu-be/internal/logger"
	"locodhaasu-be/internal/utils"

	"go.uber.org/zap"
)

// Notifier fans out best-effort notifications. Every send is fire-and-forget
// with local failure containment: gateway errors are logged and swallowed,
// and missing configuration is a skip notice, not an error. None of these
// report delivery to the caller, so "order placed successfully" never
// implies a notification went out.
type Notifier interface {
	SendSMS(ctx context.Context, phone, message string)
	SendEmail(ctx context.Context, to, subject, html string)
	SendPush(ctx context.Context, title, body, tag string)
}

type service struct {
	sms         SMSGateway
	email       EmailGateway
	pushKey     string
	countryCode string
}

// NewService wires the channel gateways. A nil gateway means the channel is
// not configured and sends through it are skipped.
func NewService(sms SMSGateway, email EmailGateway, pushKey, countryCode string) Notifier {
	return &service{
		sms:         sms,
		email:       email,
		pushKey:     pushKey,
		countryCode: countryCode,
	}
}

func (s *service) SendSMS(ctx context.Context, phone, message string) {
	log := logger.FromCtx(ctx).With(zap.String("channel", "sms"))

	if s.sms == nil {
		log.Info("SMS skipped - Twilio not configured")
		return
	}
	if phone == "" {
		log.Info("SMS skipped - no recipient")
		return
	}

	formatted := utils.FormatPhoneE164(phone, s.countryCode)

	if err := s.sms.Send(ctx, formatted, message); err != nil {
		log.Error("SMS error", zap.String("to", formatted), zap.Error(err))
		return
	}

	log.Info("SMS sent", zap.String("to", formatted))
}

func (s *service) SendEmail(ctx context.Context, to, subject, html string) {
	log := logger.FromCtx(ctx).With(zap.String("channel", "email"))

	if s.email == nil {
		log.Info("Email skipped - SendGrid not configured")
		return
	}
	if to == "" {
		log.Info("Email skipped - no recipient")
		return
	}

	if err := s.email.Send(ctx, to, subject, html); err != nil {
		log.Error("Email error", zap.String("to", to), zap.Error(err))
		return
	}

	log.Info("Email sent", zap.String("to", to))
}

// SendPush is a stub: the payload is logged and real delivery to a
// push-subscription registry is not implemented.
func (s *service) SendPush(ctx context.Context, title, body, tag string) {
	log := logger.FromCtx(ctx).With(zap.String("channel", "push"))

	if s.pushKey == "" {
		log.Info("Push notification skipped - FCM not configured")
		return
	}

	log.Info("Push notification",
		zap.String("title", title),
		zap.String("body", body),
		zap.String("tag", tag),
	)
}
