package mailer

import (
	"context"
	"fmt"
	"time"

	"event-management-api/config"
	apperrors "event-management-api/pkg/app_errors"
	"event-management-api/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Message 報名確認信的內容來源
type Message struct {
	To            string
	RecipientName string
	EventName     string
}

// Receipt 寄送回執
type Receipt struct {
	MessageID string    `json:"messageId"`
	Accepted  []string  `json:"accepted"`
	SentAt    time.Time `json:"sentAt"`
}

type Mailer interface {
	// SendConfirmation 寄送報名確認信，單次嘗試、不重試
	SendConfirmation(ctx context.Context, msg Message) (*Receipt, error)
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg *config.SMTPConfig) Mailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (m *SMTPMailer) SendConfirmation(ctx context.Context, msg Message) (*Receipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	messageID := uuid.New().String()
	text, html := ConfirmationBodies(msg.RecipientName, msg.EventName)

	mail := gomail.NewMessage()
	mail.SetHeader("From", m.from)
	mail.SetHeader("To", msg.To)
	mail.SetHeader("Subject", fmt.Sprintf("Registration confirmed: %s", msg.EventName))
	mail.SetHeader("Message-ID", fmt.Sprintf("<%s@event-management-api>", messageID))
	mail.SetBody("text/plain", text)
	mail.AddAlternative("text/html", html)

	if err := m.dialer.DialAndSend(mail); err != nil {
		logger.WithComponent("mailer").Error("Failed to send confirmation email",
			zap.String("to", msg.To), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrNotificationFailed, err)
	}

	return &Receipt{
		MessageID: messageID,
		Accepted:  []string{msg.To},
		SentAt:    time.Now().UTC(),
	}, nil
}

// ConfirmationBodies 產生純文字與 HTML 兩種信件內容
func ConfirmationBodies(recipientName, eventName string) (string, string) {
	text := fmt.Sprintf(
		"Hi %s,\n\nYour registration for %s is confirmed. We look forward to seeing you there!\n",
		recipientName, eventName,
	)
	html := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your registration for <strong>%s</strong> is confirmed. We look forward to seeing you there!</p>",
		recipientName, eventName,
	)
	return text, html
}
