package email

import (
	"context"

	"github.com/google/uuid"
	"github.com/wneessen/go-mail"

	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/logging"
)

const passwordResetSubject = "Password reset code"

// SMTPConfig holds the connection settings for the outbound mail server.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	UseSSL   bool
	From     string
}

// SMTPNotifier implements Notifier over an SMTP relay.
type SMTPNotifier struct {
	client    *mail.Client
	from      string
	logger    logging.Logger
	templates *templateCache
}

// NewSMTPNotifier builds a notifier for the given SMTP settings.
func NewSMTPNotifier(cfg SMTPConfig, logger logging.Logger) (*SMTPNotifier, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	}
	if cfg.UseSSL {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, err
	}

	return &SMTPNotifier{
		client:    client,
		from:      cfg.From,
		logger:    logger.With("module", "email"),
		templates: newTemplateCache(),
	}, nil
}

// SendPasswordResetEmail renders the reset template and delivers it. The
// returned error is for the caller to log; it must not fail the request that
// triggered the email.
func (n *SMTPNotifier) SendPasswordResetEmail(ctx context.Context, to string, data ResetEmailData) error {
	html, err := n.templates.render("password_reset", data)
	if err != nil {
		return err
	}

	msg := mail.NewMsg()
	if err := msg.From(n.from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(passwordResetSubject)
	msg.SetBodyString(mail.TypeTextHTML, html)

	messageID := uuid.NewString()
	msg.SetMessageIDWithValue(messageID)

	if err := n.client.DialAndSendWithContext(ctx, msg); err != nil {
		return err
	}

	n.logger.Info(ctx, "password reset email sent", "to", to, "message_id", messageID)
	return nil
}
