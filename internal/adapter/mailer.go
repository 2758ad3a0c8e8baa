package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-kita-inventory/internal/config"
	"github.com/MKhiriev/go-kita-inventory/internal/logger"
	"github.com/MKhiriev/go-kita-inventory/internal/utils"
	"github.com/MKhiriev/go-kita-inventory/models"
	"github.com/goccy/go-json"
)

// NewMailer returns the relay mailer when cfg.MailRelayURL is set and the
// log-only mailer otherwise.
func NewMailer(cfg config.Adapter, logger *logger.Logger) (Mailer, error) {
	if strings.TrimSpace(cfg.MailRelayURL) == "" {
		logger.Warn().Str("func", "adapter.NewMailer").Msg("mail relay is not configured, mails are only logged")
		return &logMailer{from: cfg.MailFrom, logger: logger}, nil
	}

	return NewRelayMailer(cfg, logger)
}

type relayMailer struct {
	client   *utils.HTTPClient
	relayURL string
	from     string

	logger *logger.Logger
}

// NewRelayMailer constructs a [Mailer] that POSTs every message as JSON to
// cfg.MailRelayURL.
//
// Returns an error if the relay URL is empty or cannot be parsed as a
// valid URL.
func NewRelayMailer(cfg config.Adapter, logger *logger.Logger) (Mailer, error) {
	relayURL, err := normalizeURL(cfg.MailRelayURL)
	if err != nil {
		return nil, fmt.Errorf("invalid mail relay url: %w", err)
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout)
	client.SetJSONMarshaler(json.Marshal)
	client.SetJSONUnmarshaler(json.Unmarshal)

	return &relayMailer{client: client, relayURL: relayURL, from: cfg.MailFrom, logger: logger}, nil
}

func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return u.String(), nil
}

// Send implements [Mailer].
func (m *relayMailer) Send(ctx context.Context, mail models.Mail) error {
	if strings.TrimSpace(mail.To) == "" {
		return ErrEmptyRecipient
	}
	if mail.From == "" {
		mail.From = m.from
	}

	resp, err := m.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(mail).
		Post(m.relayURL)
	if err != nil {
		return fmt.Errorf("mail relay request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*relayMailer.Send").
		Str("subject", mail.Subject).
		Int("status", resp.StatusCode()).
		Msg("mail handed to relay")
	return nil
}

type logMailer struct {
	from   string
	logger *logger.Logger
}

// Send implements [Mailer] by writing the message to the log. Used in
// development where no relay exists.
func (m *logMailer) Send(ctx context.Context, mail models.Mail) error {
	if strings.TrimSpace(mail.To) == "" {
		return ErrEmptyRecipient
	}
	if mail.From == "" {
		mail.From = m.from
	}

	m.logger.Info().
		Str("func", "*logMailer.Send").
		Str("from", mail.From).
		Str("to", mail.To).
		Str("subject", mail.Subject).
		Str("text", mail.Text).
		Msg("mail not sent, relay disabled")
	return nil
}
