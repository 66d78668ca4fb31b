package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-fundraiser/internal/config"
	"github.com/MKhiriev/go-fundraiser/internal/logger"
	"github.com/MKhiriev/go-fundraiser/internal/utils"
	"github.com/MKhiriev/go-fundraiser/models"
)

const registrationSubject = "Activate your account"

// mailMessage is the JSON body accepted by the mail API.
type mailMessage struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

type mailNotifier struct {
	client *utils.HTTPClient

	endpoint   string
	apiKey     string
	from       string
	clientHost string

	logger *logger.Logger
}

// NewNotifier returns a mail-API [Notifier] when mailCfg.URL is set and a
// no-op one otherwise.
func NewNotifier(mailCfg config.Mail, appCfg config.App, log *logger.Logger) (Notifier, error) {
	if strings.TrimSpace(mailCfg.URL) == "" {
		log.Info().Str("func", "NewNotifier").Msg("mail api is not configured, notices are disabled")
		return NewNopNotifier(), nil
	}

	return NewMailNotifier(mailCfg, appCfg, log)
}

// NewMailNotifier constructs a [Notifier] that POSTs every notice as JSON to
// mailCfg.URL. Activation links point to appCfg.ClientHost.
//
// Returns [ErrInvalidMailURL] if mailCfg.URL is not an absolute http(s) URL.
func NewMailNotifier(mailCfg config.Mail, appCfg config.App, log *logger.Logger) (Notifier, error) {
	endpoint, err := normalizeEndpoint(mailCfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMailURL, err)
	}

	return &mailNotifier{
		client:     utils.NewHTTPClient("", mailCfg.Timeout),
		endpoint:   endpoint,
		apiKey:     mailCfg.APIKey,
		from:       mailCfg.From,
		clientHost: strings.TrimRight(appCfg.ClientHost, "/"),
		logger:     log,
	}, nil
}

func normalizeEndpoint(raw string) (string, error) {
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
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("missing host")
	}

	return u.String(), nil
}

func (m *mailNotifier) NotifyRegistration(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	if user.Email == "" {
		return ErrNoRecipient
	}

	req := m.client.R().
		SetContext(ctx).
		SetBody(mailMessage{
			From:    m.from,
			To:      user.Email,
			Subject: registrationSubject,
			Text:    m.registrationText(user),
		})
	if m.apiKey != "" {
		req.SetAuthToken(m.apiKey)
	}

	resp, err := req.Post(m.endpoint)
	if err != nil {
		log.Err(err).Str("func", "*mailNotifier.NotifyRegistration").Msg("mail api request failed")
		return fmt.Errorf("mail request: %w", err)
	}

	return mapHTTPError(resp)
}

func (m *mailNotifier) registrationText(user models.User) string {
	return fmt.Sprintf("Hello %s,\n\nactivate your account: %s\n", user.FullName, m.activationLink(user.ActivationCode))
}

func (m *mailNotifier) activationLink(code string) string {
	return m.clientHost + "/auth/activation?code=" + url.QueryEscape(code)
}

type nopNotifier struct{}

// NewNopNotifier returns a [Notifier] that drops every notice.
func NewNopNotifier() Notifier {
	return nopNotifier{}
}

func (nopNotifier) NotifyRegistration(context.Context, models.User) error {
	return nil
}
