// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	gomail "github.com/wneessen/go-mail"

	"github.com/canonical/vault-service/internal/logging"
	"github.com/canonical/vault-service/internal/monitoring"
	"github.com/canonical/vault-service/internal/tracing"
)

//go:embed templates/*
var templates embed.FS

type InvitationEmail struct {
	InviterName string
	VaultName   string
	InviteLink  string
}

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type Mailer struct {
	cfg Config

	html *htmltemplate.Template
	text *texttemplate.Template

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ MailerInterface = (*Mailer)(nil)

func (m *Mailer) SendInvitation(ctx context.Context, to string, data InvitationEmail) error {
	ctx, span := m.tracer.Start(ctx, "mail.Mailer.SendInvitation")
	defer span.End()

	msg, err := m.invitationMessage(to, data)
	if err != nil {
		return err
	}

	opts := []gomail.Option{
		gomail.WithPort(m.cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if m.cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(m.cfg.Username),
			gomail.WithPassword(m.cfg.Password),
		)
	}

	c, err := gomail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	err = c.DialAndSendWithContext(ctx, msg)
	m.reportAvailability(err)
	if err != nil {
		return fmt.Errorf("failed to send invitation email: %w", err)
	}

	return nil
}

func (m *Mailer) invitationMessage(to string, data InvitationEmail) (*gomail.Msg, error) {
	var text, html bytes.Buffer
	if err := m.text.Execute(&text, data); err != nil {
		return nil, fmt.Errorf("failed to render text body: %w", err)
	}
	if err := m.html.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("failed to render html body: %w", err)
	}

	msg := gomail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(fmt.Sprintf("%s invited you to %s", data.InviterName, data.VaultName))
	msg.SetBodyString(gomail.TypeTextPlain, text.String())
	msg.AddAlternativeString(gomail.TypeTextHTML, html.String())

	return msg, nil
}

func (m *Mailer) reportAvailability(err error) {
	availability := 1.0
	if err != nil {
		availability = 0
	}
	if mErr := m.monitor.SetDependencyAvailability(map[string]string{"component": "smtp"}, availability); mErr != nil {
		m.logger.Debugf("failed to set smtp availability metric: %v", mErr)
	}
}

func NewMailer(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Mailer {
	m := new(Mailer)

	m.cfg = cfg
	m.html = htmltemplate.Must(htmltemplate.ParseFS(templates, "templates/invitation.html"))
	m.text = texttemplate.Must(texttemplate.ParseFS(templates, "templates/invitation.txt"))

	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}
