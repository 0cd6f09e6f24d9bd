package service

import (
	"context"

	"gopkg.in/gomail.v2"
)

// Mailer 寄送純文字信件
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type SMTPMailer struct {
	From   string
	dialer *gomail.Dialer
}

var dialAndSend = func(d *gomail.Dialer, m ...*gomail.Message) error {
	return d.DialAndSend(m...)
}

func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	if from == "" {
		from = username
	}
	return &SMTPMailer{
		From:   from,
		dialer: gomail.NewDialer(host, port, username, password),
	}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return dialAndSend(m.dialer, msg)
}

// FakeMailer 測試用，未設定 SendFn 時 panic
type FakeMailer struct {
	SendFn func(ctx context.Context, to, subject, body string) error
}

func (f *FakeMailer) Send(ctx context.Context, to, subject, body string) error {
	if f.SendFn != nil {
		return f.SendFn(ctx, to, subject, body)
	}
	panic("unexpected Send")
}
