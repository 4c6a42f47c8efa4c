// Package tools bundles small shared helpers, currently the smtp email
// sender behind the risk control alerts.
package tools

import (
	"fmt"
	"net"
	"net/smtp"

	"github.com/jordan-wright/email"
	"github.com/rebasefi/CrossChain-RebaseToken/log"
)

var (
	smtpServerAddr string
	smtpAuth       smtp.Auth
	emailSender    string
)

// InitEmailConfig init the smtp sender from the email config section
func InitEmailConfig(server string, port int, from, name, password string) {
	smtpServerAddr = net.JoinHostPort(server, fmt.Sprintf("%d", port))
	smtpAuth = smtp.PlainAuth("", from, password, server)
	emailSender = from
	if name != "" {
		emailSender = fmt.Sprintf("%s <%s>", name, from)
	}
	log.Info("init email config success", "server", smtpServerAddr, "from", from)
}

// SendEmail send a plain text email
func SendEmail(to, cc []string, subject, content string) error {
	return SendEmailWithAttach(to, cc, subject, content, nil)
}

// SendEmailWithAttach send a plain text email with attached files
func SendEmailWithAttach(to, cc []string, subject, content string, attachFiles []string) error {
	msg := email.NewEmail()
	msg.From = emailSender
	msg.To = to
	msg.Cc = cc
	msg.Subject = subject
	msg.Text = []byte(content)
	for _, file := range attachFiles {
		if _, err := msg.AttachFile(file); err != nil {
			log.Warn("attach file failed", "file", file, "err", err)
		}
	}
	return msg.Send(smtpServerAddr, smtpAuth)
}
