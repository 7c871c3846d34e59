package services

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/tomaspozo/hackathon-platform/config"
)

type EmailService struct {
	host     string
	port     string
	username string
	password string
}

func NewEmailService() *EmailService {
	return &EmailService{
		host:     config.MailHost,
		port:     config.MailPort,
		username: config.MailUsername,
		password: config.MailPassword,
	}
}

func (s *EmailService) send(to string, msg []byte) error {
	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	return smtp.SendMail(s.host+":"+s.port, auth, s.username, []string{to}, msg)
}

func (s *EmailService) SendPasswordResetEmail(to, resetToken string) error {
	resetLink := fmt.Sprintf(config.ClientUrl+"/reset-password?token=%s", resetToken)

	htmlTemplate := strings.TrimSpace(`
To: %s
MIME-version: 1.0
Content-Type: text/html; charset="UTF-8"
Subject: Reset Your Password

<!DOCTYPE html>
<html>
<body style="background-color: #f9fafb; margin: 0; padding: 0; font-family: Arial, sans-serif;">
    <table width="100%%" cellpadding="0" cellspacing="0" style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <tr>
            <td style="padding: 40px 20px; text-align: center;">
                <h1 style="font-size: 24px;">Reset Your Password</h1>
                <p style="font-size: 16px;">Click the button below to reset your password. This link will expire in 1 hour.</p>
                <a href="%s" style="display: inline-block; background-color: #d97706; color: #ffffff; text-decoration: none; padding: 12px 30px; border-radius: 25px; font-weight: bold;">Reset Password</a>
                <p style="font-size: 14px;">If you didn't request this password reset, please ignore this email.</p>
            </td>
        </tr>
    </table>
</body>
</html>
`)

	msg := []byte(fmt.Sprintf(htmlTemplate, to, resetLink))
	return s.send(to, msg)
}

func (s *EmailService) SendTeamInviteEmail(to, teamName, hackathonName, token string) error {
	inviteLink := fmt.Sprintf(config.ClientUrl+"/invites?token=%s", token)

	htmlTemplate := strings.TrimSpace(`
To: %s
MIME-version: 1.0
Content-Type: text/html; charset="UTF-8"
Subject: You have been invited to join %s

<!DOCTYPE html>
<html>
<body style="background-color: #f9fafb; margin: 0; padding: 0; font-family: Arial, sans-serif;">
    <table width="100%%" cellpadding="0" cellspacing="0" style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <tr>
            <td style="padding: 40px 20px; text-align: center;">
                <h1 style="font-size: 24px;">Team Invitation</h1>
                <p style="font-size: 16px;">You have been invited to join the team <strong>%s</strong> for <strong>%s</strong>.</p>
                <a href="%s" style="display: inline-block; background-color: #d97706; color: #ffffff; text-decoration: none; padding: 12px 30px; border-radius: 25px; font-weight: bold;">View Invitation</a>
                <p style="font-size: 14px;">If you weren't expecting this invitation, you can ignore this email.</p>
            </td>
        </tr>
    </table>
</body>
</html>
`)

	msg := []byte(fmt.Sprintf(htmlTemplate, to, teamName, teamName, hackathonName, inviteLink))
	return s.send(to, msg)
}

func (s *EmailService) SendSupportEmail(name, email, issueType, subject, message string) error {
	body := strings.TrimSpace(`
To: %s
Subject: [Support] [%s] %s

From: %s <%s>

%s
`)

	msg := []byte(fmt.Sprintf(body, s.username, issueType, subject, name, email, message))
	return s.send(s.username, msg)
}
