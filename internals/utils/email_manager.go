package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/smtp"
	"strings"
)

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	AppName  string
	CodeExp  int
}

// EmailManager delivers verification codes over SMTP. When no SMTP settings
// are present it stays in dev mode: codes are only logged by the caller.
type EmailManager struct {
	Config *SMTPConfig
}

func NewEmailManager(config *SMTPConfig) *EmailManager {
	return &EmailManager{
		Config: config,
	}
}

// Configured reports whether a delivery channel is available.
func (em *EmailManager) Configured() bool {
	return em.Config.Host != "" && em.Config.User != "" && em.Config.Password != ""
}

// GenerateVerificationCode uses crypto/rand; leading zeros are preserved as text
func (em *EmailManager) GenerateVerificationCode() string {
	max := big.NewInt(1000000)
	n, _ := rand.Int(rand.Reader, max)
	return fmt.Sprintf("%06d", n.Int64())
}

// send is a private helper that handles the actual SMTP handshake and delivery
func (em *EmailManager) send(toEmail string, subject string, body string) error {
	smtpAddr := fmt.Sprintf("%s:%d", em.Config.Host, em.Config.Port)

	// Constructing headers according to RFC 822 standards
	headers := []string{
		fmt.Sprintf("From: %s", em.Config.User),
		fmt.Sprintf("To: %s", toEmail),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		body,
	}

	message := strings.Join(headers, "\r\n")

	auth := smtp.PlainAuth("", em.Config.User, em.Config.Password, em.Config.Host)

	return smtp.SendMail(smtpAddr, auth, em.Config.User, []string{toEmail}, []byte(message))
}

// SendLoginOTP sends a verification code for an OTP login attempt
func (em *EmailManager) SendLoginOTP(toEmail string, code string) error {
	subject := fmt.Sprintf("%s - Your Verification Code", em.Config.AppName)

	body := fmt.Sprintf(
		"Hello,\n\n"+
			"Use the following code to complete your login to %s:\n\n"+
			"Verification Code: %s\n\n"+
			"This code will expire in %d minutes. If you didn't request this code, please ignore this email.\n\n"+
			"Best regards,\n"+
			"The %s Team",
		em.Config.AppName, code, em.Config.CodeExp, em.Config.AppName)

	return em.send(toEmail, subject, body)
}
