package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendPaymentSuccess(toEmail, fullName, productName string, amount float64, currency string) error
	SendFreezeDecision(toEmail, fullName, status, detail string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendPaymentSuccess(toEmail, fullName, productName string, amount float64, currency string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Payment Received")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Thank you, %s!</h2>
			<p>Your payment for <strong>%s</strong> has been received.</p>
			<p>Amount: <strong>%.2f %s</strong></p>
			<p>Your membership is now active. See you in class!</p>
		</div>
	`, fullName, productName, amount, currency)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send payment receipt to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Payment receipt sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendFreezeDecision(toEmail, fullName, status, detail string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your Freeze Request Update")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hi %s,</h2>
			<p>Your membership freeze request has been <strong>%s</strong>.</p>
			<p>%s</p>
		</div>
	`, fullName, status, detail)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send freeze update to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Freeze update sent to %s\n", toEmail)
	return nil
}
