package utils

import (
	"fmt"
	"log"

	"schoolhub/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendPaymentReceipt emails an enrollment receipt to the learner.
// Best effort: failures are logged, never returned to the request path.
func SendPaymentReceipt(toEmail, className string, amount float64, transactionID string) {
	if config.AppConfig.SendGridApiKey == "" {
		return
	}

	from := mail.NewEmail("SchoolHub", config.AppConfig.EmailSender)
	to := mail.NewEmail("", toEmail)
	subject := "Your enrollment payment was received"

	plainText := fmt.Sprintf(
		"We received your payment of $%.2f for %s.\nTransaction ID: %s",
		amount, className, transactionID,
	)
	htmlBody := fmt.Sprintf(`
	<html>
		<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
			<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
				<h2 style="margin-top: 0;">Payment received</h2>
				<p>We received your payment of <b>$%.2f</b> for <b>%s</b>.</p>
				<p>Your seat is confirmed. See you in class!</p>
				<p style="color: #666; font-size: 12px;">Transaction ID: %s</p>
			</div>
		</body>
	</html>`, amount, className, transactionID)

	message := mail.NewSingleEmail(from, subject, to, plainText, htmlBody)
	client := sendgrid.NewSendClient(config.AppConfig.SendGridApiKey)

	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Failed to send payment receipt to %s: %v", toEmail, err)
		return
	}
	if resp.StatusCode >= 400 {
		log.Printf("Payment receipt to %s rejected, status %d: %s", toEmail, resp.StatusCode, resp.Body)
	}
}
