package services

import (
	"fmt"
	"os"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"shopfront/models"
)

// SendContactAlert emails the site owner about a new contact-form
// submission. Best effort only: the visitor already got their
// confirmation, so failures are logged and dropped.
func SendContactAlert(contact models.Contact) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Contact alert panic recovered: %v\n", r)
		}
	}()

	apiKey := os.Getenv("SENDGRID_API_KEY")
	alertEmail := os.Getenv("CONTACT_ALERT_EMAIL")

	if apiKey == "" || alertEmail == "" {
		fmt.Println("Missing SendGrid config, skipping contact alert")
		return
	}

	subject := fmt.Sprintf("[Contact] %s", contact.Topic)

	plainTextContent := fmt.Sprintf(`New contact form submission

From: %s <%s>
Topic: %s
Received: %s

MESSAGE:
%s

---
Contact ID: %d`,
		contact.Name,
		contact.Email,
		contact.Topic,
		contact.CreatedAt.Format(time.RFC3339),
		contact.Message,
		contact.ID,
	)

	from := mail.NewEmail("Shopfront", alertEmail)
	to := mail.NewEmail("Admin", alertEmail)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, plainTextContent)
	client := sendgrid.NewSendClient(apiKey)

	response, err := client.Send(message)
	if err != nil {
		fmt.Printf("Error sending contact alert: %v\n", err)
	} else {
		fmt.Printf("Contact alert sent. Status Code: %d\n", response.StatusCode)
	}
}
