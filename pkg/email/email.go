package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"time"
)

// EmailService delivers mail through the Resend HTTP API. Every send
// is best-effort: callers log failures and move on, a submission is
// already accepted by the time mail goes out.
type EmailService struct {
	apiKey    string
	from      string
	templates *template.Template
}

type EmailData struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Html    string `json:"html"`
}

// Template data structures
type ContactNotificationData struct {
	Name        string
	Email       string
	Phone       string
	City        string
	Message     string
	SubmittedAt time.Time
}

type ContactConfirmationData struct {
	Name    string
	Message string
}

type BookingNotificationData struct {
	Name          string
	Email         string
	Phone         string
	Passengers    string
	PickupAirport string
	Destination   string
	TravelDate    time.Time
	Message       string
	SubmittedAt   time.Time
}

type DailyDigestData struct {
	ContactCount int64
	BookingCount int64
	Date         time.Time
}

func NewEmailService(apiKey, from string) (*EmailService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend API key is required")
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("error loading email templates: %v", err)
	}

	return &EmailService{
		apiKey:    apiKey,
		from:      from,
		templates: templates,
	}, nil
}

func (s *EmailService) sendTemplateEmail(to, subject, templateName string, data interface{}) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, templateName, data); err != nil {
		return fmt.Errorf("template execution error: %v", err)
	}

	emailData := EmailData{
		From:    s.from,
		To:      to,
		Subject: subject,
		Html:    body.String(),
	}

	jsonData, err := json.Marshal(emailData)
	if err != nil {
		return fmt.Errorf("error marshaling email data: %v", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("error creating request: %v", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	// Notification mail must never hold a request hostage.
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response body: %v", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("resend API error: %s", string(respBody))
	}

	log.Printf("Email sent to %s: %s", to, subject)
	return nil
}

// SendContactNotification informs the operator about a new contact
// submission.
func (s *EmailService) SendContactNotification(adminEmail string, data ContactNotificationData) error {
	subject := fmt.Sprintf("New Contact Form Submission - %s", data.Name)
	return s.sendTemplateEmail(adminEmail, subject, "contact_notification.html", data)
}

// SendContactConfirmation thanks the submitter.
func (s *EmailService) SendContactConfirmation(to string, data ContactConfirmationData) error {
	return s.sendTemplateEmail(to, "Thank you for contacting Bluehawks Security Services", "contact_confirmation.html", data)
}

// SendBookingNotification informs the operator about a new airport
// booking request.
func (s *EmailService) SendBookingNotification(adminEmail string, data BookingNotificationData) error {
	subject := fmt.Sprintf("New Airport Booking Request - %s", data.Name)
	return s.sendTemplateEmail(adminEmail, subject, "booking_notification.html", data)
}

// SendDailyDigest summarizes unprocessed submissions for the operator.
func (s *EmailService) SendDailyDigest(adminEmail string, data DailyDigestData) error {
	subject := fmt.Sprintf("Bluehawks Daily Submission Digest - %s", data.Date.Format("2006-01-02"))
	return s.sendTemplateEmail(adminEmail, subject, "daily_digest.html", data)
}
