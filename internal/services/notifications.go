package services

import (
	"fmt"
	"log"
	"strings"
	"unicode"

	"github.com/go-gomail/gomail"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/samparc/medical-api/internal/config"
	"github.com/samparc/medical-api/internal/models"
)

// NotificationService sends appointment and seller emails over SMTP and
// appointment status texts through Twilio. Either channel is skipped when it
// is not configured.
type NotificationService struct {
	dialer        *gomail.Dialer
	from          string
	hospitalEmail string
	hospitalName  string

	sms     *twilio.RestClient
	smsFrom string
}

func NewNotificationService(cfg *config.Config, hospitalName string) *NotificationService {
	s := &NotificationService{
		hospitalEmail: cfg.HospitalEmail,
		hospitalName:  hospitalName,
	}
	if cfg.MailEnabled() {
		s.dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
		s.from = cfg.SMTPUsername
	} else {
		log.Println("SMTP credentials not set, email notifications disabled.")
	}
	if cfg.SMSEnabled() {
		s.sms = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		})
		s.smsFrom = cfg.TwilioFromNumber
	} else {
		log.Println("Twilio credentials not set, SMS notifications disabled.")
	}
	return s
}

// AppointmentSubmitted emails the hospital inbox and, when an address was
// given, the patient.
func (s *NotificationService) AppointmentSubmitted(apt *models.Appointment) {
	subject := fmt.Sprintf("New appointment request #%d - %s", apt.ID, apt.Department)
	go s.sendEmail(s.hospitalEmail, subject, appointmentRequestBody(apt))

	if apt.Email != "" {
		go s.sendEmail(apt.Email,
			fmt.Sprintf("%s: appointment request received", s.hospitalName),
			appointmentReceiptBody(s.hospitalName, apt))
	}
}

// AppointmentStatusChanged texts the patient the new status.
func (s *NotificationService) AppointmentStatusChanged(apt *models.Appointment) {
	if apt.Phone == "" {
		log.Println("SMS not sent: Patient has no phone number.")
		return
	}
	go s.sendSMS(apt.Phone, appointmentStatusSMS(s.hospitalName, apt))
}

// SellerStatusChanged emails the seller about a review decision.
func (s *NotificationService) SellerStatusChanged(seller *models.Seller) {
	go s.sendEmail(seller.Email,
		fmt.Sprintf("%s seller account: %s", s.hospitalName, seller.Status),
		sellerStatusBody(s.hospitalName, seller))
}

func (s *NotificationService) sendEmail(to, subject, body string) {
	if s.dialer == nil || to == "" {
		return
	}
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		log.Printf("Failed to send email to %s: %v", to, err)
		return
	}
	log.Printf("Successfully sent email to %s", to)
}

func (s *NotificationService) sendSMS(phone, body string) {
	if s.sms == nil {
		return
	}
	to, ok := normalizePhone(phone)
	if !ok {
		log.Printf("SMS not sent: cannot normalize phone number %q", phone)
		return
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.smsFrom)
	params.SetBody(body)

	resp, err := s.sms.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send SMS via Twilio to %s: %v", to, err)
		return
	}
	if resp.Sid != nil {
		log.Printf("Successfully sent SMS via Twilio to %s (%s)", to, *resp.Sid)
	}
}

// normalizePhone returns an E.164 number. Bare ten digit numbers are Indian mobiles.
func normalizePhone(phone string) (string, bool) {
	var digits strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	switch {
	case strings.HasPrefix(strings.TrimSpace(phone), "+") && len(d) >= 8 && len(d) <= 15:
		return "+" + d, true
	case len(d) == 10:
		return "+91" + d, true
	case len(d) == 11 && d[0] == '0':
		return "+91" + d[1:], true
	}
	return "", false
}

func appointmentRequestBody(apt *models.Appointment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Appointment request #%d\n\n", apt.ID)
	fmt.Fprintf(&b, "Patient: %s\n", apt.PatientName)
	fmt.Fprintf(&b, "Phone: %s\n", apt.Phone)
	if apt.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", apt.Email)
	}
	fmt.Fprintf(&b, "Department: %s\n", apt.Department)
	fmt.Fprintf(&b, "Preferred date: %s\n", apt.PreferredDate)
	fmt.Fprintf(&b, "Submitted: %s\n", apt.SubmittedAt.Format("02 Jan 2006 15:04 MST"))
	if apt.Message != "" {
		fmt.Fprintf(&b, "\nMessage:\n%s\n", apt.Message)
	}
	return b.String()
}

func appointmentReceiptBody(hospital string, apt *models.Appointment) string {
	return fmt.Sprintf(
		"Dear %s,\n\nWe have received your appointment request for %s on %s (reference #%d).\n"+
			"Our team will contact you shortly to confirm.\n\n%s",
		apt.PatientName, apt.Department, apt.PreferredDate, apt.ID, hospital)
}

func appointmentStatusSMS(hospital string, apt *models.Appointment) string {
	switch apt.Status {
	case models.AppointmentConfirmed:
		return fmt.Sprintf("%s: your %s appointment on %s is confirmed. Ref #%d.",
			hospital, apt.Department, apt.PreferredDate, apt.ID)
	case models.AppointmentCancelled:
		return fmt.Sprintf("%s: your %s appointment on %s has been cancelled. Ref #%d.",
			hospital, apt.Department, apt.PreferredDate, apt.ID)
	}
	return fmt.Sprintf("%s: your appointment #%d is %s.", hospital, apt.ID, strings.ToLower(string(apt.Status)))
}

func sellerStatusBody(hospital string, seller *models.Seller) string {
	var next string
	switch seller.Status {
	case models.SellerApproved:
		next = "You can now sign in and list your medicines."
	case models.SellerRejected:
		next = "Please contact us if you believe this is a mistake."
	case models.SellerSuspended:
		next = "Your listings are hidden until the suspension is lifted."
	default:
		next = "Your documents are under review."
	}
	return fmt.Sprintf("Dear %s,\n\nYour seller account for %s is now %s.\n%s\n\n%s",
		seller.Name, seller.BusinessName, seller.Status, next, hospital)
}
