package email

import (
	"fmt"
	"strings"
	"time"
)

// AppointmentEmailData contains the data needed for appointment email templates.
type AppointmentEmailData struct {
	FirstName        string
	Email            string
	ServiceRequested string
	AppointmentDate  time.Time
	AppointmentTime  string
	Status           string
	ClinicName       string
}

func (d AppointmentEmailData) clinicName() string {
	if d.ClinicName == "" {
		return "Dental Perfections"
	}
	return d.ClinicName
}

func (d AppointmentEmailData) greeting() string {
	if d.FirstName == "" {
		return "there"
	}
	return d.FirstName
}

// BuildAppointmentReceivedEmail creates the confirmation message sent when a
// patient books an appointment. New bookings always start out pending review.
func BuildAppointmentReceivedEmail(data AppointmentEmailData) Message {
	clinic := data.clinicName()
	subject := fmt.Sprintf("%s: we received your appointment request", clinic)

	textBody := fmt.Sprintf(`Hi %s,

We received your request for %q on %s at %s.

Our front desk will review it shortly and you will get another email
once it is confirmed.

Thanks,
The %s Team`,
		data.greeting(), data.ServiceRequested,
		data.AppointmentDate.Format("Monday, 2 January 2006"), data.AppointmentTime,
		clinic)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #0e7490;">Hi %s,</h2>
    <p>We received your request for <strong>%s</strong> on <strong>%s</strong> at <strong>%s</strong>.</p>
    <p>Our front desk will review it shortly and you will get another email once it is confirmed.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		data.greeting(), data.ServiceRequested,
		data.AppointmentDate.Format("Monday, 2 January 2006"), data.AppointmentTime,
		clinic)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildAppointmentStatusEmail creates the notification sent when staff change
// an appointment's status (confirmed, cancelled, completed).
func BuildAppointmentStatusEmail(data AppointmentEmailData) Message {
	clinic := data.clinicName()
	status := strings.ToLower(data.Status)
	subject := fmt.Sprintf("%s: your appointment is %s", clinic, status)

	textBody := fmt.Sprintf(`Hi %s,

Your appointment for %q on %s at %s is now %s.

If you have any questions, just reply to this email.

Thanks,
The %s Team`,
		data.greeting(), data.ServiceRequested,
		data.AppointmentDate.Format("Monday, 2 January 2006"), data.AppointmentTime,
		status, clinic)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #0e7490;">Hi %s,</h2>
    <p>Your appointment for <strong>%s</strong> on <strong>%s</strong> at <strong>%s</strong> is now <strong>%s</strong>.</p>
    <p>If you have any questions, just reply to this email.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		data.greeting(), data.ServiceRequested,
		data.AppointmentDate.Format("Monday, 2 January 2006"), data.AppointmentTime,
		status, clinic)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// WelcomeEmailData contains the data for the registration welcome email.
type WelcomeEmailData struct {
	FirstName  string
	Email      string
	Username   string
	ClinicName string
}

// BuildWelcomeEmail creates the message sent after successful registration.
func BuildWelcomeEmail(data WelcomeEmailData) Message {
	clinic := data.ClinicName
	if clinic == "" {
		clinic = "Dental Perfections"
	}
	name := data.FirstName
	if name == "" {
		name = data.Username
	}

	subject := fmt.Sprintf("Welcome to %s", clinic)

	textBody := fmt.Sprintf(`Hi %s,

Your %s account is ready. You can now book appointments and view your
visit history online.

Thanks,
The %s Team`, name, clinic, clinic)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #0e7490;">Hi %s,</h2>
    <p>Your %s account is ready. You can now book appointments and view your visit history online.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`, name, clinic, clinic)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
