package utils

import (
	"aims/config"
	"fmt"
	"net/smtp"
	"strings"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password
	if from == "" || password == "" {
		return fmt.Errorf("email sender not configured")
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: %s <%s>\r\n", config.AppConfig.InstitutionName, from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// getEmailTemplate wraps body content in the standard institution layout
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<html>
	<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
		<div style="max-width: 600px; margin: auto; background: #ffffff; padding: 24px; border-radius: 6px;">
			<h2 style="color: #2c3e50;">%s</h2>
			%s
			<p style="color: #95a5a6; font-size: 12px; margin-top: 24px;">%s — automated notification, do not reply.</p>
		</div>
	</body>
	</html>`, title, bodyContent, config.AppConfig.InstitutionName)
}

// SendRecomputeSummary mails the HOD recipients a summary of a recompute run
func SendRecomputeSummary(classID, semesterID uint, total, failed int) error {
	recipients := strings.Split(config.AppConfig.HodEmails, ",")
	to := make([]string, 0, len(recipients))
	for _, r := range recipients {
		if r = strings.TrimSpace(r); r != "" {
			to = append(to, r)
		}
	}
	if len(to) == 0 {
		return nil
	}

	body := fmt.Sprintf(`
		<p>Attainment recomputation finished for class <b>%d</b>, semester <b>%d</b>.</p>
		<p>Outcomes recomputed: <b>%d</b><br/>Failures: <b>%d</b></p>`,
		classID, semesterID, total, failed)

	return SendEmail(to, "Attainment recomputation summary", getEmailTemplate("Attainment Recomputed", body))
}
