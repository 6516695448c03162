package models

import "time"

// MailSetup is the single-row SMTP configuration edited from the admin screen.
type MailSetup struct {
	ID           int       `json:"id"`
	SMTPHost     string    `json:"smtphost"`
	SMTPPort     int       `json:"smtpport"`
	SMTPUser     string    `json:"smtpuser"`
	SMTPPassword string    `json:"smtppassword"`
	EnableSSL    bool      `json:"enablessl"`
	SenderName   string    `json:"sendername"`
	SenderEmail  string    `json:"senderemail"`
	CreatedAt    time.Time `json:"createdat"`
	UpdatedAt    time.Time `json:"updatedat"`
}

// SaveMailSetupRequest represents the request body for saving mail settings
type SaveMailSetupRequest struct {
	SMTPHost     string `json:"smtphost"`
	SMTPPort     int    `json:"smtpport"`
	SMTPUser     string `json:"smtpuser"`
	SMTPPassword string `json:"smtppassword"`
	EnableSSL    bool   `json:"enablessl"`
	SenderName   string `json:"sendername"`
	SenderEmail  string `json:"senderemail"`
}
