package models

import "github.com/Narasimha40-dev/DAIRY/internal/record"

// Settings option lists.
var (
	Languages           = []string{"English", "हिन्दी", "తెలుగు", "Other"}
	Themes              = []string{"Light", "Dark", "System Default"}
	NotificationOptions = []string{"Enabled", "Disabled"}
)

// SettingsProfile is an operator profile with UI preferences. The password
// is only kept as a bcrypt hash.
type SettingsProfile struct {
	ID            record.ID `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	Organization  string    `json:"organization"`
	Language      string    `json:"language"`
	Theme         string    `json:"theme"`
	Notifications string    `json:"notifications"`
}

func (s SettingsProfile) RecordID() record.ID { return s.ID }
