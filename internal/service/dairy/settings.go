package dairy

import (
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Narasimha40-dev/DAIRY/internal/domain/models"
	"github.com/Narasimha40-dev/DAIRY/internal/record"
	"github.com/Narasimha40-dev/DAIRY/internal/validation"
)

const passwordMessage = "Password must be at least 8 characters, include 1 uppercase letter and 1 number."

func settingsRules(editing bool) *validation.Set {
	password := []validation.Rule{
		validation.Required("Password is required."),
		validation.Password(passwordMessage),
		validation.MaxBytes(72, "Password must be at most 72 bytes."),
	}
	if editing {
		password = []validation.Rule{validation.Optional(password[1:]...)}
	}

	return validation.New().
		Field("username",
			validation.Required("Username is required."),
			validation.Match(`^[A-Z][A-Za-z0-9]{4,19}$`, "Username must start with a capital letter and be 5-20 letters/numbers.")).
		Field("email",
			validation.Required("Email is required."),
			validation.Match(`^[\w.\-]+@[\w.\-]+\.\w{2,}$`, "Please enter a valid email address.")).
		Field("password", password...).
		Field("phone",
			validation.Required("Phone number is required."),
			validation.Digits(10, "Enter a valid 10-digit phone number.")).
		Field("address", validation.Required("Address is required.")).
		Field("organization", validation.Required("Organization is required.")).
		Field("language", selectRule("Please select a language.", models.Languages)).
		Field("theme", selectRule("Please select a theme.", models.Themes)).
		Field("notifications", selectRule("Please select notification preference.", models.NotificationOptions))
}

var (
	createSettingsRules = settingsRules(false)
	editSettingsRules   = settingsRules(true)
)

// SettingsSchema describes operator profiles. Passwords are hashed with
// bcrypt at cost; a blank password on edit keeps the stored hash.
func SettingsSchema(cost int, logger *zap.Logger) record.Schema[models.SettingsProfile] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return record.Schema[models.SettingsProfile]{
		Entity: "settings_profile",
		Fields: []string{"username", "email", "password", "phone", "address", "organization", "language", "theme", "notifications"},
		Secret: []string{"password"},
		Validate: func(d record.Draft, editing bool) validation.Errors {
			if editing {
				return editSettingsRules.Validate(d)
			}
			return createSettingsRules.Validate(d)
		},
		Build: func(id record.ID, d record.Draft, prev *models.SettingsProfile) models.SettingsProfile {
			p := models.SettingsProfile{
				ID:            id,
				Username:      d["username"],
				Email:         d["email"],
				Phone:         d["phone"],
				Address:       d["address"],
				Organization:  d["organization"],
				Language:      d["language"],
				Theme:         d["theme"],
				Notifications: d["notifications"],
			}
			if prev != nil {
				p.PasswordHash = prev.PasswordHash
			}
			if pw := d["password"]; pw != "" {
				hash, err := bcrypt.GenerateFromPassword([]byte(pw), cost)
				if err != nil {
					logger.Error("hash password", zap.Int64("id", int64(id)), zap.Error(err))
					return p
				}
				p.PasswordHash = string(hash)
			}
			return p
		},
		Draft: func(p models.SettingsProfile) record.Draft {
			return record.Draft{
				"username":      p.Username,
				"email":         p.Email,
				"phone":         p.Phone,
				"address":       p.Address,
				"organization":  p.Organization,
				"language":      p.Language,
				"theme":         p.Theme,
				"notifications": p.Notifications,
			}
		},
		Header: []string{"Username", "Email", "Phone", "Address", "Organization", "Language", "Theme", "Notifications"},
		Row: func(p models.SettingsProfile) []any {
			return []any{p.Username, p.Email, p.Phone, p.Address, p.Organization, p.Language, p.Theme, p.Notifications}
		},
		Search: func(p models.SettingsProfile) []string {
			return []string{p.Username, p.Email, p.Organization}
		},
	}
}

// NewSettings builds the settings profile manager.
func NewSettings(cost int, logger *zap.Logger) *record.Manager[models.SettingsProfile] {
	return record.NewManager(SettingsSchema(cost, logger), record.WithLogger[models.SettingsProfile](logger))
}

// VerifyPassword reports whether password matches the profile hash.
func VerifyPassword(p models.SettingsProfile, password string) bool {
	if p.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)) == nil
}
