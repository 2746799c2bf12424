package settings

import "echo-journal/internal/domain/diaries"

// Theme define la apariencia de la app.
// @Enum dark, light, system
type Theme string

const (
	ThemeDark   Theme = "dark"
	ThemeLight  Theme = "light"
	ThemeSystem Theme = "system"
)

func (t Theme) Valid() bool {
	switch t {
	case ThemeDark, ThemeLight, ThemeSystem:
		return true
	default:
		return false
	}
}

type Notifications struct {
	DailyReminder bool   `json:"dailyReminder" yaml:"dailyReminder"`
	ReminderTime  string `json:"reminderTime,omitempty" yaml:"reminderTime,omitempty"` // HH:MM
}

// UserSettings son las preferencias del usuario. Se guardan completas bajo echo_settings.
type UserSettings struct {
	APIKey            string        `json:"apiKey" yaml:"apiKey"`
	Theme             Theme         `json:"theme" yaml:"theme"`
	Language          string        `json:"language" yaml:"language"`
	SpeechLanguage    string        `json:"speechLanguage" yaml:"speechLanguage"`
	AutoSave          bool          `json:"autoSave" yaml:"autoSave"`
	DefaultDiaryStyle diaries.Style `json:"defaultDiaryStyle" yaml:"defaultDiaryStyle"`
	Notifications     Notifications `json:"notifications" yaml:"notifications"`
}

const DefaultReminderTime = "21:00"

func Defaults() UserSettings {
	return UserSettings{
		Theme:             ThemeSystem,
		Language:          "en",
		SpeechLanguage:    "en-US",
		AutoSave:          true,
		DefaultDiaryStyle: diaries.StyleWarm,
		Notifications: Notifications{
			DailyReminder: false,
			ReminderTime:  DefaultReminderTime,
		},
	}
}
