package model

// Settings are the user preferences persisted next to the ledger.
type Settings struct {
	Currency      string `json:"selectedCurrency" yaml:"currency"`
	Language      string `json:"selectedLanguage" yaml:"language"`
	DarkMode      bool   `json:"isDarkMode" yaml:"dark_mode"`
	Notifications bool   `json:"notificationsEnabled" yaml:"notifications"`
}
