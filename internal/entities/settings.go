package entities

import (
	"encoding/json"
	"strings"
)

// Language is the UI language. The zero value is not valid; use ParseLanguage.
type Language string

const (
	LanguageJapanese Language = "ja"
	LanguageEnglish  Language = "en"
)

// ParseLanguage accepts "ja"/"japanese" and "en"/"english", case-insensitively.
func ParseLanguage(code string) (Language, error) {
	switch strings.ToLower(code) {
	case "ja", "japanese":
		return LanguageJapanese, nil
	case "en", "english":
		return LanguageEnglish, nil
	}
	return "", ValidationError("Invalid language: '%s'. Expected 'ja' or 'en'", code)
}

func (l Language) String() string {
	return string(l)
}

func (l Language) DisplayName() string {
	switch l {
	case LanguageJapanese:
		return "日本語"
	case LanguageEnglish:
		return "English"
	}
	return string(l)
}

func (l *Language) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseLanguage(raw)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Theme is the UI color scheme.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// ParseTheme accepts "light", "dark" and "system", case-insensitively.
func ParseTheme(name string) (Theme, error) {
	switch strings.ToLower(name) {
	case "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	case "system":
		return ThemeSystem, nil
	}
	return "", ValidationError("Invalid theme: '%s'. Expected 'light', 'dark', or 'system'", name)
}

func (t Theme) String() string {
	return string(t)
}

func (t *Theme) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseTheme(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

type GeneralSettings struct {
	Language Language `json:"language"`
}

type AppearanceSettings struct {
	Theme Theme `json:"theme"`
}

type DatabaseSettings struct {
	DatabaseDirectory string `json:"database_directory"`
}

// Settings is the per-installation settings aggregate. It is loaded and
// persisted as a single document.
type Settings struct {
	General    GeneralSettings    `json:"general"`
	Appearance AppearanceSettings `json:"appearance"`
	Database   DatabaseSettings   `json:"database"`
}

// DefaultSettings returns the settings of a fresh installation.
func DefaultSettings(defaultDatabaseDir string) Settings {
	return Settings{
		General:    GeneralSettings{Language: LanguageJapanese},
		Appearance: AppearanceSettings{Theme: ThemeSystem},
		Database:   DatabaseSettings{DatabaseDirectory: defaultDatabaseDir},
	}
}
