package store

// Settings holds user preferences.
type Settings struct {
	Notifications bool   `json:"notifications"`
	Sound         bool   `json:"sound"`
	DarkMode      bool   `json:"darkMode"`
	Language      string `json:"language"`
}

// DefaultSettings returns the settings used before the user changes
// anything.
func DefaultSettings() Settings {
	return Settings{
		Notifications: true,
		Sound:         true,
		Language:      "en",
	}
}

// Settings returns the persisted settings, or defaults.
func (s *Store) Settings() Settings {
	out := DefaultSettings()
	s.Get(KeySettings, &out)
	return out
}

// SetSettings persists user preferences.
func (s *Store) SetSettings(v Settings) bool {
	return s.Set(KeySettings, v)
}

// Theme returns the persisted theme name, defaulting to "light".
func (s *Store) Theme() string {
	theme := ""
	if !s.Get(KeyTheme, &theme) || theme == "" {
		return "light"
	}
	return theme
}

// SetTheme persists the theme name.
func (s *Store) SetTheme(theme string) bool {
	return s.Set(KeyTheme, theme)
}

// SelectedCollection returns the active collection id, or "" if none
// was chosen yet.
func (s *Store) SelectedCollection() string {
	id := ""
	s.Get(KeySelectedCollection, &id)
	return id
}

// SetSelectedCollection persists the active collection id.
func (s *Store) SetSelectedCollection(id string) bool {
	return s.Set(KeySelectedCollection, id)
}

// OnboardingComplete reports whether the first-run flow finished.
func (s *Store) OnboardingComplete() bool {
	done := false
	s.Get(KeyOnboarding, &done)
	return done
}

// CompleteOnboarding marks the first-run flow as finished.
func (s *Store) CompleteOnboarding() bool {
	return s.Set(KeyOnboarding, true)
}
