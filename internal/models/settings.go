package models

// Settings are the world-scoped switches shared by every participant
type Settings struct {
	// Active indicates whether new rolls are recorded
	Active bool

	// HideGMData excludes GM users from statistics and rankings
	HideGMData bool
}

// DefaultSettings returns the settings used before anything is saved
func DefaultSettings() *Settings {
	return &Settings{
		Active:     true,
		HideGMData: false,
	}
}
