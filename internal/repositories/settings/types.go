package settings

// GetSettingsInput contains parameters for reading the settings
type GetSettingsInput struct{}

// SetActiveInput contains the new recording state
type SetActiveInput struct {
	Active bool
}

// SetHideGMDataInput contains the new GM visibility state
type SetHideGMDataInput struct {
	HideGMData bool
}
