package models

// SampleResult is one amount rendered in the checked locale.
type SampleResult struct {
	Machine   string `json:"machine"`
	Display   string `json:"display"`
	RoundTrip bool   `json:"round_trip"`
	Error     string `json:"error,omitempty"`
}

// TestReport holds the results of the settings test.
type TestReport struct {
	ConfigPath      string         `json:"config_path"`
	Exists          bool           `json:"exists"`
	ValidStructure  bool           `json:"valid_structure"`
	StructureErrors []string       `json:"structure_errors,omitempty"`
	Locale          string         `json:"locale"`
	LanguageName    string         `json:"language_name"`
	LinksAllowed    bool           `json:"external_links_allowed"`
	SecondCurrency  string         `json:"second_currency"`
	BackupCount     int            `json:"backup_count"`
	Samples         []SampleResult `json:"samples,omitempty"`
	NeverLabel      string         `json:"never_label"`
}
