package models

// Settings represents the application configuration
type Settings struct {
	Output OutputSettings `yaml:"output"`
	UI     UISettings     `yaml:"ui"`
}

// OutputSettings controls export behavior
type OutputSettings struct {
	DefaultFilename string `yaml:"default_filename"`
	ExportPath      string `yaml:"export_path"`
	CurrencySymbol  string `yaml:"currency_symbol"`
}

// UISettings controls TUI preferences
type UISettings struct {
	ShowPreview   bool `yaml:"show_preview"`
	ConfirmDelete bool `yaml:"confirm_delete"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Output: OutputSettings{
			DefaultFilename: "ESTIMATE.txt",
			ExportPath:      "./",
			CurrencySymbol:  "$",
		},
		UI: UISettings{
			ShowPreview:   true,
			ConfirmDelete: true,
		},
	}
}
