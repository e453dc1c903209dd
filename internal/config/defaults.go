package config

const (
	defaultStateDir         = "~/.local/share/tidy"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultFallbackCategory = "Other"
	defaultReportFile       = "organization_report.txt"
	defaultJournalEnabled   = true
	defaultConfirm          = true
	defaultSkipHidden       = true
)

// DefaultCategories returns the built-in category table. Extensions carry
// their leading dot and are matched case-insensitively.
func DefaultCategories() map[string][]string {
	return map[string][]string{
		"Images":      {".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg"},
		"Documents":   {".pdf", ".doc", ".docx", ".txt", ".xls", ".xlsx", ".ppt", ".pptx"},
		"Videos":      {".mp4", ".mov", ".avi", ".mkv"},
		"Music":       {".mp3", ".wav", ".flac"},
		"Archives":    {".zip", ".rar", ".tar", ".gz", ".7z"},
		"Scripts":     {".py", ".js", ".sh", ".bat"},
		"Executables": {".exe", ".msi", ".app"},
	}
}

func defaultIgnoredFiles() []string {
	return []string{
		"README.md",
		"LICENSE",
		".gitignore",
		"requirements.txt",
		defaultReportFile,
	}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
		},
		Organize: Organize{
			Confirm:          defaultConfirm,
			SkipHidden:       defaultSkipHidden,
			IgnoredFiles:     defaultIgnoredFiles(),
			FallbackCategory: defaultFallbackCategory,
			ReportFile:       defaultReportFile,
		},
		Categories: DefaultCategories(),
		Journal: Journal{
			Enabled: defaultJournalEnabled,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
