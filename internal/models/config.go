package models

// Config represents the application configuration
type Config struct {
	Report ReportConfig
}

// ReportConfig holds balance report settings
type ReportConfig struct {
	WalletsFile   string
	DefaultWallet string
	ShowSOL       bool
}
