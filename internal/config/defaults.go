package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Storage.DatabasePath == "" {
		cfg.Storage.DatabasePath = "/usr/local/var/kaimono/data/catalog.db"
	}
	if cfg.Search.HistorySize == 0 {
		cfg.Search.HistorySize = 50
	}
	cfg.Scoring.ApplyDefaults()
	cfg.Suggest.Caps.ApplyDefaults()
	// Watch defaults to true when unset and an import dir is configured.
	if cfg.Catalog.ImportDir != "" && cfg.Catalog.Watch == nil {
		t := true
		cfg.Catalog.Watch = &t
	}
}
