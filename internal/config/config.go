package config

// Config is the root application configuration.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Log     LogConfig     `yaml:"log"`
}

// CatalogConfig holds the source/destination settings of the word catalog build.
type CatalogConfig struct {
	SourcePath      string `yaml:"source_path"      env:"CATALOG_SOURCE_PATH"      env-default:"toki_pona_dict.csv"`
	DestinationPath string `yaml:"destination_path" env:"CATALOG_DESTINATION_PATH" env-default:"assets/data/words.json"`
	Indent          int    `yaml:"indent"           env:"CATALOG_INDENT"           env-default:"2"`
	DryRun          bool   `yaml:"dry_run"          env:"CATALOG_DRY_RUN"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
