// Package config loads engine configuration from a TOML file with
// environment variable overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all engine configuration
type Config struct {
	App            AppConfig
	Log            LogConfig
	Company        CompanyConfig
	Declaration    DeclarationConfig
	Numbering      NumberingConfig
	Export         ExportConfig
	Archive        ArchiveConfig
}

// AppConfig holds application-level settings
type AppConfig struct {
	Name string
	Env  string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// CompanyConfig is the filer identity used on declarations.
// IF/ICE/RC are the Moroccan tax identifier triad.
type CompanyConfig struct {
	LegalName string `validate:"required"`
	IF        string `validate:"required,numeric"`
	ICE       string `validate:"required,numeric,len=15"`
	RC        string `validate:"required"`
}

// DeclarationConfig holds VAT declaration settings
type DeclarationConfig struct {
	Mode string `validate:"oneof=DEBIT ENCAISSEMENT"` // VAT recognition regime
}

// NumberingConfig holds document numbering settings
type NumberingConfig struct {
	InvoicePrefix string
	QuotePrefix   string
	CreditPrefix  string
	Separator     string
}

// ExportConfig holds export delivery settings
type ExportConfig struct {
	Directory string // where export files are written
	Locale    string // BCP 47 tag used for tabular amount formatting
}

// ArchiveConfig holds the optional S3-compatible declaration archive.
// Compatible with AWS S3, MinIO, RustFS and similar backends.
type ArchiveConfig struct {
	Enabled      bool
	Endpoint     string
	Region       string
	Bucket       string
	AccessKey    string
	SecretKey    string
	UseSSL       bool
	UsePathStyle bool
}

// Load loads configuration from TOML file and environment variables.
// Priority (highest to lowest):
// 1. Environment variables with COMPTA_ prefix (e.g. COMPTA_COMPANY_ICE)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/comptaflow")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file is fine, defaults and env vars apply.
	}

	v.SetEnvPrefix("COMPTA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Company: CompanyConfig{
			LegalName: v.GetString("company.legal_name"),
			IF:        v.GetString("company.if"),
			ICE:       v.GetString("company.ice"),
			RC:        v.GetString("company.rc"),
		},
		Declaration: DeclarationConfig{
			Mode: v.GetString("declaration.mode"),
		},
		Numbering: NumberingConfig{
			InvoicePrefix: v.GetString("numbering.invoice_prefix"),
			QuotePrefix:   v.GetString("numbering.quote_prefix"),
			CreditPrefix:  v.GetString("numbering.credit_prefix"),
			Separator:     v.GetString("numbering.separator"),
		},
		Export: ExportConfig{
			Directory: v.GetString("export.directory"),
			Locale:    v.GetString("export.locale"),
		},
		Archive: ArchiveConfig{
			Enabled:      v.GetBool("archive.enabled"),
			Endpoint:     v.GetString("archive.endpoint"),
			Region:       v.GetString("archive.region"),
			Bucket:       v.GetString("archive.bucket"),
			AccessKey:    v.GetString("archive.access_key"),
			SecretKey:    v.GetString("archive.secret_key"),
			UseSSL:       v.GetBool("archive.use_ssl"),
			UsePathStyle: v.GetBool("archive.use_path_style"),
		},
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "comptaflow")
	v.SetDefault("app.env", "development")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stderr")

	v.SetDefault("declaration.mode", "DEBIT")

	v.SetDefault("numbering.invoice_prefix", "FAC")
	v.SetDefault("numbering.quote_prefix", "DEV")
	v.SetDefault("numbering.credit_prefix", "AV")
	v.SetDefault("numbering.separator", "-")

	v.SetDefault("export.directory", ".")
	v.SetDefault("export.locale", "fr")

	v.SetDefault("archive.enabled", false)
	v.SetDefault("archive.region", "us-east-1")
	v.SetDefault("archive.use_path_style", true)
}

// ValidateCompany checks that the filer identity is complete enough to stamp
// a statutory declaration. Called before any declaration export, not at
// load time, so purely computational commands run without an identity.
func (c *Config) ValidateCompany() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c.Company); err != nil {
		return fmt.Errorf("company identity is incomplete: %w", err)
	}
	return nil
}

// ValidateDeclaration checks declaration settings
func (c *Config) ValidateDeclaration() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c.Declaration); err != nil {
		return fmt.Errorf("invalid declaration settings: %w", err)
	}
	return nil
}
