package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App    AppConfig
	Log    LogConfig
	Store  StoreConfig
	Render RenderConfig
	Output OutputConfig
	S3     S3Config
	Chrome ChromeConfig
	HTTP   HTTPConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// StoreConfig locates the customer file
type StoreConfig struct {
	Path string
}

// RenderConfig holds label rendering settings
type RenderConfig struct {
	ShopName      string
	Language      string
	FontFamily    string
	FontURL       string
	FontFile      string
	TemplateDir   string
	MarkupPerPage int `validate:"gt=0"`
	MarkupColumns int `validate:"gt=0"`
	PrintPerPage  int `validate:"gt=0"`
}

// OutputConfig controls where rendered artifacts are written
type OutputConfig struct {
	Backend  string `validate:"oneof=filesystem s3"`
	Dir      string
	HTMLName string
	PDFName  string
}

// S3Config holds S3-compatible storage settings, used when output.backend is s3
type S3Config struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	Prefix          string
	UsePathStyle    bool
	CreateBucket    bool // create the bucket at startup when missing
}

// ChromeConfig holds headless Chrome settings for PDF conversion
type ChromeConfig struct {
	ExecPath  string
	RemoteURL string // connect to a running browser instead of launching one
	Timeout   time.Duration
	NoSandbox bool
}

// HTTPConfig holds HTTP server settings
type HTTPConfig struct {
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int
	MaxBodySize    int64 // bytes
}

const (
	// DefaultFontFamily is the face used for Persian labels
	DefaultFontFamily = "Noto Naskh Arabic"
	// DefaultFontURL is the stylesheet that serves DefaultFontFamily
	DefaultFontURL = "https://fonts.googleapis.com/css2?family=Noto+Naskh+Arabic&display=swap"

	BackendFileSystem = "filesystem"
	BackendS3         = "s3"
)

// Load reads configuration from config.toml and environment variables.
// Priority (highest to lowest):
// 1. Environment variables with LABELS_ prefix (e.g., LABELS_STORE_PATH)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile behaves like Load but reads the given file instead of searching
// for config.toml. An empty path falls back to the search.
func LoadFile(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		v.AddConfigPath("/app")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("LABELS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Store: StoreConfig{
			Path: v.GetString("store.path"),
		},
		Render: RenderConfig{
			ShopName:      v.GetString("render.shop_name"),
			Language:      v.GetString("render.language"),
			FontFamily:    v.GetString("render.font_family"),
			FontURL:       v.GetString("render.font_url"),
			FontFile:      v.GetString("render.font_file"),
			TemplateDir:   v.GetString("render.template_dir"),
			MarkupPerPage: v.GetInt("render.markup_per_page"),
			MarkupColumns: v.GetInt("render.markup_columns"),
			PrintPerPage:  v.GetInt("render.print_per_page"),
		},
		Output: OutputConfig{
			Backend:  v.GetString("output.backend"),
			Dir:      v.GetString("output.dir"),
			HTMLName: v.GetString("output.html_name"),
			PDFName:  v.GetString("output.pdf_name"),
		},
		S3: S3Config{
			Endpoint:        v.GetString("s3.endpoint"),
			Region:          v.GetString("s3.region"),
			Bucket:          v.GetString("s3.bucket"),
			AccessKeyID:     v.GetString("s3.access_key_id"),
			SecretAccessKey: v.GetString("s3.secret_access_key"),
			Prefix:          v.GetString("s3.prefix"),
			UsePathStyle:    v.GetBool("s3.use_path_style"),
			CreateBucket:    v.GetBool("s3.create_bucket"),
		},
		Chrome: ChromeConfig{
			ExecPath:  v.GetString("chrome.exec_path"),
			RemoteURL: v.GetString("chrome.remote_url"),
			Timeout:   v.GetDuration("chrome.timeout"),
			NoSandbox: v.GetBool("chrome.no_sandbox"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:    v.GetDuration("http.read_timeout"),
			WriteTimeout:   v.GetDuration("http.write_timeout"),
			IdleTimeout:    v.GetDuration("http.idle_timeout"),
			MaxHeaderBytes: v.GetInt("http.max_header_bytes"),
			MaxBodySize:    v.GetInt64("http.max_body_size"),
		},
	}

	// Capacities are validated as given, so only unset keys take defaults
	applyDefaults(cfg, func(key string) bool { return v.IsSet(key) })

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields. isSet
// reports whether a key was given explicitly; explicit capacities are kept
// so that validation can reject them.
func applyDefaults(cfg *Config, isSet func(string) bool) {
	if cfg.App.Name == "" {
		cfg.App.Name = "label-printer"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}

	if cfg.Store.Path == "" {
		cfg.Store.Path = "database.csv"
	}

	if cfg.Render.Language == "" {
		cfg.Render.Language = "fa"
	}
	if cfg.Render.FontFamily == "" {
		cfg.Render.FontFamily = DefaultFontFamily
	}
	if cfg.Render.FontURL == "" && !isSet("render.font_url") {
		cfg.Render.FontURL = DefaultFontURL
	}
	if !isSet("render.markup_per_page") {
		cfg.Render.MarkupPerPage = 8
	}
	if !isSet("render.markup_columns") {
		cfg.Render.MarkupColumns = 2
	}
	if !isSet("render.print_per_page") {
		cfg.Render.PrintPerPage = 5
	}

	if cfg.Output.Backend == "" {
		cfg.Output.Backend = BackendFileSystem
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "."
	}
	if cfg.Output.HTMLName == "" {
		cfg.Output.HTMLName = "customer_labels.html"
	}
	if cfg.Output.PDFName == "" {
		cfg.Output.PDFName = "customer_labels.pdf"
	}

	if cfg.S3.Region == "" {
		cfg.S3.Region = "us-east-1"
	}

	if cfg.Chrome.Timeout == 0 {
		cfg.Chrome.Timeout = 30 * time.Second
	}

	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 60 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.HTTP.MaxHeaderBytes == 0 {
		cfg.HTTP.MaxHeaderBytes = 1 << 20
	}
	if cfg.HTTP.MaxBodySize == 0 {
		cfg.HTTP.MaxBodySize = 1 << 20
	}
}

var validate = validator.New()

// Validate checks capacities, the output backend and its credentials
func (c *Config) Validate() error {
	if err := validate.Struct(c.Render); err != nil {
		return fmt.Errorf("invalid render configuration: %w", err)
	}
	if err := validate.Struct(c.Output); err != nil {
		return fmt.Errorf("invalid output configuration: %w", err)
	}

	if c.Output.Backend == BackendS3 {
		if c.S3.Bucket == "" {
			return fmt.Errorf("s3.bucket is required when output.backend is s3")
		}
		if c.S3.AccessKeyID == "" || c.S3.SecretAccessKey == "" {
			return fmt.Errorf("s3.access_key_id and s3.secret_access_key are required when output.backend is s3")
		}
	}

	if c.Chrome.Timeout < 0 {
		return fmt.Errorf("chrome.timeout cannot be negative")
	}
	if c.HTTP.MaxBodySize < 0 {
		return fmt.Errorf("http.max_body_size cannot be negative")
	}

	return nil
}

// ShopTitle returns the configured shop name, or fallback when unset
func (r RenderConfig) ShopTitle(fallback string) string {
	if name := strings.TrimSpace(r.ShopName); name != "" {
		return name
	}
	return fallback
}
