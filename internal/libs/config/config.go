// Package config provides application configuration management from environment variables.
package config

import "fmt"

// Environment variable names.
const (
	EnvUseHardcodedData      = "VITE_USE_HARDCODED_DATA"
	EnvSupabaseEnabled       = "VITE_SUPABASE_ENABLED"
	EnvSupabaseURL           = "VITE_SUPABASE_URL"
	EnvSupabaseAnonKey       = "VITE_SUPABASE_ANON_KEY"
	EnvAPIBaseURL            = "VITE_API_BASE_URL"
	EnvAPITimeout            = "VITE_API_TIMEOUT"
	EnvEnableAuthentication  = "VITE_ENABLE_AUTHENTICATION"
	EnvEnableRealTimeUpdates = "VITE_ENABLE_REAL_TIME_UPDATES"
	EnvEnableFileUploads     = "VITE_ENABLE_FILE_UPLOADS"
	EnvDevServerPort         = "VITE_DEV_SERVER_PORT"
	EnvDevServerHost         = "VITE_DEV_SERVER_HOST"
	EnvEnableDebugLogging    = "VITE_ENABLE_DEBUG_LOGGING"
	EnvLogLevel              = "VITE_LOG_LEVEL"
	EnvJWTSecret             = "VITE_JWT_SECRET"
	EnvEmailService          = "VITE_EMAIL_SERVICE"
	EnvStorageService        = "VITE_STORAGE_SERVICE"
	EnvStorageBucket         = "VITE_STORAGE_BUCKET"
	EnvEnableEmailNotify     = "VITE_ENABLE_EMAIL_NOTIFICATIONS"
	EnvEnablePushNotify      = "VITE_ENABLE_PUSH_NOTIFICATIONS"
	EnvEnableAnalytics       = "VITE_ENABLE_ANALYTICS"
	EnvAnalyticsID           = "VITE_ANALYTICS_ID"
	EnvEnableDevTools        = "VITE_ENABLE_DEV_TOOLS"
	EnvEnablePerfMonitoring  = "VITE_ENABLE_PERFORMANCE_MONITORING"
)

// Textual defaults, substituted before coercion.
const (
	DefaultFlag          = "false"
	DefaultAPIBaseURL    = "http://localhost:3000"
	DefaultAPITimeout    = "30000"
	DefaultDevServerPort = "3000"
	DefaultDevServerHost = "localhost"
	DefaultLogLevel      = "info"
	DefaultJWTSecret     = "dev-secret-key"
	DefaultEmailService  = "sendgrid"
	DefaultStorage       = "supabase"
	DefaultStorageBucket = "equipment-dashboard"
)

// Config holds application configuration. It is built once at startup
// and must not be modified afterwards.
type Config struct {
	UseHardcodedData bool                `json:"useHardcodedData" yaml:"useHardcodedData"`
	SupabaseEnabled  bool                `json:"supabaseEnabled" yaml:"supabaseEnabled"`
	Supabase         SupabaseConfig      `json:"supabase" yaml:"supabase"`
	API              APIConfig           `json:"api" yaml:"api"`
	Features         FeaturesConfig      `json:"features" yaml:"features"`
	DevServer        DevServerConfig     `json:"devServer" yaml:"devServer"`
	Logging          LoggingConfig       `json:"logging" yaml:"logging"`
	Security         SecurityConfig      `json:"security" yaml:"security"`
	Services         ServicesConfig      `json:"services" yaml:"services"`
	Notifications    NotificationsConfig `json:"notifications" yaml:"notifications"`
	Analytics        AnalyticsConfig     `json:"analytics" yaml:"analytics"`
	DevTools         DevToolsConfig      `json:"devTools" yaml:"devTools"`

	Mode Mode `json:"mode" yaml:"mode"`
}

// SupabaseConfig holds the Supabase project settings
type SupabaseConfig struct {
	URL     string `json:"url" yaml:"url"`
	AnonKey string `json:"anonKey" yaml:"anonKey"`
}

// APIConfig holds the backend API settings. Timeout is in milliseconds.
type APIConfig struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
	Timeout Int    `json:"timeout" yaml:"timeout"`
}

// FeaturesConfig holds feature flags
type FeaturesConfig struct {
	Authentication  bool `json:"authentication" yaml:"authentication"`
	RealTimeUpdates bool `json:"realTimeUpdates" yaml:"realTimeUpdates"`
	FileUploads     bool `json:"fileUploads" yaml:"fileUploads"`
}

// DevServerConfig holds the development server address
type DevServerConfig struct {
	Port Int    `json:"port" yaml:"port"`
	Host string `json:"host" yaml:"host"`
}

// LoggingConfig holds log settings
type LoggingConfig struct {
	Debug bool   `json:"debug" yaml:"debug"`
	Level string `json:"level" yaml:"level"`
}

// SecurityConfig holds secrets
type SecurityConfig struct {
	JWTSecret string `json:"jwtSecret" yaml:"jwtSecret"`
}

// ServicesConfig names the external service providers
type ServicesConfig struct {
	Email         string `json:"email" yaml:"email"`
	Storage       string `json:"storage" yaml:"storage"`
	StorageBucket string `json:"storageBucket" yaml:"storageBucket"`
}

// NotificationsConfig holds notification channel flags
type NotificationsConfig struct {
	Email bool `json:"email" yaml:"email"`
	Push  bool `json:"push" yaml:"push"`
}

// AnalyticsConfig holds analytics settings
type AnalyticsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	ID      string `json:"id" yaml:"id"`
}

// DevToolsConfig holds developer tooling flags
type DevToolsConfig struct {
	ReactDevTools         bool `json:"reactDevTools" yaml:"reactDevTools"`
	PerformanceMonitoring bool `json:"performanceMonitoring" yaml:"performanceMonitoring"`
}

// LoadOptions controls where Load looks for values.
type LoadOptions struct {
	// Dir is searched for dotenv files. Empty disables dotenv loading.
	Dir string
	// Mode overrides the MODE environment variable.
	Mode string
	// Env replaces the process environment. Nil means Environ.
	Env Source
}

// Load reads configuration from the process environment layered over
// the dotenv files in the working directory.
func Load() (*Config, error) {
	return LoadWithOptions(LoadOptions{Dir: "."})
}

// LoadWithOptions is Load with explicit options.
func LoadWithOptions(opts LoadOptions) (*Config, error) {
	env := opts.Env
	if env == nil {
		env = Environ
	}

	modeName := opts.Mode
	if modeName == "" {
		modeName, _ = env.Lookup(EnvMode)
	}
	mode := ParseMode(modeName)

	src := Layered{env}
	if opts.Dir != "" {
		files, err := ReadDotenv(opts.Dir, mode)
		if err != nil {
			return nil, fmt.Errorf("failed to load dotenv files: %w", err)
		}
		src = append(src, files)
	}

	return FromSource(src, mode), nil
}

// FromSource builds a Config from src. It never fails: absent or empty
// values take their defaults.
func FromSource(src Source, mode Mode) *Config {
	get := func(key string) string {
		v, _ := src.Lookup(key)
		return v
	}
	flag := func(key string) bool {
		return BoolOr(get(key), DefaultFlag)
	}

	return &Config{
		UseHardcodedData: flag(EnvUseHardcodedData),
		SupabaseEnabled:  flag(EnvSupabaseEnabled),
		Supabase: SupabaseConfig{
			URL:     get(EnvSupabaseURL),
			AnonKey: get(EnvSupabaseAnonKey),
		},
		API: APIConfig{
			BaseURL: StringOr(get(EnvAPIBaseURL), DefaultAPIBaseURL),
			Timeout: IntOr(get(EnvAPITimeout), DefaultAPITimeout),
		},
		Features: FeaturesConfig{
			Authentication:  flag(EnvEnableAuthentication),
			RealTimeUpdates: flag(EnvEnableRealTimeUpdates),
			FileUploads:     flag(EnvEnableFileUploads),
		},
		DevServer: DevServerConfig{
			Port: IntOr(get(EnvDevServerPort), DefaultDevServerPort),
			Host: StringOr(get(EnvDevServerHost), DefaultDevServerHost),
		},
		Logging: LoggingConfig{
			Debug: flag(EnvEnableDebugLogging),
			Level: StringOr(get(EnvLogLevel), DefaultLogLevel),
		},
		Security: SecurityConfig{
			JWTSecret: StringOr(get(EnvJWTSecret), DefaultJWTSecret),
		},
		Services: ServicesConfig{
			Email:         StringOr(get(EnvEmailService), DefaultEmailService),
			Storage:       StringOr(get(EnvStorageService), DefaultStorage),
			StorageBucket: StringOr(get(EnvStorageBucket), DefaultStorageBucket),
		},
		Notifications: NotificationsConfig{
			Email: flag(EnvEnableEmailNotify),
			Push:  flag(EnvEnablePushNotify),
		},
		Analytics: AnalyticsConfig{
			Enabled: flag(EnvEnableAnalytics),
			ID:      get(EnvAnalyticsID),
		},
		DevTools: DevToolsConfig{
			ReactDevTools:         flag(EnvEnableDevTools),
			PerformanceMonitoring: flag(EnvEnablePerfMonitoring),
		},
		Mode: mode,
	}
}

// IsDevelopment returns true unless running in production mode
func (c *Config) IsDevelopment() bool {
	return c.Mode.IsDevelopment()
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Mode.IsProduction()
}

const redactedMask = "********"

// Redacted returns a copy with secrets masked. Empty secrets stay empty
// so that a missing value is still visible.
func (c *Config) Redacted() *Config {
	cp := *c
	if cp.Supabase.AnonKey != "" {
		cp.Supabase.AnonKey = redactedMask
	}
	if cp.Security.JWTSecret != "" {
		cp.Security.JWTSecret = redactedMask
	}
	return &cp
}
