package config

// Kind is the type a variable is coerced to.
type Kind string

// Variable kinds.
const (
	KindBool   Kind = "bool"
	KindInt    Kind = "int"
	KindString Kind = "string"
)

// Var documents one environment variable.
type Var struct {
	Key     string `json:"key" yaml:"key"`
	Field   string `json:"field" yaml:"field"`
	Kind    Kind   `json:"kind" yaml:"kind"`
	Default string `json:"default" yaml:"default"`
}

var vars = []Var{
	{EnvUseHardcodedData, "useHardcodedData", KindBool, DefaultFlag},
	{EnvSupabaseEnabled, "supabaseEnabled", KindBool, DefaultFlag},
	{EnvSupabaseURL, "supabase.url", KindString, ""},
	{EnvSupabaseAnonKey, "supabase.anonKey", KindString, ""},
	{EnvAPIBaseURL, "api.baseUrl", KindString, DefaultAPIBaseURL},
	{EnvAPITimeout, "api.timeout", KindInt, DefaultAPITimeout},
	{EnvEnableAuthentication, "features.authentication", KindBool, DefaultFlag},
	{EnvEnableRealTimeUpdates, "features.realTimeUpdates", KindBool, DefaultFlag},
	{EnvEnableFileUploads, "features.fileUploads", KindBool, DefaultFlag},
	{EnvDevServerPort, "devServer.port", KindInt, DefaultDevServerPort},
	{EnvDevServerHost, "devServer.host", KindString, DefaultDevServerHost},
	{EnvEnableDebugLogging, "logging.debug", KindBool, DefaultFlag},
	{EnvLogLevel, "logging.level", KindString, DefaultLogLevel},
	{EnvJWTSecret, "security.jwtSecret", KindString, DefaultJWTSecret},
	{EnvEmailService, "services.email", KindString, DefaultEmailService},
	{EnvStorageService, "services.storage", KindString, DefaultStorage},
	{EnvStorageBucket, "services.storageBucket", KindString, DefaultStorageBucket},
	{EnvEnableEmailNotify, "notifications.email", KindBool, DefaultFlag},
	{EnvEnablePushNotify, "notifications.push", KindBool, DefaultFlag},
	{EnvEnableAnalytics, "analytics.enabled", KindBool, DefaultFlag},
	{EnvAnalyticsID, "analytics.id", KindString, ""},
	{EnvEnableDevTools, "devTools.reactDevTools", KindBool, DefaultFlag},
	{EnvEnablePerfMonitoring, "devTools.performanceMonitoring", KindBool, DefaultFlag},
}

// Vars lists every variable the loader reads, in record order.
func Vars() []Var {
	out := make([]Var, len(vars))
	copy(out, vars)
	return out
}
