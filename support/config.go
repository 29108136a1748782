package support

import (
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const EnvPrefix = "COUNTER"

type Config struct {
	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`
	LogFile   string `mapstructure:"log-file"`

	TraceExporter  string            `mapstructure:"trace-exporter"`
	OTLPEndpoint   string            `mapstructure:"otlp-endpoint"`
	OTLPHeaders    map[string]string `mapstructure:"otlp-headers"`
	OTLPInsecure   bool              `mapstructure:"otlp-insecure"`
	JaegerEndpoint string            `mapstructure:"jaeger-endpoint"`

	Listen    string  `mapstructure:"listen"`
	RateLimit float64 `mapstructure:"rate-limit"`
	RateBurst int     `mapstructure:"rate-burst"`
}

var defaults = map[string]any{
	"log-level":       "info",
	"log-format":      "console",
	"log-file":        "",
	"trace-exporter":  "none",
	"otlp-endpoint":   "localhost:4317",
	"otlp-headers":    "",
	"otlp-insecure":   false,
	"jaeger-endpoint": "",
	"listen":          ":9080",
	"rate-limit":      20.0,
	"rate-burst":      40,
}

// NewViper returns a viper instance with the counter defaults, reading
// COUNTER_* environment variables. Flags are bound by the caller.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	return v
}

func LoadConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	hooks := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		stringToHeaders(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))

	if err := v.Unmarshal(&cfg, hooks); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode configuration")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ParseHeaders reads a "key=value,key2=value2" list, the form headers take in
// COUNTER_OTLP_HEADERS.
func ParseHeaders(input string) (map[string]string, error) {
	headers := map[string]string{}
	for _, pair := range strings.Split(input, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.Errorf("invalid header %q, expected key=value", pair)
		}

		headers[key] = strings.TrimSpace(value)
	}

	return headers, nil
}

func stringToHeaders() mapstructure.DecodeHookFuncType {
	headers := reflect.TypeOf(map[string]string{})

	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != headers {
			return data, nil
		}

		return ParseHeaders(data.(string))
	}
}

func (cfg Config) Validate() error {
	switch cfg.LogFormat {
	case "console", "json":
	default:
		return errors.Errorf("unsupported log format %q", cfg.LogFormat)
	}

	switch cfg.TraceExporter {
	case "none", "stdout", "otlp", "jaeger":
	default:
		return errors.Errorf("unsupported trace exporter %q", cfg.TraceExporter)
	}

	if cfg.RateLimit < 0 {
		return errors.New("rate limit must not be negative")
	}

	if cfg.RateLimit > 0 && cfg.RateBurst < 1 {
		return errors.New("rate burst must be at least 1 when rate limiting")
	}

	return nil
}
