package support

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ServiceName = "wee-starter"

type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	Production  Environment = "production"
)

type Exporter string

const (
	NoExporter      Exporter = "none"
	ConsoleExporter Exporter = "console"
	OTLPExporter    Exporter = "otlp"
	JaegerExporter  Exporter = "jaeger"
)

const (
	defaultConnectTimeout = 10 * time.Second
	defaultOTLPEndpoint   = "localhost:4317"
	defaultJaegerEndpoint = "http://localhost:14268/api/traces"
)

type Config struct {
	Environment         Environment
	Port                int
	MongoURI            string
	MongoConnectTimeout time.Duration
	LogLevel            zerolog.Level
	TelemetryExporter   Exporter
	OTLPEndpoint        string
	OTLPInsecure        bool
	JaegerEndpoint      string
}

func (c Config) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Lookup reads a single configuration value; os.LookupEnv satisfies it.
type Lookup func(key string) (string, bool)

func Environ() Lookup {
	return os.LookupEnv
}

func MapLookup(values map[string]string) Lookup {
	return func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	}
}

type FieldError struct {
	Name   string
	Reason string
}

func (e FieldError) String() string {
	return e.Name + ": " + e.Reason
}

// ValidationError lists every invalid setting, not only the first one found.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	reasons := make([]string, len(e.Fields))
	for i, field := range e.Fields {
		reasons[i] = field.String()
	}

	return "invalid environment configuration: " + strings.Join(reasons, "; ")
}

func (e *ValidationError) Has(name string) bool {
	for _, field := range e.Fields {
		if field.Name == name {
			return true
		}
	}

	return false
}

type validator struct {
	lookup Lookup
	fields []FieldError
}

func (v *validator) fail(name string, format string, args ...any) {
	v.fields = append(v.fields, FieldError{Name: name, Reason: fmt.Sprintf(format, args...)})
}

func (v *validator) value(name string) (string, bool) {
	value, ok := v.lookup(name)
	if !ok {
		return "", false
	}

	return strings.TrimSpace(value), true
}

func (v *validator) required(name string) (string, bool) {
	value, ok := v.value(name)
	if !ok || value == "" {
		v.fail(name, "is required")
		return "", false
	}

	return value, true
}

func (v *validator) optional(name string, fallback string) string {
	value, ok := v.value(name)
	if !ok || value == "" {
		return fallback
	}

	return value
}

func (v *validator) environment() Environment {
	value, ok := v.required("NODE_ENV")
	if !ok {
		return ""
	}

	switch env := Environment(value); env {
	case Development, Test, Production:
		return env
	default:
		v.fail("NODE_ENV", "must be one of %s, %s, %s; got %q", Development, Test, Production, value)
		return ""
	}
}

func (v *validator) port() int {
	value, ok := v.required("PORT")
	if !ok {
		return 0
	}

	port, err := strconv.Atoi(value)
	if err != nil {
		v.fail("PORT", "must be an integer; got %q", value)
		return 0
	}

	if port < 1 || port > 65535 {
		v.fail("PORT", "must be between 1 and 65535; got %d", port)
		return 0
	}

	return port
}

func (v *validator) mongoURI() string {
	value, ok := v.required("MONGO_URI")
	if !ok {
		return ""
	}

	if err := options.Client().ApplyURI(value).Validate(); err != nil {
		v.fail("MONGO_URI", "must be a valid MongoDB connection string: %v", err)
		return ""
	}

	return value
}

func (v *validator) duration(name string, fallback time.Duration) time.Duration {
	value := v.optional(name, "")
	if value == "" {
		return fallback
	}

	duration, err := time.ParseDuration(value)
	if err != nil || duration <= 0 {
		v.fail(name, "must be a positive duration; got %q", value)
		return fallback
	}

	return duration
}

func (v *validator) boolean(name string, fallback bool) bool {
	value := v.optional(name, "")
	if value == "" {
		return fallback
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		v.fail(name, "must be a boolean; got %q", value)
		return fallback
	}

	return b
}

func (v *validator) logLevel(env Environment) zerolog.Level {
	fallback := zerolog.InfoLevel
	if env == Development {
		fallback = zerolog.DebugLevel
	}

	value := v.optional("LOG_LEVEL", "")
	if value == "" {
		return fallback
	}

	level, err := zerolog.ParseLevel(strings.ToLower(value))
	if err != nil {
		v.fail("LOG_LEVEL", "must be a log level; got %q", value)
		return fallback
	}

	return level
}

func (v *validator) exporter() Exporter {
	switch exporter := Exporter(v.optional("TELEMETRY_EXPORTER", string(NoExporter))); exporter {
	case NoExporter, ConsoleExporter, OTLPExporter, JaegerExporter:
		return exporter
	default:
		v.fail("TELEMETRY_EXPORTER", "must be one of %s, %s, %s, %s; got %q", NoExporter, ConsoleExporter, OTLPExporter, JaegerExporter, exporter)
		return NoExporter
	}
}

// Load reads and validates the service configuration.
func Load(lookup Lookup) (Config, error) {
	v := &validator{lookup: lookup}

	env := v.environment()
	config := Config{
		Environment:         env,
		Port:                v.port(),
		MongoURI:            v.mongoURI(),
		MongoConnectTimeout: v.duration("MONGO_CONNECT_TIMEOUT", defaultConnectTimeout),
		LogLevel:            v.logLevel(env),
		TelemetryExporter:   v.exporter(),
		OTLPEndpoint:        v.optional("OTEL_EXPORTER_OTLP_ENDPOINT", defaultOTLPEndpoint),
		OTLPInsecure:        v.boolean("OTEL_EXPORTER_OTLP_INSECURE", false),
		JaegerEndpoint:      v.optional("JAEGER_ENDPOINT", defaultJaegerEndpoint),
	}

	if len(v.fields) > 0 {
		return Config{}, &ValidationError{Fields: v.fields}
	}

	return config, nil
}

// LoadEnvFile copies variables from a dotenv file into the process environment
// without overriding anything already set. A missing file is only an error when required.
func LoadEnvFile(path string, required bool) error {
	if err := godotenv.Load(path); err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return errors.Wrapf(err, "failed to load %s", path)
	}

	return nil
}
