package toolserver

import "github.com/dmitrymomot/labkit/core/server"

// Config holds the tool server configuration, loaded with core/config.
type Config struct {
	Server server.Config

	AppName        string `env:"APP_NAME" envDefault:"labkit"`
	Env            string `env:"APP_ENV" envDefault:"development"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	EnableShutdown bool   `env:"ENABLE_SHUTDOWN" envDefault:"false"`
	MetricsPath    string `env:"METRICS_PATH" envDefault:"/metrics"`
	BodyLimit      int64  `env:"BODY_LIMIT" envDefault:"1048576"`

	// CORSOrigins enables CORS for the listed origins; "*" allows any.
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
}

// Production reports whether the configured environment is production.
func (c Config) Production() bool {
	return c.Env == "production"
}
