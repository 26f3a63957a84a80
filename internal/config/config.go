// Package config loads the application settings.
//
// Values are resolved from, in increasing precedence: built-in defaults,
// an optional main.toml, a .env file and the process environment.
package config

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// DefaultPath is the directory searched for main.toml and .env.
	DefaultPath = "./etc/"

	// DefaultSecretKey is used when SECRET_KEY is unset. Only fit for dev mode.
	DefaultSecretKey = "dev-secret-key-change-in-production"

	configName  = "main"
	configType  = "toml"
	dotEnvName  = ".env"
	redactedVal = "********"
)

// envBindings maps config keys to the environment variable names read for them.
var envBindings = map[string]string{ //nolint:gochecknoglobals
	"webserver.secretkey": "SECRET_KEY",
	"webserver.port":      "PORT",
	"webserver.metrics":   "METRICS_ENABLED",
	"mail.server":         "MAIL_SERVER",
	"mail.port":           "MAIL_PORT",
	"mail.usetls":         "MAIL_USE_TLS",
	"mail.username":       "MAIL_USERNAME",
	"mail.password":       "MAIL_PASSWORD",
	"mail.recipient":      "MAIL_RECIPIENT",
	"site.displayname":    "DISPLAY_NAME",
	"site.title":          "SITE_TITLE",
	"db.gormengine":       "DB_ENGINE",
	"db.path":             "DB_PATH",
	"db.host":             "DB_HOST",
	"db.port":             "DB_PORT",
	"db.user":             "DB_USER",
	"db.password":         "DB_PASSWORD",
	"db.name":             "DB_NAME",
	"db.extras":           "DB_EXTRAS",
	"log.loglevel":        "LOG_LEVEL",
}

// ReadConfig reads the configuration from the given directory and the environment.
// A missing main.toml or .env is not an error.
func ReadConfig(path string) (Config, error) {
	var c Config

	if path == "" {
		path = DefaultPath
	}

	dotEnv, err := readDotEnv(filepath.Join(path, dotEnvName))
	if err != nil {
		return Config{}, err
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(path)

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, errors.Wrap(err, "failed to read main config file")
		}
	}

	if err = bindEnv(v, dotEnv); err != nil {
		return Config{}, err
	}

	if err = v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode config")
	}

	return c, validate(&c)
}

// setDefaults registers the fallback for every setting.
func setDefaults(v *viper.Viper) {
	v.SetDefault("devmode", false)

	v.SetDefault("webserver.secretkey", DefaultSecretKey)
	v.SetDefault("webserver.port", 5000) //nolint:mnd
	v.SetDefault("webserver.browsestatic", false)
	v.SetDefault("webserver.disablerecover", false)
	v.SetDefault("webserver.metrics", false)

	v.SetDefault("mail.server", "smtp.gmail.com")
	v.SetDefault("mail.port", 587) //nolint:mnd
	v.SetDefault("mail.usetls", true)
	v.SetDefault("mail.username", "")
	v.SetDefault("mail.password", "")
	v.SetDefault("mail.recipient", "")

	v.SetDefault("site.displayname", "Your Name")
	v.SetDefault("site.title", "Portfolio")

	v.SetDefault("db.gormengine", EngineSQLite)
	v.SetDefault("db.path", "portfolio.db")

	v.SetDefault("log.loglevel", "info")
	v.SetDefault("log.appname", "portfolio")
	v.SetDefault("log.servicename", "portfolio-web")
	v.SetDefault("log.enableaccesslogtoconsole", true)
	v.SetDefault("log.console.enabled", true)
}

// bindEnv binds the environment names and applies .env values
// for variables that are not set in the process environment.
func bindEnv(v *viper.Viper, dotEnv map[string]string) error {
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return errors.Wrapf(err, "failed to bind env %s", env)
		}

		if _, ok := os.LookupEnv(env); ok {
			continue
		}

		if val, ok := dotEnv[env]; ok {
			v.Set(key, val)
		}
	}

	return nil
}

// readDotEnv parses a .env file without exporting it into the process environment.
func readDotEnv(file string) (map[string]string, error) {
	values, err := godotenv.Read(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}

		return nil, errors.Wrapf(err, "failed to read %s", file)
	}

	return values, nil
}

// DumpConfigJSON config as JSON String with secrets redacted.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer

	out := *c
	out.Webserver.SecretKey = redact(out.Webserver.SecretKey)
	out.Mail.Password = redact(out.Mail.Password)
	out.DB.Password = redact(out.DB.Password)

	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(out); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

func redact(s string) string {
	if s == "" {
		return ""
	}

	return redactedVal
}

// validate minimal config settings and normalize the engine name.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	c.DB.GormEngine = strings.ToLower(strings.TrimSpace(c.DB.GormEngine))

	switch c.DB.GormEngine {
	case EngineSQLite:
		if c.DB.Path == "" {
			return errors.Wrap(ErrEmptyDBPath, invalidErrMessage)
		}
	case EngineMySQL, EnginePostgres:
	default:
		return errors.Wrap(ErrUnknownGormEngine, invalidErrMessage)
	}

	if c.Mail.Server == "" {
		return errors.Wrap(ErrEmptyMailServer, invalidErrMessage)
	}

	return nil
}
