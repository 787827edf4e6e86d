package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	ImportFrom string `validate:"omitempty,filepath"`
	ExportTo   string `validate:"omitempty,filepath"`
	LogLevel   string `validate:"required,oneof=DEBUG INFO WARN WARNING ERROR"`
	LogFile    string `validate:"omitempty,filepath"`
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying defaults when values are missing.
func Load() Config {
	// Ignore error so the tool still starts when .env is absent.
	_ = godotenv.Load()

	return Config{
		ImportFrom: envOr("FLASHCARDS_IMPORT_FROM", ""),
		ExportTo:   envOr("FLASHCARDS_EXPORT_TO", ""),
		LogLevel:   envOr("LOG_LEVEL", "WARN"),
		LogFile:    envOr("LOG_FILE", ""),
	}
}

var validate = validator.New()

// Validate checks the configuration and names the offending settings by
// their environment variable.
func (c Config) Validate() error {
	c.LogLevel = strings.ToUpper(strings.TrimSpace(c.LogLevel))
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s is invalid (%s)", envName(fe.StructField()), describeTag(fe)))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "cannot be empty"
	case "oneof":
		return "must be one of DEBUG, INFO, WARN, ERROR"
	case "filepath":
		return fmt.Sprintf("%q is not a file path", fe.Value())
	default:
		return fe.Tag()
	}
}

func envName(field string) string {
	switch field {
	case "ImportFrom":
		return "FLASHCARDS_IMPORT_FROM"
	case "ExportTo":
		return "FLASHCARDS_EXPORT_TO"
	case "LogLevel":
		return "LOG_LEVEL"
	case "LogFile":
		return "LOG_FILE"
	default:
		return field
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
