package settings

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("settings: nil config")
	}
	if err := getValidator().Struct(cfg); err != nil {
		return errors.Wrap(err, "settings: invalid config")
	}
	return nil
}

// ValidateQueue checks a single queue section, e.g. before calling queue.NewBounded.
func ValidateQueue(cfg Queue) error {
	if err := getValidator().Struct(cfg); err != nil {
		return errors.Wrap(err, "settings: invalid queue config")
	}
	return nil
}
