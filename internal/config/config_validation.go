package config

import (
	fkerrors "github.com/alexisbeaulieu97/fieldkit/pkg/errors"
)

// ValidateConfig checks struct tags and the cross-field rules tags cannot
// express.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fkerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if err := cfg.Demo.ContentRows.Validate(); err != nil {
		return fkerrors.NewValidationError("demo.content_rows", err.Error(), err)
	}

	return nil
}
