// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"go.astrophena.name/comment/internal/dateformat"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks cfg using struct tags and rules that tags cannot express.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}
	if err := dateformat.Validate(cfg.DateFormat); err != nil {
		return fmt.Errorf("date_format %q: %w", cfg.DateFormat, err)
	}
	return nil
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		e := verrs[0]
		return fmt.Errorf("%s: validation failed on '%s' tag (value: %v)", e.Namespace(), e.Tag(), e.Value())
	}
	return err
}
