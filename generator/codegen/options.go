package codegen

import (
	"github.com/go-playground/validator/v10"

	"github.com/satishbabariya/prisma-class-validator-go/internal/errors"
)

// Decimal representations.
const (
	DecimalTypeDecimal = "Decimal"
	DecimalTypeNumber  = "number"
)

// Default module paths.
const (
	DefaultValidatorModule = "class-validator"
	DefaultRuntimeModule   = "@prisma/client/runtime/library"
)

// Options controls how fields are rendered.
type Options struct {
	// DecimalType selects the Decimal representation: the runtime Decimal
	// class or a plain number.
	DecimalType string `mapstructure:"decimal_type" validate:"oneof=Decimal number"`
	// ValidatorModule is the module annotations are imported from.
	ValidatorModule string `mapstructure:"validator_module" validate:"required"`
	// RuntimeModule is the module JsonValue and Decimal are imported from.
	RuntimeModule string `mapstructure:"runtime_module" validate:"required"`
	// EmitDocs renders schema documentation as JSDoc comments.
	EmitDocs bool `mapstructure:"emit_docs"`
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		DecimalType:     DecimalTypeDecimal,
		ValidatorModule: DefaultValidatorModule,
		RuntimeModule:   DefaultRuntimeModule,
		EmitDocs:        true,
	}
}

// Validate checks the options against their struct constraints.
func (o Options) Validate() error {
	if err := validator.New().Struct(o); err != nil {
		return errors.WithHint(
			errors.Wrap(err, "invalid generator options"),
			`decimalType must be "Decimal" or "number"; module paths must be non-empty`,
		)
	}
	return nil
}
