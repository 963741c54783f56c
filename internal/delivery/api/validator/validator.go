// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"regexp"
	"strings"

	"pesantren/internal/errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

const (
	requiredText = "{0} is required"

	slugTag  = "slug"
	slugText = "{0} may only contain lowercase letters, digits and single hyphens"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Validator implements echo.Validator. Field names in errors are the JSON names.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// New creates a validator with English messages.
func New() *Validator {
	locale := en.New()
	translator, _ := ut.New(locale, locale).GetTranslator("en")

	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})
	_ = entranslations.RegisterDefaultTranslations(validate, translator)
	_ = validate.RegisterValidation(slugTag, func(fl validator.FieldLevel) bool {
		return slugRegex.MatchString(fl.Field().String())
	})
	registerTranslation(validate, translator, "required", requiredText, true)
	registerTranslation(validate, translator, slugTag, slugText, false)

	return &Validator{
		validate:   validate,
		translator: translator,
	}
}

func registerTranslation(validate *validator.Validate, translator ut.Translator, tag, text string, override bool) {
	_ = validate.RegisterTranslation(tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, override) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())

			return s
		},
	)
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// FieldErrors translates validation failures into a field name to message map. It reports
// false when err carries no validation failures.
func (v *Validator) FieldErrors(err error) (map[string]string, bool) {
	validationErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return nil, false
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		fields[fieldPath(fe)] = fe.Translate(v.translator)
	}

	return fields, true
}

// fieldPath drops the root struct name from the namespace, so nested fields read
// like "blocks[0].url".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}

	return fe.Field()
}
