// Package bind decodes and validates JSON request bodies
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "hourglass/internal/platform/errors"
	"hourglass/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Validator pairs the validator with its English translator
type Validator struct {
	V     *validator.Validate
	Trans ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *Validator
)

// Get returns the process-wide validator
func Get() *Validator {
	vOnce.Do(func() {
		loc := en.New()
		trans, _ := ut.New(loc, loc).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
		_ = en_translations.RegisterDefaultTranslations(v, trans)
		short(v, trans, "min", "{0} must be at least {1}")
		short(v, trans, "max", "{0} must be at most {1}")
		short(v, trans, "datetime", "{0} must be a date like {1}")

		vSvc = &Validator{V: v, Trans: trans}
	})
	return vSvc
}

// MaxBytes caps request bodies
const MaxBytes = 1 << 20

// ParseJSON decodes r's body into T and validates it. Unknown fields, trailing
// data and empty bodies are JSON errors; failed tags are validation errors.
func ParseJSON[T any](r *http.Request) (T, error) {
	var zero, dst T
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.Get().Warn().Err(err).Msg("close request body")
		}
	}()

	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&dst); err != nil {
		if errors.Is(err, io.EOF) {
			return zero, perr.JSONErrf("empty body")
		}
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return zero, perr.JSONErrf("unexpected trailing data")
	}
	if err := Validate(dst); err != nil {
		return zero, err
	}
	return dst, nil
}

// Validate runs struct tags on v and returns the first failure as a
// validation error naming the json field
func Validate(v any) error {
	err := Get().V.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return perr.WithField(perr.Validationf("%s", fe.Translate(Get().Trans)), fe.Field())
	}
	logger.Get().Error().Err(err).Msg("validator internal error")
	return perr.Validationf("validation error")
}

func short(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}
