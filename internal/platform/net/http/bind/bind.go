// Package bind decodes and validates JSON request bodies
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strings"
	"sync"

	perr "wordbound/internal/platform/errors"
	"wordbound/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"golang.org/x/text/language"
)

// ValidatorSvc holds the validator and its english translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *ValidatorSvc

	presetName = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)
)

// Get returns the validator singleton, building it on first use
func Get() *ValidatorSvc {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		// report json names in messages
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)

		short(v, trans, "min", "{0} must be at least {1}")
		short(v, trans, "max", "{0} must be at most {1}")

		custom(v, trans, "preset", "{0} must be a lowercase preset name", func(fl validator.FieldLevel) bool {
			return presetName.MatchString(fl.Field().String())
		})
		custom(v, trans, "bcp47", "{0} must be a BCP 47 language tag", func(fl validator.FieldLevel) bool {
			_, err := language.Parse(fl.Field().String())
			return err == nil
		})

		vSvc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return vSvc
}

// RegisterValidation registers a custom tag on the singleton
func RegisterValidation(tag string, fn validator.Func) error {
	return Get().Validator.RegisterValidation(tag, fn)
}

// JSONOptions controls parsing
type JSONOptions struct {
	MaxBytes        int64 // 0 means no limit
	DisallowUnknown bool
}

// DefaultJSONOptions caps bodies at 1MB and rejects unknown fields
func DefaultJSONOptions() JSONOptions {
	return JSONOptions{MaxBytes: 1 << 20, DisallowUnknown: true}
}

// ParseJSON decodes a T from the body, validates it and maps failures to project errors:
// malformed JSON gives ErrorCodeJSON, failed validation gives ErrorCodeValidation with the field
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var zero T
	o := DefaultJSONOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Debug().Err(err).Msg("closing request body")
		}
	}()

	body := io.Reader(r.Body)
	if o.MaxBytes > 0 {
		// one extra byte tells an oversize body from one that fits exactly
		body = io.LimitReader(r.Body, o.MaxBytes+1)
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		return zero, perr.Wrapf(err, perr.ErrorCodeJSON, "read body")
	}
	if o.MaxBytes > 0 && int64(len(raw)) > o.MaxBytes {
		return zero, perr.JSONErrf("body exceeds %d bytes", o.MaxBytes)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return zero, perr.JSONErrf("empty body")
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}
	var dst T
	if err := dec.Decode(&dst); err != nil {
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return zero, perr.JSONErrf("unexpected trailing data")
	}

	if err := Get().Validator.Struct(dst); err != nil {
		var inv *validator.InvalidValidationError
		if errors.As(err, &inv) {
			logger.C(r.Context()).Error().Err(inv).Msg("validator internal error")
			return zero, perr.Internalf("validation error")
		}
		field, msg := ValidationFieldAndMessage(err)
		return zero, perr.WithField(perr.New(perr.ErrorCodeValidation, msg), field)
	}
	return dst, nil
}

// ValidationFieldAndMessage returns the first failing field and its translated message
func ValidationFieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field(), verrs[0].Translate(Get().Translator)
	}
	return "", err.Error()
}

func short(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error { return ut.Add(tag, text, true) },
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}

func custom(v *validator.Validate, trans ut.Translator, tag, text string, fn validator.Func) {
	_ = v.RegisterValidation(tag, fn)
	_ = v.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error { return ut.Add(tag, text, true) },
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T(tag, fe.Field())
			return msg
		},
	)
}
