// Package bind decodes JSON request bodies and validates the result.
package bind

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "padala/internal/platform/errors"
	"padala/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

type payloadKey struct{}

var bindJSONPayloadKey payloadKey

// Aliases so handlers don't import the validator packages directly.
type (
	FieldLevel = validator.FieldLevel
	UT         = ut.Translator
	FieldError = validator.FieldError
)

// ValidatorSvc bundles the process-wide validator with its translator.
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	initOnce sync.Once
	shared   *ValidatorSvc

	// seam
	jsonMore = func(dec *json.Decoder) bool { return dec.More() }
)

// Init builds the shared validator: english translations, json tag names,
// and compact min/max messages.
func Init() *ValidatorSvc {
	initOnce.Do(func() {
		locale := en.New()
		trans, _ := ut.New(locale, locale).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonFieldName)
		_ = en_translations.RegisterDefaultTranslations(v, trans)
		for tag, tmpl := range map[string]string{
			"min": "{0} must be at least {1}",
			"max": "{0} must be at most {1}",
		} {
			registerShortMessage(v, trans, tag, tmpl)
		}

		shared = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return shared
}

// jsonFieldName reports the json tag name for a struct field, falling back
// to the Go name when the tag is absent or "-".
func jsonFieldName(fld reflect.StructField) string {
	tag := fld.Tag.Get("json")
	if tag == "" || tag == "-" {
		return fld.Name
	}
	if i := strings.Index(tag, ","); i >= 0 {
		tag = tag[:i]
	}
	return tag
}

// Get returns the shared validator, building it on first use.
func Get() *ValidatorSvc {
	if shared == nil {
		return Init()
	}
	return shared
}

// RegisterValidation adds a custom tag to the shared validator.
func RegisterValidation(tag string, fn validator.Func) error {
	return Get().Validator.RegisterValidation(tag, fn)
}

// JSONOptions controls body parsing.
type JSONOptions struct {
	MaxBytes        int64 // default 1MB
	DisallowUnknown bool  // default true
	AllowEmptyBody  bool  // default false
}

func jsonOptions(opts []JSONOptions) JSONOptions {
	if len(opts) == 0 {
		return JSONOptions{MaxBytes: 1 << 20, DisallowUnknown: true}
	}
	return opts[0]
}

// ParseJSON decodes the request body into T and validates it. Decode and
// validation failures come back as coded errors ready for the wire.
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var zero T
	opt := jsonOptions(opts)

	defer func() {
		if cerr := r.Body.Close(); cerr != nil {
			logger.Get().Error().Err(cerr).Msg("failed to close request body")
		}
	}()

	body, empty, err := bodyReader(r, opt)
	if err != nil {
		return zero, err
	}
	if empty {
		return zero, nil
	}

	dec := json.NewDecoder(body)
	if opt.DisallowUnknown {
		dec.DisallowUnknownFields()
	}

	var out T
	if err := dec.Decode(&out); err != nil {
		if opt.AllowEmptyBody && errors.Is(err, io.EOF) {
			return out, nil
		}
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if jsonMore(dec) {
		return zero, perr.JSONErrf("unexpected trailing data")
	}

	if err := checkStruct(out); err != nil {
		return zero, err
	}
	return out, nil
}

// checkStruct runs the shared validator and maps its failures onto coded
// errors, logging internal validator faults instead of leaking them.
func checkStruct(out any) error {
	err := Get().Validator.Struct(out)
	if err == nil {
		return nil
	}
	if inv, ok := err.(*validator.InvalidValidationError); ok {
		logger.Get().Error().Err(inv).Msg("validator internal error")
		return perr.JSONErrf("validation error")
	}
	_, msg := ValidationFieldAndMessage(err)
	return perr.Newf(perr.ErrorCodeValidation, "%s", msg)
}

// bodyReader wraps the request body with the configured size cap. When empty
// bodies are rejected it peeks one byte first; bodyless safe methods report
// empty=true instead of an error.
func bodyReader(r *http.Request, opt JSONOptions) (rd io.Reader, empty bool, err error) {
	src := io.Reader(r.Body)

	if !opt.AllowEmptyBody {
		peek := make([]byte, 1)
		n, _ := r.Body.Read(peek)
		if n == 0 {
			switch r.Method {
			case http.MethodGet, http.MethodDelete, http.MethodHead, http.MethodOptions:
				return nil, true, nil
			}
			return nil, false, perr.JSONErrf("empty body")
		}
		src = io.MultiReader(bytes.NewReader(peek[:n]), r.Body)
	}

	if opt.MaxBytes > 0 {
		src = io.LimitReader(src, opt.MaxBytes)
	}
	return src, false, nil
}

// JSON parses the body into T and stashes a pointer on the request context.
func JSON[T any](opts ...JSONOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			val, err := ParseJSON[T](r, opts...)
			if err != nil {
				// error writing stays with the caller; this middleware is transport-agnostic
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			r = r.WithContext(context.WithValue(r.Context(), bindJSONPayloadKey, &val))
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}

// FromContext returns the payload bound by JSON, or nil.
func FromContext[T any](r *http.Request) *T {
	p, _ := r.Context().Value(bindJSONPayloadKey).(*T)
	return p
}

// ValidationFieldAndMessage picks the first failed field and its translated message.
func ValidationFieldAndMessage(err error) (field, message string) {
	switch e := err.(type) {
	case nil:
		return "", ""
	case *validator.InvalidValidationError:
		return "", e.Error()
	case validator.ValidationErrors:
		if len(e) > 0 {
			return e[0].Field(), e[0].Translate(Get().Translator)
		}
	}
	return "", err.Error()
}

// As re-exports errors.As to cut import noise at call sites.
func As(err error, target any) bool { return errors.As(err, target) }

// registerShortMessage overrides a built-in tag's translation with a terse
// "{field} must be ... {param}" template.
func registerShortMessage(v *validator.Validate, trans ut.Translator, tag, tmpl string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, tmpl, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}
