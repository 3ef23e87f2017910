package dto

import (
	"html"
	"net/url"
	"reflect"
	"regexp"
	"strings"

	"marketplace-settlement/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	safeStringRe   = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)
	carrierCodeRe  = regexp.MustCompile(`^[A-Za-z0-9]{4,32}$`)
	transferRefRe  = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ._/\-]*$`)
	customBindings = map[string]validator.Func{
		"safe_id":        matches(safeStringRe),
		"carrier_code":   matches(carrierCodeRe),
		"carrier_status": validateCarrierStatus,
		"transfer_ref":   validateTransferRef,
		"safe_url":       validateSafeURL,
	}
)

func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	for tag, fn := range customBindings {
		_ = v.RegisterValidation(tag, fn)
	}
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// validateCarrierStatus rejects status codes the shipping bridge cannot map.
func validateCarrierStatus(fl validator.FieldLevel) bool {
	return domain.KnownCarrierStatus(fl.Field().String())
}

// validateTransferRef checks a bank transfer reference. Binding runs before
// SanitizeStruct, so surrounding whitespace is tolerated here.
func validateTransferRef(fl validator.FieldLevel) bool {
	return transferRefRe.MatchString(strings.TrimSpace(fl.Field().String()))
}

// validateSafeURL accepts http(s) receipt links; empty passes so omitempty works.
func validateSafeURL(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return true
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// SanitizeStruct trims and HTML-escapes the operator-entered text of an
// admin request (string and *string fields) before it reaches audit logs
// and bill notes.
func SanitizeStruct(v any) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return
	}
	rv = rv.Elem()
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.Pointer && !f.IsNil() {
			f = f.Elem()
		}
		if f.Kind() == reflect.String && f.CanSet() {
			f.SetString(html.EscapeString(strings.TrimSpace(f.String())))
		}
	}
}
