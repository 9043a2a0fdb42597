package dto

import (
	"html"
	"reflect"
	"regexp"
	"strings"
	"time"

	"health-record-vault/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	safeStringRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\.:@]+$`)
	txHashRe     = regexp.MustCompile(`^0x[0-9a-fA-F]{1,128}$`)
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("safe_id", validateSafeID)
		_ = v.RegisterValidation("record_category", validateRecordCategory)
		_ = v.RegisterValidation("access_level", validateAccessLevel)
		_ = v.RegisterValidation("tx_hash", validateTxHash)
		_ = v.RegisterValidation("duration", validateDuration)
	}
}

// validateSafeID allows identity strings: alphanumerics plus _ - . : @
func validateSafeID(fl validator.FieldLevel) bool {
	return safeStringRe.MatchString(fl.Field().String())
}

func validateRecordCategory(fl validator.FieldLevel) bool {
	return domain.RecordCategory(fl.Field().String()).IsValid()
}

// validateAccessLevel rejects emergency: emergency grants are only issued
// through the emergency access flow.
func validateAccessLevel(fl validator.FieldLevel) bool {
	level := domain.AccessLevel(fl.Field().String())
	return level.IsValid() && level != domain.AccessLevelEmergency
}

func validateTxHash(fl validator.FieldLevel) bool {
	return txHashRe.MatchString(strings.TrimSpace(fl.Field().String()))
}

// validateDuration accepts positive Go duration strings such as "72h".
func validateDuration(fl validator.FieldLevel) bool {
	d, err := time.ParseDuration(fl.Field().String())
	return err == nil && d > 0
}

// ParseOptionalDuration parses a duration that already passed the duration
// tag. Empty input yields nil.
func ParseOptionalDuration(raw string) *time.Duration {
	if raw == "" {
		return nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return nil
	}
	return &d
}

// SanitizeStruct trims whitespace and HTML-escapes every exported string
// field (including *string and nested structs) of a struct pointer.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(sanitize(f.String()))
		case reflect.Struct:
			sanitizeFields(f)
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				elem.SetString(sanitize(elem.String()))
			}
		}
	}
}

func sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
