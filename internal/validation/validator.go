package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/shopspring/decimal"

	apperrors "learnhub/internal/errors"
)

// custom validation tags
const (
	notBlankTag    = "notblank"
	couponValueTag = "coupon_value"
	lteFieldTag    = "lte_field"
	indexRangeTag  = "index_range"
)

// Validator implements echo.Validator on top of go-playground/validator.
// Messages are English and name fields by their JSON tag.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// New builds a Validator with translations and custom rules registered.
func New() *Validator {
	v := validator.New()

	_en := en.New()
	uni := ut.New(_en, _en)
	trans, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(v, trans)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})

	// decimals validate like float64 so gt, gte and lte apply to prices
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation(notBlankTag, notBlank)

	val := &Validator{validate: v, translator: trans}
	val.registerMessages(map[string]string{
		notBlankTag:    "{0} cannot be blank",
		couponValueTag: "{0} must be at most 100 for a percentage coupon",
		lteFieldTag:    "{0} must not exceed {1}",
		indexRangeTag:  "{0} must point at one of the options",
	})
	return val
}

// RegisterStructRule attaches a struct level rule to the given request types.
func (v *Validator) RegisterStructRule(fn validator.StructLevelFunc, types ...interface{}) {
	v.validate.RegisterStructValidation(fn, types...)
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return err
	}
	messages := make([]string, 0, len(vErrs))
	for _, fe := range vErrs {
		messages = append(messages, fe.Translate(v.translator))
	}
	return apperrors.NewValidationError(messages...)
}

func (v *Validator) registerMessages(messages map[string]string) {
	for tag, text := range messages {
		tag, text := tag, text
		_ = v.validate.RegisterTranslation(tag, v.translator,
			func(t ut.Translator) error { return t.Add(tag, text, true) },
			func(t ut.Translator, fe validator.FieldError) string {
				msg, err := t.T(tag, fe.Field(), fe.Param())
				if err != nil {
					return fe.Error()
				}
				return msg
			})
	}
}

func notBlank(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}
	return true
}
