package AbstractFunctions

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"Anvil/Models"
)

var (
	validate   *validator.Validate
	translator ut.Translator
)

func init() {
	english := en.New()
	uni := ut.New(english, english)
	translator, _ = uni.GetTranslator("en")

	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = en_translations.RegisterDefaultTranslations(validate, translator)
}

// ValidateStruct returns one item per failed field, with messages translated
// for the client to show next to the form inputs.
func ValidateStruct(value interface{}) []Models.ErrorItem {
	err := validate.Struct(value)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []Models.ErrorItem{{Field: "", Message: err.Error()}}
	}

	items := make([]Models.ErrorItem, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		items = append(items, Models.ErrorItem{
			Field:   fieldError.Field(),
			Message: fieldError.Translate(translator),
		})
	}
	return items
}
