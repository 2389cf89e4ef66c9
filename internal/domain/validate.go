package domain

import (
	"errors"

	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
)

var (
	validate   *validator.Validate
	translator ut.Translator
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	translator, _ = uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, translator); err != nil {
		panic(err)
	}
}

// validateField 用 validator 的 tag 校验单个字段，失败时返回翻译后的 ValidationError
func validateField(field string, value any, tag string) error {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		// Var 校验没有字段名，翻译结果形如 "长度必须是3个字符"，前面拼上字段名
		return newValidationError(field, validationErrors[0].Translate(translator))
	}
	return newValidationError(field, "不合法")
}
