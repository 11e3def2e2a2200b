package http

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	cn "github.com/foodops/stockbook/pkg/constant"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entrans "github.com/go-playground/validator/v10/translations/en"
	"github.com/gofiber/fiber/v2"
	"github.com/iancoleman/strcase"
)

// DecodeHandlerFunc is a handler which works with withBody decorator.
// It receives a struct which was decoded by withBody decorator before.
// Ex: json -> withBody -> DecodeHandlerFunc.
type DecodeHandlerFunc func(p any, c *fiber.Ctx) error

// decoderHandler decodes payload coming from requests.
type decoderHandler struct {
	handler      DecodeHandlerFunc
	structSource any
}

func newOfType(s any) any {
	t := reflect.TypeOf(s)
	v := reflect.New(t.Elem())

	return v.Interface()
}

// FiberHandlerFunc decodes the incoming request's body to a Go struct, validates
// it, checks for any extraneous fields not defined in the struct, and finally
// calls the wrapped handler function.
func (d *decoderHandler) FiberHandlerFunc(c *fiber.Ctx) error {
	s := newOfType(d.structSource)

	bodyBytes := c.Body()

	if err := json.Unmarshal(bodyBytes, s); err != nil {
		return BadRequest(c, ValidationKnownFieldsError{
			Code:    cn.ErrBadRequest.Error(),
			Title:   "Malformed Request Body",
			Message: "The request body could not be parsed as JSON.",
		})
	}

	marshaled, err := json.Marshal(s)
	if err != nil {
		return WithError(c, err)
	}

	var originalMap, marshaledMap map[string]any

	if err := json.Unmarshal(bodyBytes, &originalMap); err != nil {
		return BadRequest(c, ValidationKnownFieldsError{
			Code:    cn.ErrBadRequest.Error(),
			Title:   "Malformed Request Body",
			Message: "The request body must be a JSON object.",
		})
	}

	if err := json.Unmarshal(marshaled, &marshaledMap); err != nil {
		return WithError(c, err)
	}

	diffFields := make(UnknownFields)

	for key, value := range originalMap {
		if _, ok := marshaledMap[key]; !ok {
			diffFields[key] = value
		}
	}

	if len(diffFields) > 0 {
		return BadRequest(c, ValidationUnknownFieldsError{
			Code:    cn.ErrUnknownFields.Error(),
			Title:   "Unexpected Fields in the Request",
			Message: "The request body contains more fields than expected. Please send only the allowed fields.",
			Fields:  diffFields,
		})
	}

	if err := ValidateStruct(s); err != nil {
		return BadRequest(c, err)
	}

	return d.handler(s, c)
}

// WithBody wraps a DecodeHandlerFunc with a JSON decode and validation step for
// the given payload prototype.
func WithBody(s any, h DecodeHandlerFunc) fiber.Handler {
	d := &decoderHandler{
		handler:      h,
		structSource: s,
	}

	return d.FiberHandlerFunc
}

func newValidator() (*validator.Validate, ut.Translator) {
	locale := en.New()
	uni := ut.New(locale, locale)

	trans, _ := uni.GetTranslator("en")

	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return strcase.ToSnake(fld.Name)
		}

		return name
	})

	_ = entrans.RegisterDefaultTranslations(v, trans)

	return v, trans
}

// ValidateStruct validates a struct against its validate tags and returns a
// ValidationKnownFieldsError listing every failed field.
func ValidateStruct(s any) error {
	v, trans := newValidator()

	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var invalidErr validator.ValidationErrors
	if !errors.As(err, &invalidErr) {
		return err
	}

	fields := make(FieldValidations, len(invalidErr))
	for _, fe := range invalidErr {
		fields[fe.Field()] = fe.Translate(trans)
	}

	return ValidationKnownFieldsError{
		Code:    cn.ErrBadRequest.Error(),
		Title:   "Bad Request",
		Message: "The provided body had one or more invalid fields.",
		Fields:  fields,
	}
}
