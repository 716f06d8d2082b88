package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/futbolpath/futbolpath/internal/models"
)

var registerOnce sync.Once

// registerValidators adds the playerid tag to gin's validator engine.
func registerValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			panic("api: gin validator engine is not go-playground/validator")
		}

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
			if name == "" || name == "-" {
				return f.Name
			}

			return name
		})

		if err := v.RegisterValidation("playerid", validPlayerID); err != nil {
			panic(fmt.Sprintf("api: registering playerid validation: %v", err))
		}
	})
}

func validPlayerID(fl validator.FieldLevel) bool {
	_, err := models.ParsePlayerID(fl.Field().String())
	return err == nil
}

// bindingMessage turns a query binding error into a client-facing message.
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid query parameters"
	}

	fe := verrs[0]

	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "playerid":
		return fe.Field() + " must be a non-negative integer player id"
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fe.Field() + " is invalid"
	}
}
