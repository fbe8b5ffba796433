package server

import (
	"errors"
	"reflect"
	"strings"

	"github.com/Adravilag/sagebox-lab/internal/icons"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("iconname", func(fl validator.FieldLevel) bool {
		return icons.ValidName(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// failedTag returns the tag of the first failed rule, preferring "required"
// so missing fields are reported before malformed ones.
func failedTag(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return ""
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" || fe.Tag() == "min" {
			return "required"
		}
	}
	return verrs[0].Tag()
}

type createIconRequest struct {
	Name    string `json:"name" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type updateIconRequest struct {
	Content string `json:"content" validate:"required"`
}

type renameIconRequest struct {
	OldName string `json:"oldName" validate:"required"`
	NewName string `json:"newName" validate:"required,iconname"`
}

type namesRequest struct {
	Icons []string `json:"icons" validate:"required,min=1,dive,required"`
}

type importCollectionRequest struct {
	Prefix string   `json:"prefix" validate:"required"`
	Search []string `json:"search"`
	Limit  int      `json:"limit" validate:"gte=0"`
}

type configRequest struct {
	IconsPath string `json:"iconsPath" validate:"required"`
}
