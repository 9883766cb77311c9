package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/bilemo/phone-shop-api/internal/models"
)

// FieldError is one constraint violation. All violations on an entity
// are collected and returned together, never just the first.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	return v
}

// Validate runs the declarative constraints on an entity and returns
// every violation found.
func Validate(entity any) []FieldError {
	err := validate.Struct(entity)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Message: "invalid value"}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

// UniqueUserEmail checks the global uniqueness constraint on user
// emails. A non-zero user id excludes the record itself, so updates
// do not collide with their own row.
func UniqueUserEmail(db *gorm.DB, u *models.User) *FieldError {
	var count int64
	q := db.Model(&models.User{}).Where("email = ?", u.Email)
	if u.ID != 0 {
		q = q.Where("id <> ?", u.ID)
	}
	if err := q.Count(&count).Error; err != nil {
		return &FieldError{Field: "email", Message: "email could not be verified"}
	}
	if count > 0 {
		return &FieldError{Field: "email", Message: "this email is already in use"}
	}
	return nil
}

var requiredMessages = map[string]string{
	"model":       "the phone model is required",
	"color":       "the phone color is required",
	"description": "the phone description is required",
	"price":       "the phone price is required",
	"email":       "please enter an email address",
	"first_name":  "please enter a first name",
	"last_name":   "please enter a last name",
	"address":     "please enter an address",
	"postal_code": "please enter a postal code",
	"city":        "please enter a city name",
}

var minMessages = map[string]string{
	"model":       "the phone model must be at least 4 characters",
	"color":       "the phone color must be at least 2 characters",
	"description": "the phone description must be at least 10 characters",
	"first_name":  "the first name must be at least 4 characters",
	"last_name":   "the last name must be at least 4 characters",
	"address":     "the address must be at least 10 characters",
	"postal_code": "the postal code must be at least 4 characters",
	"city":        "the city name must be at least 3 characters",
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if msg, ok := requiredMessages[fe.Field()]; ok {
			return msg
		}
		return "is required"
	case "min":
		if msg, ok := minMessages[fe.Field()]; ok {
			return msg
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "email":
		return "this email address is not valid"
	}
	return "is invalid"
}
