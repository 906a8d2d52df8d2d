package forms

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors under the form field names the templates use.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("form")
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Per-rule messages, looked up uniformly for every field.
var messages = map[string]string{
	"required": "This field is required.",
	"email":    "Enter a valid email address.",
	"max":      "This value is too long.",
	"eqfield":  "Passwords do not match.",
	"len":      "Ensure it has exactly 4 digits.",
	"number":   "Digits only.",
}

type ContactForm struct {
	Name    string `form:"name" validate:"required,max=200"`
	Email   string `form:"email" validate:"required,email,max=250"`
	Topic   string `form:"topic" validate:"required,max=200"`
	Message string `form:"message" validate:"required,max=1000"`
}

type RegisterForm struct {
	Name        string `form:"name" validate:"required,max=200"`
	Email       string `form:"email" validate:"required,email,max=250"`
	Password    string `form:"password" validate:"required"`
	VerPassword string `form:"ver_password" validate:"required,eqfield=Password"`
	Last4Digits string `form:"last_4_digits" validate:"required,len=4,number"`
	StripeToken string `form:"stripe_token" validate:"required"`
}

type SignInForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

func (f ContactForm) Validate() map[string]string  { return check(f) }
func (f RegisterForm) Validate() map[string]string { return check(f) }
func (f SignInForm) Validate() map[string]string   { return check(f) }

func check(form interface{}) map[string]string {
	errs := map[string]string{}
	err := validate.Struct(form)
	if err == nil {
		return errs
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["form"] = "Invalid submission."
		return errs
	}

	for _, fe := range verrs {
		if _, seen := errs[fe.Field()]; seen {
			continue
		}
		msg, ok := messages[fe.Tag()]
		if !ok {
			msg = "This value is invalid."
		}
		errs[fe.Field()] = msg
	}
	return errs
}
