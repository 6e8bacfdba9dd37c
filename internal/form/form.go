// Package form validates user input before it is allowed to reach the
// network. Each form mirrors a submission surface of the client; rules
// are declared as validator tags and reported as per-field
// human-readable messages.
package form

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Anisah23/grubgrab/internal/domain"
)

var validate = validator.New()

// labels maps struct field names to the words shown to the user.
var labels = map[string]string{
	"Username":     "Username",
	"Email":        "Email",
	"Password":     "Password",
	"Confirm":      "Password confirmation",
	"Bio":          "Bio",
	"Title":        "Title",
	"Description":  "Description",
	"Ingredients":  "Ingredients",
	"Instructions": "Instructions",
	"CookingTime":  "Cooking time",
	"ImageURL":     "Image URL",
}

// Errors maps field names to validation messages. Empty means valid.
type Errors map[string]string

// First returns the message for the given fields in order, or "".
func (e Errors) First(fields ...string) string {
	for _, f := range fields {
		if msg, ok := e[f]; ok {
			return msg
		}
	}
	return ""
}

func message(fe validator.FieldError) string {
	label := labels[fe.Field()]
	if label == "" {
		label = fe.Field()
	}

	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s minute", label, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be less than %s characters", label, fe.Param())
		}
		return label + " must be reasonable"
	case "email":
		return "Invalid email format"
	case "eqfield":
		return "Passwords must match"
	case "url":
		return "Must be a valid URL"
	default:
		return label + " is invalid"
	}
}

func collect(err error) Errors {
	if err == nil {
		return Errors{}
	}
	out := Errors{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out[""] = err.Error()
		return out
	}
	for _, fe := range verrs {
		// Keep the first message per field.
		if _, seen := out[fe.Field()]; !seen {
			out[fe.Field()] = message(fe)
		}
	}
	return out
}

// ── Login ────────────────────────────────────────────────────────

// Login carries the login form's raw inputs.
type Login struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// Validate reports per-field messages; empty means submit is allowed.
func (f Login) Validate() Errors {
	return collect(validate.Struct(f))
}

// ── Signup ───────────────────────────────────────────────────────

// Signup carries the signup form's raw inputs.
type Signup struct {
	Username string `validate:"required,min=3,max=20"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Confirm  string `validate:"required,eqfield=Password"`
	Bio      string `validate:"omitempty,max=500"`
}

// Validate reports per-field messages; empty means submit is allowed.
func (f Signup) Validate() Errors {
	return collect(validate.Struct(f))
}

// Params converts a valid form into the signup payload. The
// confirmation never leaves the client.
func (f Signup) Params() domain.SignupParams {
	return domain.SignupParams{
		Username: f.Username,
		Email:    f.Email,
		Password: f.Password,
		Bio:      f.Bio,
	}
}

// ── Recipe ───────────────────────────────────────────────────────

// Recipe carries the recipe form's raw inputs. CookingTime arrives as
// typed text and is parsed during validation.
type Recipe struct {
	Title        string
	Description  string
	Ingredients  string
	Instructions string
	CookingTime  string
	ImageURL     string
}

type recipeRules struct {
	Title        string `validate:"required,min=3,max=200"`
	Description  string `validate:"omitempty,max=500"`
	Ingredients  string `validate:"required,min=10"`
	Instructions string `validate:"required,min=10"`
	CookingTime  int    `validate:"required,min=1,max=1000"`
	ImageURL     string `validate:"omitempty,url"`
}

// Validate parses and checks the form. On success the returned params
// are ready to submit and the Errors map is empty.
func (f Recipe) Validate() (domain.RecipeParams, Errors) {
	minutes, perr := strconv.Atoi(strings.TrimSpace(f.CookingTime))

	rules := recipeRules{
		Title:        strings.TrimSpace(f.Title),
		Description:  strings.TrimSpace(f.Description),
		Ingredients:  strings.TrimSpace(f.Ingredients),
		Instructions: strings.TrimSpace(f.Instructions),
		CookingTime:  minutes,
		ImageURL:     strings.TrimSpace(f.ImageURL),
	}
	errs := collect(validate.Struct(rules))

	if perr != nil && strings.TrimSpace(f.CookingTime) != "" {
		errs["CookingTime"] = "Cooking time must be a number"
	}
	if len(errs) > 0 {
		return domain.RecipeParams{}, errs
	}

	return domain.RecipeParams{
		Title:        rules.Title,
		Description:  rules.Description,
		Ingredients:  rules.Ingredients,
		Instructions: rules.Instructions,
		CookingTime:  rules.CookingTime,
		ImageURL:     rules.ImageURL,
	}, errs
}

// ── Profile ──────────────────────────────────────────────────────

// Profile carries the profile edit form's raw inputs. PicturePath is an
// optional local file to upload.
type Profile struct {
	Username    string `validate:"required,min=3"`
	Email       string `validate:"required,email"`
	Bio         string `validate:"omitempty,max=500"`
	PicturePath string `validate:"-"`
}

// Validate reports per-field messages; empty means submit is allowed.
func (f Profile) Validate() Errors {
	return collect(validate.Struct(f))
}

// Params converts a valid form into the profile update payload.
func (f Profile) Params() domain.UserParams {
	return domain.UserParams{
		Username:    f.Username,
		Email:       f.Email,
		Bio:         f.Bio,
		PicturePath: strings.TrimSpace(f.PicturePath),
	}
}
