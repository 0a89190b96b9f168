package checkout

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// Indian mobile numbers, optionally prefixed with +91.
	phonePattern   = regexp.MustCompile(`^(\+91)?[6-9]\d{9}$`)
	pincodePattern = regexp.MustCompile(`^\d{6}$`)
)

var occasions = []string{
	"Birthday",
	"Anniversary",
	"Wedding",
	"Festival",
	"Graduation",
	"New Baby",
	"Thank You",
	"Just Because",
	"Other",
}

var budgetRanges = []string{
	"Under ₹500",
	"₹500 - ₹1000",
	"₹1000 - ₹2000",
	"₹2000 - ₹5000",
	"Above ₹5000",
}

func Occasions() []string    { return slices.Clone(occasions) }
func BudgetRanges() []string { return slices.Clone(budgetRanges) }

// ValidationError carries one message per failing form field, keyed by the
// field's JSON name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + ": " + e.Fields[name]
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var fieldMessages = map[string]map[string]string{
	"fullName": {
		"min": "Name must be at least 2 characters",
		"max": "Name must be less than 100 characters",
	},
	"name": {
		"min": "Name must be at least 2 characters",
		"max": "Name must be less than 100 characters",
	},
	"phone": {
		"": "Please enter a valid 10-digit Indian phone number",
	},
	"email": {
		"email": "Please enter a valid email address",
		"max":   "Email must be less than 255 characters",
	},
	"address": {
		"min": "Address must be at least 10 characters",
		"max": "Address must be less than 500 characters",
	},
	"city": {
		"min": "City must be at least 2 characters",
		"max": "City must be less than 100 characters",
	},
	"state": {
		"min": "State must be at least 2 characters",
		"max": "State must be less than 100 characters",
	},
	"pincode": {
		"": "Please enter a valid 6-digit pincode",
	},
	"notes": {
		"max": "Notes must be less than 500 characters",
	},
	"occasion": {
		"": "Please select an occasion",
	},
	"budget": {
		"": "Please select a budget range",
	},
	"message": {
		"max": "Message must be less than 1000 characters",
	},
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "in_phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "pincode", func(fl validator.FieldLevel) bool {
		return pincodePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "occasion", func(fl validator.FieldLevel) bool {
		return slices.Contains(occasions, fl.Field().String())
	})
	mustRegister(v, "budget", func(fl validator.FieldLevel) bool {
		return slices.Contains(budgetRanges, fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// validateForm runs v over form and converts failures into a
// *ValidationError holding the first message of each field.
func validateForm(v *validator.Validate, form any) error {
	err := v.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate form: %w", err)
	}

	out := &ValidationError{Fields: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := out.Fields[field]; seen {
			continue
		}
		out.Fields[field] = messageFor(field, fe.Tag())
	}
	return out
}

func messageFor(field, tag string) string {
	msgs := fieldMessages[field]
	if m, ok := msgs[tag]; ok {
		return m
	}
	if m, ok := msgs[""]; ok {
		return m
	}
	return "Invalid value"
}
