package seeder

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks every descriptor and the references between them.
// All problems are collected into a single *ConfigurationError.
func Validate(d Descriptors) error {
	var problems []string

	categoryIDs := make(map[string]struct{}, len(d.Categories))
	for i, c := range d.Categories {
		problems = append(problems, structProblems(fmt.Sprintf("categories[%d]", i), c)...)

		key := strings.ToLower(c.ID)
		if _, dup := categoryIDs[key]; dup {
			problems = append(problems, fmt.Sprintf("categories[%d]: duplicate id %s", i, c.ID))
		}
		categoryIDs[key] = struct{}{}
	}

	productIDs := make(map[string]struct{}, len(d.Products))
	for i, p := range d.Products {
		prefix := fmt.Sprintf("products[%d]", i)
		problems = append(problems, structProblems(prefix, p)...)

		if p.Price.IsNegative() {
			problems = append(problems, fmt.Sprintf("%s: price must not be negative", prefix))
		}
		if !p.Price.Equal(p.Price.Round(2)) {
			problems = append(problems, fmt.Sprintf("%s: price %s has more than 2 decimal places", prefix, p.Price))
		}

		key := strings.ToLower(p.ID)
		if _, dup := productIDs[key]; dup {
			problems = append(problems, fmt.Sprintf("%s: duplicate id %s", prefix, p.ID))
		}
		productIDs[key] = struct{}{}

		if p.CategoryID != "" {
			if _, ok := categoryIDs[strings.ToLower(p.CategoryID)]; !ok {
				problems = append(problems, fmt.Sprintf("%s: unknown categoryId %s", prefix, p.CategoryID))
			}
		}
	}

	if len(problems) > 0 {
		return &ConfigurationError{Problems: problems}
	}
	return nil
}

func structProblems(prefix string, s any) []string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{fmt.Sprintf("%s: %v", prefix, err)}
	}

	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fmt.Sprintf("%s.%s: failed %q", prefix, fe.Field(), fe.Tag()))
	}
	return out
}
