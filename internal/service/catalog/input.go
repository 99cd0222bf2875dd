package catalog

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/catalog-backend/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("field"), ",")
		return name
	})
	return v
}

// CreateProductInput holds the parameters for creating a product.
type CreateProductInput struct {
	Name        string          `field:"name"        validate:"required,max=200"`
	Description string          `field:"description" validate:"max=4000"`
	Price       decimal.Decimal `field:"price"`
	ImageURL    *string         `field:"imageUrl"    validate:"omitempty,url"`
	StoreID     uuid.UUID       `field:"storeId"`
	CategoryID  uuid.UUID       `field:"categoryId"`
}

// Validate checks all fields and collects all errors.
func (i CreateProductInput) Validate() error {
	i.Name = strings.TrimSpace(i.Name)
	errs := structErrors(i)

	if i.Price.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "price", Message: "must not be negative"})
	}
	if !i.Price.Equal(i.Price.Round(2)) {
		errs = append(errs, domain.FieldError{Field: "price", Message: "at most 2 decimal places"})
	}
	if i.StoreID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "storeId", Message: "required"})
	}
	if i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "categoryId", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AddRatingInput holds the parameters for rating a product.
type AddRatingInput struct {
	ProductID uuid.UUID
	Value     int `field:"value" validate:"min=1,max=5"`
}

// Validate checks all fields and collects all errors.
func (i AddRatingInput) Validate() error {
	errs := structErrors(i)
	if i.ProductID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "productId", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func structErrors(s any) []domain.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []domain.FieldError{{Field: "input", Message: err.Error()}}
	}

	out := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, domain.FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "max":
		if fe.Kind() == reflect.String {
			return "max " + fe.Param() + " characters"
		}
		return "must be at most " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "url":
		return "must be a valid URL"
	default:
		return "invalid (" + fe.Tag() + ")"
	}
}
