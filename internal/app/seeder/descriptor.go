package seeder

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/catalog-backend/internal/domain"
)

//go:embed data/*.json
var bundled embed.FS

const (
	bundledCategories = "data/categories.json"
	bundledProducts   = "data/products.json"
)

// CategoryDescriptor is one entry of the categories seed file.
type CategoryDescriptor struct {
	ID   string `json:"id"   validate:"required,uuid"`
	Name string `json:"name" validate:"required,max=200"`
}

// ProductDescriptor is one entry of the products seed file.
type ProductDescriptor struct {
	ID          string          `json:"id"          validate:"required,uuid"`
	Name        string          `json:"name"        validate:"required,max=200"`
	Description string          `json:"description" validate:"max=4000"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    *string         `json:"imageUrl"    validate:"omitempty,url"`
	StoreID     string          `json:"storeId"     validate:"required,uuid"`
	CategoryID  string          `json:"categoryId"  validate:"required,uuid"`
}

// Descriptors is the full seed set. Categories are applied before products.
type Descriptors struct {
	Categories []CategoryDescriptor
	Products   []ProductDescriptor
}

// LoadDescriptors reads the seed set. Empty paths select the files
// bundled into the binary.
func LoadDescriptors(cfg Config) (Descriptors, error) {
	var d Descriptors

	if err := readJSON(cfg.CategoriesPath, bundledCategories, &d.Categories); err != nil {
		return Descriptors{}, fmt.Errorf("load categories: %w", err)
	}
	if err := readJSON(cfg.ProductsPath, bundledProducts, &d.Products); err != nil {
		return Descriptors{}, fmt.Errorf("load products: %w", err)
	}

	return d, nil
}

func readJSON(path, fallback string, dst any) error {
	var (
		data []byte
		err  error
	)
	if path != "" {
		data, err = os.ReadFile(path)
	} else {
		data, err = fs.ReadFile(bundled, fallback)
	}
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode %s: %w", sourceName(path, fallback), err)
	}
	return nil
}

func sourceName(path, fallback string) string {
	if path != "" {
		return path
	}
	return "bundled " + fallback
}

// toDomainCategories converts validated descriptors. Call Validate first.
func toDomainCategories(in []CategoryDescriptor) []domain.Category {
	out := make([]domain.Category, len(in))
	for i, c := range in {
		out[i] = domain.Category{ID: uuid.MustParse(c.ID), Name: c.Name}
	}
	return out
}

// toDomainProducts converts validated descriptors. Call Validate first.
func toDomainProducts(in []ProductDescriptor) []domain.Product {
	out := make([]domain.Product, len(in))
	for i, p := range in {
		out[i] = domain.Product{
			ID:          uuid.MustParse(p.ID),
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			ImageURL:    p.ImageURL,
			StoreID:     uuid.MustParse(p.StoreID),
			CategoryID:  uuid.MustParse(p.CategoryID),
		}
	}
	return out
}
