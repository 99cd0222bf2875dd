package seeder

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/catalog-backend/internal/domain"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := sampleDescriptors()

	tests := []struct {
		name    string
		mutate  func(d *Descriptors)
		wantMsg string
	}{
		{"valid set", func(*Descriptors) {}, ""},
		{"empty set", func(d *Descriptors) { *d = Descriptors{} }, ""},
		{"unknown category", func(d *Descriptors) { d.Products[0].CategoryID = uuid.NewString() }, "unknown categoryId"},
		{"duplicate category", func(d *Descriptors) { d.Categories[1].ID = d.Categories[0].ID }, "duplicate id"},
		{"duplicate product", func(d *Descriptors) { d.Products[2].ID = d.Products[0].ID }, "duplicate id"},
		{"negative price", func(d *Descriptors) { d.Products[0].Price = decimal.NewFromInt(-1) }, "price must not be negative"},
		{"price beyond cents", func(d *Descriptors) { d.Products[0].Price = decimal.RequireFromString("9.999") }, "more than 2 decimal places"},
		{"trailing zeros are cents", func(d *Descriptors) { d.Products[0].Price = decimal.RequireFromString("9.990") }, ""},
		{"missing name", func(d *Descriptors) { d.Categories[0].Name = "" }, `categories[0].name: failed "required"`},
		{"bad store id", func(d *Descriptors) { d.Products[1].StoreID = "store-1" }, `products[1].storeId: failed "uuid"`},
		{"bad image url", func(d *Descriptors) {
			u := "not a url"
			d.Products[0].ImageURL = &u
		}, `products[0].imageUrl: failed "url"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := cloneDescriptors(valid)
			tt.mutate(&d)

			err := Validate(d)
			if tt.wantMsg == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, domain.ErrSeedConfiguration)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	t.Parallel()
	d := cloneDescriptors(sampleDescriptors())
	d.Products[0].CategoryID = uuid.NewString()
	d.Products[1].CategoryID = uuid.NewString()

	err := Validate(d)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Len(t, cfgErr.Problems, 2)
	assert.Contains(t, err.Error(), "2 problems")
}

// Any product set whose categories are all declared passes; dropping
// a referenced category always fails.
func TestValidate_ReferenceProperty(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	genSet := gen.IntRange(1, 5).FlatMap(func(v any) gopter.Gen {
		nCats := v.(int)
		return gen.SliceOf(gen.IntRange(0, nCats-1)).Map(func(refs []int) Descriptors {
			return buildSet(nCats, refs)
		})
	}, reflect.TypeOf(Descriptors{}))

	properties.Property("declared categories validate", prop.ForAll(
		func(d Descriptors) bool {
			return Validate(d) == nil
		},
		genSet,
	))

	properties.Property("dropping a referenced category fails", prop.ForAll(
		func(d Descriptors) bool {
			if len(d.Products) == 0 {
				return true
			}
			ref := d.Products[0].CategoryID
			kept := d.Categories[:0:0]
			for _, c := range d.Categories {
				if c.ID != ref {
					kept = append(kept, c)
				}
			}
			d.Categories = kept
			return Validate(d) != nil
		},
		genSet,
	))

	properties.TestingRun(t)
}

func buildSet(nCats int, refs []int) Descriptors {
	var d Descriptors
	for i := range nCats {
		d.Categories = append(d.Categories, CategoryDescriptor{
			ID:   uuid.NewString(),
			Name: fmt.Sprintf("Category %d", i),
		})
	}
	store := uuid.NewString()
	for i, ref := range refs {
		d.Products = append(d.Products, ProductDescriptor{
			ID:         uuid.NewString(),
			Name:       fmt.Sprintf("Product %d", i),
			Price:      decimal.NewFromInt(int64(i)),
			StoreID:    store,
			CategoryID: d.Categories[ref].ID,
		})
	}
	return d
}

func cloneDescriptors(d Descriptors) Descriptors {
	return Descriptors{
		Categories: append([]CategoryDescriptor(nil), d.Categories...),
		Products:   append([]ProductDescriptor(nil), d.Products...),
	}
}

func TestLoadDescriptors_Bundled(t *testing.T) {
	t.Parallel()

	d, err := LoadDescriptors(Config{})
	require.NoError(t, err)

	assert.NotEmpty(t, d.Categories)
	assert.NotEmpty(t, d.Products)
	require.NoError(t, Validate(d), "bundled seed set must be consistent")
}

func TestLoadDescriptors_ExplicitPaths(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	cats := writeFile(t, dir, "categories.json", `[{"id":"`+catTools+`","name":"Tools"}]`)
	prods := writeFile(t, dir, "products.json", `[{"id":"aaaaaaaa-0000-4000-8000-000000000009","name":"P1","price":"9.99","storeId":"`+storeID+`","categoryId":"`+catTools+`"}]`)

	d, err := LoadDescriptors(Config{CategoriesPath: cats, ProductsPath: prods})
	require.NoError(t, err)
	require.Len(t, d.Products, 1)
	assert.Equal(t, "9.99", d.Products[0].Price.StringFixed(2))
	assert.NoError(t, Validate(d))
}

func TestLoadDescriptors_Errors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	broken := writeFile(t, dir, "broken.json", `{`)

	_, err := LoadDescriptors(Config{CategoriesPath: dir + "/missing.json"})
	assert.ErrorContains(t, err, "load categories")

	_, err = LoadDescriptors(Config{ProductsPath: broken})
	assert.ErrorContains(t, err, "decode "+broken)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
