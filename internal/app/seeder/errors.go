package seeder

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/catalog-backend/internal/domain"
)

// ConfigurationError lists every problem found in a seed set.
// It is fatal: the service must not start serving with an inconsistent catalog.
type ConfigurationError struct {
	Problems []string
}

func (e *ConfigurationError) Error() string {
	if len(e.Problems) == 1 {
		return "seed configuration: " + e.Problems[0]
	}
	return fmt.Sprintf("seed configuration: %d problems: %s", len(e.Problems), strings.Join(e.Problems, "; "))
}

func (e *ConfigurationError) Unwrap() error { return domain.ErrSeedConfiguration }
