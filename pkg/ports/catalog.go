package ports

import "github.com/resultflow/careflow/pkg/domain"

// Catalog provides read-only product lookup.
// Recommendation returns a stable snapshot for the given category; the
// second return is false when the catalog has no entry for it.
type Catalog interface {
	Recommendation(category domain.Category) (domain.RecommendationBlock, bool)
}
