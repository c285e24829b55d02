package disease

import (
	"context"

	types "github.com/turtacn/WheatGuard-Intelligence/pkg/types/diagnosis"
)

// Repository is the persistence contract for the disease knowledge graph.
type Repository interface {
	// Rebuild wipes the graph and writes the supplied diseases with their
	// attribute nodes and typed edges.  The whole rebuild runs in a single
	// write transaction: concurrent readers observe either the old graph or
	// the new one, never a partial state.
	Rebuild(ctx context.Context, diseases []*Disease) error

	// Match returns up to limit candidate diseases whose attribute edges
	// satisfy every present dimension of the fingerprint.  Absent dimensions
	// are unconstrained.  An empty fingerprint matches any disease.
	Match(ctx context.Context, fp types.Fingerprint, limit int) ([]types.DiseaseCandidate, error)

	// FindByName looks up one disease by canonical name.  A missing disease
	// is reported as (nil, nil), not as an error.
	FindByName(ctx context.Context, name string) (*types.DiseaseCandidate, error)

	// Stats reports node counts per label and the total relationship count.
	Stats(ctx context.Context) (*types.GraphStats, error)
}

// DefaultMatchLimit bounds the number of candidates a single match returns.
const DefaultMatchLimit = 3

//Personal.AI order the ending
