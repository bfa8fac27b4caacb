package fixture

import "context"

// Repository describes the fixture endpoints use cases depend on.
type Repository interface {
	List(ctx context.Context) ([]Fixture, error)
}
