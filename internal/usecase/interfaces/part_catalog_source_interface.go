package interfaces

import (
	"context"
	"ev_warranty/internal/domain/entities"
)

// IPartCatalogSource lists the active parts catalog.

type IPartCatalogSource interface {
	ListActiveParts(ctx context.Context) ([]entities.Part, error)
}
