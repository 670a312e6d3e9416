package interfaces

import (
	"context"
	"ev_warranty/internal/domain/entities"
)

// IRecallEventSource returns recall events applicable to a VIN.

type IRecallEventSource interface {
	CheckByVIN(ctx context.Context, vin string) ([]entities.RecallEvent, error)
}
