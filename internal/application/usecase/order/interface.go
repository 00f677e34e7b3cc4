package order

import "context"

type PlaceUseCase interface {
	Execute(ctx context.Context, input PlaceInput) (PlaceOutput, error)
}
