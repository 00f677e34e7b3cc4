package customer

import (
	"context"
)

type CreateUseCase interface {
	Execute(ctx context.Context, input CreateInput) (CreateOutput, error)
}

type ChangeAddressUseCase interface {
	Execute(ctx context.Context, input ChangeAddressInput) (ChangeAddressOutput, error)
}
