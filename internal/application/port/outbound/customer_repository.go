package outbound

import (
	"context"

	"github.com/DioGolang/GoEvents/internal/domain/entity"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	Update(ctx context.Context, customer *entity.Customer) error
	Find(ctx context.Context, id string, opts ...entity.CustomerOption) (*entity.Customer, error)
	FindAll(ctx context.Context) ([]*entity.Customer, error)
}
