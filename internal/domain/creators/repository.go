package creators

import "context"

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]FlanCreator, error)
	GetByID(ctx context.Context, id uint) (*FlanCreator, error)
	GetByName(ctx context.Context, name string) (*FlanCreator, error)
	Create(ctx context.Context, creator *FlanCreator) error
}
