package flans

import (
	"context"
	"time"
)

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Flan, error)
	Count(ctx context.Context, filter ListFilter) (int64, error)
	GetByID(ctx context.Context, id uint) (*Flan, error)
	Create(ctx context.Context, flan *Flan) error
	CountTypesSince(ctx context.Context, since time.Time) ([]TypeCount, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}
