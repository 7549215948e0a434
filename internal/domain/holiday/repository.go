package holiday

import "context"

type Repository interface {
	ListAll(ctx context.Context) ([]Holiday, error)
}
