package activity

import "context"

type Repository interface {
	GetSnapshot(context context.Context) (MetricSnapshot, error)
	ListRecent(context context.Context, limit int) ([]*Entry, error)
}
