package passwordreset

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=reset_request_repo.go -destination=mock/reset_request_repo_mock.go -package=mock
type RequestRepository interface {
	Create(ctx context.Context, req *ResetRequest) error
	FindAll(ctx context.Context) ([]ResetRequest, error)
}

type requestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, req *ResetRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *requestRepository) FindAll(ctx context.Context) ([]ResetRequest, error) {
	var rows []ResetRequest
	err := r.db.WithContext(ctx).
		Order("requested_at DESC").
		Find(&rows).Error
	return rows, err
}
