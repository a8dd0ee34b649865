package attendance

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, log *AttendanceLog) error
	FindByEmpDateAction(ctx context.Context, empID, date, action string) (*AttendanceLog, error)
	FindSince(ctx context.Context, empID string, since time.Time) ([]AttendanceLog, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, log *AttendanceLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *repository) FindByEmpDateAction(ctx context.Context, empID, date, action string) (*AttendanceLog, error) {
	var l AttendanceLog
	err := r.db.WithContext(ctx).
		Where("emp_id = ?", empID).
		Where("date = ?", date).
		Where("action = ?", action).
		First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) FindSince(ctx context.Context, empID string, since time.Time) ([]AttendanceLog, error) {
	var rows []AttendanceLog
	err := r.db.WithContext(ctx).
		Where("emp_id = ?", empID).
		Where("timestamp >= ?", since).
		Order("timestamp DESC").
		Find(&rows).Error
	return rows, err
}
