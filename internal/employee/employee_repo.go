package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindByEmpID(ctx context.Context, empID string) (*Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	FindAll(ctx context.Context) ([]Employee, error)
	FindLastEmpID(ctx context.Context) (string, error)
	UpdatePasswordByEmpID(ctx context.Context, empID, password string) error
	UpdatePasswordByEmail(ctx context.Context, email, password string) error
	Delete(ctx context.Context, empID string) error
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

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindByEmpID(ctx context.Context, empID string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Where("emp_id = ?", empID).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).
		Order("emp_id ASC").
		Find(&rows).Error
	return rows, err
}

// FindLastEmpID returns the lexicographically greatest identifier, which
// with the zero-padded E%03d format is also the numerically last one.
func (r *repository) FindLastEmpID(ctx context.Context) (string, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Order("emp_id DESC").
		First(&e).Error
	if err != nil {
		return "", err
	}
	return e.EmpID, nil
}

func (r *repository) UpdatePasswordByEmpID(ctx context.Context, empID, password string) error {
	return r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("emp_id = ?", empID).
		Update("password", password).Error
}

func (r *repository) UpdatePasswordByEmail(ctx context.Context, email, password string) error {
	return r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("email = ?", email).
		Update("password", password).Error
}

func (r *repository) Delete(ctx context.Context, empID string) error {
	return r.db.WithContext(ctx).
		Where("emp_id = ?", empID).
		Delete(&Employee{}).Error
}
