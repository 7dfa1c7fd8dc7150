package employee

import (
	"context"

	"gorm.io/gorm"
)

// ListFilter narrows list/count queries. Both conditions are optional and
// combine with AND.
type ListFilter struct {
	Department *string
	IsActive   *bool
}

func (f ListFilter) scope() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Department != nil {
			db = db.Where("department = ?", *f.Department)
		}
		if f.IsActive != nil {
			db = db.Where("is_active = ?", *f.IsActive)
		}
		return db
	}
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, empl *Employee) error
	FindByID(ctx context.Context, id int64) (*Employee, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (*Employee, error)
	FindAll(ctx context.Context, filter ListFilter, skip, limit int) ([]Employee, error)
	Count(ctx context.Context, filter ListFilter) (int64, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]any) (int64, error)
	DeleteByID(ctx context.Context, id int64) (int64, error)
	Search(ctx context.Context, term string) ([]Employee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		First(&empl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		First(&empl, "employee_id = ?", employeeID).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter, skip, limit int) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Scopes(filter.scope()).
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&empls).Error
	return empls, err
}

func (r *repository) Count(ctx context.Context, filter ListFilter) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(filter.scope()).
		Count(&count).Error
	return count, err
}

// UpdateFields applies a partial update built from the closed column set in
// UpdateEmployeeRequest.Fields. GORM refreshes updated_at on its own.
func (r *repository) UpdateFields(ctx context.Context, id int64, fields map[string]any) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("id = ?", id).
		Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *repository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Delete(&Employee{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

// Search matches a case-insensitive substring against names, email and the
// business key. Unpaginated, newest first.
func (r *repository) Search(ctx context.Context, term string) ([]Employee, error) {
	var empls []Employee
	pattern := "%" + term + "%"
	err := r.db.WithContext(ctx).
		Where(
			"first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ? OR employee_id ILIKE ?",
			pattern, pattern, pattern, pattern,
		).
		Order("created_at DESC").
		Find(&empls).Error
	return empls, err
}
