package employee

import (
	"context"
	"errors"
	"strings"
	"time"

	employeeerrors "go-ems/internal/employee/errors"
	"go-ems/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	List(ctx context.Context, q ListEmployeesQuery) (EmployeeListResponse, error)
	GetByID(ctx context.Context, id int64) (EmployeeResponse, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (EmployeeResponse, error)
	Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id int64) error
	Deactivate(ctx context.Context, id int64) (EmployeeResponse, error)
	Activate(ctx context.Context, id int64) (EmployeeResponse, error)
	Search(ctx context.Context, term string) ([]EmployeeResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("email", req.Email),
	)

	// Existence check gives the common duplicate a clean answer; the unique
	// index still backstops concurrent creates via the error mapper.
	if _, err := s.repo.FindByEmployeeID(ctx, req.EmployeeID); err == nil {
		s.logger.Warn("create employee duplicate employee_id",
			zap.String("employee_id", req.EmployeeID),
		)
		return EmployeeResponse{}, employeeerrors.ErrEmployeeIDAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("create employee existence check failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl := &Employee{
		EmployeeID: req.EmployeeID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      optText(req.Phone),
		Department: optText(req.Department),
		Position:   optText(req.Position),
		Salary:     req.Salary,
		IsActive:   true,
	}
	if req.HireDate != "" {
		hireDate, err := time.Parse(hireDateLayout, req.HireDate)
		if err != nil {
			s.logger.Warn("create employee invalid hire_date",
				zap.String("hire_date", req.HireDate),
				zap.Error(err),
			)
			return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
		}
		empl.HireDate = &hireDate
	}
	if req.IsActive != nil {
		empl.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	created, err := s.reload(ctx, empl.ID)
	if err != nil {
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Int64("id", created.ID),
		zap.String("employee_id", created.EmployeeID),
	)
	return mapToResponse(*created), nil
}

func (s *service) List(ctx context.Context, q ListEmployeesQuery) (EmployeeListResponse, error) {
	s.logger.Debug("list employees requested",
		zap.Int("skip", q.Skip),
		zap.Int("limit", q.Limit),
	)

	filter := ListFilter{Department: q.Department, IsActive: q.IsActive}

	empls, err := s.repo.FindAll(ctx, filter, q.Skip, q.Limit)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return EmployeeListResponse{}, mapRepositoryError(err)
	}

	// Total is the filtered count, independent of the requested page.
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		s.logger.Error("count employees failed", zap.Error(err))
		return EmployeeListResponse{}, mapRepositoryError(err)
	}

	return EmployeeListResponse{
		Total:     total,
		Employees: mapToListResponse(empls),
	}, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.Int64("id", id))

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) GetByEmployeeID(ctx context.Context, employeeID string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by business key requested",
		zap.String("employee_id", employeeID),
	)

	empl, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.Int64("id", id),
	)

	// Existence is checked before the payload: a missing id is not found
	// no matter what the caller sent.
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	fields, err := req.Fields()
	if err != nil {
		s.logger.Warn("update employee invalid hire_date", zap.Error(err))
		return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
	}
	if len(fields) == 0 {
		return EmployeeResponse{}, employeeerrors.ErrNoFieldsToUpdate
	}

	// A changed business key must not collide with another record.
	if req.EmployeeID != nil {
		other, err := s.repo.FindByEmployeeID(ctx, *req.EmployeeID)
		switch {
		case err == nil && other.ID != id:
			s.logger.Warn("update employee duplicate employee_id",
				zap.Int64("id", id),
				zap.String("employee_id", *req.EmployeeID),
			)
			return EmployeeResponse{}, employeeerrors.ErrEmployeeIDAlreadyExists
		case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
			s.logger.Error("update employee business key check failed", zap.Error(err))
			return EmployeeResponse{}, mapRepositoryError(err)
		}
	}

	affected, err := s.repo.UpdateFields(ctx, id, fields)
	if err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if affected == 0 {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	updated, err := s.reload(ctx, id)
	if err != nil {
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success",
		zap.String("request_id", rid),
		zap.Int64("id", id),
	)
	return mapToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	s.logger.Debug("delete employee requested", zap.Int64("id", id))

	affected, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if affected == 0 {
		return employeeerrors.ErrEmployeeNotFound
	}

	s.logger.Info("delete employee success", zap.Int64("id", id))
	return nil
}

func (s *service) Deactivate(ctx context.Context, id int64) (EmployeeResponse, error) {
	return s.setActive(ctx, id, false)
}

func (s *service) Activate(ctx context.Context, id int64) (EmployeeResponse, error) {
	return s.setActive(ctx, id, true)
}

// setActive is the soft-delete/restore primitive: a fixed single-field update.
func (s *service) setActive(ctx context.Context, id int64, active bool) (EmployeeResponse, error) {
	s.logger.Debug("set employee active flag requested",
		zap.Int64("id", id),
		zap.Bool("is_active", active),
	)

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	affected, err := s.repo.UpdateFields(ctx, id, map[string]any{"is_active": active})
	if err != nil {
		s.logger.Error("set employee active flag failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if affected == 0 {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	updated, err := s.reload(ctx, id)
	if err != nil {
		return EmployeeResponse{}, err
	}

	s.logger.Info("set employee active flag success",
		zap.Int64("id", id),
		zap.Bool("is_active", active),
	)
	return mapToResponse(*updated), nil
}

func (s *service) Search(ctx context.Context, term string) ([]EmployeeResponse, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, employeeerrors.ErrEmptySearchTerm
	}

	s.logger.Debug("search employees requested", zap.String("term", term))

	empls, err := s.repo.Search(ctx, term)
	if err != nil {
		s.logger.Error("search employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

// reload fetches a row back after a write so responses carry the
// storage-assigned fields. A miss here violates a post-condition and is an
// internal error, not a 404.
func (s *service) reload(ctx context.Context, id int64) (*Employee, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("employee missing after write", zap.Int64("id", id))
			return nil, employeeerrors.ErrReloadAfterWrite
		}
		s.logger.Error("employee reload failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return empl, nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:         empl.ID,
		EmployeeID: empl.EmployeeID,
		FirstName:  empl.FirstName,
		LastName:   empl.LastName,
		Email:      empl.Email,
		Phone:      empl.Phone,
		Department: empl.Department,
		Position:   empl.Position,
		Salary:     empl.Salary,
		IsActive:   empl.IsActive,
		CreatedAt:  empl.CreatedAt,
		UpdatedAt:  empl.UpdatedAt,
	}
	if empl.HireDate != nil {
		hireDate := empl.HireDate.Format(hireDateLayout)
		resp.HireDate = &hireDate
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}

func optText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
