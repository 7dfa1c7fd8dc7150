package employee_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-ems/internal/employee"
	employeeerrors "go-ems/internal/employee/errors"
	employeeMock "go-ems/internal/employee/mock"
	"go-ems/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service employee.Service
	repo    *employeeMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	repo := employeeMock.NewMockRepository(ctrl)
	svc := employee.NewService(repo)

	return &serviceDeps{
		service: svc,
		repo:    repo,
	}
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func storedEmployee(id int64) *employee.Employee {
	now := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)
	return &employee.Employee{
		ID:         id,
		EmployeeID: "E1",
		FirstName:  "Ann",
		LastName:   "Lee",
		Email:      "ann@x.com",
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success - defaults applied", func(t *testing.T) {
		deps := setupServiceTest(t)

		req := employee.CreateEmployeeRequest{
			EmployeeID: "E1",
			FirstName:  "Ann",
			LastName:   "Lee",
			Email:      "ann@x.com",
		}

		deps.repo.EXPECT().
			FindByEmployeeID(ctx, "E1").
			Return(nil, gorm.ErrRecordNotFound)

		now := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, "E1", e.EmployeeID)
				assert.Equal(t, "ann@x.com", e.Email)
				assert.True(t, e.IsActive)
				assert.Nil(t, e.Salary)
				assert.Nil(t, e.Phone)
				e.ID = 7
				e.CreatedAt = now
				e.UpdatedAt = now
				return nil
			})

		deps.repo.EXPECT().
			FindByID(ctx, int64(7)).
			DoAndReturn(func(ctx context.Context, id int64) (*employee.Employee, error) {
				e := storedEmployee(7)
				return e, nil
			})

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, int64(7), resp.ID)
		assert.True(t, resp.IsActive)
		assert.Nil(t, resp.Salary)
		assert.Equal(t, resp.CreatedAt, resp.UpdatedAt)
	})

	t.Run("success - optional fields and hire date", func(t *testing.T) {
		deps := setupServiceTest(t)

		req := employee.CreateEmployeeRequest{
			EmployeeID: "E2",
			FirstName:  "Bob",
			LastName:   "Tan",
			Email:      "bob@x.com",
			Phone:      "0812",
			Department: "Engineering",
			Position:   "Developer",
			Salary:     floatPtr(4200.50),
			HireDate:   "2026-01-01",
			IsActive:   boolPtr(false),
		}

		deps.repo.EXPECT().
			FindByEmployeeID(ctx, "E2").
			Return(nil, gorm.ErrRecordNotFound)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, "0812", *e.Phone)
				assert.Equal(t, "Engineering", *e.Department)
				assert.Equal(t, 4200.50, *e.Salary)
				assert.Equal(t, "2026-01-01", e.HireDate.Format("2006-01-02"))
				assert.False(t, e.IsActive)
				e.ID = 8
				return nil
			})

		stored := storedEmployee(8)
		stored.EmployeeID = "E2"
		stored.Phone = strPtr("0812")
		stored.Salary = floatPtr(4200.50)
		hireDate := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		stored.HireDate = &hireDate
		stored.IsActive = false

		deps.repo.EXPECT().
			FindByID(ctx, int64(8)).
			Return(stored, nil)

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "2026-01-01", *resp.HireDate)
		assert.Equal(t, 4200.50, *resp.Salary)
		assert.False(t, resp.IsActive)
	})

	t.Run("duplicate employee_id rejected before insert", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByEmployeeID(ctx, "E1").
			Return(storedEmployee(7), nil)

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			EmployeeID: "E1",
			FirstName:  "Ann",
			LastName:   "Lee",
			Email:      "other@x.com",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeIDAlreadyExists)
	})

	t.Run("race on unique email surfaces as conflict", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByEmployeeID(ctx, "E3").
			Return(nil, gorm.ErrRecordNotFound)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employees_email"})

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			EmployeeID: "E3",
			FirstName:  "Ann",
			LastName:   "Lee",
			Email:      "ann@x.com",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmailAlreadyExists)
	})

	t.Run("invalid hire date", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByEmployeeID(ctx, "E4").
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			EmployeeID: "E4",
			FirstName:  "Ann",
			LastName:   "Lee",
			Email:      "ann4@x.com",
			HireDate:   "01/02/2026",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidHireDate)
	})

	t.Run("reload miss is an internal error", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByEmployeeID(ctx, "E5").
			Return(nil, gorm.ErrRecordNotFound)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				e.ID = 9
				return nil
			})

		deps.repo.EXPECT().
			FindByID(ctx, int64(9)).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			EmployeeID: "E5",
			FirstName:  "Ann",
			LastName:   "Lee",
			Email:      "ann5@x.com",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrReloadAfterWrite)
	})
}

func TestEmployeeService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("total is independent of pagination", func(t *testing.T) {
		deps := setupServiceTest(t)

		filter := employee.ListFilter{
			Department: strPtr("Engineering"),
			IsActive:   boolPtr(true),
		}

		deps.repo.EXPECT().
			FindAll(ctx, filter, 10, 5).
			Return([]employee.Employee{*storedEmployee(2), *storedEmployee(1)}, nil)

		deps.repo.EXPECT().
			Count(ctx, filter).
			Return(int64(42), nil)

		resp, err := deps.service.List(ctx, employee.ListEmployeesQuery{
			Skip:       10,
			Limit:      5,
			Department: strPtr("Engineering"),
			IsActive:   boolPtr(true),
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(42), resp.Total)
		assert.Len(t, resp.Employees, 2)
		assert.Equal(t, int64(2), resp.Employees[0].ID)
	})

	t.Run("storage fault wrapped", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindAll(ctx, employee.ListFilter{}, 0, 100).
			Return(nil, errors.New("connection refused"))

		_, err := deps.service.List(ctx, employee.ListEmployeesQuery{Skip: 0, Limit: 100})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeStorage, appErr.Code)
	})
}

func TestEmployeeService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("by id not found", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, int64(99)).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, 99)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("by business key", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByEmployeeID(ctx, "E1").
			Return(storedEmployee(7), nil)

		resp, err := deps.service.GetByEmployeeID(ctx, "E1")

		assert.NoError(t, err)
		assert.Equal(t, int64(7), resp.ID)
		assert.Equal(t, "E1", resp.EmployeeID)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("empty patch on existing record rejected", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, int64(7)).
			Return(storedEmployee(7), nil)

		_, err := deps.service.Update(ctx, 7, employee.UpdateEmployeeRequest{})

		assert.ErrorIs(t, err, employeeerrors.ErrNoFieldsToUpdate)
	})

	t.Run("not found regardless of payload", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, int64(99)).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, 99, employee.UpdateEmployeeRequest{
			FirstName: strPtr("New"),
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("missing id wins over empty payload", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, int64(99)).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, 99, employee.UpdateEmployeeRequest{})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("business key collision with another record", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, int64(7)).
			Return(storedEmployee(7), nil)

		other := storedEmployee(8)
		other.EmployeeID = "E2"
		deps.repo.EXPECT().
			FindByEmployeeID(ctx, "E2").
			Return(other, nil)

		_, err := deps.service.Update(ctx, 7, employee.UpdateEmployeeRequest{
			EmployeeID: strPtr("E2"),
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeIDAlreadyExists)
	})

	t.Run("business key unchanged is not a collision", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, int64(7)).
			Return(storedEmployee(7), nil)

		deps.repo.EXPECT().
			FindByEmployeeID(ctx, "E1").
			Return(storedEmployee(7), nil)

		deps.repo.EXPECT().
			UpdateFields(ctx, int64(7), gomock.Any()).
			Return(int64(1), nil)

		deps.repo.EXPECT().
			FindByID(ctx, int64(7)).
			Return(storedEmployee(7), nil)

		_, err := deps.service.Update(ctx, 7, employee.UpdateEmployeeRequest{
			EmployeeID: strPtr("E1"),
		})

		assert.NoError(t, err)
	})

	t.Run("zero values are applied, not filtered", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, int64(7)).
			Return(storedEmployee(7), nil)

		deps.repo.EXPECT().
			UpdateFields(ctx, int64(7), gomock.Any()).
			DoAndReturn(func(ctx context.Context, id int64, fields map[string]any) (int64, error) {
				assert.Equal(t, float64(0), fields["salary"])
				assert.Equal(t, false, fields["is_active"])
				assert.Nil(t, fields["phone"]) // empty text clears to NULL
				assert.NotContains(t, fields, "email")
				return 1, nil
			})

		updated := storedEmployee(7)
		updated.Salary = floatPtr(0)
		updated.IsActive = false
		updated.UpdatedAt = updated.CreatedAt.Add(time.Minute)

		deps.repo.EXPECT().
			FindByID(ctx, int64(7)).
			Return(updated, nil)

		resp, err := deps.service.Update(ctx, 7, employee.UpdateEmployeeRequest{
			Salary:   floatPtr(0),
			IsActive: boolPtr(false),
			Phone:    strPtr(""),
		})

		assert.NoError(t, err)
		assert.Equal(t, float64(0), *resp.Salary)
		assert.False(t, resp.IsActive)
		assert.True(t, resp.UpdatedAt.After(resp.CreatedAt))
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			DeleteByID(ctx, int64(7)).
			Return(int64(1), nil)

		assert.NoError(t, deps.service.Delete(ctx, 7))
	})

	t.Run("second delete reports not found", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			DeleteByID(ctx, int64(7)).
			Return(int64(0), nil)

		assert.ErrorIs(t, deps.service.Delete(ctx, 7), employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_ActiveFlag(t *testing.T) {
	ctx := context.Background()

	t.Run("deactivate then activate round-trips", func(t *testing.T) {
		deps := setupServiceTest(t)

		base := storedEmployee(7)

		deps.repo.EXPECT().FindByID(ctx, int64(7)).Return(base, nil)
		deps.repo.EXPECT().
			UpdateFields(ctx, int64(7), map[string]any{"is_active": false}).
			Return(int64(1), nil)
		deactivated := storedEmployee(7)
		deactivated.IsActive = false
		deactivated.UpdatedAt = base.CreatedAt.Add(time.Minute)
		deps.repo.EXPECT().FindByID(ctx, int64(7)).Return(deactivated, nil)

		resp, err := deps.service.Deactivate(ctx, 7)
		assert.NoError(t, err)
		assert.False(t, resp.IsActive)
		assert.Equal(t, base.CreatedAt, resp.CreatedAt)

		deps.repo.EXPECT().FindByID(ctx, int64(7)).Return(deactivated, nil)
		deps.repo.EXPECT().
			UpdateFields(ctx, int64(7), map[string]any{"is_active": true}).
			Return(int64(1), nil)
		activated := storedEmployee(7)
		activated.UpdatedAt = base.CreatedAt.Add(2 * time.Minute)
		deps.repo.EXPECT().FindByID(ctx, int64(7)).Return(activated, nil)

		resp, err = deps.service.Activate(ctx, 7)
		assert.NoError(t, err)
		assert.True(t, resp.IsActive)
		assert.Equal(t, base.CreatedAt, resp.CreatedAt)
		assert.True(t, resp.UpdatedAt.After(deactivated.UpdatedAt))
	})

	t.Run("deactivate missing id", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, int64(99)).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Deactivate(ctx, 99)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("empty term rejected", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Search(ctx, "   ")

		assert.ErrorIs(t, err, employeeerrors.ErrEmptySearchTerm)
	})

	t.Run("matches returned newest first", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			Search(ctx, "ann").
			Return([]employee.Employee{*storedEmployee(9), *storedEmployee(3)}, nil)

		resp, err := deps.service.Search(ctx, "ann")

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, int64(9), resp[0].ID)
	})
}
