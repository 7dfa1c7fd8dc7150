package employee

import "time"

const hireDateLayout = "2006-01-02"

type CreateEmployeeRequest struct {
	EmployeeID string   `json:"employee_id" binding:"required,min=1,max=50"`
	FirstName  string   `json:"first_name" binding:"required,min=1,max=100"`
	LastName   string   `json:"last_name" binding:"required,min=1,max=100"`
	Email      string   `json:"email" binding:"required,email,max=150"`
	Phone      string   `json:"phone" binding:"omitempty,max=20"`
	Department string   `json:"department" binding:"omitempty,max=100"`
	Position   string   `json:"position" binding:"omitempty,max=100"`
	Salary     *float64 `json:"salary" binding:"omitempty,gte=0"`
	HireDate   string   `json:"hire_date" binding:"omitempty,datetime=2006-01-02"`
	IsActive   *bool    `json:"is_active"`
}

// UpdateEmployeeRequest carries partial-update semantics: a nil field was
// omitted and stays untouched, a set field is applied even when it holds a
// zero value (salary 0, is_active false, empty optional text).
type UpdateEmployeeRequest struct {
	EmployeeID *string  `json:"employee_id" binding:"omitnil,min=1,max=50"`
	FirstName  *string  `json:"first_name" binding:"omitnil,min=1,max=100"`
	LastName   *string  `json:"last_name" binding:"omitnil,min=1,max=100"`
	Email      *string  `json:"email" binding:"omitnil,email,max=150"`
	Phone      *string  `json:"phone" binding:"omitnil,max=20"`
	Department *string  `json:"department" binding:"omitnil,max=100"`
	Position   *string  `json:"position" binding:"omitnil,max=100"`
	Salary     *float64 `json:"salary" binding:"omitnil,gte=0"`
	HireDate   *string  `json:"hire_date" binding:"omitnil,datetime=2006-01-02"`
	IsActive   *bool    `json:"is_active"`
}

// Fields enumerates the set columns as a fixed update map. The closed list
// keeps column names out of caller control while preserving partial updates.
// Empty optional text clears the column to NULL.
func (r UpdateEmployeeRequest) Fields() (map[string]any, error) {
	fields := map[string]any{}

	if r.EmployeeID != nil {
		fields["employee_id"] = *r.EmployeeID
	}
	if r.FirstName != nil {
		fields["first_name"] = *r.FirstName
	}
	if r.LastName != nil {
		fields["last_name"] = *r.LastName
	}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	if r.Phone != nil {
		fields["phone"] = textOrNull(*r.Phone)
	}
	if r.Department != nil {
		fields["department"] = textOrNull(*r.Department)
	}
	if r.Position != nil {
		fields["position"] = textOrNull(*r.Position)
	}
	if r.Salary != nil {
		fields["salary"] = *r.Salary
	}
	if r.HireDate != nil {
		hireDate, err := time.Parse(hireDateLayout, *r.HireDate)
		if err != nil {
			return nil, err
		}
		fields["hire_date"] = hireDate
	}
	if r.IsActive != nil {
		fields["is_active"] = *r.IsActive
	}

	return fields, nil
}

type ListEmployeesQuery struct {
	Skip       int     `form:"skip,default=0" binding:"gte=0"`
	Limit      int     `form:"limit,default=100" binding:"gte=1,lte=1000"`
	Department *string `form:"department"`
	IsActive   *bool   `form:"is_active"`
}

type SearchEmployeesQuery struct {
	Q string `form:"q" binding:"required,min=1"`
}

type EmployeeResponse struct {
	ID         int64     `json:"id"`
	EmployeeID string    `json:"employee_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Phone      *string   `json:"phone"`
	Department *string   `json:"department"`
	Position   *string   `json:"position"`
	Salary     *float64  `json:"salary"`
	HireDate   *string   `json:"hire_date"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type EmployeeListResponse struct {
	Total     int64              `json:"total"`
	Employees []EmployeeResponse `json:"employees"`
}

func textOrNull(s string) any {
	if s == "" {
		return nil
	}
	return s
}
