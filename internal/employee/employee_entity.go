package employee

import (
	"time"
)

// Employee is the single persisted entity. employee_id is the caller-supplied
// business key; ID is the surrogate primary key and never changes.
type Employee struct {
	ID         int64      `gorm:"primaryKey;autoIncrement"`
	EmployeeID string     `gorm:"type:varchar(50);not null;uniqueIndex:uq_employees_employee_id"`
	FirstName  string     `gorm:"type:varchar(100);not null"`
	LastName   string     `gorm:"type:varchar(100);not null"`
	Email      string     `gorm:"type:varchar(150);not null;uniqueIndex:uq_employees_email"`
	Phone      *string    `gorm:"type:varchar(20)"`
	Department *string    `gorm:"type:varchar(100)"`
	Position   *string    `gorm:"type:varchar(100)"`
	Salary     *float64   `gorm:"type:decimal(10,2)"`
	HireDate   *time.Time `gorm:"type:date"`
	// No gorm default tag: the service sets the flag explicitly so that an
	// explicit false at creation is not dropped as a zero value.
	IsActive  bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (Employee) TableName() string {
	return "employees"
}
