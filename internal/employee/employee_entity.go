package employee

import "time"

const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

type Employee struct {
	EmpID     string    `gorm:"column:emp_id;primaryKey;size:16"`
	Name      string    `gorm:"column:name;size:120;not null"`
	Email     string    `gorm:"column:email;size:255;not null;uniqueIndex:uq_employee_email"`
	Password  string    `gorm:"column:password;size:255;not null"`
	Role      string    `gorm:"column:role;size:20;not null;default:employee"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (Employee) TableName() string {
	return "employees"
}
