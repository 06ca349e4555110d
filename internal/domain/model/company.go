package model

import "time"

// Company owns its employees and service catalog by id reference. Appointment
// references to company/employee/client are weak: deleting an employee does
// not touch existing appointments.
type Company struct {
	ID          string    `bson:"_id" json:"id"`
	UserID      string    `bson:"user_id" json:"userId"`
	Name        string    `bson:"name" json:"name"`
	EmployeeIDs []string  `bson:"employee_ids" json:"employeeIds"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// Employee is the projection used by schedule filters and name joins.
type Employee struct {
	ID   string `bson:"_id" json:"id"`
	Name string `bson:"name" json:"name"`
}
