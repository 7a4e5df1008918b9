package models

import "time"

// Unassigned is the sentinel value of Employee.AssignedTo for employees
// that are not placed at any location.
const Unassigned int64 = 0

// Employee represents a staff member available for placement at a location.
// The email doubles as the identity of the backing account.
type Employee struct {
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	AssignedTo int64     `json:"assignedTo"`
	LastUpdate time.Time `json:"lastUpdate"`
}
