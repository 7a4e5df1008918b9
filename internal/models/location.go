package models

import "time"

// Location represents a client site staffed by employees. NumEmployees is a
// derived counter and must always equal the number of employees whose
// AssignedTo points at this location.
type Location struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	Email        string    `json:"email"`
	NumEmployees int64     `json:"numEmployees"`
	LastUpdate   time.Time `json:"lastUpdate"`
}
