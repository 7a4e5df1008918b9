package models

import "time"

// StaffRequest is a staffing request submitted by a site manager.
// Open is true while the request awaits an administrator's action.
type StaffRequest struct {
	ReqNum        int64     `json:"reqnum"`
	LocationID    int64     `json:"locationId"`
	Quantity      int       `json:"quantity"`
	DateRequested time.Time `json:"dateRequested"`
	DateSubmitted time.Time `json:"dateSubmitted"`
	Open          bool      `json:"status"`
}
