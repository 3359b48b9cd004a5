package assignment

import "time"

type AssignmentDB struct {
	OrderID          string
	DriverID         string
	PickupLatitude   float64
	PickupLongitude  float64
	DropoffLatitude  float64
	DropoffLongitude float64
	Status           string
	AssignedAt       time.Time
}
