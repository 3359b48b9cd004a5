package assignment

import "tracking/internal/entities"

func ToDomain(a *AssignmentDB) *entities.Assignment {
	if a == nil {
		return nil
	}

	return &entities.Assignment{
		OrderID:  a.OrderID,
		DriverID: a.DriverID,
		Pickup: entities.Location{
			Latitude:  a.PickupLatitude,
			Longitude: a.PickupLongitude,
		},
		Dropoff: entities.Location{
			Latitude:  a.DropoffLatitude,
			Longitude: a.DropoffLongitude,
		},
		Status:     entities.AssignmentStatusType(a.Status),
		AssignedAt: a.AssignedAt.UTC(),
	}
}

func FromDomain(a *entities.Assignment) *AssignmentDB {
	if a == nil {
		return nil
	}

	return &AssignmentDB{
		OrderID:          a.OrderID,
		DriverID:         a.DriverID,
		PickupLatitude:   a.Pickup.Latitude,
		PickupLongitude:  a.Pickup.Longitude,
		DropoffLatitude:  a.Dropoff.Latitude,
		DropoffLongitude: a.Dropoff.Longitude,
		Status:           a.Status.String(),
		AssignedAt:       a.AssignedAt,
	}
}
