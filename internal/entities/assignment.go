package entities

import "time"

type AssignmentStatusType string

const (
	AssignmentAssigned   AssignmentStatusType = "assigned"
	AssignmentPickedUp   AssignmentStatusType = "picked_up"
	AssignmentDelivered  AssignmentStatusType = "delivered"
	AssignmentCancelled  AssignmentStatusType = "cancelled"
	AssignmentUnassigned AssignmentStatusType = "unassigned"
)

func (s AssignmentStatusType) String() string {
	return string(s)
}

// IsActive - заказ еще дает открытые стопы водителю.
func (s AssignmentStatusType) IsActive() bool {
	return s == AssignmentAssigned || s == AssignmentPickedUp
}

// CanTransitionTo - закрытое назначение больше не меняет статус, переназначение идет через assigned.
func (s AssignmentStatusType) CanTransitionTo(next AssignmentStatusType) bool {
	return s.IsActive() && next.IsValid()
}

func (s AssignmentStatusType) IsValid() bool {
	switch s {
	case AssignmentAssigned, AssignmentPickedUp, AssignmentDelivered, AssignmentCancelled, AssignmentUnassigned:
		return true
	default:
		return false
	}
}

type Assignment struct {
	OrderID    string
	DriverID   string
	Pickup     Location
	Dropoff    Location
	Status     AssignmentStatusType
	AssignedAt time.Time
}

// OpenStops раскладывает заказ на стопы водителя.
// После забора груза остается только точка доставки.
func (a Assignment) OpenStops() []Stop {
	switch a.Status {
	case AssignmentAssigned:
		return []Stop{
			{Latitude: a.Pickup.Latitude, Longitude: a.Pickup.Longitude, OrderID: a.OrderID, Kind: StopPickup},
			{Latitude: a.Dropoff.Latitude, Longitude: a.Dropoff.Longitude, OrderID: a.OrderID, Kind: StopDropoff},
		}
	case AssignmentPickedUp:
		return []Stop{
			{Latitude: a.Dropoff.Latitude, Longitude: a.Dropoff.Longitude, OrderID: a.OrderID, Kind: StopDropoff},
		}
	default:
		return nil
	}
}

// AssignmentEvent - изменение назначения из топика order.assignment.changed.
// Pickup и Dropoff обязательны только для статуса assigned.
type AssignmentEvent struct {
	OrderID    string
	DriverID   string
	Status     AssignmentStatusType
	Pickup     *Location
	Dropoff    *Location
	OccurredAt time.Time
}
