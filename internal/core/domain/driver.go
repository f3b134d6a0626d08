package domain

// DriverRef is either a real driver account or the explicit unassigned
// state. Orders waiting for assignment carry the zero value; persisted
// records never do.
type DriverRef struct {
	ID       string
	Assigned bool
}

// UnassignedKey is the map key used for the unassigned cell when building
// pickup aggregates. Unassigned cells are never persisted.
const UnassignedKey = "unassigned"

func AssignedDriver(id string) DriverRef {
	if id == "" {
		return DriverRef{}
	}
	return DriverRef{ID: id, Assigned: true}
}

func (d DriverRef) Key() string {
	if !d.Assigned {
		return UnassignedKey
	}
	return d.ID
}

// Assignment links one order to a driver (or to the unassigned state) for
// a delivery date.
type Assignment struct {
	OrderID string
	Driver  DriverRef
}
