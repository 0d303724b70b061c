package account

// ProfileUpdate lists the fields a driver may edit on their own profile.
// A nil field is left untouched. Email, password and status are not editable.
type ProfileUpdate struct {
	Name          *string
	Phone         *string
	VehicleType   *string
	VehicleNumber *string
}

// IsEmpty reports whether the update changes nothing.
func (u ProfileUpdate) IsEmpty() bool {
	return u.Name == nil && u.Phone == nil && u.VehicleType == nil && u.VehicleNumber == nil
}

// merge returns the field values after applying the update on top of the current ones.
func (u ProfileUpdate) merge(name, phone, vehicleType, vehicleNumber string) (string, string, string, string) {
	if u.Name != nil {
		name = *u.Name
	}
	if u.Phone != nil {
		phone = *u.Phone
	}
	if u.VehicleType != nil {
		vehicleType = *u.VehicleType
	}
	if u.VehicleNumber != nil {
		vehicleNumber = *u.VehicleNumber
	}
	return name, phone, vehicleType, vehicleNumber
}
