package models

// CuProfile is the secondary campus-system profile. BirthDate is stored in
// locale display form after normalization from the raw "YYYY-MM-DD hh:mm:ss"
// wire format.
type CuProfile struct {
	UID          string `json:"uid"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	EnrollmentID string `json:"enrollment_id"`
	BirthDate    string `json:"birth_date"`
}

// CuStatus describes the state of a pending campus-profile creation
// operation.
type CuStatus struct {
	NoUser         bool       `json:"no_user"`
	CreationError  bool       `json:"creation_error"`
	CreatingStatus string     `json:"creating_status"`
	Message        string     `json:"message"`
	Profile        *CuProfile `json:"cu_data,omitempty"`
	NeedLogout     bool       `json:"need_logout"`
}

// IDCardRequest carries the fields of an identity-card submission. UID and
// Password are required only for the initial (create) submission; their
// presence selects create over update.
type IDCardRequest struct {
	EnrollmentID string
	BirthDate    string
	ProfilePhoto string
	UID          string
	Password     string
}

// IsUpdate reports whether the submission updates an existing campus user
// rather than creating one.
func (r IDCardRequest) IsUpdate() bool {
	return r.UID == ""
}

// Resource is a reservable campus resource (a CCR entry).
type Resource struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Reservation is a room-reservation request against the campus system.
type Reservation struct {
	Begin       string `json:"begin"`
	End         string `json:"end"`
	Description string `json:"description"`
	RoomID      int64  `json:"room_id"`
	CcrID       int64  `json:"ccr_id"`
}
