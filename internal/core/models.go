package core

import (
	"encoding/json"
	"io"

	"cartrack/internal/repository"
	"cartrack/internal/session"
)

// UserRecord is the outbound representation of a user. The credential hash
// has no field here, so it cannot leak through any endpoint.
type UserRecord struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Role           string `json:"role"`
	Name           string `json:"name"`
	Email          string `json:"email,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

type CreateUserMessage struct {
	Username string
	Password string
	Role     string
	Name     string
	Email    string
}

// UserPatch enumerates the mutable user fields. Nil means "leave unchanged".
// An empty Password also leaves the stored hash unchanged.
type UserPatch struct {
	Username *string
	Password *string
	Role     *string
	Name     *string
	Email    *string
}

type InvoiceRecord struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

type VehicleRecord struct {
	ID               string          `json:"id"`
	VIN              string          `json:"vin"`
	Lot              string          `json:"lot"`
	Year             int             `json:"year"`
	Make             string          `json:"make"`
	Model            string          `json:"model"`
	Destination      string          `json:"destination"`
	HasTitle         bool            `json:"hasTitle"`
	HasKey           bool            `json:"hasKey"`
	Note             string          `json:"note"`
	AdminNote        string          `json:"adminNote"`
	AssignedToUserID *string         `json:"assignedToUserId"`
	ContainerNumber  string          `json:"containerNumber,omitempty"`
	BookingNumber    string          `json:"bookingNumber,omitempty"`
	ETD              string          `json:"etd,omitempty"`
	ETA              string          `json:"eta,omitempty"`
	LoadingPhotos    []string        `json:"loadingPhotos"`
	UnloadingPhotos  []string        `json:"unloadingPhotos"`
	WarehousePhotos  []string        `json:"warehousePhotos"`
	Invoices         []InvoiceRecord `json:"invoices"`
}

type CreateVehicleMessage struct {
	VIN              string
	Lot              string
	Year             int
	Make             string
	Model            string
	Destination      string
	HasTitle         bool
	HasKey           bool
	Note             string
	AdminNote        string
	AssignedToUserID *string
	ContainerNumber  string
	BookingNumber    string
	ETD              string
	ETA              string
}

// VehiclePatch enumerates the mutable vehicle fields. Nil means "leave
// unchanged". VIN changes are applied without a fresh uniqueness check; the
// check runs on create only.
type VehiclePatch struct {
	VIN              *string
	Lot              *string
	Year             *int
	Make             *string
	Model            *string
	Destination      *string
	HasTitle         *bool
	HasKey           *bool
	Note             *string
	AdminNote        *string
	AssignedToUserID *string
	ClearAssignment  bool
	ContainerNumber  *string
	BookingNumber    *string
	ETD              *string
	ETA              *string
}

// Upload is one inbound file: metadata plus the byte stream.
type Upload struct {
	Filename    string
	Size        int64
	ContentType string
	Content     io.Reader
}

type ConfigEntry struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

func userToRecord(u repository.User) UserRecord {
	return UserRecord{
		ID:             u.ID,
		Username:       u.Username,
		Role:           u.Role,
		Name:           u.Name,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
	}
}

func userToIdentity(u repository.User) session.Identity {
	return session.Identity{
		ID:             u.ID,
		Username:       u.Username,
		Role:           u.Role,
		Name:           u.Name,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
	}
}

func vehicleToRecord(v repository.Vehicle) VehicleRecord {
	invoices := make([]InvoiceRecord, len(v.Invoices))
	for i, inv := range v.Invoices {
		invoices[i] = InvoiceRecord{URL: inv.URL, Type: inv.Type}
	}

	return VehicleRecord{
		ID:               v.ID,
		VIN:              v.VIN,
		Lot:              v.Lot,
		Year:             v.Year,
		Make:             v.Make,
		Model:            v.Model,
		Destination:      v.Destination,
		HasTitle:         v.HasTitle,
		HasKey:           v.HasKey,
		Note:             v.Note,
		AdminNote:        v.AdminNote,
		AssignedToUserID: v.AssignedToUserID,
		ContainerNumber:  v.ContainerNumber,
		BookingNumber:    v.BookingNumber,
		ETD:              v.ETD,
		ETA:              v.ETA,
		LoadingPhotos:    append([]string{}, v.LoadingPhotos...),
		UnloadingPhotos:  append([]string{}, v.UnloadingPhotos...),
		WarehousePhotos:  append([]string{}, v.WarehousePhotos...),
		Invoices:         invoices,
	}
}
