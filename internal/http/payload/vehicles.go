package payload

import (
	"encoding/json"

	"cartrack/internal/core"

	"github.com/jellydator/validation"
)

type CreateVehicleRequest struct {
	VIN              string  `json:"vin"`
	Lot              string  `json:"lot"`
	Year             int     `json:"year"`
	Make             string  `json:"make"`
	Model            string  `json:"model"`
	Destination      string  `json:"destination"`
	HasTitle         bool    `json:"hasTitle"`
	HasKey           bool    `json:"hasKey"`
	Note             string  `json:"note"`
	AdminNote        string  `json:"adminNote"`
	AssignedToUserID *string `json:"assignedToUserId"`
	ContainerNumber  string  `json:"containerNumber"`
	BookingNumber    string  `json:"bookingNumber"`
	ETD              string  `json:"etd"`
	ETA              string  `json:"eta"`
}

func (r CreateVehicleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.VIN, validation.Required, validation.Length(1, 32)),
		validation.Field(&r.Lot, validation.Required),
		validation.Field(&r.Year, validation.Required, validation.Min(1900), validation.Max(2100)),
		validation.Field(&r.Make, validation.Required),
		validation.Field(&r.Model, validation.Required),
		validation.Field(&r.Destination, validation.Required),
	)
}

func (r CreateVehicleRequest) ToMessage() core.CreateVehicleMessage {
	assigned := r.AssignedToUserID
	if assigned != nil && *assigned == "" {
		assigned = nil
	}

	return core.CreateVehicleMessage{
		VIN:              r.VIN,
		Lot:              r.Lot,
		Year:             r.Year,
		Make:             r.Make,
		Model:            r.Model,
		Destination:      r.Destination,
		HasTitle:         r.HasTitle,
		HasKey:           r.HasKey,
		Note:             r.Note,
		AdminNote:        r.AdminNote,
		AssignedToUserID: assigned,
		ContainerNumber:  r.ContainerNumber,
		BookingNumber:    r.BookingNumber,
		ETD:              r.ETD,
		ETA:              r.ETA,
	}
}

// NullableString distinguishes an absent JSON field from an explicit null.
type NullableString struct {
	Set   bool
	Value *string
}

func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}

// VehiclePatchRequest enumerates the mutable vehicle fields. An explicit
// null (or empty string) for assignedToUserId clears the assignment.
type VehiclePatchRequest struct {
	VIN              *string        `json:"vin"`
	Lot              *string        `json:"lot"`
	Year             *int           `json:"year"`
	Make             *string        `json:"make"`
	Model            *string        `json:"model"`
	Destination      *string        `json:"destination"`
	HasTitle         *bool          `json:"hasTitle"`
	HasKey           *bool          `json:"hasKey"`
	Note             *string        `json:"note"`
	AdminNote        *string        `json:"adminNote"`
	AssignedToUserID NullableString `json:"assignedToUserId"`
	ContainerNumber  *string        `json:"containerNumber"`
	BookingNumber    *string        `json:"bookingNumber"`
	ETD              *string        `json:"etd"`
	ETA              *string        `json:"eta"`
}

func (r VehiclePatchRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.VIN, validation.NilOrNotEmpty, validation.Length(1, 32)),
		validation.Field(&r.Lot, validation.NilOrNotEmpty),
		validation.Field(&r.Year, validation.Min(1900), validation.Max(2100)),
		validation.Field(&r.Make, validation.NilOrNotEmpty),
		validation.Field(&r.Model, validation.NilOrNotEmpty),
		validation.Field(&r.Destination, validation.NilOrNotEmpty),
	)
}

func (r VehiclePatchRequest) ToPatch() core.VehiclePatch {
	patch := core.VehiclePatch{
		VIN:             r.VIN,
		Lot:             r.Lot,
		Year:            r.Year,
		Make:            r.Make,
		Model:           r.Model,
		Destination:     r.Destination,
		HasTitle:        r.HasTitle,
		HasKey:          r.HasKey,
		Note:            r.Note,
		AdminNote:       r.AdminNote,
		ContainerNumber: r.ContainerNumber,
		BookingNumber:   r.BookingNumber,
		ETD:             r.ETD,
		ETA:             r.ETA,
	}

	if r.AssignedToUserID.Set {
		if r.AssignedToUserID.Value == nil || *r.AssignedToUserID.Value == "" {
			patch.ClearAssignment = true
		} else {
			patch.AssignedToUserID = r.AssignedToUserID.Value
		}
	}

	return patch
}

type RemoveInvoiceRequest struct {
	InvoiceURL string `json:"invoiceUrl"`
}

func (r RemoveInvoiceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.InvoiceURL, validation.Required),
	)
}
