package core

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"cartrack/internal/notify"
	"cartrack/internal/repository"

	"github.com/google/uuid"
)

const maxAttachmentBytes = 10 << 20

const DefaultDocumentType = "invoice"

var attachmentContentTypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/png":       {},
	"image/gif":       {},
	"image/webp":      {},
	"application/pdf": {},
}

// PhotoCategories are the valid values for AttachPhotos.
var PhotoCategories = []string{"loading", "unloading", "warehouse"}

// CreateVehicle persists a new vehicle after checking no other vehicle
// carries the same VIN. Field values against the reference config are
// trusted from the caller.
func (t *Tracker) CreateVehicle(ctx context.Context, msg CreateVehicleMessage) (VehicleRecord, error) {
	_, err := t.repo.GetVehicleByVIN(ctx, msg.VIN)
	if err == nil {
		return VehicleRecord{}, ErrDuplicateVIN
	}
	if !errors.Is(err, repository.ErrVehicleNotFound) {
		return VehicleRecord{}, fmt.Errorf("check vin: %w", err)
	}

	vehicle := repository.Vehicle{
		ID:               uuid.NewString(),
		VIN:              msg.VIN,
		Lot:              msg.Lot,
		Year:             msg.Year,
		Make:             msg.Make,
		Model:            msg.Model,
		Destination:      msg.Destination,
		HasTitle:         msg.HasTitle,
		HasKey:           msg.HasKey,
		Note:             msg.Note,
		AdminNote:        msg.AdminNote,
		AssignedToUserID: msg.AssignedToUserID,
		ContainerNumber:  msg.ContainerNumber,
		BookingNumber:    msg.BookingNumber,
		ETD:              msg.ETD,
		ETA:              msg.ETA,
		LoadingPhotos:    repository.PhotoList{},
		UnloadingPhotos:  repository.PhotoList{},
		WarehousePhotos:  repository.PhotoList{},
		Invoices:         repository.InvoiceList{},
	}

	if err := t.repo.CreateVehicle(ctx, vehicle); err != nil {
		return VehicleRecord{}, fmt.Errorf("create vehicle: %w", err)
	}

	t.logs.Infow("vehicle created", "vehicleId", vehicle.ID, "vin", vehicle.VIN, "lot", vehicle.Lot)

	return vehicleToRecord(vehicle), nil
}

// UpdateVehicle shallow-merges the patch into the stored record. The VIN is
// not re-checked for uniqueness on update.
func (t *Tracker) UpdateVehicle(ctx context.Context, id string, patch VehiclePatch) (VehicleRecord, error) {
	unlock := t.lockVehicle(id)
	defer unlock()

	vehicle, err := t.repo.GetVehicle(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return VehicleRecord{}, ErrVehicleNotFound
		}
		return VehicleRecord{}, fmt.Errorf("get vehicle: %w", err)
	}

	applyVehiclePatch(&vehicle, patch)

	if err := t.repo.UpdateVehicle(ctx, vehicle); err != nil {
		return VehicleRecord{}, fmt.Errorf("update vehicle: %w", err)
	}

	return vehicleToRecord(vehicle), nil
}

func applyVehiclePatch(v *repository.Vehicle, patch VehiclePatch) {
	if patch.VIN != nil {
		v.VIN = *patch.VIN
	}
	if patch.Lot != nil {
		v.Lot = *patch.Lot
	}
	if patch.Year != nil {
		v.Year = *patch.Year
	}
	if patch.Make != nil {
		v.Make = *patch.Make
	}
	if patch.Model != nil {
		v.Model = *patch.Model
	}
	if patch.Destination != nil {
		v.Destination = *patch.Destination
	}
	if patch.HasTitle != nil {
		v.HasTitle = *patch.HasTitle
	}
	if patch.HasKey != nil {
		v.HasKey = *patch.HasKey
	}
	if patch.Note != nil {
		v.Note = *patch.Note
	}
	if patch.AdminNote != nil {
		v.AdminNote = *patch.AdminNote
	}
	if patch.ClearAssignment {
		v.AssignedToUserID = nil
	} else if patch.AssignedToUserID != nil {
		v.AssignedToUserID = patch.AssignedToUserID
	}
	if patch.ContainerNumber != nil {
		v.ContainerNumber = *patch.ContainerNumber
	}
	if patch.BookingNumber != nil {
		v.BookingNumber = *patch.BookingNumber
	}
	if patch.ETD != nil {
		v.ETD = *patch.ETD
	}
	if patch.ETA != nil {
		v.ETA = *patch.ETA
	}
}

// AttachPhotos stores each file and appends its reference to the category's
// list, preserving upload order. The per-vehicle lock keeps concurrent
// appends from dropping each other's entries. The vehicle is looked up
// before any blob is written so an unknown id leaves no orphaned files.
func (t *Tracker) AttachPhotos(ctx context.Context, id, category string, files []Upload) (VehicleRecord, error) {
	if !validCategory(category) {
		return VehicleRecord{}, ErrInvalidCategory
	}

	unlock := t.lockVehicle(id)
	defer unlock()

	vehicle, err := t.repo.GetVehicle(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return VehicleRecord{}, ErrVehicleNotFound
		}
		return VehicleRecord{}, fmt.Errorf("get vehicle: %w", err)
	}

	refs, err := t.storeAttachments(ctx, files)
	if err != nil {
		return VehicleRecord{}, err
	}

	switch category {
	case "loading":
		vehicle.LoadingPhotos = append(vehicle.LoadingPhotos, refs...)
	case "unloading":
		vehicle.UnloadingPhotos = append(vehicle.UnloadingPhotos, refs...)
	case "warehouse":
		vehicle.WarehousePhotos = append(vehicle.WarehousePhotos, refs...)
	}

	if err := t.repo.UpdateVehicle(ctx, vehicle); err != nil {
		return VehicleRecord{}, fmt.Errorf("update vehicle: %w", err)
	}

	t.logs.Infow("photos attached", "vehicleId", id, "category", category, "count", len(refs))

	return vehicleToRecord(vehicle), nil
}

// AttachInvoices stores each file and appends a tagged entry to the invoice
// list. An empty documentType defaults to "invoice".
func (t *Tracker) AttachInvoices(ctx context.Context, id, documentType string, files []Upload) (VehicleRecord, error) {
	if documentType == "" {
		documentType = DefaultDocumentType
	}

	unlock := t.lockVehicle(id)
	defer unlock()

	vehicle, err := t.repo.GetVehicle(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return VehicleRecord{}, ErrVehicleNotFound
		}
		return VehicleRecord{}, fmt.Errorf("get vehicle: %w", err)
	}

	refs, err := t.storeAttachments(ctx, files)
	if err != nil {
		return VehicleRecord{}, err
	}

	for _, ref := range refs {
		vehicle.Invoices = append(vehicle.Invoices, repository.InvoiceDocument{
			URL:  ref,
			Type: documentType,
		})
	}

	if err := t.repo.UpdateVehicle(ctx, vehicle); err != nil {
		return VehicleRecord{}, fmt.Errorf("update vehicle: %w", err)
	}

	t.logs.Infow("invoices attached", "vehicleId", id, "documentType", documentType, "count", len(refs))

	return vehicleToRecord(vehicle), nil
}

// RemoveInvoice drops every invoice entry whose reference matches. A
// reference with no match leaves the list unchanged and is not an error.
func (t *Tracker) RemoveInvoice(ctx context.Context, id, ref string) (VehicleRecord, error) {
	unlock := t.lockVehicle(id)
	defer unlock()

	vehicle, err := t.repo.GetVehicle(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return VehicleRecord{}, ErrVehicleNotFound
		}
		return VehicleRecord{}, fmt.Errorf("get vehicle: %w", err)
	}

	kept := vehicle.Invoices[:0]
	for _, inv := range vehicle.Invoices {
		if inv.URL != ref {
			kept = append(kept, inv)
		}
	}
	vehicle.Invoices = kept

	if err := t.repo.UpdateVehicle(ctx, vehicle); err != nil {
		return VehicleRecord{}, fmt.Errorf("update vehicle: %w", err)
	}

	return vehicleToRecord(vehicle), nil
}

// DeleteVehicle removes the row. Attached blobs stay behind; reclaiming
// them is out of scope for the delete path.
func (t *Tracker) DeleteVehicle(ctx context.Context, id string) error {
	err := t.repo.DeleteVehicle(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return ErrVehicleNotFound
		}
		return fmt.Errorf("delete vehicle: %w", err)
	}

	t.logs.Infow("vehicle deleted", "vehicleId", id)
	return nil
}

func (t *Tracker) GetVehicle(ctx context.Context, id string) (VehicleRecord, error) {
	vehicle, err := t.repo.GetVehicle(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return VehicleRecord{}, ErrVehicleNotFound
		}
		return VehicleRecord{}, fmt.Errorf("get vehicle: %w", err)
	}
	return vehicleToRecord(vehicle), nil
}

func (t *Tracker) ListVehicles(ctx context.Context) ([]VehicleRecord, error) {
	vehicles, err := t.repo.GetAllVehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	return vehiclesToRecords(vehicles), nil
}

// ListForUser returns only the vehicles assigned to the given user. It
// scopes the non-admin view.
func (t *Tracker) ListForUser(ctx context.Context, userID string) ([]VehicleRecord, error) {
	vehicles, err := t.repo.GetVehiclesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list vehicles for user: %w", err)
	}
	return vehiclesToRecords(vehicles), nil
}

// NotifyUpdate sends a one-shot update notification to the assigned user's
// email address. Delivery failure surfaces to the caller; there is no retry.
func (t *Tracker) NotifyUpdate(ctx context.Context, id string) error {
	vehicle, err := t.repo.GetVehicle(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return ErrVehicleNotFound
		}
		return fmt.Errorf("get vehicle: %w", err)
	}

	if vehicle.AssignedToUserID == nil {
		return ErrNoRecipient
	}

	user, err := t.repo.GetUser(ctx, *vehicle.AssignedToUserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrNoRecipient
		}
		return fmt.Errorf("get assigned user: %w", err)
	}
	if user.Email == "" {
		return ErrNoRecipient
	}

	update := notify.VehicleUpdate{
		VIN:             vehicle.VIN,
		Make:            vehicle.Make,
		Model:           vehicle.Model,
		ContainerNumber: vehicle.ContainerNumber,
		BookingNumber:   vehicle.BookingNumber,
		ETD:             vehicle.ETD,
		ETA:             vehicle.ETA,
	}

	if err := t.notifier.VehicleUpdated(ctx, user.Email, update); err != nil {
		return fmt.Errorf("notify assigned user: %w", err)
	}

	t.logs.Infow("update notification sent", "vehicleId", id, "userId", user.ID)
	return nil
}

func (t *Tracker) storeAttachments(ctx context.Context, files []Upload) ([]string, error) {
	refs := make([]string, 0, len(files))
	for _, file := range files {
		if file.Size > maxAttachmentBytes {
			return nil, ErrFileTooLarge
		}
		if _, ok := attachmentContentTypes[file.ContentType]; !ok {
			return nil, ErrUnsupportedFileType
		}

		ref, err := t.blobs.Put(ctx, strings.ToLower(filepath.Ext(file.Filename)), file.Content)
		if err != nil {
			return nil, fmt.Errorf("store attachment: %w", err)
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func validCategory(category string) bool {
	for _, c := range PhotoCategories {
		if c == category {
			return true
		}
	}
	return false
}

func vehiclesToRecords(vehicles []repository.Vehicle) []VehicleRecord {
	records := make([]VehicleRecord, len(vehicles))
	for i, v := range vehicles {
		records[i] = vehicleToRecord(v)
	}
	return records
}
