package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"cartrack/internal/core"
	"cartrack/internal/session"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name AuthService . AuthService
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, session.Identity, error)
	Logout(ctx context.Context, token string) error
}

//counterfeiter:generate -o fake -fake-name UserService . UserService
type UserService interface {
	CreateUser(ctx context.Context, msg core.CreateUserMessage) (core.UserRecord, error)
	UpdateUser(ctx context.Context, id string, patch core.UserPatch) (core.UserRecord, error)
	DeleteUser(ctx context.Context, actor session.Identity, id string) error
	UploadProfilePicture(ctx context.Context, sess session.Session, userID string, file core.Upload) (core.UserRecord, error)
	GetUser(ctx context.Context, id string) (core.UserRecord, error)
	ListUsers(ctx context.Context) ([]core.UserRecord, error)
}

//counterfeiter:generate -o fake -fake-name VehicleService . VehicleService
type VehicleService interface {
	CreateVehicle(ctx context.Context, msg core.CreateVehicleMessage) (core.VehicleRecord, error)
	UpdateVehicle(ctx context.Context, id string, patch core.VehiclePatch) (core.VehicleRecord, error)
	DeleteVehicle(ctx context.Context, id string) error
	GetVehicle(ctx context.Context, id string) (core.VehicleRecord, error)
	ListVehicles(ctx context.Context) ([]core.VehicleRecord, error)
	ListForUser(ctx context.Context, userID string) ([]core.VehicleRecord, error)
	AttachPhotos(ctx context.Context, id, category string, files []core.Upload) (core.VehicleRecord, error)
	AttachInvoices(ctx context.Context, id, documentType string, files []core.Upload) (core.VehicleRecord, error)
	RemoveInvoice(ctx context.Context, id, ref string) (core.VehicleRecord, error)
	NotifyUpdate(ctx context.Context, id string) error
}

//counterfeiter:generate -o fake -fake-name ConfigService . ConfigService
type ConfigService interface {
	GetConfig(ctx context.Context, key string) (core.ConfigEntry, error)
	AllConfig(ctx context.Context) (map[string]json.RawMessage, error)
	SetConfig(ctx context.Context, key string, value json.RawMessage) (core.ConfigEntry, error)
}

//counterfeiter:generate -o fake -fake-name FileStore . FileStore
type FileStore interface {
	Open(name string) (io.ReadCloser, error)
}
