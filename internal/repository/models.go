package repository

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID             string `gorm:"primaryKey;autoIncrement:false"`
	Username       string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash   string `gorm:"not null"`
	Role           string `gorm:"type:varchar(16);not null;default:user"`
	Name           string `gorm:"not null"`
	Email          string
	ProfilePicture string
}

type Vehicle struct {
	ID               string `gorm:"primaryKey;autoIncrement:false"`
	VIN              string `gorm:"column:vin;type:varchar(32);index;not null"`
	Lot              string `gorm:"not null"`
	Year             int    `gorm:"not null"`
	Make             string `gorm:"not null"`
	Model            string `gorm:"not null"`
	Destination      string `gorm:"not null"`
	HasTitle         bool   `gorm:"not null;default:false"`
	HasKey           bool   `gorm:"not null;default:false"`
	Note             string
	AdminNote        string
	AssignedToUserID *string `gorm:"type:varchar(36);index"`
	ContainerNumber  string
	BookingNumber    string
	ETD              string `gorm:"column:etd"`
	ETA              string `gorm:"column:eta"`
	LoadingPhotos    PhotoList   `gorm:"type:jsonb;default:'[]'"`
	UnloadingPhotos  PhotoList   `gorm:"type:jsonb;default:'[]'"`
	WarehousePhotos  PhotoList   `gorm:"type:jsonb;default:'[]'"`
	Invoices         InvoiceList `gorm:"type:jsonb;default:'[]'"`
}

type Config struct {
	ID    string    `gorm:"primaryKey;autoIncrement:false"`
	Key   string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Value JSONValue `gorm:"type:jsonb;not null"`
}

// PhotoList is a jsonb-backed ordered list of blob references.
type PhotoList []string

func (p PhotoList) Value() (driver.Value, error) {
	if p == nil {
		p = PhotoList{}
	}
	return json.Marshal(p)
}

func (p *PhotoList) Scan(src any) error {
	return scanJSON(src, p)
}

type InvoiceDocument struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

// UnmarshalJSON accepts both the tagged object form and the legacy bare
// reference form where an entry is just the URL string.
func (d *InvoiceDocument) UnmarshalJSON(data []byte) error {
	var bare string
	if err := json.Unmarshal(data, &bare); err == nil {
		d.URL = bare
		d.Type = "invoice"
		return nil
	}

	type tagged InvoiceDocument
	var t tagged
	if err := json.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("unmarshal invoice document: %w", err)
	}
	*d = InvoiceDocument(t)
	return nil
}

// InvoiceList is a jsonb-backed ordered list of invoice documents.
type InvoiceList []InvoiceDocument

func (l InvoiceList) Value() (driver.Value, error) {
	if l == nil {
		l = InvoiceList{}
	}
	return json.Marshal(l)
}

func (l *InvoiceList) Scan(src any) error {
	return scanJSON(src, l)
}

// JSONValue stores an arbitrary JSON document.
type JSONValue json.RawMessage

func (v JSONValue) Value() (driver.Value, error) {
	if len(v) == 0 {
		return []byte("null"), nil
	}
	return []byte(v), nil
}

func (v *JSONValue) Scan(src any) error {
	switch s := src.(type) {
	case []byte:
		*v = append((*v)[:0], s...)
		return nil
	case string:
		*v = JSONValue(s)
		return nil
	case nil:
		*v = nil
		return nil
	default:
		return fmt.Errorf("unsupported jsonb source type: %T", src)
	}
}

func (v JSONValue) MarshalJSON() ([]byte, error) {
	if len(v) == 0 {
		return []byte("null"), nil
	}
	return v, nil
}

func (v *JSONValue) UnmarshalJSON(data []byte) error {
	*v = append((*v)[:0], data...)
	return nil
}

func scanJSON(src any, dst any) error {
	switch s := src.(type) {
	case []byte:
		if len(s) == 0 {
			return nil
		}
		return json.Unmarshal(s, dst)
	case string:
		if s == "" {
			return nil
		}
		return json.Unmarshal([]byte(s), dst)
	case nil:
		return nil
	default:
		return fmt.Errorf("unsupported jsonb source type: %T", src)
	}
}
