package payload

import (
	"encoding/json"

	"github.com/jellydator/validation"
)

type SetConfigRequest struct {
	Value json.RawMessage `json:"value"`
}

func (r SetConfigRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Value, validation.Required),
	)
}
