package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

// Response is a single survey submission.
type Response struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"created_at"`
}

// Request types

// FormValue holds raw form input. Browsers send the age field as a string,
// API clients tend to send a number; both keep their original text.
type FormValue string

func (v *FormValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("form value must be a string or a number")
	}
	*v = FormValue(n.String())
	return nil
}

type SubmitResponseRequest struct {
	Name FormValue `json:"name"`
	Age  FormValue `json:"age"`
}

type UnlockRequest struct {
	Password string `json:"password"`
}

type SortRequest struct {
	Field string `json:"field"`
}

// Response types

type SubmitResponseResponse struct {
	Message string `json:"message"`
}

type GateStatusResponse struct {
	Unlocked  bool   `json:"unlocked"`
	Attempts  int    `json:"attempts"`
	Remaining int    `json:"remaining"`
	Message   string `json:"message,omitempty"`
}

// ResponseRow is a response as rendered in the surveyor's table.
type ResponseRow struct {
	Response
	Timestamp string `json:"timestamp"` // locale-formatted created_at
	Received  string `json:"received"`  // e.g. "3 minutes ago"
}

type ListState struct {
	ViewID        string        `json:"view_id,omitempty"`
	Status        string        `json:"status"`
	Error         string        `json:"error,omitempty"`
	SortField     string        `json:"sort_field"`
	SortDirection string        `json:"sort_direction"`
	Empty         bool          `json:"empty"`
	Responses     []ResponseRow `json:"responses"`
}

type ViewCreatedEvent struct {
	ViewID string `json:"view_id"`
}

// Error response

type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}
