package api

import (
	"encoding/json"
)

// envelope is the fixed response shape every endpoint answers with:
// { statusCode, succeeded, message, errors, data }.
// The errors member has no stable shape server-side (list, map of field
// errors, or a bare string), so it is normalized into a flat list.
type envelope struct {
	StatusCode int             `json:"statusCode"`
	Succeeded  bool            `json:"succeeded"`
	Message    string          `json:"message"`
	Errors     json.RawMessage `json:"errors"`
	Data       json.RawMessage `json:"data"`
}

// errorList flattens the envelope's errors member into []string.
func (e *envelope) errorList() []string {
	if len(e.Errors) == 0 || string(e.Errors) == "null" {
		return nil
	}

	var list []string
	if err := json.Unmarshal(e.Errors, &list); err == nil {
		return list
	}

	var fieldErrors map[string][]string
	if err := json.Unmarshal(e.Errors, &fieldErrors); err == nil {
		var out []string
		for field, msgs := range fieldErrors {
			for _, m := range msgs {
				out = append(out, field+": "+m)
			}
		}
		return out
	}

	var single string
	if err := json.Unmarshal(e.Errors, &single); err == nil && single != "" {
		return []string{single}
	}

	return []string{string(e.Errors)}
}
