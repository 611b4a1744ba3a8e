package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// ID is an entity identifier as the API returns it. The backend is
// inconsistent about identifier types (numeric in SQL-backed
// deployments, hex strings in document-backed ones), so IDs are kept
// as strings internally and rendered back as numbers when they are
// numeric. The zero value means "absent".
type ID string

func (id ID) IsZero() bool {
	return id == ""
}

func (id ID) String() string {
	return string(id)
}

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		// Not a number or string; an unusable identifier is treated
		// as absent rather than failing the whole payload.
		*id = ""
		return nil
	}
	*id = ID(n.String())
	return nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// FirstID returns the first non-absent identifier. Resources name
// their identifier field inconsistently (user_id / id / _id), so
// decoders probe all accepted spellings in priority order.
func FirstID(ids ...ID) ID {
	for _, id := range ids {
		if !id.IsZero() {
			return id
		}
	}
	return ""
}

// Unwrap strips the optional response envelope. The API answers either
// {"data": T}, a resource-named wrapper such as {"order": T}, or bare
// T; internal code only ever sees the inner payload.
func Unwrap(raw []byte, keys ...string) []byte {
	raw = bytes.TrimSpace(raw)
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return raw
	}
	for _, key := range append([]string{"data"}, keys...) {
		inner := bytes.TrimSpace(probe[key])
		if len(inner) > 0 && string(inner) != "null" {
			return inner
		}
	}
	return raw
}

// activeByDefault interprets the wire status flag: an absent status
// means the record is active.
func activeByDefault(status *bool) bool {
	return status == nil || *status
}
