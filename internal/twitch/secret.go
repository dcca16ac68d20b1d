package twitch

import "encoding/json"

const redacted = "[REDACTED]"

// Secret holds a credential. It prints redacted everywhere except in
// JSON, which is how the account file stores it.
type Secret struct {
	value string
}

// NewSecret wraps value.
func NewSecret(value string) Secret {
	return Secret{value: value}
}

// Expose returns the raw value.
func (s Secret) Expose() string {
	return s.value
}

// Empty reports whether no value is set.
func (s Secret) Empty() bool {
	return s.value == ""
}

func (s Secret) String() string {
	if s.value == "" {
		return ""
	}
	return redacted
}

// GoString keeps %#v from leaking the value.
func (s Secret) GoString() string {
	return s.String()
}

func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.value)
}

func (s *Secret) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &s.value)
}
