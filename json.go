package method

import (
	json "github.com/json-iterator/go"
)

// MarshalJSON encodes the method as its canonical uppercase string.
func (m Method) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON decodes a JSON string and parses it via Parse, so any casing is
// accepted. Strings spelling no known method are rejected with ErrUnknownMethod
// naming the offending value.
func (m *Method) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}

	parsed, err := Parse(str)
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}
