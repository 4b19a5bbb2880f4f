package mapper

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidJSON is wrapped by every FieldError returned for unparsable text
var ErrInvalidJSON = errors.New("invalid JSON text")

// FieldError reports which edited field failed to convert back to its wire form
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// JSONText renders a nested structure for a text box. Unset values render as "".
func JSONText(v interface{}) string {
	if isFalsy(v) {
		return ""
	}
	buf, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(buf)
}

// ParseJSONText parses the text of field back into a structure. Blank text
// means the field is absent.
func ParseJSONText(field, text string) (interface{}, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	var v interface{}
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, &FieldError{Field: field, Err: fmt.Errorf("%w: %v", ErrInvalidJSON, err)}
	}
	return v, nil
}
