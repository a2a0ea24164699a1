package audit

import (
	"encoding/json"
	"fmt"
	"strings"
)

// encodeDetails turns a details value into the stored text. Pre-serialized
// payloads pass through unchanged. A blank result is stored as NULL.
func encodeDetails(details any) (*string, error) {
	var text string
	switch v := details.(type) {
	case nil:
		return nil, nil
	case string:
		text = v
	case []byte:
		text = string(v)
	case json.RawMessage:
		text = string(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		text = string(b)
	}

	if strings.TrimSpace(text) == "" || text == "null" {
		return nil, nil
	}
	return &text, nil
}

var fallbackEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// fallbackDetails records a serialization failure as a valid JSON object.
func fallbackDetails(err error) *string {
	s := fmt.Sprintf(`{"auditSerializationError":"%s"}`, fallbackEscaper.Replace(err.Error()))
	return &s
}
