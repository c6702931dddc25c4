package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns the payload as T. In-process publishers pass T or *T
// directly; anything else (a dead-letter replay, a map) is converted through JSON.
func DecodePayload[T any](input any) (T, error) {
	var result T
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return result, fmt.Errorf("%s: nil %T", ErrMsgDecodePayload, v)
		}
		return *v, nil
	case nil:
		return result, fmt.Errorf("%s: nil payload", ErrMsgDecodePayload)
	}

	data, err := json.Marshal(input)
	if err != nil {
		return result, fmt.Errorf("%s: %w", ErrMsgDecodePayload, err)
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("%s: %w", ErrMsgDecodePayload, err)
	}
	return result, nil
}
