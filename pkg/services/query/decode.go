package query

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownAction is returned by DecodeAction for an unrecognised type tag.
var ErrUnknownAction = errors.New("unknown action type")

type envelope struct {
	Type Kind `json:"type"`
}

// DecodeAction decodes a JSON action of the form {"type": "<kind>", ...fields}.
func DecodeAction(data []byte) (Action, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to decode action: %w", err)
	}

	switch env.Type {
	case KindSetQuery:
		return decodeInto[SetQuery](data)
	case KindClearQuery:
		return decodeInto[ClearQuery](data)
	case KindSetRHSMQuery:
		return decodeInto[SetRHSMQuery](data)
	case KindSetInventoryQuery:
		return decodeInto[SetInventoryQuery](data)
	case KindResetInventoryList:
		return decodeInto[ResetInventoryList](data)
	case KindClearInventoryList:
		return decodeInto[ClearInventoryList](data)
	case KindClearInventoryGuestsList:
		return decodeInto[ClearInventoryGuestsList](data)
	case KindResetProductGroup:
		return decodeInto[ResetProductGroup](data)
	case KindSetProduct:
		return decodeInto[SetProduct](data)
	case KindSetProductVariant:
		return decodeInto[SetProductVariant](data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, env.Type)
	}
}

func decodeInto[T Action](data []byte) (Action, error) {
	var a T
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to decode %s action: %w", a.Kind(), err)
	}
	return a, nil
}
