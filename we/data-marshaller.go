package we

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
)

const JSONEncoding = "application/json"

type InvalidEncodingError struct {
	Expected string
	Actual   string
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("expected encoding %s, got %s", e.Expected, e.Actual)
}

func InvalidEncoding(expected string, actual string) error {
	return &InvalidEncodingError{
		Expected: expected,
		Actual:   actual,
	}
}

func MarshalToData(value any) (Data, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return Data{}, err
	}

	return Data{
		Encoding: JSONEncoding,
		Data:     data,
	}, nil
}

// UnmarshalFromData decodes data into value. An absent payload leaves value at its
// zero value.
func UnmarshalFromData(ctx context.Context, data Data, value any) error {
	if data.Encoding == "" && len(data.Data) == 0 {
		return nil
	}

	if data.Encoding != JSONEncoding {
		return InvalidEncoding(JSONEncoding, data.Encoding)
	}

	if len(data.Data) == 0 {
		return nil
	}

	return json.UnmarshalContext(ctx, data.Data, value)
}
