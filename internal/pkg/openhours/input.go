package openhours

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// InputKind tags what an Input carries.
type InputKind int

const (
	InputNone InputKind = iota
	InputInstant
	InputText
)

// Input is one endpoint of an hours statement: an epoch instant, a
// free-form date/time string, or nothing.
type Input struct {
	Kind  InputKind
	Epoch int64
	Text  string
}

// Instant wraps a unix epoch in seconds.
func Instant(epoch int64) Input {
	return Input{Kind: InputInstant, Epoch: epoch}
}

// Text wraps a string for the DateResolver to parse.
func Text(value string) Input {
	return Input{Kind: InputText, Text: value}
}

// IsEmpty reports whether the endpoint is the absent sentinel.
func (in Input) IsEmpty() bool {
	switch in.Kind {
	case InputInstant:
		return false
	case InputText:
		return strings.TrimSpace(in.Text) == ""
	default:
		return true
	}
}

func (in Input) String() string {
	switch in.Kind {
	case InputInstant:
		return strconv.FormatInt(in.Epoch, 10)
	case InputText:
		return in.Text
	default:
		return ""
	}
}

// MarshalJSON writes instants as numbers, text as strings and the empty input as null.
func (in Input) MarshalJSON() ([]byte, error) {
	switch in.Kind {
	case InputInstant:
		return []byte(strconv.FormatInt(in.Epoch, 10)), nil
	case InputText:
		return json.Marshal(in.Text)
	default:
		return []byte("null"), nil
	}
}

func (in *Input) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*in = Input{}
		return nil
	case data[0] == '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*in = Text(text)
		return nil
	}

	if epoch, err := strconv.ParseInt(string(data), 10, 64); err == nil {
		*in = Instant(epoch)
		return nil
	}
	epoch, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("openhours: endpoint must be an epoch number, a string or null: %w", err)
	}
	*in = Instant(int64(epoch))
	return nil
}
