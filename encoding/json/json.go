package json

import (
	"encoding/json"

	"github.com/go-sdv/trailerd/encoding"
)

const Name = "json"

type codec struct{}

func init() {
	encoding.RegisterCodec(codec{})
}

func (c codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (c codec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (c codec) Name() string {
	return Name
}
