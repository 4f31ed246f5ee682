package toml

import (
	"testing"

	"github.com/go-sdv/trailerd/encoding"
)

type conf struct {
	Network string `toml:"network"`
	Address string `toml:"address"`
}

func TestCodecRoundTrip(t *testing.T) {
	codec := encoding.GetCodec(Name)
	if codec == nil {
		t.Fatal("toml codec not registered")
	}
	raw, err := codec.Marshal(conf{Network: "tcp", Address: "0.0.0.0:55000"})
	if err != nil {
		t.Fatalf("marshal: %+v", err)
	}
	var got conf
	if err = codec.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %+v", err)
	}
	if got.Network != "tcp" || got.Address != "0.0.0.0:55000" {
		t.Fatalf("got = %+v", got)
	}
}
