package endpoint

import (
	"net"
	"strings"
	"testing"
)

func TestScheme(t *testing.T) {
	if s := Scheme("http", true); s != "http" {
		t.Fatalf("scheme = %s", s)
	}
	if s := Scheme("http", false); s != "https" {
		t.Fatalf("scheme = %s", s)
	}
}

func TestParseAddrExplicitHost(t *testing.T) {
	host, err := ParseAddr(nil, "192.168.1.10:55000")
	if err != nil {
		t.Fatalf("parse addr error: %+v", err)
	}
	if host != "192.168.1.10:55000" {
		t.Fatalf("host = %s", host)
	}
}

func TestParseAddrListenerPort(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen error: %+v", err)
	}
	defer ln.Close()
	host, err := ParseAddr(ln, "127.0.0.1:0")
	if err != nil {
		t.Fatalf("parse addr error: %+v", err)
	}
	_, port, err := net.SplitHostPort(host)
	if err != nil {
		t.Fatalf("split error: %+v", err)
	}
	if port == "0" {
		t.Fatal("port not resolved from listener")
	}
}

func TestParseAddrWildcard(t *testing.T) {
	host, err := ParseAddr(nil, "0.0.0.0:55000")
	if err != nil {
		t.Fatalf("parse addr error: %+v", err)
	}
	if !strings.HasSuffix(host, ":55000") {
		t.Fatalf("host = %s", host)
	}
}

func TestURI(t *testing.T) {
	if u := URI("http", "10.0.0.1:55000"); u != "http://10.0.0.1:55000" {
		t.Fatalf("uri = %s", u)
	}
}
