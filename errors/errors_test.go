package errors

import (
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
)

func TestReasonAndCode(t *testing.T) {
	err := NotFoundError("no service published")
	if Reason(err) != ServiceNotFound {
		t.Fatalf("reason = %s", Reason(err))
	}
	if Code(err) != ServiceNotFoundCode {
		t.Fatalf("code = %d", Code(err))
	}
}

func TestIsMatchesCodeAndReason(t *testing.T) {
	err := MismatchError("kind differs")
	if !err.Is(MismatchError("another message")) {
		t.Fatal("errors with same code and reason should match")
	}
	if err.Is(NotFoundError("x")) {
		t.Fatal("different reason should not match")
	}
}

func TestWithErrorKeepsCause(t *testing.T) {
	cause := fmt.Errorf("dial tcp: refused")
	err := ConnectionError("broker unreachable").WithError(cause)
	if err.Unwrap() != cause {
		t.Fatal("cause lost")
	}
}

func TestGRPCStatusRoundTrip(t *testing.T) {
	e := RegistrationError("rejected").WithMetadata(map[string]string{"registry": "http://host:5010"})
	s := e.GRPCStatus()
	if s.Code() != codes.FailedPrecondition {
		t.Fatalf("grpc code = %s", s.Code())
	}
	got := FromError(s.Err())
	if got.Reason != Registration {
		t.Fatalf("reason = %s", got.Reason)
	}
	if got.Metadata["registry"] != "http://host:5010" {
		t.Fatalf("metadata = %+v", got.Metadata)
	}
}

func TestFromErrorPlain(t *testing.T) {
	got := FromError(fmt.Errorf("boom"))
	if got.Reason != UnknownReason || got.Code != UnknownCode {
		t.Fatalf("got = %+v", got)
	}
}
