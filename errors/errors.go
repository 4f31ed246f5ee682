package errors

import (
	"fmt"

	"github.com/pkg/errors"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
)

type Status struct {
	Code     int32             `json:"code"`
	Reason   string            `json:"reason"`
	Message  string            `json:"message"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type Error struct {
	Status
	error
}

func (e *Error) Error() string {
	s := fmt.Sprintf("code:%d reason:%s message:%s", e.Code, e.Reason, e.Message)
	if e.error != nil {
		s = fmt.Sprintf("%s cause:%v", s, e.error)
	}
	return s
}

func New(code int, reason, msg string) *Error {
	return &Error{
		Status: Status{
			Code:    int32(code),
			Reason:  reason,
			Message: msg,
		},
	}
}

func (e *Error) Unwrap() error {
	return e.error
}

func (e *Error) Is(err error) bool {
	if se := new(Error); errors.As(err, &se) {
		return se.Code == e.Code && se.Reason == e.Reason
	}
	return false
}

func (e *Error) WithError(cause error) *Error {
	err := clone(e)
	err.error = cause
	return err
}

func (e *Error) WithMetadata(md map[string]string) *Error {
	err := clone(e)
	err.Metadata = md
	return err
}

func (e *Error) WithMessage(msg string) *Error {
	err := clone(e)
	err.Message = msg
	return err
}

func clone(err *Error) *Error {
	metadata := make(map[string]string, len(err.Metadata))
	for k, v := range err.Metadata {
		metadata[k] = v
	}
	return &Error{
		error: err.error,
		Status: Status{
			Code:     err.Code,
			Reason:   err.Reason,
			Message:  err.Message,
			Metadata: metadata,
		},
	}
}

// write error code to grpc status

func (e *Error) GRPCStatus() *status.Status {
	eInfo := &errdetails.ErrorInfo{
		Reason:   e.Reason,
		Metadata: e.Metadata,
	}
	if e.error != nil {
		if eInfo.Metadata == nil {
			eInfo.Metadata = map[string]string{}
		}
		eInfo.Metadata[errCause] = e.error.Error()
	}
	s, _ := status.New(convertToGRPCCode(int(e.Code)), e.Message).WithDetails(eInfo)
	return s
}

// convert error to Error

func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	if se := new(Error); errors.As(err, &se) {
		return se
	}
	gs, ok := status.FromError(err)
	if !ok {
		return New(UnknownCode, UnknownReason, err.Error())
	}
	ret := New(convertFromGRPCCode(gs.Code()), UnknownReason, gs.Message())
	for _, detail := range gs.Details() {
		switch d := detail.(type) {
		case *errdetails.ErrorInfo:
			ret.Reason = d.Reason
			ret = ret.WithMetadata(d.Metadata)
			return ret
		}
	}
	return ret
}

func Code(err error) int {
	if err == nil {
		return 0
	}
	return int(FromError(err).Code)
}

func Reason(err error) string {
	if err == nil {
		return UnknownReason
	}
	return FromError(err).Reason
}

func Wrap(err error, msg string) error {
	return errors.Wrap(err, msg)
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

func HasStack(err error) bool {
	_, ok := err.(stackTracer)
	return ok
}
