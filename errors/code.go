package errors

import (
	"google.golang.org/grpc/codes"
)

const (
	UnknownReason = "UNKNOWN_REASON"
	UnknownCode   = 600

	Panic     = "SERVER_SLEEPY"
	PanicCode = 603

	Connection     = "CONNECTION_FAILED"
	ConnectionCode = 620

	Lookup     = "LOOKUP_FAILED"
	LookupCode = 621

	ServiceNotFound     = "SERVICE_NOT_FOUND"
	ServiceNotFoundCode = 622

	ServiceMismatch     = "SERVICE_MISMATCH"
	ServiceMismatchCode = 623

	Registration     = "REGISTRATION_REJECTED"
	RegistrationCode = 624

	errCause = "err_cause"

	SupportPackageIsVersion1 = true
)

func convertToGRPCCode(code int) codes.Code {
	switch code {
	case ConnectionCode:
		return codes.Unavailable
	case LookupCode:
		return codes.Internal
	case ServiceNotFoundCode, ServiceMismatchCode:
		return codes.NotFound
	case RegistrationCode:
		return codes.FailedPrecondition
	case PanicCode:
		return codes.Internal
	}
	return codes.Unknown
}

func convertFromGRPCCode(code codes.Code) int {
	switch code {
	case codes.Unavailable:
		return ConnectionCode
	case codes.NotFound:
		return ServiceNotFoundCode
	case codes.FailedPrecondition:
		return RegistrationCode
	case codes.Internal:
		return LookupCode
	}
	return UnknownCode
}
