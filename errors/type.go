package errors

func ConnectionError(msg string) *Error {
	return New(ConnectionCode, Connection, msg)
}

func LookupError(msg string) *Error {
	return New(LookupCode, Lookup, msg)
}

func NotFoundError(msg string) *Error {
	return New(ServiceNotFoundCode, ServiceNotFound, msg)
}

func MismatchError(msg string) *Error {
	return New(ServiceMismatchCode, ServiceMismatch, msg)
}

func RegistrationError(msg string) *Error {
	return New(RegistrationCode, Registration, msg)
}

func InternalServer(reason, msg string) *Error {
	return New(500, reason, msg)
}
