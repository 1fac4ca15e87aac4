package domain

type CtxKey string

const (
	// KeyUser holds the resolved *User for the request, set by the auth
	// middleware. Absent when the caller presented no (valid) token.
	KeyUser      CtxKey = "User"
	KeyRequestID CtxKey = "RequestID"
)
