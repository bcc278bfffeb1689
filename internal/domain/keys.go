package domain

type CtxKey string

const (
	KeyRequestID CtxKey = "RequestID"
	KeyTheme     CtxKey = "Theme"
	KeyCSRFToken CtxKey = "CSRFToken"
)
