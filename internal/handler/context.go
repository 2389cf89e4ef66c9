package handler

type ContextKey string

var (
	RequestIDCtxKey ContextKey = "requestID"
)
