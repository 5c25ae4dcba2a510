package common

type contextKey string

// ContextKeyRequestID middleware 寫入、下游取用的 request id 鍵
const ContextKeyRequestID contextKey = "request_id"
