package common

// AuthHeaderName is the HTTP header that carries the raw session token on
// protected requests. The value is the bare token, no scheme prefix.
const AuthHeaderName = "Authorization"
