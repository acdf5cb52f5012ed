package constants

// SessionCookieName is the name of the session cookie issued to browsers.
const SessionCookieName = "certificado_session"

// SessionKeyAccountID is the session (and gin context) key holding the
// logged-in account id. Absence of this key means the request is anonymous.
const SessionKeyAccountID = "usuario_id"

// MinPasswordLength is the minimum accepted password length (exclusive:
// passwords must be strictly longer than 8 characters).
const MinPasswordLength = 8
