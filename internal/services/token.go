package services

import "strings"

// TokenVerdict is the result of the device-token sanity check.
type TokenVerdict int

const (
	TokenValid TokenVerdict = iota
	RejectSentinelNull
	RejectSentinelUndefined
	RejectTooShort
	RejectContainsNull
	RejectContainsUndefined
)

func (v TokenVerdict) String() string {
	switch v {
	case TokenValid:
		return "valid"
	case RejectSentinelNull:
		return "sentinel null"
	case RejectSentinelUndefined:
		return "sentinel undefined"
	case RejectTooShort:
		return "too short"
	case RejectContainsNull:
		return "contains null marker"
	case RejectContainsUndefined:
		return "contains undefined marker"
	default:
		return "unknown"
	}
}

// A real FCM registration token is far longer than this.
const minTokenLength = 10

// CheckToken runs the structural sanity check on a raw device token.
// The sentinel and substring checks guard against a client bug class
// where a missing value gets stringified into the token field.
// Tokens minted by the FCM SDK never contain those substrings, so a
// well-formed token is never rejected.
func CheckToken(token string) TokenVerdict {
	switch token {
	case "null":
		return RejectSentinelNull
	case "undefined":
		return RejectSentinelUndefined
	}
	if len(token) <= minTokenLength {
		return RejectTooShort
	}
	if strings.Contains(token, "null") {
		return RejectContainsNull
	}
	if strings.Contains(token, "undefined") {
		return RejectContainsUndefined
	}
	return TokenValid
}

// IsValidToken is the boolean view of CheckToken.
func IsValidToken(token string) bool {
	return CheckToken(token) == TokenValid
}
