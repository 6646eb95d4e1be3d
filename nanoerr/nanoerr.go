// Package nanoerr defines the single error taxonomy used across the module.
// Every fallible operation returns one of these kinds wrapped in *Error;
// callers use errors.As and switch on Kind rather than chasing a family of
// concrete types, mirroring the tagged-result style the spec calls for.
package nanoerr

import "fmt"

// Kind identifies which leaf of the taxonomy an Error belongs to.
type Kind int

const (
	_ Kind = iota

	InvalidSeed
	InvalidPrivateKey
	InvalidPublicKey

	InvalidAccountPrefix
	InvalidAccountLength
	InvalidAccountEncoding
	ChecksumMismatch

	InvalidBlockHash

	MissingField
	InvalidSubtype
	InvalidLink
	PreviousMismatch

	InvalidSignature

	InvalidWork

	AmountOverflow
	AmountInvalidFormat
	AmountNegative

	HexInvalidCharacter
	HexInvalidLength

	RpcConnectionFailed
	RpcTimeout
	RpcInvalidResponse
	RpcNodeError
	RpcHttpStatus

	WebSocketConnectionFailed
	WebSocketConnectionClosed
	WebSocketInvalidMessage
	WebSocketSubscriptionFailed

	WorkCancelled
	WorkMaxIterations
	WorkServerError
)

var names = map[Kind]string{
	InvalidSeed:            "invalid seed",
	InvalidPrivateKey:      "invalid private key",
	InvalidPublicKey:       "invalid public key",
	InvalidAccountPrefix:   "invalid account prefix",
	InvalidAccountLength:   "invalid account length",
	InvalidAccountEncoding: "invalid account encoding",
	ChecksumMismatch:       "checksum mismatch",
	InvalidBlockHash:       "invalid block hash",
	MissingField:           "missing field",
	InvalidSubtype:         "invalid subtype",
	InvalidLink:            "invalid link",
	PreviousMismatch:       "previous hash mismatch",
	InvalidSignature:       "invalid signature",
	InvalidWork:            "invalid work",
	AmountOverflow:         "amount overflow",
	AmountInvalidFormat:    "invalid amount format",
	AmountNegative:         "negative amount",
	HexInvalidCharacter:    "invalid hex character",
	HexInvalidLength:       "invalid hex length",

	RpcConnectionFailed: "rpc connection failed",
	RpcTimeout:          "rpc timeout",
	RpcInvalidResponse:  "invalid rpc response",
	RpcNodeError:        "node error",
	RpcHttpStatus:       "unexpected http status",

	WebSocketConnectionFailed:   "websocket connection failed",
	WebSocketConnectionClosed:   "websocket connection closed",
	WebSocketInvalidMessage:     "invalid websocket message",
	WebSocketSubscriptionFailed: "websocket subscription failed",

	WorkCancelled:     "work generation cancelled",
	WorkMaxIterations: "work generation exhausted all nonces",
	WorkServerError:   "work generation server error",
}

// Error is the single carrier type for every error this module returns.
// Field and Message are populated only where the taxonomy calls for it
// (e.g. MissingField carries Field, node/transport errors carry Message).
type Error struct {
	Kind    Kind
	Field   string
	Message string
	Code    int // HTTP status, when Kind == RpcHttpStatus
	Err     error
}

func (e *Error) Error() string {
	name := names[e.Kind]
	switch {
	case e.Kind == MissingField:
		return fmt.Sprintf("%s: %s", name, e.Field)
	case e.Kind == RpcHttpStatus:
		return fmt.Sprintf("%s: %d", name, e.Code)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", name, e.Message)
	default:
		return name
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same Kind, so callers can
// write errors.Is(err, nanoerr.New(nanoerr.ChecksumMismatch)) as a shorthand
// for matching on Kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New constructs a bare *Error of the given kind.
func New(kind Kind) *Error {
	return &Error{Kind: kind}
}

// WithField returns a MissingField-style error naming field.
func WithField(kind Kind, field string) *Error {
	return &Error{Kind: kind, Field: field}
}

// WithMessage returns an error carrying a transport-supplied message.
func WithMessage(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Wrap returns an error of kind wrapping a lower-level cause.
func Wrap(kind Kind, err error) *Error {
	return &Error{Kind: kind, Message: err.Error(), Err: err}
}

// HTTPStatus returns an RpcHttpStatus error for the given status code.
func HTTPStatus(code int) *Error {
	return &Error{Kind: RpcHttpStatus, Code: code}
}
