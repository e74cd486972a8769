// Package errors provides structured domain errors with gRPC status mapping.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Pairing errors
	CodePairingUsernameEmpty  Code = "PAIRING_USERNAME_EMPTY"
	CodePairingTokenEmpty     Code = "PAIRING_TOKEN_EMPTY"
	CodePairingTokenUnknown   Code = "PAIRING_TOKEN_UNKNOWN"
	CodePairingTokenConsumed  Code = "PAIRING_TOKEN_CONSUMED"
	CodePairingSelfJoin       Code = "PAIRING_SELF_JOIN"
	CodePairingTicketMissing  Code = "PAIRING_TICKET_MISSING"

	// Matchmaking provider errors
	CodeProviderUnavailable Code = "PROVIDER_UNAVAILABLE"
	CodeTicketNotFound      Code = "TICKET_NOT_FOUND"

	// Match errors
	CodeMatchNotFound           Code = "MATCH_NOT_FOUND"
	CodeMatchParticipantUnknown Code = "MATCH_PARTICIPANT_UNKNOWN"
	CodeMatchAlreadyDecided     Code = "MATCH_ALREADY_DECIDED"

	// Pick errors
	CodeMoveInvalid          Code = "MOVE_INVALID"
	CodeMoveAlreadySubmitted Code = "MOVE_ALREADY_SUBMITTED"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodePairingUsernameEmpty,
		CodePairingTokenEmpty,
		CodeMoveInvalid,
		CodeMatchParticipantUnknown:
		return codes.InvalidArgument

	// FailedPrecondition - state doesn't allow operation
	case CodePairingTokenConsumed,
		CodePairingSelfJoin,
		CodePairingTicketMissing,
		CodeMatchAlreadyDecided,
		CodeMoveAlreadySubmitted:
		return codes.FailedPrecondition

	// NotFound - missing records
	case CodePairingTokenUnknown,
		CodeTicketNotFound,
		CodeMatchNotFound:
		return codes.NotFound

	// Unavailable - the external matchmaker is unreachable or rejecting
	case CodeProviderUnavailable:
		return codes.Unavailable

	default:
		return codes.Internal
	}
}
