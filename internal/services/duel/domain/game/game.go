// Package game defines the move set and outcome rules for a duel.
package game

import (
	"strings"

	apperrors "github.com/openduel/arena/internal/errors"
)

// Move is one of the five playable symbols.
type Move string

// The extended rock-paper-scissors move set.
const (
	MoveRock     Move = "rock"
	MovePaper    Move = "paper"
	MoveScissors Move = "scissors"
	MoveLizard   Move = "lizard"
	MoveSpock    Move = "spock"
)

// Moves lists every playable move in a stable order.
var Moves = []Move{MoveRock, MovePaper, MoveScissors, MoveLizard, MoveSpock}

// beats maps each move to the two moves it defeats.
var beats = map[Move][2]Move{
	MoveRock:     {MoveScissors, MoveLizard},
	MovePaper:    {MoveRock, MoveSpock},
	MoveScissors: {MovePaper, MoveLizard},
	MoveLizard:   {MovePaper, MoveSpock},
	MoveSpock:    {MoveScissors, MoveRock},
}

// ParseMove normalizes and validates a player-supplied move.
func ParseMove(raw string) (Move, error) {
	move := Move(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := beats[move]; !ok {
		return "", apperrors.Newf(apperrors.CodeMoveInvalid, "unknown move %q", raw)
	}
	return move, nil
}

// String returns the wire form of the move.
func (m Move) String() string {
	return string(m)
}

// Result is the stored outcome of a match, framed from the master's side.
type Result string

const (
	ResultPending    Result = "pending"
	ResultPlayer     Result = "player"
	ResultChallenger Result = "challenger"
	ResultDraw       Result = "draw"
)

// Decided reports whether the result is terminal.
func (r Result) Decided() bool {
	return r != ResultPending && r != ""
}

// Evaluate computes the outcome of two moves. Equal moves always draw;
// otherwise the tournament relation above decides the winner.
func Evaluate(player, challenger Move) Result {
	if player == challenger {
		return ResultDraw
	}
	wins := beats[player]
	if wins[0] == challenger || wins[1] == challenger {
		return ResultPlayer
	}
	return ResultChallenger
}
