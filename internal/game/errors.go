package game

import "errors"

// Refusals returned for illegal intents. The battle is left untouched.
var (
	ErrTurnInProgress = errors.New("a turn is already being resolved")
	ErrBattleOver     = errors.New("battle is over")
	ErrSwitchRequired = errors.New("a switch decision is pending")
	ErrNoSwitchNeeded = errors.New("no switch decision is pending")
	ErrInvalidMove    = errors.New("invalid move")
	ErrNoPP           = errors.New("move has no PP left")
	ErrInvalidSwitch  = errors.New("invalid switch target")
	ErrInvalidTarget  = errors.New("invalid item target")
	ErrUnknownItem    = errors.New("unknown item")
	ErrItemNoEffect   = errors.New("it won't have any effect")
	ErrNoItemsLeft    = errors.New("none of that item left")
)
