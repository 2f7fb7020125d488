package common

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrParseFEN        = errors.New("parse fen failed")
	ErrInvalidMove     = errors.New("invalid move")
	ErrMoveNotFound    = errors.New("move not found")
	ErrIllegalMove     = errors.New("move leaves own king in check")
)

// FENError reports the offending character of a malformed FEN string.
type FENError struct {
	FEN    string
	Index  int
	Reason string
}

func (e *FENError) Error() string {
	if e.Index >= 0 && e.Index < len(e.FEN) {
		return fmt.Sprintf("parse fen failed at index %d (%q): %s: %v",
			e.Index, e.FEN[e.Index], e.Reason, e.FEN)
	}
	return fmt.Sprintf("parse fen failed at index %d: %s: %v", e.Index, e.Reason, e.FEN)
}

func (e *FENError) Unwrap() error {
	return ErrParseFEN
}
