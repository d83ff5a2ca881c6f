package core

import "errors"

var (
	// Data-integrity errors: a broken catalog or caller bug, not a player action.
	ErrUnknownBuilding       = errors.New("unknown building id")
	ErrUnknownSlot           = errors.New("unknown building slot")
	ErrUnknownTemplate       = errors.New("unknown card template")
	ErrUnknownSticker        = errors.New("unknown sticker id")
	ErrNoAdventures          = errors.New("no adventure options for level")
	ErrReentrantConstruction = errors.New("construction already in progress")

	// Validation errors: no legitimate code path constructs these arguments.
	ErrInvalidAmount   = errors.New("amount must be non-negative")
	ErrUnknownResource = errors.New("unknown resource")
	ErrInvalidIndex    = errors.New("card index out of range")
	ErrSlotOccupied    = errors.New("card slot already holds a sticker")
)
