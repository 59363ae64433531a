package input

import "errors"

var (
	// ErrClockNotInitialized is returned when a tick is requested before the
	// time source has ever been advanced. The host forgot to start its clock.
	ErrClockNotInitialized = errors.New("input: clock has never been updated")

	// ErrTimeWentBackwards is returned when a tick instant is earlier than the
	// previous one.
	ErrTimeWentBackwards = errors.New("input: tick time went backwards")

	// ErrUnknownDevice is returned by ParseBinding for an unrecognised device prefix.
	ErrUnknownDevice = errors.New("input: unknown device")

	// ErrUnknownBinding is returned by ParseBinding for an unrecognised code.
	ErrUnknownBinding = errors.New("input: unknown binding")
)
