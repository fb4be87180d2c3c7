// SPDX-License-Identifier: EPL-2.0

package experiment

import "errors"

var (
	// ErrInvalidPlaybackRate indicates a negative playback rate;
	// zero means "keep the reference rate".
	ErrInvalidPlaybackRate = errors.New("playback rate must not be negative")

	// ErrEmptyLibrary indicates a condition library with no entries.
	ErrEmptyLibrary = errors.New("condition library is empty")

	// ErrUnknownCondition indicates a condition label the library does
	// not contain.
	ErrUnknownCondition = errors.New("unknown condition label")

	// ErrNegativeTrialIndex indicates a trial index below zero.
	ErrNegativeTrialIndex = errors.New("trial index must not be negative")
)
