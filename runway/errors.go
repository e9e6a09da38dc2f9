// runway/errors.go
// Copyright(c) 2022-2024 runwaytower contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package runway

import "fmt"

// ProgrammerError marks a call-site misuse the arbiter will not try to
// recover from: re-entrant calls, non-monotonic timestamps, or a flight
// checking in twice in conflicting roles. These are panics, not errors
// a caller is expected to handle.
type ProgrammerError struct {
	Msg string
}

func (e *ProgrammerError) Error() string { return e.Msg }

func raiseProgrammerError(format string, args ...any) {
	panic(&ProgrammerError{Msg: fmt.Sprintf(format, args...)})
}
