// Copyright (c) 2023 xCherryIO Organization
// SPDX-License-Identifier: Apache-2.0

package initializer

// Phase is the last step the initializer completed. The steps are linear,
// a failed step leaves the phase at the previous one
type Phase int

const (
	PhaseStart Phase = iota
	PhaseDatabaseCreated
	PhaseTablesDropped
	PhaseTablesCreated
	PhaseClosed
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseDatabaseCreated:
		return "database-created"
	case PhaseTablesDropped:
		return "tables-dropped"
	case PhaseTablesCreated:
		return "tables-created"
	case PhaseClosed:
		return "closed"
	default:
		return "unknown"
	}
}
