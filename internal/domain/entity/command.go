package entity

import (
	"slices"
	"time"
)

// CommandType names a one-shot instruction staged for a device.
type CommandType string

const (
	// CommandRefresh asks the player to reload itself.
	CommandRefresh CommandType = "refresh"
)

// String returns the string representation of the CommandType.
func (c CommandType) String() string {
	return string(c)
}

// PendingCommand is the single outstanding command of a device.
// Issuing another command before delivery overwrites it.
type PendingCommand struct {
	Type     CommandType `json:"type"`
	IssuedAt time.Time   `json:"issued_at"`
}

// CommandTypes is the set of commands operators may stage.
type CommandTypes []CommandType

// Contains checks if the set allows a specific command.
func (cs CommandTypes) Contains(c CommandType) bool {
	return slices.Contains(cs, c)
}

// CommandTypesFromStrings converts configured names, dropping blanks and duplicates.
func CommandTypesFromStrings(ss []string) CommandTypes {
	result := make(CommandTypes, 0, len(ss))
	for _, s := range ss {
		c := CommandType(s)
		if s == "" || result.Contains(c) {
			continue
		}
		result = append(result, c)
	}

	return result
}
