package dtos

import "pisos-tracker/internal/constants"

// Notice is a one-shot user-visible message.
type Notice struct {
	Level   constants.NoticeLevel `json:"level"`
	Message string                `json:"message"`
}

// Outcome is what a mutating operation hands back to the presentation layer.
// Err carries the cause of a failed outcome for callers that branch on it.
type Outcome struct {
	OK     bool
	Notice Notice
	ID     uint
	Err    error
}

func Success(msg string) Notice { return Notice{Level: constants.NoticeSuccess, Message: msg} }
func Danger(msg string) Notice  { return Notice{Level: constants.NoticeDanger, Message: msg} }
func Info(msg string) Notice    { return Notice{Level: constants.NoticeInfo, Message: msg} }
func Warning(msg string) Notice { return Notice{Level: constants.NoticeWarning, Message: msg} }
