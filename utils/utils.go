package utils

import "strings"

// AddToLogMessage appends one line to a request log collected with FlushLog.
func AddToLogMessage(logMessagesBuilder *strings.Builder, strToAdd string) {
	logMessagesBuilder.Grow(len(strToAdd) + 2)
	logMessagesBuilder.WriteString(strToAdd)
	logMessagesBuilder.WriteString(";\n")
}
