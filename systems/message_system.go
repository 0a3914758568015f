package systems

import "strings"

// MessageLog stores simulation messages. Components receive its Add method
// as their log function instead of reaching for a shared instance.
type MessageLog struct {
	Messages    []ColoredMessage
	MaxMessages int

	sink func(string)
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{
		Messages:    []ColoredMessage{},
		MaxMessages: 100, // Store the last 100 messages
	}
}

// SetSink forwards every added message to f as well, e.g. a file logger
func (ml *MessageLog) SetSink(f func(string)) {
	ml.sink = f
}

// Add adds a message to the log
func (ml *MessageLog) Add(message string) {
	ml.Messages = append(ml.Messages, ColoredMessage{Text: message, Type: classify(message)})

	// Truncate if we have too many messages
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}

	if ml.sink != nil {
		ml.sink(message)
	}
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []ColoredMessage {
	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}

	result := make([]ColoredMessage, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}

	return result
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = []ColoredMessage{}
}

// classify picks a message type from the message's level prefix
func classify(message string) MessageType {
	switch {
	case strings.HasPrefix(message, "DEBUG:"):
		return MessageTypeDebug
	case strings.HasPrefix(message, "WARN:"):
		return MessageTypeAlert
	case strings.HasPrefix(message, "REGION:"):
		return MessageTypeRegion
	case strings.HasPrefix(message, "AGENT:"):
		return MessageTypeAgent
	default:
		return MessageTypeNormal
	}
}
