package systems

import (
	"image/color"
)

// MessageType defines different types of messages that can appear in the log
type MessageType int

const (
	// MessageTypeNormal is for standard messages (white/gray)
	MessageTypeNormal MessageType = iota
	// MessageTypeDebug is for generator and system diagnostics (dim gray)
	MessageTypeDebug
	// MessageTypeRegion is for observer region changes (gold)
	MessageTypeRegion
	// MessageTypeAgent is for agent routing (blue)
	MessageTypeAgent
	// MessageTypeAlert is for failures worth noticing (bright yellow)
	MessageTypeAlert
)

// ColoredMessage stores a message with its associated color
type ColoredMessage struct {
	Text string
	Type MessageType
}

// GetColor returns the color for the message based on its type
func (cm ColoredMessage) GetColor() color.RGBA {
	switch cm.Type {
	case MessageTypeDebug:
		return color.RGBA{128, 128, 128, 255} // Gray
	case MessageTypeRegion:
		return color.RGBA{218, 165, 32, 255} // Gold
	case MessageTypeAgent:
		return color.RGBA{100, 149, 237, 255} // Cornflower Blue
	case MessageTypeAlert:
		return color.RGBA{255, 255, 0, 255} // Bright Yellow
	default:
		return color.RGBA{200, 200, 200, 255} // Light Gray (default)
	}
}
