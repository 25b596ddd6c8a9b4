package events

import (
	"github.com/sirupsen/logrus"
)

// LogSink writes events to a logrus logger as structured entries
type LogSink struct {
	entry *logrus.Entry
}

// NewLogSink creates a sink bound to the given logger
func NewLogSink(logger *logrus.Logger) *LogSink {
	return &LogSink{entry: logrus.NewEntry(logger).WithField("component", "core")}
}

// Emit logs the event at a severity matching its kind
func (s *LogSink) Emit(ev Event) {
	entry := s.entry.WithFields(logrus.Fields{
		"event":      ev.Kind.String(),
		"x":          ev.Pos.X,
		"y":          ev.Pos.Y,
		"game_level": ev.Level,
	})

	switch ev.Kind {
	case PlayerMoved:
		entry.Debug("player moved")
	case BoardCleared:
		entry.Debug("board cleared to walls")
	case LevelGenerated:
		entry.Info("new level generated")
	case MoveBlocked:
		entry.Info("player hit a wall")
	case MoveOutOfBounds:
		entry.Info("player at edge of map")
	case KeyCollected:
		entry.Info("key collected, door unlocked")
	case NothingHere:
		entry.Info("nothing to interact with")
	case DoorLocked:
		entry.Warn("door is still locked")
	case LevelComplete:
		entry.Info("exit found")
	default:
		entry.Warn("unknown event")
	}
}
