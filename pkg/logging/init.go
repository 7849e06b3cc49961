package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type loggingContextKey string

const (
	TrackingIDKey loggingContextKey = "trackingID"
	ChatIDKey     loggingContextKey = "chatID"
)

type Config struct {
	Level string `envconfig:"LOG_LEVEL" default:"debug"`
}

func WithTrackingId(ctx context.Context) context.Context {
	trackingID := uuid.New().String()
	return context.WithValue(ctx, TrackingIDKey, trackingID)
}

func WithChatID(ctx context.Context, chatID int64) context.Context {
	return context.WithValue(ctx, ChatIDKey, chatID)
}

func TrackingID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(TrackingIDKey).(string)

	return id
}

type trackingIDFormatter struct {
	logrus.TextFormatter
}

func (f *trackingIDFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	if entry.Context == nil {
		return f.TextFormatter.Format(entry)
	}

	if trackingID, ok := entry.Context.Value(TrackingIDKey).(string); ok {
		entry.Data["trackingID"] = trackingID
	}

	if chatID, ok := entry.Context.Value(ChatIDKey).(int64); ok {
		entry.Data["chatID"] = chatID
	}

	return f.TextFormatter.Format(entry)
}

func Init() {
	cfg := new(Config)
	level := logrus.DebugLevel
	if err := envconfig.Process("log", cfg); err == nil {
		if parsed, parseErr := logrus.ParseLevel(cfg.Level); parseErr == nil {
			level = parsed
		}
	}

	logrus.SetLevel(level)
	logrus.SetFormatter(&trackingIDFormatter{
		TextFormatter: logrus.TextFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FullTimestamp:   true,
		},
	})
}
