package logger

import (
	"log/slog"

	"github.com/miajio/dict/pkg/dictionary"
)

// Recorder 将词典事件写入日志
type Recorder struct {
	logger *slog.Logger
}

// NewRecorder 创建日志事件接收者，logger为nil时使用默认logger
func NewRecorder(logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{logger: logger}
}

// Record 实现 dictionary.Recorder
func (r *Recorder) Record(event dictionary.Event) {
	switch {
	case event.Err != nil:
		r.logger.Error(string(event.Op)+" failed",
			"count", event.Count,
			"error", event.Err,
		)
	case event.Op == dictionary.OpLoad || event.Op == dictionary.OpSave:
		r.logger.Info(string(event.Op)+" completed",
			"count", event.Count,
		)
	default:
		r.logger.Debug(string(event.Op),
			"word", event.Word,
			"hit", event.Hit,
			"count", event.Count,
		)
	}
}
