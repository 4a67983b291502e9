package logger

import (
	"SocialPulse/internal/api/config"
	"io"
	log "log/slog"
	"net"
	"os"
)

var LogWriter io.Writer

// InitLogger 初始化全局 slog。
// 配置了日志收集地址时同时写入远端，否则仅写 stdout。
func InitLogger() {
	cfg := config.Cfg.Log

	hStdout := log.NewJSONHandler(os.Stdout, &log.HandlerOptions{Level: log.LevelInfo})

	var finalHandler log.Handler = hStdout
	LogWriter = os.Stdout

	if cfg.CollectorAddr != "" {
		conn, err := net.Dial("tcp", cfg.CollectorAddr)
		if err == nil {
			hRemote := log.NewJSONHandler(conn, &log.HandlerOptions{Level: log.LevelInfo}).
				WithAttrs([]log.Attr{
					log.String("target_index", cfg.Index),
				})

			finalHandler = &TeeHandler{
				handlers: []log.Handler{hStdout, hRemote},
			}

			LogWriter = conn
		} else {
			log.Warn("Failed to connect to log collector, logging to stdout only", "err", err)
		}
	}

	logger := log.New(&ContextHandler{finalHandler})
	log.SetDefault(logger)
}
