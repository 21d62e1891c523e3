package natsconn

import (
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/taskforge/backend/internal/config"
)

// Connect dials the NATS server and returns the shared connection used by
// every publisher and subscriber in the process.
func Connect(cfg config.NATSConfig, appName string, logger *zap.Logger) (*nats.Conn, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	nc, err := nats.Connect(cfg.URL,
		nats.Name(appName),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("nats disconnected", zap.Error(err))
		}),
		nats.ReconnectHandler(func(conn *nats.Conn) {
			logger.Info("nats reconnected", zap.String("url", conn.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, err
	}

	logger.Info("connected to nats", zap.String("url", nc.ConnectedUrl()))
	return nc, nil
}

// Drain flushes in-flight messages and closes the connection. Safe to call on
// an already closed connection.
func Drain(nc *nats.Conn, logger *zap.Logger) error {
	if nc == nil || nc.IsClosed() {
		return nil
	}
	err := nc.Drain()
	if err == nil && logger != nil {
		logger.Info("nats connection drained")
	}
	return err
}
