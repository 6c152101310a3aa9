package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/PolyglAI/PolyglAI/pkg/config"
	"github.com/PolyglAI/PolyglAI/pkg/infra/prometheus"
	"github.com/PolyglAI/PolyglAI/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	ConsoleServerDI struct {
		Config  *config.Config
		Logger  *logrus.Logger
		Routers []router.ServerRouter
	}
	ConsoleServer struct {
		*BaseServer
	}
)

// NewConsoleServer serves the learner dashboard and admin console API.
func NewConsoleServer(di ConsoleServerDI) *ConsoleServer {
	if di.Config.Metrics.Enabled {
		prometheus.Initialize(prometheus.MetricsConfig{
			EnableLatency:  di.Config.Metrics.EnableLatency,
			EnableRequests: di.Config.Metrics.EnableRequests,
		})
	}
	return &ConsoleServer{
		BaseServer: NewBaseServer(di.Config, di.Logger).WithRouters(di.Routers...),
	}
}

func (s *ConsoleServer) Run() error {
	s.setupMetricsEndpoint()
	addr := fmt.Sprintf("%s:%d", s.Config.Server.Host, s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("starting console server")
	return s.Router.Listen(addr)
}

func (s *ConsoleServer) Shutdown() error {
	timeout := s.Config.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return errors.Join(
		s.Router.ShutdownWithTimeout(timeout),
		s.shutdownMetrics(),
	)
}
