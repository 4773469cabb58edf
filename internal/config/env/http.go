package env

import (
	"net"
	"os"

	"frogcasino_backend/internal/config"
)

const (
	httpHostName = "HTTP_HOST"
	httpPortName = "HTTP_PORT"
)

type httpConfig struct {
	host string
	port string
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	host := os.Getenv(httpHostName)

	port := os.Getenv(httpPortName)
	if len(port) == 0 {
		port = "8080"
	}

	return &httpConfig{
		host: host,
		port: port,
	}, nil
}

func (cfg *httpConfig) Address() string {
	return net.JoinHostPort(cfg.host, cfg.port)
}
