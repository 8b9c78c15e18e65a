package configs

import (
	"net"
	"strconv"
	"time"
)

// HTTP defines configuration for the dashboard server. Variables are read
// without a prefix so PORT works as on most PaaS hosts.
type HTTP struct {
	// Host is the bind address. The default listens on all interfaces.
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	// Port is the TCP port the HTTP server will listen on.
	Port uint16 `env:"PORT" envDefault:"8050"`
	// ShutdownTimeout bounds graceful shutdown after a termination signal.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Addr returns the host:port listen address.
func (c HTTP) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(int(c.Port)))
}
