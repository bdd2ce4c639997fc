package serve

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bokysan/emojicode/internal/logging"
	"github.com/bokysan/emojicode/internal/server"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Command struct {
	Listen            string `yaml:"listen"            short:"L" long:"listen"             env:"EMOJICODE_LISTEN"             description:"Address to listen on" default:"127.0.0.1:8256"`
	EnableCompression bool   `yaml:"enable-compression" short:"z" long:"enable-compression" env:"EMOJICODE_ENABLE_COMPRESSION" description:"Negotiate per message compression on websocket connections"`
	MaxBodySize       int64  `yaml:"max-body-size"     short:"m" long:"max-body-size"      env:"EMOJICODE_MAX_BODY_SIZE"      description:"Maximum size of a request body or websocket message, in bytes" default:"1048576"`
}

func NewCommand() *Command {
	return &Command{
		Listen:      "127.0.0.1:8256",
		MaxBodySize: server.DefaultMaxBodySize,
	}
}

func (s *Command) Execute(args []string) error {
	if err := logging.SetupLogging(); err != nil {
		return err
	}

	if s.MaxBodySize <= 0 {
		return errors.Errorf("Invalid maximum body size: %d. It must be at least one byte.", s.MaxBodySize)
	}

	srv := server.NewHttpServer(s.Listen)
	srv.EnableCompression = s.EnableCompression
	srv.MaxBodySize = s.MaxBodySize

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	if err := srv.Startup(); err != nil {
		return err
	}

	<-interrupted
	log.Infof("Graceful server shutdown...")
	return srv.Shutdown()
}
