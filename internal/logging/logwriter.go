package logging

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ChiLogWriter passes the lines of chi's DefaultLogFormatter to logrus at debug level.
type ChiLogWriter struct {
}

func (lw *ChiLogWriter) Print(a ...interface{}) {
	msg := fmt.Sprint(a...)
	if len(msg) > 1 && msg[0] == '[' && msg[len(msg)-1] == ']' {
		msg = msg[1 : len(msg)-1]
	}
	logrus.Debug(msg)
}
