package util

import (
	"github.com/bokysan/emojicode/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
)

const (
	// ErrDecode is the exit code when the input is not part of the alphabet (EX_DATAERR)
	ErrDecode  = 65
	ErrGeneric = 99
)

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. If it's
// not `nil`, it will log the error as `log.FatalLevel` and exit immediately with provided error code.
// Error code is unwrapped from `flags.Error` object. Input which could not be decoded exits with
// ErrDecode. If it's a different kind of error, a generic error code - 99 - is returned
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	var flagsError *flags.Error
	if errors.As(err, &flagsError) {
		if flagsError.Type == flags.ErrHelp {
			os.Exit(0)
			return
		}

		log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
		log.Exit(int(flagsError.Type))
	} else if isDecodeError(err) {
		log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %v", err)
		log.Exit(ErrDecode)
	} else {
		log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
		log.Exit(ErrGeneric)
	}
}

// isDecodeError looks for a DecodeError in the error chain, including every error of a multierror.
func isDecodeError(err error) bool {
	if merr, ok := err.(*multierror.Error); ok {
		for _, e := range merr.Errors {
			if isDecodeError(e) {
				return true
			}
		}
		return false
	}
	_, ok := enc.AsDecodeError(err)
	return ok
}
