package util

import (
	"bou.ke/monkey"
	"errors"
	"github.com/bokysan/emojicode/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/jessevdk/go-flags"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"os"
	"sync"
	"testing"
)

// seqMutex makes sure that we are executing the code sequentially, as we are monkey-patching the code in-memory.
// This is not thread safe or safe in any kind of way
var seqMutex sync.Mutex

// patchExit replaces os.Exit with a function recording the exit code. Call the returned function to restore it.
func patchExit(exitCode *int) func() {
	seqMutex.Lock()
	*exitCode = -1
	patch := monkey.Patch(os.Exit, func(i int) {
		*exitCode = i
	})
	return func() {
		patch.Unpatch()
		seqMutex.Unlock()
	}
}

func Test_MustErrorNilOrExit_NilError(t *testing.T) {
	var exitCode int
	defer patchExit(&exitCode)()

	MustErrorNilOrExit(nil)

	require.Equal(t, -1, exitCode, "MustErrorNilOrExit existed the program and it shouldn't have done so.")
}

func Test_MustErrorNilOrExit_FlagsError(t *testing.T) {
	var exitCode int
	defer patchExit(&exitCode)()

	err := &flags.Error{
		Type:    flags.ErrShortNameTooLong,
		Message: "Short name too long",
	}

	MustErrorNilOrExit(err)

	require.Equal(t, int(flags.ErrShortNameTooLong), exitCode, "MustErrorNilOrExit did not return a proper exit code")
}

func Test_MustErrorNilOrExit_Help(t *testing.T) {
	var exitCode int
	defer patchExit(&exitCode)()

	MustErrorNilOrExit(&flags.Error{Type: flags.ErrHelp})

	require.Equal(t, 0, exitCode)
}

func Test_MustErrorNilOrExit_DecodeError(t *testing.T) {
	var exitCode int
	defer patchExit(&exitCode)()

	_, err := enc.Emoji.Decode("🚀x")
	var errs error
	errs = multierror.Append(errs, pkgerrors.New("unrelated"))
	errs = multierror.Append(errs, pkgerrors.Wrapf(err, "Could not decode %v", "stdin"))

	MustErrorNilOrExit(errs)

	require.Equal(t, ErrDecode, exitCode, "MustErrorNilOrExit did not return a proper exit code")
}

func Test_MustErrorNilOrExit_GenericError(t *testing.T) {
	var exitCode int
	defer patchExit(&exitCode)()

	err := errors.New("demo")

	MustErrorNilOrExit(err)

	require.Equal(t, int(ErrGeneric), exitCode, "MustErrorNilOrExit did not return a proper exit code")
}
