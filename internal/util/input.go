package util

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// StdStream is the file name which stands for stdin (when reading) or stdout (when writing)
const StdStream = "-"

// Input is the content of one file given on the command line
type Input struct {
	Name string
	Data []byte
}

// ReadInputs reads all the given files. An empty list or "-" reads from stdin. Files which cannot be
// read are reported together, after all the others have been read.
func ReadInputs(files []string, stdin io.Reader) ([]Input, error) {
	if len(files) == 0 {
		files = []string{StdStream}
	}

	var errs error
	res := make([]Input, 0, len(files))
	for _, file := range files {
		var data []byte
		var err error
		if file == StdStream {
			file = "stdin"
			data, err = ioutil.ReadAll(stdin)
		} else {
			data, err = ioutil.ReadFile(file)
		}
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "Could not read %v", file))
			continue
		}
		res = append(res, Input{
			Name: file,
			Data: data,
		})
	}

	return res, errs
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

// OpenOutput opens the given file for writing, truncating it. "-" or an empty name returns stdout,
// which is not closed on Close().
func OpenOutput(file string, stdout io.Writer) (io.WriteCloser, error) {
	if file == "" || file == StdStream {
		return nopWriteCloser{stdout}, nil
	}
	f, err := os.OpenFile(file, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not open %v for writing", file)
	}
	return f, nil
}
