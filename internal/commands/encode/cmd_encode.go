package encode

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bokysan/emojicode/internal/logging"
	"github.com/bokysan/emojicode/internal/util"
	"github.com/bokysan/emojicode/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command encodes files (or stdin) into the symbols of an alphabet, one line per input.
type Command struct {
	Alphabet    string `yaml:"alphabet"     short:"a" long:"alphabet"     env:"EMOJICODE_ALPHABET"     description:"Alphabet to encode into (emoji, braille)" default:"emoji"`
	InputFormat string `yaml:"input-format" short:"i" long:"input-format" env:"EMOJICODE_INPUT_FORMAT" description:"Format of the input: raw, hex, base32, base64, base64u, base85, base91, base128 or another alphabet" default:"raw"`
	Output      string `yaml:"output"       short:"o" long:"output"                                    description:"Output file. Defaults to stdout." default:"-"`

	stdin  io.Reader
	stdout io.Writer
}

func NewCommand() *Command {
	return &Command{
		Alphabet:    "emoji",
		InputFormat: "raw",
		Output:      util.StdStream,
		stdin:       os.Stdin,
		stdout:      os.Stdout,
	}
}

func (c *Command) String() string {
	return fmt.Sprintf("encode(alphabet=%v, input-format=%v)", c.Alphabet, c.InputFormat)
}

// Run encodes every input and writes the result into out. Inputs which fail are skipped and
// reported together at the end.
func (c *Command) Run(inputs []util.Input, out io.Writer) error {
	codec, err := enc.AlphabetFromName(c.Alphabet)
	if err != nil {
		return err
	}
	format, err := enc.FromName(c.InputFormat)
	if err != nil {
		return err
	}

	var errs error
	for _, input := range inputs {
		data := input.Data
		if format != enc.RawEncoding {
			text := string(data)
			if _, ok := format.(*enc.Codec); ok {
				// Alphabets are strict, strip the line ending added by encode
				text = strings.TrimRight(text, "\r\n")
			}
			if data, err = format.Decode(text); err != nil {
				errs = multierror.Append(errs, errors.Wrapf(err, "Could not read %v as %v", input.Name, format.Name()))
				continue
			}
		}

		log.Debugf("Encoding %v: %d bytes into %d bytes of %v", input.Name, len(data), codec.EncodedLen(data), codec)
		if _, err := io.WriteString(out, codec.Encode(data)+"\n"); err != nil {
			return errors.WithStack(err)
		}
	}
	return errs
}

func (c *Command) Execute(args []string) error {
	if err := logging.SetupLogging(); err != nil {
		return err
	}

	inputs, readErrs := util.ReadInputs(args, c.stdin)

	out, err := util.OpenOutput(c.Output, c.stdout)
	if err != nil {
		return err
	}
	defer func() {
		if err := out.Close(); err != nil {
			log.WithError(err).Errorf("Could not close %v: %v", c.Output, err)
		}
	}()

	if err := c.Run(inputs, out); err != nil {
		return multierror.Append(readErrs, err)
	}
	return readErrs
}
