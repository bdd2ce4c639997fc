package decode

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

// Command decodes text encoded with one of the alphabets back into bytes.
type Command struct {
	Alphabet     string `yaml:"alphabet"      short:"a" long:"alphabet"      env:"EMOJICODE_ALPHABET"      description:"Alphabet the input is encoded in (emoji, braille)" default:"emoji"`
	OutputFormat string `yaml:"output-format" short:"t" long:"output-format" env:"EMOJICODE_OUTPUT_FORMAT" description:"Format of the output: raw, hex, base32, base64, base64u, base85, base91, base128 or another alphabet" default:"raw"`
	Output       string `yaml:"output"        short:"o" long:"output"                                      description:"Output file. Defaults to stdout." default:"-"`

	stdin  io.Reader
	stdout io.Writer
}

func NewCommand() *Command {
	return &Command{
		Alphabet:     "emoji",
		OutputFormat: "raw",
		Output:       util.StdStream,
		stdin:        os.Stdin,
		stdout:       os.Stdout,
	}
}

func (c *Command) String() string {
	return fmt.Sprintf("decode(alphabet=%v, output-format=%v)", c.Alphabet, c.OutputFormat)
}

// Run decodes every input and writes the result into out. Raw output is written as-is, other
// formats are written one line per input.
func (c *Command) Run(inputs []util.Input, out io.Writer) error {
	codec, err := enc.AlphabetFromName(c.Alphabet)
	if err != nil {
		return err
	}
	format, err := enc.FromName(c.OutputFormat)
	if err != nil {
		return err
	}

	var errs error
	for _, input := range inputs {
		text := strings.TrimRight(string(input.Data), "\r\n")
		data, err := codec.Decode(text)
		if err != nil {
			if de, ok := enc.AsDecodeError(err); ok {
				log.WithFields(log.Fields{
					"input":     input.Name,
					"codepoint": fmt.Sprintf("%U", de.Codepoint),
					"index":     de.Index,
				}).Debugf("Invalid symbol")
			}
			errs = multierror.Append(errs, errors.Wrapf(err, "Could not decode %v", input.Name))
			continue
		}

		var res string
		if format == enc.RawEncoding {
			res = string(data)
		} else {
			res = format.Encode(data) + "\n"
		}
		if _, err := io.WriteString(out, res); err != nil {
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
