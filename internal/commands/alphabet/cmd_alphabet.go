package alphabet

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bokysan/emojicode/internal/util/enc"
	"github.com/pkg/errors"
)

// Command prints the table of an alphabet: every byte value next to its symbol.
type Command struct {
	Alphabet   string `yaml:"alphabet"   short:"a" long:"alphabet"   env:"EMOJICODE_ALPHABET" description:"Alphabet to print (emoji, braille)" default:"emoji"`
	Columns    int    `yaml:"columns"    short:"n" long:"columns"                              description:"Number of symbols per line" default:"16"`
	Codepoints bool   `yaml:"codepoints" short:"u" long:"codepoints"                           description:"Print the codepoint (U+XXXX) next to each symbol"`

	stdout io.Writer
}

func NewCommand() *Command {
	return &Command{
		Alphabet: "emoji",
		Columns:  16,
		stdout:   os.Stdout,
	}
}

func (c *Command) String() string {
	return "Alphabet table"
}

// Print writes the table of the configured alphabet into out.
func (c *Command) Print(out io.Writer) error {
	codec, err := enc.AlphabetFromName(c.Alphabet)
	if err != nil {
		return err
	}
	columns := c.Columns
	if columns <= 0 || columns > enc.AlphabetSize {
		return errors.Errorf("Invalid number of columns: %d", c.Columns)
	}

	table := enc.Symbols(codec.Alphabet())
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "%v alphabet (code %v)\n", codec.Name(), string(codec.Code()))
	for i, r := range table {
		if c.Codepoints {
			fmt.Fprintf(sb, "%02x %c %-7U", i, r, r)
		} else {
			fmt.Fprintf(sb, "%02x %c", i, r)
		}
		if (i+1)%columns == 0 || i == len(table)-1 {
			sb.WriteString("\n")
		} else {
			sb.WriteString("  ")
		}
	}

	_, err = io.WriteString(out, sb.String())
	return errors.WithStack(err)
}

func (c *Command) Execute(args []string) error {
	return c.Print(c.stdout)
}
