package main

import (
	"fmt"
	"os"
	"path"

	"github.com/bokysan/emojicode/internal/args"
	"github.com/bokysan/emojicode/internal/commands/alphabet"
	"github.com/bokysan/emojicode/internal/commands/decode"
	"github.com/bokysan/emojicode/internal/commands/encode"
	"github.com/bokysan/emojicode/internal/commands/serve"
	"github.com/bokysan/emojicode/internal/commands/version"
	ecFlags "github.com/bokysan/emojicode/internal/flags"
	"github.com/bokysan/emojicode/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// EmojiCode is the main executable
type EmojiCode struct {
	parser *flags.Parser
}

// NewEmojiCode will create a new instance of EmojiCode and initialize the parser
func NewEmojiCode() *EmojiCode {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	ec := &EmojiCode{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	ec.setupGeneral()
	ec.setupVersion()
	ec.setupEncode()
	ec.setupDecode()
	ec.setupAlphabet()
	ec.setupServe()

	return ec
}

// setupGeneral will configure general options
func (ec *EmojiCode) setupGeneral() {
	if _, err := ec.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// setupVersion adds the `version` command
func (ec *EmojiCode) setupVersion() {
	cmd := &version.Command{}
	_, err := ec.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `encode` command
func (ec *EmojiCode) setupEncode() {
	cmd := encode.NewCommand()
	_, err := ec.parser.AddCommand(
		"encode",
		"Encode bytes into symbols",
		"Encode files (or stdin) into the symbols of an alphabet, one line per file",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupDecode adds the `decode` command
func (ec *EmojiCode) setupDecode() {
	cmd := decode.NewCommand()
	_, err := ec.parser.AddCommand(
		"decode",
		"Decode symbols into bytes",
		"Decode files (or stdin) encoded with one of the alphabets back into bytes",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupAlphabet adds the `alphabet` command
func (ec *EmojiCode) setupAlphabet() {
	cmd := alphabet.NewCommand()
	_, err := ec.parser.AddCommand(
		"alphabet",
		"Print an alphabet",
		"Print every byte value of an alphabet next to its symbol",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupServe adds the `serve` command
func (ec *EmojiCode) setupServe() {
	cmd := serve.NewCommand()
	_, err := ec.parser.AddCommand(
		"serve",
		"Run the server",
		"Run an HTTP server which encodes and decodes requests and websocket messages",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// main starts emojicode and reads the configuration file
func main() {

	emojiCode := NewEmojiCode()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			message := fmt.Sprintf("Configuration file %s does not exist.", file)
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: message,
			})
		}

		yamlParser := ecFlags.NewYamlParser(emojiCode.parser)

		args.General.ConfigurationFilePath = file
		return yamlParser.ParseFile(file)
	}

	_, err := emojiCode.parser.Parse()
	util.MustErrorNilOrExit(err)

}
