// lookupgen renders the reverse lookup of an alphabet as a switch statement, so that decoding
// does not need to build a lookup table at run time.
//
//	go run ./internal/tools/lookupgen -alphabet emoji -out internal/util/enc/emoji_lookup_gen.go
package main

import (
	"bytes"
	"flag"
	"io/ioutil"
	"strings"

	"github.com/bokysan/emojicode/internal/util/enc"
	"github.com/dave/jennifer/jen"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const generatedHeader = "Code generated by lookupgen. DO NOT EDIT."

// target describes what is generated for one of the built-in alphabets.
type target struct {
	pkg      string
	funcName string
	table    func() enc.Table
}

var targets = map[string]target{
	"emoji": {
		pkg:      "enc",
		funcName: "emojiIndex",
		table:    enc.EmojiTable,
	},
}

// Generate creates the source of a function `func <funcName>(r rune) (byte, bool)` which resolves
// every symbol of the table to its position.
func Generate(pkg, funcName string, table *enc.Table) *jen.File {
	f := jen.NewFile(pkg)
	f.HeaderComment(generatedHeader)

	cases := make([]jen.Code, 0, len(table))
	for i, r := range table {
		cases = append(cases, jen.Case(jen.LitRune(r)).Block(
			jen.Return(jen.Lit(i), jen.True()),
		))
	}

	f.Commentf("%s resolves a symbol of the %s alphabet to its byte value.", funcName, alphabetTitle(funcName))
	f.Func().Id(funcName).Params(jen.Id("r").Rune()).Params(jen.Byte(), jen.Bool()).Block(
		jen.Switch(jen.Id("r")).Block(cases...),
		jen.Return(jen.Lit(0), jen.False()),
	)
	return f
}

// alphabetTitle turns "emojiIndex" into "Emoji".
func alphabetTitle(funcName string) string {
	name := strings.TrimSuffix(funcName, "Index")
	if name == "" {
		return funcName
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// VerifyFileOnDisk renders the file and compares it with the existing file.
func VerifyFileOnDisk(fullPath string, file *jen.File) error {
	existing, err := ioutil.ReadFile(fullPath)
	if err != nil {
		return errors.Wrapf(err, "missing file on disk: %s", fullPath)
	}

	var buf bytes.Buffer
	if err := file.Render(&buf); err != nil {
		return errors.Wrapf(err, "render error for '%s'", fullPath)
	}

	if !bytes.Equal(existing, buf.Bytes()) {
		return errors.Errorf("'%s' has changed, run go generate", fullPath)
	}
	return nil
}

func run(alphabet, out string, verify bool) error {
	t, ok := targets[strings.ToLower(alphabet)]
	if !ok {
		return errors.Errorf("No generator for alphabet '%s'", alphabet)
	}
	if out == "" {
		return errors.Errorf("Output file not specified")
	}

	table := t.table()
	file := Generate(t.pkg, t.funcName, &table)

	if verify {
		if err := VerifyFileOnDisk(out, file); err != nil {
			return err
		}
		log.Infof("%s OK", out)
		return nil
	}

	if err := file.Save(out); err != nil {
		return errors.Wrapf(err, "failed to save file to '%s'", out)
	}
	log.Infof("saved '%s'", out)
	return nil
}

func main() {
	var alphabet, out string
	var verify bool

	flag.StringVar(&alphabet, "alphabet", "emoji", "Alphabet to generate the lookup for")
	flag.StringVar(&out, "out", "", "Output file")
	flag.BoolVar(&verify, "verify", false, "ensure that the generated file is up to date")
	flag.Parse()

	if err := run(alphabet, out, verify); err != nil {
		log.Fatalf("%+v", err)
	}
}
