package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/uhppoted/uhppoted-app-metadata/keywords"
)

var KeywordsCmd = Keywords{
	max:    0,
	file:   "",
	html:   false,
	counts: false,
	out:    os.Stdout,
	in:     os.Stdin,
}

type Keywords struct {
	max    int
	file   string
	html   bool
	counts bool
	args   []string
	out    io.Writer
	in     io.Reader
}

func (cmd *Keywords) Name() string {
	return "keywords"
}

func (cmd *Keywords) Description() string {
	return "Extracts the most frequent keywords from a dataset summary"
}

func (cmd *Keywords) Usage() string {
	return "[--max <N>] [--file <file>] [text]"
}

func (cmd *Keywords) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--config <file>] keywords [options] [text]\n", APP)
	fmt.Println()
	fmt.Println("  Extracts the most frequent words in a summary, ignoring Spanish stop words. The summary")
	fmt.Println("  is read from the command line, the --file option or stdin (in that order).")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf("    %s keywords --max 3 \"El río Amazonas es el río más grande del mundo.\"\n", APP)
	fmt.Printf("    %s keywords --counts --file resumen.txt\n", APP)
	fmt.Println()
}

func (cmd *Keywords) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("keywords", flag.ExitOnError)

	flagset.IntVar(&cmd.max, "max", cmd.max, "Maximum number of keywords. Defaults to the configured keywords.max")
	flagset.StringVar(&cmd.file, "file", cmd.file, "File containing the summary text")
	flagset.BoolVar(&cmd.html, "html", cmd.html, "Strips HTML markup from the summary")
	flagset.BoolVar(&cmd.counts, "counts", cmd.counts, "Lists the keywords with their frequency, one per line")

	return flagset
}

// ParseCmd parses the command line flags and keeps any remaining arguments as the summary text.
func (cmd *Keywords) ParseCmd(args ...string) error {
	flagset := cmd.FlagSet()
	if err := flagset.Parse(args); err != nil {
		return err
	}

	cmd.args = flagset.Args()

	return nil
}

func (cmd *Keywords) Execute(args ...any) error {
	_, options := unpack(args...)

	c := command{}
	cfg, err := c.configure(options)
	if err != nil {
		return err
	}

	text, err := cmd.read(cmd.args)
	if err != nil {
		return err
	}

	if cmd.html {
		text = keywords.Plaintext(text)
	}

	max := cmd.max
	if max <= 0 {
		max = cfg.Keywords.Max
	}

	x := extractor(cfg)

	if !cmd.counts {
		_, err := fmt.Fprintln(cmd.out, keywords.Join(x.Extract(text, max)))
		return err
	}

	ranked := x.Rank(text)
	if len(ranked) > max {
		ranked = ranked[:max]
	}

	for _, k := range ranked {
		if _, err := fmt.Fprintf(cmd.out, "%v\t%d\n", k.Word, k.Count); err != nil {
			return err
		}
	}

	return nil
}

func (cmd *Keywords) read(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if strings.TrimSpace(cmd.file) != "" {
		b, err := os.ReadFile(cmd.file)
		if err != nil {
			return "", err
		}

		return string(b), nil
	}

	b, err := io.ReadAll(cmd.in)
	if err != nil {
		return "", err
	}

	return string(b), nil
}
