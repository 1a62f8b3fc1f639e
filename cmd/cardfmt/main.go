// Command cardfmt replays card-form keystrokes and prints the canonical field values.
//
// Each input line is one edit event: a field name, a tab or space, and the raw content
// of the field after the edit. Blank lines and lines starting with '#' are skipped.
//
//	number 4111111111111111
//	expiry 1
//	expiry 13
//	name   John123 Doe!!
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/baditaflorin/go_card_input/internal/adapters/logger"
	"github.com/baditaflorin/go_card_input/internal/ports"
	"github.com/baditaflorin/go_card_input/pkg/form"
)

// Default configuration
const (
	DefaultOutput        = "text"
	DefaultSubmitTimeout = 10 * time.Second
	maxLineSize          = 64 * 1024
)

type options struct {
	input    string
	output   string
	unicode  bool
	validate bool
	submit   bool
	decline  bool
	verbose  bool
}

// event is one line of JSON output.
type event struct {
	Line  int    `json:"line"`
	Field string `json:"field"`
	Raw   string `json:"raw"`
	Value string `json:"value"`
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	in := io.Reader(os.Stdin)
	if opts.input != "" && opts.input != "-" {
		f, err := os.Open(opts.input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	ctx, cancel := context.WithTimeout(context.Background(), DefaultSubmitTimeout)
	defer cancel()

	if err := run(ctx, opts, in, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}
}

func parseFlags(args []string, errOut io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("cardfmt", flag.ContinueOnError)
	fs.SetOutput(errOut)

	fs.StringVar(&opts.input, "input", "", "Keystroke script to replay (default stdin)")
	fs.StringVar(&opts.output, "output", DefaultOutput, "Output format: 'text' or 'json'")
	fs.BoolVar(&opts.unicode, "unicode", false, "Fold fullwidth digits and accented letters to ASCII")
	fs.BoolVar(&opts.validate, "validate", false, "Fail unless the final record is complete")
	fs.BoolVar(&opts.submit, "submit", false, "Submit the final record to the in-process payment stub")
	fs.BoolVar(&opts.decline, "decline", false, "Make the payment stub decline the submission")
	fs.BoolVar(&opts.verbose, "verbose", false, "Log every keystroke (masked) to stderr")

	fs.Usage = func() {
		fmt.Fprintf(errOut, "Usage: cardfmt [options] < keystrokes.txt\n")
		fmt.Fprintf(errOut, "\nOptions:\n")
		fs.PrintDefaults()
		fmt.Fprintf(errOut, "\nFields: number, name, expiry, cvc (or CardNumber, NameOnCard, ExpiryDate, SecurityCode)\n")
		fmt.Fprintf(errOut, "\nExamples:\n")
		fmt.Fprintf(errOut, "  printf 'expiry 1\\nexpiry 13\\nexpiry 12\\n' | cardfmt\n")
		fmt.Fprintf(errOut, "  cardfmt -input session.txt -output json -validate\n")
		fmt.Fprintf(errOut, "  cardfmt -input session.txt -submit -verbose\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if opts.output != "text" && opts.output != "json" {
		err := fmt.Errorf("invalid output format: %s. Must be 'text' or 'json'", opts.output)
		fmt.Fprintln(errOut, err)
		fs.Usage()
		return opts, err
	}
	return opts, nil
}

func newLogger(verbose bool, errOut io.Writer) (ports.Logger, error) {
	if !verbose {
		return logger.NewNopLogger(), nil
	}
	cfg := logger.DefaultConfig()
	cfg.Output = errOut
	cfg.AsyncWrite = false
	return logger.NewCustomStdLogger(cfg)
}

// run replays the script from in through a fresh form.
func run(ctx context.Context, opts options, in io.Reader, out, errOut io.Writer) error {
	log, err := newLogger(opts.verbose, errOut)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	formOpts := []form.Option{form.WithPortLogger(log)}
	if opts.unicode {
		formOpts = append(formOpts, form.WithUnicodeFolding())
	}
	f, err := form.New(formOpts...)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(out)
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}

		name, raw := splitEvent(line)
		kind, err := form.ParseFieldKind(name)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}

		value := f.Apply(kind, raw)
		if opts.output == "json" {
			if err := enc.Encode(event{Line: lineNo, Field: kind.String(), Raw: raw, Value: value}); err != nil {
				return err
			}
		} else {
			fmt.Fprintf(out, "%-12s %s\n", kind.String(), value)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	if opts.validate || opts.submit {
		if err := f.Validate(); err != nil {
			printValidationErrors(errOut, err)
			return err
		}
	}

	if opts.submit {
		receipt, err := f.Submit(ctx, form.NewStubSubmitter(!opts.decline))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "approved %s\n", receipt.Reference)
	}

	return nil
}

// splitEvent separates the field name from the raw value. The separator is the first
// run of tabs and spaces; anything after it, inner spaces included, is the raw value.
func splitEvent(line string) (string, string) {
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimLeft(line[i:], " \t")
}

func printValidationErrors(w io.Writer, err error) {
	var verrs form.ValidationErrors
	if !errors.As(err, &verrs) {
		return
	}
	for _, e := range verrs {
		fmt.Fprintf(w, "  %s\n", e.Error())
	}
}
