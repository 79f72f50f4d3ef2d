// Command proofread fixes spelling and punctuation of a text using an
// OpenAI-compatible chat completion endpoint.
//
// Usage:
//
//	proofread -t "Привет как дела"
//	echo "Привет как дела" | proofread
//	proofread --diff < draft.txt
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/germanamz/proofread/pkg/config"
	"github.com/germanamz/proofread/pkg/diff"
	"github.com/germanamz/proofread/pkg/input"
	"github.com/germanamz/proofread/pkg/providers/openai"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.Getenv)

	cancel()
	os.Exit(code)
}

// options holds the parsed command-line flags.
type options struct {
	text        string
	model       string
	temperature float64
	envFile     string
	configPath  string
	diff        bool
	verbose     bool

	set map[string]bool // Flags given explicitly, by canonical name.
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options

	fs := flag.NewFlagSet("proofread", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: proofread [flags]\n\nFix spelling and punctuation of text given with -t or read from stdin.\n\nFlags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nEnvironment:\n  %s  API key (required)\n  %s    default model\n  %s base URL of the API\n",
			config.EnvAPIKey, config.EnvModel, config.EnvBaseURL)
	}

	fs.StringVar(&o.text, "t", "", "text to correct (shorthand)")
	fs.StringVar(&o.text, "text", "", "text to correct; read from stdin when empty")
	fs.StringVar(&o.model, "m", "", "model (shorthand)")
	fs.StringVar(&o.model, "model", "", "model name (default: $"+config.EnvModel+" or "+config.DefaultModel+")")
	fs.Float64Var(&o.temperature, "temperature", 0, "sampling temperature")
	fs.StringVar(&o.envFile, "env", ".env", "path to .env file (ignored if missing)")
	fs.StringVar(&o.configPath, "config", "", "path to YAML configuration file")
	fs.BoolVar(&o.diff, "diff", false, "print a unified diff instead of the corrected text")
	fs.BoolVar(&o.verbose, "v", false, "verbose (shorthand)")
	fs.BoolVar(&o.verbose, "verbose", false, "log request details to stderr")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if fs.NArg() > 0 {
		fs.Usage()
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	o.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "m":
			o.set["model"] = true
		default:
			o.set[f.Name] = true
		}
	})

	return o, nil
}

// run executes one invocation and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if err := correct(ctx, opts, stdin, stdout, getenv, log); err != nil {
		fmt.Fprintln(stderr, describe(err))
		return 1
	}

	return 0
}

func correct(ctx context.Context, opts options, stdin io.Reader, stdout io.Writer, getenv func(string) string, log *slog.Logger) error {
	if err := config.LoadDotEnv(opts.envFile); err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath, getenv)
	if err != nil {
		return err
	}

	if opts.set["model"] && opts.model != "" {
		cfg.Model = opts.model
	}
	if opts.set["temperature"] {
		cfg.Temperature = opts.temperature
	}

	text, err := input.Require(opts.text, stdin)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	adapter := openai.New(cfg.BaseURL, cfg.APIKey, cfg.Model)
	adapter.Temperature = cfg.Temperature
	adapter.Timeout = cfg.Timeout
	adapter.Logger = log

	log.Debug("correcting text", "model", cfg.Model, "temperature", cfg.Temperature, "chars", len([]rune(text)))

	res, err := adapter.Correct(ctx, text)
	if err != nil {
		return err
	}

	if opts.diff {
		return diff.NewPrinter(stdout).Print(text, res.Text)
	}

	_, err = fmt.Fprintln(stdout, res.Text)
	return err
}
