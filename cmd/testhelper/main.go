package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	elasticemail "github.com/elasticemail/client-go"
)

// Config holds the streams the helper reads from and writes to.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultConfig uses the process streams.
func DefaultConfig() *Config {
	return &Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// ClientInterface is the part of the client the helper uses.
type ClientInterface interface {
	Email() elasticemail.EmailService
	Segment() elasticemail.SegmentService
	Contact() elasticemail.ContactService
}

// settings are the parsed command line options.
type settings struct {
	configFile string
	envFile    string
	format     string
	verbose    bool
	noColor    bool
	dump       bool
	attach     []string
	history    bool
	statuses   []string
	search     string
	limit      int
	timeout    time.Duration
}

// clientFactory creates the client; tests replace it.
var clientFactory = defaultClientFactory

const usageText = `Usage: testhelper [options] command [args]

Commands:
  send                  send the SendRequest JSON read from stdin
  status <messageID>    print the status of a message
  job-status <txID>     print the status of a send batch
  view <messageID>      print the content of a message
  segments              list segments
  blocked               list blocked contacts

Options:
`

func newFlagSet(s *settings, stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("testhelper", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&s.configFile, "config", "c", "", "read settings from this YAML file instead of the environment")
	fs.StringVar(&s.envFile, "env", ".env", "dotenv file loaded before reading ELASTICEMAIL_* variables")
	fs.StringVarP(&s.format, "format", "f", "", "response format, json or xml")
	fs.BoolVarP(&s.verbose, "verbose", "v", false, "log every request to stderr")
	fs.BoolVar(&s.noColor, "no-color", false, "do not colorize log output")
	fs.BoolVar(&s.dump, "dump", false, "print results with spew instead of JSON")
	fs.StringArrayVarP(&s.attach, "attach", "a", nil, "file to attach (send only, repeatable)")
	fs.BoolVar(&s.history, "history", false, "include segment history (segments only)")
	fs.StringSliceVar(&s.statuses, "status", nil, "contact statuses to include, by name (blocked only)")
	fs.StringVar(&s.search, "search", "", "address filter (blocked only)")
	fs.IntVar(&s.limit, "limit", 0, "maximum results (blocked only)")
	fs.DurationVar(&s.timeout, "timeout", 60*time.Second, "overall deadline")
	fs.Usage = func() {
		fmt.Fprint(stderr, usageText)
		fs.PrintDefaults()
	}
	return fs
}

func run(args []string, cfg *Config) error {
	if cfg.Stderr == nil {
		cfg.Stderr = io.Discard
	}

	var s settings
	fs := newFlagSet(&s, cfg.Stderr)
	if len(args) > 0 {
		args = args[1:]
	}
	if err := fs.Parse(args); errors.Is(err, pflag.ErrHelp) {
		return nil
	} else if err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return errors.New("usage: testhelper [options] command [args]")
	}

	client, err := clientFactory(s, cfg.Stderr)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	cmd := fs.Args()
	switch cmd[0] {
	case "send":
		return runSend(ctx, client, cfg, s)
	case "status":
		if len(cmd) < 2 {
			return errors.New("usage: testhelper status <messageID>")
		}
		return runStatus(ctx, client, cfg, s, cmd[1])
	case "job-status":
		if len(cmd) < 2 {
			return errors.New("usage: testhelper job-status <transactionID>")
		}
		return runJobStatus(ctx, client, cfg, s, cmd[1])
	case "view":
		if len(cmd) < 2 {
			return errors.New("usage: testhelper view <messageID>")
		}
		return runView(ctx, client, cfg, s, cmd[1])
	case "segments":
		return runSegments(ctx, client, cfg, s)
	case "blocked":
		return runBlocked(ctx, client, cfg, s)
	default:
		return fmt.Errorf("unknown command: %s", cmd[0])
	}
}

func defaultClientFactory(s settings, stderr io.Writer) (ClientInterface, error) {
	var (
		ecfg *elasticemail.Config
		err  error
	)
	if s.configFile != "" {
		ecfg, err = elasticemail.LoadConfig(s.configFile)
	} else {
		ecfg, err = elasticemail.ConfigFromEnv(s.envFile)
	}
	if err != nil {
		return nil, err
	}

	var opts []elasticemail.Option
	if s.format != "" {
		opts = append(opts, elasticemail.WithFormat(elasticemail.Format(s.format)))
	}
	if s.verbose {
		noColor := s.noColor
		if f, ok := stderr.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
			noColor = true
		}
		out := zerolog.ConsoleWriter{
			Out:        stderr,
			TimeFormat: "2006-01-02 15:04:05.999",
			NoColor:    noColor,
		}
		opts = append(opts, elasticemail.WithLogger(zerolog.New(out).With().Timestamp().Logger()))
	}
	return elasticemail.NewFromConfig(ecfg, opts...)
}

func runSend(ctx context.Context, client ClientInterface, cfg *Config, s settings) error {
	data, err := io.ReadAll(cfg.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	var req elasticemail.SendRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("parse request: %w", err)
	}

	for _, path := range s.attach {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read attachment: %w", err)
		}
		req.Attachments = append(req.Attachments, elasticemail.File{Name: filepath.Base(path), Content: content})
	}

	res, err := client.Email().Send(ctx, &req)
	if err != nil {
		return fmt.Errorf("send: %w", err)
	}
	return output(cfg.Stdout, s, res)
}

func runStatus(ctx context.Context, client ClientInterface, cfg *Config, s settings, messageID string) error {
	res, err := client.Email().Status(ctx, messageID)
	if err != nil {
		return fmt.Errorf("status: %w", err)
	}
	return output(cfg.Stdout, s, res)
}

func runJobStatus(ctx context.Context, client ClientInterface, cfg *Config, s settings, transactionID string) error {
	res, err := client.Email().GetStatus(ctx, transactionID, elasticemail.GetStatusOptions{
		ShowFailed:     true,
		ShowSent:       true,
		ShowDelivered:  true,
		ShowPending:    true,
		ShowErrors:     true,
		ShowMessageIDs: true,
	})
	if err != nil {
		return fmt.Errorf("job status: %w", err)
	}
	return output(cfg.Stdout, s, res)
}

func runView(ctx context.Context, client ClientInterface, cfg *Config, s settings, messageID string) error {
	res, err := client.Email().View(ctx, messageID)
	if err != nil {
		return fmt.Errorf("view: %w", err)
	}
	return output(cfg.Stdout, s, res)
}

func runSegments(ctx context.Context, client ClientInterface, cfg *Config, s settings) error {
	res, err := client.Segment().List(ctx, elasticemail.ListSegmentsOptions{IncludeHistory: s.history})
	if err != nil {
		return fmt.Errorf("list segments: %w", err)
	}
	return output(cfg.Stdout, s, res)
}

func runBlocked(ctx context.Context, client ClientInterface, cfg *Config, s settings) error {
	opts := elasticemail.LoadBlockedOptions{Search: s.search, Limit: s.limit}
	for _, name := range s.statuses {
		st, err := elasticemail.ParseContactStatus(name)
		if err != nil {
			return err
		}
		opts.Statuses = append(opts.Statuses, st)
	}

	res, err := client.Contact().LoadBlocked(ctx, opts)
	if err != nil {
		return fmt.Errorf("load blocked: %w", err)
	}
	return output(cfg.Stdout, s, res)
}

func output(w io.Writer, s settings, v any) error {
	if s.dump {
		_, err := io.WriteString(w, spew.Sdump(v))
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
