package runner

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/XertroV/tasks/todo_go/cmd"
	"github.com/XertroV/tasks/todo_go/internal/config"
	"github.com/XertroV/tasks/todo_go/internal/loader"
	"github.com/XertroV/tasks/todo_go/internal/models"
	"github.com/XertroV/tasks/todo_go/internal/parser"
	"github.com/XertroV/tasks/todo_go/internal/tasklist"
)

const bannerText = "Hello! What can I do for you today?"

type options struct {
	dataDir  string
	noSave   bool
	color    string
	logLevel string
	init     bool
}

// Run executes the CLI against the process's standard streams.
func Run(args ...string) error {
	return RunWithIO(os.Stdin, os.Stdout, os.Stderr, args...)
}

// RunWithIO executes the CLI with explicit streams.
func RunWithIO(stdin io.Reader, stdout, stderr io.Writer, args ...string) error {
	command := newCommand(stdin, stdout, stderr)
	command.SetArgs(args)
	return command.Execute()
}

func newCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	root := cmd.NewRootCommand()
	opts := &options{}

	command := &cobra.Command{
		Use:           root.Name() + " [command line]",
		Short:         "Track todos, deadlines and events",
		Long:          root.Usage(),
		Version:       root.Version(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			if opts.init {
				return initDataDir(opts.dataDir, stdout)
			}
			settings, err := resolveSettings(opts, c.Flags())
			if err != nil {
				return err
			}
			session, err := newSession(root, settings, stdout, stderr)
			if err != nil {
				return err
			}
			if len(args) > 0 {
				return session.runOnce(strings.Join(args, " "))
			}
			return session.run(NewLineSource(stdin))
		},
	}

	flags := command.Flags()
	// Everything after the first positional argument belongs to the command line.
	flags.SetInterspersed(false)
	flags.StringVar(&opts.dataDir, "data-dir", "", "directory holding tasks.yaml and config.yaml (created if missing)")
	flags.BoolVar(&opts.noSave, "no-save", false, "do not write changes back to the data directory")
	flags.StringVar(&opts.color, "color", "", "colour output: auto, always or never")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.BoolVar(&opts.init, "init", false, "create the data directory with a default config.yaml and exit")

	command.SetIn(stdin)
	command.SetOut(stdout)
	command.SetErr(stderr)
	return command
}

// initDataDir writes a default config.yaml into dataDir, or ./.tasks when
// dataDir is empty. An existing config.yaml is left alone.
func initDataDir(dataDir string, stdout io.Writer) error {
	if dataDir == "" {
		dataDir = config.TasksDir
	}
	path := config.ConfigFilePath(dataDir)
	if _, err := os.Stat(path); err == nil {
		_, err := fmt.Fprintf(stdout, "%s already exists\n", path)
		return err
	} else if !os.IsNotExist(err) {
		return err
	}

	defaults := config.Defaults()
	autoSave := defaults.AutoSave
	cfg := config.Config{
		AutoSave:  &autoSave,
		Color:     defaults.Color,
		LogLevel:  defaults.LogLevel,
		TasksFile: defaults.TasksFile,
	}
	if err := config.Save(dataDir, cfg); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	_, err := fmt.Fprintf(stdout, "Initialised %s\n", path)
	return err
}

// resolveSettings merges defaults, config.yaml and flags, in that order.
func resolveSettings(opts *options, flags *pflag.FlagSet) (config.Settings, error) {
	settings := config.Defaults()

	dataDir := opts.dataDir
	if dataDir != "" {
		if err := config.EnsureDataDir(dataDir); err != nil {
			return settings, err
		}
	} else {
		detected, err := config.DetectDataDir()
		var missing *config.MissingDataDirError
		switch {
		case err == nil:
			dataDir = detected
		case !errors.As(err, &missing):
			return settings, err
		}
	}

	if dataDir != "" {
		cfg, err := config.Load(dataDir)
		if err != nil {
			return settings, err
		}
		settings = settings.Apply(cfg)
	}
	settings.DataDir = dataDir

	if flags.Changed("no-save") {
		settings.AutoSave = !opts.noSave
	}
	if opts.color != "" {
		mode, err := normalizeColorMode(opts.color)
		if err != nil {
			return settings, err
		}
		settings.Color = mode
	}
	if opts.logLevel != "" {
		settings.LogLevel = opts.logLevel
	}
	return settings, settings.Validate()
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// session owns the parser, and through it the task list, for one run.
type session struct {
	root     *cmd.RootCommand
	settings config.Settings
	parser   *parser.Parser
	sink     LineSink
	styles   styles
	logger   *slog.Logger
	save     func(string, *tasklist.TaskList) error
}

func newSession(root *cmd.RootCommand, settings config.Settings, stdout, stderr io.Writer) (*session, error) {
	logger, err := newLogger(stderr, settings.LogLevel)
	if err != nil {
		return nil, err
	}

	list := tasklist.New()
	if settings.Persistent() {
		path := settings.TasksFilePath()
		list, err = loader.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load tasks: %w", err)
		}
		logger.Debug("loaded tasks", slog.String("path", path), slog.Int("count", list.Count()))
		if !settings.AutoSave {
			logger.Info("autosave disabled; changes will not be written", slog.String("path", path))
		}
	} else {
		logger.Warn("no .tasks directory found; tasks will not be saved (use --data-dir)")
	}

	return &session{
		root:     root,
		settings: settings,
		parser:   parser.New(list),
		sink:     NewLineSink(stdout),
		styles:   newStyles(stdout, settings.Color),
		logger:   logger,
		save:     loader.Save,
	}, nil
}

// run handles lines from source until bye or end of input.
func (s *session) run(source LineSource) error {
	if err := s.sink.WriteLine(s.styles.styleHeader(bannerText)); err != nil {
		return err
	}
	for {
		line, err := source.ReadLine()
		if errors.Is(err, io.EOF) {
			s.logger.Debug("input closed")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		outcome, err := s.handle(line)
		if err != nil {
			return err
		}
		if err := s.sink.WriteLine(s.format(outcome)); err != nil {
			return err
		}
		if outcome.Exit {
			return nil
		}
	}
}

// runOnce handles a single line. A failed command is returned as the error.
func (s *session) runOnce(line string) error {
	outcome, err := s.handle(line)
	if err != nil {
		return err
	}
	if outcome.Err != nil {
		return s.withCommandHint(line, outcome.Err)
	}
	return s.sink.WriteLine(s.format(outcome))
}

// withCommandHint lists the command words when the first word of an
// unrecognised line is not one of them.
func (s *session) withCommandHint(line string, err error) error {
	var unknown *models.UnrecognizedCommandError
	if !errors.As(err, &unknown) {
		return err
	}
	word := ""
	if fields := strings.Fields(line); len(fields) > 0 {
		word = fields[0]
	}
	if s.root.IsKnownCommand(word) {
		return err
	}
	return fmt.Errorf("%w (commands: %s)", err, strings.Join(s.root.Commands(), ", "))
}

// handle applies line and persists the list before the outcome is reported.
func (s *session) handle(line string) (parser.Outcome, error) {
	outcome := s.parser.Handle(line)
	attrs := []any{
		slog.String("input", line),
		slog.Bool("mutated", outcome.Mutated),
		slog.Bool("failed", outcome.Err != nil),
	}
	if outcome.Task != nil {
		attrs = append(attrs, slog.String("id", outcome.Task.ID().String()))
	}
	s.logger.Debug("handled command", attrs...)
	if outcome.Mutated {
		if err := s.persist(); err != nil {
			s.logger.Error("failed to save tasks", slog.String("error", err.Error()))
			return outcome, fmt.Errorf("failed to save tasks: %w", err)
		}
	}
	return outcome, nil
}

func (s *session) persist() error {
	if !s.settings.Persistent() || !s.settings.AutoSave {
		return nil
	}
	path := s.settings.TasksFilePath()
	if err := s.save(path, s.parser.List()); err != nil {
		return err
	}
	s.logger.Debug("saved tasks", slog.String("path", path), slog.Int("count", s.parser.List().Count()))
	return nil
}

func (s *session) format(outcome parser.Outcome) string {
	switch {
	case outcome.Err != nil:
		return s.styles.styleError(outcome.Message)
	case outcome.Exit:
		return s.styles.styleMuted(outcome.Message)
	case outcome.Mutated:
		return s.styles.styleSuccess(outcome.Message)
	default:
		return outcome.Message
	}
}
