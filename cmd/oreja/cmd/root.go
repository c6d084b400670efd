package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"oreja/cmd/oreja/cmd/version"
	"oreja/internal/app/classifier"
	"oreja/internal/app/config"
	apperrors "oreja/internal/app/errors"
	"oreja/internal/app/logging"
	"oreja/internal/app/model"
	"oreja/internal/app/runner"
	envconfig "oreja/internal/config"
)

// RunnerFactory builds the runner once the input has been classified.
type RunnerFactory func(settings *config.Settings, apiKey string, out io.Writer, logger *zap.Logger) *runner.Runner

type options struct {
	output     string
	voice      string
	configPath string
	verbose    bool
}

// NewRootCmd returns the oreja command. newRunner is only called after the
// input is classified, so usage errors never depend on an API key.
func NewRootCmd(newRunner RunnerFactory) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "oreja <input>",
		Short: "Record, transcribe and speak through the OpenAI audio API",
		Long: `oreja picks what to do from its single argument:
- "rec", "record" or "recording" records the microphone until Ctrl+C,
  then transcribes it (requires -o for the WAV file).
- An existing audio file is transcribed and the text printed.
- An existing text file is read aloud into the -o file.
- Anything else is spoken as literal text into the -o file.`,
		Example: `  oreja rec -o memo.wav
  oreja interview.m4a
  oreja notes.txt -o notes.mp3 -v echo
  oreja "Hello world" -o hello.mp3`,
		Args:          cobra.ExactArgs(1),
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0], newRunner)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (WAV when recording, audio when synthesizing)")
	cmd.Flags().StringVarP(&opts.voice, "voice", "v", string(model.DefaultVoice),
		"voice for synthesis: "+strings.Join(model.VoiceNames(), ", "))
	cmd.Flags().StringVar(&opts.configPath, "config", "", "settings file (default is $HOME/.oreja/settings.yaml)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "V", false, "verbose output")

	return cmd
}

func run(cmd *cobra.Command, opts *options, input string, newRunner RunnerFactory) error {
	settingsPath, explicit := opts.configPath, opts.configPath != ""
	if !explicit {
		settingsPath = config.GetDefaultSettingsPath()
	}
	settings, err := config.LoadSettings(settingsPath, explicit)
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(opts.verbose)
	if err != nil {
		return apperrors.Wrap(err, "create logger")
	}
	defer func() { _ = logger.Sync() }()

	voice := settings.DefaultVoice
	if cmd.Flags().Changed("voice") {
		voice = model.Voice(strings.ToLower(opts.voice))
	}

	inv := model.Invocation{Input: input, Output: opts.output, Voice: voice}
	cls, err := classifier.New(logger).Classify(inv)
	if err != nil {
		return err
	}
	logger.Debug("classified input", zap.String("mode", cls.Mode.String()))

	apiKey, err := resolveAPIKey(settings, logger)
	if err != nil {
		return err
	}

	return newRunner(settings, apiKey, cmd.OutOrStdout(), logger).Run(cmd.Context(), inv, cls)
}

// resolveAPIKey prefers the environment, then a credential file, then the
// settings file.
func resolveAPIKey(settings *config.Settings, logger *zap.Logger) (string, error) {
	key, source, err := envconfig.GetAPIKey(envconfig.DefaultCredentialPaths()...)
	if err == nil {
		logger.Debug("using API key", zap.String("source", source))
		return key, nil
	}
	if errors.Is(err, apperrors.ErrMissingAPIKey) && settings.APIKey != "" {
		logger.Debug("using API key", zap.String("source", "settings"))
		return settings.APIKey, nil
	}
	return "", err
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main(). It only needs to happen once.
func Execute(newRunner RunnerFactory) {
	if err := NewRootCmd(newRunner).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
