// Command ghostnote analyzes the prosody of poems and song lyrics: syllable
// counts, stress patterns, and rhyme, backed by a pronunciation dictionary
// with a rule-based estimator for words the dictionary does not know.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MrWong99/ghostnote/internal/analysis"
	"github.com/MrWong99/ghostnote/internal/config"
	"github.com/MrWong99/ghostnote/internal/observe"
	"github.com/MrWong99/ghostnote/pkg/phonetics"
	"github.com/MrWong99/ghostnote/pkg/phonetics/cmudict"
	"github.com/MrWong99/ghostnote/pkg/phonetics/suggest"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := &appState{}
	root := newRootCmd(app)
	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "ghostnote: %v\n", err)
		}
		return 1
	}
	return 0
}

// appState carries the objects built by the root command's pre-run into the
// subcommands.
type appState struct {
	cfg      *config.Config
	dict     *phonetics.Dictionary
	analyzer *analysis.Analyzer
	shutdown func(context.Context) error
}

// ── Root command ──────────────────────────────────────────────────────────────

func newRootCmd(app *appState) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "ghostnote",
		Short:         "Prosody analysis for poems and song lyrics",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.init(cmd.Context(), configPath)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if app.shutdown == nil {
				return nil
			}
			return app.shutdown(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to the YAML configuration file")

	root.AddCommand(
		newAnalyzeCmd(app),
		newWordCmd(app),
		newRhymesCmd(app),
		newCheckCmd(app),
	)
	return root
}

// init loads configuration, wires logging and metrics, and builds the
// dictionary stack shared by all subcommands.
func (app *appState) init(ctx context.Context, configPath string) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	app.cfg = cfg

	slog.SetDefault(newLogger(cfg.Log.Level))

	shutdown, err := observe.InitProvider(ctx, observe.ProviderConfig{})
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	app.shutdown = shutdown

	var src phonetics.Source = cmudict.Embedded()
	if cfg.Dictionary.Path != "" {
		src = cmudict.FileSource(cfg.Dictionary.Path)
	}
	app.dict = phonetics.NewDictionary(src)
	if cfg.Dictionary.Preload {
		app.dict.Preload()
	}
	app.analyzer = analysis.New(app.dict)

	slog.Debug("ghostnote initialised",
		"config", configPath,
		"dictionary", cfg.Dictionary.Path,
		"preload", cfg.Dictionary.Preload,
	)
	return nil
}

// ── analyze ───────────────────────────────────────────────────────────────────

func newAnalyzeCmd(app *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [file]",
		Short: "Analyze a poem's prosody (reads stdin when no file is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			poem, err := app.analyzer.AnalyzePoem(cmd.Context(), text)
			if err != nil {
				return err
			}
			printPoem(cmd.OutOrStdout(), poem)
			return nil
		},
	}
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read poem: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func printPoem(w io.Writer, poem *analysis.Poem) {
	for _, line := range poem.Lines {
		fmt.Fprintf(w, "%3d %s  %s\n", line.Number, line.RhymeLetter, line.Text)
		fmt.Fprintf(w, "      syllables=%d stress=%s\n", line.Syllables, line.Stress)
	}
	fmt.Fprintf(w, "\nscheme=%s syllables=%d coverage=%.0f%%\n",
		poem.RhymeScheme, poem.TotalSyllables, poem.Coverage*100)
}

// ── word ──────────────────────────────────────────────────────────────────────

func newWordCmd(app *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "word <word>...",
		Short: "Show the phonetic analysis of one or more words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.dict.EnsureLoaded(cmd.Context()); err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, word := range args {
				a := phonetics.AnalyzeWithFallback(app.dict, word)
				if a.InDictionary {
					fmt.Fprintf(w, "%s: /%s/ syllables=%d stress=%s\n",
						a.Word, a.Phonemes, a.Syllables, a.StressPattern)
					continue
				}
				est := phonetics.EstimateWithConfidence(word)
				fmt.Fprintf(w, "%s: (estimated, %s, confidence %.1f) syllables=%d stress=%s\n",
					a.Word, est.Method, est.Confidence, a.Syllables, a.StressPattern)
			}
			return nil
		},
	}
}

// ── rhymes ────────────────────────────────────────────────────────────────────

func newRhymesCmd(app *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "rhymes <word>",
		Short: "List dictionary words that rhyme with a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []suggest.Option
			if t := app.cfg.Suggest.PhoneticThreshold; t > 0 {
				opts = append(opts, suggest.WithPhoneticThreshold(t))
			}
			if t := app.cfg.Suggest.FuzzyThreshold; t > 0 {
				opts = append(opts, suggest.WithFuzzyThreshold(t))
			}
			if l := app.cfg.Suggest.Limit; l > 0 {
				opts = append(opts, suggest.WithLimit(l))
			}
			sug := suggest.New(app.dict, opts...)

			rhymes, respelled, err := sug.Rhymes(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if respelled == "" {
				fmt.Fprintf(w, "no pronunciation found for %q\n", args[0])
				return nil
			}
			if respelled != phonetics.Normalize(args[0]) {
				fmt.Fprintf(w, "%q is not in the dictionary; using %q\n", args[0], respelled)
			}
			if len(rhymes) == 0 {
				fmt.Fprintf(w, "no rhymes found for %q\n", respelled)
				return nil
			}
			fmt.Fprintln(w, strings.Join(rhymes, "\n"))
			return nil
		},
	}
}

// ── check ─────────────────────────────────────────────────────────────────────

func newCheckCmd(app *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "check <word> <word>",
		Short: "Check whether two words rhyme",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.dict.EnsureLoaded(cmd.Context()); err != nil {
				return err
			}
			if app.dict.WordsRhyme(args[0], args[1]) {
				fmt.Fprintf(cmd.OutOrStdout(), "%q rhymes with %q\n", args[0], args[1])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%q does not rhyme with %q\n", args[0], args[1])
			return nil
		},
	}
}

// ── Logger ────────────────────────────────────────────────────────────────────

func newLogger(level config.LogLevel) *slog.Logger {
	var lvl slog.Level
	switch level {
	case config.LogDebug:
		lvl = slog.LevelDebug
	case config.LogWarn:
		lvl = slog.LevelWarn
	case config.LogError:
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
