// Package cli implements the command-line interface for commitment.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexander-akhmetov/commitment/internal/commit"
	"github.com/alexander-akhmetov/commitment/internal/config"
	"github.com/alexander-akhmetov/commitment/internal/debug"
	"github.com/alexander-akhmetov/commitment/internal/git"
)

var (
	version   = "dev"
	revision  = "unknown"
	buildDate = "unknown"
)

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(v, rev, d string) {
	version = v
	revision = rev
	buildDate = d
	rootCmd.Version = fmt.Sprintf("%s (%s, %s)", version, revision, buildDate)
}

var rootCmd = newRootCmd()

// options holds the flags of one root command instance.
type options struct {
	workingDir string
	dryRun     bool
	jsonOutput bool
	debug      bool
	showConfig bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "commitment [flags] <message...>",
		Short: "Stage everything and commit with a ticket-prefixed message",
		Long: `Commitment stages every change in the working tree (untracked files included)
and creates a single commit. The message is built from the words given on the
command line and the ticket found at the start of the current branch name:

  branch ABC-123-add-widget, "commitment add widget"  ->  "ABC-123 Add widget"

A ticket given at the start of the message is used as-is, but it must match
the branch ticket when the branch has one.

Flags must come before the message.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommit(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.SetInterspersed(false)
	flags.StringVarP(&opts.workingDir, "dir", "d", "", "Working directory (default: current directory)")
	flags.BoolVarP(&opts.dryRun, "dry-run", "n", false, "Print the commit message and pending changes without committing")
	flags.BoolVar(&opts.jsonOutput, "json", false, "Print the result as JSON")
	flags.BoolVar(&opts.debug, "debug", false, "Print debug logs to stderr")
	flags.BoolVar(&opts.showConfig, "show-config", false, "Show resolved configuration and exit")

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runCommit(cmd *cobra.Command, opts *options, args []string) error {
	if opts.debug {
		debug.SetEnabled(true)
	}

	wd, err := resolveWorkingDir(opts.workingDir)
	if err != nil {
		return err
	}

	repo, repoErr := git.NewRepo(wd)
	root := wd
	if repoErr == nil {
		if r, err := repo.Root(); err == nil {
			root = r
		}
	}

	cfg, err := config.Load(root)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ApplyCLIFlags(opts.jsonOutput, opts.debug)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if cfg.Debug {
		debug.SetEnabled(true)
	}
	if debug.Enabled() {
		debug.Logf("config sources: %v", cfg.Sources())
		debug.Logf("config: output=%s author=%q <%s>", cfg.Output, cfg.Author.Name, cfg.Author.Email)
	}

	if opts.showConfig {
		return printConfig(cmd.OutOrStdout(), cfg)
	}

	if repoErr != nil {
		return fmt.Errorf("%w: %w", commit.ErrRepositoryAccess, repoErr)
	}
	repo.SetFallbackIdentity(cfg.Author.Name, cfg.Author.Email)

	res, err := commit.Create(repo, joinMessage(args), commit.Options{DryRun: opts.dryRun})
	if err != nil {
		if errors.Is(err, commit.ErrNoChanges) {
			debug.Logf("working tree at %s is clean", root)
		}
		return err
	}

	var changes []git.Change
	if res.DryRun {
		changes, err = repo.PendingChanges()
		if err != nil {
			return fmt.Errorf("%w: %w", commit.ErrRepositoryAccess, err)
		}
	}

	if cfg.Output == config.OutputJSON {
		return renderJSON(cmd.OutOrStdout(), res, changes)
	}
	return renderText(cmd.OutOrStdout(), res, changes)
}
