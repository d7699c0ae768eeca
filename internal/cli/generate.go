package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rem-code-s/proposal-review-helper/internal/config"
	"github.com/rem-code-s/proposal-review-helper/internal/gitcmd"
	"github.com/rem-code-s/proposal-review-helper/internal/output"
	"github.com/rem-code-s/proposal-review-helper/internal/repocache"
	"github.com/rem-code-s/proposal-review-helper/internal/report"
	"github.com/spf13/cobra"
)

var (
	flagStart      string
	flagEnd        string
	flagPaths      []string
	flagRepo       string
	flagRepoURL    string
	flagFormat     string
	flagType       string
	flagOutput     string
	flagCacheDir   string
	flagProposalID string
	flagRedact     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a review report for a revision range",
	Long: "Generate collects commit metadata and diffs for start..end (exclusive of\n" +
		"start, inclusive of end) from a cached clone of the repository and writes\n" +
		"an HTML or Markdown review document.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}

		if flagRepo == "" {
			fmt.Fprintln(os.Stderr, "Error: repository URL is required (--repo)")
			exitCode = ExitUsageError
			return nil
		}

		localPath, err := repocache.Ensure(flagRepo, cfg.CacheDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		proposalID := flagProposalID
		if proposalID == "" {
			proposalID = config.ProposalID(config.ProposalFile)
		}

		linkBase := cfg.RepoURL
		if linkBase == "" {
			linkBase = strings.TrimSuffix(flagRepo, ".git")
		}

		fmt.Fprintf(os.Stderr, "Generating %s report for %s..%s\n", cfg.Format, flagStart, flagEnd)

		rep := report.Collect(gitcmd.Open(localPath), report.Options{
			Start:         flagStart,
			End:           flagEnd,
			Paths:         flagPaths,
			RepoURL:       linkBase,
			ProposalID:    proposalID,
			RedactSecrets: cfg.RedactSecrets,
		})

		outPath := flagOutput
		if outPath == "" {
			outPath = output.DefaultPath(proposalID, repocache.NameFromURL(flagRepo),
				flagStart, flagEnd, flagPaths, cfg.Format, time.Now())
		}

		condensed := cfg.Type == "summary"
		if err := output.WriteReport(rep, cfg.Format, condensed, outPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		fmt.Fprintf(os.Stdout, "Report generated: %s\n", outPath)
		return nil
	},
}

// buildOverrides maps non-empty flags onto config keys.
func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagType != "" {
		m["type"] = flagType
	}
	if flagCacheDir != "" {
		m["cacheDir"] = flagCacheDir
	}
	if flagRepoURL != "" {
		m["repoUrl"] = flagRepoURL
	}
	if flagRedact {
		m["redactSecrets"] = "true"
	}
	return m
}

func init() {
	generateCmd.Flags().StringVar(&flagStart, "start", "", "Start revision (exclusive)")
	generateCmd.Flags().StringVar(&flagEnd, "end", "", "End revision (inclusive, e.g. HEAD)")
	generateCmd.Flags().StringSliceVar(&flagPaths, "path", nil, "Restrict the review to these repository paths (repeatable)")
	generateCmd.Flags().StringVar(&flagRepo, "repo", "", "Repository URL to clone or reuse from cache (required)")
	generateCmd.Flags().StringVar(&flagRepoURL, "repo-url", "", "Hosting service base URL for deep links (defaults to --repo without .git)")
	generateCmd.Flags().StringVar(&flagFormat, "format", "", "Output format: html or markdown")
	generateCmd.Flags().StringVar(&flagType, "type", "", "Report type: full or summary")
	generateCmd.Flags().StringVar(&flagOutput, "output", "", "Output file path (default: derived under generated/)")
	generateCmd.Flags().StringVar(&flagCacheDir, "cache-dir", "", "Directory to cache cloned repositories")
	generateCmd.Flags().StringVar(&flagProposalID, "proposal-id", "", "Proposal identifier for the report header and file name")
	generateCmd.Flags().BoolVar(&flagRedact, "redact-secrets", false, "Scrub credential-looking strings from embedded diffs")

	_ = generateCmd.MarkFlagRequired("start")
	_ = generateCmd.MarkFlagRequired("end")
}
