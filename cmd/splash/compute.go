package main

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-splash/internal/batch"
	"github.com/cwbudde/algo-splash/internal/logging"
	"github.com/cwbudde/algo-splash/internal/report"
	"github.com/cwbudde/algo-splash/internal/specio"
)

var errNoExpected = errors.New("no expected splash")

func addBatchFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("workers", 0, "number of concurrent workers (default from config, GOMAXPROCS)")
	f.String("format", "text", "output format (text|json|msgpack)")
	f.Bool("explain", false, "include the canonical peak encoding in the output")
}

func newComputeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compute [file ...]",
		Short: "Compute identifiers for every spectrum in the input",
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.run(cmd, args)
			if err != nil {
				return err
			}
			w, err := report.ForFormat(a.cfg.Format, a.colored)
			if err != nil {
				return err
			}
			if err := w.Write(cmd.OutOrStdout(), results); err != nil {
				return err
			}
			if batch.Summarize(results).Failed > 0 {
				return errFailed
			}
			return nil
		},
	}
	addBatchFlags(cmd)
	return cmd
}

func newVerifyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [file ...]",
		Short: "Check computed identifiers against the expected column",
		Long: `Verify reads records of the form id<TAB>peaks<TAB>expected and recomputes
each identifier. It exits non-zero when any record fails or mismatches.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.run(cmd, args)
			if err != nil {
				return err
			}

			var failing []batch.Result
			for _, r := range results {
				if r.Err != nil || r.Mismatch() || r.Expected == "" {
					if r.Expected == "" && r.Err == nil {
						r.Err = errNoExpected
					}
					failing = append(failing, r)
				}
			}

			w, err := report.ForFormat(a.cfg.Format, a.colored)
			if err != nil {
				return err
			}
			if err := w.Write(cmd.OutOrStdout(), failing); err != nil {
				return err
			}

			summary := batch.Summarize(results)
			if a.cfg.Format == "text" {
				if err := report.WriteSummary(cmd.OutOrStdout(), summary); err != nil {
					return err
				}
			}
			if len(failing) > 0 {
				return errFailed
			}
			return nil
		},
	}
	addBatchFlags(cmd)
	return cmd
}

// run reads every input and computes its records.
func (a *app) run(cmd *cobra.Command, args []string) ([]batch.Result, error) {
	logger := logging.FromContext(cmd.Context())
	if len(args) == 0 {
		args = []string{"-"}
	}

	var records []specio.Record
	for _, name := range args {
		recs, err := readInput(cmd.InOrStdin(), name)
		if err != nil {
			return nil, err
		}
		logger.Debugw("read input", "source", name, "records", len(recs))
		records = append(records, recs...)
	}

	results := batch.Run(cmd.Context(), records, batch.Options{Workers: a.cfg.Workers, Explain: a.cfg.Explain})
	s := batch.Summarize(results)
	logger.Infow("computed",
		"records", s.Total,
		"failed", s.Failed,
		"mismatched", s.Mismatched,
		"elapsed", time.Since(a.start),
	)
	for _, r := range results {
		if r.Err != nil {
			logger.Debugw("record failed", "id", r.ID, "source", r.Source, "line", r.Line, "error", r.Err)
		}
	}
	return results, nil
}

func readInput(stdin io.Reader, name string) ([]specio.Record, error) {
	if name == "-" {
		return specio.ReadAll(stdin, "stdin")
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return specio.ReadAll(f, name)
}
