// Package cli implements screenctl, a local front end to the screening engine.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/bibbank/screening-service/internal/application/dto"
	"github.com/bibbank/screening-service/internal/application/usecase"
	"github.com/bibbank/screening-service/internal/domain/service"
	"github.com/bibbank/screening-service/internal/infrastructure/messaging"
	"github.com/bibbank/screening-service/internal/infrastructure/metrics"
	"github.com/bibbank/screening-service/pkg/observability"
)

type app struct {
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	logLevel  string
	threshold float64
}

// NewRootCommand builds the screenctl command tree.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "screenctl",
		Short:         "Run identity screening checks locally",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		a.riskCommand(),
		a.duplicateCommand(),
		a.queryCommand(),
		a.biometricCommand(),
	)
	return root
}

func (a *app) logger() *slog.Logger {
	return observability.InitLogger(observability.LogConfig{
		Output: a.stderr,
		Level:  a.logLevel,
		Format: "text",
	})
}

// recorder returns a metrics recorder backed by a no-op meter; the CLI has
// nowhere to export measurements.
func (a *app) recorder() (*metrics.Recorder, error) {
	return metrics.NewRecorder(noop.NewMeterProvider())
}

func (a *app) riskCommand() *cobra.Command {
	var (
		file  string
		batch bool
	)

	cmd := &cobra.Command{
		Use:   "risk",
		Short: "Score a risk profile from a YAML or JSON file",
		Example: `  screenctl risk -f profile.yaml
  screenctl risk --batch -f profiles.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := a.logger()
			rec, err := a.recorder()
			if err != nil {
				return err
			}
			scoreRisk := usecase.NewScoreRisk(service.NewRiskScorer(), messaging.NewLogPublisher(logger), rec, logger)

			if batch {
				var req dto.ScoreRiskBatchRequest
				if err := decodeFile(file, a.stdin, &req); err != nil {
					return err
				}
				resp, err := usecase.NewScoreRiskBatch(scoreRisk, usecase.DefaultBatchConcurrency).Execute(cmd.Context(), req)
				if err != nil {
					return err
				}
				return a.print(resp)
			}

			var req dto.ScoreRiskRequest
			if err := decodeFile(file, a.stdin, &req); err != nil {
				return err
			}
			resp, err := scoreRisk.Execute(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.print(resp)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", `profile file ("-" for stdin)`)
	cmd.Flags().BoolVar(&batch, "batch", false, "file holds a list of profiles under \"profiles\"")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (a *app) duplicateCommand() *cobra.Command {
	var fileA, fileB string

	cmd := &cobra.Command{
		Use:     "duplicate",
		Short:   "Compare two identity records",
		Example: `  screenctl duplicate -a record-a.yaml -b record-b.yaml --threshold 75`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := service.ValidateThreshold(a.threshold); err != nil {
				return fmt.Errorf("--threshold: %w", err)
			}

			var req dto.DetectDuplicateRequest
			if err := decodeFile(fileA, a.stdin, &req.RecordA); err != nil {
				return err
			}
			if err := decodeFile(fileB, a.stdin, &req.RecordB); err != nil {
				return err
			}

			logger := a.logger()
			rec, err := a.recorder()
			if err != nil {
				return err
			}
			detector := service.NewDuplicateDetector(service.WithThreshold(a.threshold))
			resp, err := usecase.NewDetectDuplicate(detector, messaging.NewLogPublisher(logger), rec, logger).Execute(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.print(resp)
		},
	}

	cmd.Flags().StringVarP(&fileA, "record-a", "a", "", "first identity record file")
	cmd.Flags().StringVarP(&fileB, "record-b", "b", "", "second identity record file")
	cmd.Flags().Float64Var(&a.threshold, "threshold", service.DefaultDuplicateThreshold, "confidence at or above which records are duplicates")
	_ = cmd.MarkFlagRequired("record-a")
	_ = cmd.MarkFlagRequired("record-b")
	return cmd
}

func (a *app) queryCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "query <text>",
		Short:   "Extract entities and intent from an investigator query",
		Example: `  screenctl query "find John Doe born 1990-01-01 in Monrovia"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := a.recorder()
			if err != nil {
				return err
			}
			uc := usecase.NewAnalyzeQuery(service.NewQueryAnalyzer(), rec, a.logger())
			resp, err := uc.Execute(cmd.Context(), dto.AnalyzeQueryRequest{Query: strings.Join(args, " ")})
			if err != nil {
				return err
			}
			return a.print(resp)
		},
	}
}

func (a *app) biometricCommand() *cobra.Command {
	var req dto.MatchBiometricRequest

	cmd := &cobra.Command{
		Use:     "biometric",
		Short:   "Compute pseudo-biometric match scores for a subject",
		Example: `  screenctl biometric --subject SUBJ-001 --fingerprint fp-sample --face face-sample`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := usecase.NewMatchBiometric().Execute(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.print(resp)
		},
	}

	cmd.Flags().StringVar(&req.SubjectID, "subject", "", "subject identifier")
	cmd.Flags().StringVar(&req.FingerprintSample, "fingerprint", "", "fingerprint sample")
	cmd.Flags().StringVar(&req.FaceImage, "face", "", "face image sample")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}

func (a *app) print(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err = fmt.Fprintln(a.stdout, string(out))
	return err
}
