package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/nba-predictor-service/internal/logging"
	"github.com/preston-bernstein/nba-predictor-service/internal/model"
)

const appVersion = "dev"

func main() {
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "nba-predictor-train",
		Version: appVersion,
	})
	if err := newRootCmd(logger).Execute(); err != nil {
		os.Exit(1)
	}
}

type trainFlags struct {
	dataPath  string
	modelPath string
	maxIter   int
	testSize  float64
	seed      int64
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	flags := trainFlags{}
	cmd := &cobra.Command{
		Use:           "train",
		Short:         "Train the home-win logistic regression model from a CSV of historical games",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := run(logger, flags)
			if err != nil {
				logging.Error(logger, "training failed", err)
			}
			return err
		},
	}
	cmd.Flags().StringVar(&flags.dataPath, "data", "data/nba_training_data.csv", "training CSV path")
	cmd.Flags().StringVar(&flags.modelPath, "out", "model/nba_model.json", "model bundle output path")
	cmd.Flags().IntVar(&flags.maxIter, "max-iter", 500, "gradient descent iterations")
	cmd.Flags().Float64Var(&flags.testSize, "test-size", 0.2, "held-out fraction")
	cmd.Flags().Int64Var(&flags.seed, "seed", 42, "shuffle seed")
	return cmd
}

func run(logger *slog.Logger, flags trainFlags) error {
	f, err := os.Open(flags.dataPath)
	if err != nil {
		return fmt.Errorf("training data not found at %s: %w", flags.dataPath, err)
	}
	defer f.Close()

	ds, err := model.ReadCSV(f)
	if err != nil {
		return err
	}
	logging.Info(logger, "loaded training data", "path", flags.dataPath, logging.FieldCount, len(ds.Rows))

	bundle, err := model.Train(ds, model.TrainOptions{
		TestSize: flags.testSize,
		Seed:     flags.seed,
		MaxIter:  flags.maxIter,
	})
	if err != nil {
		return err
	}
	logging.Info(logger, "model evaluation",
		"accuracy", fmt.Sprintf("%.3f", bundle.Metrics.Accuracy),
		"auc", fmt.Sprintf("%.3f", bundle.Metrics.AUC),
		"train_rows", bundle.Metrics.TrainRows,
		"test_rows", bundle.Metrics.TestRows,
		"teams", len(bundle.Teams()),
	)

	if err := bundle.Save(flags.modelPath); err != nil {
		return err
	}
	logging.Info(logger, "saved trained model", "path", flags.modelPath)
	return nil
}
