// Package main runs one RSS aggregation pass: fetch configured feeds,
// stage new items in the review queue, archive a run report. Schedule
// daily via cron.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/oldoaktown/backend/config"
	"github.com/oldoaktown/backend/internal/news"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	queue, err := news.NewReviewQueue(cfg.Data.ReviewQueueDir, cfg.Data.PublishedDir, cfg.Data.ArchiveDir)
	if err != nil {
		logger.Fatal("review queue", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	aggregator := news.NewAggregator(news.DefaultSources, queue, cfg.Feeds, logger)
	report, err := aggregator.Run(ctx)
	if err != nil {
		logger.Error("aggregation failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("run report",
		zap.String("run_id", report.RunID.String()),
		zap.Int("total_items", report.TotalItemsFetched),
		zap.Any("by_source", report.BySource),
		zap.Any("by_category", report.ByCategory),
		zap.Any("by_priority", report.ByPriority),
		zap.Int("items_in_review_queue", report.ItemsInReviewQueue),
	)
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
