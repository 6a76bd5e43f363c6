package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"loan-auditor/config"
	httpLayer "loan-auditor/http"
	"loan-auditor/repository"
	"loan-auditor/service"
)

var flagconf string

func init() {
	flag.StringVar(&flagconf, "conf", "", "config path, eg: -conf config.yaml")
}

func main() {
	flag.Parse()

	cfg, err := config.Load(flagconf)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	var auditLog repository.AuditLog
	if cfg.Redis.Enabled {
		auditLog = repository.NewRedisAuditLog(cfg.Redis.Addr)
		logger.Info("audit log backed by redis", zap.String("addr", cfg.Redis.Addr))
	} else {
		auditLog = repository.NewMemoryAuditLog()
	}

	evaluator := service.NewEvaluatorService(auditLog, thresholdsFrom(cfg), logger)

	evaluateHandler := httpLayer.NewEvaluateHandler(evaluator, logger)
	auditHandler := httpLayer.NewAuditHandler(evaluator, logger)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)

	mux := http.NewServeMux()
	mux.Handle(
		"/applicants/evaluate",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(evaluateHandler.Evaluate),
		),
	)
	mux.Handle(
		"/applicants/evaluate-batch",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(evaluateHandler.EvaluateBatch),
		),
	)
	mux.Handle("/audit/report", http.HandlerFunc(auditHandler.Report))
	mux.Handle("/audit/decisions", http.HandlerFunc(auditHandler.Decisions))
	mux.Handle("/metrics", promhttp.Handler())

	reportCron := startAuditReportCron(cfg.Audit.ReportSchedule, evaluator, logger)
	if reportCron != nil {
		defer reportCron.Stop()
	}

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("loan auditor listening", zap.String("addr", cfg.Server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("error starting server", zap.Error(err))
		return
	case <-quit:
		logger.Info("shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("error during server shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}

// thresholdsFrom applies config overrides over the engine defaults. A
// zero value in config keeps the default.
func thresholdsFrom(cfg *config.Config) service.Thresholds {
	t := service.DefaultThresholds()
	if cfg.Thresholds.DTIApprovalMax > 0 {
		t.DTIApprovalMax = cfg.Thresholds.DTIApprovalMax
	}
	if cfg.Thresholds.DTIConditionalMax > 0 {
		t.DTIConditionalMax = cfg.Thresholds.DTIConditionalMax
	}
	if cfg.Thresholds.MinCreditScore > 0 {
		t.MinCreditScore = cfg.Thresholds.MinCreditScore
	}
	if cfg.Thresholds.ConditionalScore > 0 {
		t.ConditionalScore = cfg.Thresholds.ConditionalScore
	}
	if cfg.Thresholds.ExtremeDTI > 0 {
		t.ExtremeDTI = cfg.Thresholds.ExtremeDTI
	}
	return t
}

// startAuditReportCron logs the audit summary on the configured schedule
// so the process-lifetime log stays visible in the service logs.
func startAuditReportCron(schedule string, evaluator *service.EvaluatorService, logger *zap.Logger) *cron.Cron {
	if schedule == "" {
		return nil
	}

	c := cron.New(cron.WithSeconds())
	_, err := c.AddFunc(schedule, func() {
		report, err := evaluator.AuditReport()
		if err != nil {
			logger.Error("audit report job failed", zap.Error(err))
			return
		}
		logger.Info("periodic audit report", zap.String("report", report))
	})
	if err != nil {
		logger.Error("failed to register audit report cron job",
			zap.String("schedule", schedule), zap.Error(err))
		return nil
	}

	c.Start()
	logger.Info("audit report cron job started", zap.String("schedule", schedule))
	return c
}
