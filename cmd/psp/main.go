package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/amirhossein-jamali/psp-client/internal/domain/entity"
	errs "github.com/amirhossein-jamali/psp-client/internal/domain/error"
	coreport "github.com/amirhossein-jamali/psp-client/internal/domain/port/core"
	"github.com/amirhossein-jamali/psp-client/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/psp-client/internal/domain/usecase/request"
	"github.com/amirhossein-jamali/psp-client/internal/domain/usecase/txcode"
	"github.com/amirhossein-jamali/psp-client/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/psp-client/internal/infrastructure/adapter/filestore"
	"github.com/amirhossein-jamali/psp-client/internal/infrastructure/adapter/httpclient"
	"github.com/amirhossein-jamali/psp-client/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/psp-client/internal/infrastructure/adapter/model"
	"github.com/amirhossein-jamali/psp-client/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/psp-client/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/psp-client/internal/infrastructure/config"
)

const usage = "usage: psp <payin|status|payout>  (or psp -type <payin|status|payout>)"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one request and returns the process exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	requestType, err := parseArgs(args, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		fmt.Fprintln(stderr, usage)
		return errs.ExitCode(err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
		return errs.ExitFailure
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Configuration validation failed: %v\n", err)
		return errs.ExitFailure
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(logger.ParseLevel(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	journal, closeJournal, err := openJournal(cfg, appLogger, tp)
	if err != nil {
		appLogger.Error("Failed to open request journal", errs.Fields(err))
		return errs.ExitFailure
	}
	defer closeJournal()

	payloads := filestore.NewPayloadStore(filestore.PayloadPaths{
		entity.PayloadDeposit:    cfg.Payloads.Deposit,
		entity.PayloadStatus:     cfg.Payloads.Status,
		entity.PayloadWithdrawal: cfg.Payloads.Withdrawal,
	}, appLogger)
	responses := filestore.NewResponseStore(cfg.Output.Dir, appLogger)

	allocator := txcode.NewAllocator(payloads, appLogger)
	builder := request.NewBuilder(payloads, allocator, cfg.APIKey, appLogger)
	client := httpclient.NewClient(httpclient.Config{
		Timeout:      cfg.Gateway.Timeout,
		MaxBodyBytes: cfg.Gateway.MaxBodyBytes,
		UserAgent:    cfg.Gateway.UserAgent,
	}, appLogger)

	service := request.NewService(builder, client, responses, journal, request.Endpoints{
		PaymentURL:    cfg.Gateway.PaymentURL,
		StatusURL:     cfg.Gateway.StatusURL,
		WithdrawalURL: cfg.Gateway.WithdrawalURL,
	}, tp, appLogger)

	result, err := service.MakeRequest(ctx, requestType)
	if err != nil {
		fmt.Fprintf(stderr, "%s request failed: %v\n", requestType, err)
		return errs.ExitCode(err)
	}

	if result.Response == nil {
		fmt.Fprintln(stdout, result.PaymentURL)
		return errs.ExitOK
	}
	fmt.Fprintf(stdout, "status: %d\nresponse: %s\n", result.Response.StatusCode, result.OutputPath)
	return errs.ExitOK
}

// parseArgs accepts the request type as a positional argument or the -type flag
func parseArgs(args []string, stderr io.Writer) (string, error) {
	fs := flag.NewFlagSet("psp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	typeFlag := fs.String("type", "", "request type: payin, status or payout")
	if err := fs.Parse(args); err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrInvalidArgument, err)
	}

	positional := fs.Args()
	if len(positional) > 1 {
		return "", fmt.Errorf("%w: too many arguments", errs.ErrInvalidArgument)
	}

	requestType := strings.TrimSpace(*typeFlag)
	if len(positional) == 1 {
		if requestType != "" && !strings.EqualFold(requestType, positional[0]) {
			return "", fmt.Errorf("%w: conflicting request types %q and %q", errs.ErrInvalidArgument, requestType, positional[0])
		}
		requestType = positional[0]
	}
	if requestType == "" {
		return "", fmt.Errorf("%w: request type is required", errs.ErrInvalidArgument)
	}

	if _, err := entity.ParseRequestType(requestType); err != nil {
		return "", err
	}
	return requestType, nil
}

// openJournal returns the configured journal and a function releasing it
func openJournal(cfg *config.Config, appLogger coreport.Logger, tp coreport.TimeProvider) (persistence.JournalRepository, func(), error) {
	if !cfg.Journal.Enabled {
		return repository.NewNoopJournalRepository(), func() {}, nil
	}

	dbCfg := cfg.Journal.Database
	conn, err := database.NewConnection(&database.Config{
		Host:            dbCfg.Host,
		Port:            dbCfg.Port,
		Username:        dbCfg.Username,
		Password:        dbCfg.Password,
		Database:        dbCfg.Database,
		SSLMode:         dbCfg.SSLMode,
		MaxOpenConns:    dbCfg.MaxOpenConns,
		MaxIdleConns:    dbCfg.MaxIdleConns,
		ConnMaxLifetime: dbCfg.ConnMaxLifetime,
		QueryTimeout:    dbCfg.QueryTimeout,
		LogLevel:        dbCfg.LogLevel,
	}, appLogger, tp)
	if err != nil {
		return nil, nil, err
	}
	if err := conn.AutoMigrate(&model.RequestJournal{}); err != nil {
		_ = conn.Close()
		return nil, nil, err
	}

	appLogger.Info("Request journal enabled", map[string]any{
		"host":     dbCfg.Host,
		"database": dbCfg.Database,
	})
	repo := repository.NewJournalRepository(conn.DB, coreport.Duration(dbCfg.QueryTimeout), tp, appLogger)
	return repo, func() { _ = conn.Close() }, nil
}
