package main

import (
	"context"
	"fmt"
	"github.com/QuangTung97/promo-schedule/config"
	"github.com/QuangTung97/promo-schedule/pkg/cacheclient"
	"github.com/QuangTung97/promo-schedule/pkg/grpclib"
	"github.com/QuangTung97/promo-schedule/pkg/leasestore"
	"github.com/QuangTung97/promo-schedule/pkg/memtable"
	"github.com/QuangTung97/promo-schedule/pkg/otellib"
	"github.com/QuangTung97/promo-schedule/repository"
	"github.com/QuangTung97/promo-schedule/service/campaign"
	"github.com/QuangTung97/promo-schedule/service/monitor"
	"github.com/QuangTung97/promo-schedule/service/readonly"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/go-sql-driver/mysql"
	grpc_zap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpc_ctxtags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

const serviceName = "promo-schedule"

func startServer() error {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	loc, err := conf.Schedule.Location()
	if err != nil {
		return fmt.Errorf("load schedule timezone: %w", err)
	}

	tracerProvider, shutdown := otellib.InitOtel(serviceName, "local", conf.Jaeger)
	defer shutdown()

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandler(grpclib.RecoveryHandlerFunc)),
			grpc_ctxtags.UnaryServerInterceptor(),
			grpc_prometheus.UnaryServerInterceptor,

			otellib.UnaryServerInterceptor(tracerProvider),
			otellib.SetTraceInfoInterceptor(logger),

			grpc_zap.UnaryServerInterceptor(logger),
			grpc_zap.PayloadUnaryServerInterceptor(logger, payloadLogDecider),
		),
		grpc.ChainStreamInterceptor(
			grpc_recovery.StreamServerInterceptor(),
			grpc_ctxtags.StreamServerInterceptor(),
			grpc_prometheus.StreamServerInterceptor,
			grpc_zap.StreamServerInterceptor(logger),
		),
	)

	db := conf.MySQL.MustConnect(logger)
	provider := repository.NewProvider(db)
	campaignRepo := repository.NewCampaignWrapper(repository.NewCampaign(),
		tracerProvider.Tracer("repository"), "repo::")

	client, err := cacheclient.New(conf.Memcache.Addr(), conf.Memcache.Conns())
	if err != nil {
		return fmt.Errorf("connect memcached: %w", err)
	}
	defer func() { _ = client.Close() }()

	storeProvider := leasestore.NewProvider(client)
	repoProvider := readonly.NewRepositoryProvider(
		memtable.New(conf.Schedule.LocalCacheSize), storeProvider, campaignRepo,
		readonly.WithDBOnly(conf.DBOnly),
		readonly.WithLocalTTL(conf.Schedule.LocalCacheSeconds),
		readonly.WithSessionOptions(leasestore.WithLeaseTTL(conf.Schedule.LeaseTTL)),
	)

	campaignService := campaign.NewService(provider, campaignRepo, repoProvider)

	metrics := readonly.NewMetrics()
	if err := metrics.Register(prometheus.DefaultRegisterer, storeProvider); err != nil {
		return err
	}
	evaluator := readonly.NewIServiceWrapper(
		readonly.NewService(provider, repoProvider, metrics),
		tracerProvider.Tracer("service"), "service::",
	)

	mon := monitor.New(campaignService, loc, conf.Schedule.RefreshSpec, logger)
	if err := prometheus.Register(mon.Collector()); err != nil {
		return err
	}

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)

	grpc_prometheus.EnableHandlingTimeHistogram()
	grpc_prometheus.Register(grpcServer)

	mux := runtime.NewServeMux()
	if err := campaign.NewHandler(campaignService).Register(mux); err != nil {
		return err
	}
	if err := readonly.NewHandler(evaluator, loc).Register(mux); err != nil {
		return err
	}

	if err := mon.Start(context.Background()); err != nil {
		return fmt.Errorf("start monitor: %w", err)
	}
	defer mon.Stop()

	httpHandler := otellib.HTTPMiddleware(logger, tracerProvider.Tracer("http"), mux)
	startHTTPAndGRPCServers(conf, logger, grpcServer, healthServer, httpHandler)
	return nil
}

func main() {
	rootCmd := cobra.Command{
		Use: "server",
	}
	rootCmd.AddCommand(
		startServerCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println("[ERROR]", err)
		os.Exit(1)
	}
}

func payloadLogDecider(_ context.Context, _ string, _ interface{}) bool {
	return true
}

func startServerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "start the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return startServer()
		},
	}
}

func startHTTPAndGRPCServers(
	conf config.Config, logger *zap.Logger,
	grpcServer *grpc.Server, healthServer *health.Server, handler http.Handler,
) {
	logger.Info("Listening",
		zap.String("grpc", conf.Server.GRPC.ListenString()),
		zap.String("http", conf.Server.HTTP.ListenString()),
	)

	httpMux := http.NewServeMux()
	httpMux.Handle("/metrics", promhttp.Handler())
	httpMux.Handle("/", handler)

	httpServer := &http.Server{
		Addr:              conf.Server.HTTP.ListenString(),
		Handler:           httpMux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()

		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			panic(err)
		}
		logger.Info("Shutdown HTTP server successfully")
	}()

	go func() {
		defer wg.Done()

		listener, err := net.Listen("tcp", conf.Server.GRPC.ListenString())
		if err != nil {
			panic(err)
		}

		err = grpcServer.Serve(listener)
		if err != nil {
			panic(err)
		}
		logger.Info("Shutdown gRPC server successfully")
	}()

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	//--------------------------------
	// Graceful Shutdown
	//--------------------------------
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	healthServer.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	grpcServer.GracefulStop()
	err := httpServer.Shutdown(ctx)
	if err != nil {
		panic(err)
	}

	wg.Wait()
}
