package service

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/taeho-gwon/mahjong-shanten/internal/analysisstore"
	"github.com/taeho-gwon/mahjong-shanten/internal/appconfig"
	"github.com/taeho-gwon/mahjong-shanten/internal/logx"
	"github.com/taeho-gwon/mahjong-shanten/internal/memocache"
	"github.com/taeho-gwon/mahjong-shanten/internal/metrics"
	"github.com/taeho-gwon/mahjong-shanten/internal/transport/natsworker"
	"github.com/taeho-gwon/mahjong-shanten/internal/transport/wssession"
)

// Run brings up the analysis service: mongo and redis connections, the
// two-tier cache, the nats worker, the websocket endpoint, and the metrics
// dashboard, then blocks until an interrupt or terminate signal arrives.
func Run(ctx context.Context, conf *appconfig.Config) error {
	db, disconnect, err := analysisstore.Connect(ctx, conf.Database.Mongo)
	if err != nil {
		return err
	}
	defer func() {
		if err := disconnect(context.Background()); err != nil {
			logx.Warn("service: disconnecting mongo: %v", err)
		}
	}()
	store := analysisstore.NewMongoRepository(db)

	local, err := memocache.NewLocalCache(conf.Cache.MaxCostBytes, time.Duration(conf.Cache.TTLSeconds)*time.Second)
	if err != nil {
		return err
	}
	defer local.Close()

	var redisCache *memocache.RedisCache
	if conf.Database.Redis.Addr != "" {
		redisCache, err = memocache.NewRedisCache(conf.Database.Redis, time.Duration(conf.Cache.TTLSeconds)*time.Second)
		if err != nil {
			return err
		}
		defer redisCache.Close()
	}
	cache := memocache.NewAnalysisCache(local, redisCache)

	analyzer := NewAnalyzer(cache, store)

	worker, err := natsworker.Run(conf.Nats.URL, conf.Nats.Subject, analyzer.Handle)
	if err != nil {
		return err
	}
	defer worker.Close()

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/ws/session", gin.WrapF(wssession.Handler(analyzer.Handle)))
	wsServer := &http.Server{Addr: fmt.Sprintf("0.0.0.0:%d", conf.WsPort), Handler: router}
	go func() {
		logx.Info("service: websocket endpoint at ws://%s/ws/session", wsServer.Addr)
		if err := wsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logx.Error("service: websocket server stopped: %v", err)
		}
	}()

	monitor := metrics.NewMonitor(10 * time.Second)
	go monitor.Run(ctx)
	go func() {
		if err := metrics.Serve(fmt.Sprintf("0.0.0.0:%d", conf.MetricPort)); err != nil {
			logx.Error("service: metrics dashboard stopped: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	select {
	case <-ctx.Done():
	case <-sigCh:
		logx.Info("service: shutdown signal received")
	}

	monitor.Stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return wsServer.Shutdown(shutdownCtx)
}
