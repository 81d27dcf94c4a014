package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"stargaze-api/config"
	v1 "stargaze-api/internal/controllers/http/v1"
	"stargaze-api/internal/repositories"
	"stargaze-api/internal/scheduler"
	"stargaze-api/internal/services/skywatch"
	"stargaze-api/pkg/httpserver"
	"stargaze-api/pkg/logger"
	"stargaze-api/pkg/observe"
)

// @title Stargaze API
// @version 1.0.0
// @description Stargazing conditions API built with Go and Fiber.
// @description Combines multiple weather providers with moon phase, sun time and viewing estimates.
// @termsOfService http://swagger.io/terms/

// @contact.name Stargaze API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Astronomy
// @tag.description Moon, sun and sky estimates
// @tag.name Viewing
// @tag.description Stargazing condition assessments
// @tag.name Sky
// @tag.description ISS passes and astronomy pictures
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.NewConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	writers := []io.Writer{os.Stdout}
	var hook *observe.SentryHook
	if cnf.Sentry.DSN != "" {
		// the hook parses JSON lines, console output would only feed it errors
		if strings.EqualFold(cnf.Log.Format, "json") {
			hook = observe.NewSentryHook(cnf.SentryZone(), cnf.App.Name, 0, cnf.Sentry.Debug, cnf.Sentry.DSN)
			writers = append(writers, hook)
		} else {
			log.Println("sentry disabled: log.format must be json")
		}
	}

	l := logger.New(logger.Options{
		AppName: cnf.App.Name,
		AppEnv:  cnf.SentryZone(),
		Level:   cnf.Log.Level,
		Format:  cnf.Log.Format,
	}, writers...)
	if hook != nil {
		hook.SetLogger(l)
	}

	metrics, err := observe.NewCollector(nil)
	if err != nil {
		l.Fatal("cannot register metrics", map[string]any{"err": err.Error()})
	}

	repos := repositories.InitWeatherRepositories(cnf, l)
	if len(repos) == 0 {
		l.Warning("no weather providers configured, /viewing will fail")
	}

	var rdb *redis.Client
	if cnf.Cache.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cnf.Cache.Addr,
			Password: cnf.Cache.Password,
			DB:       cnf.Cache.DB,
		})

		pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			l.Warning("redis unreachable, observation cache will retry per request", map[string]any{
				"addr": cnf.Cache.Addr,
				"err":  err.Error(),
			})
		}
		pingCancel()

		repos = repositories.WithCache(repos, rdb, time.Duration(cnf.Cache.TTLSeconds)*time.Second, l)
	}

	opts := []skywatch.Option{
		skywatch.WithMetrics(metrics),
		skywatch.WithPasses(repositories.NewPassRepository(cnf.ISS.BaseURL, l, repositories.NewHTTPClient(cnf.ISS.Timeout))),
	}
	pictures, err := repositories.NewPictureRepository(cnf.NASA.BaseURL, cnf.NASA.APIKey, l, repositories.NewHTTPClient(cnf.NASA.Timeout))
	if err != nil {
		l.Warning("picture of the day disabled", map[string]any{"err": err.Error()})
	} else {
		opts = append(opts, skywatch.WithPictures(pictures))
	}

	service := skywatch.NewSkyService(repos, l, opts...)

	watcher := scheduler.NewWatcher(cnf.Watch, service, metrics, l)
	if err := watcher.Start(ctx); err != nil {
		l.Fatal("cannot start watcher", map[string]any{"err": err.Error()})
	}
	go watcher.RunOnce(ctx)

	app := httpserver.InitFiberServer(httpserver.Options{
		AppName:      cnf.App.Name,
		ReadTimeout:  cnf.Server.ReadTimeout,
		WriteTimeout: cnf.Server.WriteTimeout,
		IdleTimeout:  cnf.Server.IdleTimeout,
		Ready: func(*fiber.Ctx) bool {
			return len(repos) > 0
		},
	})

	v1.NewRouter(
		app,
		service,
		metrics,
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err.Error()})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":      cnf.Server.Port,
		"providers": len(repos),
		"cache":     rdb != nil,
		"version":   cnf.App.Version,
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		watcher.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		if rdb != nil {
			_ = rdb.Close()
		}
		if hook != nil {
			hook.Flush()
		}
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
