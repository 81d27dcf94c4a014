package httpserver

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

const (
	HealthEndpoint = "/manage/health"
	ReadyEndpoint  = "/manage/ready"

	bodyLimit = 1 * 1024 * 1024
)

// Options timeouts are in seconds; zero leaves Fiber's default.
type Options struct {
	AppName      string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
	// Ready reports readiness on /manage/ready. Nil means always ready.
	Ready func(c *fiber.Ctx) bool
}

func InitFiberServer(opts Options) *fiber.App {
	s := fiber.New(fiber.Config{
		AppName:      opts.AppName,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		BodyLimit:    bodyLimit,
		ReadTimeout:  seconds(opts.ReadTimeout),
		WriteTimeout: seconds(opts.WriteTimeout),
		IdleTimeout:  seconds(opts.IdleTimeout),
	})

	s.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	s.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	s.Use(cors.New())

	hc := healthcheck.Config{
		LivenessEndpoint:  HealthEndpoint,
		ReadinessEndpoint: ReadyEndpoint,
	}
	if opts.Ready != nil {
		hc.ReadinessProbe = opts.Ready
	}
	s.Use(healthcheck.New(hc))

	return s
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
