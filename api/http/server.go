package http

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"

	"github.com/edutechinnovations/proyect/api/http/middleware"
)

// NewApp builds the Fiber app with the JSON codec and the middleware chain
// shared by every route. Routes are added separately with Register.
func NewApp(requestTimeout time.Duration, log logrus.FieldLogger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "edutech-profesor",
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          15 * time.Second,
	})
	app.Use(middleware.RequestContext(requestTimeout, log))
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	return app
}
