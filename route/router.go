package route

import (
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"

	"github.com/John2013/phone-book/api"
	"github.com/John2013/phone-book/config"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func Init(record *api.RecordHandler) *echo.Echo {
	e := echo.New()
	e.Logger.SetLevel(logLevel(config.GetConfig().LOG_LEVEL))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.HEAD, echo.PUT, echo.PATCH, echo.POST, echo.DELETE},
	}))

	e.GET("/health", api.Health)

	e.POST("/records", record.CreateRecord)
	e.GET("/records", record.ListRecord)
	e.GET("/records/:phone", record.DetailRecord)
	e.PUT("/records/:phone", record.UpdateRecord)
	e.DELETE("/records/:phone", record.DeleteRecord)

	return e
}

func logLevel(name string) log.Lvl {
	switch name {
	case "DEBUG":
		return log.DEBUG
	case "WARN":
		return log.WARN
	case "ERROR":
		return log.ERROR
	default:
		return log.INFO
	}
}
