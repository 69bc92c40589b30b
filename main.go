package main

import (
	"github.com/dilshat/guest-book/controller"
	"github.com/dilshat/guest-book/dao"
	_ "github.com/dilshat/guest-book/docs"
	"github.com/dilshat/guest-book/log"
	"github.com/dilshat/guest-book/notify"
	"github.com/dilshat/guest-book/service"
	"github.com/dilshat/guest-book/util"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// @title Guest book HTTP API
// @description Append-only message board

// @contact.name Dilshat Aliev
// @contact.email dilshat.aliev@gmail.com

func init() {
	err := godotenv.Load()
	if err != nil {
		zap.L().Info("No .env file loaded", zap.Error(err))
	}
}

func main() {
	err := log.Init(util.GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		log.Fatal(err)
	}

	//create db client
	dbClient, err := dao.GetClient(util.GetEnv("DB_PATH", "guestbook.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer dbClient.Close()

	//start web hook notifier
	notifier := notify.NewNotifier(util.GetEnv("WEB_HOOK", ""), util.GetEnvAsInt("WEB_HOOK_PER_SEC", 10))
	notifier.Start()
	defer notifier.Stop()

	guestBook := service.NewService(dao.NewMessageDao(dbClient), notifier)

	//attach http handlers
	e := echo.New()
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.HideBanner = true
	e.Use(middleware.BodyLimit(util.GetEnv("BODY_LIMIT", "64K")))

	bindRoutes(e, guestBook, util.GetEnvAsInt("SUBMIT_PER_SEC", 0))

	//start http server
	log.Fatal(e.Start(":" + util.GetEnv("HTTP_PORT", "8080")))
}

func bindRoutes(e *echo.Echo, guestBook service.Service, submitPerSec int) {

	e.POST("/messages", controller.GetAddMessageFunc(guestBook), controller.RateLimit(submitPerSec), controller.HostContext)

	e.GET("/messages", controller.GetMessagesFunc(guestBook))

	e.GET("/messages/total", controller.GetTotalMessagesFunc(guestBook))
}
