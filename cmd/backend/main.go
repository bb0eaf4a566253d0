package main

import (
	_ "backend/docs"
	"backend/internal/api"

	"github.com/sirupsen/logrus"
)

// @title Condo Environments API
// @version 1.0
// @description Бэкенд бронирования общих помещений кондоминиума

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	logrus.Info("App start")
	if err := api.StartServer(); err != nil {
		logrus.Fatal(err)
	}
	logrus.Info("App terminated")
}
