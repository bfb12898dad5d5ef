package main

import (
	"os"

	"myevent-api/core/logger"
	"myevent-api/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
		os.Exit(1)
	}
}
