package main

import (
	"ella-rises-admin/core/logger"
	"ella-rises-admin/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Fatal("run server error", "error", err)
	}
}
