package main

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"Anvil/FiberConfig"
	"Anvil/Models"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment")
	}

	setupLogging()

	if err := Models.Connect(os.Getenv("DB_PATH")); err != nil {
		log.Fatal("Failed to connect database:", err)
	}

	FiberConfig.FiberConfig()
}

func setupLogging() {
	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Printf("Error creating logs directory: %v\n", err)
		return
	}

	logFile, err := os.OpenFile(filepath.Join(logDir, "application.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Error opening log file: %v\n", err)
		return
	}

	log.SetOutput(io.MultiWriter(os.Stdout, logFile))
	log.SetFlags(log.Ldate | log.Ltime)
}
