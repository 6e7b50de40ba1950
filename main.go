package main

import (
	"io"
	"log"
	"os"

	"github.com/manasseh-randriamitsiry/todo-app-task-backend/FiberConfig"
	"github.com/manasseh-randriamitsiry/todo-app-task-backend/Models"
	"github.com/manasseh-randriamitsiry/todo-app-task-backend/Storage"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

func main() {
	setupLogging()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		Storage.Root = dir
	}

	Models.Connect()
	FiberConfig.FiberConfig()
}

func setupLogging() {
	// Create logs directory if it doesn't exist
	if err := os.MkdirAll("logs", 0755); err != nil {
		log.Printf("Error creating logs directory: %v\n", err)
		return
	}

	logFile, err := os.OpenFile("logs/application.log",
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)

	if err != nil {
		log.Printf("Error opening log file: %v\n", err)
		return
	}

	log.SetOutput(io.MultiWriter(os.Stdout, logFile))
	log.SetFlags(log.Ldate | log.Ltime)
}
