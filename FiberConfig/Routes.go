package FiberConfig

import (
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"

	"github.com/manasseh-randriamitsiry/todo-app-task-backend/Controllers"
	"github.com/manasseh-randriamitsiry/todo-app-task-backend/Models"
	"github.com/manasseh-randriamitsiry/todo-app-task-backend/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	taskController := Controllers.NewTaskController(db)

	app.Post("/tasks", taskController.CreateTask)
	app.Get("/tasks", taskController.GetTasks)
	app.Put("/tasks/:id", taskController.UpdateTask)
	app.Delete("/tasks/:id", taskController.DeleteTask)

	app.Get("/uploads/:filename", Controllers.GetAttachment)
	app.Get("/health", taskController.Health)
}

// BuildApp assembles the Fiber app with the middleware chain and routes.
func BuildApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	SetupRoutes(app, db)
	return app
}

func FiberConfig() {
	fmt.Println("Server Up...")
	app := BuildApp(Models.DB)

	host := os.Getenv("HOST")
	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	addr := fmt.Sprintf("%s:%s", host, port)
	log.Printf("Server is running on http://%s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatal(err)
	}
}
