package Controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/manasseh-randriamitsiry/todo-app-task-backend/Models"
	"github.com/manasseh-randriamitsiry/todo-app-task-backend/Storage"
)

// TaskController handles the task CRUD endpoints
type TaskController struct {
	DB *gorm.DB
}

// NewTaskController creates a new TaskController
func NewTaskController(db *gorm.DB) *TaskController {
	return &TaskController{DB: db}
}

type CreateTaskRequest struct {
	Username        string `form:"username" validate:"required"`
	TaskName        string `form:"taskName" validate:"required"`
	TaskDescription string `form:"taskDescription" validate:"required"`
	Date            string `form:"date" validate:"required"`
}

type UpdateTaskRequest struct {
	TaskName        string `form:"taskName"`
	TaskDescription string `form:"taskDescription"`
	Date            string `form:"date"`
}

// CreateTask stores the attachment and inserts one task row
func (c *TaskController) CreateTask(ctx *fiber.Ctx) error {
	var input CreateTaskRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	file, err := ctx.FormFile("attachment")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Attachment file is required"})
	}

	if err := validate.Struct(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationMessage(err)})
	}

	attachmentPath, err := Storage.Save(file)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	task := Models.Task{
		Username:        input.Username,
		TaskName:        input.TaskName,
		TaskDescription: input.TaskDescription,
		Date:            input.Date,
		AttachmentPath:  attachmentPath,
	}
	if err := Models.CreateTask(c.DB, &task); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Task created successfully"})
}

// GetTasks lists one user's tasks, newest date first
func (c *TaskController) GetTasks(ctx *fiber.Ctx) error {
	username := ctx.Query("username")
	if username == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Username is required"})
	}

	tasks, err := Models.TasksByUsername(c.DB, username)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"tasks": tasks})
}

// UpdateTask overwrites the task's data fields; the attachment is replaced
// only when a new file is part of the form. No existence check is made, an
// unknown id updates zero rows and still reports success.
func (c *TaskController) UpdateTask(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var input UpdateTaskRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	task := Models.Task{
		TaskName:        input.TaskName,
		TaskDescription: input.TaskDescription,
		Date:            input.Date,
	}

	replaceAttachment := false
	if file, err := ctx.FormFile("attachment"); err == nil {
		attachmentPath, err := Storage.Save(file)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		task.AttachmentPath = attachmentPath
		replaceAttachment = true
	}

	if err := Models.UpdateTask(c.DB, id, &task, replaceAttachment); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Task updated successfully"})
}

// DeleteTask removes the task matching id; deleting an unknown id succeeds
func (c *TaskController) DeleteTask(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	if err := Models.DeleteTask(c.DB, id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Task deleted successfully"})
}

// Health reports process liveness and database reachability
func (c *TaskController) Health(ctx *fiber.Ctx) error {
	database := "up"
	if err := Models.Ping(c.DB); err != nil {
		database = "down"
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok", "database": database})
}
