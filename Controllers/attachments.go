package Controllers

import (
	"net/url"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/manasseh-randriamitsiry/todo-app-task-backend/Storage"
)

// GetAttachment streams a stored attachment back with the content type
// derived from its extension. Unrecognized extensions are rejected, and so
// is any name that would resolve outside the storage root.
func GetAttachment(ctx *fiber.Ctx) error {
	filename := ctx.Params("filename")
	if decoded, err := url.PathUnescape(filename); err == nil {
		filename = decoded
	}

	contentType := Storage.ContentTypeByExtension(filename)
	if contentType == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid file type"})
	}

	fullPath, err := Storage.Resolve(filename)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attachment not found"})
	}

	file, err := os.Open(fullPath)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attachment not found"})
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	ctx.Set(fiber.HeaderContentType, contentType)
	return ctx.SendStream(file, int(info.Size()))
}
