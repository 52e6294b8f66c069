package presenter

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the failure body every portal endpoint returns.
type ErrorResponse struct {
	Message string `json:"message"`
	Status  bool   `json:"status"`
}

// InsertResult mirrors a store insert acknowledgment.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// DeleteResult mirrors a store delete acknowledgment.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

func Inserted(c *fiber.Ctx, id string) error {
	return JSON(c, fiber.StatusOK, InsertResult{Acknowledged: true, InsertedID: id})
}

func Deleted(c *fiber.Ctx, n int64) error {
	return JSON(c, fiber.StatusOK, DeleteResult{Acknowledged: true, DeletedCount: n})
}
