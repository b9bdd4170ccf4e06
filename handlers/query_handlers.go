package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// HandleGetDays lists the distinct days present in the dataset.
func (h *Handler) HandleGetDays(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": h.queries.Days()})
}

// HandleGetVenues lists the distinct venues present in the dataset.
func (h *Handler) HandleGetVenues(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": h.queries.Venues()})
}

// HandleGetOrders lists orders, optionally filtered by ?venueId=.
func (h *Handler) HandleGetOrders(c *fiber.Ctx) error {
	venueID := c.Query("venueId")
	return c.JSON(fiber.Map{"success": true, "data": h.queries.Orders(venueID)})
}

// HandleHealth reports liveness and the number of loaded orders.
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"entries": h.entries}})
}
