package handlers

import (
	"github.com/gofiber/fiber/v2"

	"venuereport/models"
	"venuereport/report"
)

// HandleSendReport computes the daily report and mails it. Delivery failures
// are answered with 200 and success=false; malformed input with 400.
func (h *Handler) HandleSendReport(c *fiber.Ctx) error {
	var req models.SendReportRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warningf("invalid report request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(models.Result{Success: false, Msg: "Invalid request body"})
	}

	log.Infof("report requested - Email: %s, VenueID: %s", req.Email, req.VenueID)

	result := h.reporter.SendReport(c.UserContext(), req)
	if !result.Success && result.Msg != report.FailedToSendMsg {
		return c.Status(fiber.StatusBadRequest).JSON(result)
	}
	return c.JSON(result)
}
