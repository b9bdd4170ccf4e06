package report

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"

	"venuereport/models"
	"venuereport/utils"
)

var log = logging.MustGetLogger("log")

// FailedToSendMsg is the Result message for an unconfirmed delivery.
const FailedToSendMsg = "Failed to send report"

// Mailer delivers a plain-text message and returns a reference to it, such
// as a message id or a preview link. An empty reference means the delivery
// was not confirmed.
type Mailer interface {
	SendMail(ctx context.Context, from, to, subject, body string) (string, error)
}

// Dispatcher formats reports and hands them to a Mailer.
type Dispatcher struct {
	mailer Mailer
	from   string
}

func NewDispatcher(mailer Mailer, from string) *Dispatcher {
	return &Dispatcher{mailer: mailer, from: from}
}

// Send mails the report for the day beginning at dayStart to email. Delivery
// failures are reported in the Result, never as an error.
func (d *Dispatcher) Send(ctx context.Context, email string, r models.Report, dayStart time.Time) models.Result {
	subject := Subject(dayStart)
	body := Body(r, dayStart)

	ref, err := d.mailer.SendMail(ctx, d.from, email, subject, body)
	if err != nil {
		log.Errorf("sending report to %s failed: %v", email, err)
		return models.Result{Success: false, Msg: FailedToSendMsg}
	}
	if strings.TrimSpace(ref) == "" {
		log.Warningf("mailer returned no delivery reference for report to %s", email)
		return models.Result{Success: false, Msg: FailedToSendMsg}
	}

	log.Infof("report for %s sent to %s: %s", utils.HumanDay(dayStart), email, ref)
	return models.Result{Success: true, Msg: ref}
}

// Subject returns the mail subject for the day beginning at dayStart.
func Subject(dayStart time.Time) string {
	return "Venue report for " + utils.HumanDay(dayStart)
}

// Body returns the plain-text mail body listing the report figures.
func Body(r models.Report, dayStart time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Report for %s\n\n", utils.HumanDay(dayStart))
	fmt.Fprintf(&b, "Orders: %d\n", r.OrdersCount)
	fmt.Fprintf(&b, "Total turnover: %s\n", strconv.FormatFloat(r.TotalTurnover, 'f', -1, 64))
	fmt.Fprintf(&b, "Total tips: %s\n", strconv.FormatFloat(r.TotalTips, 'f', -1, 64))
	return b.String()
}
