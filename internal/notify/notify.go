package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
)

// VehicleUpdate carries the fields worth surfacing to the assigned user.
type VehicleUpdate struct {
	VIN             string
	Make            string
	Model           string
	ContainerNumber string
	BookingNumber   string
	ETD             string
	ETA             string
}

// SMTPSender delivers update notifications over plain SMTP. With no address
// configured it degrades to logging the would-be delivery.
type SMTPSender struct {
	addr string
	from string
	logs *zap.SugaredLogger
}

func NewSMTPSender(addr, from string, logger *zap.SugaredLogger) *SMTPSender {
	return &SMTPSender{
		addr: addr,
		from: from,
		logs: logger,
	}
}

func (s *SMTPSender) VehicleUpdated(ctx context.Context, to string, update VehicleUpdate) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	subject := fmt.Sprintf("Vehicle update: %s %s (VIN %s)", update.Make, update.Model, update.VIN)

	var body strings.Builder
	fmt.Fprintf(&body, "Your vehicle %s %s (VIN %s) has been updated.\r\n\r\n", update.Make, update.Model, update.VIN)
	if update.ContainerNumber != "" {
		fmt.Fprintf(&body, "Container: %s\r\n", update.ContainerNumber)
	}
	if update.BookingNumber != "" {
		fmt.Fprintf(&body, "Booking: %s\r\n", update.BookingNumber)
	}
	if update.ETD != "" {
		fmt.Fprintf(&body, "ETD: %s\r\n", update.ETD)
	}
	if update.ETA != "" {
		fmt.Fprintf(&body, "ETA: %s\r\n", update.ETA)
	}

	if s.addr == "" {
		s.logs.Infow("smtp not configured, skipping delivery",
			"to", to,
			"vin", update.VIN)
		return nil
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", s.from, to, subject, body.String())

	if err := smtp.SendMail(s.addr, nil, s.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	return nil
}
