package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"medstore/inventory"
	"medstore/utils"
)

// SendAlertDigest emails the current dashboard alerts. Nothing is sent when
// there is nothing to report.
func (s *Service) SendAlertDigest(ctx context.Context, mailer utils.Mailer, recipients []string) error {
	if len(recipients) == 0 {
		return nil
	}
	alerts, err := s.DashboardAlerts(ctx)
	if err != nil {
		return err
	}
	if alerts.Empty() {
		s.log.InfoContext(ctx, "alert digest skipped, nothing to report")
		return nil
	}
	subject := fmt.Sprintf("Stock alerts for %s", s.now().Format("2006-01-02"))
	if err := mailer.Send(recipients, subject, formatDigest(alerts)); err != nil {
		return fmt.Errorf("send alert digest: %w", err)
	}
	s.log.InfoContext(ctx, "alert digest sent",
		slog.Int("recipients", len(recipients)),
		slog.Int("lowStock", len(alerts.LowStock)),
		slog.Int("outOfStock", len(alerts.OutOfStock)),
		slog.Int("expiringSoon", len(alerts.ExpiringSoon)),
		slog.Int("expired", len(alerts.Expired)))
	return nil
}

func formatDigest(a *Alerts) string {
	var b strings.Builder
	if len(a.OutOfStock) > 0 {
		fmt.Fprintf(&b, "Out of stock (%d):\n", len(a.OutOfStock))
		for _, p := range a.OutOfStock {
			fmt.Fprintf(&b, "  - %s (%s)\n", p.Name, p.Manufacturer)
		}
		b.WriteString("\n")
	}
	if len(a.LowStock) > 0 {
		fmt.Fprintf(&b, "Low stock (%d):\n", len(a.LowStock))
		for _, p := range a.LowStock {
			fmt.Fprintf(&b, "  - %s: %d left, minimum %d\n", p.Name, p.TotalStock, inventory.EffectiveMinStock(&p.Product))
		}
		b.WriteString("\n")
	}
	if len(a.ExpiringSoon) > 0 {
		fmt.Fprintf(&b, "Expiring within 30 days (%d):\n", len(a.ExpiringSoon))
		for _, e := range a.ExpiringSoon {
			fmt.Fprintf(&b, "  - %s batch %s: %d units, %d days left\n", e.ProductName, e.Batch.BatchNumber, e.Batch.Stock, e.DaysRemaining)
		}
		b.WriteString("\n")
	}
	if len(a.Expired) > 0 {
		fmt.Fprintf(&b, "Expired with stock (%d):\n", len(a.Expired))
		for _, e := range a.Expired {
			fmt.Fprintf(&b, "  - %s batch %s: %d units, expired %s\n", e.ProductName, e.Batch.BatchNumber, e.Batch.Stock, e.Batch.ExpiryDate.Format("2006-01-02"))
		}
	}
	return b.String()
}
