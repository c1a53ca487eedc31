package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"medstore/models"
	"medstore/utils"
)

func seedLedger(t *testing.T, svc *Service) {
	t.Helper()
	ctx := context.Background()
	entries := []struct {
		typ   models.TransactionType
		total float64
		at    time.Time
	}{
		{models.TransactionSale, 100, testNow},
		{models.TransactionSale, 50, testNow.Add(-time.Hour)},
		{models.TransactionPurchase, 70, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)},
		{models.TransactionSale, 999, time.Date(2026, 2, 6, 9, 0, 0, 0, time.UTC)},
		{models.TransactionSale, 5, time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)},
	}
	for _, e := range entries {
		require.NoError(t, svc.store.CreateTransaction(ctx, &models.Transaction{
			ID:        models.NewID[models.TransactionID](),
			Type:      e.typ,
			Total:     e.total,
			Status:    models.StatusPaid,
			CreatedAt: e.at,
		}))
	}
}

func TestChart(t *testing.T) {
	svc, _ := newTestService(t)
	seedLedger(t, svc)
	ctx := context.Background()

	tests := []struct {
		rng  ChartRange
		want []ChartPoint
	}{
		{RangeDay, []ChartPoint{
			{Key: "2026-03-10", Purchases: 70},
			{Key: "2026-03-18", Sales: 150},
		}},
		{RangeWeek, []ChartPoint{
			{Key: "2026-W06", Sales: 999},
			{Key: "2026-W11", Purchases: 70},
			{Key: "2026-W12", Sales: 150},
		}},
		{RangeMonth, []ChartPoint{
			{Key: "2026-02", Sales: 999},
			{Key: "2026-03", Sales: 150, Purchases: 70},
		}},
	}
	for _, tt := range tests {
		t.Run(string(tt.rng), func(t *testing.T) {
			got, err := svc.Chart(ctx, tt.rng)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := svc.Chart(ctx, "year")
	assert.Equal(t, []string{"range"}, validationFields(t, err))
}

func TestDashboardStats(t *testing.T) {
	svc, st := newTestService(t)
	seedLedger(t, svc)
	seedProduct(t, st, "Low", models.ScheduleNone, batch("L1", 4, 5*24*time.Hour))
	seedProduct(t, st, "Gone", models.ScheduleNone, batch("G1", 0, 5*24*time.Hour))
	seedProduct(t, st, "Old", models.ScheduleNone, batch("O1", 50, -2*24*time.Hour))

	stats, err := svc.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 150.0, stats.MonthlySales)
	assert.Equal(t, 70.0, stats.MonthlyPurchases)
	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, 1, stats.LowStock)
	assert.Equal(t, 1, stats.OutOfStock)
	assert.Equal(t, 1, stats.ExpiringSoon)
	assert.Equal(t, 1, stats.Expired)
}

func TestDashboardAlerts(t *testing.T) {
	svc, st := newTestService(t)
	seedProduct(t, st, "Low", models.ScheduleNone, batch("L1", 4, 20*24*time.Hour), batch("L2", 1, 3*24*time.Hour))
	seedProduct(t, st, "Gone", models.ScheduleNone, batch("G1", 0, 5*24*time.Hour))
	seedProduct(t, st, "Old", models.ScheduleNone, batch("O1", 50, -2*24*time.Hour))

	a, err := svc.DashboardAlerts(context.Background())
	require.NoError(t, err)
	require.Len(t, a.LowStock, 1)
	assert.Equal(t, "Low", a.LowStock[0].Name)
	require.Len(t, a.OutOfStock, 1)
	assert.Equal(t, "Gone", a.OutOfStock[0].Name)
	require.Len(t, a.ExpiringSoon, 2)
	assert.Equal(t, "L2", a.ExpiringSoon[0].Batch.BatchNumber)
	require.Len(t, a.Expired, 1)
	assert.Equal(t, "O1", a.Expired[0].Batch.BatchNumber)
	assert.False(t, a.Empty())
}

func TestSendAlertDigest(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	recipients := []string{"ops@pharmacy.test"}

	t.Run("nothing to report", func(t *testing.T) {
		svc, _ := newTestService(t)
		mailer := utils.NewMockMailer(ctrl)
		assert.NoError(t, svc.SendAlertDigest(ctx, mailer, recipients))
	})

	t.Run("sends summary", func(t *testing.T) {
		svc, st := newTestService(t)
		seedProduct(t, st, "Azithromycin", models.ScheduleH, batch("AZ1", 5, 10*24*time.Hour))
		mailer := utils.NewMockMailer(ctrl)
		mailer.EXPECT().
			Send(recipients, "Stock alerts for 2026-03-18", gomock.Any()).
			DoAndReturn(func(_ []string, _ string, body string) error {
				assert.True(t, strings.Contains(body, "Low stock (1)"))
				assert.True(t, strings.Contains(body, "Azithromycin batch AZ1: 5 units, 10 days left"))
				return nil
			})
		assert.NoError(t, svc.SendAlertDigest(ctx, mailer, recipients))
	})

	t.Run("mailer failure", func(t *testing.T) {
		svc, st := newTestService(t)
		seedProduct(t, st, "Gone", models.ScheduleNone, batch("G1", 0, 100*24*time.Hour))
		mailer := utils.NewMockMailer(ctrl)
		mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
		assert.ErrorContains(t, svc.SendAlertDigest(ctx, mailer, recipients), "smtp down")
	})
}

func TestAuthenticateAndSeedAdmin(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.SeedAdmin(ctx, "Admin@Pharmacy.test", "correct-horse"))
	require.NoError(t, svc.SeedAdmin(ctx, "other@pharmacy.test", "correct-horse"))
	n, err := st.CountUsers(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	u, err := svc.Authenticate(ctx, " admin@pharmacy.test ", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, u.Role)

	_, err = svc.Authenticate(ctx, "admin@pharmacy.test", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Authenticate(ctx, "nobody@pharmacy.test", "correct-horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.CreateUser(ctx, "Short", "s@pharmacy.test", "short", "owner")
	assert.ElementsMatch(t, []string{"password", "role"}, validationFields(t, err))
}
