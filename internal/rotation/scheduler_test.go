package rotation

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"relief-ads/internal/config/configs"
	"relief-ads/internal/core/domain"
	"relief-ads/internal/core/port/mocks"
)

func testScheduler(t *testing.T, cfg configs.Cron) (*mocks.MockRotationRepository, *Scheduler) {
	repo := mocks.NewMockRotationRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return repo, NewScheduler(repo, cfg, logger)
}

// TestFeaturedRotationRun invokes the rotation with the configured slot
// count.
func TestFeaturedRotationRun(t *testing.T) {
	repo, s := testScheduler(t, configs.Cron{FeaturedSpec: "0 * * * *", FeaturedSlots: 3, BudgetSpec: "5 0 * * *"})
	repo.EXPECT().
		RotateFeaturedClinics(mock.Anything, 3).
		Return([]domain.Clinic{{ID: 1, Slug: "relief-clinic-1", IsFeatured: true}}, nil)

	s.runFeaturedRotation()
}

// TestFeaturedRotationFailureLogged: a failing rotation is contained to a
// log line; nothing panics.
func TestFeaturedRotationFailureLogged(t *testing.T) {
	repo, s := testScheduler(t, configs.Cron{FeaturedSpec: "0 * * * *", FeaturedSlots: 3, BudgetSpec: "5 0 * * *"})
	repo.EXPECT().
		RotateFeaturedClinics(mock.Anything, 3).
		Return(nil, errors.New("deadlock detected"))

	s.runFeaturedRotation()
}

// TestBudgetMaintenanceRun resets daily remainders then pauses spent
// campaigns.
func TestBudgetMaintenanceRun(t *testing.T) {
	repo, s := testScheduler(t, configs.Cron{FeaturedSpec: "0 * * * *", FeaturedSlots: 3, BudgetSpec: "5 0 * * *"})
	repo.EXPECT().ResetDailyBudgets(mock.Anything).Return(int64(5), nil)
	repo.EXPECT().PauseExhaustedCampaigns(mock.Anything).Return(int64(2), nil)

	s.runBudgetMaintenance()
}

// TestBudgetMaintenanceStopsOnResetError: pausing is skipped when the
// reset fails, so a partially maintained ledger is not made worse.
func TestBudgetMaintenanceStopsOnResetError(t *testing.T) {
	repo, s := testScheduler(t, configs.Cron{FeaturedSpec: "0 * * * *", FeaturedSlots: 3, BudgetSpec: "5 0 * * *"})
	repo.EXPECT().ResetDailyBudgets(mock.Anything).Return(int64(0), errors.New("connection reset"))

	s.runBudgetMaintenance()
}

// TestStartRejectsBadSpec: an invalid cron expression is a configuration
// error surfaced at startup.
func TestStartRejectsBadSpec(t *testing.T) {
	_, s := testScheduler(t, configs.Cron{FeaturedSpec: "not-a-spec", FeaturedSlots: 3, BudgetSpec: "5 0 * * *"})
	require.Error(t, s.Start())
}
