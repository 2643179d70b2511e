package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"relief-ads/internal/core/domain"
)

// RotationRepository implements port.RotationRepository. It backs the
// featured-clinic rotation and the nightly budget maintenance jobs.
type RotationRepository struct {
	pool *pgxpool.Pool
}

// NewRotationRepository returns a new repository instance.
func NewRotationRepository(pool *pgxpool.Pool) *RotationRepository {
	return &RotationRepository{pool: pool}
}

// RotateFeaturedClinics swaps the featured set in one transaction: the
// current holders are cleared, then the sponsored clinics least recently
// featured (never-featured first) are promoted. Running it twice in a row
// therefore cycles through the sponsor pool rather than re-picking the same
// clinics.
func (r *RotationRepository) RotateFeaturedClinics(ctx context.Context, slots int) ([]domain.Clinic, error) {
	if slots <= 0 {
		return []domain.Clinic{}, nil
	}
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `UPDATE clinics SET is_featured = false, updated_at = now() WHERE is_featured`); err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, `UPDATE clinics SET is_featured = true, featured_at = now(), updated_at = now()
        WHERE id IN (
            SELECT id FROM clinics
            WHERE is_sponsored
            ORDER BY featured_at ASC NULLS FIRST, id ASC
            LIMIT $1
            FOR UPDATE
        )
        RETURNING id, name, slug, is_sponsored, is_featured, featured_at, created_at, updated_at`, slots)
	if err != nil {
		return nil, err
	}
	promoted, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Clinic, error) {
		var c domain.Clinic
		scanErr := row.Scan(&c.ID, &c.Name, &c.Slug, &c.IsSponsored, &c.IsFeatured, &c.FeaturedAt, &c.CreatedAt, &c.UpdatedAt)
		return c, scanErr
	})
	if err != nil {
		return nil, err
	}
	return promoted, nil
}

// ResetDailyBudgets restores the daily remainder for every campaign that
// declares a daily budget.
func (r *RotationRepository) ResetDailyBudgets(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns
        SET remaining_daily_budget_cents = daily_budget_cents, updated_at = now()
        WHERE daily_budget_cents IS NOT NULL`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// PauseExhaustedCampaigns pauses active campaigns whose total budget is
// spent, so they drop out of eligibility until an admin tops them up.
func (r *RotationRepository) PauseExhaustedCampaigns(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns
        SET status = 'paused', updated_at = now()
        WHERE status = 'active'
          AND total_budget_cents IS NOT NULL
          AND remaining_total_budget_cents <= 0`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
