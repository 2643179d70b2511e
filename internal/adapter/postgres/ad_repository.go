package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"relief-ads/internal/core/domain"
	"relief-ads/internal/core/port"
)

// AdRepository implements port.AdRepository using pgxpool for PostgreSQL.
type AdRepository struct {
	pool *pgxpool.Pool
}

// NewAdRepository returns a new repository instance.
func NewAdRepository(pool *pgxpool.Pool) *AdRepository {
	return &AdRepository{pool: pool}
}

// GetEligibleCandidates returns assignment-creative pairs for the named
// placement whose campaign is active, inside its date window and under
// budget, joined against enabled creatives and an active placement row.
// Creative type/ratio constraints are applied by the caller against the
// placement spec table.
func (r *AdRepository) GetEligibleCandidates(ctx context.Context, placementName string) ([]port.Candidate, error) {
	query := `
        SELECT
            c.id,
            c.advertiser_name,
            c.status,
            c.start_date,
            c.end_date,
            c.daily_budget_cents,
            c.total_budget_cents,
            c.remaining_daily_budget_cents,
            c.remaining_total_budget_cents,
            c.cost_per_click_cents,
            c.created_at,
            c.updated_at,
            cr.id,
            cr.campaign_id,
            cr.name,
            cr.creative_type,
            cr.headline,
            cr.body_text,
            cr.cta_text,
            cr.image_url,
            cr.image_alt,
            cr.destination_url,
            cr.aspect_ratio,
            cr.is_enabled,
            cr.created_at,
            cr.updated_at,
            p.id,
            cp.weight
        FROM campaign_placements cp
        JOIN placements p ON p.id = cp.placement_id
        JOIN campaigns c ON c.id = cp.campaign_id
        JOIN creatives cr ON cr.campaign_id = c.id
        WHERE p.name = $1
          AND p.is_active
          AND cr.is_enabled
          AND c.status = 'active'
          AND (c.start_date IS NULL OR c.start_date <= now())
          AND (c.end_date IS NULL OR c.end_date >= now())
          AND (c.daily_budget_cents IS NULL OR c.remaining_daily_budget_cents > 0)
          AND (c.total_budget_cents IS NULL OR c.remaining_total_budget_cents > 0)`
	rows, err := r.pool.Query(ctx, query, placementName)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.Candidate, error) {
		var cand port.Candidate
		err = row.Scan(
			&cand.Campaign.ID,
			&cand.Campaign.AdvertiserName,
			&cand.Campaign.Status,
			&cand.Campaign.StartDate,
			&cand.Campaign.EndDate,
			&cand.Campaign.DailyBudgetCents,
			&cand.Campaign.TotalBudgetCents,
			&cand.Campaign.RemainingDailyBudgetCents,
			&cand.Campaign.RemainingTotalBudgetCents,
			&cand.Campaign.CostPerClickCents,
			&cand.Campaign.CreatedAt,
			&cand.Campaign.UpdatedAt,
			&cand.Creative.ID,
			&cand.Creative.CampaignID,
			&cand.Creative.Name,
			&cand.Creative.Type,
			&cand.Creative.Headline,
			&cand.Creative.BodyText,
			&cand.Creative.CTAText,
			&cand.Creative.ImageURL,
			&cand.Creative.ImageAlt,
			&cand.Creative.DestinationURL,
			&cand.Creative.AspectRatio,
			&cand.Creative.IsEnabled,
			&cand.Creative.CreatedAt,
			&cand.Creative.UpdatedAt,
			&cand.PlacementID,
			&cand.Weight,
		)
		return cand, err
	})
}

// CreateImpression inserts an impression row. Duplicate tokens are
// impossible for freshly minted UUIDs, so a conflict here is a real fault
// and surfaces as an error.
func (r *AdRepository) CreateImpression(ctx context.Context, imp *domain.Impression) error {
	imp.CreatedAt = time.Now().UTC()
	_, err := r.pool.Exec(ctx, `INSERT INTO impressions
        (token, campaign_id, creative_id, placement_id, created_at)
        VALUES ($1,$2,$3,$4,$5)`,
		imp.Token, imp.CampaignID, imp.CreativeID, imp.PlacementID, imp.CreatedAt)
	return err
}

// CreateClickAndDeductBudget inserts a click event and decrements the
// campaign's remaining budgets by costCents inside a serializable
// transaction. The unique token makes a replayed redirect a no-op: the
// insert conflicts away and nothing is charged.
func (r *AdRepository) CreateClickAndDeductBudget(ctx context.Context, click *domain.Click, costCents int64) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	click.CreatedAt = time.Now().UTC()
	tag, err := tx.Exec(ctx, `INSERT INTO clicks
        (token, impression_id, campaign_id, creative_id, placement_id, cost_cents, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7) ON CONFLICT (token) DO NOTHING`,
		click.Token, click.ImpressionID, click.CampaignID, click.CreativeID, click.PlacementID, costCents, click.CreatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		// replay; nothing inserted, nothing to charge
		return nil
	}
	click.CostCents = costCents
	if costCents <= 0 {
		return nil
	}

	// lock campaign row before checking remainders
	var remainingDaily, remainingTotal *int64
	err = tx.QueryRow(ctx, `SELECT remaining_daily_budget_cents, remaining_total_budget_cents
        FROM campaigns WHERE id = $1 FOR UPDATE`, click.CampaignID).Scan(&remainingDaily, &remainingTotal)
	if err != nil {
		return err
	}
	if (remainingDaily != nil && *remainingDaily < costCents) ||
		(remainingTotal != nil && *remainingTotal < costCents) {
		err = fmt.Errorf("campaign %d: %w", click.CampaignID, port.ErrInsufficientBudget)
		return err
	}
	_, err = tx.Exec(ctx, `UPDATE campaigns SET
        remaining_daily_budget_cents = remaining_daily_budget_cents - $1,
        remaining_total_budget_cents = remaining_total_budget_cents - $1,
        updated_at = now()
        WHERE id = $2`, costCents, click.CampaignID)
	return err
}

// CreateConversion inserts a conversion attributed to a click token. A
// duplicate token inserts nothing.
func (r *AdRepository) CreateConversion(ctx context.Context, conv *domain.Conversion) error {
	conv.CreatedAt = time.Now().UTC()
	_, err := r.pool.Exec(ctx, `INSERT INTO conversions
        (click_token, campaign_id, creative_id, placement_id, created_at)
        VALUES ($1,$2,$3,$4,$5) ON CONFLICT (click_token) DO NOTHING`,
		conv.ClickToken, conv.CampaignID, conv.CreativeID, conv.PlacementID, conv.CreatedAt)
	return err
}

// FindImpressionByToken returns an impression by token, nil when absent.
func (r *AdRepository) FindImpressionByToken(ctx context.Context, token string) (*domain.Impression, error) {
	var imp domain.Impression
	err := r.pool.QueryRow(ctx, `SELECT id, token, campaign_id, creative_id, placement_id, created_at
        FROM impressions WHERE token = $1`, token).
		Scan(&imp.ID, &imp.Token, &imp.CampaignID, &imp.CreativeID, &imp.PlacementID, &imp.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &imp, nil
}

// FindClickByToken returns a click by token, nil when absent.
func (r *AdRepository) FindClickByToken(ctx context.Context, token string) (*domain.Click, error) {
	var click domain.Click
	err := r.pool.QueryRow(ctx, `SELECT id, token, impression_id, campaign_id, creative_id, placement_id, cost_cents, created_at
        FROM clicks WHERE token = $1`, token).
		Scan(&click.ID, &click.Token, &click.ImpressionID, &click.CampaignID, &click.CreativeID, &click.PlacementID, &click.CostCents, &click.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &click, nil
}

// GetCreative returns a creative by id, nil when absent.
func (r *AdRepository) GetCreative(ctx context.Context, id int64) (*domain.Creative, error) {
	var cr domain.Creative
	err := r.pool.QueryRow(ctx, `SELECT id, campaign_id, name, creative_type, headline, body_text, cta_text,
        image_url, image_alt, destination_url, aspect_ratio, is_enabled, created_at, updated_at
        FROM creatives WHERE id = $1`, id).
		Scan(&cr.ID, &cr.CampaignID, &cr.Name, &cr.Type, &cr.Headline, &cr.BodyText, &cr.CTAText,
			&cr.ImageURL, &cr.ImageAlt, &cr.DestinationURL, &cr.AspectRatio, &cr.IsEnabled, &cr.CreatedAt, &cr.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cr, nil
}

// GetCampaign returns a campaign by id, nil when absent.
func (r *AdRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	var c domain.Campaign
	err := r.pool.QueryRow(ctx, `SELECT id, advertiser_name, status, start_date, end_date,
        daily_budget_cents, total_budget_cents, remaining_daily_budget_cents, remaining_total_budget_cents,
        cost_per_click_cents, created_at, updated_at
        FROM campaigns WHERE id = $1`, id).
		Scan(&c.ID, &c.AdvertiserName, &c.Status, &c.StartDate, &c.EndDate,
			&c.DailyBudgetCents, &c.TotalBudgetCents, &c.RemainingDailyBudgetCents, &c.RemainingTotalBudgetCents,
			&c.CostPerClickCents, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetStats returns aggregated funnel counts for campaigns in a period.
func (r *AdRepository) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	args := []interface{}{req.From, req.To}
	whereCampaign := ""
	if req.CampaignID != nil {
		whereCampaign = "AND campaign_id = $3"
		args = append(args, *req.CampaignID)
	}
	var resp port.StatsResp
	impQuery := fmt.Sprintf(`SELECT COALESCE(count(*),0) FROM impressions
        WHERE created_at >= $1 AND created_at <= $2 %s`, whereCampaign)
	if err := r.pool.QueryRow(ctx, impQuery, args...).Scan(&resp.Impressions); err != nil {
		return nil, err
	}
	clickQuery := fmt.Sprintf(`SELECT COALESCE(count(*),0), COALESCE(sum(cost_cents),0) FROM clicks
        WHERE created_at >= $1 AND created_at <= $2 %s`, whereCampaign)
	if err := r.pool.QueryRow(ctx, clickQuery, args...).Scan(&resp.Clicks, &resp.SpendCents); err != nil {
		return nil, err
	}
	convQuery := fmt.Sprintf(`SELECT COALESCE(count(*),0) FROM conversions
        WHERE created_at >= $1 AND created_at <= $2 %s`, whereCampaign)
	if err := r.pool.QueryRow(ctx, convQuery, args...).Scan(&resp.Conversions); err != nil {
		return nil, err
	}
	return &resp, nil
}
