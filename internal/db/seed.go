package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"relief-ads/internal/placement"
)

// Seed inserts demo data: every spec-table placement, a handful of
// campaigns with creatives and weighted assignments, and a pool of
// sponsored clinics for the featured rotation. Safe to run repeatedly.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, name := range placement.Names() {
		spec, _ := placement.Lookup(name)
		_, err := pool.Exec(ctx, `INSERT INTO placements (name, label, page_type)
            VALUES ($1,$2,$3) ON CONFLICT (name) DO NOTHING`, name, spec.Label, spec.PageType)
		if err != nil {
			return err
		}
	}

	types := []string{"image_banner", "html", "text", "native"}
	ratios := []string{"1:1", "4:3", "16:9"}
	for i := 1; i <= 5; i++ {
		advertiser := fmt.Sprintf("Advertiser %d", i)
		start := time.Now().AddDate(0, 0, -1)
		end := time.Now().AddDate(0, 1, 0)
		dailyBudget := int64(100000)
		totalBudget := int64(500000)
		_, err := pool.Exec(ctx, `INSERT INTO campaigns
            (id, advertiser_name, status, start_date, end_date, daily_budget_cents, total_budget_cents,
             remaining_daily_budget_cents, remaining_total_budget_cents, cost_per_click_cents)
            VALUES ($1,$2,'active',$3,$4,$5,$6,$5,$6,$7) ON CONFLICT DO NOTHING`,
			i, advertiser, start, end, dailyBudget, totalBudget, int64(50+r.Intn(200)))
		if err != nil {
			return err
		}

		for j := 1; j <= 4; j++ {
			crID := (i-1)*4 + j
			crType := types[r.Intn(len(types))]
			ratio := ratios[r.Intn(len(ratios))]
			headline := fmt.Sprintf("Find relief today %d", crID)
			dest := fmt.Sprintf("https://example.com/landing/%d", crID)
			imageURL := fmt.Sprintf("https://cdn.example.com/creative/%d.webp", crID)
			_, err = pool.Exec(ctx, `INSERT INTO creatives
                (id, campaign_id, name, creative_type, headline, body_text, cta_text,
                 image_url, image_alt, destination_url, aspect_ratio)
                VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11) ON CONFLICT DO NOTHING`,
				crID, i, fmt.Sprintf("Creative %d", crID), crType, headline,
				"Board-certified pain specialists near you.", "Book a visit",
				imageURL, "clinic ad", dest, ratio)
			if err != nil {
				return err
			}
		}

		// assign each campaign to a couple of placements with spread weights
		names := placement.Names()
		for _, k := range []int{r.Intn(len(names)), r.Intn(len(names))} {
			_, err = pool.Exec(ctx, `INSERT INTO campaign_placements (campaign_id, placement_id, weight)
                SELECT $1, id, $2 FROM placements WHERE name = $3
                ON CONFLICT DO NOTHING`, i, 1+r.Intn(5), names[k])
			if err != nil {
				return err
			}
		}
	}

	for i := 1; i <= 12; i++ {
		name := fmt.Sprintf("Relief Clinic %d", i)
		slug := fmt.Sprintf("relief-clinic-%d", i)
		sponsored := i <= 8
		_, err := pool.Exec(ctx, `INSERT INTO clinics (name, slug, is_sponsored)
            VALUES ($1,$2,$3) ON CONFLICT (slug) DO NOTHING`, name, slug, sponsored)
		if err != nil {
			return err
		}
	}
	return nil
}
