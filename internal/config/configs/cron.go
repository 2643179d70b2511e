package configs

// Cron configures the scheduled jobs. Specs use the standard five-field
// cron syntax accepted by robfig/cron.
type Cron struct {
	// Enabled turns the in-process scheduler on. Disable it when the jobs
	// run elsewhere (e.g. a dedicated worker) to avoid double rotation.
	Enabled bool `env:"ENABLED" envDefault:"true"`
	// FeaturedSpec schedules the featured-clinic rotation. Hourly by
	// default.
	FeaturedSpec string `env:"FEATURED_SPEC" envDefault:"0 * * * *"`
	// FeaturedSlots is how many sponsored clinics hold the featured strip
	// at a time.
	FeaturedSlots int `env:"FEATURED_SLOTS" envDefault:"3"`
	// BudgetSpec schedules the nightly budget maintenance: daily remainder
	// reset and pausing of campaigns with spent total budgets.
	BudgetSpec string `env:"BUDGET_SPEC" envDefault:"5 0 * * *"`
}
