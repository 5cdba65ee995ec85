package main

import (
	"context"
	"fmt"
	"time"

	"xoadvisor/database/repository"
	"xoadvisor/models"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var seedResourcesCmd = &cobra.Command{
	Use:   "seed-resources",
	Short: "Insert demo directory resources, one set per category",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := seedResources(cmd.Context(), store.Resources, time.Now().UTC())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "inserted %d resources\n", n)
		return nil
	},
}

func ptr(s string) *string { return &s }

func demoResources() []models.Resource {
	return []models.Resource{
		{
			Category:     models.CategoryHousing,
			Title:        "Transitional Housing Program",
			Description:  "Up to 24 months of supportive housing with case management for people leaving incarceration.",
			Organization: "Second Chance Housing Alliance",
			ContactPhone: ptr("555-0110"),
			WebsiteURL:   ptr("https://example.org/housing"),
		},
		{
			Category:     models.CategoryHousing,
			Title:        "Emergency Shelter Referral",
			Description:  "Same-day shelter placement and rapid re-housing assessments.",
			Organization: "County Coordinated Entry",
			ContactPhone: ptr("555-0111"),
		},
		{
			Category:     models.CategoryEmployment,
			Title:        "Fair Chance Job Fair",
			Description:  "Monthly hiring event with employers open to candidates with records.",
			Organization: "WorkSource Reentry Center",
			ContactEmail: ptr("jobs@example.org"),
			Address:      ptr("100 Main St"),
		},
		{
			Category:     models.CategoryTransportation,
			Title:        "Reduced Fare Transit Pass",
			Description:  "Discounted monthly bus and rail passes for low-income riders and veterans.",
			Organization: "Metro Transit",
			WebsiteURL:   ptr("https://example.org/transit"),
		},
		{
			Category:     models.CategoryAssistance,
			Title:        "Benefits Enrollment Clinic",
			Description:  "Help applying for SNAP, Medicaid, SSI and replacement identification documents.",
			Organization: "Legal Aid Society",
			ContactPhone: ptr("555-0140"),
		},
	}
}

// seedResources inserts the demo set. Rows are spaced a second apart so the
// newest-first admin listing is stable.
func seedResources(ctx context.Context, repo repository.ResourceRepository, now time.Time) (int, error) {
	inserted := 0
	for i, r := range demoResources() {
		r.ID = uuid.New().String()
		r.IsActive = true
		r.CreatedAt = now.Add(time.Duration(i) * time.Second)
		r.UpdatedAt = r.CreatedAt
		if err := repo.Create(ctx, &r); err != nil {
			return inserted, fmt.Errorf("seed %q: %w", r.Title, err)
		}
		inserted++
	}
	return inserted, nil
}
