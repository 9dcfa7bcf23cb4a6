package models

import "testing"

func TestPlanCatalog(t *testing.T) {
	t.Run("contains the four fixed plans", func(t *testing.T) {
		plans := Plans()
		if len(plans) != 4 {
			t.Fatalf("expected 4 plans, got %d", len(plans))
		}
		prices := map[string]int{
			PlanMobile:   149,
			PlanBasic:    199,
			PlanStandard: 499,
			PlanPremium:  649,
		}
		for _, p := range plans {
			want, ok := prices[p.ID]
			if !ok {
				t.Fatalf("unexpected plan id %q", p.ID)
			}
			if p.MonthlyPrice != want {
				t.Errorf("plan %s price = %d, want %d", p.ID, p.MonthlyPrice, want)
			}
			if p.Currency != "INR" {
				t.Errorf("plan %s currency = %q, want INR", p.ID, p.Currency)
			}
		}
	})

	t.Run("plans returns a copy", func(t *testing.T) {
		plans := Plans()
		plans[0].MonthlyPrice = 1
		if Plans()[0].MonthlyPrice == 1 {
			t.Error("mutating the returned slice changed the catalog")
		}
	})
}

func TestResolvePlan(t *testing.T) {
	t.Run("known ids resolve to themselves", func(t *testing.T) {
		for _, id := range []string{PlanMobile, PlanBasic, PlanStandard, PlanPremium} {
			if got := ResolvePlan(id); got.ID != id {
				t.Errorf("ResolvePlan(%q).ID = %q", id, got.ID)
			}
		}
	})

	t.Run("unknown and empty ids resolve to the default", func(t *testing.T) {
		for _, id := range []string{"", "ultra", "BASIC", "basic "} {
			got := ResolvePlan(id)
			if got.ID != DefaultPlanID {
				t.Errorf("ResolvePlan(%q).ID = %q, want %q", id, got.ID, DefaultPlanID)
			}
		}
	})
}

func TestIsKnownPlan(t *testing.T) {
	if !IsKnownPlan(PlanPremium) {
		t.Error("premium should be known")
	}
	if IsKnownPlan("ultra") {
		t.Error("ultra should not be known")
	}
	if IsKnownPlan("") {
		t.Error("empty id should not be known")
	}
}
