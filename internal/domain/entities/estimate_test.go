package entities

import "testing"

func TestCanTransitionStatus(t *testing.T) {
	cases := []struct {
		current   EstimateStatus
		requested EstimateStatus
		want      bool
	}{
		{EstimateStatusPending, EstimateStatusApproved, true},
		{EstimateStatusPending, EstimateStatusRejected, true},
		{EstimateStatusPending, EstimateStatusPending, false},
		{EstimateStatusApproved, EstimateStatusRejected, false},
		{EstimateStatusApproved, EstimateStatusPending, false},
		{EstimateStatusRejected, EstimateStatusPending, false},
		{EstimateStatusRejected, EstimateStatusApproved, false},
		{EstimateStatusPending, EstimateStatus("archived"), false},
		{EstimateStatusPending, EstimateStatus(""), false},
	}

	for _, tc := range cases {
		if got := CanTransitionStatus(tc.current, tc.requested); got != tc.want {
			t.Fatalf("CanTransitionStatus(%q, %q) = %v, want %v", tc.current, tc.requested, got, tc.want)
		}
	}
}

func TestCanTransitionAssignment(t *testing.T) {
	cases := []struct {
		current   AssignmentStatus
		requested AssignmentStatus
		want      bool
	}{
		{AssignmentStatusPending, AssignmentStatusAccepted, true},
		{AssignmentStatusAccepted, AssignmentStatusCompleted, true},
		{AssignmentStatusPending, AssignmentStatusCompleted, false},
		{AssignmentStatusCompleted, AssignmentStatusAccepted, false},
		{AssignmentStatusAccepted, AssignmentStatusPending, false},
		{AssignmentStatusPending, AssignmentStatus("dropped"), false},
	}

	for _, tc := range cases {
		if got := CanTransitionAssignment(tc.current, tc.requested); got != tc.want {
			t.Fatalf("CanTransitionAssignment(%q, %q) = %v, want %v", tc.current, tc.requested, got, tc.want)
		}
	}
}

func TestDocumentGenerated(t *testing.T) {
	if (EstimateRecord{}).DocumentGenerated() {
		t.Fatalf("expected no document on empty record")
	}
	rec := EstimateRecord{PDFURL: "https://cdn.example.com/estimates/t1/e1.pdf"}
	if !rec.DocumentGenerated() {
		t.Fatalf("expected document generated once pdf url is set")
	}
}

func TestDefaultPricingConfig(t *testing.T) {
	cfg := DefaultPricingConfig("tenant-1")
	if cfg.TenantID != "tenant-1" {
		t.Fatalf("expected tenant id to be carried, got %q", cfg.TenantID)
	}
	if len(cfg.RoomPricing) == 0 || len(cfg.MaterialGrades) == 0 || len(cfg.FinishTypes) == 0 {
		t.Fatalf("expected default rooms and multipliers")
	}
	for _, r := range cfg.RoomPricing {
		if r.Rate < 0 {
			t.Fatalf("negative default rate for %s", r.ID)
		}
		if !r.Enabled {
			t.Fatalf("default room %s should be enabled", r.ID)
		}
	}
	for _, m := range append(cfg.MaterialGrades, cfg.FinishTypes...) {
		if m.Multiplier < 0 {
			t.Fatalf("negative default multiplier for %s", m.ID)
		}
	}
	if len(cfg.LivingArea) == 0 || len(cfg.Kitchen.Layouts) == 0 || len(cfg.Bedrooms.Counts) == 0 {
		t.Fatalf("expected living area, kitchen and bedroom defaults")
	}
}

func TestCustomerSelectionValidate(t *testing.T) {
	valid := CustomerSelection{
		CarpetArea:     950,
		BedroomsCount:  2,
		BathroomsCount: 2,
		Configuration: SelectionConfiguration{
			LivingArea: map[string]int{"tv-unit": 1},
			Bedrooms:   BedroomSelection{StudyUnits: 1},
		},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	invalid := valid
	invalid.CarpetArea = -1
	if err := invalid.Validate(); err != ErrNegativeCarpetArea {
		t.Fatalf("expected ErrNegativeCarpetArea, got %v", err)
	}
}
