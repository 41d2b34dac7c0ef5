package request

import (
	"testing"

	"dekora_studio/internal/domain/entities"
)

func TestEstimateRequest_ResolveTenantID(t *testing.T) {
	r := EstimateRequest{TenantID: " tenant-1 "}
	if got := r.ResolveTenantID(); got != "tenant-1" {
		t.Fatalf("expected tenant-1, got %q", got)
	}
	if got := (EstimateRequest{TenantID: "   "}).ResolveTenantID(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestEstimateRequest_ToSelection(t *testing.T) {
	r := EstimateRequest{
		TenantID:       "tenant-1",
		CarpetArea:     1100,
		Segment:        "Residential",
		Plan:           "Luxe",
		BedroomsCount:  3,
		BathroomsCount: 2,
		Configuration: ConfigurationRequest{
			RoomIDs:         []string{"kitchen"},
			MaterialGradeID: "hdhmr",
			FinishTypeID:    "pu-paint",
			LivingArea:      map[string]int{"tv-unit": 1},
			Kitchen:         KitchenSelectionRequest{LayoutID: "l-shaped", WoodTypeID: "teak", AddOnIDs: []string{"loft"}},
			Bedrooms:        BedroomSelectionRequest{MasterBedroom: true, StudyUnits: 2},
		},
	}

	sel := r.ToSelection()
	if sel.Segment != entities.SegmentResidential || sel.Plan != entities.PlanLuxe {
		t.Fatalf("expected normalized segment/plan, got %q/%q", sel.Segment, sel.Plan)
	}
	if sel.BedroomsCount != 3 || sel.BathroomsCount != 2 || sel.CarpetArea != 1100 {
		t.Fatalf("unexpected counts: %+v", sel)
	}
	if sel.Configuration.Kitchen.LayoutID != "l-shaped" || len(sel.Configuration.Kitchen.AddOnIDs) != 1 {
		t.Fatalf("unexpected kitchen selection: %+v", sel.Configuration.Kitchen)
	}
	if !sel.Configuration.Bedrooms.MasterBedroom || sel.Configuration.Bedrooms.StudyUnits != 2 {
		t.Fatalf("unexpected bedroom selection: %+v", sel.Configuration.Bedrooms)
	}
}

func TestEstimateRequest_ToCustomerInfo(t *testing.T) {
	r := EstimateRequest{Customer: CustomerInfoRequest{Name: " Asha ", City: "Pune"}}
	info := r.ToCustomerInfo()
	if info.Name != "Asha" || info.City != "Pune" {
		t.Fatalf("unexpected customer info: %+v", info)
	}
}

func TestAssignmentRequest_IsStatusChange(t *testing.T) {
	if (AssignmentRequest{AssignedTo: "staff-1"}).IsStatusChange() {
		t.Fatalf("assignment without status must not be a status change")
	}
	if !(AssignmentRequest{Status: "accepted"}).IsStatusChange() {
		t.Fatalf("expected status change")
	}
}
