package pricing

import (
	"fmt"
	"math"
	"sort"

	"dekora_studio/internal/domain/entities"
)

// Result groups the calculator output: the rounded quote total plus the full
// ordered breakdown the document renderer consumes.
type Result struct {
	TotalAmount float64             `json:"total_amount"`
	Breakdown   []entities.LineItem `json:"breakdown"`
}

// ComputeEstimate turns a customer's selections and a tenant's pricing
// configuration into a quoted total with a line-item breakdown.
//
// The function is pure and deterministic: no I/O, no shared state, same
// inputs always produce the same result. Both arguments are fully
// materialized values, so concurrent calls never observe a partial config
// update.
//
// Configuration gaps (missing or disabled items) degrade to zero-amount
// excluded lines; a customer-facing submission must never crash on a pricing
// gap. The only hard failures are structurally invalid selections (negative
// area, quantities or counts), rejected before anything else happens.
func ComputeEstimate(sel entities.CustomerSelection, cfg entities.PricingConfig) (Result, error) {
	if err := sel.Validate(); err != nil {
		return Result{}, err
	}

	var lines []entities.LineItem
	lines = append(lines, roomLines(sel, cfg)...)
	lines = append(lines, livingAreaLines(sel, cfg)...)
	lines = append(lines, kitchenLines(sel, cfg)...)
	lines = append(lines, bedroomLines(sel, cfg)...)

	total := 0.0
	for _, l := range lines {
		if l.Included {
			total += l.Amount
		}
	}

	// Customers never see sub-unit precision.
	return Result{TotalAmount: math.Round(total), Breakdown: lines}, nil
}

// roomLines prices each selected room: baseRate x materialMultiplier x
// finishMultiplier. Disabled multiplier entries fall back to 1.0, never to
// zero.
func roomLines(sel entities.CustomerSelection, cfg entities.PricingConfig) []entities.LineItem {
	matMult, matNote := resolveMultiplier(cfg.MaterialGrades, sel.Configuration.MaterialGradeID)
	finMult, finNote := resolveMultiplier(cfg.FinishTypes, sel.Configuration.FinishTypeID)
	note := joinNotes(matNote, finNote)

	var lines []entities.LineItem
	for _, roomID := range sel.Configuration.RoomIDs {
		room, found := findRoom(cfg.RoomPricing, roomID)
		switch {
		case !found:
			lines = append(lines, entities.LineItem{
				Section: entities.LineSectionRooms,
				Label:   roomID,
				Note:    entities.LineNoteUnpriced,
			})
		case !room.Enabled:
			lines = append(lines, entities.LineItem{
				Section: entities.LineSectionRooms,
				Label:   room.Name,
				Note:    entities.LineNoteDisabled,
			})
		default:
			lines = append(lines, entities.LineItem{
				Section:  entities.LineSectionRooms,
				Label:    room.Name,
				Amount:   room.Rate * matMult * finMult,
				Included: true,
				Note:     note,
			})
		}
	}
	return lines
}

// livingAreaLines adds flat add-ons. Quantities multiply the flat price;
// nothing here scales by area or material.
func livingAreaLines(sel entities.CustomerSelection, cfg entities.PricingConfig) []entities.LineItem {
	names := make([]string, 0, len(sel.Configuration.LivingArea))
	for name, qty := range sel.Configuration.LivingArea {
		if qty > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var lines []entities.LineItem
	for _, name := range names {
		qty := sel.Configuration.LivingArea[name]
		opt, ok := cfg.LivingArea[name]
		switch {
		case !ok:
			lines = append(lines, entities.LineItem{
				Section: entities.LineSectionLivingArea,
				Label:   name,
				Note:    entities.LineNoteUnpriced,
			})
		case !opt.Enabled:
			lines = append(lines, entities.LineItem{
				Section: entities.LineSectionLivingArea,
				Label:   name,
				Note:    entities.LineNoteDisabled,
			})
		default:
			lines = append(lines, entities.LineItem{
				Section:  entities.LineSectionLivingArea,
				Label:    quantityLabel(name, qty),
				Amount:   opt.Price * float64(qty),
				Included: true,
			})
		}
	}
	return lines
}

// kitchenLines prices layout.basePrice x woodType.multiplier plus selected
// add-ons. A missing/disabled layout zeroes the base term (the layout carries
// the money); a missing/disabled wood type only loses its scaling.
func kitchenLines(sel entities.CustomerSelection, cfg entities.PricingConfig) []entities.LineItem {
	k := sel.Configuration.Kitchen
	var lines []entities.LineItem

	if k.LayoutID != "" {
		layout, found := findLayout(cfg.Kitchen.Layouts, k.LayoutID)
		switch {
		case !found:
			lines = append(lines, entities.LineItem{
				Section: entities.LineSectionKitchen,
				Label:   k.LayoutID,
				Note:    entities.LineNoteUnpriced,
			})
		case !layout.Enabled:
			lines = append(lines, entities.LineItem{
				Section: entities.LineSectionKitchen,
				Label:   layout.Name,
				Note:    entities.LineNoteDisabled,
			})
		default:
			woodMult, woodNote := resolveMultiplier(cfg.Kitchen.WoodTypes, k.WoodTypeID)
			lines = append(lines, entities.LineItem{
				Section:  entities.LineSectionKitchen,
				Label:    layout.Name + " kitchen",
				Amount:   layout.BasePrice * woodMult,
				Included: true,
				Note:     woodNote,
			})
		}
	}

	for _, addOnID := range k.AddOnIDs {
		addOn, found := findAddOn(cfg.Kitchen.AddOns, addOnID)
		switch {
		case !found:
			lines = append(lines, entities.LineItem{
				Section: entities.LineSectionKitchen,
				Label:   addOnID,
				Note:    entities.LineNoteUnpriced,
			})
		case !addOn.Enabled:
			lines = append(lines, entities.LineItem{
				Section: entities.LineSectionKitchen,
				Label:   addOn.Name,
				Note:    entities.LineNoteDisabled,
			})
		default:
			lines = append(lines, entities.LineItem{
				Section:  entities.LineSectionKitchen,
				Label:    addOn.Name,
				Amount:   addOn.Price,
				Included: true,
			})
		}
	}
	return lines
}

func bedroomLines(sel entities.CustomerSelection, cfg entities.PricingConfig) []entities.LineItem {
	var lines []entities.LineItem

	if sel.BedroomsCount > 0 {
		label := fmt.Sprintf("%d bedroom(s)", sel.BedroomsCount)
		rate, found := findBedroomCount(cfg.Bedrooms.Counts, sel.BedroomsCount)
		switch {
		case !found:
			lines = append(lines, entities.LineItem{
				Section: entities.LineSectionBedrooms,
				Label:   label,
				Note:    entities.LineNoteUnpriced,
			})
		case !rate.Enabled:
			lines = append(lines, entities.LineItem{
				Section: entities.LineSectionBedrooms,
				Label:   label,
				Note:    entities.LineNoteDisabled,
			})
		default:
			lines = append(lines, entities.LineItem{
				Section:  entities.LineSectionBedrooms,
				Label:    label,
				Amount:   rate.BasePrice,
				Included: true,
			})
		}

		if cfg.Bedrooms.Wardrobe.Enabled {
			lines = append(lines, entities.LineItem{
				Section:  entities.LineSectionBedrooms,
				Label:    quantityLabel("Wardrobe", sel.BedroomsCount),
				Amount:   cfg.Bedrooms.Wardrobe.PricePerBedroom * float64(sel.BedroomsCount),
				Included: true,
			})
		}
	}

	if sel.Configuration.Bedrooms.MasterBedroom {
		if cfg.Bedrooms.MasterBedroom.Enabled {
			lines = append(lines, entities.LineItem{
				Section:  entities.LineSectionBedrooms,
				Label:    "Master bedroom",
				Amount:   cfg.Bedrooms.MasterBedroom.AdditionalPrice,
				Included: true,
			})
		} else {
			lines = append(lines, entities.LineItem{
				Section: entities.LineSectionBedrooms,
				Label:   "Master bedroom",
				Note:    entities.LineNoteDisabled,
			})
		}
	}

	if units := sel.Configuration.Bedrooms.StudyUnits; units > 0 {
		if cfg.Bedrooms.StudyUnit.Enabled {
			lines = append(lines, entities.LineItem{
				Section:  entities.LineSectionBedrooms,
				Label:    quantityLabel("Study unit", units),
				Amount:   cfg.Bedrooms.StudyUnit.PricePerUnit * float64(units),
				Included: true,
			})
		} else {
			lines = append(lines, entities.LineItem{
				Section: entities.LineSectionBedrooms,
				Label:   "Study unit",
				Note:    entities.LineNoteDisabled,
			})
		}
	}
	return lines
}

// resolveMultiplier looks up a multiplier by id. Unselected, missing or
// disabled entries scale by 1.0; a disabled grade must not zero out real
// cost. The note surfaces the fallback on the affected lines.
func resolveMultiplier(items []entities.Multiplier, id string) (float64, string) {
	if id == "" {
		return 1.0, ""
	}
	for _, it := range items {
		if it.ID != id {
			continue
		}
		if !it.Enabled {
			return 1.0, fmt.Sprintf("%s disabled, multiplier not applied", it.Name)
		}
		return it.Multiplier, ""
	}
	return 1.0, fmt.Sprintf("%s %s, multiplier not applied", id, entities.LineNoteUnpriced)
}

func findRoom(rooms []entities.RoomRate, id string) (entities.RoomRate, bool) {
	for _, r := range rooms {
		if r.ID == id {
			return r, true
		}
	}
	return entities.RoomRate{}, false
}

func findLayout(layouts []entities.KitchenLayout, id string) (entities.KitchenLayout, bool) {
	for _, l := range layouts {
		if l.ID == id {
			return l, true
		}
	}
	return entities.KitchenLayout{}, false
}

func findAddOn(addOns []entities.KitchenAddOn, id string) (entities.KitchenAddOn, bool) {
	for _, a := range addOns {
		if a.ID == id {
			return a, true
		}
	}
	return entities.KitchenAddOn{}, false
}

func findBedroomCount(counts []entities.BedroomCountRate, count int) (entities.BedroomCountRate, bool) {
	for _, c := range counts {
		if c.Count == count {
			return c, true
		}
	}
	return entities.BedroomCountRate{}, false
}

func quantityLabel(name string, qty int) string {
	if qty <= 1 {
		return name
	}
	return fmt.Sprintf("%s x %d", name, qty)
}

func joinNotes(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + "; " + b
	}
}
