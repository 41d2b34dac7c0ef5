package entities

// Breakdown sections, in the order the calculator emits them.
const (
	LineSectionRooms      = "rooms"
	LineSectionLivingArea = "living_area"
	LineSectionKitchen    = "kitchen"
	LineSectionBedrooms   = "bedrooms"
)

// Line notes for terms that degraded to zero instead of failing the estimate.
const (
	LineNoteUnpriced = "unpriced"
	LineNoteDisabled = "disabled"
)

// LineItem is one contributing term of an estimate breakdown.
//
// The breakdown is complete by construction: summing Amount over lines with
// Included == true reproduces the record's TotalAmount (modulo final
// rounding). Terms that hit a configuration gap are carried with Amount 0,
// Included false and a Note, so the document renderer and the admin UI can
// show exactly what was left out of the quote.
type LineItem struct {
	Section  string  `json:"section"`
	Label    string  `json:"label"`
	Amount   float64 `json:"amount"`
	Included bool    `json:"included"`
	Note     string  `json:"note,omitempty"`
}
