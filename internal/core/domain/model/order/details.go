package order

import "strings"

// JewelleryDetails describes the piece under repair. The fields are free text
// and only feed notification templates, so none of them is required.
type JewelleryDetails struct {
	Name                string
	Weight              string
	Melting             string
	Timeline            string
	SpecialInstructions string
}

// Normalize trims surrounding whitespace from every field.
func (d JewelleryDetails) Normalize() JewelleryDetails {
	return JewelleryDetails{
		Name:                strings.TrimSpace(d.Name),
		Weight:              strings.TrimSpace(d.Weight),
		Melting:             strings.TrimSpace(d.Melting),
		Timeline:            strings.TrimSpace(d.Timeline),
		SpecialInstructions: strings.TrimSpace(d.SpecialInstructions),
	}
}
