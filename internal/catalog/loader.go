package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"

	"github.com/liyu-tw/coursepick/pkg/model"
)

// OfferingsFromJSON reads a catalog file: a JSON array of offering records with
// defaulted optional fields, as produced by the catalog-management tooling. The
// records are decoded permissively and then normalised (a missing priority
// becomes the default weight, duplicate time slots collapse, the category is
// canonicalised), but each record must still pass the same validation the
// catalog applies on construction: malformed priority, credits, category or
// slot ranges are rejected, not coerced.
func OfferingsFromJSON(file string) ([]model.Offering, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("cannot read catalog file: %w", err)
	}

	var records []map[string]any
	if err := json.Unmarshal(bytes, &records); err != nil {
		return nil, fmt.Errorf("cannot parse catalog file: %w", err)
	}

	validate := validator.New()
	registerRules(validate)

	offerings := make([]model.Offering, 0, len(records))
	for i, record := range records {
		var offering model.Offering
		if err := mapstructure.Decode(record, &offering); err != nil {
			return nil, fmt.Errorf("cannot decode offering record %d: %w", i, err)
		}
		if offering.Priority == 0 {
			offering.Priority = model.DefaultPriority
		}
		if category, err := model.ParseCategory(string(offering.Category)); err == nil {
			offering.Category = category
		}
		offering.TimeSlots = model.NormalizeTimeSlots(offering.TimeSlots)
		if err := validate.Struct(offering); err != nil {
			return nil, fmt.Errorf("invalid offering record %d (%q): %w", i, offering.Name, err)
		}
		offerings = append(offerings, offering)
	}
	return offerings, nil
}
