// Package survey owns the lifestyle questionnaire: the closed enumerations
// each categorical field may take, boundary validation of submissions, and
// the mapping between persistence field names and the human-readable labels
// the prediction service expects.
package survey

import (
	"fmt"

	"carboncare/internal/models"
)

var (
	BodyTypes      = []string{"normal", "overweight", "obese", "underweight"}
	Sexes          = []string{"male", "female"}
	Diets          = []string{"omnivore", "pescatarian", "vegetarian", "vegan"}
	ShowerHabits   = []string{"daily", "less frequently", "more frequently", "twice a day"}
	HeatingSources = []string{"coal", "natural gas", "wood", "electricity"}
	Transports     = []string{"public", "private", "walk/bicycle"}
	VehicleTypes   = []string{"petrol", "diesel", "hybrid", "lpg", "electric"}
	SocialLevels   = []string{"never", "sometimes", "often"}
	AirTravel      = []string{"never", "rarely", "frequently", "very frequently"}
	WasteBagSizes  = []string{"small", "medium", "large", "extra large"}
	EfficiencyAns  = []string{"No", "Sometimes", "Yes"}

	RecyclingMaterials = []string{"Paper", "Plastic", "Glass", "Metal"}
	CookingAppliances  = []string{"Stove", "Oven", "Microwave", "Grill", "Airfryer"}
)

func oneOf(allowed []string, v string) bool {
	for _, a := range allowed {
		if a == v {
			return true
		}
	}
	return false
}

func subsetOf(allowed []string, vs []string) bool {
	for _, v := range vs {
		if !oneOf(allowed, v) {
			return false
		}
	}
	return true
}

// Validate checks a submission against the closed enumerations before it may
// reach persistence or the prediction service. The first violation is returned.
func Validate(rec *models.CarbonRecord) error {
	categorical := []struct {
		field   string
		value   string
		allowed []string
	}{
		{"bodyType", rec.BodyType, BodyTypes},
		{"sex", rec.Sex, Sexes},
		{"diet", rec.Diet, Diets},
		{"howOftenShower", rec.HowOftenShower, ShowerHabits},
		{"heatingEnergySource", rec.HeatingEnergySource, HeatingSources},
		{"transport", rec.Transport, Transports},
		{"vehicleType", rec.VehicleType, VehicleTypes},
		{"socialActivity", rec.SocialActivity, SocialLevels},
		{"frequencyOfTravelingByAir", rec.FrequencyOfTravelingByAir, AirTravel},
		{"wasteBagSize", rec.WasteBagSize, WasteBagSizes},
		{"energyEfficiency", rec.EnergyEfficiency, EfficiencyAns},
	}
	for _, c := range categorical {
		if !oneOf(c.allowed, c.value) {
			return fmt.Errorf("%s: %q is not a valid value", c.field, c.value)
		}
	}

	if len(rec.Recycling) == 0 {
		return fmt.Errorf("recycling: at least one material is required")
	}
	if !subsetOf(RecyclingMaterials, rec.Recycling) {
		return fmt.Errorf("recycling: contains an invalid material")
	}
	if len(rec.CookingWith) == 0 {
		return fmt.Errorf("cookingWith: at least one appliance is required")
	}
	if !subsetOf(CookingAppliances, rec.CookingWith) {
		return fmt.Errorf("cookingWith: contains an invalid appliance")
	}

	numeric := []struct {
		field string
		value float64
	}{
		{"monthlyGroceryBill", rec.MonthlyGroceryBill},
		{"vehicleMonthlyDistanceKm", rec.VehicleMonthlyDistanceKm},
		{"wasteBagWeeklyCount", rec.WasteBagWeeklyCount},
		{"howLongTvPcDailyHour", rec.HowLongTvPcDailyHour},
		{"howManyNewClothesMonthly", rec.HowManyNewClothesMonthly},
		{"howLongInternetDailyHour", rec.HowLongInternetDailyHour},
		{"carbonEmission", rec.CarbonEmission},
	}
	for _, n := range numeric {
		if n.value < 0 {
			return fmt.Errorf("%s: must not be negative", n.field)
		}
	}
	return nil
}
