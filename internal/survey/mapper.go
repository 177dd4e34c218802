package survey

import "carboncare/internal/models"

// fieldLabels maps each persistence field name to the label the prediction
// service was trained on. It is the single source of truth for both mapping
// directions; every one of the 19 survey fields appears exactly once.
var fieldLabels = map[string]string{
	"bodyType":                  "Body Type",
	"sex":                       "Sex",
	"diet":                      "Diet",
	"howOftenShower":            "How Often Shower",
	"heatingEnergySource":       "Heating Energy Source",
	"transport":                 "Transport",
	"vehicleType":               "Vehicle Type",
	"socialActivity":            "Social Activity",
	"monthlyGroceryBill":        "Monthly Grocery Bill",
	"frequencyOfTravelingByAir": "Frequency of Traveling by Air",
	"vehicleMonthlyDistanceKm":  "Vehicle Monthly Distance Km",
	"wasteBagSize":              "Waste Bag Size",
	"wasteBagWeeklyCount":       "Waste Bag Weekly Count",
	"howLongTvPcDailyHour":      "How Long TV PC Daily Hour",
	"howManyNewClothesMonthly":  "How Many New Clothes Monthly",
	"howLongInternetDailyHour":  "How Long Internet Daily Hour",
	"energyEfficiency":          "Energy efficiency",
	"recycling":                 "Recycling",
	"cookingWith":               "Cooking_With",
}

var labelFields = func() map[string]string {
	m := make(map[string]string, len(fieldLabels))
	for field, label := range fieldLabels {
		m[label] = field
	}
	return m
}()

// FieldLabels returns a copy of the persistence-name → external-label table.
func FieldLabels() map[string]string {
	m := make(map[string]string, len(fieldLabels))
	for k, v := range fieldLabels {
		m[k] = v
	}
	return m
}

// ExternalLabels renders a record under the labels the prediction service
// expects. The mapping is total: all 19 fields are present, nothing else is.
func ExternalLabels(rec models.CarbonRecord) map[string]any {
	return map[string]any{
		"Body Type":                     rec.BodyType,
		"Sex":                           rec.Sex,
		"Diet":                          rec.Diet,
		"How Often Shower":              rec.HowOftenShower,
		"Heating Energy Source":         rec.HeatingEnergySource,
		"Transport":                     rec.Transport,
		"Vehicle Type":                  rec.VehicleType,
		"Social Activity":               rec.SocialActivity,
		"Monthly Grocery Bill":          rec.MonthlyGroceryBill,
		"Frequency of Traveling by Air": rec.FrequencyOfTravelingByAir,
		"Vehicle Monthly Distance Km":   rec.VehicleMonthlyDistanceKm,
		"Waste Bag Size":                rec.WasteBagSize,
		"Waste Bag Weekly Count":        rec.WasteBagWeeklyCount,
		"How Long TV PC Daily Hour":     rec.HowLongTvPcDailyHour,
		"How Many New Clothes Monthly":  rec.HowManyNewClothesMonthly,
		"How Long Internet Daily Hour":  rec.HowLongInternetDailyHour,
		"Energy efficiency":             rec.EnergyEfficiency,
		"Recycling":                     []string(rec.Recycling),
		"Cooking_With":                  []string(rec.CookingWith),
	}
}

// PersistenceFields renames a label-keyed mapping (as produced by the survey
// form) back to persistence field names. Keys outside the label table are
// dropped rather than invented; values pass through untouched.
func PersistenceFields(labeled map[string]any) map[string]any {
	out := make(map[string]any, len(labeled))
	for label, v := range labeled {
		if field, ok := labelFields[label]; ok {
			out[field] = v
		}
	}
	return out
}
