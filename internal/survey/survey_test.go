package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carboncare/internal/models"
)

func TestValidateAcceptsValidRecord(t *testing.T) {
	rec := sampleRecord()
	require.NoError(t, Validate(&rec))
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.CarbonRecord)
	}{
		{"unknown body type", func(r *models.CarbonRecord) { r.BodyType = "athletic" }},
		{"capitalized diet", func(r *models.CarbonRecord) { r.Diet = "Omnivore" }},
		{"unknown transport", func(r *models.CarbonRecord) { r.Transport = "Car" }},
		{"unknown heating source", func(r *models.CarbonRecord) { r.HeatingEnergySource = "solar" }},
		{"empty shower habit", func(r *models.CarbonRecord) { r.HowOftenShower = "" }},
		{"unknown waste bag size", func(r *models.CarbonRecord) { r.WasteBagSize = "huge" }},
		{"lowercase efficiency answer", func(r *models.CarbonRecord) { r.EnergyEfficiency = "yes" }},
		{"empty recycling set", func(r *models.CarbonRecord) { r.Recycling = nil }},
		{"invalid recycling material", func(r *models.CarbonRecord) { r.Recycling = models.StringList{"Paper", "Rubber"} }},
		{"empty cooking set", func(r *models.CarbonRecord) { r.CookingWith = models.StringList{} }},
		{"invalid cooking appliance", func(r *models.CarbonRecord) { r.CookingWith = models.StringList{"Campfire"} }},
		{"negative grocery bill", func(r *models.CarbonRecord) { r.MonthlyGroceryBill = -1 }},
		{"negative vehicle distance", func(r *models.CarbonRecord) { r.VehicleMonthlyDistanceKm = -50 }},
		{"negative emission", func(r *models.CarbonRecord) { r.CarbonEmission = -0.1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := sampleRecord()
			tc.mutate(&rec)
			assert.Error(t, Validate(&rec))
		})
	}
}

func TestValidateAllEnumeratedValues(t *testing.T) {
	// every declared categorical value must pass validation
	for _, bt := range BodyTypes {
		for _, d := range Diets {
			rec := sampleRecord()
			rec.BodyType = bt
			rec.Diet = d
			assert.NoError(t, Validate(&rec))
		}
	}
	for _, tr := range Transports {
		for _, h := range HeatingSources {
			rec := sampleRecord()
			rec.Transport = tr
			rec.HeatingEnergySource = h
			assert.NoError(t, Validate(&rec))
		}
	}
}
