package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type User struct {
	ID                  int       `db:"id" json:"id"`
	Name                string    `db:"name" json:"name"`
	Email               string    `db:"email" json:"email"`
	PasswordHash        string    `db:"password_hash" json:"-"`
	Theme               string    `db:"theme" json:"-"`
	Units               string    `db:"units" json:"-"`
	NotifyEmail         bool      `db:"notify_email" json:"-"`
	NotifyMonthlyReport bool      `db:"notify_monthly_report" json:"-"`
	NotifyTips          bool      `db:"notify_tips" json:"-"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
}

// StringList stores a set of strings as a JSONB column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
}

// CarbonRecord is one survey submission plus its derived emission value
// in kilograms CO2-equivalent. Records are append-only; later submissions
// supersede earlier ones for "latest" queries but are never updated or deleted.
type CarbonRecord struct {
	ID                        string     `db:"id" json:"_id"`
	UserID                    int        `db:"user_id" json:"user"`
	BodyType                  string     `db:"body_type" json:"bodyType"`
	Sex                       string     `db:"sex" json:"sex"`
	Diet                      string     `db:"diet" json:"diet"`
	HowOftenShower            string     `db:"how_often_shower" json:"howOftenShower"`
	HeatingEnergySource       string     `db:"heating_energy_source" json:"heatingEnergySource"`
	Transport                 string     `db:"transport" json:"transport"`
	VehicleType               string     `db:"vehicle_type" json:"vehicleType"`
	SocialActivity            string     `db:"social_activity" json:"socialActivity"`
	MonthlyGroceryBill        float64    `db:"monthly_grocery_bill" json:"monthlyGroceryBill"`
	FrequencyOfTravelingByAir string     `db:"frequency_of_traveling_by_air" json:"frequencyOfTravelingByAir"`
	VehicleMonthlyDistanceKm  float64    `db:"vehicle_monthly_distance_km" json:"vehicleMonthlyDistanceKm"`
	WasteBagSize              string     `db:"waste_bag_size" json:"wasteBagSize"`
	WasteBagWeeklyCount       float64    `db:"waste_bag_weekly_count" json:"wasteBagWeeklyCount"`
	HowLongTvPcDailyHour      float64    `db:"how_long_tv_pc_daily_hour" json:"howLongTvPcDailyHour"`
	HowManyNewClothesMonthly  float64    `db:"how_many_new_clothes_monthly" json:"howManyNewClothesMonthly"`
	HowLongInternetDailyHour  float64    `db:"how_long_internet_daily_hour" json:"howLongInternetDailyHour"`
	EnergyEfficiency          string     `db:"energy_efficiency" json:"energyEfficiency"`
	Recycling                 StringList `db:"recycling" json:"recycling"`
	CookingWith               StringList `db:"cooking_with" json:"cookingWith"`
	CarbonEmission            float64    `db:"carbon_emission" json:"carbonEmission"`
	RecordedAt                time.Time  `db:"recorded_at" json:"date"`
}
