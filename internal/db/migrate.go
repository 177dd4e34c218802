package db

import (
	"context"

	"github.com/jmoiron/sqlx"
)

func RunMigrations(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL,
    theme TEXT NOT NULL DEFAULT 'light',
    units TEXT NOT NULL DEFAULT 'metric',
    notify_email BOOLEAN NOT NULL DEFAULT true,
    notify_monthly_report BOOLEAN NOT NULL DEFAULT true,
    notify_tips BOOLEAN NOT NULL DEFAULT true,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS carbon_records (
    id UUID PRIMARY KEY,
    user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    body_type TEXT NOT NULL,
    sex TEXT NOT NULL,
    diet TEXT NOT NULL,
    how_often_shower TEXT NOT NULL,
    heating_energy_source TEXT NOT NULL,
    transport TEXT NOT NULL,
    vehicle_type TEXT NOT NULL,
    social_activity TEXT NOT NULL,
    monthly_grocery_bill DOUBLE PRECISION NOT NULL,
    frequency_of_traveling_by_air TEXT NOT NULL,
    vehicle_monthly_distance_km DOUBLE PRECISION NOT NULL,
    waste_bag_size TEXT NOT NULL,
    waste_bag_weekly_count DOUBLE PRECISION NOT NULL,
    how_long_tv_pc_daily_hour DOUBLE PRECISION NOT NULL,
    how_many_new_clothes_monthly DOUBLE PRECISION NOT NULL,
    how_long_internet_daily_hour DOUBLE PRECISION NOT NULL,
    energy_efficiency TEXT NOT NULL,
    recycling JSONB NOT NULL,
    cooking_with JSONB NOT NULL,
    carbon_emission DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (carbon_emission >= 0),
    recorded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_carbon_records_user_recorded
    ON carbon_records (user_id, recorded_at DESC);
`
	_, err := db.ExecContext(context.Background(), schema)
	return err
}
