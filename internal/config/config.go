package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"powergas-profit/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML) for a single-trip
// calculation.
type Config struct {
	// Optional: load trip parameters from a separate YAML (e.g. examples/trips/*.yaml).
	// If both TripFile and Trip are provided, Trip overrides TripFile.
	TripFile string     `yaml:"trip_file"`
	Trip     TripConfig `yaml:"trip"`
}

// TripConfig mirrors model.TripInputs field for field. Numeric fields are
// pointers so a field that is absent in the YAML can be told apart from an
// explicit zero and reported by name.
type TripConfig struct {
	TripID          string `yaml:"trip_id"`
	MotherStation   string `yaml:"mother_station"`
	DaughterStation string `yaml:"daughter_station"`

	GasVolume *float64 `yaml:"gas_volume"`
	GasPrice  *float64 `yaml:"gas_price"`

	GasCost   *float64 `yaml:"gas_cost"`
	PlantCost *float64 `yaml:"plant_cost"`
	GACost    *float64 `yaml:"ga_cost"`

	TruckDepreciation      *float64 `yaml:"truck_depreciation"`
	TruckInsuranceInterest *float64 `yaml:"truck_insurance_interest"`
	FuelCost               *float64 `yaml:"fuel_cost"`
	TruckTurnaroundTime    *float64 `yaml:"truck_turnaround_time"`

	TruckingModel        string   `yaml:"trucking_model"`
	FixedTruckingCost    *float64 `yaml:"fixed_trucking_cost"`
	VariableTruckingCost *float64 `yaml:"variable_trucking_cost"`
	RoundTripDistance    *float64 `yaml:"round_trip_distance"`
	TruckingDayRate      *float64 `yaml:"trucking_day_rate"`
	TripDays             *float64 `yaml:"trip_days"`

	SkidDepreciation   *float64 `yaml:"skid_depreciation"`
	SkidTurnaroundTime *float64 `yaml:"skid_turnaround_time"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If trip_file is set, load it and merge in any explicit overrides from c.Trip.
	if c.TripFile != "" {
		tripPath := c.TripFile
		if !filepath.IsAbs(tripPath) {
			// Prefer interpreting relative paths as relative to the config file
			// directory, but fall back to the provided path (relative to cwd)
			// if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), tripPath)
			if _, err := os.Stat(cand); err == nil {
				tripPath = cand
			}
		}
		loaded, err := loadTripFile(tripPath)
		if err != nil {
			return nil, err
		}
		c.Trip = MergeTrip(loaded, c.Trip)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	trip, err := c.Trip.ToModel()
	if err != nil {
		return fmt.Errorf("trip config invalid: %w", err)
	}
	if err := trip.Validate(); err != nil {
		return fmt.Errorf("trip config invalid: %w", err)
	}
	return nil
}

// ToModel converts to model.TripInputs, failing with a ValidationError
// naming the first mandatory field that is absent. Which trucking fields
// are mandatory depends on the trucking model tag.
func (c TripConfig) ToModel() (model.TripInputs, error) {
	t := model.TripInputs{
		TripID:          c.TripID,
		MotherStation:   c.MotherStation,
		DaughterStation: c.DaughterStation,
		Trucking:        model.TruckingModel(c.TruckingModel),
	}

	type reqField struct {
		name string
		src  *float64
		dst  *float64
	}
	required := []reqField{
		{"gas_volume", c.GasVolume, &t.GasVolumeSCM},
		{"gas_price", c.GasPrice, &t.GasPriceSCM},
		{"gas_cost", c.GasCost, &t.GasCostSCM},
		{"plant_cost", c.PlantCost, &t.PlantCostSCM},
		{"ga_cost", c.GACost, &t.GACostSCM},
		{"truck_depreciation", c.TruckDepreciation, &t.TruckDepreciationHr},
		{"truck_insurance_interest", c.TruckInsuranceInterest, &t.TruckInsuranceInterestHr},
		{"fuel_cost", c.FuelCost, &t.FuelCostHr},
		{"truck_turnaround_time", c.TruckTurnaroundTime, &t.TruckTurnaroundHr},
		{"skid_depreciation", c.SkidDepreciation, &t.SkidDepreciationHr},
		{"skid_turnaround_time", c.SkidTurnaroundTime, &t.SkidTurnaroundHr},
	}
	switch t.TruckingOrDefault() {
	case model.TruckingPerDay:
		required = append(required,
			reqField{"trucking_day_rate", c.TruckingDayRate, &t.TruckingDayRate},
			reqField{"trip_days", c.TripDays, &t.TripDays},
		)
	default:
		required = append(required,
			reqField{"fixed_trucking_cost", c.FixedTruckingCost, &t.FixedTruckingKm},
			reqField{"variable_trucking_cost", c.VariableTruckingCost, &t.VariableTruckingKm},
			reqField{"round_trip_distance", c.RoundTripDistance, &t.RoundTripKm},
		)
	}

	for _, f := range required {
		if f.src == nil {
			return model.TripInputs{}, &model.ValidationError{Field: f.name}
		}
		*f.dst = *f.src
	}
	return t, nil
}

type tripFileWrapper struct {
	Trip TripConfig `yaml:"trip"`
}

func loadTripFile(path string) (TripConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return TripConfig{}, err
	}
	var w tripFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return TripConfig{}, err
	}
	return w.Trip, nil
}

// MergeTrip overlays set fields from override onto base. Pointer fields make
// an explicit zero distinguishable from "not provided", so a what-if override
// can legitimately zero out a rate or the volume.
func MergeTrip(base, override TripConfig) TripConfig {
	out := base
	if override.TripID != "" {
		out.TripID = override.TripID
	}
	if override.MotherStation != "" {
		out.MotherStation = override.MotherStation
	}
	if override.DaughterStation != "" {
		out.DaughterStation = override.DaughterStation
	}
	if override.TruckingModel != "" {
		out.TruckingModel = override.TruckingModel
	}
	for _, f := range []struct {
		dst **float64
		src *float64
	}{
		{&out.GasVolume, override.GasVolume},
		{&out.GasPrice, override.GasPrice},
		{&out.GasCost, override.GasCost},
		{&out.PlantCost, override.PlantCost},
		{&out.GACost, override.GACost},
		{&out.TruckDepreciation, override.TruckDepreciation},
		{&out.TruckInsuranceInterest, override.TruckInsuranceInterest},
		{&out.FuelCost, override.FuelCost},
		{&out.TruckTurnaroundTime, override.TruckTurnaroundTime},
		{&out.FixedTruckingCost, override.FixedTruckingCost},
		{&out.VariableTruckingCost, override.VariableTruckingCost},
		{&out.RoundTripDistance, override.RoundTripDistance},
		{&out.TruckingDayRate, override.TruckingDayRate},
		{&out.TripDays, override.TripDays},
		{&out.SkidDepreciation, override.SkidDepreciation},
		{&out.SkidTurnaroundTime, override.SkidTurnaroundTime},
	} {
		if f.src != nil {
			*f.dst = f.src
		}
	}
	return out
}
