// Package seed loads demo data into the driver core at startup.
// Fixtures are YAML documents; environment variables referenced as ${NAME}
// or ${NAME:-default} are expanded before parsing.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/drone/envsubst"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultFixture []byte

type Fixture struct {
	Driver DriverFixture  `yaml:"driver"`
	Orders []OrderFixture `yaml:"orders"`
}

type DriverFixture struct {
	Name            string           `yaml:"name"`
	Email           string           `yaml:"email"`
	Password        string           `yaml:"password"`
	Phone           string           `yaml:"phone"`
	LicenseNumber   string           `yaml:"license_number"`
	AccountStatus   string           `yaml:"account_status"`
	Vehicle         VehicleFixture   `yaml:"vehicle"`
	Rating          float64          `yaml:"rating"`
	TotalDeliveries int              `yaml:"total_deliveries"`
	TotalEarnings   float64          `yaml:"total_earnings"`
	Status          string           `yaml:"status"`
	Location        *LocationFixture `yaml:"location"`
}

type VehicleFixture struct {
	Type   string `yaml:"type"`
	Number string `yaml:"number"`
}

type LocationFixture struct {
	Lat     float64 `yaml:"lat"`
	Lng     float64 `yaml:"lng"`
	Address string  `yaml:"address"`
}

type CustomerFixture struct {
	Name  string `yaml:"name"`
	Phone string `yaml:"phone"`
}

type ItemFixture struct {
	Name     string  `yaml:"name"`
	Quantity int     `yaml:"quantity"`
	Price    float64 `yaml:"price"`
	Notes    string  `yaml:"notes"`
}

// OrderFixture describes an order relative to the load time: each *_ago
// field is how long before now that step happened.
type OrderFixture struct {
	Customer         CustomerFixture `yaml:"customer"`
	Pickup           LocationFixture `yaml:"pickup"`
	Dropoff          LocationFixture `yaml:"dropoff"`
	DistanceKm       float64         `yaml:"distance_km"`
	EstimatedMinutes int             `yaml:"estimated_minutes"`
	Items            []ItemFixture   `yaml:"items"`
	Payment          float64         `yaml:"payment"`
	Notes            string          `yaml:"notes"`
	Status           string          `yaml:"status"`
	CreatedAgo       time.Duration   `yaml:"created_ago"`
	AcceptedAgo      *time.Duration  `yaml:"accepted_ago"`
	PickedUpAgo      *time.Duration  `yaml:"picked_up_ago"`
	DeliveredAgo     *time.Duration  `yaml:"delivered_ago"`
	CancelledAgo     *time.Duration  `yaml:"cancelled_ago"`
}

// Load reads the fixture at path, or the built-in demo fixture when path is empty.
func Load(path string) (Fixture, error) {
	data := defaultFixture
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return Fixture{}, fmt.Errorf("read seed file: %w", err)
		}
	}
	return Parse(data)
}

// Parse expands environment references in data and decodes the result.
func Parse(data []byte) (Fixture, error) {
	expanded, err := envsubst.EvalEnv(string(data))
	if err != nil {
		return Fixture{}, fmt.Errorf("expand seed: %w", err)
	}

	var fixture Fixture
	if err = yaml.Unmarshal([]byte(expanded), &fixture); err != nil {
		return Fixture{}, fmt.Errorf("decode seed: %w", err)
	}
	return fixture, nil
}
