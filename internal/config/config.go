package config

import (
	"fmt"
	"strings"
	"time"

	"alcyxob/fitness-planner/internal/planner"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	S3       S3Config       `mapstructure:"s3"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Planner  PlannerConfig  `mapstructure:"planner"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// JWTConfig defines JWT specific configuration
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	// Parsed by viper straight from a duration string ("60m", "1h").
	Expiration time.Duration `mapstructure:"expiration"`
}

// SegmentWindow is one segment's fixed bounds as "HH:MM" strings.
type SegmentWindow struct {
	Min string `mapstructure:"min"`
	Max string `mapstructure:"max"`
}

// PlannerConfig holds the scheduling tunables: per-segment bounds,
// minimum and default slot durations, and the default plan length.
type PlannerConfig struct {
	Morning          SegmentWindow `mapstructure:"morning"`
	Afternoon        SegmentWindow `mapstructure:"afternoon"`
	Evening          SegmentWindow `mapstructure:"evening"`
	MinDurationMin   int           `mapstructure:"min_duration_minutes"`
	SlotDurationMin  int           `mapstructure:"default_duration_minutes"`
	DefaultPlanWeeks int           `mapstructure:"default_plan_weeks"`
}

// CoreConfig converts the planner settings into the core library's
// Config, validating the time strings.
func (p PlannerConfig) CoreConfig() (planner.Config, error) {
	cfg := planner.Config{
		Bounds:          make(map[planner.Segment]planner.SegmentBounds, 3),
		MinDuration:     p.MinDurationMin,
		DefaultDuration: p.SlotDurationMin,
	}
	windows := map[planner.Segment]SegmentWindow{
		planner.SegmentMorning:   p.Morning,
		planner.SegmentAfternoon: p.Afternoon,
		planner.SegmentEvening:   p.Evening,
	}
	for segment, w := range windows {
		min, err := planner.ParseTimeOfDay(w.Min)
		if err != nil {
			return planner.Config{}, fmt.Errorf("planner.%s.min: %w", segment, err)
		}
		max, err := planner.ParseTimeOfDay(w.Max)
		if err != nil {
			return planner.Config{}, fmt.Errorf("planner.%s.max: %w", segment, err)
		}
		if max.Minutes()-min.Minutes() < p.MinDurationMin {
			return planner.Config{}, fmt.Errorf("planner.%s: window %s-%s cannot hold a %d minute slot", segment, min, max, p.MinDurationMin)
		}
		cfg.Bounds[segment] = planner.SegmentBounds{Min: min, Max: max}
	}
	return cfg, nil
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Nested keys map to env vars with underscores,
	// e.g. server.address -> SERVER_ADDRESS.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("database.uri", "mongodb://localhost:27017")
	viper.SetDefault("database.name", "fitness_planner")
	viper.SetDefault("s3.use_ssl", true)
	viper.SetDefault("jwt.expiration", "1h")

	viper.SetDefault("planner.morning.min", "06:00")
	viper.SetDefault("planner.morning.max", "12:00")
	viper.SetDefault("planner.afternoon.min", "12:00")
	viper.SetDefault("planner.afternoon.max", "18:00")
	viper.SetDefault("planner.evening.min", "18:00")
	viper.SetDefault("planner.evening.max", "23:00")
	viper.SetDefault("planner.min_duration_minutes", 30)
	viper.SetDefault("planner.default_duration_minutes", 60)
	viper.SetDefault("planner.default_plan_weeks", 4)

	err = viper.ReadInConfig()
	// Missing config file is fine; defaults and env vars still apply.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return config, err
}
