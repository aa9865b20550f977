package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvDSN overrides database.* when set (also read from .env).
const EnvDSN = "WORLDPVP_DB_DSN"

// WorldPvP holds all configuration for the world PvP reward service.
type WorldPvP struct {
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	// Database
	Database DatabaseConfig `yaml:"database"`
	// DSNOverride comes from WORLDPVP_DB_DSN, never from YAML.
	DSNOverride string `yaml:"-"`

	Rewards    Rewards    `yaml:"rewards"`
	Groups     Groups     `yaml:"groups"`
	Ops        Ops        `yaml:"ops"`
	Workers    Workers    `yaml:"workers"`
	Simulation Simulation `yaml:"simulation"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host" validate:"required"`
	Port     int    `yaml:"port" validate:"min=1,max=65535"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname" validate:"required"`
	SSLMode  string `yaml:"sslmode" validate:"oneof=disable allow prefer require verify-ca verify-full"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// QualityWeights are the probabilities of each reward quality per kill.
// The remainder up to 1 is the probability of no item.
type QualityWeights struct {
	Epic     float64 `yaml:"epic" validate:"gte=0,lte=1"`
	Rare     float64 `yaml:"rare" validate:"gte=0,lte=1"`
	Uncommon float64 `yaml:"uncommon" validate:"gte=0,lte=1"`
}

// Sum returns total item drop probability.
func (w QualityWeights) Sum() float64 {
	return w.Epic + w.Rare + w.Uncommon
}

// Rewards holds drop/economy balance of world PvP kills.
type Rewards struct {
	QualityWeights QualityWeights `yaml:"quality_weights"`

	// Money: victimLevel * MoneyPerLevel, scaled down by group size.
	MoneyPerLevel   int64   `yaml:"money_per_level" validate:"gte=0"`
	RaidMoneyRatio  float64 `yaml:"raid_money_ratio" validate:"gte=0,lte=1"`
	GroupMoneyRatio float64 `yaml:"group_money_ratio" validate:"gte=0,lte=1"`

	// XP: attackerLevel * urand(XPOffsetMin*XPRatio, XPOffsetMax*XPRatio).
	XPRatio     float64 `yaml:"xp_ratio" validate:"gte=0"`
	XPOffsetMin float64 `yaml:"xp_offset_min" validate:"gte=0"`
	XPOffsetMax float64 `yaml:"xp_offset_max" validate:"gte=0"`

	// Item search
	MaxAttempts       int   `yaml:"max_attempts" validate:"min=1"`
	MaxLevel          int32 `yaml:"max_level" validate:"min=1"`
	MaxLevelWindowMin int32 `yaml:"max_level_window_min" validate:"gte=0"`
	MaxLevelWindowMax int32 `yaml:"max_level_window_max" validate:"gte=0"`
	LowLevelThreshold int32 `yaml:"low_level_threshold" validate:"gte=0"`
	LowLevelSpread    int32 `yaml:"low_level_spread" validate:"gte=0"`
	LevelSpread       int32 `yaml:"level_spread" validate:"gte=0"`
}

// Groups mirrors the group subsystem's size caps.
type Groups struct {
	MaxGroupSize int `yaml:"max_group_size" validate:"min=1"`
	MaxRaidSize  int `yaml:"max_raid_size" validate:"min=1"`
}

// Ops configures the metrics/health HTTP listener.
type Ops struct {
	BindAddress string `yaml:"bind_address"`
	Port        int    `yaml:"port" validate:"min=0,max=65535"` // 0 disables the listener
}

// Addr returns host:port of the ops listener.
func (o Ops) Addr() string {
	return fmt.Sprintf("%s:%d", o.BindAddress, o.Port)
}

// Workers configures kill event dispatch.
type Workers struct {
	Count     int    `yaml:"count" validate:"min=1,max=1024"`
	QueueSize int    `yaml:"queue_size" validate:"min=0"`
	Seed      uint64 `yaml:"seed"` // 0 = random
}

// Simulation configures the synthetic kill run of cmd/worldpvp.
type Simulation struct {
	Kills       int     `yaml:"kills" validate:"min=0"`
	Players     int     `yaml:"players" validate:"min=2"`
	MinLevel    int32   `yaml:"min_level" validate:"min=1,max=60"`
	MaxLevel    int32   `yaml:"max_level" validate:"min=1,max=60"`
	GroupChance float64 `yaml:"group_chance" validate:"gte=0,lte=1"`
	RaidChance  float64 `yaml:"raid_chance" validate:"gte=0,lte=1"`
	BagSlots    int     `yaml:"bag_slots" validate:"min=0"`
	Seed        uint64  `yaml:"seed"` // 0 = random
}

// DefaultRewards returns the stock world PvP balance.
func DefaultRewards() Rewards {
	return Rewards{
		QualityWeights: QualityWeights{
			Epic:     0.03,
			Rare:     0.08,
			Uncommon: 0.40,
		},
		MoneyPerLevel:     100,
		RaidMoneyRatio:    0.975,
		GroupMoneyRatio:   0.9,
		XPRatio:           0.25,
		XPOffsetMin:       950,
		XPOffsetMax:       1000,
		MaxAttempts:       100,
		MaxLevel:          60,
		MaxLevelWindowMin: 60,
		MaxLevelWindowMax: 92,
		LowLevelThreshold: 10,
		LowLevelSpread:    10,
		LevelSpread:       5,
	}
}

// DefaultGroups returns group caps of the group subsystem.
func DefaultGroups() Groups {
	return Groups{
		MaxGroupSize: 5,
		MaxRaidSize:  40,
	}
}

// DefaultWorldPvP returns WorldPvP config with sensible defaults.
func DefaultWorldPvP() WorldPvP {
	return WorldPvP{
		LogLevel: "info",
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "worldpvp",
			Password: "worldpvp",
			DBName:   "worldpvp",
			SSLMode:  "disable",
		},
		Rewards: DefaultRewards(),
		Groups:  DefaultGroups(),
		Ops: Ops{
			BindAddress: "127.0.0.1",
			Port:        9102,
		},
		Workers: Workers{
			Count:     4,
			QueueSize: 256,
		},
		Simulation: Simulation{
			Kills:       10000,
			Players:     200,
			MinLevel:    1,
			MaxLevel:    60,
			GroupChance: 0.3,
			RaidChance:  0.1,
			BagSlots:    16,
		},
	}
}

// DSN returns the effective database connection string.
func (c WorldPvP) DSN() string {
	if c.DSNOverride != "" {
		return c.DSNOverride
	}
	return c.Database.DSN()
}

// Load loads config from a YAML file, applies env overrides and validates.
// If the file doesn't exist, defaults are used.
func Load(path string) (WorldPvP, error) {
	cfg := DefaultWorldPvP()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	// .env is optional: real env vars win over it
	_ = godotenv.Load()
	if dsn, ok := os.LookupEnv(EnvDSN); ok {
		cfg.DSNOverride = dsn
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}
