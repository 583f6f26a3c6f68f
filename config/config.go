// Package config loads engine configuration from YAML or defaults.
package config

import (
	"flag"
	"os"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/loadoutkit/pricefeed/internal/domain"
)

// Config engine configuration: per-platform fee schedules, exchange rates
// and infrastructure settings. Fee schedules are explicit configuration
// handed to the fee calculator, never ambient package state, so tests can
// inject arbitrary schedules.
type Config struct {
	LogLevel     string
	LogDir       string
	StoragePath  string
	FeedPath     string
	FeeSchedules map[domain.Platform]domain.FeeSchedule
	Rates        map[domain.Currency]decimal.Decimal
}

type feeScheduleTmp struct {
	SellerPercent string `yaml:"seller_percent"`
	BuyerPercent  string `yaml:"buyer_percent"`
	FixedAmount   string `yaml:"fixed_amount,omitempty"`
}

type configTmp struct {
	LogLevel    string                    `yaml:"log_level,omitempty"`
	LogDir      string                    `yaml:"log_dir,omitempty"`
	StoragePath string                    `yaml:"storage_path,omitempty"`
	FeedPath    string                    `yaml:"feed_path,omitempty"`
	Fees        map[string]feeScheduleTmp `yaml:"fees,omitempty"`
	Rates       map[string]string         `yaml:"rates,omitempty"`
}

// Get reads configuration from the file given by --config, falling back
// to defaults when the flag is absent.
func Get() (Config, error) {
	path := flag.String("config", "", "path to yaml config")
	flag.Parse()

	if *path == "" {
		return Default(), nil
	}
	return FromFile(*path)
}

// FromFile loads and validates a YAML configuration file. Settings not
// present in the file keep their defaults.
func FromFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read config")
	}

	var tmp configTmp
	if err := yaml.Unmarshal(raw, &tmp); err != nil {
		return Config{}, errors.Wrap(err, "failed to parse config")
	}

	cfg := Default()
	if tmp.LogLevel != "" {
		cfg.LogLevel = tmp.LogLevel
	}
	if tmp.LogDir != "" {
		cfg.LogDir = tmp.LogDir
	}
	if tmp.StoragePath != "" {
		cfg.StoragePath = tmp.StoragePath
	}
	if tmp.FeedPath != "" {
		cfg.FeedPath = tmp.FeedPath
	}

	for name, fees := range tmp.Fees {
		platform, err := domain.ParsePlatform(name)
		if err != nil {
			return Config{}, errors.Wrap(err, "fees config")
		}
		schedule, err := parseFeeSchedule(fees)
		if err != nil {
			return Config{}, errors.Wrapf(err, "fees config for %s", platform)
		}
		cfg.FeeSchedules[platform] = schedule
	}

	for code, value := range tmp.Rates {
		currency := domain.Currency(code)
		if err := currency.Validate(); err != nil {
			return Config{}, errors.Wrap(err, "rates config")
		}
		rate, err := decimal.NewFromString(value)
		if err != nil {
			return Config{}, errors.Wrapf(err, "rates config for %s", currency)
		}
		if rate.LessThanOrEqual(decimal.Zero) {
			return Config{}, errors.Wrapf(domain.ErrInvalidExchangeRate, "rates config for %s", currency)
		}
		cfg.Rates[currency] = rate
	}

	return cfg, nil
}

func parseFeeSchedule(tmp feeScheduleTmp) (domain.FeeSchedule, error) {
	schedule := domain.FeeSchedule{
		SellerPercent: decimal.Zero,
		BuyerPercent:  decimal.Zero,
		FixedAmount:   decimal.Zero,
	}

	var err error
	if tmp.SellerPercent != "" {
		if schedule.SellerPercent, err = decimal.NewFromString(tmp.SellerPercent); err != nil {
			return domain.FeeSchedule{}, errors.Wrap(err, "seller percent")
		}
	}
	if tmp.BuyerPercent != "" {
		if schedule.BuyerPercent, err = decimal.NewFromString(tmp.BuyerPercent); err != nil {
			return domain.FeeSchedule{}, errors.Wrap(err, "buyer percent")
		}
	}
	if tmp.FixedAmount != "" {
		if schedule.FixedAmount, err = decimal.NewFromString(tmp.FixedAmount); err != nil {
			return domain.FeeSchedule{}, errors.Wrap(err, "fixed amount")
		}
	}

	if err := schedule.Validate(); err != nil {
		return domain.FeeSchedule{}, err
	}
	return schedule, nil
}

// Default returns the built-in configuration: typical marketplace fee
// schedules and a static USD rate table.
func Default() Config {
	return Config{
		LogLevel:    "info",
		LogDir:      "logs",
		StoragePath: "data/pricefeed.db",
		FeedPath:    "quotes.json",
		FeeSchedules: map[domain.Platform]domain.FeeSchedule{
			domain.PlatformSteam: {
				SellerPercent: decimal.NewFromInt(15),
				BuyerPercent:  decimal.Zero,
				FixedAmount:   decimal.Zero,
			},
			domain.PlatformCSFloat: {
				SellerPercent: decimal.NewFromInt(2),
				BuyerPercent:  decimal.Zero,
				FixedAmount:   decimal.Zero,
			},
			domain.PlatformBuff163: {
				SellerPercent: decimal.RequireFromString("2.5"),
				BuyerPercent:  decimal.Zero,
				FixedAmount:   decimal.Zero,
			},
			domain.PlatformSkinport: {
				SellerPercent: decimal.NewFromInt(12),
				BuyerPercent:  decimal.Zero,
				FixedAmount:   decimal.Zero,
			},
			domain.PlatformCSMoney: {
				SellerPercent: decimal.NewFromInt(7),
				BuyerPercent:  decimal.Zero,
				FixedAmount:   decimal.Zero,
			},
		},
		Rates: map[domain.Currency]decimal.Decimal{
			domain.CurrencyUSD: decimal.NewFromInt(1),
			domain.CurrencyEUR: decimal.RequireFromString("1.08"),
			domain.CurrencyCNY: decimal.RequireFromString("0.14"),
			domain.CurrencyRUB: decimal.RequireFromString("0.011"),
			domain.CurrencyGBP: decimal.RequireFromString("1.27"),
			domain.CurrencyBRL: decimal.RequireFromString("0.19"),
		},
	}
}
