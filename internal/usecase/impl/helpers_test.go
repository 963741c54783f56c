package impl

import (
	"io"
	"log/slog"

	"pesantren/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Infaq: &config.InfaqConfig{
			Currency:            "IDR",
			MinimumContribution: 10000,
			Presets: []config.PresetConfig{
				{Label: "Rp 10.000", Amount: 10000},
				{Label: "Rp 25.000", Amount: 25000},
				{Label: "Rp 50.000", Amount: 50000},
			},
		},
	}
}
