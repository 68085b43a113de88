package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sentimap/internal/config"
	"sentimap/internal/dataset"
)

func TestResolveSourceFlagPrecedence(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Dataset.URL = "https://example.com/config.csv"
	cfg.Dataset.File = "/etc/sentimap/data.csv"

	// Flags beat config, url beats file, demo beats everything.
	assert.Equal(t, dataset.Source{}, resolveSource(cfg, "https://x/a.csv", "b.csv", true))
	assert.Equal(t, dataset.Source{URL: "https://x/a.csv"}, resolveSource(cfg, "https://x/a.csv", "b.csv", false))
	assert.Equal(t, dataset.Source{Path: "b.csv"}, resolveSource(cfg, "", "b.csv", false))
	assert.Equal(t, dataset.Source{URL: "https://example.com/config.csv"}, resolveSource(cfg, "", "", false))

	cfg.Dataset.URL = ""
	assert.Equal(t, dataset.Source{Path: "/etc/sentimap/data.csv"}, resolveSource(cfg, "", "", false))

	cfg.Dataset.File = ""
	assert.Equal(t, dataset.Source{}, resolveSource(cfg, "", "", false))
}
