package config

import (
	"fmt"
	"io"
	"os"

	"github.com/prism-dashboard/cards/internal/models"
	"gopkg.in/yaml.v3"
)

// ParseDashboard reads a dashboard YAML file holding a list of cards.
func ParseDashboard(filePath string) (*models.Dashboard, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ParseDashboardFromReader(file)
}

// ParseDashboardFromReader parses a dashboard from an io.Reader.
// A document that is a single card mapping is accepted as a one-card
// dashboard.
func ParseDashboardFromReader(r io.Reader) (*models.Dashboard, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var probe map[string]any
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parsing dashboard: %w", err)
	}

	if _, hasCards := probe["cards"]; !hasCards {
		card, err := ParseCard(data)
		if err != nil {
			return nil, err
		}
		return &models.Dashboard{Cards: []models.CardConfig{card}}, nil
	}

	var dash models.Dashboard
	if err := yaml.Unmarshal(data, &dash); err != nil {
		return nil, fmt.Errorf("parsing dashboard: %w", err)
	}
	return &dash, nil
}

// ParseCard decodes one card configuration.
func ParseCard(data []byte) (models.CardConfig, error) {
	var card models.CardConfig
	if err := yaml.Unmarshal(data, &card); err != nil {
		return models.CardConfig{}, fmt.Errorf("parsing card: %w", err)
	}
	return card, nil
}
