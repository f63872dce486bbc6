package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

const dashboardYAML = `
title: Workshop
cards:
  - type: custom:prism-bambu
    entity: sensor.x1c_1
  - type: custom:prism-button-light
    entity: light.desk
    active_color: [255, 0, 0]
  - type: custom:prism-bambu
    entity: sensor.missing
    name: Spare
`

const statesJSON = `[
  {"entity_id": "sensor.x1c_1", "state": "printing", "attributes": {
    "friendly_name": "X1C", "print_progress": 50, "progress": 10,
    "nozzle_temp": 210, "target_nozzle_temp": 220, "ams": []}},
  {"entity_id": "light.desk", "state": "on", "attributes": {}}
]`

func writeFixtures(t *testing.T, dashboard, states string) (string, string) {
	dir := t.TempDir()
	dashPath := filepath.Join(dir, "dashboard.yaml")
	statesPath := filepath.Join(dir, "states.json")
	require.NoError(t, os.WriteFile(dashPath, []byte(dashboard), 0644))
	require.NoError(t, os.WriteFile(statesPath, []byte(states), 0644))
	return dashPath, statesPath
}

func TestRunResolvesDashboard(t *testing.T) {
	dashPath, statesPath := writeFixtures(t, dashboardYAML, statesJSON)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-env", "", "-dashboard", dashPath, "-states", statesPath, "-format", "json"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var doc struct {
		RunID string `json:"runId"`
		Title string `json:"title"`
		Cards []struct {
			Type    string                    `json:"type"`
			View    map[string]any            `json:"view"`
			Actions map[string]map[string]any `json:"actions"`
		} `json:"cards"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &doc))

	assert.NotEmpty(t, doc.RunID)
	assert.Equal(t, "Workshop", doc.Title)
	require.Len(t, doc.Cards, 3)

	printer := doc.Cards[0].View
	assert.Equal(t, float64(50), printer["progress"])
	assert.Equal(t, float64(210), printer["nozzleTemp"])
	assert.Len(t, printer["amsData"], 4)

	light := doc.Cards[1].View
	assert.Equal(t, true, light["active"])
	assert.Equal(t, map[string]any{"color": "rgb(255, 0, 0)", "shadow": "rgba(255, 0, 0, 0.6)"}, light["iconColor"])
	assert.Equal(t, "toggle", doc.Cards[1].Actions["tap"]["service"])
	assert.Equal(t, "hass-more-info", doc.Cards[0].Actions["pause"]["event"])

	spare := doc.Cards[2].View
	assert.Equal(t, "Spare", spare["name"])
	assert.Equal(t, true, spare["preview"])

	assert.Contains(t, stderr.String(), `entity "sensor.missing" not found`)
}

func TestRunRejectsInvalidDashboard(t *testing.T) {
	dashPath, statesPath := writeFixtures(t, "cards:\n  - name: No entity\n", statesJSON)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-env", "", "-dashboard", dashPath, "-states", statesPath}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "please define an entity")
	assert.Empty(t, stdout.String())
}

func TestRunMissingStates(t *testing.T) {
	dashPath, _ := writeFixtures(t, dashboardYAML, statesJSON)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-env", "", "-dashboard", dashPath, "-states", filepath.Join(t.TempDir(), "nope.json")}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Failed to load states")
}

func TestRunBadFormat(t *testing.T) {
	dashPath, statesPath := writeFixtures(t, dashboardYAML, statesJSON)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-env", "", "-dashboard", dashPath, "-states", statesPath, "-format", "xml"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
}

func TestRunStub(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"-stub", "custom:prism-bambu"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "entity: sensor.x1c_1")

	stdout.Reset()
	assert.Equal(t, 1, run([]string{"-stub", "custom:nope"}, &stdout, &stderr))
}

func TestRunSchema(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"-schema", "prism-button-light"}, &stdout, &stderr), stderr.String())
	assert.Contains(t, stdout.String(), "name: entity")
	assert.Contains(t, stdout.String(), "active_color")

	stdout.Reset()
	assert.Equal(t, 1, run([]string{"-schema", "custom:nope"}, &stdout, &stderr))
	assert.Empty(t, stdout.String())
}

func TestRunAcceptsTypeWithoutPrefix(t *testing.T) {
	dashboard := "cards:\n  - type: prism-button-light\n    entity: light.desk\n"
	dashPath, statesPath := writeFixtures(t, dashboard, statesJSON)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-env", "", "-dashboard", dashPath, "-states", statesPath, "-format", "json"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var doc struct {
		Cards []struct {
			Type    string                    `json:"type"`
			View    map[string]any            `json:"view"`
			Actions map[string]map[string]any `json:"actions"`
		} `json:"cards"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &doc))
	require.Len(t, doc.Cards, 1)
	assert.Equal(t, "custom:prism-button-light", doc.Cards[0].Type)
	assert.Equal(t, true, doc.Cards[0].View["active"])
	assert.Equal(t, "toggle", doc.Cards[0].Actions["tap"]["service"])
	assert.Equal(t, "hass-more-info", doc.Cards[0].Actions["hold"]["event"])
}

func TestRunFlagOverridesInvalidEnvFormat(t *testing.T) {
	t.Setenv("PRISM_FORMAT", "xml")
	dashPath, statesPath := writeFixtures(t, dashboardYAML, statesJSON)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-env", "", "-dashboard", dashPath, "-states", statesPath, "-format", "json"}, &stdout, &stderr)
	assert.Equal(t, 0, code, stderr.String())

	stdout.Reset()
	code = run([]string{"-env", "", "-dashboard", dashPath, "-states", statesPath}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Invalid configuration")
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, run([]string{"-version"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "prism dev")
}
