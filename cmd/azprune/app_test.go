package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thefrederiksen/azprune/types"
)

func TestRenderTableSortsByCostDesc(t *testing.T) {
	records := []types.Record{
		{Name: "cheap-nsg", TypeDisplay: "NSG", RiskLevel: types.RiskLow, Cost: 0, CostDisplay: "$0", Details: "Not attached"},
		{Name: "pricey-gw", TypeDisplay: "VNet Gateway", RiskLevel: types.RiskHigh, Cost: 140, CostDisplay: "$140", Details: "No connections"},
		{Name: "old-disk", TypeDisplay: "Managed Disk", RiskLevel: types.RiskMedium, Cost: 6.4, CostDisplay: "$6.40", Details: "128 GB"},
	}

	var sb strings.Builder
	renderTable(&sb, records)
	out := sb.String()

	gw := strings.Index(out, "pricey-gw")
	disk := strings.Index(out, "old-disk")
	nsg := strings.Index(out, "cheap-nsg")
	assert.True(t, gw < disk && disk < nsg, "expected cost-descending order:\n%s", out)

	assert.Contains(t, out, "[WARN] HIGH")
	assert.Contains(t, out, "[CHECK] MEDIUM")
	assert.Contains(t, out, "[OK] LOW")
	assert.Contains(t, out, "Found 3 orphaned resources wasting $146/month.")
}

func TestRenderTableEmpty(t *testing.T) {
	var sb strings.Builder
	renderTable(&sb, nil)
	assert.Contains(t, sb.String(), "No orphaned resources found")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "long st...", truncate("long string that keeps going", 10))
}
