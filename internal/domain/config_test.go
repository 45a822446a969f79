package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FranderUC/lol-itemset-id-fixer/internal/domain"
)

func TestToolConfig_Validate(t *testing.T) {
	cfg := domain.ToolConfig{
		ExtraMappings: []domain.ItemMapping{
			{OldID: 1234, NewID: 321234, NameES: "Espada", NameEN: "Sword"},
		},
	}
	require.NoError(t, cfg.Validate())
}

func TestToolConfig_ValidateRejectsNonPositiveIDs(t *testing.T) {
	cfg := domain.ToolConfig{
		ExtraMappings: []domain.ItemMapping{{OldID: 0, NewID: 321234}},
	}
	assert.Error(t, cfg.Validate())

	cfg = domain.ToolConfig{
		ExtraMappings: []domain.ItemMapping{{OldID: 1234, NewID: -1}},
	}
	assert.Error(t, cfg.Validate())
}

func TestToolConfig_ValidateRejectsSelfMapping(t *testing.T) {
	cfg := domain.ToolConfig{
		ExtraMappings: []domain.ItemMapping{{OldID: 1234, NewID: 1234}},
	}
	assert.Error(t, cfg.Validate())
}

func TestToolConfig_ValidateRejectsDuplicates(t *testing.T) {
	cfg := domain.ToolConfig{
		ExtraMappings: []domain.ItemMapping{
			{OldID: 1234, NewID: 321234},
			{OldID: 1234, NewID: 321235},
		},
	}
	assert.Error(t, cfg.Validate())
}

func TestDefaultToolConfig(t *testing.T) {
	cfg := domain.DefaultToolConfig()
	assert.Empty(t, cfg.MapCode)
	assert.Nil(t, cfg.Backups)
	assert.Empty(t, cfg.ExtraMappings)
	require.NoError(t, cfg.Validate())
}
