package campaign_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cory-johannsen/tabletop/internal/game/campaign"
)

func TestDiagnosticString(t *testing.T) {
	d := campaign.Diagnostic{
		Severity: campaign.SeverityWarning,
		Source:   "monsters.yaml",
		Message:  `monster "lurker": unknown size "colossal"`,
	}
	assert.Equal(t, `monsters.yaml: warning: monster "lurker": unknown size "colossal"`, d.String())
}
