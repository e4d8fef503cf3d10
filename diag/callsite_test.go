package diag

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaptureCallSite(t *testing.T) {
	cs := CaptureCallSite(0)

	assert.Equal(t, "callsite_test.go", filepath.Base(cs.Path))
	assert.True(t, strings.HasSuffix(cs.Member, "TestCaptureCallSite"), cs.Member)
	assert.Greater(t, cs.Line, 0)
	assert.Equal(t, NoIntID, cs.IntID)
	assert.Empty(t, cs.debugInfo())
}

func TestCallSiteDescribe(t *testing.T) {
	var nilSite *CallSite
	assert.Empty(t, nilSite.Describe())
	assert.Equal(t, "Play called from: Start@42 in Assets/Scripts/Player.cs\n", testSite.Describe())
}

func TestCallSiteDebugInfo(t *testing.T) {
	tests := []struct {
		name     string
		site     *CallSite
		expected string
	}{
		{"none", &CallSite{IntID: NoIntID}, ""},
		{"string id", &CallSite{StringID: "fade", IntID: NoIntID}, "DEBUG MODE INFO ► [stringId: fade]\n"},
		{"int id zero", &CallSite{}, "DEBUG MODE INFO ► [intId: 0]\n"},
		{"target", &CallSite{DebugTargetID: "Cube", IntID: NoIntID}, "DEBUG MODE INFO ► [tween target: Cube]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.site.debugInfo())
		})
	}
}
