package i18n

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPicksTable(t *testing.T) {
	tests := []struct {
		lang string
		want string
	}{
		{"zh_CN", "电竞助手"},
		{"zh-TW", "電競助手"},
		{"en_US", "Esports Helper"},
		{"en", "Esports Helper"},
	}

	for _, tc := range tests {
		t.Run(tc.lang, func(t *testing.T) {
			tr, err := New(tc.lang)
			require.NoError(t, err)
			assert.Equal(t, tc.want, tr.Log("app.name"))
		})
	}
}

func TestNewRejectsGarbage(t *testing.T) {
	_, err := New("not a language!")
	assert.Error(t, err)
}

func TestUnknownKeyFallsBackToKey(t *testing.T) {
	tr, err := New("en_US")
	require.NoError(t, err)
	assert.Equal(t, "no.such.key", tr.Text("no.such.key"))
}

func TestTextAppliesStyle(t *testing.T) {
	tr, err := New("en_US")
	require.NoError(t, err)

	plain := tr.Text("table.status")
	styled := tr.Text("table.status", lipgloss.NewStyle().Bold(true))
	assert.Equal(t, "Status", plain)
	assert.Contains(t, styled, "Status")
}
