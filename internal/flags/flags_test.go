package flags

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Enabled(t *testing.T) {
	tests := []struct {
		name     string
		registry *Registry
		flag     string
		expected bool
	}{
		{
			name:     "known flag defaults on",
			registry: New(nil),
			flag:     FlagMouseRemarks,
			expected: true,
		},
		{
			name:     "override turns a flag off",
			registry: New(map[string]bool{FlagVictoryRemarks: false}),
			flag:     FlagVictoryRemarks,
			expected: false,
		},
		{
			name:     "override leaves other flags alone",
			registry: New(map[string]bool{FlagVictoryRemarks: false}),
			flag:     FlagSaveProgress,
			expected: true,
		},
		{
			name:     "unknown flag returns false",
			registry: New(nil),
			flag:     "unknown-flag",
			expected: false,
		},
		{
			name:     "unknown override is kept",
			registry: New(map[string]bool{"experimental": true}),
			flag:     "experimental",
			expected: true,
		},
		{
			name:     "nil registry returns false",
			registry: nil,
			flag:     FlagMouseRemarks,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.registry.Enabled(tt.flag))
		})
	}
}

func TestRegistry_All_IsCopy(t *testing.T) {
	r := New(nil)
	all := r.All()
	all[FlagMouseRemarks] = false
	require.True(t, r.Enabled(FlagMouseRemarks))
}

func TestRegistry_Names(t *testing.T) {
	require.Equal(t, []string{FlagMouseRemarks, FlagResumeProgress, FlagSaveProgress, FlagVictoryRemarks}, New(nil).Names())
	require.Nil(t, (*Registry)(nil).Names())
	require.Empty(t, (*Registry)(nil).All())
}

func TestDefaults_IsFresh(t *testing.T) {
	d := Defaults()
	d[FlagSaveProgress] = false
	require.True(t, Defaults()[FlagSaveProgress])
}
