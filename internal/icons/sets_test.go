package icons

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSets(t *testing.T) {
	t.Parallel()

	require.Len(t, Sets, 19)
	require.Len(t, SetPrefixes(), 19)

	s, ok := LookupSet("svg-spinners")
	require.True(t, ok)
	require.True(t, s.Animated)

	s, ok = LookupSet("lucide")
	require.True(t, ok)
	require.Equal(t, "ISC", s.License)
	require.False(t, s.Animated)

	_, ok = LookupSet("unknown")
	require.False(t, ok)

	require.Len(t, AnimatedPresets, 12)
}

func TestCategorize(t *testing.T) {
	t.Parallel()

	spinner := AnimatedPresets[0]
	got := Categorize([]Icon{
		{Name: "lucide:home", Content: "<svg/>"},
		{Name: "lucide:star", Content: "<svg/>"},
		{Name: "mine", Content: "<svg/>"},
		{Name: "other:thing", Content: "<svg/>"},
		spinner,
	})

	require.Equal(t, 5, got.All)
	require.Equal(t, []string{"mine", "other:thing"}, got.Custom)
	require.Equal(t, []string{spinner.Name}, got.Animated)
	require.Equal(t, map[string][]string{
		"lucide":   {"lucide:home", "lucide:star"},
		"animated": {spinner.Name},
	}, got.Sets)
}

func TestCategorizeEmpty(t *testing.T) {
	t.Parallel()

	got := Categorize(nil)
	require.Zero(t, got.All)
	require.NotNil(t, got.Custom)
	require.NotNil(t, got.Animated)
	require.NotNil(t, got.Sets)
}
