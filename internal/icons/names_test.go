package icons

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToKebabCase(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"myIcon_name Set": "my-icon-name-set",
		"arrowLeft":       "arrow-left",
		"already-kebab":   "already-kebab",
		"Snake__case":     "snake-case",
		"ABC":             "abc",
		"tab\tseparated":  "tab-separated",
	}
	for in, want := range tests {
		require.Equal(t, want, ToKebabCase(in), in)
	}
}

func TestValidName(t *testing.T) {
	t.Parallel()

	for _, ok := range []string{"home", "lucide:home", "arrow-left-2", "a:b:c"} {
		require.True(t, ValidName(ok), ok)
	}
	for _, bad := range []string{"", "Home", "my icon", "a/b", "a_b", "café"} {
		require.False(t, ValidName(bad), bad)
	}
}

func TestPrefixAndShortName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "lucide", Prefix("lucide:home"))
	require.Equal(t, "", Prefix("home"))
	require.Equal(t, "", Prefix(":home"))

	require.Equal(t, "home", ShortName("lucide:home"))
	require.Equal(t, "home", ShortName("home"))
	require.Equal(t, "b", ShortName("a:b:c"))
}
