package licenses

import (
	"strings"
	"testing"

	"github.com/Adravilag/sagebox-lab/internal/icons"
	"github.com/stretchr/testify/require"
)

func TestTableCoversRemoteSets(t *testing.T) {
	t.Parallel()

	require.Len(t, Table, 18)
	for _, prefix := range icons.SetPrefixes() {
		if prefix == icons.CustomAnimatedPrefix {
			continue
		}
		info, ok := Table[prefix]
		require.True(t, ok, prefix)
		require.NotEmpty(t, info.Text, prefix)
		require.NotContains(t, info.Text, "[year]", prefix)
		require.NotContains(t, info.Text, "[copyright holders]", prefix)
	}
	require.Contains(t, Table["tabler"].Text, "Copyright (c) 2020-2024 Paweł Kuna")
}

func TestCombinedDeduplicates(t *testing.T) {
	t.Parallel()

	out := Combined([]string{"lucide", "lucide"})
	require.Equal(t, 1, strings.Count(out, "## Lucide"))
	require.True(t, strings.HasPrefix(out, "# Icon Licenses\n\n"))
	require.Contains(t, out, "**License:** ISC\n**URL:** https://github.com/lucide-icons/lucide/blob/main/LICENSE\n**Attribution:** Lucide Icons - https://lucide.dev\n\n```\nISC License")
}

func TestCombinedOrderAndUnknown(t *testing.T) {
	t.Parallel()

	out := Combined([]string{"mdi", "custom", "lucide", "mdi"})
	require.NotContains(t, out, "custom")
	mdi := strings.Index(out, "## Material Design Icons")
	lucide := strings.Index(out, "## Lucide Icons")
	require.Positive(t, mdi)
	require.Greater(t, lucide, mdi)
	require.True(t, strings.HasSuffix(out, "```\n\n---\n"))

	empty := Combined(nil)
	require.Equal(t, "# Icon Licenses\n\nThis project uses icons from the following icon sets. Each icon set has its own license that must be respected.\n\n---\n", empty)
}

func TestIndividual(t *testing.T) {
	t.Parallel()

	require.Empty(t, Individual([]string{}))
	require.Empty(t, Individual([]string{"unknown"}))

	got := Individual([]string{"lucide"})
	require.Len(t, got, 1)
	text, ok := got["LICENSE-LUCIDE"]
	require.True(t, ok)
	require.Contains(t, text, "License: ISC")
	require.Contains(t, text, "Source: https://github.com/lucide-icons/lucide/blob/main/LICENSE")
	require.True(t, strings.HasPrefix(text, "Lucide Icons\n============\nLicense: ISC\n"))
	require.Contains(t, text, "\n"+strings.Repeat("-", 60)+"\nISC License")

	got = Individual([]string{"fa6-solid", "fa6-regular"})
	require.Len(t, got, 2)
	require.Contains(t, got, "LICENSE-FA6-SOLID")
	require.Contains(t, got, "LICENSE-FA6-REGULAR")
}

func TestIndividualUnderlineMatchesName(t *testing.T) {
	t.Parallel()

	for prefix, info := range Table {
		doc := Individual([]string{prefix})[FileName(prefix)]
		lines := strings.SplitN(doc, "\n", 3)
		require.Equal(t, info.Name, lines[0], prefix)
		require.Equal(t, strings.Repeat("=", len([]rune(info.Name))), lines[1], prefix)
	}
}

func TestAttribution(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		"Lucide Icons - https://lucide.dev\nMaterial Design Icons - https://materialdesignicons.com",
		Attribution([]string{"lucide", "x", "mdi", "lucide"}),
	)
	require.Empty(t, Attribution(nil))
}

func TestPrefixes(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		[]string{"lucide", "mdi"},
		Prefixes([]string{"lucide:home", "custom", "mdi:star", "lucide:x"}),
	)
	require.Empty(t, Prefixes([]string{"plain"}))
}
