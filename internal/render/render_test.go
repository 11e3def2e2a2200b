package render

import (
	"strings"
	"testing"

	"github.com/foodops/stockbook/pkg"
	"github.com/foodops/stockbook/pkg/mmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedGroups(t *testing.T) []mmodel.Entity {
	t.Helper()

	ingredients, err := mmodel.NewGroup("11111111111111111111111111111111", "Ingredients")
	require.NoError(t, err)

	tools, err := mmodel.NewGroup("22222222222222222222222222222222", "Tools")
	require.NoError(t, err)

	return []mmodel.Entity{ingredients, tools}
}

func TestCSV(t *testing.T) {
	out, err := CSV("group", seedGroups(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "unique_code,name", lines[0])
	assert.Contains(t, lines[1], "Ingredients")
	assert.Contains(t, lines[2], "Tools")
}

func TestMarkdown(t *testing.T) {
	out, err := Markdown("group", seedGroups(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "| unique_code | name |", lines[0])
	assert.Equal(t, "| --- | --- |", lines[1])
}

func TestXML(t *testing.T) {
	out, err := XML("group", seedGroups(t))
	require.NoError(t, err)

	assert.Contains(t, out, `<records kind="group">`)
	assert.Contains(t, out, "<name>Ingredients</name>")
	assert.Contains(t, out, "<unique_code>11111111111111111111111111111111</unique_code>")
}

func TestRenderRejectsJSON(t *testing.T) {
	_, err := Render("group", mmodel.FormatJSON, seedGroups(t))

	var validation pkg.ValidationError

	assert.ErrorAs(t, err, &validation)
}

func TestIsSupported(t *testing.T) {
	for _, format := range mmodel.SupportedFormats {
		assert.True(t, IsSupported(format))
	}

	assert.False(t, IsSupported("yaml"))
}
