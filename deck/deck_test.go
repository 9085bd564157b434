package deck

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		text   string
		labels []string
	}{
		{
			text:   `1 x Sedative`,
			labels: []string{"Sedative"},
		},
		{
			text: `2 x Sedative
			1 x Cold Compress`,
			labels: []string{"Sedative", "Sedative", "Cold Compress"},
		},
		{
			text: `# night shift
			3 X Placebo # cheap
			1 x Doctor's Orders
			1 x X-Ray`,
			labels: []string{"Placebo", "Placebo", "Placebo", "Doctor's Orders", "X-Ray"},
		},
		{
			text:   "\n\n99 x Bandage\r\n\n# end\n",
			labels: slices.Repeat([]string{"Bandage"}, 99),
		},
	}
	for _, tt := range tests {
		d, err := parser.Parse("test", tt.text)
		require.NoError(t, err, tt.text)
		assert.Equal(t, tt.labels, d.Labels())
		assert.Equal(t, len(tt.labels), d.Size())
	}
}

func TestParseErrors(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		name string
		text string
	}{
		{"missing count", `Sedative`},
		{"missing separator", `2 Sedative`},
		{"missing name", `2 x`},
		{"zero copies", `0 x Sedative`},
		{"too many copies", `100 x Sedative`},
		{"line without count", "2 x Sedative\nPlacebo"},
		{"two entries on one line", `2 x Sedative 1 x Placebo`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse("test", tt.text)
			assert.Error(t, err)
		})
	}
}

func TestParseEmpty(t *testing.T) {
	parser := NewParser()
	for _, text := range []string{"", "# nothing here\n"} {
		_, err := parser.Parse("test", text)
		assert.ErrorIs(t, err, ErrEmptyDeck)
	}
}

func TestStarter(t *testing.T) {
	d, err := NewParser().Starter()
	require.NoError(t, err)
	assert.Equal(t, []string{"Sedative", "Sedative", "Placebo", "Cold Compress", "Smelling Salts"}, d.Labels())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ward.deck")
	require.NoError(t, os.WriteFile(path, []byte("4 x Bandage\n"), 0o644))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, d.Size())

	d, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 5, d.Size())

	_, err = Load(filepath.Join(t.TempDir(), "missing.deck"))
	assert.Error(t, err)
}
