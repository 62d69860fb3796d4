package catalog

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/tokipona-words/internal/domain"
)

func sampleEntries() []domain.WordEntry {
	return []domain.WordEntry{
		{Word: "moku", Definitions: []domain.DefinitionEntry{
			{POS: "n", Definition: "food", Example: "moku li pona"},
			{POS: "v", Definition: "to eat", Example: "mi moku"},
		}},
		{Word: "wile", Definitions: []domain.DefinitionEntry{
			{POS: "n", Definition: "desire", Example: "wile li suli"},
		}},
	}
}

func TestSerialize_MatchesGolden(t *testing.T) {
	t.Parallel()

	want, err := os.ReadFile(testdataPath(t, "words_sample.json"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Serialize(&buf, sampleEntries(), DefaultIndent))

	assert.Equal(t, string(want), buf.String())
}

func TestSerialize_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Serialize(&buf, nil, DefaultIndent))
	assert.Equal(t, "[]\n", buf.String())
}

func TestSerialize_Compact(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	entries := []domain.WordEntry{{Word: "a", Definitions: []domain.DefinitionEntry{{POS: "p", Definition: "d", Example: "e"}}}}
	require.NoError(t, Serialize(&buf, entries, 0))
	assert.Equal(t, `[{"word":"a","definitions":[{"pos":"p","def":"d","eg":"e"}]}]`+"\n", buf.String())
}

func TestSerialize_NoEscaping(t *testing.T) {
	t.Parallel()

	entries := []domain.WordEntry{{Word: "ijo", Definitions: []domain.DefinitionEntry{
		{POS: "n", Definition: "thing <object> & «chose»", Example: `"ijo"`},
	}}}

	var buf bytes.Buffer
	require.NoError(t, Serialize(&buf, entries, DefaultIndent))

	out := buf.String()
	assert.Contains(t, out, `"def": "thing <object> & «chose»"`)
	assert.Contains(t, out, `"eg": "\"ijo\""`)
}

func TestSerialize_RoundTripIsIdempotent(t *testing.T) {
	t.Parallel()

	entries := append(sampleEntries(), domain.WordEntry{Word: "", Definitions: []domain.DefinitionEntry{
		{POS: "", Definition: "tab\tand newline\n", Example: "ünïcode ☀"},
	}})

	for _, indent := range []int{0, 2, 4} {
		var first bytes.Buffer
		require.NoError(t, Serialize(&first, entries, indent))

		var parsed []domain.WordEntry
		require.NoError(t, json.Unmarshal(first.Bytes(), &parsed))

		var second bytes.Buffer
		require.NoError(t, Serialize(&second, parsed, indent))

		assert.Equal(t, first.String(), second.String(), "indent %d", indent)
	}
}

func TestWriteFile_CreatesAndOverwrites(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("assets/data", 0o755))
	require.NoError(t, afero.WriteFile(fs, "assets/data/words.json", []byte("stale content that is longer than the new one"), 0o644))

	require.NoError(t, WriteFile(fs, "assets/data/words.json", sampleEntries()[:1], DefaultIndent))

	got, err := afero.ReadFile(fs, "assets/data/words.json")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Serialize(&buf, sampleEntries()[:1], DefaultIndent))
	assert.Equal(t, buf.String(), string(got))

	// No temp files left behind.
	infos, err := afero.ReadDir(fs, "assets/data")
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "words.json", infos[0].Name())
}

func TestWriteFile_MissingParentDir(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()

	err := WriteFile(fs, "assets/data/words.json", sampleEntries(), DefaultIndent)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDestinationWrite)

	exists, err := afero.Exists(fs, "assets/data/words.json")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestWriteFile_ParentIsFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "assets", []byte("x"), 0o644))

	err := WriteFile(fs, "assets/words.json", sampleEntries(), DefaultIndent)
	assert.ErrorIs(t, err, domain.ErrDestinationWrite)
}

func TestWriteFile_FailureKeepsPreviousContent(t *testing.T) {
	t.Parallel()

	base := afero.NewMemMapFs()
	require.NoError(t, base.MkdirAll("out", 0o755))
	require.NoError(t, afero.WriteFile(base, "out/words.json", []byte("[]\n"), 0o644))

	err := WriteFile(afero.NewReadOnlyFs(base), "out/words.json", sampleEntries(), DefaultIndent)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDestinationWrite)

	got, err := afero.ReadFile(base, "out/words.json")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(got))
}

func TestWriteFile_OsFs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "words.json")

	require.NoError(t, WriteFile(afero.NewOsFs(), path, sampleEntries(), DefaultIndent))

	want, err := os.ReadFile(testdataPath(t, "words_sample.json"))
	require.NoError(t, err)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, outputPerm, info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFile_KeepsExistingPermissions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		existing os.FileMode
		want     os.FileMode
	}{
		{"private destination", 0o600, 0o600},
		{"group writable destination", 0o664, 0o664},
		{"read-only destination", 0o444, 0o444},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fs := afero.NewMemMapFs()
			require.NoError(t, fs.MkdirAll("out", 0o755))
			require.NoError(t, afero.WriteFile(fs, "out/words.json", []byte("[]\n"), tt.existing))
			require.NoError(t, fs.Chmod("out/words.json", tt.existing))

			require.NoError(t, WriteFile(fs, "out/words.json", sampleEntries(), DefaultIndent))

			info, err := fs.Stat("out/words.json")
			require.NoError(t, err)
			assert.Equal(t, tt.want, info.Mode().Perm())
		})
	}
}

func TestWriteFile_OsFsKeepsExistingPermissions(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "words.json")
	require.NoError(t, os.WriteFile(path, []byte("[]\n"), 0o600))
	require.NoError(t, os.Chmod(path, 0o600))

	require.NoError(t, WriteFile(afero.NewOsFs(), path, sampleEntries(), DefaultIndent))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
