package almanac_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/richardwilkes/remap/almanac"
	"github.com/richardwilkes/remap/container/interval"
	"github.com/richardwilkes/remap/mapping"
	"github.com/richardwilkes/toolbox/check"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadSample(t *testing.T) *almanac.File {
	t.Helper()
	f, err := almanac.NewFileFromPath(filepath.Join("testdata", "sample.txt"))
	require.NoError(t, err)
	return f
}

func TestTextFormat(t *testing.T) {
	f := loadSample(t)
	check.Equal(t, filepath.Join("testdata", "sample.txt"), f.Path)
	check.Equal(t, []int64{79, 14, 55, 13}, f.Seeds)
	require.Len(t, f.Stages, 7)

	names := make([]string, len(f.Stages))
	for i, stage := range f.Stages {
		names[i] = stage.Name
	}
	check.Equal(t, []string{
		"seed-to-soil",
		"soil-to-fertilizer",
		"fertilizer-to-water",
		"water-to-light",
		"light-to-temperature",
		"temperature-to-humidity",
		"humidity-to-location",
	}, names)
	check.Equal(t, []almanac.Entry{
		{Destination: 50, Source: 98, Length: 2},
		{Destination: 52, Source: 50, Length: 48},
	}, f.Stages[0].Entries)
	check.Equal(t, almanac.Entry{Destination: 57, Source: 7, Length: 4}, f.Stages[2].Entries[3])
}

func TestPointsAndRanges(t *testing.T) {
	f := loadSample(t)
	check.Equal(t, []interval.Interval{
		{Start: 79, Length: 1},
		{Start: 14, Length: 1},
		{Start: 55, Length: 1},
		{Start: 13, Length: 1},
	}, f.Points())

	ranges, err := f.Ranges()
	require.NoError(t, err)
	check.Equal(t, []interval.Interval{{Start: 79, Length: 14}, {Start: 55, Length: 13}}, ranges)

	f.Seeds = f.Seeds[:3]
	_, err = f.Ranges()
	assert.Error(t, err)

	f.Seeds = []int64{10, -4}
	_, err = f.Ranges()
	assert.Error(t, err)
}

func TestTables(t *testing.T) {
	tables, err := loadSample(t).Tables()
	require.NoError(t, err)
	require.Len(t, tables, 7)
	check.Equal(t, "seed-to-soil", tables[0].Name())
	check.Equal(t, []mapping.Entry{
		{Destination: 52, Source: interval.Interval{Start: 50, Length: 48}},
		{Destination: 50, Source: interval.Interval{Start: 98, Length: 2}},
	}, tables[0].Entries())

	f := &almanac.File{
		Seeds: []int64{1},
		Stages: []almanac.Stage{{
			Name: "overlapping",
			Entries: []almanac.Entry{
				{Destination: 0, Source: 0, Length: 10},
				{Destination: 50, Source: 5, Length: 10},
			},
		}},
	}
	_, err = f.Tables()
	require.ErrorIs(t, err, mapping.ErrInvalidTable)
}

func TestTextErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		text string
		want string
	}{
		{name: "missing seeds", text: "a-to-b map:\n1 2 3\n", want: "missing seeds"},
		{name: "duplicate seeds", text: "seeds: 1 2\nseeds: 3 4\n", want: "line 2"},
		{name: "bad seed", text: "seeds: 1 x\n", want: "line 1"},
		{name: "orphan entry", text: "seeds: 1 2\n\n1 2 3\n", want: "line 3"},
		{name: "short entry", text: "seeds: 1 2\n\na-to-b map:\n1 2\n", want: "line 4"},
		{name: "bad entry", text: "seeds: 1 2\n\na-to-b map:\n1 2 three\n", want: "line 4"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := almanac.NewFileFromReader(strings.NewReader(tc.text))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestFormatsAgree(t *testing.T) {
	text := loadSample(t)

	yml, err := almanac.NewFileFromPath(filepath.Join("testdata", "sample.yaml"))
	require.NoError(t, err)
	if diff := cmp.Diff(text, yml, cmpopts.IgnoreFields(almanac.File{}, "Path")); diff != "" {
		t.Errorf("YAML almanac differs from text (-text +yaml):\n%s", diff)
	}

	path := filepath.Join(t.TempDir(), "sample"+almanac.BencodeExt)
	require.NoError(t, text.WriteBencode(path))
	snapshot, err := almanac.NewFileFromPath(path)
	require.NoError(t, err)
	check.Equal(t, path, snapshot.Path)
	if diff := cmp.Diff(text, snapshot, cmpopts.IgnoreFields(almanac.File{}, "Path")); diff != "" {
		t.Errorf("snapshot differs from text (-text +snapshot):\n%s", diff)
	}

	data, err := text.YAML()
	require.NoError(t, err)
	again, err := almanac.NewFileFromYAML(data)
	require.NoError(t, err)
	if diff := cmp.Diff(text, again, cmpopts.IgnoreFields(almanac.File{}, "Path")); diff != "" {
		t.Errorf("re-encoded YAML differs (-text +yaml):\n%s", diff)
	}
}

func TestNewFileFromPathErrors(t *testing.T) {
	_, err := almanac.NewFileFromPath(filepath.Join("testdata", "missing.txt"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken"+almanac.YAMLExt)
	require.NoError(t, os.WriteFile(path, []byte("seeds: [1, two"), 0o600))
	_, err = almanac.NewFileFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
