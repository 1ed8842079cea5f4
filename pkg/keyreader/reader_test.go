package keyreader

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureDir = "../../testdata"

func fixtures() *Resolver {
	return NewResolver(afero.NewOsFs(), fixtureDir)
}

func TestReadCSV_Fixture(t *testing.T) {
	freq, err := fixtures().Read("A_f-s.csv")
	require.NoError(t, err)

	assert.Equal(t, FrequencyMap{"A": 1, "B": 1, "C": 1, "D": 2, "E": 1, "F": 2}, freq)
	assert.Equal(t, 8, freq.Total())
	assert.Len(t, freq, 6)
}

func TestReadCSV_QuotedElements(t *testing.T) {
	freq, err := fixtures().Read("quoted.csv")
	require.NoError(t, err)

	assert.Equal(t, FrequencyMap{"apple": 2, "banana": 1, "orange": 1}, freq)
}

func TestReadCSV_EmptyFile(t *testing.T) {
	freq, err := fixtures().Read("empty.csv")
	require.NoError(t, err)

	assert.NotNil(t, freq)
	assert.Empty(t, freq)
}

func TestReadCSV_Idempotent(t *testing.T) {
	r := fixtures()
	first, err := r.Read("B_f-s.csv")
	require.NoError(t, err)
	second, err := r.Read("B_f-s.csv")
	require.NoError(t, err)

	assert.Equal(t, first, second)

	// Maps are independent between calls
	first["C"] = 100
	assert.Equal(t, 1, second["C"])
}

func TestReadCSV_MissingResource(t *testing.T) {
	_, err := ReadCSV(afero.NewMemMapFs(), "nope.csv")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrResourceNotFound))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "nope.csv")
}

func TestReadKeys(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  FrequencyMap
	}{
		{
			name:  "emptyStream",
			input: "",
			want:  FrequencyMap{},
		},
		{
			name:  "headerOnly",
			input: "id\n",
			want:  FrequencyMap{},
		},
		{
			name:  "headerOnlyNoNewline",
			input: "id",
			want:  FrequencyMap{},
		},
		{
			name:  "blankHeader",
			input: "\na\n",
			want:  FrequencyMap{"a": 1},
		},
		{
			name:  "blankLines",
			input: "id\n\n   \n\"\"\n\" \"\n",
			want:  FrequencyMap{},
		},
		{
			name:  "headerIsNeverAKey",
			input: "A\nA\nB\n",
			want:  FrequencyMap{"A": 1, "B": 1},
		},
		{
			name:  "windowsLineEndings",
			input: "id\r\nx\r\nx\r\ny\r\n",
			want:  FrequencyMap{"x": 2, "y": 1},
		},
		{
			name:  "noCommaSplitting",
			input: "id,name\n1,alice\n\"1\",\"alice\"\n",
			want:  FrequencyMap{"1,alice": 2},
		},
		{
			name:  "quotesRemovedBeforeTrim",
			input: "id\n\" k \"\nk\n  \"k\"  \n",
			want:  FrequencyMap{"k": 3},
		},
		{
			name:  "innerQuotesAndSpaces",
			input: "id\nnew \"york\" city\n",
			want:  FrequencyMap{"new york city": 1},
		},
		{
			name:  "finalLineWithoutTerminator",
			input: "id\na\nb",
			want:  FrequencyMap{"a": 1, "b": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadKeys(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadKeys_LongLines(t *testing.T) {
	long := strings.Repeat("x", 2*1024*1024)

	got, err := ReadKeys(strings.NewReader("id\n" + long + "\n\"" + long + "\""))
	require.NoError(t, err)
	assert.Equal(t, FrequencyMap{long: 2}, got)

	// A long header is skipped like any other
	got, err = ReadKeys(strings.NewReader(long + "\nk\n"))
	require.NoError(t, err)
	assert.Equal(t, FrequencyMap{"k": 1}, got)
}

func TestCleanKey(t *testing.T) {
	assert.Equal(t, "apple", CleanKey(`"apple"`))
	assert.Equal(t, "apple", CleanKey(`  "apple" `))
	assert.Equal(t, "a b", CleanKey(`"a" "b"`))
	assert.Equal(t, "", CleanKey(`""`))
}

func TestFrequencyMap_Keys(t *testing.T) {
	freq := FrequencyMap{"b": 1, "c": 3, "a": 2}
	assert.Equal(t, []string{"a", "b", "c"}, freq.Keys())
	assert.Equal(t, 6, freq.Total())
	assert.Empty(t, FrequencyMap{}.Keys())
}
