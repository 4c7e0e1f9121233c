package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KarloVrd/FlunkyStats/internal/errors"
)

func writeCleanedCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cleaned_jesen.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoader_Load(t *testing.T) {
	csv := "Sekcija,ImePrezime,DatumRođenja,Dan1,Dan2,Dan3\n" +
		"Prvi odred,Pero Perić,15.03.1995,3,2,1\n" +
		"Drugi odred,Ana Anić,N/A,0,5,2\n"

	table, err := NewLoader(nil).Load(context.Background(), writeCleanedCSV(t, csv))
	require.NoError(t, err)

	assert.Equal(t, []string{"Dan1", "Dan2", "Dan3"}, table.Days)
	require.Len(t, table.Records, 2)

	assert.Equal(t, "Pero Perić", table.Records[0].Name)
	assert.Equal(t, []int{3, 2, 1}, table.Records[0].Days)
	assert.Equal(t, "N/A", table.Records[1].BirthDate)
	assert.Equal(t, []int{0, 5, 2}, table.Records[1].Days)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantType errors.ErrorType
	}{
		{
			name:     "non-integer day value",
			content:  "Sekcija,ImePrezime,DatumRođenja,Dan1\nOdred,Pero,N/A,x\n",
			wantType: errors.ErrTypeParsing,
		},
		{
			name:     "too few columns",
			content:  "Sekcija,ImePrezime\nOdred,Pero\n",
			wantType: errors.ErrTypeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader(nil).Load(context.Background(), writeCleanedCSV(t, tt.content))
			require.Error(t, err)
			assert.True(t, errors.IsType(err, tt.wantType))
		})
	}
}

func TestLoader_Load_Missing(t *testing.T) {
	_, err := NewLoader(nil).Load(context.Background(), filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeNotFound))
}

func TestRecord_Sections(t *testing.T) {
	tests := []struct {
		name    string
		section string
		want    []string
	}{
		{"simple", "Prvi odred", []string{"Prvi odred"}},
		{"compound", "Prvi odred - Drugi odred", []string{"Prvi odred", "Drugi odred"}},
		{"hyphenated name stays whole", "Sjeverni-zapad", []string{"Sjeverni-zapad"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Record{Section: tt.section}
			assert.Equal(t, tt.want, r.Sections())
		})
	}
}

func TestRecord_Totals(t *testing.T) {
	r := &Record{Days: []int{3, 2, 1, 0, 4, 2, 1}}
	assert.Equal(t, 13, r.Total())
	assert.Equal(t, 6, r.DaysPresent())
}
