package property

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeFromAPI(t *testing.T) {
	want := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		raw     any
		want    *time.Time
		wantErr bool
	}{
		{name: "nil", raw: nil, want: nil},
		{name: "empty string", raw: "", want: nil},
		{name: "rfc3339", raw: "2023-01-01T00:00:00Z", want: &want},
		{name: "fractional seconds", raw: "2023-01-01T00:00:00.000Z", want: &want},
		{name: "offset", raw: "2023-01-01T01:00:00+01:00", want: &want},
		{name: "time value", raw: want, want: &want},
		{name: "date only", raw: "2023-01-01", wantErr: true},
		{name: "number", raw: float64(1672531200), wantErr: true},
		{name: "garbage", raw: "next tuesday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TimeFromAPI(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTime)
				return
			}
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got), "got %s", got)
		})
	}
}

func TestTimeParsersCopyPointerInput(t *testing.T) {
	parsers := map[string]func(any) (*time.Time, error){
		"api":     TimeFromAPI,
		"catalog": TimeFromCatalog,
	}

	for name, parse := range parsers {
		t.Run(name, func(t *testing.T) {
			ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

			got, err := parse(&ts)
			require.NoError(t, err)
			assert.NotSame(t, &ts, got)

			ts = ts.AddDate(1, 0, 0)
			assert.Equal(t, 2024, got.Year())
		})

		t.Run(name+"/nil pointer", func(t *testing.T) {
			got, err := parse((*time.Time)(nil))
			require.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestTimeFromCatalog(t *testing.T) {
	want := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		raw     any
		want    *time.Time
		wantErr bool
	}{
		{name: "nil", raw: nil, want: nil},
		{name: "empty string", raw: "", want: nil},
		{name: "yaml timestamp", raw: want, want: &want},
		{name: "rfc3339 string", raw: "2023-01-01T00:00:00Z", want: &want},
		{name: "date only", raw: "2023-01-01", want: &want},
		{name: "unix seconds", raw: 1672531200, want: &want},
		{name: "map", raw: map[string]any{"a": 1}, wantErr: true},
		{name: "list", raw: []any{"2023-01-01"}, wantErr: true},
		{name: "garbage", raw: "next tuesday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TimeFromCatalog(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTime)
				return
			}
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got), "got %s", got)
		})
	}
}
