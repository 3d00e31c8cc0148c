package property

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringParsers(t *testing.T) {
	parsers := map[string]func(any) (*string, error){
		"api":     StringFromAPI,
		"catalog": StringFromCatalog,
	}

	tests := []struct {
		name    string
		raw     any
		want    *string
		wantErr bool
	}{
		{name: "nil", raw: nil, want: nil},
		{name: "empty string stays present", raw: "", want: strPtr("")},
		{name: "string", raw: "maintenance window", want: strPtr("maintenance window")},
		{name: "integer", raw: 42, want: strPtr("42")},
		{name: "bool", raw: true, want: strPtr("true")},
		{name: "map", raw: map[string]any{"a": "b"}, wantErr: true},
		{name: "list", raw: []any{"a"}, wantErr: true},
	}

	for parserName, parse := range parsers {
		for _, tt := range tests {
			t.Run(parserName+"/"+tt.name, func(t *testing.T) {
				got, err := parse(tt.raw)
				if tt.wantErr {
					assert.ErrorIs(t, err, ErrInvalidString)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		}
	}
}

func TestStringParsersCopyPointerInput(t *testing.T) {
	parsers := map[string]func(any) (*string, error){
		"api":     StringFromAPI,
		"catalog": StringFromCatalog,
	}

	for name, parse := range parsers {
		t.Run(name, func(t *testing.T) {
			s := "maintenance window"

			got, err := parse(&s)
			require.NoError(t, err)
			assert.NotSame(t, &s, got)

			s = "changed"
			assert.Equal(t, "maintenance window", *got)
		})

		t.Run(name+"/nil pointer", func(t *testing.T) {
			got, err := parse((*string)(nil))
			require.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestStringFromCatalogResolvedDate(t *testing.T) {
	got, err := StringFromCatalog(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2023-01-01T00:00:00Z", *got)
}

func strPtr(s string) *string { return &s }
