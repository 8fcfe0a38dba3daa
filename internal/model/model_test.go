package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	d := NewDate(2022, time.May, 20)

	encoded, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2022-05-20"`, string(encoded))

	var decoded Date
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.True(t, d.Equal(decoded))

	assert.Error(t, json.Unmarshal([]byte(`"20/05/2022"`), &decoded))
	assert.Error(t, json.Unmarshal([]byte(`20220520`), &decoded))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2022, time.May, 20, 13, 37, 0, 0, time.UTC)))
	assert.True(t, d.Equal(NewDate(2022, time.May, 20)))

	require.NoError(t, d.Scan([]byte("2022-06-01")))
	assert.True(t, d.Equal(NewDate(2022, time.June, 1)))
}

func TestRouteDisplayName(t *testing.T) {
	tests := []struct {
		name  string
		route Route
		want  string
	}{
		{
			name:  "locations longer than the prefix",
			route: Route{StartLocation: "Lisboa", EndLocation: "Porto", Distance: 300},
			want:  "Lis-Por (300 km)",
		},
		{
			name:  "short locations kept whole",
			route: Route{StartLocation: "Sé", EndLocation: "Ofir", Distance: 2.5},
			want:  "Sé-Ofi (2.5 km)",
		},
		{
			name:  "fractional distance",
			route: Route{StartLocation: "Braga", EndLocation: "Guimarães", Distance: 21.0975},
			want:  "Bra-Gui (21.0975 km)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.route.DisplayName())
		})
	}
}

func TestDigestPassword(t *testing.T) {
	assert.Equal(t, DigestPassword("velocipede"), DigestPassword("velocipede"))
	assert.NotEqual(t, DigestPassword("velocipede"), DigestPassword("cadence"))
	assert.Len(t, DigestPassword("velocipede"), 8)
}

func TestUserHidesCredentialsInJSON(t *testing.T) {
	encoded, err := json.Marshal(User{Number: 1, Name: "Alice", Email: "alice@mail.com", Password: "digest", Token: "secret"})
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), "digest")
	assert.NotContains(t, string(encoded), "secret")
}
