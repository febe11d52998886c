package serverstat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quakeworld/serverstat/qwinfo"
)

func TestCountryByCode(t *testing.T) {
	name, region := CountryByCode("SE")
	assert.Equal(t, "Sweden", name)
	assert.Equal(t, "Europe", region)

	name, region = CountryByCode("DE")
	assert.Equal(t, "Germany", name)
	assert.Equal(t, "Europe", region)

	name, region = CountryByCode("XX")
	assert.Empty(t, name)
	assert.Empty(t, region)
}

func TestParseCoordinates(t *testing.T) {
	coords, err := ParseCoordinates("52.5200,13.4050")
	require.NoError(t, err)
	assert.Equal(t, Coordinates{Lat: 52.52, Lng: 13.405}, coords)

	coords, err = ParseCoordinates(" 40.7128 , -74.0060 ")
	require.NoError(t, err)
	assert.Equal(t, Coordinates{Lat: 40.7128, Lng: -74.006}, coords)

	_, err = ParseCoordinates("52.5200")
	assert.ErrorIs(t, err, ErrInvalidRecord)

	_, err = ParseCoordinates("a,b")
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestGeoFromSettings(t *testing.T) {
	geo := GeoFromSettings(qwinfo.Parse(`\countrycode\de\city\Berlin\coords\52.5200,13.4050`))

	assert.Equal(t, GeoInfo{
		CountryCode: "DE",
		CountryName: "Germany",
		City:        "Berlin",
		Region:      "Europe",
		Coords:      &Coordinates{Lat: 52.52, Lng: 13.405},
	}, geo)
}

func TestGeoFromSettingsDegradesGracefully(t *testing.T) {
	geo := GeoFromSettings(qwinfo.Parse(`\countrycode\ZZ\coords\broken`))

	assert.Equal(t, "ZZ", geo.CountryCode)
	assert.Empty(t, geo.CountryName)
	assert.Empty(t, geo.Region)
	assert.Nil(t, geo.Coords)

	assert.Equal(t, GeoInfo{}, GeoFromSettings(qwinfo.Parse("")))
}
