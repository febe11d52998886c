package serverstat

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quakeworld/serverstat/qwinfo"
)

// GeoInfo is the location a server advertises about itself through its
// serverinfo keys. Servers self-report, so every field is best effort.
type GeoInfo struct {
	CountryCode string       `json:"country_code"`
	CountryName string       `json:"country_name"`
	City        string       `json:"city"`
	Region      string       `json:"region"`
	Coords      *Coordinates `json:"coords,omitempty"`
}

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ParseCoordinates parses a "lat,lng" settings value.
func ParseCoordinates(value string) (Coordinates, error) {
	latStr, lngStr, found := strings.Cut(value, ",")
	if !found {
		return Coordinates{}, fmt.Errorf("%w: coordinates %q", ErrInvalidRecord, value)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: latitude %q", ErrInvalidRecord, latStr)
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: longitude %q", ErrInvalidRecord, lngStr)
	}

	return Coordinates{Lat: lat, Lng: lng}, nil
}

// GeoFromSettings derives location info from the countrycode, city and
// coords serverinfo keys. Unknown or malformed values degrade to empty
// fields rather than errors.
func GeoFromSettings(settings qwinfo.Settings) GeoInfo {
	geo := GeoInfo{City: settings.Get("city")}

	if code := strings.ToUpper(strings.TrimSpace(settings.Get("countrycode"))); code != "" {
		geo.CountryCode = code

		if info, ok := countryInfo[code]; ok {
			geo.CountryName = info.name
			geo.Region = info.region
		}
	}

	if raw := settings.Get("coords"); raw != "" {
		if coords, err := ParseCoordinates(raw); err == nil {
			geo.Coords = &coords
		}
	}

	return geo
}

// CountryByCode looks up a two-letter uppercase ISO 3166 code and returns
// the country name and region, or empty strings when unknown.
func CountryByCode(code string) (name, region string) {
	info := countryInfo[code]
	return info.name, info.region
}

type country struct {
	name   string
	region string
}

var countryInfo = map[string]country{
	"AD": {"Andorra", "Europe"},
	"AE": {"United Arab Emirates", "Asia"},
	"AF": {"Afghanistan", "Asia"},
	"AG": {"Antigua and Barbuda", "North America"},
	"AI": {"Anguilla", "North America"},
	"AL": {"Albania", "Europe"},
	"AM": {"Armenia", "Asia"},
	"AO": {"Angola", "Africa"},
	"AQ": {"Antarctica", "Antarctica"},
	"AR": {"Argentina", "South America"},
	"AS": {"American Samoa", "North America"},
	"AT": {"Austria", "Europe"},
	"AU": {"Australia", "Oceania"},
	"AW": {"Aruba", "North America"},
	"AX": {"Åland Islands", "Europe"},
	"AZ": {"Azerbaijan", "Asia"},
	"BA": {"Bosnia and Herzegovina", "Europe"},
	"BB": {"Barbados", "North America"},
	"BD": {"Bangladesh", "Asia"},
	"BE": {"Belgium", "Europe"},
	"BF": {"Burkina Faso", "Africa"},
	"BG": {"Bulgaria", "Europe"},
	"BH": {"Bahrain", "Asia"},
	"BI": {"Burundi", "Africa"},
	"BJ": {"Benin", "Africa"},
	"BL": {"Saint Barthélemy", "North America"},
	"BM": {"Bermuda", "North America"},
	"BN": {"Brunei Darussalam", "Asia"},
	"BO": {"Bolivia", "South America"},
	"BQ": {"Bonaire", "North America"},
	"BR": {"Brazil", "South America"},
	"BS": {"Bahamas", "North America"},
	"BT": {"Bhutan", "Asia"},
	"BV": {"Bouvet Island", "Antarctica"},
	"BW": {"Botswana", "Africa"},
	"BY": {"Belarus", "Europe"},
	"BZ": {"Belize", "North America"},
	"CA": {"Canada", "North America"},
	"CC": {"Cocos (Keeling) Islands", "Asia"},
	"CD": {"Congo", "Africa"},
	"CF": {"Central African Republic", "Africa"},
	"CG": {"Congo", "Africa"},
	"CH": {"Switzerland", "Europe"},
	"CI": {"Côte d'Ivoire", "Africa"},
	"CK": {"Cook Islands", "Oceania"},
	"CL": {"Chile", "South America"},
	"CM": {"Cameroon", "Africa"},
	"CN": {"China", "Asia"},
	"CO": {"Colombia", "South America"},
	"CR": {"Costa Rica", "North America"},
	"CU": {"Cuba", "North America"},
	"CV": {"Cape Verde", "Africa"},
	"CW": {"Curaçao", "North America"},
	"CX": {"Christmas Island", "Oceania"},
	"CY": {"Cyprus", "Europe"},
	"CZ": {"Czech Republic", "Europe"},
	"DE": {"Germany", "Europe"},
	"DJ": {"Djibouti", "Africa"},
	"DK": {"Denmark", "Europe"},
	"DM": {"Dominica", "North America"},
	"DO": {"Dominican Republic", "North America"},
	"DZ": {"Algeria", "Africa"},
	"EC": {"Ecuador", "South America"},
	"EE": {"Estonia", "Europe"},
	"EG": {"Egypt", "Africa"},
	"EH": {"Western Sahara", "Africa"},
	"ER": {"Eritrea", "Africa"},
	"ES": {"Spain", "Europe"},
	"ET": {"Ethiopia", "Africa"},
	"FI": {"Finland", "Europe"},
	"FJ": {"Fiji", "Oceania"},
	"FK": {"Falkland Islands (Malvinas)", "South America"},
	"FM": {"Micronesia", "Oceania"},
	"FO": {"Faroe Islands", "Europe"},
	"FR": {"France", "Europe"},
	"GA": {"Gabon", "Africa"},
	"GB": {"United Kingdom", "Europe"},
	"GD": {"Grenada", "North America"},
	"GE": {"Georgia", "Asia"},
	"GF": {"French Guiana", "South America"},
	"GG": {"Guernsey", "Europe"},
	"GH": {"Ghana", "Africa"},
	"GI": {"Gibraltar", "Europe"},
	"GL": {"Greenland", "North America"},
	"GM": {"Gambia", "Africa"},
	"GN": {"Guinea", "Africa"},
	"GP": {"Guadeloupe", "North America"},
	"GQ": {"Equatorial Guinea", "Africa"},
	"GR": {"Greece", "Europe"},
	"GS": {"South Georgia and the South Sandwich Islands", "South America"},
	"GT": {"Guatemala", "North America"},
	"GU": {"Guam", "Oceania"},
	"GW": {"Guinea-Bissau", "Africa"},
	"GY": {"Guyana", "South America"},
	"HK": {"Hong Kong", "Asia"},
	"HM": {"Heard Island and McDonald Islands", "Oceania"},
	"HN": {"Honduras", "North America"},
	"HR": {"Croatia", "Europe"},
	"HT": {"Haiti", "North America"},
	"HU": {"Hungary", "Europe"},
	"ID": {"Indonesia", "Asia"},
	"IE": {"Ireland", "Europe"},
	"IL": {"Israel", "Asia"},
	"IM": {"Isle of Man", "Europe"},
	"IN": {"India", "Asia"},
	"IO": {"British Indian Ocean Territory", "Asia"},
	"IQ": {"Iraq", "Asia"},
	"IR": {"Iran", "Asia"},
	"IS": {"Iceland", "Europe"},
	"IT": {"Italy", "Europe"},
	"JE": {"Jersey", "Europe"},
	"JM": {"Jamaica", "North America"},
	"JO": {"Jordan", "Asia"},
	"JP": {"Japan", "Asia"},
	"KE": {"Kenya", "Africa"},
	"KG": {"Kyrgyzstan", "Asia"},
	"KH": {"Cambodia", "Asia"},
	"KI": {"Kiribati", "Oceania"},
	"KM": {"Comoros", "Africa"},
	"KN": {"Saint Kitts and Nevis", "North America"},
	"KP": {"North Korea", "Asia"},
	"KR": {"South Korea", "Asia"},
	"KW": {"Kuwait", "Asia"},
	"KY": {"Cayman Islands", "North America"},
	"KZ": {"Kazakhstan", "Asia"},
	"LA": {"Lao", "Asia"},
	"LB": {"Lebanon", "Asia"},
	"LC": {"Saint Lucia", "North America"},
	"LI": {"Liechtenstein", "Europe"},
	"LK": {"Sri Lanka", "Asia"},
	"LR": {"Liberia", "Africa"},
	"LS": {"Lesotho", "Africa"},
	"LT": {"Lithuania", "Europe"},
	"LU": {"Luxembourg", "Europe"},
	"LV": {"Latvia", "Europe"},
	"LY": {"Libya", "Africa"},
	"MA": {"Morocco", "Africa"},
	"MC": {"Monaco", "Europe"},
	"MD": {"Moldova", "Europe"},
	"ME": {"Montenegro", "Europe"},
	"MF": {"Saint Martin", "North America"},
	"MG": {"Madagascar", "Africa"},
	"MH": {"Marshall Islands", "Oceania"},
	"MK": {"Macedonia", "Europe"},
	"ML": {"Mali", "Africa"},
	"MM": {"Myanmar", "Asia"},
	"MN": {"Mongolia", "Asia"},
	"MO": {"Macao", "Asia"},
	"MP": {"Northern Mariana Islands", "Oceania"},
	"MQ": {"Martinique", "North America"},
	"MR": {"Mauritania", "Africa"},
	"MS": {"Montserrat", "North America"},
	"MT": {"Malta", "Europe"},
	"MU": {"Mauritius", "Africa"},
	"MV": {"Maldives", "Asia"},
	"MW": {"Malawi", "Africa"},
	"MX": {"Mexico", "North America"},
	"MY": {"Malaysia", "Asia"},
	"MZ": {"Mozambique", "Africa"},
	"NA": {"Namibia", "Africa"},
	"NC": {"New Caledonia", "Oceania"},
	"NE": {"Niger", "Africa"},
	"NF": {"Norfolk Island", "Oceania"},
	"NG": {"Nigeria", "Africa"},
	"NI": {"Nicaragua", "North America"},
	"NL": {"Netherlands", "Europe"},
	"NO": {"Norway", "Europe"},
	"NP": {"Nepal", "Asia"},
	"NR": {"Nauru", "Oceania"},
	"NU": {"Niue", "Oceania"},
	"NZ": {"New Zealand", "Oceania"},
	"OM": {"Oman", "Asia"},
	"PA": {"Panama", "North America"},
	"PE": {"Peru", "South America"},
	"PF": {"French Polynesia", "Oceania"},
	"PG": {"Papua New Guinea", "Oceania"},
	"PH": {"Philippines", "Asia"},
	"PK": {"Pakistan", "Asia"},
	"PL": {"Poland", "Europe"},
	"PM": {"Saint Pierre and Miquelon", "North America"},
	"PN": {"Pitcairn", "Oceania"},
	"PR": {"Puerto Rico", "North America"},
	"PS": {"Palestine", "Asia"},
	"PT": {"Portugal", "Europe"},
	"PW": {"Palau", "Oceania"},
	"PY": {"Paraguay", "South America"},
	"QA": {"Qatar", "Asia"},
	"RE": {"Réunion", "Africa"},
	"RO": {"Romania", "Europe"},
	"RS": {"Serbia", "Europe"},
	"RU": {"Russia", "Europe"},
	"RW": {"Rwanda", "Africa"},
	"SA": {"Saudi Arabia", "Asia"},
	"SB": {"Solomon Islands", "Oceania"},
	"SC": {"Seychelles", "Africa"},
	"SD": {"Sudan", "Africa"},
	"SE": {"Sweden", "Europe"},
	"SG": {"Singapore", "Asia"},
	"SH": {"Saint Helena", "Africa"},
	"SI": {"Slovenia", "Europe"},
	"SJ": {"Svalbard and Jan Mayen", "Europe"},
	"SK": {"Slovakia", "Europe"},
	"SL": {"Sierra Leone", "Africa"},
	"SM": {"San Marino", "Europe"},
	"SN": {"Senegal", "Africa"},
	"SO": {"Somalia", "Africa"},
	"SR": {"Suriname", "South America"},
	"SS": {"South Sudan", "Africa"},
	"ST": {"Sao Tome and Principe", "Africa"},
	"SV": {"El Salvador", "North America"},
	"SX": {"Sint Maarten (Dutch part)", "North America"},
	"SY": {"Syrian Arab Republic", "Asia"},
	"SZ": {"Eswatini", "Africa"},
	"TC": {"Turks and Caicos Islands", "North America"},
	"TD": {"Chad", "Africa"},
	"TF": {"French Southern Territories", "Oceania"},
	"TG": {"Togo", "Africa"},
	"TH": {"Thailand", "Asia"},
	"TJ": {"Tajikistan", "Asia"},
	"TK": {"Tokelau", "Oceania"},
	"TL": {"Timor-Leste", "Oceania"},
	"TM": {"Turkmenistan", "Asia"},
	"TN": {"Tunisia", "Africa"},
	"TO": {"Tonga", "Oceania"},
	"TR": {"Turkey", "Asia"},
	"TT": {"Trinidad and Tobago", "North America"},
	"TV": {"Tuvalu", "Oceania"},
	"TW": {"Taiwan", "Asia"},
	"TZ": {"Tanzania", "Africa"},
	"UA": {"Ukraine", "Europe"},
	"UG": {"Uganda", "Africa"},
	"UM": {"United States Minor Outlying Islands", "North America"},
	"US": {"United States", "North America"},
	"UY": {"Uruguay", "South America"},
	"UZ": {"Uzbekistan", "Asia"},
	"VA": {"Holy See (Vatican City State)", "Europe"},
	"VC": {"Saint Vincent and the Grenadines", "North America"},
	"VE": {"Venezuela", "South America"},
	"VG": {"Virgin Islands, British", "North America"},
	"VI": {"Virgin Islands, U.S.", "North America"},
	"VN": {"Viet Nam", "Asia"},
	"VU": {"Vanuatu", "Oceania"},
	"WF": {"Wallis and Futuna", "Oceania"},
	"WS": {"Samoa", "Oceania"},
	"YE": {"Yemen", "Asia"},
	"YT": {"Mayotte", "Africa"},
	"ZA": {"South Africa", "Africa"},
	"ZM": {"Zambia", "Africa"},
	"ZW": {"Zimbabwe", "Africa"},
}
