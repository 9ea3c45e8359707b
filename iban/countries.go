package iban

import "sort"

const (
	// country code + check digits + at least one BBAN character
	minIBANLength = 5
	maxIBANLength = 34
)

// countryLengths maps an ISO 3166-1 alpha-2 code to the total IBAN length
// for that country. The map is never written after package init.
var countryLengths = map[string]int{
	"AD": 24, // Andorra
	"AE": 23, // United Arab Emirates
	"AL": 28, // Albania
	"AO": 25, // Angola
	"AT": 20, // Austria
	"AX": 18, // Aland Islands
	"AZ": 28, // Azerbaijan
	"BA": 20, // Bosnia and Herzegovina
	"BE": 16, // Belgium
	"BF": 28, // Burkina Faso
	"BG": 22, // Bulgaria
	"BH": 22, // Bahrain
	"BI": 27, // Burundi
	"BJ": 28, // Benin
	"BL": 27, // Saint Barthelemy
	"BR": 29, // Brazil
	"BY": 28, // Belarus
	"CF": 27, // Central African Republic
	"CG": 27, // Congo
	"CH": 21, // Switzerland
	"CI": 28, // Cote d'Ivoire
	"CM": 27, // Cameroon
	"CR": 22, // Costa Rica
	"CV": 25, // Cabo Verde
	"CY": 28, // Cyprus
	"CZ": 24, // Czechia
	"DE": 22, // Germany
	"DJ": 27, // Djibouti
	"DK": 18, // Denmark
	"DO": 28, // Dominican Republic
	"DZ": 26, // Algeria
	"EE": 20, // Estonia
	"EG": 29, // Egypt
	"ES": 24, // Spain
	"FI": 18, // Finland
	"FK": 18, // Falkland Islands
	"FO": 18, // Faroe Islands
	"FR": 27, // France
	"GA": 27, // Gabon
	"GB": 22, // United Kingdom
	"GE": 22, // Georgia
	"GF": 27, // French Guiana
	"GG": 22, // Guernsey
	"GI": 23, // Gibraltar
	"GL": 18, // Greenland
	"GP": 27, // Guadeloupe
	"GQ": 27, // Equatorial Guinea
	"GR": 27, // Greece
	"GT": 28, // Guatemala
	"GW": 25, // Guinea-Bissau
	"HN": 28, // Honduras
	"HR": 21, // Croatia
	"HU": 28, // Hungary
	"IE": 22, // Ireland
	"IL": 23, // Israel
	"IM": 22, // Isle of Man
	"IQ": 23, // Iraq
	"IR": 26, // Iran
	"IS": 26, // Iceland
	"IT": 27, // Italy
	"JE": 22, // Jersey
	"JO": 30, // Jordan
	"KM": 27, // Comoros
	"KW": 30, // Kuwait
	"KZ": 20, // Kazakhstan
	"LB": 28, // Lebanon
	"LC": 32, // Saint Lucia
	"LI": 21, // Liechtenstein
	"LT": 20, // Lithuania
	"LU": 20, // Luxembourg
	"LV": 21, // Latvia
	"LY": 25, // Libya
	"MA": 28, // Morocco
	"MC": 27, // Monaco
	"MD": 24, // Moldova
	"ME": 22, // Montenegro
	"MF": 27, // Saint Martin
	"MG": 27, // Madagascar
	"MK": 19, // North Macedonia
	"ML": 28, // Mali
	"MN": 20, // Mongolia
	"MQ": 27, // Martinique
	"MR": 27, // Mauritania
	"MT": 31, // Malta
	"MU": 30, // Mauritius
	"MZ": 25, // Mozambique
	"NC": 27, // New Caledonia
	"NE": 28, // Niger
	"NI": 28, // Nicaragua
	"NL": 18, // Netherlands
	"NO": 15, // Norway
	"OM": 23, // Oman
	"PF": 27, // French Polynesia
	"PK": 24, // Pakistan
	"PL": 28, // Poland
	"PM": 27, // Saint Pierre and Miquelon
	"PS": 29, // Palestine
	"PT": 25, // Portugal
	"QA": 29, // Qatar
	"RE": 27, // Reunion
	"RO": 24, // Romania
	"RS": 22, // Serbia
	"RU": 33, // Russia
	"SA": 24, // Saudi Arabia
	"SC": 31, // Seychelles
	"SD": 18, // Sudan
	"SE": 24, // Sweden
	"SI": 19, // Slovenia
	"SK": 24, // Slovakia
	"SM": 27, // San Marino
	"SN": 28, // Senegal
	"SO": 23, // Somalia
	"ST": 25, // Sao Tome and Principe
	"SV": 28, // El Salvador
	"TD": 27, // Chad
	"TF": 27, // French Southern Territories
	"TG": 28, // Togo
	"TL": 23, // Timor-Leste
	"TN": 24, // Tunisia
	"TR": 26, // Turkey
	"UA": 29, // Ukraine
	"VA": 22, // Vatican City
	"VG": 24, // British Virgin Islands
	"WF": 27, // Wallis and Futuna
	"XK": 20, // Kosovo
	"YE": 30, // Yemen
	"YT": 27, // Mayotte
}

func sortedCodes(table map[string]int) []string {
	out := make([]string, 0, len(table))
	for code := range table {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
