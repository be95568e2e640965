package domain

// airlineDirectory maps IATA carrier codes to display names. The list covers
// the carriers commonly returned by the provider; unknown codes fall back to
// the code itself.
var airlineDirectory = map[string]string{
	"AA": "American Airlines",
	"AC": "Air Canada",
	"AF": "Air France",
	"AS": "Alaska Airlines",
	"AY": "Finnair",
	"AZ": "ITA Airways",
	"B6": "JetBlue Airways",
	"BA": "British Airways",
	"CX": "Cathay Pacific",
	"DL": "Delta Air Lines",
	"EK": "Emirates",
	"EY": "Etihad Airways",
	"FR": "Ryanair",
	"GA": "Garuda Indonesia",
	"IB": "Iberia",
	"JL": "Japan Airlines",
	"KL": "KLM Royal Dutch Airlines",
	"LH": "Lufthansa",
	"LX": "Swiss International Air Lines",
	"NH": "All Nippon Airways",
	"OS": "Austrian Airlines",
	"QF": "Qantas",
	"QR": "Qatar Airways",
	"SK": "Scandinavian Airlines",
	"SN": "Brussels Airlines",
	"SQ": "Singapore Airlines",
	"TK": "Turkish Airlines",
	"TP": "TAP Air Portugal",
	"U2": "easyJet",
	"UA": "United Airlines",
	"VS": "Virgin Atlantic",
	"W6": "Wizz Air",
	"WN": "Southwest Airlines",
}

// AirlineName resolves a carrier code to its display name. Codes absent from
// the directory are returned unchanged.
func AirlineName(code string) string {
	if name, ok := airlineDirectory[code]; ok {
		return name
	}
	return code
}
