package geo

// places is the static country table. Centroids are approximate country
// centers, good enough for continent bounding boxes and tile ordering.
var places = []Place{
	// North America
	{Name: "Canada", Code: "CA", Continent: "North America", Lat: 56.1, Lon: -106.3},
	{Name: "Costa Rica", Code: "CR", Continent: "North America", Lat: 9.7, Lon: -83.8},
	{Name: "Cuba", Code: "CU", Continent: "North America", Lat: 21.5, Lon: -77.8},
	{Name: "Guatemala", Code: "GT", Continent: "North America", Lat: 15.8, Lon: -90.2},
	{Name: "Mexico", Code: "MX", Continent: "North America", Lat: 23.6, Lon: -102.6},
	{Name: "Panama", Code: "PA", Continent: "North America", Lat: 8.5, Lon: -80.8},
	{Name: "United States", Code: "US", Continent: "North America", Lat: 39.8, Lon: -98.6},

	// South America
	{Name: "Argentina", Code: "AR", Continent: "South America", Lat: -38.4, Lon: -63.6},
	{Name: "Bolivia", Code: "BO", Continent: "South America", Lat: -16.3, Lon: -63.6},
	{Name: "Brazil", Code: "BR", Continent: "South America", Lat: -14.2, Lon: -51.9},
	{Name: "Chile", Code: "CL", Continent: "South America", Lat: -35.7, Lon: -71.5},
	{Name: "Colombia", Code: "CO", Continent: "South America", Lat: 4.6, Lon: -74.1},
	{Name: "Ecuador", Code: "EC", Continent: "South America", Lat: -1.8, Lon: -78.2},
	{Name: "Paraguay", Code: "PY", Continent: "South America", Lat: -23.4, Lon: -58.4},
	{Name: "Peru", Code: "PE", Continent: "South America", Lat: -9.2, Lon: -75.0},
	{Name: "Uruguay", Code: "UY", Continent: "South America", Lat: -32.5, Lon: -55.8},
	{Name: "Venezuela", Code: "VE", Continent: "South America", Lat: 6.4, Lon: -66.6},

	// Europe
	{Name: "Austria", Code: "AT", Continent: "Europe", Lat: 47.5, Lon: 14.6},
	{Name: "Belgium", Code: "BE", Continent: "Europe", Lat: 50.5, Lon: 4.5},
	{Name: "Czechia", Code: "CZ", Continent: "Europe", Lat: 49.8, Lon: 15.5},
	{Name: "Denmark", Code: "DK", Continent: "Europe", Lat: 56.3, Lon: 9.5},
	{Name: "Finland", Code: "FI", Continent: "Europe", Lat: 61.9, Lon: 25.7},
	{Name: "France", Code: "FR", Continent: "Europe", Lat: 46.2, Lon: 2.2},
	{Name: "Germany", Code: "DE", Continent: "Europe", Lat: 51.2, Lon: 10.5},
	{Name: "Greece", Code: "GR", Continent: "Europe", Lat: 39.1, Lon: 21.8},
	{Name: "Hungary", Code: "HU", Continent: "Europe", Lat: 47.2, Lon: 19.5},
	{Name: "Ireland", Code: "IE", Continent: "Europe", Lat: 53.4, Lon: -8.2},
	{Name: "Italy", Code: "IT", Continent: "Europe", Lat: 41.9, Lon: 12.6},
	{Name: "Netherlands", Code: "NL", Continent: "Europe", Lat: 52.1, Lon: 5.3},
	{Name: "Norway", Code: "NO", Continent: "Europe", Lat: 60.5, Lon: 8.5},
	{Name: "Poland", Code: "PL", Continent: "Europe", Lat: 51.9, Lon: 19.1},
	{Name: "Portugal", Code: "PT", Continent: "Europe", Lat: 39.4, Lon: -8.2},
	{Name: "Romania", Code: "RO", Continent: "Europe", Lat: 45.9, Lon: 25.0},
	{Name: "Russia", Code: "RU", Continent: "Europe", Lat: 61.5, Lon: 105.3},
	{Name: "Spain", Code: "ES", Continent: "Europe", Lat: 40.5, Lon: -3.7},
	{Name: "Sweden", Code: "SE", Continent: "Europe", Lat: 60.1, Lon: 18.6},
	{Name: "Switzerland", Code: "CH", Continent: "Europe", Lat: 46.8, Lon: 8.2},
	{Name: "Ukraine", Code: "UA", Continent: "Europe", Lat: 48.4, Lon: 31.2},
	{Name: "United Kingdom", Code: "GB", Continent: "Europe", Lat: 55.4, Lon: -3.4},

	// Africa
	{Name: "Algeria", Code: "DZ", Continent: "Africa", Lat: 28.0, Lon: 1.7},
	{Name: "Egypt", Code: "EG", Continent: "Africa", Lat: 26.8, Lon: 30.8},
	{Name: "Ethiopia", Code: "ET", Continent: "Africa", Lat: 9.1, Lon: 40.5},
	{Name: "Ghana", Code: "GH", Continent: "Africa", Lat: 7.9, Lon: -1.0},
	{Name: "Kenya", Code: "KE", Continent: "Africa", Lat: -0.0, Lon: 37.9},
	{Name: "Morocco", Code: "MA", Continent: "Africa", Lat: 31.8, Lon: -7.1},
	{Name: "Nigeria", Code: "NG", Continent: "Africa", Lat: 9.1, Lon: 8.7},
	{Name: "Senegal", Code: "SN", Continent: "Africa", Lat: 14.5, Lon: -14.5},
	{Name: "South Africa", Code: "ZA", Continent: "Africa", Lat: -30.6, Lon: 22.9},
	{Name: "Tanzania", Code: "TZ", Continent: "Africa", Lat: -6.4, Lon: 34.9},
	{Name: "Tunisia", Code: "TN", Continent: "Africa", Lat: 33.9, Lon: 9.5},

	// Asia
	{Name: "Bangladesh", Code: "BD", Continent: "Asia", Lat: 23.7, Lon: 90.4},
	{Name: "China", Code: "CN", Continent: "Asia", Lat: 35.9, Lon: 104.2},
	{Name: "India", Code: "IN", Continent: "Asia", Lat: 20.6, Lon: 79.0},
	{Name: "Indonesia", Code: "ID", Continent: "Asia", Lat: -0.8, Lon: 113.9},
	{Name: "Iran", Code: "IR", Continent: "Asia", Lat: 32.4, Lon: 53.7},
	{Name: "Iraq", Code: "IQ", Continent: "Asia", Lat: 33.2, Lon: 43.7},
	{Name: "Israel", Code: "IL", Continent: "Asia", Lat: 31.0, Lon: 34.9},
	{Name: "Japan", Code: "JP", Continent: "Asia", Lat: 36.2, Lon: 138.3},
	{Name: "Kazakhstan", Code: "KZ", Continent: "Asia", Lat: 48.0, Lon: 66.9},
	{Name: "Malaysia", Code: "MY", Continent: "Asia", Lat: 4.2, Lon: 102.0},
	{Name: "Pakistan", Code: "PK", Continent: "Asia", Lat: 30.4, Lon: 69.3},
	{Name: "Philippines", Code: "PH", Continent: "Asia", Lat: 12.9, Lon: 121.8},
	{Name: "Saudi Arabia", Code: "SA", Continent: "Asia", Lat: 23.9, Lon: 45.1},
	{Name: "Singapore", Code: "SG", Continent: "Asia", Lat: 1.4, Lon: 103.8},
	{Name: "South Korea", Code: "KR", Continent: "Asia", Lat: 35.9, Lon: 127.8},
	{Name: "Thailand", Code: "TH", Continent: "Asia", Lat: 15.9, Lon: 101.0},
	{Name: "Turkey", Code: "TR", Continent: "Asia", Lat: 39.0, Lon: 35.2},
	{Name: "United Arab Emirates", Code: "AE", Continent: "Asia", Lat: 23.4, Lon: 53.8},
	{Name: "Vietnam", Code: "VN", Continent: "Asia", Lat: 14.1, Lon: 108.3},

	// Oceania
	{Name: "Australia", Code: "AU", Continent: "Oceania", Lat: -25.3, Lon: 133.8},
	{Name: "Fiji", Code: "FJ", Continent: "Oceania", Lat: -17.7, Lon: 178.1},
	{Name: "New Zealand", Code: "NZ", Continent: "Oceania", Lat: -40.9, Lon: 174.9},
	{Name: "Papua New Guinea", Code: "PG", Continent: "Oceania", Lat: -6.3, Lon: 143.9},
}
