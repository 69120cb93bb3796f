// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

package demographics

import "github.com/tomtom215/cinesynth/internal/probability"

// Built-in lookup data. These values are copied into every Tables value and
// never mutated.

var countries = []string{
	"Saudi Arabia", "Australia", "Armenia", "Brazil", "Canada", "China",
	"Czech Republic", "Denmark", "Netherlands", "United Kingdom", "Estonia",
	"Philippines", "France", "Germany", "Greece", "Israel", "Hungary",
	"India", "Indonesia", "Italy", "Japan", "South Korea", "Mexico",
	"Norway", "Iran", "Poland", "Portugal", "Romania", "Russia", "Serbia",
	"Spain", "Sweden", "Thailand", "Turkey", "Ukraine", "USA", "Pakistan",
}

var citiesByCountry = map[string][]string{
	"Saudi Arabia":   {"Riyadh"},
	"Australia":      {"Sydney", "Melbourne"},
	"Armenia":        {"Yerevan"},
	"Brazil":         {"Sao Paulo", "Rio de Janeiro"},
	"Canada":         {"Toronto", "Montreal"},
	"China":          {"Beijing", "Shanghai"},
	"Czech Republic": {"Prague"},
	"Denmark":        {"Copenhagen"},
	"Netherlands":    {"Amsterdam", "Rotterdam"},
	"United Kingdom": {"London", "Manchester", "Birmingham"},
	"Estonia":        {"Tallinn"},
	"Philippines":    {"Manila"},
	"France":         {"Paris", "Lyon", "Marseille"},
	"Germany":        {"Berlin", "Munich", "Frankfurt"},
	"Greece":         {"Athens"},
	"Israel":         {"Tel Aviv"},
	"Hungary":        {"Budapest"},
	"India":          {"Mumbai", "Delhi"},
	"Indonesia":      {"Jakarta"},
	"Italy":          {"Rome", "Milan"},
	"Japan":          {"Tokyo", "Osaka", "Kyoto"},
	"South Korea":    {"Seoul", "Busan"},
	"Mexico":         {"Mexico City"},
	"Norway":         {"Oslo"},
	"Iran":           {"Tehran"},
	"Poland":         {"Warsaw", "Krakow"},
	"Portugal":       {"Lisbon", "Porto"},
	"Romania":        {"Bucharest"},
	"Russia":         {"Moscow", "Saint Petersburg"},
	"Serbia":         {"Belgrade"},
	"Spain":          {"Madrid", "Barcelona"},
	"Sweden":         {"Stockholm"},
	"Thailand":       {"Bangkok"},
	"Turkey":         {"Istanbul", "Ankara", "Izmir"},
	"Ukraine":        {"Kyiv", "Lviv"},
	"USA":            {"New York", "Los Angeles", "Chicago"},
	"Pakistan":       {"Islamabad"},
}

var languagesByCountry = map[string][]string{
	"Saudi Arabia":   {"Arabic"},
	"Australia":      {"English"},
	"Armenia":        {"Armenian"},
	"Brazil":         {"Portuguese"},
	"Canada":         {"English", "French"},
	"China":          {"Chinese"},
	"Czech Republic": {"Czech"},
	"Denmark":        {"Danish"},
	"Netherlands":    {"Dutch"},
	"United Kingdom": {"English"},
	"Estonia":        {"Estonian"},
	"Philippines":    {"Filipino", "English"},
	"France":         {"French"},
	"Germany":        {"German"},
	"Greece":         {"Greek"},
	"Israel":         {"Hebrew"},
	"Hungary":        {"Hungarian"},
	"India":          {"Hindi", "English"},
	"Indonesia":      {"Indonesian"},
	"Italy":          {"Italian"},
	"Japan":          {"Japanese"},
	"South Korea":    {"Korean"},
	"Mexico":         {"Spanish"},
	"Norway":         {"Norwegian"},
	"Iran":           {"Persian"},
	"Poland":         {"Polish"},
	"Portugal":       {"Portuguese"},
	"Romania":        {"Romanian"},
	"Russia":         {"Russian"},
	"Serbia":         {"Serbian"},
	"Spain":          {"Spanish"},
	"Sweden":         {"Swedish"},
	"Thailand":       {"Thai"},
	"Turkey":         {"Turkish"},
	"Ukraine":        {"Ukrainian"},
	"USA":            {"English"},
	"Pakistan":       {"Urdu", "English"},
}

// Per-language probability that a user speaks it.
var languageProbs = []probability.Entry{
	{Label: "Arabic", Weight: 0.0315},
	{Label: "English", Weight: 0.5},
	{Label: "Armenian", Weight: 0.0079},
	{Label: "Portuguese", Weight: 0.0372},
	{Label: "French", Weight: 0.0472},
	{Label: "Chinese", Weight: 0.0630},
	{Label: "Czech", Weight: 0.0157},
	{Label: "Danish", Weight: 0.0157},
	{Label: "Dutch", Weight: 0.0236},
	{Label: "Estonian", Weight: 0.0079},
	{Label: "Filipino", Weight: 0.0157},
	{Label: "German", Weight: 0.0472},
	{Label: "Greek", Weight: 0.0157},
	{Label: "Hebrew", Weight: 0.0157},
	{Label: "Hungarian", Weight: 0.0157},
	{Label: "Hindi", Weight: 0.0430},
	{Label: "Indonesian", Weight: 0.0157},
	{Label: "Italian", Weight: 0.0315},
	{Label: "Japanese", Weight: 0.0394},
	{Label: "Korean", Weight: 0.0394},
	{Label: "Spanish", Weight: 0.0580},
	{Label: "Norwegian", Weight: 0.0157},
	{Label: "Persian", Weight: 0.0136},
	{Label: "Polish", Weight: 0.0136},
	{Label: "Romanian", Weight: 0.0157},
	{Label: "Russian", Weight: 0.0430},
	{Label: "Serbian", Weight: 0.0157},
	{Label: "Swedish", Weight: 0.0157},
	{Label: "Thai", Weight: 0.0157},
	{Label: "Turkish", Weight: 0.0236},
	{Label: "Ukrainian", Weight: 0.0157},
	{Label: "Urdu", Weight: 0.0157},
}

// Per-genre probability that a user likes it.
var genreLikeProbs = []probability.Entry{
	{Label: "Action", Weight: 0.07},
	{Label: "Adventure", Weight: 0.07},
	{Label: "Animation", Weight: 0.05},
	{Label: "Anime", Weight: 0.04},
	{Label: "Biography", Weight: 0.04},
	{Label: "Comedy", Weight: 0.08},
	{Label: "Crime", Weight: 0.06},
	{Label: "Documentary", Weight: 0.05},
	{Label: "Drama", Weight: 0.10},
	{Label: "Family", Weight: 0.04},
	{Label: "Fantasy", Weight: 0.05},
	{Label: "Film-Noir", Weight: 0.02},
	{Label: "History", Weight: 0.03},
	{Label: "Horror", Weight: 0.07},
	{Label: "Music", Weight: 0.03},
	{Label: "Mystery", Weight: 0.06},
	{Label: "Romance", Weight: 0.07},
	{Label: "Sci-Fi", Weight: 0.06},
	{Label: "Short", Weight: 0.02},
	{Label: "Silent", Weight: 0.01},
	{Label: "Sport", Weight: 0.03},
	{Label: "Thriller", Weight: 0.08},
	{Label: "War", Weight: 0.03},
	{Label: "Western", Weight: 0.03},
}

// Per-genre probability that a user dislikes it.
var genreDislikeProbs = []probability.Entry{
	{Label: "Action", Weight: 0.05},
	{Label: "Adventure", Weight: 0.05},
	{Label: "Animation", Weight: 0.04},
	{Label: "Anime", Weight: 0.03},
	{Label: "Biography", Weight: 0.03},
	{Label: "Comedy", Weight: 0.06},
	{Label: "Crime", Weight: 0.05},
	{Label: "Documentary", Weight: 0.04},
	{Label: "Drama", Weight: 0.08},
	{Label: "Family", Weight: 0.03},
	{Label: "Fantasy", Weight: 0.03},
	{Label: "Film-Noir", Weight: 0.02},
	{Label: "History", Weight: 0.03},
	{Label: "Horror", Weight: 0.06},
	{Label: "Music", Weight: 0.03},
	{Label: "Mystery", Weight: 0.05},
	{Label: "Romance", Weight: 0.06},
	{Label: "Sci-Fi", Weight: 0.05},
	{Label: "Short", Weight: 0.02},
	{Label: "Silent", Weight: 0.02},
	{Label: "Sport", Weight: 0.03},
	{Label: "Thriller", Weight: 0.06},
	{Label: "War", Weight: 0.04},
	{Label: "Western", Weight: 0.04},
}

var genderProbs = []probability.Entry{
	{Label: "Male", Weight: 0.45},
	{Label: "Female", Weight: 0.45},
	{Label: "Not mentioned", Weight: 0.1},
}

var ageRangeProbs = []probability.Entry{
	{Label: AgeUnder18, Weight: 0.1},
	{Label: Age18To24, Weight: 0.2},
	{Label: Age25To34, Weight: 0.3},
	{Label: "35-44", Weight: 0.2},
	{Label: "45-54", Weight: 0.1},
	{Label: "55-64", Weight: 0.05},
	{Label: Age65Plus, Weight: 0.05},
}

var lifestyleProbs = []probability.Entry{
	{Label: "Active", Weight: 0.3},
	{Label: "Sedentary", Weight: 0.2},
	{Label: "Balanced", Weight: 0.3},
	{Label: LifestyleBusy, Weight: 0.1},
	{Label: "Relaxed", Weight: 0.1},
}

var workingStatusProbs = []probability.Entry{
	{Label: "Employed", Weight: 0.5},
	{Label: "Unemployed", Weight: 0.1},
	{Label: StatusStudent, Weight: 0.3},
	{Label: StatusRetired, Weight: 0.1},
}

var maritalStatusProbs = []probability.Entry{
	{Label: StatusSingle, Weight: 0.4},
	{Label: "Married", Weight: 0.4},
	{Label: "Divorced", Weight: 0.1},
	{Label: "Widowed", Weight: 0.1},
}

var ethnicityProbs = []probability.Entry{
	{Label: "Hispanic", Weight: 0.18},
	{Label: "Non-Hispanic White", Weight: 0.6},
	{Label: "Black", Weight: 0.12},
	{Label: "Asian", Weight: 0.08},
	{Label: "Mixed", Weight: 0.02},
	{Label: "Other", Weight: 0.01},
}
