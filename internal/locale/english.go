package locale

import "golang.org/x/text/language"

var englishSpellings = map[Token]string{
	Today:     "Today",
	Tomorrow:  "Tomorrow",
	Now:       "Now",
	ThisWeek:  "ThisWeek",
	NextWeek:  "NextWeek",
	ThisMonth: "ThisMonth",

	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",

	January:   "January",
	February:  "February",
	March:     "March",
	April:     "April",
	May:       "May",
	June:      "June",
	July:      "July",
	August:    "August",
	September: "September",
	October:   "October",
	November:  "November",
	December:  "December",
}

var english = MustTable(Definition{
	Tag:       language.English,
	Name:      "English",
	Selectors: []string{"Engelska"},
	Spellings: englishSpellings,
	Aliases: map[string]Token{
		"this week":  ThisWeek,
		"next week":  NextWeek,
		"this month": ThisMonth,
	},
})

// English returns the English table. It is always compiled in.
func English() *Table { return english }
