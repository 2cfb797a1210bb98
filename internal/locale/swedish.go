//go:build !noswedish

package locale

import "golang.org/x/text/language"

var swedish = MustTable(Definition{
	Tag:       language.Swedish,
	Name:      "Svenska",
	Selectors: []string{"Swedish"},
	Spellings: map[Token]string{
		Today:     "Idag",
		Tomorrow:  "Imorgon",
		Now:       "Nu",
		ThisWeek:  "DennaVecka",
		NextWeek:  "NästaVecka",
		ThisMonth: "DennaMånad",

		Monday:    "Måndag",
		Tuesday:   "Tisdag",
		Wednesday: "Onsdag",
		Thursday:  "Torsdag",
		Friday:    "Fredag",
		Saturday:  "Lördag",
		Sunday:    "Söndag",

		January:   "Januari",
		February:  "Februari",
		March:     "Mars",
		April:     "April",
		May:       "Maj",
		June:      "Juni",
		July:      "Juli",
		August:    "Augusti",
		September: "September",
		October:   "Oktober",
		November:  "November",
		December:  "December",
	},
	Aliases: map[string]Token{
		"denna vecka": ThisWeek,
		"nästa vecka": NextWeek,
		"denna månad": ThisMonth,
	},
})

func init() {
	builtin = append(builtin, swedish)
}

// Swedish returns the Swedish table. It is compiled in unless the
// noswedish build tag is set.
func Swedish() *Table { return swedish }
