// Package background picks the theme keyword used to search for a background
// picture and to bias the generated quote.
package background

import "math/rand"

var themeQueries = []string{
	"sea",
	"sunrise",
	"mountain",
	"sand beach",
	"desert",
	"forest",
	"calm landscape",
}

// RandomThemeQuery returns a random background theme search query.
func RandomThemeQuery() string {
	return themeQueries[rand.Intn(len(themeQueries))]
}
