package catalog

// Static filter vocabularies for the dataset. These mirror the color
// normalization and category labels produced by the upstream analysis.

var AvailableColors = []string{
	"red",
	"blue",
	"green",
	"yellow",
	"orange",
	"purple",
	"pink",
	"brown",
	"black",
	"white",
	"gray",
	"beige",
	"dark red",
	"dark green",
	"dark blue",
}

var AvailableCategories = []string{
	"Jacquard",
	"Lisos e Falsos Lisos",
	"Riscas Horizontais",
	"Xadrez",
	"Riscas Verticais",
	"Pied Poule",
}
