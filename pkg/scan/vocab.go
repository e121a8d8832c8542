package scan

// DefaultStopWords are packaging boilerplate tokens ignored when guessing a
// product name. The list is data, not algorithm: extend it via
// WithStopWords without touching the extraction logic.
var DefaultStopWords = []string{
	"INGREDIENTS", "NUTRITION", "SERVING", "STORAGE", "MANUFACTURED",
	"EXP", "EXPIRY", "BB", "BBE", "BEST", "BEFORE", "USE", "BY",
	"OPEN", "KEEP", "REFRIGERATED", "STORE", "NET", "ORGANIC",
	"ML", "L", "G", "KG",
	"DATE", "BATCH", "LOT",
	"HIGH", "VITAMIN", "C", "NO", "PRESERVATIVES", "NOURISH", "JUST", "STYLE",
}

// DefaultFoodWords are common grocery nouns that make a candidate phrase
// more likely to be the product name. Matching is substring-based so stems
// like CHOC also cover CHOCOLATE.
var DefaultFoodWords = []string{
	"JUICE", "MILK", "YOGURT", "YOGHURT", "BREAD", "SAUCE", "PASTA",
	"BEANS", "SOUP", "TEA", "COFFEE", "CEREAL", "OATS", "CHIPS",
	"CRACKERS", "BUTTER", "CHEESE", "WATER", "SODA", "COLA",
	"APPLE", "ORANGE", "MANGO", "BANANA", "TOMATO",
	"CHICKEN", "BEEF", "PORK", "TOFU", "NOODLE", "RICE", "OIL",
	"TUNA", "SALMON", "SARDINE", "CHOC", "CHOCOLATE",
	"BISCUIT", "COOKIE", "CANDY", "HONEY", "JAM",
	"PEANUT", "ALMOND", "CASHEW", "WALNUT",
}
