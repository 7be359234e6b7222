package game

// aliasTable maps normalized canonical names to the nicknames and alternate
// names players commonly answer with. Keys and values are already folded
// and lowercased.
var aliasTable = map[string][]string{
	"monkey d. luffy":        {"luffy"},
	"roronoa zoro":           {"zoro"},
	"vinsmoke sanji":         {"sanji"},
	"nico robin":             {"robin"},
	"usopp":                  {"usopp", "sogeking"},
	"tony tony chopper":      {"chopper"},
	"trafalgar d. water law": {"law", "trafalgar"},
	"edward newgate":         {"whitebeard"},
	"portgas d. ace":         {"ace"},
	"marshall d. teach":      {"blackbeard", "teach"},
	"gol d. roger":           {"roger"},
	"son goku":               {"goku", "kakarot"},
	"vegeta":                 {"vegeta"},
	"edward elric":           {"ed", "edward", "fullmetal"},
	"alphonse elric":         {"al", "alphonse"},
	"naruto uzumaki":         {"naruto"},
	"sasuke uchiha":          {"sasuke"},
	"kakashi hatake":         {"kakashi"},
	"itachi uchiha":          {"itachi"},
	"light yagami":           {"light", "kira"},
	"l lawliet":              {"l", "ryuzaki"},
	"spike spiegel":          {"spike"},
	"eren yeager":            {"eren"},
	"mikasa ackerman":        {"mikasa"},
	"levi ackerman":          {"levi"},
	"tanjiro kamado":         {"tanjiro"},
	"nezuko kamado":          {"nezuko"},
	"ash ketchum":            {"ash"},
	"satoshi":                {"ash"},
}

// aliasesFor returns the accepted alternate answers for a normalized
// canonical name, or nil when the character has none.
func aliasesFor(canonical string) []string {
	return aliasTable[canonical]
}
