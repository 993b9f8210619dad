package card

// Language codes accepted in rendering options.
const (
	LangEN = "en"
	LangJA = "ja"
)

// Labels is the fixed set of label strings swapped wholesale by language
// selection.
type Labels struct {
	Title     string // Header, formatted with the login
	Level     string // Level stat prefix
	Repos     string
	Followers string
	Following string
	Years     string // Account-age stat
	Exp       string // Experience bar label
}

// labels is the static language registry.
var labels = map[string]Labels{
	LangEN: {
		Title:     "STATUS",
		Level:     "LV",
		Repos:     "REPOS",
		Followers: "FOLLOWERS",
		Following: "FOLLOWING",
		Years:     "YEARS",
		Exp:       "EXP",
	},
	LangJA: {
		Title:     "ステータス",
		Level:     "レベル",
		Repos:     "リポジトリ",
		Followers: "フォロワー",
		Following: "フォロー中",
		Years:     "活動年数",
		Exp:       "経験値",
	},
}

// LabelsByLang returns the label set for a language code, falling back to
// English.
func LabelsByLang(lang string) Labels {
	if l, ok := labels[lang]; ok {
		return l
	}
	return labels[LangEN]
}
