package util

import "strings"

// MakeTextList gives a nice list of things based on their display name.
func MakeTextList(items []string) string {
	if len(items) < 1 {
		return ""
	}

	output := ""

	if len(items) == 1 {
		output += items[0]
	} else if len(items) == 2 {
		output += items[0] + " and " + items[1]
	} else {
		// if its more than two, use an oxford comma
		items[len(items)-1] = "and " + items[len(items)-1]
		output += strings.Join(items, ", ")
	}

	return output
}

// ArticleFor returns "a" or "an" depending on whether word would be read
// aloud starting with a vowel sound. If capital is true the article is
// capitalized ("A"/"An"). Used when building "Missing an identifier"
// style messages (parse/recovery.go's missingWhat) where the missing
// token's human-readable name is substituted in.
func ArticleFor(word string, capital bool) string {
	article := "a"

	if len(word) > 0 {
		switch word[0] {
		case 'A', 'a', 'E', 'e', 'I', 'i', 'O', 'o', 'U', 'u':
			article = "an"
		}
	}

	if capital {
		return strings.ToUpper(article[:1]) + article[1:]
	}
	return article
}
