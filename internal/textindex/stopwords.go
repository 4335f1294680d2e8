package textindex

// stopWords is the English stop-word list dropped during tokenization.
// It is the NLTK English list with apostrophe forms removed, since the
// tokenizer already splits contractions on the apostrophe.
var stopWords = map[string]struct{}{
	"about": {}, "above": {}, "after": {}, "again": {}, "against": {}, "ain": {},
	"all": {}, "am": {}, "an": {}, "and": {}, "any": {}, "are": {}, "aren": {},
	"as": {}, "at": {}, "be": {}, "because": {}, "been": {}, "before": {},
	"being": {}, "below": {}, "between": {}, "both": {}, "but": {}, "by": {},
	"can": {}, "couldn": {}, "did": {}, "didn": {}, "do": {}, "does": {},
	"doesn": {}, "doing": {}, "don": {}, "down": {}, "during": {}, "each": {},
	"few": {}, "for": {}, "from": {}, "further": {}, "had": {}, "hadn": {},
	"has": {}, "hasn": {}, "have": {}, "haven": {}, "having": {}, "he": {},
	"her": {}, "here": {}, "hers": {}, "herself": {}, "him": {}, "himself": {},
	"his": {}, "how": {}, "if": {}, "in": {}, "into": {}, "is": {}, "isn": {},
	"it": {}, "its": {}, "itself": {}, "just": {}, "ll": {}, "ma": {}, "me": {},
	"mightn": {}, "more": {}, "most": {}, "mustn": {}, "my": {}, "myself": {},
	"needn": {}, "no": {}, "nor": {}, "not": {}, "now": {}, "of": {}, "off": {},
	"on": {}, "once": {}, "only": {}, "or": {}, "other": {}, "our": {},
	"ours": {}, "ourselves": {}, "out": {}, "over": {}, "own": {}, "re": {},
	"same": {}, "shan": {}, "she": {}, "should": {}, "shouldn": {}, "so": {},
	"some": {}, "such": {}, "than": {}, "that": {}, "the": {}, "their": {},
	"theirs": {}, "them": {}, "themselves": {}, "then": {}, "there": {},
	"these": {}, "they": {}, "this": {}, "those": {}, "through": {}, "to": {},
	"too": {}, "under": {}, "until": {}, "up": {}, "ve": {}, "very": {},
	"was": {}, "wasn": {}, "we": {}, "were": {}, "weren": {}, "what": {},
	"when": {}, "where": {}, "which": {}, "while": {}, "who": {}, "whom": {},
	"why": {}, "will": {}, "with": {}, "won": {}, "wouldn": {}, "you": {},
	"your": {}, "yours": {}, "yourself": {}, "yourselves": {},
}

// IsStopWord reports whether the lower-cased token is dropped by the tokenizer.
func IsStopWord(token string) bool {
	_, ok := stopWords[token]
	return ok
}
