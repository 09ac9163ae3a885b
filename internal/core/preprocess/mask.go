package preprocess

import "regexp"

// Default replacement tokens for the masking transforms
const (
	UsernameToken = "<USERNAME>"
	URLToken      = "<URL>"
)

var (
	mentionRE = regexp.MustCompile(`@\S+`)
	urlRE     = regexp.MustCompile(`https?://\S*`)
	rtRE      = regexp.MustCompile(`^(?:rt|RT)\b`)
)

// MaskMentions replaces @handle substrings with token
// An empty token means UsernameToken
func MaskMentions(token string) Transform {
	if token == "" {
		token = UsernameToken
	}
	return regexSub{re: mentionRE, repl: token}
}

// MaskURLs replaces http(s) URL substrings with token
// An empty token means URLToken
func MaskURLs(token string) Transform {
	if token == "" {
		token = URLToken
	}
	return regexSub{re: urlRE, repl: token}
}

// DropRT drops retweet markers: words opening with rt or RT as a whole word
// Case is exact, "Rt" survives
func DropRT() Transform { return dropRT{} }

type dropRT struct{}

func (dropRT) Apply(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if !rtRE.MatchString(w) {
			out = append(out, w)
		}
	}
	return out
}

// regexSub substitutes every match of re inside each word
type regexSub struct {
	re   *regexp.Regexp
	repl string
}

func (t regexSub) Apply(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = t.re.ReplaceAllString(w, t.repl)
	}
	return out
}
