package preprocess

// Sentiment is the canonical tweet-cleaning pipeline: mask handles and
// URLs, drop retweet markers, strip punctuation keeping the marker chars,
// fold case, collapse letter repetitions and drop leftovers
func Sentiment() Pipeline {
	return Pipeline{
		Steps: []Transform{
			MaskMentions(""),
			MaskURLs(""),
			DropRT(),
			StripPunctuation(false),
			Lowercase(),
			CollapseRepeats(),
			DropEmpty(),
		},
	}
}
