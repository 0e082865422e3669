package eventcontext

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/framesight/framesight/internal/repositories/feedback"
)

func unhelpful(correction string) feedback.Entry {
	return feedback.Entry{Rating: feedback.RatingNotHelpful, Correction: correction}
}

func TestExtractCommonPatterns_SingleOccurrenceCanBeAPattern(t *testing.T) {
	entries := []feedback.Entry{
		unhelpful("delivery truck"),
		unhelpful("raccoon"),
		unhelpful("squirrel"),
	}

	patterns := ExtractCommonPatterns(entries, 3)

	assert.Equal(t, []string{"delivery", "raccoon", "squirrel"}, patterns)
}

func TestExtractCommonPatterns_OrdersByFrequencyThenAlphabetically(t *testing.T) {
	entries := []feedback.Entry{
		unhelpful("cat on the porch"),
		unhelpful("cat by the door"),
		unhelpful("cat again near the mailbox"),
		unhelpful("mailbox was blocked"),
		unhelpful("door left open"),
		unhelpful("door closed"),
	}

	patterns := ExtractCommonPatterns(entries, 3)

	assert.Equal(t, []string{"cat", "door", "mailbox"}, patterns)
}

func TestExtractCommonPatterns_Limit(t *testing.T) {
	entries := []feedback.Entry{
		unhelpful("cat dog bird fish"),
		unhelpful("cat dog bird fish"),
	}

	patterns := ExtractCommonPatterns(entries, 2)

	assert.Len(t, patterns, 2)
}

func TestExtractCommonPatterns_IgnoresHelpfulAndStopWords(t *testing.T) {
	entries := []feedback.Entry{
		{Rating: feedback.RatingHelpful, Correction: "raccoon raccoon"},
		unhelpful("the and not was this"),
		unhelpful("the and not was this"),
	}

	patterns := ExtractCommonPatterns(entries, 3)

	assert.Empty(t, patterns)
}

func TestExtractCommonPatterns_RepeatsWithinOneCorrectionCount(t *testing.T) {
	entries := []feedback.Entry{
		unhelpful("raccoon raccoon"),
		unhelpful("opossum"),
	}

	patterns := ExtractCommonPatterns(entries, 1)

	assert.Equal(t, []string{"raccoon"}, patterns, "every occurrence counts toward frequency")
}

func TestExtractCommonPatterns_StripsPunctuationAndCase(t *testing.T) {
	entries := []feedback.Entry{
		unhelpful("Raccoon!"),
		unhelpful("raccoon, again."),
	}

	patterns := ExtractCommonPatterns(entries, 3)

	assert.Equal(t, []string{"raccoon"}, patterns)
}
