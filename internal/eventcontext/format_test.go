package eventcontext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/framesight/framesight/internal/repositories/entity"
	"github.com/framesight/framesight/internal/repositories/timepattern"
)

func TestFormatForPrompt_EmptyContext(t *testing.T) {
	assert.Equal(t, "", FormatForPrompt(nil))
	assert.Equal(t, "", FormatForPrompt(&EventContext{}))
}

func TestFormatForPrompt_EntityLine(t *testing.T) {
	ec := &EventContext{
		Entity: &entity.Match{EntityType: "person", Name: "John", OccurrenceCount: 12},
	}

	out := FormatForPrompt(ec)

	assert.Contains(t, out, "Recognized person: John (seen 12 times before)")
	assert.NotContains(t, out, "[VIP]")
}

func TestFormatForPrompt_VIPAndBlockedFlags(t *testing.T) {
	ec := &EventContext{
		Entity: &entity.Match{EntityType: "person", Name: "John", IsVIP: true, IsBlocked: true},
	}

	out := FormatForPrompt(ec)

	assert.Contains(t, out, "[VIP]")
	assert.Contains(t, out, "[BLOCKED]")
}

func TestFormatForPrompt_CameraAndActivity(t *testing.T) {
	ec := &EventContext{
		CameraName:      "Front Door",
		LocationHint:    "front porch",
		TypicalActivity: []string{"person", "package"},
	}

	out := FormatForPrompt(ec)

	assert.Contains(t, out, "Camera Front Door covers front porch")
	assert.Contains(t, out, "Typical activity here: person, package")
}

func TestFormatForPrompt_FeedbackSummary(t *testing.T) {
	rate := 0.75
	ec := &EventContext{
		AccuracyRate:          &rate,
		TotalFeedback:         8,
		CommonCorrections:     []string{"cat", "delivery"},
		RecentNegativeReasons: []string{"it was a cat"},
	}

	out := FormatForPrompt(ec)

	assert.Contains(t, out, "Past description accuracy for this camera: 75% (8 ratings)")
	assert.Contains(t, out, "Users often corrected descriptions mentioning: cat, delivery")
	assert.Contains(t, out, "- it was a cat")
}

func TestFormatForPrompt_UnusualTimeWinsOverActivityLevel(t *testing.T) {
	ec := &EventContext{ActivityLevel: timepattern.ActivityLow, IsUnusualTime: true}

	out := FormatForPrompt(ec)

	assert.Contains(t, out, "activity at this hour is unusual")
	assert.NotContains(t, out, "typically low")
}

func TestFormatForPrompt_ActivityLevelLine(t *testing.T) {
	ec := &EventContext{ActivityLevel: timepattern.ActivityHigh}

	out := FormatForPrompt(ec)

	assert.Contains(t, out, "Activity at this hour is typically high")
}

func TestFormatForPrompt_LineStructure(t *testing.T) {
	rate := 1.0
	ec := &EventContext{
		CameraName:    "Garage",
		AccuracyRate:  &rate,
		TotalFeedback: 3,
	}

	out := FormatForPrompt(ec)

	assert.True(t, strings.HasSuffix(out, "\n"), "every rendered block ends with a newline")
	assert.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 2)
}
