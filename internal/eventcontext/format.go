package eventcontext

import (
	"fmt"
	"strings"
)

// FormatForPrompt renders the context as plain-text guidance lines for the
// description model. An empty context renders to an empty string so callers
// can append the result unconditionally.
func FormatForPrompt(ec *EventContext) string {
	if ec == nil {
		return ""
	}
	var b strings.Builder

	if ec.Entity != nil {
		line := fmt.Sprintf("Recognized %s: %s (seen %d times before)",
			ec.Entity.EntityType, ec.Entity.Name, ec.Entity.OccurrenceCount)
		if ec.Entity.IsVIP {
			line += " [VIP]"
		}
		if ec.Entity.IsBlocked {
			line += " [BLOCKED]"
		}
		b.WriteString(line + "\n")
	}

	if ec.CameraName != "" || ec.LocationHint != "" {
		line := "Camera"
		if ec.CameraName != "" {
			line += " " + ec.CameraName
		}
		if ec.LocationHint != "" {
			line += " covers " + ec.LocationHint
		}
		b.WriteString(line + "\n")
	}
	if len(ec.TypicalActivity) > 0 {
		b.WriteString("Typical activity here: " + strings.Join(ec.TypicalActivity, ", ") + "\n")
	}

	if ec.AccuracyRate != nil {
		b.WriteString(fmt.Sprintf("Past description accuracy for this camera: %.0f%% (%d ratings)\n",
			*ec.AccuracyRate*100, ec.TotalFeedback))
	}
	if len(ec.CommonCorrections) > 0 {
		b.WriteString("Users often corrected descriptions mentioning: " + strings.Join(ec.CommonCorrections, ", ") + "\n")
	}
	if len(ec.RecentNegativeReasons) > 0 {
		b.WriteString("Recent correction notes:\n")
		for _, reason := range ec.RecentNegativeReasons {
			b.WriteString("- " + reason + "\n")
		}
	}

	if ec.IsUnusualTime {
		b.WriteString("Note: activity at this hour is unusual for this camera\n")
	} else if ec.ActivityLevel != "" {
		b.WriteString(fmt.Sprintf("Activity at this hour is typically %s\n", ec.ActivityLevel))
	}

	return b.String()
}
