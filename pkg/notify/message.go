package notify

import (
	"fmt"

	goslack "github.com/slack-go/slack"

	"github.com/reelworks/reelpipe/pkg/models"
)

const maxBlockTextLength = 2900

// BuildTaskErroredMessage creates Block Kit blocks for a stage failure
// notification. Reason must already be redacted by the driver.
func BuildTaskErroredMessage(in TaskErroredInput) []goslack.Block {
	text := fmt.Sprintf(":x: *Pipeline error* on *%s*\nTask `%s` (%s) parked in `%s`",
		in.ChannelName, in.TaskID, in.Title, string(in.Status))
	if in.Reason != "" {
		text += "\n```" + truncate(in.Reason, 500) + "```"
	}

	return []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, truncate(text, maxBlockTextLength), false, false),
			nil, nil,
		),
	}
}

// BuildReviewReadyMessage creates Block Kit blocks announcing that a task
// reached a human review gate.
func BuildReviewReadyMessage(in ReviewReadyInput) []goslack.Block {
	text := fmt.Sprintf(":eyes: *Review needed* on *%s*\nTask `%s` (%s) is waiting at `%s`",
		in.ChannelName, in.TaskID, in.Title, string(in.Gate))

	return []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, truncate(text, maxBlockTextLength), false, false),
			nil, nil,
		),
	}
}

// IsErrorStatus reports whether a status warrants an ops notification.
func IsErrorStatus(s models.Status) bool { return s.IsError() }

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
