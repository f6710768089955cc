package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdStart     CommandType = "start"
	CmdYesterday CommandType = "yesterday"
	CmdToday     CommandType = "today"
	CmdBlockers  CommandType = "blockers"
	CmdReview    CommandType = "review"
	CmdCommit    CommandType = "commit"
	CmdLog       CommandType = "log"
	CmdDelete    CommandType = "delete"
	CmdTeam      CommandType = "team"
	CmdHelp      CommandType = "help"
)

type Command struct {
	Type CommandType
	Args string
	Raw  string
}

// ParseCommand splits the slash-command text into a subcommand and its
// free-text argument. An empty text maps to help.
func ParseCommand(text string) (*Command, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return &Command{Type: CmdHelp, Raw: text}, nil
	}

	parts := strings.SplitN(trimmed, " ", 2)
	args := ""
	if len(parts) > 1 {
		args = strings.TrimSpace(parts[1])
	}

	cmd := &Command{
		Args: args,
		Raw:  text,
	}

	switch parts[0] {
	case "start":
		cmd.Type = CmdStart
	case "yesterday":
		cmd.Type = CmdYesterday
	case "today":
		cmd.Type = CmdToday
	case "blockers":
		cmd.Type = CmdBlockers
	case "review":
		cmd.Type = CmdReview
	case "commit":
		cmd.Type = CmdCommit
	case "log":
		cmd.Type = CmdLog
	case "delete", "rm":
		cmd.Type = CmdDelete
	case "team":
		cmd.Type = CmdTeam
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Standup commands:*

*Draft:*
• ` + "`/standup start`" + ` - Start a new standup draft (discards any unsaved one)
• ` + "`/standup yesterday <text>`" + ` - Set what you did yesterday
• ` + "`/standup today <text>`" + ` - Set what you'll do today
• ` + "`/standup blockers <text>`" + ` - Set what's blocking you
• ` + "`/standup review`" + ` - Show your current draft
• ` + "`/standup commit`" + ` - Save your standup for today

*History:*
• ` + "`/standup log [YYYY-MM-DD]`" + ` - Show your entries (default: today)
• ` + "`/standup delete <id>`" + ` - Delete one of your entries for today
• ` + "`/standup team [YYYY-MM-DD]`" + ` - Show everyone's entries (default: today)`
}
