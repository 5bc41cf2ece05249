package slack

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/diegoclair/slack-reminder-bot/internal/domain"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/entity"
)

type CommandType string

const (
	CmdAdd    CommandType = "add"
	CmdList   CommandType = "list"
	CmdInfo   CommandType = "info"
	CmdPause  CommandType = "pause"
	CmdResume CommandType = "resume"
	CmdDelete CommandType = "delete"
	CmdStats  CommandType = "stats"
	CmdHelp   CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string

	// Rest is the text after the subcommand with its spacing preserved.
	Rest string
}

// AddRequest is the parsed form of `add @user <frequency> [ack] [times=N] <message>`.
type AddRequest struct {
	UserID         string
	Frequency      entity.Frequency
	AckRequired    bool
	MaxOccurrences int
	Message        string
}

var (
	ErrMissingUser    = errors.New("please mention the user to remind")
	ErrMissingMessage = errors.New("please write the reminder message")
	ErrMissingID      = errors.New("please give the reminder id")
)

func ParseCommand(text string) (*Command, error) {
	name, rest := nextToken(text)
	if name == "" {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Rest: strings.TrimSpace(rest),
	}
	if args := strings.Fields(rest); len(args) > 0 {
		cmd.Args = args
	}

	switch strings.ToLower(name) {
	case "add", "new":
		cmd.Type = CmdAdd
	case "list", "ls":
		cmd.Type = CmdList
	case "info", "show":
		cmd.Type = CmdInfo
	case "pause":
		cmd.Type = CmdPause
	case "resume":
		cmd.Type = CmdResume
	case "delete", "rm", "remove":
		cmd.Type = CmdDelete
	case "stats":
		cmd.Type = CmdStats
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", name)
	}

	return cmd, nil
}

// ParseAdd reads the arguments of the add command. Options may come in any
// order after the frequency; the first token that is not an option starts
// the message.
func ParseAdd(rest string) (*AddRequest, error) {
	mention, rest := nextToken(rest)
	if mention == "" {
		return nil, ErrMissingUser
	}
	userID, err := ParseUserMention(mention)
	if err != nil {
		return nil, err
	}

	freq, rest := nextToken(rest)
	frequency, err := entity.ParseFrequency(freq)
	if err != nil {
		return nil, err
	}

	req := &AddRequest{UserID: userID, Frequency: frequency}

	for {
		tok, after := nextToken(rest)
		lower := strings.ToLower(tok)

		switch {
		case lower == "ack":
			req.AckRequired = true
		case strings.HasPrefix(lower, "times="):
			n, err := strconv.Atoi(strings.TrimPrefix(lower, "times="))
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("times must be a positive number, got %q", tok)
			}
			req.MaxOccurrences = n
		default:
			req.Message = strings.TrimSpace(rest)
			if req.Message == "" {
				return nil, ErrMissingMessage
			}
			return req, nil
		}

		rest = after
	}
}

// ParseUserMention extracts the user id from an escaped mention such as
// <@U123> or <@U123|name>.
func ParseUserMention(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "<@") || !strings.HasSuffix(s, ">") {
		return "", fmt.Errorf("%q is not a user mention, use @name", s)
	}

	id := strings.TrimSuffix(strings.TrimPrefix(s, "<@"), ">")
	if i := strings.Index(id, "|"); i >= 0 {
		id = id[:i]
	}
	if id == "" {
		return "", ErrMissingUser
	}
	return id, nil
}

// ParseID reads a reminder id, accepting an optional leading '#'.
func ParseID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, ErrMissingID
	}

	raw := strings.TrimPrefix(args[0], "#")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid reminder id: %s", args[0])
	}
	return id, nil
}

func nextToken(s string) (string, string) {
	s = strings.TrimLeft(s, " \t\n")
	if i := strings.IndexAny(s, " \t\n"); i >= 0 {
		return s[:i], s[i:]
	}
	return s, ""
}

func GetHelpText() string {
	return strings.ReplaceAll(helpText, "/cmd", domain.CommandName)
}

const helpText = `*Available Commands:*

*Create:*
• ` + "`/cmd add @user daily Submit your timesheet`" + ` - Remind a user every day
• ` + "`/cmd add @user weekly ack Review the on-call notes`" + ` - Require a reaction before the deadline
• ` + "`/cmd add @user monthly times=3 Renew the badge`" + ` - Stop after 3 reminders
Frequencies: ` + "`hourly`, `daily`, `weekly`, `monthly`" + `

*Manage:*
• ` + "`/cmd list`" + ` - List reminders in this channel
• ` + "`/cmd info ID`" + ` - Show schedule and acknowledgements
• ` + "`/cmd pause ID`" + ` - Pause a reminder
• ` + "`/cmd resume ID`" + ` - Resume a paused reminder
• ` + "`/cmd delete ID`" + ` - Delete a reminder

*Other:*
• ` + "`/cmd stats`" + ` - Show reminder and acknowledgement counts
• ` + "`/cmd help`" + ` - Show this message

Users who do not react to an acknowledged reminder in time are removed from the channel.`
