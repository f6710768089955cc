package slack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantType CommandType
		wantArgs string
		wantErr  bool
	}{
		{name: "empty text is help", text: "", wantType: CmdHelp},
		{name: "whitespace only is help", text: "   ", wantType: CmdHelp},
		{name: "start", text: "start", wantType: CmdStart},
		{name: "yesterday keeps free text intact", text: "yesterday fixed the build, twice", wantType: CmdYesterday, wantArgs: "fixed the build, twice"},
		{name: "today", text: "today write docs", wantType: CmdToday, wantArgs: "write docs"},
		{name: "blockers", text: "blockers waiting on infra", wantType: CmdBlockers, wantArgs: "waiting on infra"},
		{name: "review", text: "review", wantType: CmdReview},
		{name: "commit", text: "commit", wantType: CmdCommit},
		{name: "log without date", text: "log", wantType: CmdLog},
		{name: "log with date", text: "log 2024-01-05", wantType: CmdLog, wantArgs: "2024-01-05"},
		{name: "delete", text: "delete 12", wantType: CmdDelete, wantArgs: "12"},
		{name: "rm alias", text: "rm 12", wantType: CmdDelete, wantArgs: "12"},
		{name: "team", text: "team 2024-01-05", wantType: CmdTeam, wantArgs: "2024-01-05"},
		{name: "help", text: "help", wantType: CmdHelp},
		{name: "unknown command", text: "bogus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.text)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantType, cmd.Type)
			assert.Equal(t, tt.wantArgs, cmd.Args)
		})
	}
}
