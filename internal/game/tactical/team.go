package tactical

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/tactics/internal/game/cards"
	"github.com/cory-johannsen/tactics/internal/game/character"
)

// TeamResult aggregates the conversion of several characters.
//
// Commander is set only when commanderID matched exactly one draft.
type TeamResult struct {
	TeamID    string             `json:"teamId" yaml:"team_id"`
	Units     []Unit             `json:"units" yaml:"units"`
	Cards     []cards.CombatCard `json:"cards" yaml:"cards"`
	Commander *Unit              `json:"commander,omitempty" yaml:"commander,omitempty"`
	Warnings  []string           `json:"warnings" yaml:"warnings"`
}

// ConvertTeam converts every draft with default options, marking the draft
// whose ID equals commanderID as commander. Warnings are prefixed with the
// character's name. An unmatched commanderID is not an error.
//
// Precondition: drafts must not contain nil entries.
// Postcondition: len(result.Units) == len(drafts), in draft order.
func (c *Converter) ConvertTeam(drafts []*character.Draft, commanderID, teamID string) TeamResult {
	if teamID == "" {
		teamID = DefaultTeamID
	}
	res := TeamResult{
		TeamID:   teamID,
		Units:    make([]Unit, 0, len(drafts)),
		Cards:    []cards.CombatCard{},
		Warnings: []string{},
	}

	commanderIdx := -1
	matches := 0
	for _, d := range drafts {
		opts := DefaultOptions()
		opts.TeamID = teamID
		opts.AsCommander = commanderID != "" && d.ID == commanderID

		r := c.Convert(d, opts)
		if opts.AsCommander {
			matches++
			commanderIdx = len(res.Units)
		}
		res.Units = append(res.Units, r.Unit)
		res.Cards = append(res.Cards, r.Cards...)
		for _, w := range r.Warnings {
			res.Warnings = append(res.Warnings, d.Name+": "+w)
		}
	}

	if matches == 1 {
		res.Commander = &res.Units[commanderIdx]
	} else if commanderID != "" {
		c.logger.Info("commander not resolved",
			zap.String("team", teamID),
			zap.String("commander_id", commanderID),
			zap.Int("matches", matches),
		)
	}
	return res
}
