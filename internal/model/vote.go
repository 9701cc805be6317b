package model

// Registration associates a participant with the event. Created only
// inside the registration window; immutable once created.
type Registration struct {
	Participant Participant
}

// FinalVote is the score a judge assigns to a team once voting opens.
// Unique per (judge, team) pair; immutable.
type FinalVote struct {
	Judge Participant
	Team  TeamID
	Score int
}

// NewFinalVote validates and constructs a final vote. Scores live in
// the closed interval [0, 10].
func NewFinalVote(judge Participant, team TeamID, score int) (FinalVote, error) {
	if score < 0 || score > 10 {
		return FinalVote{}, ErrScoreOutOfRange
	}
	if team <= 0 {
		return FinalVote{}, ErrInvalidID
	}
	return FinalVote{Judge: judge, Team: team, Score: score}, nil
}
