package request

// RegisterOrganizerRequest is the request body for creating an organizer account
type RegisterOrganizerRequest struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// CreateEventRequest is the request body for creating the event
type CreateEventRequest struct {
	Title       string `json:"title"`
	Venue       string `json:"venue"`
	StartDate   string `json:"start_date"`
	MaxTeamSize int    `json:"max_team_size"`
}

// AddJudgeRequest is the request body for adding a judge to the panel
type AddJudgeRequest struct {
	ID         int    `json:"id"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Email      string `json:"email"`
}

// RegisterParticipantRequest is the request body for registering a participant
type RegisterParticipantRequest struct {
	ID         int    `json:"id"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Email      string `json:"email"`
}

// AddTeamRequest is the request body for forming a team
type AddTeamRequest struct {
	Name      string `json:"name"`
	MemberIDs []int  `json:"member_ids"`
}

// PublishProblemRequest is the request body for publishing the problem statement
type PublishProblemRequest struct {
	Text string `json:"text"`
}

// SubmitDocumentRequest is the request body for submitting a progress document
type SubmitDocumentRequest struct {
	Content string `json:"content"`
}

// RecordVoteRequest is the request body for recording a final vote
type RecordVoteRequest struct {
	JudgeID int `json:"judge_id"`
	TeamID  int `json:"team_id"`
	Score   int `json:"score"`
}
