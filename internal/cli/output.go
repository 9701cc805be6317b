package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Organizer:
		o.printOrganizer(v)
	case AuthResult:
		o.printAuthResult(v)
	case EventStatus:
		o.printEventStatus(v)
	case Participant:
		o.printParticipant(v)
	case []Participant:
		o.printParticipants(v)
	case Team:
		o.printTeam(v)
	case []Team:
		o.printTeams(v)
	case DocumentReview:
		o.printDocumentReview(v)
	case []TeamScore:
		o.printRanking(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Organizer response type (matches API)
type Organizer struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

// AuthResult combines organizer and token
type AuthResult struct {
	Organizer    Organizer `json:"organizer"`
	SessionToken string    `json:"session_token"`
}

// EventStatus response type
type EventStatus struct {
	Title              string `json:"title"`
	Venue              string `json:"venue"`
	Phase              string `json:"phase"`
	StartDate          string `json:"start_date"`
	EndDate            string `json:"end_date"`
	RegistrationOpens  string `json:"registration_opens"`
	RegistrationCloses string `json:"registration_closes"`
	RegistrationsOpen  bool   `json:"registrations_open"`
	SubmissionsEnabled bool   `json:"submissions_enabled"`
	ProblemPublished   bool   `json:"problem_published"`
	JudgeCount         int    `json:"judge_count"`
	PanelSize          int    `json:"panel_size"`
	TeamCount          int    `json:"team_count"`
	MaxTeams           int    `json:"max_teams"`
	ParticipantCount   int    `json:"participant_count"`
	MaxParticipants    int    `json:"max_participants"`
}

// Participant response type
type Participant struct {
	ID         int    `json:"id"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Email      string `json:"email"`
}

// Team response type
type Team struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Members   []Participant `json:"members"`
	Documents int           `json:"documents"`
}

// JudgeScore response type
type JudgeScore struct {
	JudgeID int `json:"judge_id"`
	Score   int `json:"score"`
}

// DocumentReview response type
type DocumentReview struct {
	TeamID int          `json:"team_id"`
	Scores []JudgeScore `json:"scores"`
	Grade  int          `json:"grade"`
}

// TeamScore response type
type TeamScore struct {
	Rank        int     `json:"rank"`
	TeamID      int     `json:"team_id"`
	Name        string  `json:"name"`
	VoteAverage float64 `json:"vote_average"`
	Progress    float64 `json:"progress"`
	Composite   float64 `json:"composite"`
	Submitted   int     `json:"submitted"`
	Slots       int     `json:"slots"`
}

// SimulateResult response type
type SimulateResult struct {
	Filled int `json:"filled"`
}

// ReportResult response type
type ReportResult struct {
	Report string `json:"report"`
}

// ProgressResult response type
type ProgressResult struct {
	Summary string `json:"summary"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printOrganizer(org Organizer) {
	fmt.Printf("Organizer: %s %s (%d)\n", org.Name, org.Surname, org.ID)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printOrganizer(a.Organizer)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printEventStatus(s EventStatus) {
	fmt.Printf("Event: %s @ %s\n", s.Title, s.Venue)
	fmt.Printf("Phase: %s\n", s.Phase)
	fmt.Printf("Runs: %s to %s\n", s.StartDate, s.EndDate)
	fmt.Printf("Registration window: %s to %s\n", s.RegistrationOpens, s.RegistrationCloses)
	fmt.Printf("Registrations open: %t\n", s.RegistrationsOpen)
	fmt.Printf("Submissions enabled: %t\n", s.SubmissionsEnabled)
	fmt.Printf("Problem published: %t\n", s.ProblemPublished)
	fmt.Printf("Judges: %d/%d\n", s.JudgeCount, s.PanelSize)
	fmt.Printf("Teams: %d/%d\n", s.TeamCount, s.MaxTeams)
	fmt.Printf("Participants: %d/%d\n", s.ParticipantCount, s.MaxParticipants)
}

func (o *Output) printParticipant(p Participant) {
	fmt.Printf("%d: %s %s <%s>\n", p.ID, p.GivenName, p.FamilyName, p.Email)
}

func (o *Output) printParticipants(ps []Participant) {
	fmt.Printf("Participants (%d):\n", len(ps))
	for _, p := range ps {
		fmt.Print("  ")
		o.printParticipant(p)
	}
}

func (o *Output) printTeam(t Team) {
	names := make([]string, 0, len(t.Members))
	for _, m := range t.Members {
		names = append(names, m.GivenName+" "+m.FamilyName)
	}
	fmt.Printf("Team %d: %s\n", t.ID, t.Name)
	fmt.Printf("Members: %s\n", strings.Join(names, ", "))
	fmt.Printf("Documents: %d\n", t.Documents)
}

func (o *Output) printTeams(ts []Team) {
	fmt.Printf("Teams (%d):\n", len(ts))
	for _, t := range ts {
		fmt.Printf("  %d: %s (%d members, %d documents)\n", t.ID, t.Name, len(t.Members), t.Documents)
	}
}

func (o *Output) printDocumentReview(r DocumentReview) {
	fmt.Printf("Document accepted for team %d\n", r.TeamID)
	for _, s := range r.Scores {
		fmt.Printf("  judge %d: %d\n", s.JudgeID, s.Score)
	}
	fmt.Printf("Grade: %d\n", r.Grade)
}

func (o *Output) printRanking(scores []TeamScore) {
	for _, s := range scores {
		fmt.Printf("%2d. %-20s votes %5.2f  progress %5.2f  total %5.2f\n",
			s.Rank, s.Name, s.VoteAverage, s.Progress, s.Composite)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
