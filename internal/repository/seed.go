package repository

import "activities-service/internal/model"

// SeedActivities возвращает стартовый набор кружков школы Mergington.
// Реестр заполняется им один раз при старте процесса.
func SeedActivities() map[string]model.Activity {
	return map[string]model.Activity{
		"Basketball": {
			Description:     "Team sport focusing on basketball skills and competitive play",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"james@mergington.edu"},
		},
		"Tennis Club": {
			Description:     "Individual and doubles tennis training",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:00 PM",
			MaxParticipants: 10,
			Participants:    []string{"alex@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Theater production, acting, and performance arts",
			Schedule:        "Wednesdays and Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"isabella@mergington.edu", "lucas@mergington.edu"},
		},
		"Art Studio": {
			Description:     "Painting, drawing, and visual art creation",
			Schedule:        "Mondays, Wednesdays, Fridays, 3:30 PM - 4:30 PM",
			MaxParticipants: 18,
			Participants:    []string{"grace@mergington.edu"},
		},
		"Debate Team": {
			Description:     "Competitive debate and public speaking",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"marcus@mergington.edu", "nina@mergington.edu"},
		},
		"Science Club": {
			Description:     "Hands-on experiments and scientific exploration",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"ryan@mergington.edu"},
		},
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	}
}
