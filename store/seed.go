package store

import "github.com/beetsolutions/veteran-app/models"

// Seed is the dataset a DataStore starts from. Passwords are plaintext
// here and hashed when the store is built.
type Seed struct {
	Organizations []models.Organization
	Users         []models.User
	Officials     []models.Official
	News          []models.News
	Members       []models.Member
	Meetings      []models.Meeting
	Constitutions []models.Constitution
	SoccerMatch   models.SoccerMatch
}

func strptr(s string) *string { return &s }

// DefaultSeed returns the fixed demo dataset served by the API.
func DefaultSeed() Seed {
	nameAndPurpose := models.Article{
		Title: "Article I: Name and Purpose",
		Sections: []models.Section{
			{Number: "1.1", Text: "The name of this organization shall be Veterans United."},
			{Number: "1.2", Text: "The organization is a non-profit entity dedicated to serving veterans."},
		},
	}
	membership := models.Article{
		Title: "Article II: Membership",
		Sections: []models.Section{
			{Number: "2.1", Text: "Membership is open to all honorably discharged veterans."},
			{Number: "2.2", Text: "Annual dues shall be determined by the general assembly."},
		},
	}

	updateDatabase := models.ActionPoint{
		Description: "Update membership database",
		AssignedTo:  "Secretary",
		DueDate:     "Mar 01, 2026",
		Status:      "In Progress",
	}
	planGala := models.ActionPoint{
		Description: "Plan annual gala",
		AssignedTo:  "Social Secretary",
		DueDate:     "Mar 15, 2026",
		Status:      "Not Started",
	}

	return Seed{
		Organizations: []models.Organization{
			{ID: "org1", Name: "Veterans United", Location: "New York, NY"},
			{ID: "org2", Name: "Heroes Association", Location: "Los Angeles, CA"},
			{ID: "org3", Name: "Freedom Veterans", Location: "Chicago, IL"},
		},
		// Demo credentials only. Passwords are bcrypt-hashed on load.
		Users: []models.User{
			{ID: "1", Username: "admin", Email: "admin@veteranapp.com", Password: "admin123", Name: "Admin User", OrganizationIDs: []string{"org1", "org2", "org3"}},
			{ID: "2", Username: "johndoe", Email: "john.doe@example.com", Password: "password123", Name: "John Doe", OrganizationIDs: []string{"org1", "org2"}},
			{ID: "3", Username: "janedoe", Email: "jane.doe@example.com", Password: "password123", Name: "Jane Doe", OrganizationIDs: []string{"org1"}},
		},
		Officials: []models.Official{
			{OrganizationID: "org1", Name: "Gen. James Mitchell", Role: "President", Service: "U.S. Army", ImageURL: strptr("https://example.com/james.jpg")},
			{OrganizationID: "org1", Name: "Col. Sarah Johnson", Role: "Vice President", Service: "U.S. Air Force"},
			{OrganizationID: "org1", Name: "Cdr. Michael Chen", Role: "Secretary", Service: "U.S. Navy"},
			{OrganizationID: "org1", Name: "Maj. David Williams", Role: "Treasurer", Service: "U.S. Marine Corps"},
			{OrganizationID: "org1", Name: "Sgt. Robert Davis", Role: "Organizing Secretary", Service: "U.S. Army"},
			{OrganizationID: "org1", Name: "Lt. Emily Rodriguez", Role: "Social Secretary", Service: "U.S. Air Force"},
			{OrganizationID: "org1", Name: "Capt. Thomas Anderson", Role: "Provost", Service: "U.S. Navy"},
			{OrganizationID: "org2", Name: "Gen. Patricia Moore", Role: "President", Service: "U.S. Army"},
			{OrganizationID: "org2", Name: "Col. William Taylor", Role: "Vice President", Service: "U.S. Marine Corps"},
			{OrganizationID: "org2", Name: "Cdr. Jennifer Lee", Role: "Secretary", Service: "U.S. Navy"},
			{OrganizationID: "org3", Name: "Gen. Charles Brown", Role: "President", Service: "U.S. Air Force"},
			{OrganizationID: "org3", Name: "Col. Lisa Martinez", Role: "Vice President", Service: "U.S. Army"},
		},
		News: []models.News{
			{OrganizationID: "org1", Title: "Annual Gala Dinner", Description: "Join us for our annual gala dinner celebrating our veterans", Date: "Mar 15, 2026", Category: "Event", ImageURL: strptr("https://example.com/gala.jpg")},
			{OrganizationID: "org1", Title: "Scholarship Program Launch", Description: "New scholarship program for veterans' children", Date: "Feb 28, 2026", Category: "Announcement"},
			{OrganizationID: "org1", Title: "Community Outreach Success", Description: "Our community outreach program helped 500 veterans this month", Date: "Feb 20, 2026", Category: "Achievement"},
			{OrganizationID: "org1", Title: "Monthly Meeting Notice", Description: "Next monthly meeting scheduled for March 10th at 6 PM", Date: "Feb 15, 2026", Category: "Meeting"},
			{OrganizationID: "org1", Title: "Health Fair Announcement", Description: "Free health screenings for all members on March 25th", Date: "Feb 10, 2026", Category: "Event"},
			{OrganizationID: "org2", Title: "Veterans Day Parade", Description: "Annual parade planning committee meeting", Date: "Mar 10, 2026", Category: "Event"},
			{OrganizationID: "org2", Title: "New Member Orientation", Description: "Welcome session for new members", Date: "Mar 05, 2026", Category: "Meeting"},
			{OrganizationID: "org3", Title: "Fundraising Campaign", Description: "Spring fundraising campaign kicks off", Date: "Mar 08, 2026", Category: "Announcement"},
		},
		// Insertion order matters: hosting rotation walks this list by index.
		Members: []models.Member{
			{ID: "1", OrganizationID: "org1", Name: "John Smith", Location: "New York, NY", IsPaid: true, Status: models.StatusActive, Role: "Member", Service: "U.S. Army"},
			{ID: "2", OrganizationID: "org1", Name: "Jane Doe", Location: "Brooklyn, NY", IsPaid: true, Status: models.StatusActive, Role: "Member", Service: "U.S. Navy"},
			{ID: "3", OrganizationID: "org1", Name: "Michael Brown", Location: "Queens, NY", IsPaid: false, Status: models.StatusActive, Role: "Member", Service: "U.S. Air Force"},
			{ID: "4", OrganizationID: "org1", Name: "Sarah Wilson", Location: "Manhattan, NY", IsPaid: true, Status: models.StatusSuspended, Role: "Member", Service: "U.S. Marine Corps"},
			{ID: "5", OrganizationID: "org1", Name: "David Lee", Location: "Bronx, NY", IsPaid: false, Status: models.StatusDismissed, Role: "Former Member", Service: "U.S. Army"},
			{ID: "6", OrganizationID: "org1", Name: "Emily Davis", Location: "Staten Island, NY", IsPaid: true, Status: models.StatusActive, Role: "Member", Service: "U.S. Coast Guard"},
			{ID: "7", OrganizationID: "org1", Name: "James Martinez", Location: "Long Island, NY", IsPaid: true, Status: models.StatusActive, Role: "Senior Member", Service: "U.S. Army"},
			{ID: "8", OrganizationID: "org1", Name: "Lisa Anderson", Location: "Yonkers, NY", IsPaid: false, Status: models.StatusActive, Role: "Member", Service: "U.S. Air Force"},
			{ID: "9", OrganizationID: "org1", Name: "Robert Taylor", Location: "White Plains, NY", IsPaid: true, Status: models.StatusActive, Role: "Member", Service: "U.S. Navy"},
			{ID: "10", OrganizationID: "org1", Name: "Jennifer Thomas", Location: "New Rochelle, NY", IsPaid: true, Status: models.StatusActive, Role: "Member", Service: "U.S. Marine Corps"},
			{ID: "11", OrganizationID: "org2", Name: "William Garcia", Location: "Los Angeles, CA", IsPaid: true, Status: models.StatusActive, Role: "Member", Service: "U.S. Army"},
			{ID: "12", OrganizationID: "org2", Name: "Maria Rodriguez", Location: "Hollywood, CA", IsPaid: true, Status: models.StatusActive, Role: "Member", Service: "U.S. Navy"},
			{ID: "13", OrganizationID: "org3", Name: "Christopher White", Location: "Chicago, IL", IsPaid: true, Status: models.StatusActive, Role: "Member", Service: "U.S. Air Force"},
		},
		Meetings: []models.Meeting{
			{
				ID: "1", OrganizationID: "org1", Title: "Monthly General Meeting", Date: "Feb 12, 2026",
				Location: "Veterans Hall, 123 Main St", Attendees: 45,
				Minutes:      "Meeting called to order at 6:00 PM. President welcomed all members...",
				ActionPoints: []models.ActionPoint{updateDatabase, planGala},
				Fines: []models.Fine{
					{MemberName: "John Smith", Amount: 25.00, Reason: "Late arrival"},
					{MemberName: "Jane Doe", Amount: 50.00, Reason: "Missed previous meeting"},
				},
			},
			{
				ID: "2", OrganizationID: "org1", Title: "Executive Committee Meeting", Date: "Feb 05, 2026",
				Location: "Conference Room A", Attendees: 7,
				Minutes:      "Executive committee reviewed budget proposals...",
				ActionPoints: []models.ActionPoint{updateDatabase},
				Fines:        []models.Fine{},
			},
			{
				ID: "3", OrganizationID: "org2", Title: "Planning Committee", Date: "Feb 10, 2026",
				Location: "Community Center", Attendees: 15,
				Minutes:      "Committee discussed upcoming events...",
				ActionPoints: []models.ActionPoint{},
				Fines:        []models.Fine{},
			},
		},
		Constitutions: []models.Constitution{
			{
				OrganizationID:   "org1",
				OrganizationName: "Veterans United",
				Articles:         []models.Article{nameAndPurpose, membership},
				Adopted:          "Jan 15, 2020",
				LastAmended:      "Dec 10, 2025",
			},
			{
				OrganizationID:   "org2",
				OrganizationName: "Heroes Association",
				Articles:         []models.Article{nameAndPurpose},
				Adopted:          "Mar 20, 2019",
				LastAmended:      "Nov 15, 2024",
			},
		},
		SoccerMatch: models.SoccerMatch{
			MatchDay:          "Feb 12, 2026",
			HomeTeam:          "Veterans FC",
			AwayTeam:          "Heroes United",
			HomeScore:         3,
			AwayScore:         2,
			Referee:           "Referee John Smith",
			AssistantReferee1: "Assistant Ref Mike Johnson",
			AssistantReferee2: "Assistant Ref Sarah Williams",
			Goals: []models.MatchEvent{
				{PlayerName: "James Mitchell", Minute: "15'", Team: "Home"},
				{PlayerName: "David Lee", Minute: "28'", Team: "Away"},
				{PlayerName: "Robert Davis", Minute: "45+2'", Team: "Home"},
				{PlayerName: "Michael Chen", Minute: "67'", Team: "Away"},
				{PlayerName: "Thomas Anderson", Minute: "82'", Team: "Home"},
			},
			Assists: []models.MatchEvent{
				{PlayerName: "Michael Chen", Minute: "15'", Team: "Home"},
				{PlayerName: "Thomas Anderson", Minute: "28'", Team: "Away"},
				{PlayerName: "James Mitchell", Minute: "45+2'", Team: "Home"},
				{PlayerName: "Robert Davis", Minute: "67'", Team: "Away"},
				{PlayerName: "David Williams", Minute: "82'", Team: "Home"},
			},
			YellowCards: []models.CardEvent{
				{PlayerName: "David Williams", Minute: "33'", Team: "Home", Reason: "Unsporting behavior"},
				{PlayerName: "Emily Rodriguez", Minute: "58'", Team: "Away", Reason: "Tactical foul"},
			},
			RedCards: []models.CardEvent{},
		},
	}
}
