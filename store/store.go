package store

import (
	"fmt"
	"sync"

	"github.com/beetsolutions/veteran-app/apperr"
	"github.com/beetsolutions/veteran-app/models"
	"github.com/beetsolutions/veteran-app/utils"
)

// DataStore holds the in-memory dataset. Reads return copies; the only
// mutation is MarkPayment, so a single mutex is enough.
type DataStore struct {
	mu sync.Mutex

	users         []models.User
	organizations []models.Organization
	officials     []models.Official
	news          []models.News
	members       []models.Member
	meetings      []models.Meeting
	constitutions map[string]models.Constitution
	soccerMatch   models.SoccerMatch
}

// New builds a store from the default seed.
func New() (*DataStore, error) {
	return NewFromSeed(DefaultSeed())
}

// NewFromSeed builds a store from the given seed, hashing user
// passwords so plaintext is never kept at rest.
func NewFromSeed(seed Seed) (*DataStore, error) {
	users := make([]models.User, len(seed.Users))
	for i, user := range seed.Users {
		hashed, err := utils.HashPassword(user.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password for user %s: %w", user.Username, err)
		}
		user.Password = hashed
		users[i] = user
	}

	constitutions := make(map[string]models.Constitution, len(seed.Constitutions))
	for _, constitution := range seed.Constitutions {
		constitutions[constitution.OrganizationID] = constitution
	}

	return &DataStore{
		users:         users,
		organizations: seed.Organizations,
		officials:     seed.Officials,
		news:          seed.News,
		members:       seed.Members,
		meetings:      seed.Meetings,
		constitutions: constitutions,
		soccerMatch:   seed.SoccerMatch,
	}, nil
}

// FindUserByLogin looks a user up by exact username or email match.
func (ds *DataStore) FindUserByLogin(usernameOrEmail string) (models.User, bool) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	for _, user := range ds.users {
		if user.Username == usernameOrEmail || user.Email == usernameOrEmail {
			return user, true
		}
	}
	return models.User{}, false
}

func (ds *DataStore) FindUserByID(id string) (models.User, bool) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	for _, user := range ds.users {
		if user.ID == id {
			return user, true
		}
	}
	return models.User{}, false
}

func (ds *DataStore) FindUserByEmail(email string) (models.User, bool) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	for _, user := range ds.users {
		if user.Email == email {
			return user, true
		}
	}
	return models.User{}, false
}

func (ds *DataStore) Organizations() []models.Organization {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	return append([]models.Organization(nil), ds.organizations...)
}

func (ds *DataStore) OrganizationByID(id string) (models.Organization, bool) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	for _, org := range ds.organizations {
		if org.ID == id {
			return org, true
		}
	}
	return models.Organization{}, false
}

// OrganizationsByIDs resolves ids against the directory, preserving the
// order of ids. Unknown ids are skipped.
func (ds *DataStore) OrganizationsByIDs(ids []string) []models.Organization {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	orgs := make([]models.Organization, 0, len(ids))
	for _, id := range ids {
		for _, org := range ds.organizations {
			if org.ID == id {
				orgs = append(orgs, org)
				break
			}
		}
	}
	return orgs
}

func (ds *DataStore) MembersByOrganization(organizationID string) []models.Member {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	members := make([]models.Member, 0)
	for _, member := range ds.members {
		if member.OrganizationID == organizationID {
			members = append(members, member)
		}
	}
	return members
}

// ActiveMembers returns the organization's active members in roster
// order. The hosting rotation depends on this order being stable.
func (ds *DataStore) ActiveMembers(organizationID string) []models.Member {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	members := make([]models.Member, 0)
	for _, member := range ds.members {
		if member.OrganizationID == organizationID && member.Status == models.StatusActive {
			members = append(members, member)
		}
	}
	return members
}

func (ds *DataStore) MemberByID(memberID, organizationID string) (models.Member, bool) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	for _, member := range ds.members {
		if member.ID == memberID && member.OrganizationID == organizationID {
			return member, true
		}
	}
	return models.Member{}, false
}

// MarkPayment flips a member's isPaid flag in place.
func (ds *DataStore) MarkPayment(memberID, organizationID string, isPaid bool) (models.Member, error) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	for i := range ds.members {
		if ds.members[i].ID == memberID && ds.members[i].OrganizationID == organizationID {
			ds.members[i].IsPaid = isPaid
			return ds.members[i], nil
		}
	}
	return models.Member{}, apperr.NotFound("Member not found")
}

func (ds *DataStore) OfficialsByOrganization(organizationID string) []models.Official {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	officials := make([]models.Official, 0)
	for _, official := range ds.officials {
		if official.OrganizationID == organizationID {
			officials = append(officials, official)
		}
	}
	return officials
}

func (ds *DataStore) NewsByOrganization(organizationID string) []models.News {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	news := make([]models.News, 0)
	for _, item := range ds.news {
		if item.OrganizationID == organizationID {
			news = append(news, item)
		}
	}
	return news
}

func (ds *DataStore) MeetingsByOrganization(organizationID string) []models.Meeting {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	meetings := make([]models.Meeting, 0)
	for _, meeting := range ds.meetings {
		if meeting.OrganizationID == organizationID {
			meetings = append(meetings, meeting)
		}
	}
	return meetings
}

func (ds *DataStore) MeetingByID(meetingID, organizationID string) (models.Meeting, bool) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	for _, meeting := range ds.meetings {
		if meeting.ID == meetingID && meeting.OrganizationID == organizationID {
			return meeting, true
		}
	}
	return models.Meeting{}, false
}

func (ds *DataStore) ConstitutionByOrganization(organizationID string) (models.Constitution, bool) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	constitution, ok := ds.constitutions[organizationID]
	return constitution, ok
}

func (ds *DataStore) CurrentSoccerMatch() models.SoccerMatch {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	return ds.soccerMatch
}

func (ds *DataStore) SoccerHistory() []models.SoccerMatch {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	return []models.SoccerMatch{ds.soccerMatch}
}
