package store_test

import (
	"testing"

	"github.com/matryer/is"

	"github.com/beetsolutions/veteran-app/apperr"
	"github.com/beetsolutions/veteran-app/models"
	"github.com/beetsolutions/veteran-app/store"
	"github.com/beetsolutions/veteran-app/utils"
)

func newStore(t *testing.T) *store.DataStore {
	t.Helper()
	ds, err := store.New()
	if err != nil {
		t.Fatal(err)
	}
	return ds
}

func TestActiveMembersKeepRosterOrder(t *testing.T) {
	is := is.New(t)
	ds := newStore(t)

	active := ds.ActiveMembers("org1")
	ids := make([]string, 0, len(active))
	for _, member := range active {
		is.Equal(member.Status, models.StatusActive)
		ids = append(ids, member.ID)
	}
	// Members 4 (suspended) and 5 (dismissed) are filtered out; the
	// rest keep their seed order.
	is.Equal(ids, []string{"1", "2", "3", "6", "7", "8", "9", "10"})
}

func TestPasswordsAreHashedOnLoad(t *testing.T) {
	is := is.New(t)
	ds := newStore(t)

	user, ok := ds.FindUserByLogin("admin")
	is.True(ok)
	is.True(user.Password != "admin123")
	is.True(utils.ComparePasswords(user.Password, "admin123"))
}

func TestFindUserByLoginIsExactMatch(t *testing.T) {
	is := is.New(t)
	ds := newStore(t)

	byUsername, ok := ds.FindUserByLogin("johndoe")
	is.True(ok)
	byEmail, ok := ds.FindUserByLogin("john.doe@example.com")
	is.True(ok)
	is.Equal(byUsername.ID, byEmail.ID)

	_, ok = ds.FindUserByLogin("JohnDoe")
	is.True(!ok) // lookup is case-sensitive
}

func TestMarkPayment(t *testing.T) {
	is := is.New(t)
	ds := newStore(t)

	before, ok := ds.MemberByID("3", "org1")
	is.True(ok)
	is.True(!before.IsPaid)

	updated, err := ds.MarkPayment("3", "org1", true)
	is.NoErr(err)
	is.True(updated.IsPaid)

	after, ok := ds.MemberByID("3", "org1")
	is.True(ok)
	is.True(after.IsPaid)
}

func TestMarkPaymentUnknownMember(t *testing.T) {
	is := is.New(t)
	ds := newStore(t)

	_, err := ds.MarkPayment("999", "org1", true)
	is.True(apperr.IsKind(err, apperr.KindNotFound))

	// Right member, wrong organization.
	_, err = ds.MarkPayment("11", "org1", true)
	is.True(apperr.IsKind(err, apperr.KindNotFound))
}

func TestOrganizationsByIDs(t *testing.T) {
	is := is.New(t)
	ds := newStore(t)

	orgs := ds.OrganizationsByIDs([]string{"org3", "bogus", "org1"})
	is.Equal(len(orgs), 2)
	is.Equal(orgs[0].ID, "org3")
	is.Equal(orgs[1].ID, "org1")
}

func TestOrganizationScopedContent(t *testing.T) {
	is := is.New(t)
	ds := newStore(t)

	is.Equal(len(ds.OfficialsByOrganization("org1")), 7)
	is.Equal(len(ds.NewsByOrganization("org2")), 2)
	is.Equal(len(ds.MeetingsByOrganization("org1")), 2)

	_, ok := ds.ConstitutionByOrganization("org3")
	is.True(!ok)

	constitution, ok := ds.ConstitutionByOrganization("org1")
	is.True(ok)
	is.Equal(len(constitution.Articles), 2)

	is.Equal(len(ds.SoccerHistory()), 1)
}
