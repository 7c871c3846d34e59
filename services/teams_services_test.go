package services

import (
	"testing"

	"github.com/tomaspozo/hackathon-platform/database"
	"github.com/tomaspozo/hackathon-platform/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTeamWithOwner(t *testing.T) {
	setupTestDB(t)

	owner := createTestUser(t, "owner@test.dev", models.RoleParticipant)
	h := createTestHackathon(t, "spring-hack", models.HackathonStatusOpen)

	team := createTestTeam(t, h.ID, owner, "builders")

	var members []models.TeamMember
	require.NoError(t, database.DB.Where("team_id = ?", team.ID).Find(&members).Error)
	require.Len(t, members, 1)
	assert.Equal(t, owner.ID, members[0].UserID)
	assert.True(t, members[0].IsOwner)
}

func TestCreateTeamWithOwnerRejectsSecondTeam(t *testing.T) {
	setupTestDB(t)

	owner := createTestUser(t, "owner@test.dev", models.RoleParticipant)
	h := createTestHackathon(t, "spring-hack", models.HackathonStatusOpen)
	createTestTeam(t, h.ID, owner, "builders")

	second := &models.Team{
		HackathonID: h.ID,
		Name:        "breakers",
		Slug:        "breakers",
		CreatedBy:   owner.ID,
	}
	err := CreateTeamWithOwner(second)
	assert.ErrorIs(t, err, ErrAlreadyInTeam)

	// The failed creation must not leave a dangling team behind
	var count int64
	database.DB.Model(&models.Team{}).Where("hackathon_id = ?", h.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateTeamAllowedInOtherHackathon(t *testing.T) {
	setupTestDB(t)

	owner := createTestUser(t, "owner@test.dev", models.RoleParticipant)
	h1 := createTestHackathon(t, "spring-hack", models.HackathonStatusOpen)
	h2 := createTestHackathon(t, "winter-hack", models.HackathonStatusOpen)

	createTestTeam(t, h1.ID, owner, "builders")
	createTestTeam(t, h2.ID, owner, "builders")
}

func TestCreateInviteDeduplicatesPending(t *testing.T) {
	setupTestDB(t)

	owner := createTestUser(t, "owner@test.dev", models.RoleParticipant)
	h := createTestHackathon(t, "spring-hack", models.HackathonStatusOpen)
	team := createTestTeam(t, h.ID, owner, "builders")

	invite, err := CreateInvite(team.ID, owner.ID, "friend@test.dev")
	require.NoError(t, err)
	assert.Equal(t, models.InviteStatusPending, invite.Status)
	assert.NotEmpty(t, invite.Token)
	assert.Nil(t, invite.InviteeUserID)

	_, err = CreateInvite(team.ID, owner.ID, "friend@test.dev")
	assert.ErrorIs(t, err, ErrPendingInvite)
}

func TestCreateInviteResolvesExistingAccount(t *testing.T) {
	setupTestDB(t)

	owner := createTestUser(t, "owner@test.dev", models.RoleParticipant)
	friend := createTestUser(t, "friend@test.dev", models.RoleParticipant)
	h := createTestHackathon(t, "spring-hack", models.HackathonStatusOpen)
	team := createTestTeam(t, h.ID, owner, "builders")

	invite, err := CreateInvite(team.ID, owner.ID, friend.Email)
	require.NoError(t, err)
	require.NotNil(t, invite.InviteeUserID)
	assert.Equal(t, friend.ID, *invite.InviteeUserID)
}

func TestRespondToInviteAccept(t *testing.T) {
	setupTestDB(t)

	owner := createTestUser(t, "owner@test.dev", models.RoleParticipant)
	friend := createTestUser(t, "friend@test.dev", models.RoleParticipant)
	h := createTestHackathon(t, "spring-hack", models.HackathonStatusOpen)
	team := createTestTeam(t, h.ID, owner, "builders")

	invite, err := CreateInvite(team.ID, owner.ID, friend.Email)
	require.NoError(t, err)

	resolved, err := RespondToInvite(invite.ID, friend, true)
	require.NoError(t, err)
	assert.Equal(t, models.InviteStatusAccepted, resolved.Status)

	assert.True(t, IsTeamMember(friend.ID, team.ID))
	assert.False(t, IsTeamOwner(friend.ID, team.ID))
}

func TestRespondToInviteReject(t *testing.T) {
	setupTestDB(t)

	owner := createTestUser(t, "owner@test.dev", models.RoleParticipant)
	friend := createTestUser(t, "friend@test.dev", models.RoleParticipant)
	h := createTestHackathon(t, "spring-hack", models.HackathonStatusOpen)
	team := createTestTeam(t, h.ID, owner, "builders")

	invite, err := CreateInvite(team.ID, owner.ID, friend.Email)
	require.NoError(t, err)

	resolved, err := RespondToInvite(invite.ID, friend, false)
	require.NoError(t, err)
	assert.Equal(t, models.InviteStatusRejected, resolved.Status)
	assert.False(t, IsTeamMember(friend.ID, team.ID))

	// A resolved invite cannot be answered again
	_, err = RespondToInvite(invite.ID, friend, true)
	assert.ErrorIs(t, err, ErrInviteResolved)
}

func TestRespondToInviteWrongUser(t *testing.T) {
	setupTestDB(t)

	owner := createTestUser(t, "owner@test.dev", models.RoleParticipant)
	stranger := createTestUser(t, "stranger@test.dev", models.RoleParticipant)
	h := createTestHackathon(t, "spring-hack", models.HackathonStatusOpen)
	team := createTestTeam(t, h.ID, owner, "builders")

	invite, err := CreateInvite(team.ID, owner.ID, "friend@test.dev")
	require.NoError(t, err)

	_, err = RespondToInvite(invite.ID, stranger, true)
	assert.ErrorIs(t, err, ErrNotInvitee)

	// The invite stays pending for the real invitee
	var reloaded models.TeamInvite
	require.NoError(t, database.DB.First(&reloaded, "id = ?", invite.ID).Error)
	assert.Equal(t, models.InviteStatusPending, reloaded.Status)
}

func TestRespondToInviteAcceptBlockedWhenAlreadyTeamed(t *testing.T) {
	setupTestDB(t)

	owner := createTestUser(t, "owner@test.dev", models.RoleParticipant)
	rival := createTestUser(t, "rival@test.dev", models.RoleParticipant)
	friend := createTestUser(t, "friend@test.dev", models.RoleParticipant)
	h := createTestHackathon(t, "spring-hack", models.HackathonStatusOpen)
	team := createTestTeam(t, h.ID, owner, "builders")
	createTestTeam(t, h.ID, rival, "breakers")

	// friend joins rival's team first
	rivalTeam, err := GetMyTeam(rival.ID, h.ID)
	require.NoError(t, err)
	rivalInvite, err := CreateInvite(rivalTeam.ID, rival.ID, friend.Email)
	require.NoError(t, err)
	_, err = RespondToInvite(rivalInvite.ID, friend, true)
	require.NoError(t, err)

	invite, err := CreateInvite(team.ID, owner.ID, friend.Email)
	require.NoError(t, err)

	_, err = RespondToInvite(invite.ID, friend, true)
	assert.ErrorIs(t, err, ErrAlreadyInTeam)

	// The rollback must also undo the status stamp
	var reloaded models.TeamInvite
	require.NoError(t, database.DB.First(&reloaded, "id = ?", invite.ID).Error)
	assert.Equal(t, models.InviteStatusPending, reloaded.Status)
	assert.False(t, IsTeamMember(friend.ID, team.ID))
}

func TestGetMyTeam(t *testing.T) {
	setupTestDB(t)

	owner := createTestUser(t, "owner@test.dev", models.RoleParticipant)
	loner := createTestUser(t, "loner@test.dev", models.RoleParticipant)
	h := createTestHackathon(t, "spring-hack", models.HackathonStatusOpen)
	team := createTestTeam(t, h.ID, owner, "builders")

	found, err := GetMyTeam(owner.ID, h.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, team.ID, found.ID)

	none, err := GetMyTeam(loner.ID, h.ID)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestListTeamMembers(t *testing.T) {
	setupTestDB(t)

	owner := createTestUser(t, "owner@test.dev", models.RoleParticipant)
	friend := createTestUser(t, "friend@test.dev", models.RoleParticipant)
	h := createTestHackathon(t, "spring-hack", models.HackathonStatusOpen)
	team := createTestTeam(t, h.ID, owner, "builders")

	invite, err := CreateInvite(team.ID, owner.ID, friend.Email)
	require.NoError(t, err)
	_, err = RespondToInvite(invite.ID, friend, true)
	require.NoError(t, err)

	members, err := ListTeamMembers(team.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)

	// Owner joined first and carries profile display fields
	assert.Equal(t, owner.ID, members[0].UserID)
	assert.True(t, members[0].IsOwner)
	assert.Equal(t, "Test User", members[0].FullName)
	assert.Equal(t, friend.ID, members[1].UserID)
	assert.False(t, members[1].IsOwner)
}
