package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/staff-portal/internal/auth"
)

func TestSessionManager_StaffRoundTrip(t *testing.T) {
	sm := auth.NewSessionManager("unit-secret", time.Hour)

	token, exp, err := sm.IssueStaff("maya@college.edu")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	identifier, err := sm.VerifyStaff(token)
	require.NoError(t, err)
	require.Equal(t, "maya@college.edu", identifier)
}

func TestSessionManager_AdminRoundTrip(t *testing.T) {
	sm := auth.NewSessionManager("unit-secret", time.Hour)

	token, _, err := sm.IssueAdmin()
	require.NoError(t, err)
	require.NoError(t, sm.VerifyAdmin(token))
}

func TestSessionManager_KindsAreDisjoint(t *testing.T) {
	sm := auth.NewSessionManager("unit-secret", time.Hour)

	staffToken, _, err := sm.IssueStaff("maya@college.edu")
	require.NoError(t, err)
	adminToken, _, err := sm.IssueAdmin()
	require.NoError(t, err)

	t.Run("staff token is not an admin session", func(t *testing.T) {
		require.Error(t, sm.VerifyAdmin(staffToken))
	})

	t.Run("admin token is not a staff session", func(t *testing.T) {
		_, err := sm.VerifyStaff(adminToken)
		require.Error(t, err)
	})
}

func TestSessionManager_FailsClosed(t *testing.T) {
	sm := auth.NewSessionManager("unit-secret", time.Hour)

	t.Run("empty token", func(t *testing.T) {
		_, err := sm.VerifyStaff("")
		require.Error(t, err)
	})

	t.Run("tampered token", func(t *testing.T) {
		token, _, err := sm.IssueStaff("maya@college.edu")
		require.NoError(t, err)
		_, err = sm.VerifyStaff(token + "x")
		require.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := auth.NewSessionManager("different-secret", time.Hour)
		token, _, err := other.IssueStaff("maya@college.edu")
		require.NoError(t, err)
		_, err = sm.VerifyStaff(token)
		require.Error(t, err)
	})
}
