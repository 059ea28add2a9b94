package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activities-service/internal/repository"
)

func TestMemoryRegistry_ListActivities(t *testing.T) {
	ctx := context.Background()
	reg := repository.NewMemoryRegistry(repository.SeedActivities())

	activities, err := reg.ListActivities(ctx)
	require.NoError(t, err)

	assert.Len(t, activities, 9)

	basketball, ok := activities["Basketball"]
	require.True(t, ok)
	assert.Equal(t, "Team sport focusing on basketball skills and competitive play", basketball.Description)
	assert.Equal(t, "Mondays and Wednesdays, 4:00 PM - 5:30 PM", basketball.Schedule)
	assert.Equal(t, 15, basketball.MaxParticipants)
	assert.Equal(t, []string{"james@mergington.edu"}, basketball.Participants)
}

func TestMemoryRegistry_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	reg := repository.NewMemoryRegistry(repository.SeedActivities())

	first, err := reg.ListActivities(ctx)
	require.NoError(t, err)

	// правка снаружи не должна попасть в реестр
	first["Basketball"].Participants[0] = "hacked@mergington.edu"

	second, err := reg.ListActivities(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"james@mergington.edu"}, second["Basketball"].Participants)
}

func TestMemoryRegistry_AddParticipant(t *testing.T) {
	ctx := context.Background()

	t.Run("appends preserving order", func(t *testing.T) {
		reg := repository.NewMemoryRegistry(repository.SeedActivities())

		require.NoError(t, reg.AddParticipant(ctx, "Basketball", "new@mergington.edu"))

		activities, err := reg.ListActivities(ctx)
		require.NoError(t, err)
		assert.Equal(t,
			[]string{"james@mergington.edu", "new@mergington.edu"},
			activities["Basketball"].Participants,
		)
	})

	t.Run("unknown activity", func(t *testing.T) {
		reg := repository.NewMemoryRegistry(repository.SeedActivities())

		err := reg.AddParticipant(ctx, "NoSuchClub", "new@mergington.edu")
		assert.ErrorIs(t, err, repository.ErrActivityNotFound)
	})

	t.Run("duplicate leaves list unchanged", func(t *testing.T) {
		reg := repository.NewMemoryRegistry(repository.SeedActivities())

		err := reg.AddParticipant(ctx, "Basketball", "james@mergington.edu")
		assert.ErrorIs(t, err, repository.ErrAlreadySignedUp)

		activities, err := reg.ListActivities(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"james@mergington.edu"}, activities["Basketball"].Participants)
	})

	t.Run("capacity is not enforced", func(t *testing.T) {
		reg := repository.NewMemoryRegistry(repository.SeedActivities())

		// Tennis Club вмещает 10; записываем больше — реестр не возражает
		for i := 0; i < 15; i++ {
			email := string(rune('a'+i)) + "@mergington.edu"
			require.NoError(t, reg.AddParticipant(ctx, "Tennis Club", email))
		}

		activities, err := reg.ListActivities(ctx)
		require.NoError(t, err)
		assert.Len(t, activities["Tennis Club"].Participants, 16)
	})
}

func TestMemoryRegistry_RemoveParticipant(t *testing.T) {
	ctx := context.Background()

	t.Run("removes only the given email", func(t *testing.T) {
		reg := repository.NewMemoryRegistry(repository.SeedActivities())

		require.NoError(t, reg.RemoveParticipant(ctx, "Drama Club", "isabella@mergington.edu"))

		activities, err := reg.ListActivities(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"lucas@mergington.edu"}, activities["Drama Club"].Participants)
	})

	t.Run("unknown activity", func(t *testing.T) {
		reg := repository.NewMemoryRegistry(repository.SeedActivities())

		err := reg.RemoveParticipant(ctx, "NoSuchClub", "someone@mergington.edu")
		assert.ErrorIs(t, err, repository.ErrActivityNotFound)
	})

	t.Run("unknown participant leaves registry unchanged", func(t *testing.T) {
		reg := repository.NewMemoryRegistry(repository.SeedActivities())

		err := reg.RemoveParticipant(ctx, "Basketball", "notamember@mergington.edu")
		assert.ErrorIs(t, err, repository.ErrParticipantNotFound)

		activities, err := reg.ListActivities(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"james@mergington.edu"}, activities["Basketball"].Participants)
	})

	t.Run("remove then signup round-trip", func(t *testing.T) {
		reg := repository.NewMemoryRegistry(repository.SeedActivities())

		require.NoError(t, reg.RemoveParticipant(ctx, "Basketball", "james@mergington.edu"))
		require.NoError(t, reg.AddParticipant(ctx, "Basketball", "james@mergington.edu"))

		activities, err := reg.ListActivities(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"james@mergington.edu"}, activities["Basketball"].Participants)
	})
}
