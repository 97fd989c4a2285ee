package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userdir/domain/shared"
	"userdir/domain/user"
)

func newUser(email string, born user.Date) *user.User {
	return user.NewUser(user.Profile{
		Email:     email,
		FirstName: "Jane",
		LastName:  "Doe",
		BirthDate: born,
	})
}

func emails(users []*user.User) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.Email()
	}
	return out
}

func TestCreateAssignsIDsAndRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	first, err := repo.Create(ctx, newUser("a@x.com", user.NewDate(1990, time.January, 1)))
	require.NoError(t, err)
	second, err := repo.Create(ctx, newUser("b@x.com", user.NewDate(1991, time.January, 1)))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), first.ID())
	assert.Equal(t, uint64(2), second.ID())

	_, err = repo.Create(ctx, newUser("a@x.com", user.NewDate(1992, time.January, 1)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrConflict))
	assert.Equal(t, "User with email a@x.com already exists", err.Error())
}

func TestEmailsMatchRegardlessOfCase(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	_, err := repo.Create(ctx, newUser("Jane@X.com", user.NewDate(1990, time.January, 1)))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newUser("jane@x.com", user.NewDate(1990, time.January, 1)))
	assert.True(t, errors.Is(err, shared.ErrConflict))

	found, err := repo.FindByEmail(ctx, "JANE@x.COM")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Jane@X.com", found.Email())

	renamed := found.Clone()
	renamed.ReplaceProfile(user.Profile{Email: "jane@x.com", FirstName: "Jane", LastName: "Doe", BirthDate: found.BirthDate()})
	updated, err := repo.Update(ctx, "Jane@X.com", renamed)
	require.NoError(t, err)
	assert.Equal(t, "jane@x.com", updated.Email())
	assert.Equal(t, found.ID(), updated.ID())

	require.NoError(t, repo.Delete(ctx, "JANE@X.COM"))
	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestFindByEmailAbsentIsNil(t *testing.T) {
	repo := NewUserRepository()
	u, err := repo.FindByEmail(context.Background(), "nobody@x.com")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestReturnedUsersAreDetached(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	_, err := repo.Create(ctx, newUser("a@x.com", user.NewDate(1990, time.January, 1)))
	require.NoError(t, err)

	found, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	found.ReplaceProfile(user.Profile{Email: "changed@x.com"})

	again, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, "Jane", again.FirstName())
}

func TestUpdateRewritesKeyInPlace(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	for _, e := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		_, err := repo.Create(ctx, newUser(e, user.NewDate(1990, time.January, 1)))
		require.NoError(t, err)
	}

	updated, err := repo.Update(ctx, "b@x.com", newUser("renamed@x.com", user.NewDate(1985, time.May, 5)))
	require.NoError(t, err)
	assert.Equal(t, uint64(2), updated.ID())

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a@x.com", "renamed@x.com", "c@x.com"}, emails(all))

	old, err := repo.FindByEmail(ctx, "b@x.com")
	require.NoError(t, err)
	assert.Nil(t, old)
}

func TestUpdateErrors(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	_, err := repo.Create(ctx, newUser("a@x.com", user.NewDate(1990, time.January, 1)))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newUser("b@x.com", user.NewDate(1990, time.January, 1)))
	require.NoError(t, err)

	_, err = repo.Update(ctx, "missing@x.com", newUser("missing@x.com", user.NewDate(1990, time.January, 1)))
	assert.True(t, errors.Is(err, shared.ErrNotFound))

	_, err = repo.Update(ctx, "a@x.com", newUser("b@x.com", user.NewDate(1990, time.January, 1)))
	assert.True(t, errors.Is(err, shared.ErrConflict))
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	_, err := repo.Create(ctx, newUser("a@x.com", user.NewDate(1990, time.January, 1)))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "a@x.com"))
	err = repo.Delete(ctx, "a@x.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrNotFound))
	assert.Equal(t, "User with email a@x.com not found", err.Error())
}

func TestFindByBirthDateRangeIsInclusive(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	born := map[string]user.Date{
		"before@x.com": user.NewDate(1989, time.December, 31),
		"from@x.com":   user.NewDate(1990, time.January, 1),
		"inside@x.com": user.NewDate(1995, time.June, 15),
		"to@x.com":     user.NewDate(2000, time.December, 31),
		"after@x.com":  user.NewDate(2001, time.January, 1),
	}
	for _, e := range []string{"before@x.com", "from@x.com", "inside@x.com", "to@x.com", "after@x.com"} {
		_, err := repo.Create(ctx, newUser(e, born[e]))
		require.NoError(t, err)
	}

	found, err := repo.FindByBirthDateRange(ctx, user.DateRange{
		From: user.NewDate(1990, time.January, 1),
		To:   user.NewDate(2000, time.December, 31),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"from@x.com", "inside@x.com", "to@x.com"}, emails(found))

	none, err := repo.FindByBirthDateRange(ctx, user.DateRange{
		From: user.NewDate(1970, time.January, 1),
		To:   user.NewDate(1971, time.January, 1),
	})
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.NotNil(t, none)
}

func TestConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			email := string(rune('a'+i%26)) + string(rune('a'+i/26)) + "@x.com"
			_, _ = repo.Create(ctx, newUser(email, user.NewDate(1990, time.January, 1)))
		}(i)
	}
	wg.Wait()

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 50)
}
