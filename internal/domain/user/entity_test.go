//go:build unit

package user_test

import (
	"testing"

	"vip-discount/internal/domain/user"
	"vip-discount/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(user.User{}, user.ID{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		id, _ := user.NewID("user1")
		expected := user.NewUser(id, user.TypeVIP)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.Equal(t, "user1", actual.ID().Value())
		assert.True(t, actual.IsVIP())
	})

	t.Run("id validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "plain id OK",
				mutate: func(b *builder.UserBuilder) { b.WithID("user2") },
			},
			{
				name:   "uuid id OK",
				mutate: func(b *builder.UserBuilder) { b.WithID("7f1c7a52-8a43-4f0e-9e0f-3c3c1a4c2b11") },
			},
			{
				name:   "empty id NG",
				mutate: func(b *builder.UserBuilder) { b.WithID("") },
				errIs:  user.ErrEmptyID,
			},
			{
				name:   "blank id NG",
				mutate: func(b *builder.UserBuilder) { b.WithID("   ") },
				errIs:  user.ErrEmptyID,
			},
		})
	})

	t.Run("type validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "VIP OK",
				mutate: func(b *builder.UserBuilder) { b.AsVIP() },
			},
			{
				name:   "NORMAL OK",
				mutate: func(b *builder.UserBuilder) { b.AsNormal() },
			},
			{
				name:   "lower case OK",
				mutate: func(b *builder.UserBuilder) { b.WithType(" vip ") },
			},
			{
				name:   "unknown type NG",
				mutate: func(b *builder.UserBuilder) { b.WithType("GOLD") },
				errIs:  user.ErrInvalidType,
			},
			{
				name:   "empty type NG",
				mutate: func(b *builder.UserBuilder) { b.WithType("") },
				errIs:  user.ErrInvalidType,
			},
		})
	})

	t.Run("tier", func(t *testing.T) {
		normal := builder.NewUserBuilder().AsNormal().MustBuildDomain()
		assert.False(t, normal.IsVIP())
		assert.Equal(t, user.TypeNormal, normal.Type())

		var missing *user.User
		assert.False(t, missing.IsVIP())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
