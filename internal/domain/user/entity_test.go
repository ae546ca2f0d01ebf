//go:build unit

package user_test

import (
	"strings"
	"testing"

	"fitstudio/internal/domain/user"
	"fitstudio/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		b := builder.NewUserBuilder()

		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		name, _ := user.NewName("Test Member")
		email, _ := user.NewEmail("test@example.com")
		phone, _ := user.NewPhone("+7 (900) 123-45-67")
		expected := user.NewUser(name, email, phone, builder.TestPasswordHash, user.SubscriptionMonthly, user.RoleMember, b.Now)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
		assert.Equal(t, b.Now, actual.CreatedAt())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "有効なメールアドレスOK", mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") }},
			{name: "大文字と前後空白は正規化OK", mutate: func(b *builder.UserBuilder) { b.WithEmail("  Valid@Example.COM ") }},
			{name: "空のメールアドレスNG", mutate: func(b *builder.UserBuilder) { b.WithEmail("") }, errIs: user.ErrInvalidEmail},
			{name: "無効な形式NG", mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") }, errIs: user.ErrInvalidEmail},
			{name: "@なしNG", mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") }, errIs: user.ErrInvalidEmail},
		})
	})

	t.Run("名前検証", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "2文字OK", mutate: func(b *builder.UserBuilder) { b.WithName("Jo") }},
			{name: "50文字OK", mutate: func(b *builder.UserBuilder) { b.WithName(strings.Repeat("a", 50)) }},
			{name: "マルチバイト2文字OK", mutate: func(b *builder.UserBuilder) { b.WithName("太郎") }},
			{name: "1文字NG", mutate: func(b *builder.UserBuilder) { b.WithName("J") }, errIs: user.ErrInvalidName},
			{name: "空白のみNG", mutate: func(b *builder.UserBuilder) { b.WithName("   ") }, errIs: user.ErrInvalidName},
			{name: "51文字NG", mutate: func(b *builder.UserBuilder) { b.WithName(strings.Repeat("a", 51)) }, errIs: user.ErrInvalidName},
		})
	})

	t.Run("電話番号検証", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "記号付きOK", mutate: func(b *builder.UserBuilder) { b.WithPhone("+1 (555) 010-9999") }},
			{name: "数字のみOK", mutate: func(b *builder.UserBuilder) { b.WithPhone("79001234567") }},
			{name: "空NG", mutate: func(b *builder.UserBuilder) { b.WithPhone("") }, errIs: user.ErrInvalidPhone},
			{name: "英字NG", mutate: func(b *builder.UserBuilder) { b.WithPhone("call me") }, errIs: user.ErrInvalidPhone},
		})
	})

	t.Run("サブスクリプション検証", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "single OK", mutate: func(b *builder.UserBuilder) { b.WithSubscription("single") }},
			{name: "monthly OK", mutate: func(b *builder.UserBuilder) { b.WithSubscription("monthly") }},
			{name: "unlimited OK", mutate: func(b *builder.UserBuilder) { b.WithSubscription("unlimited") }},
			{name: "未知の種別NG", mutate: func(b *builder.UserBuilder) { b.WithSubscription("yearly") }, errIs: user.ErrInvalidSubscription},
		})
	})

	t.Run("ロール検証", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "member ロールOK", mutate: func(b *builder.UserBuilder) { b.WithRole("member") }},
			{name: "admin ロールOK", mutate: func(b *builder.UserBuilder) { b.WithRole("admin") }},
			{name: "無効なロールNG", mutate: func(b *builder.UserBuilder) { b.WithRole("viewer") }, errIs: user.ErrInvalidRole},
			{name: "空のロールNG", mutate: func(b *builder.UserBuilder) { b.WithRole("") }, errIs: user.ErrInvalidRole},
		})
	})
}

func TestPassword(t *testing.T) {
	_, err := user.NewPassword("1234567")
	require.ErrorIs(t, err, user.ErrPasswordTooWeak)

	p, err := user.NewPassword("12345678")
	require.NoError(t, err)
	assert.Equal(t, "12345678", p.Value())
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
