//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"fitstudio/internal/domain/user"
	"fitstudio/internal/handler/api"
	resdto "fitstudio/internal/handler/dto/response"
	"fitstudio/internal/pkg/config"
	"fitstudio/internal/pkg/cookie"
	"fitstudio/internal/pkg/jwt"
	"fitstudio/internal/usecase/commands"
	"fitstudio/internal/usecase/queries"
	"fitstudio/tests/common/builder"
	"fitstudio/tests/common/httptest"
	"fitstudio/tests/common/testutil"
	commandsmock "fitstudio/tests/mock/commands"
	queriesmock "fitstudio/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockCommand *commandsmock.MockAuthCommands
	mockUsers   *queriesmock.MockUserQueries
	handler     *api.AuthHandler
	userID      uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommand = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockUsers = queriesmock.NewMockUserQueries(s.mockCtrl)
	jwtService := jwt.NewService("handler-test-secret", 15*time.Minute, 24*time.Hour)
	s.handler = api.NewAuthHandler(s.mockCommand, s.mockUsers, config.NewTestConfig(), jwtService)
	s.userID = uuid.New()

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/refresh", s.handler.Refresh)
	s.router.POST("/auth/logout", fakeAuth(s.userID, user.RoleMember), s.handler.Logout)
	s.router.GET("/auth/me", fakeAuth(s.userID, user.RoleMember), s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) loginResult() *commands.LoginResult {
	return &commands.LoginResult{
		UserID:    s.userID,
		TokenPair: &commands.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"},
	}
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ================================================================================
// TestRegister
// ================================================================================

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	reqBody := builder.NewAuthBuilder().BuildRegisterDTO()

	s.Run("基本成功ケース: 201でトークンとユーザーを返す", func() {
		view := builder.NewUserBuilder().WithID(s.userID).WithEmail(reqBody.Email).BuildReadModel()
		s.mockCommand.EXPECT().Register(gomock.Any(), gomock.Any()).Return(s.loginResult(), nil).Times(1)
		s.mockUsers.EXPECT().GetCurrentUser(gomock.Any(), s.userID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("access-token", body.AccessToken)
		s.Require().NotNil(body.User)
		s.Equal(reqBody.Email, body.User.Email)
		s.NotNil(findCookie(rec.Result().Cookies(), cookie.AccessTokenCookieName))
		s.NotNil(findCookie(rec.Result().Cookies(), cookie.RefreshTokenCookieName))
	})

	s.Run("ドメイン検証エラー: コマンドを呼ばずに400", func() {
		cases := []struct {
			name      string
			mutate    func(m map[string]any)
			expectMsg string
		}{
			{name: "名前が1文字", mutate: testutil.Field("name", "A"), expectMsg: "Name must be 2 to 50 characters"},
			{name: "電話番号に英字", mutate: testutil.Field("phone", "call-me"), expectMsg: "Invalid phone number"},
			{name: "未知のサブスクリプション", mutate: testutil.Field("subscription_type", "yearly"), expectMsg: "Invalid subscription type"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.expectMsg)
			})
		}
	})

	s.Run("バインドエラー: 400", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "email欠落", mutate: testutil.Field("email", nil)},
			{name: "email形式不正", mutate: testutil.Field("email", "not-an-email")},
			{name: "パスワード7文字", mutate: testutil.Field("password", "1234567")},
			{name: "phone欠落", mutate: testutil.Field("phone", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("メール重複: 409", func() {
		s.mockCommand.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, commands.ErrEmailAlreadyExists).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already exists")
	})
}

// ================================================================================
// TestLogin
// ================================================================================

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := builder.NewAuthBuilder().BuildDTO()

	s.Run("基本成功ケース", func() {
		view := builder.NewUserBuilder().WithID(s.userID).BuildReadModel()
		s.mockCommand.EXPECT().Login(gomock.Any(), gomock.Any()).Return(s.loginResult(), nil).Times(1)
		s.mockUsers.EXPECT().GetCurrentUser(gomock.Any(), s.userID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("access-token", body.AccessToken)
		s.Require().NotNil(body.User)
		s.Equal("member", body.User.Role)
	})

	s.Run("コマンドエラーのマッピング", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{name: "認証情報不一致", err: commands.ErrInvalidCredentials, expectCode: http.StatusUnauthorized, expectMsg: "Invalid email or password"},
			{name: "無効化済みアカウント", err: commands.ErrUserInactive, expectCode: http.StatusForbidden, expectMsg: "Account is inactive"},
			{name: "想定外エラー", err: errors.New("boom"), expectCode: http.StatusInternalServerError, expectMsg: "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommand.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})

	s.Run("リクエスト形式不正: 400", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("password", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

// ================================================================================
// TestRefresh
// ================================================================================

func (s *AuthHandlerTestSuite) TestRefresh() {
	url := "/auth/refresh"
	pair := &commands.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}

	s.Run("Cookieから更新", func() {
		s.mockCommand.EXPECT().RefreshToken(gomock.Any(), "cookie-refresh").Return(pair, nil).Times(1)

		cookies := []*http.Cookie{{Name: cookie.RefreshTokenCookieName, Value: "cookie-refresh"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, nil, cookies, "")

		var body resdto.RefreshResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("new-access", body.AccessToken)
		refreshed := findCookie(rec.Result().Cookies(), cookie.RefreshTokenCookieName)
		s.Require().NotNil(refreshed)
		s.Equal("new-refresh", refreshed.Value)
	})

	s.Run("ボディから更新", func() {
		s.mockCommand.EXPECT().RefreshToken(gomock.Any(), "body-refresh").Return(pair, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]string{"refresh_token": "body-refresh"}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("トークンなし: 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Refresh token required")
	})

	s.Run("検証失敗: 401", func() {
		s.mockCommand.EXPECT().RefreshToken(gomock.Any(), "bad").Return(nil, commands.ErrTokenValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]string{"refresh_token": "bad"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("無効化済みユーザー: 403", func() {
		s.mockCommand.EXPECT().RefreshToken(gomock.Any(), "inactive").Return(nil, commands.ErrUserInactive).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]string{"refresh_token": "inactive"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

// ================================================================================
// TestLogout / TestMe
// ================================================================================

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "bearer-token")

	s.Equal(http.StatusNoContent, rec.Code)
	cleared := findCookie(rec.Result().Cookies(), cookie.AccessTokenCookieName)
	s.Require().NotNil(cleared)
	s.Empty(cleared.Value)
	s.Negative(cleared.MaxAge)
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("基本成功ケース", func() {
		view := builder.NewUserBuilder().WithID(s.userID).BuildReadModel()
		s.mockUsers.EXPECT().GetCurrentUser(gomock.Any(), s.userID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.userID, body.ID)
		s.Equal("monthly", body.SubscriptionType)
	})

	s.Run("ユーザー削除済み: 404", func() {
		s.mockUsers.EXPECT().GetCurrentUser(gomock.Any(), s.userID).Return(nil, queries.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})

	s.Run("無効化済み: 403", func() {
		s.mockUsers.EXPECT().GetCurrentUser(gomock.Any(), s.userID).Return(nil, queries.ErrUserInactive).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("未認証: 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}
