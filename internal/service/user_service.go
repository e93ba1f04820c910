package service

import (
	"WithTheLake/internal/api/dto"
	"WithTheLake/internal/model"
	"WithTheLake/internal/pkg/consts"
	"WithTheLake/internal/pkg/oauth"
	"WithTheLake/internal/pkg/redis"
	"WithTheLake/internal/pkg/security"
	"WithTheLake/internal/repository"
	"context"
	log "log/slog"
)

const ProviderKakao = "kakao"

// OAuthProvider 第三方登录提供方
type OAuthProvider interface {
	ExchangeCode(ctx context.Context, code string) (string, error)
	GetProfile(ctx context.Context, accessToken string) (*oauth.Profile, error)
}

type UserService interface {
	// LoginWithKakao OAuth 回调：授权码换令牌，按 provider+uid 找建用户并回填缺失侧写
	LoginWithKakao(ctx context.Context, code string) (*dto.LoginResultDTO, error)
	// AdminLogin 后台账号密码登录，仅 ADMIN 角色可用
	AdminLogin(ctx context.Context, req *dto.AdminLoginDTO) (*dto.LoginResultDTO, error)
	// Logout 将当前 Token 签名拉黑到过期
	Logout(ctx context.Context, token string) error
	GetUser(ctx context.Context, userID uint64) (*dto.UserDTO, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepo
	kakao    OAuthProvider
}

func NewUserService(userRepo repository.UserRepo, kakao OAuthProvider) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		kakao:    kakao,
	}
}

func (s *userServiceImpl) LoginWithKakao(ctx context.Context, code string) (*dto.LoginResultDTO, error) {
	if code == "" {
		return nil, ErrOAuthCodeInvalid
	}

	accessToken, err := s.kakao.ExchangeCode(ctx, code)
	if err != nil {
		log.WarnContext(ctx, "카카오 로그인-授权码交换失败", "err", err)
		return nil, ErrOAuthCodeInvalid
	}
	profile, err := s.kakao.GetProfile(ctx, accessToken)
	if err != nil {
		log.WarnContext(ctx, "카카오 로그인-用户信息获取失败", "err", err)
		return nil, ErrOAuthCodeInvalid
	}

	user, err := s.userRepo.GetUserByProvider(ctx, ProviderKakao, profile.ProviderID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		user = &model.User{
			Provider:   ProviderKakao,
			ProviderID: profile.ProviderID,
			Nickname:   profile.Nickname,
			Email:      profile.Email,
			AvatarURL:  profile.AvatarURL,
			Role:       consts.RoleUser,
		}
		if user.AvatarURL == "" {
			user.AvatarURL = consts.DefaultAvatarURL
		}
		if err = s.userRepo.CreateUser(ctx, user); err != nil {
			return nil, err
		}
	} else if s.backfillProfile(user, profile) {
		// 只补缺失字段，不覆盖用户已有资料
		if err = s.userRepo.UpdateUser(ctx, user); err != nil {
			log.WarnContext(ctx, "카카오 로그인-侧写回填失败", "userID", user.ID, "err", err)
		}
	}

	return s.issueToken(user)
}

// backfillProfile 返回是否有字段被补全
func (s *userServiceImpl) backfillProfile(user *model.User, profile *oauth.Profile) bool {
	changed := false
	if user.Nickname == "" && profile.Nickname != "" {
		user.Nickname = profile.Nickname
		changed = true
	}
	if user.Email == nil && profile.Email != nil {
		user.Email = profile.Email
		changed = true
	}
	if user.AvatarURL == "" && profile.AvatarURL != "" {
		user.AvatarURL = profile.AvatarURL
		changed = true
	}
	return changed
}

func (s *userServiceImpl) AdminLogin(ctx context.Context, req *dto.AdminLoginDTO) (*dto.LoginResultDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Password == nil {
		return nil, ErrUsernameNotFound
	}
	if user.Role != consts.RoleAdmin {
		return nil, UnauthorizedError
	}
	if err = security.CheckPasswordHash(req.Password, *user.Password); err != nil {
		return nil, ErrPasswordIncorrect
	}

	return s.issueToken(user)
}

func (s *userServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, consts.AuthCheckedKey+signature, true, security.JWTExpirationTime)
}

func (s *userServiceImpl) GetUser(ctx context.Context, userID uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return toUserDTO(user), nil
}

func (s *userServiceImpl) issueToken(user *model.User) (*dto.LoginResultDTO, error) {
	token, err := security.GenerateToken(user.ID, []string{user.Role})
	if err != nil {
		return nil, err
	}
	return &dto.LoginResultDTO{
		Token: token,
		User:  toUserDTO(user),
	}, nil
}

func toUserDTO(user *model.User) *dto.UserDTO {
	return &dto.UserDTO{
		ID:        user.ID,
		Nickname:  user.Nickname,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
		Role:      user.Role,
	}
}
