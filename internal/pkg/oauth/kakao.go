package oauth

import (
	"WithTheLake/internal/api/config"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

// Profile 第三方返回的用户侧写，字段缺失时保持零值
type Profile struct {
	ProviderID string
	Nickname   string
	Email      *string
	AvatarURL  string
}

// KakaoClient 카카오 OAuth 客户端
type KakaoClient struct {
	client *resty.Client
	cfg    config.OAuthProviderConfig
}

func NewKakaoClient(cfg config.OAuthProviderConfig) *KakaoClient {
	return &KakaoClient{
		client: resty.New().SetTimeout(10 * time.Second),
		cfg:    cfg,
	}
}

type kakaoTokenResp struct {
	AccessToken string `json:"access_token"`
	Error       string `json:"error"`
	ErrorDesc   string `json:"error_description"`
}

type kakaoUserResp struct {
	ID           int64 `json:"id"`
	KakaoAccount struct {
		Email   *string `json:"email"`
		Profile struct {
			Nickname        string `json:"nickname"`
			ProfileImageURL string `json:"profile_image_url"`
		} `json:"profile"`
	} `json:"kakao_account"`
}

// ExchangeCode 授权码换访问令牌
func (s *KakaoClient) ExchangeCode(ctx context.Context, code string) (string, error) {
	var result kakaoTokenResp
	resp, err := s.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type":    "authorization_code",
			"client_id":     s.cfg.ClientID,
			"client_secret": s.cfg.ClientSecret,
			"redirect_uri":  s.cfg.RedirectURI,
			"code":          code,
		}).
		SetResult(&result).
		Post(s.cfg.TokenURL)
	if err != nil {
		return "", fmt.Errorf("kakao token request failed: %w", err)
	}
	if resp.IsError() || result.AccessToken == "" {
		return "", fmt.Errorf("kakao token exchange failed: status %d, error %s", resp.StatusCode(), result.Error)
	}
	return result.AccessToken, nil
}

// GetProfile 拉取用户信息
func (s *KakaoClient) GetProfile(ctx context.Context, accessToken string) (*Profile, error) {
	var result kakaoUserResp
	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&result).
		Get(s.cfg.UserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("kakao userinfo request failed: %w", err)
	}
	if resp.IsError() || result.ID == 0 {
		return nil, fmt.Errorf("kakao userinfo failed: status %d", resp.StatusCode())
	}

	return &Profile{
		ProviderID: strconv.FormatInt(result.ID, 10),
		Nickname:   result.KakaoAccount.Profile.Nickname,
		Email:      result.KakaoAccount.Email,
		AvatarURL:  result.KakaoAccount.Profile.ProfileImageURL,
	}, nil
}
