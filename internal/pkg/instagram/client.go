package instagram

import (
	"ReplyKing/internal/api/config"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// graphTimeLayout Graph API 返回的时间格式
const graphTimeLayout = "2006-01-02T15:04:05-0700"

const defaultMediaLimit = 5

type Client struct {
	httpClient *resty.Client
	mediaLimit int
}

func NewClient(cfg config.InstagramConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20
	}
	mediaLimit := cfg.MediaLimit
	if mediaLimit <= 0 {
		mediaLimit = defaultMediaLimit
	}

	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(timeout) * time.Second)

	return &Client{
		httpClient: httpClient,
		mediaLimit: mediaLimit,
	}
}

// GetUserProfile 获取授权账号的主页信息
func (s *Client) GetUserProfile(ctx context.Context, accessToken string) (*Profile, error) {
	profile := &Profile{}
	errResp := &errorResponse{}

	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"access_token": accessToken,
			"fields":       "id,username,account_type,media_count",
		}).
		SetResult(profile).
		SetError(errResp).
		Get("/me")
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch profile")
	}
	if resp.IsError() {
		return nil, errors.Errorf("failed to fetch profile: %s", errResp.Error.Message)
	}

	return profile, nil
}

// GetRecentComments 获取单条帖子下的评论
func (s *Client) GetRecentComments(ctx context.Context, accessToken string, mediaID string) ([]Comment, error) {
	result := &commentListResponse{}
	errResp := &errorResponse{}

	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"access_token": accessToken,
			"fields":       "id,username,text,timestamp,from",
		}).
		SetResult(result).
		SetError(errResp).
		Get("/" + mediaID + "/comments")
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch comments")
	}
	if resp.IsError() {
		return nil, errors.Errorf("failed to fetch comments: %s", errResp.Error.Message)
	}

	comments := result.Data
	for i := range comments {
		comments[i].PostID = mediaID
		comments[i].CommentedAt = parseGraphTime(comments[i].Timestamp)
		if comments[i].Username == "" {
			comments[i].Username = comments[i].From.Username
		}
	}

	return comments, nil
}

// GetAllRecentComments 聚合最近若干条帖子下的全部评论。
// 单条帖子的评论拉取失败只记录日志，不影响其他帖子。
func (s *Client) GetAllRecentComments(ctx context.Context, accessToken string) ([]Comment, error) {
	mediaList, err := s.getRecentMedia(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	allComments := make([]Comment, 0)
	for _, media := range mediaList {
		comments, err := s.GetRecentComments(ctx, accessToken, media.ID)
		if err != nil {
			log.WarnContext(ctx, "fetch comments for media failed", "media_id", media.ID, "err", err)
			continue
		}
		allComments = append(allComments, comments...)
	}

	return allComments, nil
}

func (s *Client) getRecentMedia(ctx context.Context, accessToken string) ([]Media, error) {
	result := &mediaListResponse{}
	errResp := &errorResponse{}

	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"access_token": accessToken,
			"fields":       "id,caption,media_type,timestamp",
			"limit":        strconv.Itoa(s.mediaLimit),
		}).
		SetResult(result).
		SetError(errResp).
		Get("/me/media")
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch media list")
	}
	if resp.IsError() {
		return nil, errors.Errorf("failed to fetch media list: %s", errResp.Error.Message)
	}

	return result.Data, nil
}

func parseGraphTime(s string) time.Time {
	t, err := time.Parse(graphTimeLayout, s)
	if err != nil {
		return time.Now()
	}
	return t
}
