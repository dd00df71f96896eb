package service

import (
	"ReplyKing/internal/model"
	"ReplyKing/internal/pkg/instagram"
	"ReplyKing/internal/pkg/llm"
	"ReplyKing/internal/repository"
	"context"
	"sort"
	"time"
)

type fakeAccountRepo struct {
	accounts map[uint64]*model.Account
	nextID   uint64
	updated  []*model.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[uint64]*model.Account), nextID: 1}
}

func (f *fakeAccountRepo) GetAccountById(_ context.Context, id uint64) (*model.Account, error) {
	return f.accounts[id], nil
}

func (f *fakeAccountRepo) GetAccountByExternalUserId(_ context.Context, externalUserID string) (*model.Account, error) {
	for _, a := range f.accounts {
		if a.ExternalUserID == externalUserID {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) GetAllAccounts(_ context.Context) ([]*model.Account, error) {
	all := make([]*model.Account, 0, len(f.accounts))
	for _, a := range f.accounts {
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (f *fakeAccountRepo) GetActiveAccounts(_ context.Context) ([]*model.Account, error) {
	all, _ := f.GetAllAccounts(context.Background())
	active := make([]*model.Account, 0, len(all))
	for _, a := range all {
		if a.IsActive {
			active = append(active, a)
		}
	}
	return active, nil
}

func (f *fakeAccountRepo) CreateAccount(_ context.Context, account *model.Account) error {
	account.ID = f.nextID
	f.nextID++
	f.accounts[account.ID] = account
	return nil
}

func (f *fakeAccountRepo) UpdateAccount(_ context.Context, account *model.Account) error {
	f.accounts[account.ID] = account
	account.IsActive = true
	f.updated = append(f.updated, account)
	return nil
}

type fakeCommentRepo struct {
	comments   []*model.Comment
	replies    []*model.Reply
	nextID     uint64
	repliedIDs []uint64
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{nextID: 1}
}

func (f *fakeCommentRepo) GetCommentById(_ context.Context, id uint64) (*model.Comment, error) {
	for _, c := range f.comments {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCommentRepo) GetCommentByExternalId(_ context.Context, externalCommentID string) (*model.Comment, error) {
	for _, c := range f.comments {
		if c.ExternalCommentID == externalCommentID {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCommentRepo) GetCommentsByAccountId(_ context.Context, accountID uint64, limit int) ([]*model.Comment, error) {
	result := make([]*model.Comment, 0)
	for _, c := range f.comments {
		if c.AccountID == accountID {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CommentedAt.After(result[j].CommentedAt) })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (f *fakeCommentRepo) CreateCommentWithReply(_ context.Context, comment *model.Comment, reply *model.Reply) error {
	comment.ID = f.nextID
	f.nextID++
	f.comments = append(f.comments, comment)

	reply.ID = f.nextID
	f.nextID++
	reply.CommentID = comment.ID
	f.replies = append(f.replies, reply)
	comment.Reply = reply
	return nil
}

func (f *fakeCommentRepo) UpdateCommentIsReplied(_ context.Context, id uint64, isReplied bool) error {
	for _, c := range f.comments {
		if c.ID == id {
			c.IsReplied = isReplied
		}
	}
	f.repliedIDs = append(f.repliedIDs, id)
	return nil
}

type fakeReplyRepo struct {
	replies map[uint64]*model.Reply
	posted  []uint64
}

func newFakeReplyRepo() *fakeReplyRepo {
	return &fakeReplyRepo{replies: make(map[uint64]*model.Reply)}
}

func (f *fakeReplyRepo) GetReplyById(_ context.Context, id uint64) (*model.Reply, error) {
	return f.replies[id], nil
}

func (f *fakeReplyRepo) GetPendingByAccountId(_ context.Context, _ uint64) ([]*repository.PendingReply, error) {
	pending := make([]*repository.PendingReply, 0)
	for _, r := range f.replies {
		if r.Status == model.ReplyStatusPending {
			pending = append(pending, &repository.PendingReply{Reply: *r})
		}
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].ID < pending[j].ID })
	return pending, nil
}

func (f *fakeReplyRepo) MarkReplyPosted(_ context.Context, replyID uint64, _ uint64, postedAt time.Time) error {
	r := f.replies[replyID]
	r.Status = model.ReplyStatusPosted
	r.PostedAt = &postedAt
	f.posted = append(f.posted, replyID)
	return nil
}

type fakeTemplateRepo struct {
	templates []*model.Template
	nextID    uint64
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{nextID: 1}
}

func (f *fakeTemplateRepo) GetActiveTemplates(_ context.Context, accountID uint64, category string, limit int) ([]*model.Template, error) {
	matched := make([]*model.Template, 0)
	for _, t := range f.templates {
		if t.AccountID == accountID && t.Category == category && t.IsActive {
			matched = append(matched, t)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].UsageCount < matched[j].UsageCount })
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (f *fakeTemplateRepo) GetTemplatesByAccountId(_ context.Context, accountID uint64) ([]*model.Template, error) {
	matched := make([]*model.Template, 0)
	for _, t := range f.templates {
		if t.AccountID == accountID {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

func (f *fakeTemplateRepo) CreateTemplate(_ context.Context, template *model.Template) error {
	template.ID = f.nextID
	f.nextID++
	f.templates = append(f.templates, template)
	return nil
}

type dailyIncrement struct {
	accountID uint64
	date      time.Time
	sentiment string
}

type fakeAnalyticsRepo struct {
	daily       []dailyIncrement
	repliesSent []uint64
	metrics     []*model.DailyAnalytic
}

func (f *fakeAnalyticsRepo) IncrementDaily(_ context.Context, accountID uint64, date time.Time, sentiment string) error {
	f.daily = append(f.daily, dailyIncrement{accountID: accountID, date: date, sentiment: sentiment})
	return nil
}

func (f *fakeAnalyticsRepo) IncrementRepliesSent(_ context.Context, accountID uint64, _ time.Time) error {
	f.repliesSent = append(f.repliesSent, accountID)
	return nil
}

func (f *fakeAnalyticsRepo) GetRecentByAccountId(_ context.Context, _ uint64, _ int) ([]*model.DailyAnalytic, error) {
	return f.metrics, nil
}

type fakeCommentSource struct {
	profile    *instagram.Profile
	profileErr error
	comments   []instagram.Comment
	fetchErr   error
}

func (f *fakeCommentSource) GetUserProfile(_ context.Context, _ string) (*instagram.Profile, error) {
	return f.profile, f.profileErr
}

func (f *fakeCommentSource) GetAllRecentComments(_ context.Context, _ string) ([]instagram.Comment, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.comments, nil
}

type fakeReplyGenerator struct {
	sentiments    map[string]*llm.SentimentResult
	replyText     string
	templateCalls [][]string
}

func (f *fakeReplyGenerator) AnalyzeSentiment(_ context.Context, text string) *llm.SentimentResult {
	if s, ok := f.sentiments[text]; ok {
		return s
	}
	return llm.GetNeutralSentiment()
}

func (f *fakeReplyGenerator) GenerateReply(_ context.Context, _ string, sentiment *llm.SentimentResult, _ *llm.ReplyContext) *llm.ReplyResult {
	category := sentiment.Category
	if category == "" {
		category = "其他"
	}
	return &llm.ReplyResult{Text: f.replyText, Category: category}
}

func (f *fakeReplyGenerator) GenerateReplyFromTemplates(_ context.Context, _ string, templates []string, _ *llm.SentimentResult) string {
	f.templateCalls = append(f.templateCalls, templates)
	if len(templates) > 0 {
		return templates[0]
	}
	return f.replyText
}
