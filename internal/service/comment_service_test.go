package service

import (
	"ReplyKing/internal/model"
	"ReplyKing/internal/pkg/instagram"
	"ReplyKing/internal/pkg/llm"
	"context"
	"errors"
	"testing"
	"time"
)

func newCommentServiceForTest() (CommentService, *fakeAccountRepo, *fakeCommentRepo, *fakeTemplateRepo, *fakeAnalyticsRepo, *fakeCommentSource, *fakeReplyGenerator) {
	accountRepo := newFakeAccountRepo()
	commentRepo := newFakeCommentRepo()
	templateRepo := newFakeTemplateRepo()
	analyticsRepo := &fakeAnalyticsRepo{}
	source := &fakeCommentSource{}
	generator := &fakeReplyGenerator{
		sentiments: make(map[string]*llm.SentimentResult),
		replyText:  "感谢支持",
	}
	svc := NewCommentService(accountRepo, commentRepo, templateRepo, analyticsRepo, source, generator)
	return svc, accountRepo, commentRepo, templateRepo, analyticsRepo, source, generator
}

func TestProcessNewCommentsAccountMissing(t *testing.T) {
	svc, _, _, _, _, _, _ := newCommentServiceForTest()

	_, err := svc.ProcessNewComments(context.Background(), 99)
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestProcessNewCommentsAccountInactive(t *testing.T) {
	svc, accountRepo, _, _, _, _, _ := newCommentServiceForTest()
	_ = accountRepo.CreateAccount(context.Background(), &model.Account{ExternalUserID: "u1", IsActive: false})

	_, err := svc.ProcessNewComments(context.Background(), 1)
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound for inactive account, got %v", err)
	}
}

func TestProcessNewCommentsFetchError(t *testing.T) {
	svc, accountRepo, _, _, _, source, _ := newCommentServiceForTest()
	_ = accountRepo.CreateAccount(context.Background(), &model.Account{ExternalUserID: "u1", IsActive: true})
	source.fetchErr = errors.New("graph api down")

	_, err := svc.ProcessNewComments(context.Background(), 1)
	if err == nil {
		t.Fatal("expected fetch error to propagate")
	}
}

func TestProcessNewCommentsStoresCommentAndDraft(t *testing.T) {
	svc, accountRepo, commentRepo, _, analyticsRepo, source, generator := newCommentServiceForTest()
	_ = accountRepo.CreateAccount(context.Background(), &model.Account{ExternalUserID: "u1", IsActive: true})

	now := time.Now()
	source.comments = []instagram.Comment{
		{ID: "c1", PostID: "p1", Username: "alice", Text: "这个多少钱", CommentedAt: now},
		{ID: "c2", PostID: "p1", Username: "bob", Text: "太好看了", CommentedAt: now},
	}
	generator.sentiments["这个多少钱"] = &llm.SentimentResult{Sentiment: "neutral", Score: 0.5, Category: "购买咨询"}
	generator.sentiments["太好看了"] = &llm.SentimentResult{Sentiment: "positive", Score: 0.9, Category: "夸赞"}

	newCount, err := svc.ProcessNewComments(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if newCount != 2 {
		t.Fatalf("expected 2 new comments, got %d", newCount)
	}
	if len(commentRepo.comments) != 2 || len(commentRepo.replies) != 2 {
		t.Fatalf("expected 2 comments and 2 replies, got %d/%d", len(commentRepo.comments), len(commentRepo.replies))
	}

	first := commentRepo.comments[0]
	if first.ExternalCommentID != "c1" || first.Sentiment != "neutral" || first.PostID != "p1" {
		t.Fatalf("comment not stored as expected: %+v", first)
	}
	if commentRepo.replies[0].Status != model.ReplyStatusPending {
		t.Fatalf("draft should be pending, got %s", commentRepo.replies[0].Status)
	}

	if len(analyticsRepo.daily) != 2 {
		t.Fatalf("expected 2 daily increments, got %d", len(analyticsRepo.daily))
	}
	if analyticsRepo.daily[1].sentiment != "positive" {
		t.Fatalf("expected positive increment, got %s", analyticsRepo.daily[1].sentiment)
	}
	wantDate := getMidnight(time.Now())
	if !analyticsRepo.daily[0].date.Equal(wantDate) {
		t.Fatalf("expected metric date %v, got %v", wantDate, analyticsRepo.daily[0].date)
	}
}

func TestProcessNewCommentsIdempotent(t *testing.T) {
	svc, accountRepo, commentRepo, _, _, source, _ := newCommentServiceForTest()
	_ = accountRepo.CreateAccount(context.Background(), &model.Account{ExternalUserID: "u1", IsActive: true})
	source.comments = []instagram.Comment{
		{ID: "c1", PostID: "p1", Username: "alice", Text: "hello", CommentedAt: time.Now()},
	}

	if _, err := svc.ProcessNewComments(context.Background(), 1); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	newCount, err := svc.ProcessNewComments(context.Background(), 1)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if newCount != 0 {
		t.Fatalf("second run should insert nothing, got %d", newCount)
	}
	if len(commentRepo.comments) != 1 {
		t.Fatalf("expected 1 stored comment, got %d", len(commentRepo.comments))
	}
}

func TestProcessNewCommentsUsesTemplates(t *testing.T) {
	svc, accountRepo, commentRepo, templateRepo, _, source, generator := newCommentServiceForTest()
	_ = accountRepo.CreateAccount(context.Background(), &model.Account{ExternalUserID: "u1", IsActive: true})

	// 同类目四条模板，usage_count 不同，只应取最少使用的前三条
	templateRepo.templates = []*model.Template{
		{ID: 1, AccountID: 1, Category: "购买咨询", Template: "t-high", IsActive: true, UsageCount: 9},
		{ID: 2, AccountID: 1, Category: "购买咨询", Template: "t-low", IsActive: true, UsageCount: 1},
		{ID: 3, AccountID: 1, Category: "购买咨询", Template: "t-mid", IsActive: true, UsageCount: 4},
		{ID: 4, AccountID: 1, Category: "购买咨询", Template: "t-off", IsActive: false, UsageCount: 0},
	}

	source.comments = []instagram.Comment{
		{ID: "c1", PostID: "p1", Username: "alice", Text: "怎么买", CommentedAt: time.Now()},
	}
	generator.sentiments["怎么买"] = &llm.SentimentResult{Sentiment: "neutral", Score: 0.6, Category: "购买咨询"}

	if _, err := svc.ProcessNewComments(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(generator.templateCalls) != 1 {
		t.Fatalf("expected template-guided generation, calls=%d", len(generator.templateCalls))
	}
	got := generator.templateCalls[0]
	want := []string{"t-low", "t-mid", "t-high"}
	if len(got) != len(want) {
		t.Fatalf("expected %d templates, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("template order mismatch at %d: got %s want %s", i, got[i], want[i])
		}
	}

	if commentRepo.replies[0].Category != "购买咨询" {
		t.Fatalf("template draft should keep comment category, got %s", commentRepo.replies[0].Category)
	}
}

func TestProcessNewCommentsDefaultCategory(t *testing.T) {
	svc, accountRepo, _, templateRepo, _, source, generator := newCommentServiceForTest()
	_ = accountRepo.CreateAccount(context.Background(), &model.Account{ExternalUserID: "u1", IsActive: true})

	templateRepo.templates = []*model.Template{
		{ID: 1, AccountID: 1, Category: "日常交流", Template: "t-default", IsActive: true},
	}
	source.comments = []instagram.Comment{
		{ID: "c1", PostID: "p1", Username: "alice", Text: "hi", CommentedAt: time.Now()},
	}
	// 分类为空时应回退到默认类目去找模板
	generator.sentiments["hi"] = &llm.SentimentResult{Sentiment: "neutral", Score: 0.5, Category: ""}

	if _, err := svc.ProcessNewComments(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(generator.templateCalls) != 1 || generator.templateCalls[0][0] != "t-default" {
		t.Fatalf("expected default-category template to be used, calls=%v", generator.templateCalls)
	}
}

func TestGetCommentsMapsReply(t *testing.T) {
	svc, accountRepo, commentRepo, _, _, source, _ := newCommentServiceForTest()
	_ = accountRepo.CreateAccount(context.Background(), &model.Account{ExternalUserID: "u1", IsActive: true})
	source.comments = []instagram.Comment{
		{ID: "c1", PostID: "p1", Username: "alice", Text: "hello", CommentedAt: time.Now()},
	}
	if _, err := svc.ProcessNewComments(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, err := svc.GetComments(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(items))
	}
	if items[0].Reply == nil || items[0].Reply.ID != commentRepo.replies[0].ID {
		t.Fatalf("expected attached reply draft, got %+v", items[0].Reply)
	}
}
