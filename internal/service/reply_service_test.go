package service

import (
	"ReplyKing/internal/model"
	"context"
	"errors"
	"testing"
	"time"
)

func newReplyServiceForTest() (ReplyService, *fakeReplyRepo, *fakeCommentRepo, *fakeAnalyticsRepo) {
	replyRepo := newFakeReplyRepo()
	commentRepo := newFakeCommentRepo()
	analyticsRepo := &fakeAnalyticsRepo{}
	svc := NewReplyService(replyRepo, commentRepo, analyticsRepo)
	return svc, replyRepo, commentRepo, analyticsRepo
}

func seedCommentWithReply(replyRepo *fakeReplyRepo, commentRepo *fakeCommentRepo, accountID uint64) *model.Reply {
	comment := &model.Comment{AccountID: accountID, ExternalCommentID: "c1", Text: "hello", CommentedAt: time.Now()}
	reply := &model.Reply{ReplyText: "感谢支持", Status: model.ReplyStatusPending}
	_ = commentRepo.CreateCommentWithReply(context.Background(), comment, reply)
	replyRepo.replies[reply.ID] = reply
	return reply
}

func TestApproveReplyNotFound(t *testing.T) {
	svc, _, _, _ := newReplyServiceForTest()

	err := svc.ApproveReply(context.Background(), 42)
	if !errors.Is(err, ErrReplyNotFound) {
		t.Fatalf("expected ErrReplyNotFound, got %v", err)
	}
}

func TestApproveReplyMarksPosted(t *testing.T) {
	svc, replyRepo, commentRepo, analyticsRepo := newReplyServiceForTest()
	reply := seedCommentWithReply(replyRepo, commentRepo, 7)

	if err := svc.ApproveReply(context.Background(), reply.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if reply.Status != model.ReplyStatusPosted {
		t.Fatalf("expected posted status, got %s", reply.Status)
	}
	if reply.PostedAt == nil {
		t.Fatal("expected posted_at to be set")
	}
	if len(analyticsRepo.repliesSent) != 1 || analyticsRepo.repliesSent[0] != 7 {
		t.Fatalf("expected replies_sent increment for account 7, got %v", analyticsRepo.repliesSent)
	}
}

func TestApproveReplyTwiceFails(t *testing.T) {
	svc, replyRepo, commentRepo, _ := newReplyServiceForTest()
	reply := seedCommentWithReply(replyRepo, commentRepo, 7)

	if err := svc.ApproveReply(context.Background(), reply.ID); err != nil {
		t.Fatalf("first approve failed: %v", err)
	}
	err := svc.ApproveReply(context.Background(), reply.ID)
	if !errors.Is(err, ErrReplyAlreadyPosted) {
		t.Fatalf("expected ErrReplyAlreadyPosted, got %v", err)
	}
	if len(replyRepo.posted) != 1 {
		t.Fatalf("reply should only be posted once, got %d", len(replyRepo.posted))
	}
}

func TestGetPendingRepliesFiltersPosted(t *testing.T) {
	svc, replyRepo, commentRepo, _ := newReplyServiceForTest()
	r1 := seedCommentWithReply(replyRepo, commentRepo, 7)
	_ = seedCommentWithReply(replyRepo, commentRepo, 7)

	if err := svc.ApproveReply(context.Background(), r1.ID); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	pending, err := svc.GetPendingReplies(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected 1 pending reply, got %d", len(pending))
	}
	if pending[0].Status != model.ReplyStatusPending {
		t.Fatalf("expected pending status, got %s", pending[0].Status)
	}
}
