package policy_test

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"policyguard/internal/analysis/models"
	"policyguard/internal/policy"
	"policyguard/internal/policy/mocks"
	"policyguard/internal/prompts"
)

const policyText = "We collect your email address and share it with advertisers."

type EngineSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	extractor *mocks.MockTextExtractor
	conv      *mocks.MockConversation
	engine    *policy.Engine
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.extractor = mocks.NewMockTextExtractor(s.ctrl)
	s.conv = mocks.NewMockConversation(s.ctrl)
	s.engine = policy.NewEngine(s.extractor, s.conv, prompts.Default(),
		policy.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}

// expectCycle scripts one post/run/poll cycle ending in final.
func (s *EngineSuite) expectCycle(content string, pending int, final policy.RunStatus, reply string) {
	calls := []any{
		s.conv.EXPECT().PostTurn(gomock.Any(), "thread_1", policy.RoleUser, content).Return(nil),
		s.conv.EXPECT().StartRun(gomock.Any(), "thread_1").Return("run_1", nil),
	}
	for range pending {
		calls = append(calls, s.conv.EXPECT().PollRun(gomock.Any(), "thread_1", "run_1").Return(policy.RunPending, nil))
	}
	calls = append(calls, s.conv.EXPECT().PollRun(gomock.Any(), "thread_1", "run_1").Return(final, nil))
	if final == policy.RunCompleted {
		calls = append(calls, s.conv.EXPECT().LatestMessage(gomock.Any(), "thread_1").Return(reply, nil))
	}
	gomock.InOrder(calls...)
}

func (s *EngineSuite) TestSafeDocumentTakesOneCycle() {
	s.extractor.EXPECT().ExtractText(gomock.Any(), "https://x.com/privacy").Return(policyText, nil)
	s.conv.EXPECT().CreateSession(gomock.Any()).Return("thread_1", nil)
	s.expectCycle(policyText, 2, policy.RunCompleted, models.SafeMarker)

	verdict, err := s.engine.Evaluate(context.Background(), "https://x.com/privacy")
	s.Require().NoError(err)
	s.Equal(models.Verdict{models.SafeMarker}, verdict)
}

func (s *EngineSuite) TestUnsafeDocumentIsElaborated() {
	s.extractor.EXPECT().ExtractText(gomock.Any(), gomock.Any()).Return(policyText, nil)
	s.conv.EXPECT().CreateSession(gomock.Any()).Return("thread_1", nil)
	s.expectCycle(policyText, 0, policy.RunCompleted, "Privacy Concerns Detected")
	s.expectCycle("Elaborate with quote", 1, policy.RunCompleted, `"share it with advertisers"`)

	verdict, err := s.engine.Evaluate(context.Background(), "https://x.com/privacy")
	s.Require().NoError(err)
	s.Equal(models.Verdict{"Privacy Concerns Detected", `"share it with advertisers"`}, verdict)
}

func (s *EngineSuite) TestFailedFirstRun() {
	s.extractor.EXPECT().ExtractText(gomock.Any(), gomock.Any()).Return(policyText, nil)
	s.conv.EXPECT().CreateSession(gomock.Any()).Return("thread_1", nil)
	s.expectCycle(policyText, 1, policy.RunFailed, "")

	verdict, err := s.engine.Evaluate(context.Background(), "https://x.com/privacy")
	s.Require().NoError(err)
	s.Equal(policy.RunFailedVerdict, verdict)
}

func (s *EngineSuite) TestFailedElaborationUsesFallback() {
	s.extractor.EXPECT().ExtractText(gomock.Any(), gomock.Any()).Return(policyText, nil)
	s.conv.EXPECT().CreateSession(gomock.Any()).Return("thread_1", nil)
	s.expectCycle(policyText, 0, policy.RunCompleted, "Privacy Concerns Detected")
	s.expectCycle("Elaborate with quote", 0, policy.RunFailed, "")

	verdict, err := s.engine.Evaluate(context.Background(), "https://x.com/privacy")
	s.Require().NoError(err)
	s.Equal(models.Verdict{"Privacy Concerns Detected", policy.ElaborationFallback}, verdict)
}

func (s *EngineSuite) TestExtractionFailuresSkipTheAssistant() {
	s.Run("extractor error", func() {
		s.extractor.EXPECT().ExtractText(gomock.Any(), gomock.Any()).Return("", errors.New("404 Not Found"))
		verdict, err := s.engine.Evaluate(context.Background(), "https://x.com/privacy")
		s.Require().NoError(err)
		s.Equal(policy.ExtractionFailedVerdict, verdict)
	})

	s.Run("too short", func() {
		s.extractor.EXPECT().ExtractText(gomock.Any(), gomock.Any()).Return("Privacy", nil)
		verdict, err := s.engine.Evaluate(context.Background(), "https://x.com/privacy")
		s.Require().NoError(err)
		s.Equal(policy.ExtractionFailedVerdict, verdict)
	})
}

func (s *EngineSuite) TestLongTextIsTruncated() {
	long := strings.Repeat("é", policy.MaxDocumentChars+500)
	s.extractor.EXPECT().ExtractText(gomock.Any(), gomock.Any()).Return(long, nil)
	s.conv.EXPECT().CreateSession(gomock.Any()).Return("thread_1", nil)
	s.conv.EXPECT().PostTurn(gomock.Any(), "thread_1", policy.RoleUser, gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _, content string) error {
			s.Equal(policy.MaxDocumentChars, len([]rune(content)))
			return nil
		})
	s.conv.EXPECT().StartRun(gomock.Any(), gomock.Any()).Return("run_1", nil)
	s.conv.EXPECT().PollRun(gomock.Any(), gomock.Any(), gomock.Any()).Return(policy.RunCompleted, nil)
	s.conv.EXPECT().LatestMessage(gomock.Any(), gomock.Any()).Return(models.SafeMarker, nil)

	_, err := s.engine.Evaluate(context.Background(), "https://x.com/privacy")
	s.Require().NoError(err)
}

func (s *EngineSuite) TestUnexpectedErrorBecomesVerdict() {
	s.extractor.EXPECT().ExtractText(gomock.Any(), gomock.Any()).Return(policyText, nil)
	s.conv.EXPECT().CreateSession(gomock.Any()).Return("", errors.New("invalid api key"))

	verdict, err := s.engine.Evaluate(context.Background(), "https://x.com/privacy")
	s.Require().NoError(err)
	s.Equal(models.Verdict{"Error analyzing policy", "invalid api key"}, verdict)
}

func (s *EngineSuite) TestDeadlineStopsPolling() {
	engine := policy.NewEngine(s.extractor, s.conv, prompts.Default(),
		policy.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		policy.WithPollInterval(5*time.Millisecond),
	)
	s.extractor.EXPECT().ExtractText(gomock.Any(), gomock.Any()).Return(policyText, nil)
	s.conv.EXPECT().CreateSession(gomock.Any()).Return("thread_1", nil)
	s.conv.EXPECT().PostTurn(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.conv.EXPECT().StartRun(gomock.Any(), gomock.Any()).Return("run_1", nil)
	s.conv.EXPECT().PollRun(gomock.Any(), gomock.Any(), gomock.Any()).Return(policy.RunPending, nil).AnyTimes()

	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Millisecond)
	defer cancel()

	verdict, err := engine.Evaluate(ctx, "https://x.com/privacy")
	s.ErrorIs(err, context.DeadlineExceeded)
	s.Nil(verdict)
}
