package policy_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"policyguard/internal/policy"
	"policyguard/internal/policy/mocks"
	"policyguard/internal/prompts"
)

type SecuritySuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	extractor *mocks.MockMarkupExtractor
	conv      *mocks.MockConversation
	checker   *policy.SecurityChecker
}

func TestSecuritySuite(t *testing.T) {
	suite.Run(t, new(SecuritySuite))
}

func (s *SecuritySuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.extractor = mocks.NewMockMarkupExtractor(s.ctrl)
	s.conv = mocks.NewMockConversation(s.ctrl)
	s.checker = policy.NewSecurityChecker(s.extractor, s.conv, prompts.Default(), 0, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *SecuritySuite) expectTurn(content, reply string) {
	gomock.InOrder(
		s.conv.EXPECT().PostTurn(gomock.Any(), "thread_9", policy.RoleUser, content).Return(nil),
		s.conv.EXPECT().StartRun(gomock.Any(), "thread_9").Return("run", nil),
		s.conv.EXPECT().PollRun(gomock.Any(), "thread_9", "run").Return(policy.RunCompleted, nil),
		s.conv.EXPECT().LatestMessage(gomock.Any(), "thread_9").Return(reply, nil),
	)
}

func (s *SecuritySuite) TestSafePage() {
	s.extractor.EXPECT().ExtractMarkup(gomock.Any(), "https://openai.com").Return(`<a href="/">home</a>`, nil)
	s.conv.EXPECT().CreateSession(gomock.Any()).Return("thread_9", nil)
	s.expectTurn(`<a href="/">home</a>`, policy.SecuritySafeMarker)

	report, err := s.checker.Check(context.Background(), "https://openai.com")
	s.Require().NoError(err)
	s.Equal([]string{"Security Safe!", "", "Safe"}, report)
}

func (s *SecuritySuite) TestConcerningPageGetsThreeAnswers() {
	s.extractor.EXPECT().ExtractMarkup(gomock.Any(), gomock.Any()).Return(`<script src="//evil"></script>`, nil)
	s.conv.EXPECT().CreateSession(gomock.Any()).Return("thread_9", nil)
	s.expectTurn(`<script src="//evil"></script>`, "Security Concerns Detected")
	s.expectTurn("Elaborate", "third-party script")
	s.expectTurn("How is the safety", "Moderate")

	report, err := s.checker.Check(context.Background(), "https://x.example")
	s.Require().NoError(err)
	s.Equal([]string{"Security Concerns Detected", "third-party script", "Moderate"}, report)
}

func (s *SecuritySuite) TestFailures() {
	s.Run("markup fetch", func() {
		s.extractor.EXPECT().ExtractMarkup(gomock.Any(), gomock.Any()).Return("", errors.New("dial tcp: timeout"))
		_, err := s.checker.Check(context.Background(), "https://x.example")
		s.EqualError(err, "dial tcp: timeout")
	})

	s.Run("failed run", func() {
		s.extractor.EXPECT().ExtractMarkup(gomock.Any(), gomock.Any()).Return("<meta>", nil)
		s.conv.EXPECT().CreateSession(gomock.Any()).Return("thread_9", nil)
		s.conv.EXPECT().PostTurn(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.conv.EXPECT().StartRun(gomock.Any(), gomock.Any()).Return("run", nil)
		s.conv.EXPECT().PollRun(gomock.Any(), gomock.Any(), gomock.Any()).Return(policy.RunFailed, nil)

		_, err := s.checker.Check(context.Background(), "https://x.example")
		s.ErrorIs(err, policy.ErrSecurityRunFailed)
	})
}
