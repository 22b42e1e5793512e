package analysis

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"policyguard/internal/analysis/mocks"
	"policyguard/internal/analysis/models"
	dErrors "policyguard/pkg/domain-errors"
)

type AnalyzerSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	evaluator *mocks.MockPolicyEvaluator
	analyzer  *Analyzer
}

func TestAnalyzerSuite(t *testing.T) {
	suite.Run(t, new(AnalyzerSuite))
}

func (s *AnalyzerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.evaluator = mocks.NewMockPolicyEvaluator(s.ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.analyzer = NewAnalyzer(s.evaluator, NewPool(5, nil), 100*time.Millisecond, nil, logger)
}

func (s *AnalyzerSuite) TestPreservesSubmissionOrder() {
	privacy := "https://x.com/privacy"
	terms := "https://x.com/terms"

	// The first document finishes last.
	s.evaluator.EXPECT().Evaluate(gomock.Any(), privacy).DoAndReturn(
		func(context.Context, string) (models.Verdict, error) {
			time.Sleep(30 * time.Millisecond)
			return models.Verdict{"Privacy Concerns Detected", "tracking"}, nil
		})
	s.evaluator.EXPECT().Evaluate(gomock.Any(), terms).Return(models.Verdict{models.SafeMarker}, nil)

	verdicts, err := s.analyzer.AnalyzeAll(context.Background(), []string{privacy, terms})
	s.Require().NoError(err)
	s.Equal([]models.Verdict{
		{"Privacy Concerns Detected", "tracking"},
		{models.SafeMarker},
	}, verdicts)
}

func (s *AnalyzerSuite) TestSingleDocument() {
	s.evaluator.EXPECT().Evaluate(gomock.Any(), "https://x.com/terms").Return(models.Verdict{models.SafeMarker}, nil)

	verdicts, err := s.analyzer.AnalyzeAll(context.Background(), []string{"https://x.com/terms"})
	s.Require().NoError(err)
	s.Len(verdicts, 1)
}

func (s *AnalyzerSuite) TestAnyTimeoutFailsTheWholeCall() {
	s.evaluator.EXPECT().Evaluate(gomock.Any(), "https://x.com/privacy").Return(models.Verdict{models.SafeMarker}, nil)
	s.evaluator.EXPECT().Evaluate(gomock.Any(), "https://x.com/terms").DoAndReturn(
		func(ctx context.Context, _ string) (models.Verdict, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	verdicts, err := s.analyzer.AnalyzeAll(context.Background(), []string{"https://x.com/privacy", "https://x.com/terms"})
	s.Nil(verdicts)
	s.True(dErrors.HasCode(err, dErrors.CodeTimeout))
}

func TestAnalyzeAllWithoutURLs(t *testing.T) {
	a := NewAnalyzer(nil, NewPool(1, nil), time.Second, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	verdicts, err := a.AnalyzeAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, verdicts)
}
