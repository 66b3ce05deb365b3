package collaborative

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"slotcheck/internal/scheduling/models"
	"slotcheck/internal/scheduling/service/basic"
)

const fixedNow = models.Timestamp(1_700_000_000_000)

func mustWindow(t require.TestingT, start, end models.Timestamp) models.TimeWindow {
	w, err := models.NewTimeWindow(start, end)
	require.NoError(t, err)
	return w
}

type CollaborativeServiceSuite struct {
	suite.Suite
	service *Service
}

func TestCollaborativeServiceSuite(t *testing.T) {
	suite.Run(t, new(CollaborativeServiceSuite))
}

func (s *CollaborativeServiceSuite) SetupTest() {
	basicSvc := basic.New(basic.WithClock(func() time.Time {
		return time.UnixMilli(int64(fixedNow))
	}))

	var err error
	s.service, err = New(basicSvc)
	s.Require().NoError(err)
}

func (s *CollaborativeServiceSuite) TestNew() {
	s.Run("nil basic validator returns error", func() {
		_, err := New(nil)
		s.Error(err)
		s.Contains(err.Error(), "basic validator is required")
	})
}

func (s *CollaborativeServiceSuite) TestEmptyInput() {
	result := s.service.Validate(context.Background(), nil, []models.TimeWindow{
		mustWindow(s.T(), 0, 2_000_000_000_000),
	}, 1_800_000)
	s.Equal(models.Result{models.CodeRequired}, result)
}

func (s *CollaborativeServiceSuite) TestRangeCheck() {
	s.Run("interval inside a window is valid", func() {
		// 30-minute interview fully inside the window
		result := s.service.Validate(context.Background(),
			[]models.Timestamp{1_700_100_000_000},
			[]models.TimeWindow{mustWindow(s.T(), 1_700_050_000_000, 1_700_200_000_000)},
			1_800_000,
		)
		s.Equal(models.Result{models.CodeNone}, result)
	})

	s.Run("duration pushing past window end is out of range", func() {
		result := s.service.Validate(context.Background(),
			[]models.Timestamp{1_700_100_000_000},
			[]models.TimeWindow{mustWindow(s.T(), 1_700_050_000_000, 1_700_101_000_000)},
			1_800_000,
		)
		s.Equal(models.Result{models.CodeOutOfRange}, result)
	})

	s.Run("window bounds are inclusive", func() {
		const start = models.Timestamp(1_700_100_000_000)
		const duration = int64(1_800_000)
		window := mustWindow(s.T(), start, start+models.Timestamp(duration))

		result := s.service.Validate(context.Background(),
			[]models.Timestamp{start}, []models.TimeWindow{window}, duration)
		s.Equal(models.Result{models.CodeNone}, result,
			"slot filling the window exactly end-to-end is valid")

		tight := mustWindow(s.T(), start, start+models.Timestamp(duration)-1)
		result = s.service.Validate(context.Background(),
			[]models.Timestamp{start}, []models.TimeWindow{tight}, duration)
		s.Equal(models.Result{models.CodeOutOfRange}, result,
			"one millisecond past the window end is out of range")
	})

	s.Run("any single window may satisfy the slot", func() {
		result := s.service.Validate(context.Background(),
			[]models.Timestamp{1_700_100_000_000},
			[]models.TimeWindow{
				mustWindow(s.T(), 0, 1_000),
				mustWindow(s.T(), 1_700_050_000_000, 1_700_200_000_000),
			},
			1_800_000,
		)
		s.Equal(models.Result{models.CodeNone}, result)
	})

	s.Run("interval straddling two windows is out of range", func() {
		// each window covers only half of the interview
		result := s.service.Validate(context.Background(),
			[]models.Timestamp{1_700_100_000_000},
			[]models.TimeWindow{
				mustWindow(s.T(), 1_700_050_000_000, 1_700_100_900_000),
				mustWindow(s.T(), 1_700_100_900_000, 1_700_200_000_000),
			},
			1_800_000,
		)
		s.Equal(models.Result{models.CodeOutOfRange}, result)
	})

	s.Run("no windows means nothing is in range", func() {
		result := s.service.Validate(context.Background(),
			[]models.Timestamp{1_700_100_000_000}, nil, 1_800_000)
		s.Equal(models.Result{models.CodeOutOfRange}, result)
	})
}

func (s *CollaborativeServiceSuite) TestNegativeDurationClampsToZero() {
	const ts = models.Timestamp(1_700_100_000_000)

	// a zero-length interview fits a zero-length window exactly at ts
	result := s.service.Validate(context.Background(),
		[]models.Timestamp{ts},
		[]models.TimeWindow{mustWindow(s.T(), ts, ts)},
		-500,
	)
	s.Equal(models.Result{models.CodeNone}, result)
}

func (s *CollaborativeServiceSuite) TestPrecedence() {
	wideOpen := []models.TimeWindow{mustWindow(s.T(), 0, 2_000_000_000_000)}

	s.Run("expired is never rechecked for range", func() {
		// expired and outside every window: expired wins
		result := s.service.Validate(context.Background(),
			[]models.Timestamp{1_699_999_000_000}, nil, 1_800_000)
		s.Equal(models.Result{models.CodeExpired}, result)
	})

	s.Run("duplicate is never rechecked for range", func() {
		result := s.service.Validate(context.Background(),
			[]models.Timestamp{1_700_100_000_000, 1_700_100_030_000}, nil, 1_800_000)
		s.Equal(models.Result{models.CodeDuplicate, models.CodeDuplicate}, result)
	})

	s.Run("mixed batch reports one code per slot", func() {
		result := s.service.Validate(context.Background(),
			[]models.Timestamp{
				1_699_999_000_000, // expired
				1_700_100_000_000, // duplicate with next
				1_700_100_030_000, // duplicate with previous
				1_700_200_000_000, // in range
				2_100_000_000_000, // future but outside windows
			},
			wideOpen,
			1_800_000,
		)
		s.Equal(models.Result{
			models.CodeExpired,
			models.CodeDuplicate,
			models.CodeDuplicate,
			models.CodeNone,
			models.CodeOutOfRange,
		}, result)
	})
}
