package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shovetrainer/models"
)

var testToday = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func sessionOn(t time.Time) models.PracticeSession {
	return models.PracticeSession{UserID: "u1", PerformedAt: &t}
}

func daysAgo(n int) time.Time {
	return testToday.AddDate(0, 0, -n)
}

func TestCalculateXP(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		score    int
		attempts int
		want     int
	}{
		{"worked example", 25, 70, 60, 18}, // 5 + 6 + 7
		{"floor division per term", 9, 9, 9, 1},
		{"minimum inputs", 1, 0, 1, 0},
		{"capped at 50", 240, 100, 500, 50},
		{"just below cap", 100, 100, 190, 49},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &models.PracticeSession{
				DurationMin:    tt.duration,
				TechniqueScore: tt.score,
				Attempts:       tt.attempts,
			}
			assert.Equal(t, tt.want, CalculateXP(s))
		})
	}
}

func TestCalculateXPMonotonic(t *testing.T) {
	base := &models.PracticeSession{DurationMin: 30, TechniqueScore: 40, Attempts: 50}
	baseXP := CalculateXP(base)

	more := *base
	more.DurationMin = 60
	assert.GreaterOrEqual(t, CalculateXP(&more), baseXP)

	more = *base
	more.Attempts = 200
	assert.GreaterOrEqual(t, CalculateXP(&more), baseXP)

	more = *base
	more.TechniqueScore = 90
	assert.GreaterOrEqual(t, CalculateXP(&more), baseXP)

	assert.LessOrEqual(t, baseXP, MaxSessionXP)
	assert.GreaterOrEqual(t, baseXP, 0)
}

func TestCalculateStreak(t *testing.T) {
	t.Run("three consecutive days ending today", func(t *testing.T) {
		history := []models.PracticeSession{
			sessionOn(daysAgo(0)),
			sessionOn(daysAgo(1)),
			sessionOn(daysAgo(2)),
		}
		assert.Equal(t, 3, CalculateStreak(history, testToday))
	})

	t.Run("gap yesterday resets to one", func(t *testing.T) {
		history := []models.PracticeSession{
			sessionOn(daysAgo(0)),
			sessionOn(daysAgo(2)),
		}
		assert.Equal(t, 1, CalculateStreak(history, testToday))
	})

	t.Run("no session today means zero", func(t *testing.T) {
		history := []models.PracticeSession{
			sessionOn(daysAgo(1)),
			sessionOn(daysAgo(2)),
		}
		assert.Equal(t, 0, CalculateStreak(history, testToday))
	})

	t.Run("multiple sessions on the same day count once", func(t *testing.T) {
		history := []models.PracticeSession{
			sessionOn(daysAgo(0)),
			sessionOn(daysAgo(0).Add(2 * time.Hour)),
			sessionOn(daysAgo(1)),
		}
		assert.Equal(t, 2, CalculateStreak(history, testToday))
	})

	t.Run("empty history defaults to one", func(t *testing.T) {
		assert.Equal(t, 1, CalculateStreak(nil, testToday))
	})

	t.Run("created_at used when performed_at absent", func(t *testing.T) {
		history := []models.PracticeSession{
			{UserID: "u1", CreatedAt: testToday},
		}
		assert.Equal(t, 1, CalculateStreak(history, testToday))
	})
}

func TestCheckBadges(t *testing.T) {
	badges := CheckBadges(&models.PracticeSession{TechniqueScore: 60, Attempts: 50})
	assert.Equal(t, []string{BadgeCleanPop, BadgeGrinder}, badges)

	badges = CheckBadges(&models.PracticeSession{TechniqueScore: 59, Attempts: 49})
	assert.Empty(t, badges)
	assert.NotNil(t, badges)

	badges = CheckBadges(&models.PracticeSession{TechniqueScore: 85, Attempts: 10})
	assert.Equal(t, []string{BadgeCleanPop}, badges)

	badges = CheckBadges(&models.PracticeSession{TechniqueScore: 20, Attempts: 120})
	assert.Equal(t, []string{BadgeGrinder}, badges)
}

func TestMilestoneFor(t *testing.T) {
	require.Nil(t, MilestoneFor(0))
	require.Nil(t, MilestoneFor(3))
	require.Nil(t, MilestoneFor(6))
	require.Nil(t, MilestoneFor(8))

	m := MilestoneFor(7)
	require.NotNil(t, m)
	assert.Equal(t, "7-Day Streak!", *m)

	m = MilestoneFor(14)
	require.NotNil(t, m)
	assert.Equal(t, "14-Day Streak!", *m)
}

func TestBuildFeedbackFirstSession(t *testing.T) {
	// First-ever session performed today: xp 18, streak 1, both badges, no
	// milestone.
	session := sessionOn(testToday)
	session.DurationMin = 25
	session.TechniqueScore = 70
	session.Attempts = 60

	feedback := BuildFeedback(&session, []models.PracticeSession{session}, testToday)

	assert.Equal(t, 18, feedback.XPEarned)
	assert.Equal(t, 1, feedback.Streak)
	assert.Equal(t, []string{BadgeCleanPop, BadgeGrinder}, feedback.BadgesUnlocked)
	assert.Nil(t, feedback.Milestone)
}

func TestBuildFeedbackWeekMilestone(t *testing.T) {
	history := make([]models.PracticeSession, 0, 7)
	for i := 0; i < 7; i++ {
		history = append(history, sessionOn(daysAgo(i)))
	}
	session := history[0]
	session.DurationMin = 10
	session.TechniqueScore = 30
	session.Attempts = 5

	feedback := BuildFeedback(&session, history, testToday)

	assert.Equal(t, 7, feedback.Streak)
	require.NotNil(t, feedback.Milestone)
	assert.Equal(t, "7-Day Streak!", *feedback.Milestone)
	assert.Empty(t, feedback.BadgesUnlocked)
}

func TestAchievementFor(t *testing.T) {
	a := AchievementFor("u1", BadgeCleanPop, testToday)

	assert.Equal(t, "u1", a.UserID)
	assert.Equal(t, "clean-pop", a.Key)
	assert.Equal(t, "Clean Pop", a.Title)
	assert.Equal(t, "Unlocked by session on 2025-06-15", a.Description)
	assert.Equal(t, "⭐", a.Icon)
}
