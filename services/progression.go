// services/progression.go - XP, streak, badge and milestone rules
package services

import (
	"fmt"
	"strings"
	"time"

	"shovetrainer/models"
)

// SessionFeedback is the derived result of logging a practice session.
type SessionFeedback struct {
	XPEarned       int      `json:"xp_earned"`
	Streak         int      `json:"streak"`
	BadgesUnlocked []string `json:"badges_unlocked"`
	Milestone      *string  `json:"milestone"`
}

const (
	// MaxSessionXP caps the XP a single session can earn.
	MaxSessionXP = 50

	BadgeCleanPop = "Clean Pop"
	BadgeGrinder  = "Grinder"

	cleanPopMinScore   = 60
	grinderMinAttempts = 50
	milestoneDays      = 7

	achievementIcon = "⭐"
)

// BuildFeedback computes the full progression result for a just-logged
// session. history must contain every stored session for the user, including
// the new one. today is the current UTC date; it is injected so callers and
// tests share the same clock.
func BuildFeedback(session *models.PracticeSession, history []models.PracticeSession, today time.Time) SessionFeedback {
	streak := CalculateStreak(history, today)
	badges := CheckBadges(session)

	return SessionFeedback{
		XPEarned:       CalculateXP(session),
		Streak:         streak,
		BadgesUnlocked: badges,
		Milestone:      MilestoneFor(streak),
	}
}

// CalculateXP derives the session XP: a point per 5 minutes, per 10 attempts
// and per 10 score, floored per term and capped at MaxSessionXP.
func CalculateXP(session *models.PracticeSession) int {
	xp := session.DurationMin/5 + session.Attempts/10 + session.TechniqueScore/10
	if xp > MaxSessionXP {
		xp = MaxSessionXP
	}
	return xp
}

// CalculateStreak counts consecutive UTC calendar days ending today with at
// least one session. A day without a session ends the walk, so the streak is
// 0 whenever today itself has none.
func CalculateStreak(history []models.PracticeSession, today time.Time) int {
	if len(history) == 0 {
		// The current session is always stored before this runs.
		return 1
	}

	days := make(map[time.Time]struct{}, len(history))
	for i := range history {
		days[history[i].Day()] = struct{}{}
	}

	today = today.UTC()
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	streak := 0
	for {
		if _, ok := days[day]; !ok {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// CheckBadges evaluates the per-session badge conditions. The conditions are
// independent; zero, one or both badges may be returned.
func CheckBadges(session *models.PracticeSession) []string {
	badges := []string{}
	if session.TechniqueScore >= cleanPopMinScore {
		badges = append(badges, BadgeCleanPop)
	}
	if session.Attempts >= grinderMinAttempts {
		badges = append(badges, BadgeGrinder)
	}
	return badges
}

// MilestoneFor returns the streak milestone message, or nil when the streak
// is not a positive multiple of seven days.
func MilestoneFor(streak int) *string {
	if streak == 0 || streak%milestoneDays != 0 {
		return nil
	}
	msg := fmt.Sprintf("%d-Day Streak!", streak)
	return &msg
}

// AchievementFor builds the unlock record persisted for an awarded badge.
func AchievementFor(userID, badge string, today time.Time) *models.Achievement {
	return &models.Achievement{
		UserID:      userID,
		Key:         strings.ReplaceAll(strings.ToLower(badge), " ", "-"),
		Title:       badge,
		Description: fmt.Sprintf("Unlocked by session on %s", today.UTC().Format("2006-01-02")),
		Icon:        achievementIcon,
	}
}
