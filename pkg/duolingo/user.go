package duolingo

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// UserInfo is the public profile of the account
type UserInfo struct {
	ID                     int64
	Username               string
	Fullname               string
	Bio                    string
	Location               string
	Avatar                 string
	Created                string
	ContributionPoints     int
	LearningLanguage       string // abbreviation, e.g. "es"
	LearningLanguageString string // display name, e.g. "Spanish"
	UILanguage             string
	NumFollowing           int
	NumFollowers           int
	Languages              []string
}

// UserSettings holds account flags
type UserSettings struct {
	Deactivated  bool
	IsFollowerBy bool
	IsFollowing  bool
}

// StreakInfo describes the daily streak
type StreakInfo struct {
	SiteStreak          int
	DailyGoal           int
	StreakExtendedToday bool
}

// XPProgress is the daily xp progress since local midnight
type XPProgress struct {
	XPGoal       int
	XPToday      int
	LessonsToday int
}

// userData is the response of /users/<username>
type userData struct {
	ID                     int64  `json:"id"`
	Username               string `json:"username"`
	Fullname               string `json:"fullname"`
	Bio                    string `json:"bio"`
	Location               string `json:"location"`
	Avatar                 string `json:"avatar"`
	Created                string `json:"created"`
	ContributionPoints     int    `json:"contribution_points"`
	LearningLanguage       string `json:"learning_language"`
	LearningLanguageString string `json:"learning_language_string"`
	UILanguage             string `json:"ui_language"`
	NumFollowing           int    `json:"num_following"`
	NumFollowers           int    `json:"num_followers"`
	SiteStreak             int    `json:"site_streak"`
	StreakExtendedToday    bool   `json:"streak_extended_today"`
	DailyGoal              int    `json:"daily_goal"`
	Deactivated            bool   `json:"deactivated"`
	IsFollowerBy           bool   `json:"is_follower_by"`
	IsFollowing            bool   `json:"is_following"`
	Languages              []struct {
		Language string `json:"language"`
		Learning bool   `json:"learning"`
	} `json:"languages"`
	TrackingProperties struct {
		NumItemStreakFreeze int `json:"num_item_streak_freeze"`
	} `json:"tracking_properties"`
}

// userData fetches the full user document, never cached
func (c *Client) userData(ctx context.Context) (*userData, error) {
	var res userData
	if err := c.getJSON(ctx, "/users/"+url.PathEscape(c.opts.Username), &res); err != nil {
		return nil, fmt.Errorf("user data: %w", err)
	}
	return &res, nil
}

func (c *Client) loggedInUser(ctx context.Context) (*userData, error) {
	if c.userID == 0 {
		return nil, ErrNotLoggedIn
	}
	return c.userData(ctx)
}

// UserInfo returns the account profile
func (c *Client) UserInfo(ctx context.Context) (UserInfo, error) {
	u, err := c.loggedInUser(ctx)
	if err != nil {
		return UserInfo{}, err
	}
	res := UserInfo{
		ID:                     u.ID,
		Username:               u.Username,
		Fullname:               u.Fullname,
		Bio:                    u.Bio,
		Location:               u.Location,
		Avatar:                 u.Avatar,
		Created:                u.Created,
		ContributionPoints:     u.ContributionPoints,
		LearningLanguage:       u.LearningLanguage,
		LearningLanguageString: u.LearningLanguageString,
		UILanguage:             u.UILanguage,
		NumFollowing:           u.NumFollowing,
		NumFollowers:           u.NumFollowers,
	}
	for _, l := range u.Languages {
		if l.Learning {
			res.Languages = append(res.Languages, l.Language)
		}
	}
	return res, nil
}

// Settings returns account flags
func (c *Client) Settings(ctx context.Context) (UserSettings, error) {
	u, err := c.loggedInUser(ctx)
	if err != nil {
		return UserSettings{}, err
	}
	return UserSettings{Deactivated: u.Deactivated, IsFollowerBy: u.IsFollowerBy, IsFollowing: u.IsFollowing}, nil
}

// StreakInfo returns the current streak. StreakExtendedToday says nothing about owned freezes.
func (c *Client) StreakInfo(ctx context.Context) (StreakInfo, error) {
	u, err := c.loggedInUser(ctx)
	if err != nil {
		return StreakInfo{}, err
	}
	return StreakInfo{SiteStreak: u.SiteStreak, DailyGoal: u.DailyGoal, StreakExtendedToday: u.StreakExtendedToday}, nil
}

// CurrentFreezeCount returns the number of streak freezes the account holds.
// The service exposes it only in tracking properties of the user document.
func (c *Client) CurrentFreezeCount(ctx context.Context) (int, error) {
	u, err := c.loggedInUser(ctx)
	if err != nil {
		return 0, err
	}
	return u.TrackingProperties.NumItemStreakFreeze, nil
}

// DailyXPProgress returns xp gained since midnight in the user's reported time zone
func (c *Client) DailyXPProgress(ctx context.Context) (XPProgress, error) {
	if c.userID == 0 {
		return XPProgress{}, ErrNotLoggedIn
	}

	var resp struct {
		XPGoal  int `json:"xpGoal"`
		XPGains []struct {
			Time    int64  `json:"time"`
			XP      int    `json:"xp"`
			SkillID string `json:"skillId"`
		} `json:"xpGains"`
		StreakData struct {
			UpdatedTimeZone string `json:"updatedTimeZone"`
		} `json:"streakData"`
	}
	path := fmt.Sprintf("/2017-06-30/users/%d?fields=xpGoal,xpGains,streakData", c.userID)
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return XPProgress{}, fmt.Errorf("daily xp progress: %w", err)
	}

	loc := time.UTC
	if tz := resp.StreakData.UpdatedTimeZone; tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			c.logger.Logf("[WARN] unknown time zone %q, using UTC", tz)
		} else {
			loc = l
		}
	}
	now := c.now().In(loc)
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc).Unix()

	res := XPProgress{XPGoal: resp.XPGoal}
	for _, g := range resp.XPGains {
		if g.Time <= midnight {
			continue
		}
		res.XPToday += g.XP
		if g.SkillID != "" {
			res.LessonsToday++
		}
	}
	return res, nil
}
