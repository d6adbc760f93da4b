package duolingo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// StreakFreezeItem is the shop id of the streak freeze ("Streak on Ice")
const StreakFreezeItem = "streak_freeze"

// BuyItem buys a shop item for the given learning language.
// Returns ErrAlreadyOwned if the account has the item already. Purchases are never repeated.
func (c *Client) BuyItem(ctx context.Context, itemID, lang string) (bool, error) {
	if c.userID == 0 {
		return false, ErrNotLoggedIn
	}

	path := fmt.Sprintf("/2017-06-30/users/%d/shop-items", c.userID)
	body := map[string]string{"itemName": itemID, "learningLanguage": lang}
	resp, err := c.send(ctx, http.MethodPost, path, body)
	if err != nil {
		return false, fmt.Errorf("buy %s: %w", itemID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		c.logger.Logf("[DEBUG] bought %s (%s) for %s", itemID, lang, c.opts.Username)
		return true, nil
	}

	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if resp.StatusCode == http.StatusBadRequest {
		var res struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &res) == nil && res.Error == alreadyHaveStoreItem {
			return false, fmt.Errorf("buy %s: %w", itemID, ErrAlreadyOwned)
		}
	}
	return false, fmt.Errorf("buy %s: unexpected status %d: %s", itemID, resp.StatusCode, string(data))
}

// BuyStreakFreeze buys a streak freeze for the current learning language.
// Returns false without error when the account has one already.
func (c *Client) BuyStreakFreeze(ctx context.Context) (bool, error) {
	info, err := c.UserInfo(ctx)
	if err != nil {
		return false, fmt.Errorf("buy streak freeze: %w", err)
	}
	if info.LearningLanguage == "" {
		return false, errors.New("buy streak freeze: no learning language found")
	}

	ok, err := c.BuyItem(ctx, StreakFreezeItem, info.LearningLanguage)
	if errors.Is(err, ErrAlreadyOwned) {
		return false, nil
	}
	return ok, err
}
