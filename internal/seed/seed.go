// Package seed populates a fresh database with built-in question
// sheets so the dashboard has something to show before an operator
// imports a full catalog.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dsaprep/backend/internal/domain/sheet"
	"github.com/dsaprep/backend/internal/store"
)

type seedQuestion struct {
	title      string
	difficulty sheet.Difficulty
	url        string
	topic      string
}

type seedSheet struct {
	name        string
	description string
	questions   []seedQuestion
}

var builtins = []seedSheet{
	{
		name:        "Blind 75 Essentials",
		description: "A starter cut of the classic Blind 75 interview list.",
		questions: []seedQuestion{
			{"Two Sum", sheet.DifficultyEasy, "https://leetcode.com/problems/two-sum/", "Array"},
			{"Best Time to Buy and Sell Stock", sheet.DifficultyEasy, "https://leetcode.com/problems/best-time-to-buy-and-sell-stock/", "Array"},
			{"Contains Duplicate", sheet.DifficultyEasy, "https://leetcode.com/problems/contains-duplicate/", "Array"},
			{"Product of Array Except Self", sheet.DifficultyMedium, "https://leetcode.com/problems/product-of-array-except-self/", "Array"},
			{"Valid Anagram", sheet.DifficultyEasy, "https://leetcode.com/problems/valid-anagram/", "String"},
			{"Longest Substring Without Repeating Characters", sheet.DifficultyMedium, "https://leetcode.com/problems/longest-substring-without-repeating-characters/", "String"},
			{"Merge Two Sorted Lists", sheet.DifficultyEasy, "https://leetcode.com/problems/merge-two-sorted-lists/", "Linked List"},
			{"Reverse Linked List", sheet.DifficultyEasy, "https://leetcode.com/problems/reverse-linked-list/", "Linked List"},
			{"Maximum Depth of Binary Tree", sheet.DifficultyEasy, "https://leetcode.com/problems/maximum-depth-of-binary-tree/", "Tree"},
			{"Validate Binary Search Tree", sheet.DifficultyMedium, "https://leetcode.com/problems/validate-binary-search-tree/", "Tree"},
		},
	},
	{
		name:        "Dynamic Programming Primer",
		description: "Core DP patterns to build intuition before harder sets.",
		questions: []seedQuestion{
			{"Climbing Stairs", sheet.DifficultyEasy, "https://leetcode.com/problems/climbing-stairs/", "Dynamic Programming"},
			{"House Robber", sheet.DifficultyMedium, "https://leetcode.com/problems/house-robber/", "Dynamic Programming"},
			{"Coin Change", sheet.DifficultyMedium, "https://leetcode.com/problems/coin-change/", "Dynamic Programming"},
			{"Longest Increasing Subsequence", sheet.DifficultyMedium, "https://leetcode.com/problems/longest-increasing-subsequence/", "Dynamic Programming"},
			{"Word Break", sheet.DifficultyMedium, "https://leetcode.com/problems/word-break/", "Dynamic Programming"},
			{"Edit Distance", sheet.DifficultyHard, "https://leetcode.com/problems/edit-distance/", "String"},
		},
	},
}

// Run inserts the built-in sheets when the store holds no sheets at
// all. An already-populated store is left untouched.
func Run(ctx context.Context, s store.Store, logger *slog.Logger) error {
	n, err := s.CountSheets(ctx)
	if err != nil {
		return fmt.Errorf("count sheets: %w", err)
	}
	if n > 0 {
		return nil
	}

	for _, ss := range builtins {
		sh := sheet.New(ss.name, ss.description)
		for _, q := range ss.questions {
			if err := sh.AddQuestion(q.title, q.difficulty, q.url, q.topic); err != nil {
				return fmt.Errorf("seed sheet %q: %w", ss.name, err)
			}
		}

		if err := s.SaveSheet(ctx, sh); err != nil {
			return fmt.Errorf("save sheet %q: %w", ss.name, err)
		}
		for _, q := range sh.Questions {
			if err := s.AddQuestion(ctx, sh.ID, q); err != nil {
				return fmt.Errorf("save question %q: %w", q.Title, err)
			}
		}

		logger.Info("seeded sheet", "name", ss.name, "questions", len(sh.Questions))
	}
	return nil
}
