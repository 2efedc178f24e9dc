package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/registry"
	"github.com/vovakirdan/tui-hangman/internal/storage"
)

var packsCmd = &cobra.Command{
	Use:   "packs",
	Short: "List available word packs",
	Long: `Shows the word packs built into hangman. With --words-db it also
lists the categories stored in that database.`,
	Args: cobra.NoArgs,
	RunE: runPacks,
}

func runPacks(cmd *cobra.Command, _ []string) error {
	packs := registry.List()

	if len(packs) == 0 {
		fmt.Println("No word packs available.")
	} else {
		fmt.Println("Word packs:")
		fmt.Println()

		// Calculate column widths
		maxIDLen := 2 // "ID" header
		for _, p := range packs {
			if len(p.ID) > maxIDLen {
				maxIDLen = len(p.ID)
			}
		}

		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", 5, "Words", "Title")
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", 5, "-----", "-----")

		for _, p := range packs {
			count := "?"
			if list, err := registry.Load(p.ID); err == nil {
				count = fmt.Sprint(len(list))
			}
			fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, p.ID, 5, count, p.Title)
		}

		fmt.Println()
		fmt.Println("Run 'hangman play --pack <id>' to play with a pack.")
	}

	if flagWordsDB == "" {
		return nil
	}

	store, err := storage.OpenReadOnly(flagWordsDB)
	if err != nil {
		return err
	}
	defer store.Close()

	cats, err := store.Categories(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Categories in %s:\n", flagWordsDB)
	fmt.Println()
	if len(cats) == 0 {
		fmt.Println("  (none)")
		return nil
	}
	for _, c := range cats {
		fmt.Printf("  %-16s %d words\n", c.Category, c.Words)
	}
	return nil
}
