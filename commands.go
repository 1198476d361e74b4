// One-shot subcommands over the catalog manager.
package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"library-catalog/library"
)

var (
	addID    int
	addTitle string

	bookAuthor string
	bookPages  int

	journalPublisher string
	journalVolume    int

	exportOut string
	importIn  string
)

var addBookCmd = &cobra.Command{
	Use:   "add-book",
	Short: "Add a book to the catalog",
	Example: `  libcat add-book --id 1 --title "Dune" --author "Frank Herbert" --pages 412`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := openManager()
		if err != nil {
			return err
		}
		if err := mgr.Add(library.NewBook(addID, addTitle, bookAuthor, bookPages)); err != nil {
			return fmt.Errorf("add book %d: %w", addID, err)
		}
		saveCatalog(mgr)
		fmt.Println("Item added successfully.")
		return nil
	},
}

var addJournalCmd = &cobra.Command{
	Use:   "add-journal",
	Short: "Add a journal to the catalog",
	Example: `  libcat add-journal --id 2 --title "Nature" --publisher "Springer" --volume 7`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := openManager()
		if err != nil {
			return err
		}
		if err := mgr.Add(library.NewJournal(addID, addTitle, journalPublisher, journalVolume)); err != nil {
			return fmt.Errorf("add journal %d: %w", addID, err)
		}
		saveCatalog(mgr)
		fmt.Println("Item added successfully.")
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every item in the catalog, ascending by ID",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := openManager()
		if err != nil {
			return err
		}
		printItems(mgr.Items())
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search item titles for a case-sensitive substring",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := openManager()
		if err != nil {
			return err
		}
		keyword := args[0]
		results := mgr.Search(keyword)
		if len(results) == 0 {
			fmt.Printf("No items found matching '%s'.\n", keyword)
			return nil
		}
		for _, it := range results {
			fmt.Println(it.Display())
		}
		return nil
	},
}

var borrowCmd = &cobra.Command{
	Use:   "borrow <id>",
	Short: "Toggle an item between Borrowed and Available",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		mgr, err := openManager()
		if err != nil {
			return err
		}
		borrowed, err := mgr.ToggleBorrow(id)
		if err != nil {
			return fmt.Errorf("toggle item %d: %w", id, err)
		}
		saveCatalog(mgr)
		label := "Available"
		if borrowed {
			label = "Borrowed"
		}
		fmt.Printf("Item status updated to: %s\n", label)
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove an item from the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		mgr, err := openManager()
		if err != nil {
			return err
		}
		if err := mgr.Remove(id); err != nil {
			return fmt.Errorf("remove item %d: %w", id, err)
		}
		saveCatalog(mgr)
		fmt.Println("Item removed.")
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog totals by borrow status",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := openManager()
		if err != nil {
			return err
		}
		st := mgr.Stats()
		fmt.Printf("Total: %d | Available: %d | Borrowed: %d\n", st.Total, st.Available, st.Borrowed)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := openManager()
		if err != nil {
			return err
		}
		if err := mgr.ExportJSON(exportOut); err != nil {
			return err
		}
		fmt.Printf("Exported %d item(s) to %s\n", mgr.Len(), exportOut)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import items from a JSON export, skipping duplicate IDs",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := openManager()
		if err != nil {
			return err
		}
		added, skipped, err := mgr.ImportJSON(importIn)
		if err != nil {
			return err
		}
		saveCatalog(mgr)
		fmt.Printf("Imported %d item(s), skipped %d duplicate(s)\n", added, skipped)
		return nil
	},
}

func init() {
	addBookCmd.Flags().IntVar(&addID, "id", 0, "item ID (unique across the catalog)")
	addBookCmd.Flags().StringVar(&addTitle, "title", "", "book title")
	addBookCmd.Flags().StringVar(&bookAuthor, "author", "", "book author")
	addBookCmd.Flags().IntVar(&bookPages, "pages", 0, "page count")
	_ = addBookCmd.MarkFlagRequired("id")
	_ = addBookCmd.MarkFlagRequired("title")

	addJournalCmd.Flags().IntVar(&addID, "id", 0, "item ID (unique across the catalog)")
	addJournalCmd.Flags().StringVar(&addTitle, "title", "", "journal title")
	addJournalCmd.Flags().StringVar(&journalPublisher, "publisher", "", "journal publisher")
	addJournalCmd.Flags().IntVar(&journalVolume, "volume", 0, "volume number")
	_ = addJournalCmd.MarkFlagRequired("id")
	_ = addJournalCmd.MarkFlagRequired("title")

	exportCmd.Flags().StringVar(&exportOut, "out", "library_data.json", "output JSON file")
	importCmd.Flags().StringVar(&importIn, "in", "library_data.json", "input JSON file")
	_ = importCmd.MarkFlagRequired("in")
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("item ID must be a number")
	}
	return id, nil
}

func printItems(items []library.Item) {
	if len(items) == 0 {
		fmt.Println("Library is empty.")
		return
	}
	fmt.Println("--- Library Inventory ---")
	for _, it := range items {
		fmt.Println(it.Display())
	}
	fmt.Println("-------------------------")
}
