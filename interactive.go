// Interactive menu loop. Pure glue: it reads typed input and dispatches
// to the catalog manager, then saves on exit.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"library-catalog/library"
)

func runInteractive(mgr *library.LibraryManager) {
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("Welcome to the Library Catalog!")
	fmt.Println("Available commands:")
	fmt.Println("  Items: add book, add journal, list, search, borrow, remove")
	fmt.Println("  System: stats, save, exit")

	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			break
		}
		cmd := strings.TrimSpace(scanner.Text())

		switch cmd {
		case "add book":
			handleAddBook(scanner, mgr)
		case "add journal":
			handleAddJournal(scanner, mgr)
		case "list":
			printItems(mgr.Items())
		case "search":
			handleSearch(scanner, mgr)
		case "borrow":
			handleToggleBorrow(scanner, mgr)
		case "remove":
			handleRemove(scanner, mgr)
		case "stats":
			st := mgr.Stats()
			fmt.Printf("Total: %d | Available: %d | Borrowed: %d\n", st.Total, st.Available, st.Borrowed)
		case "save":
			if err := mgr.Save(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not save catalog: %v\n", err)
			} else {
				fmt.Println("Catalog saved.")
			}
		case "exit":
			saveCatalog(mgr)
			fmt.Println("Goodbye!")
			return
		default:
			fmt.Println("Unknown command. Type one of the available commands listed above.")
		}
	}

	// Stdin closed; persist whatever the session produced.
	saveCatalog(mgr)
}

func promptString(sc *bufio.Scanner, label string) (string, bool) {
	fmt.Printf("%s: ", label)
	if !sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(sc.Text()), true
}

func promptInt(sc *bufio.Scanner, label string) (int, bool) {
	raw, ok := promptString(sc, label)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Printf("Invalid number: %s\n", raw)
		return 0, false
	}
	return n, true
}

func handleAddBook(sc *bufio.Scanner, mgr *library.LibraryManager) {
	id, ok := promptInt(sc, "ID")
	if !ok {
		return
	}
	title, ok := promptString(sc, "Title")
	if !ok {
		return
	}
	author, ok := promptString(sc, "Author")
	if !ok {
		return
	}
	pages, ok := promptInt(sc, "Pages")
	if !ok {
		return
	}

	if err := mgr.Add(library.NewBook(id, title, author, pages)); err != nil {
		reportCatalogError(err)
		return
	}
	fmt.Println("Item added successfully.")
}

func handleAddJournal(sc *bufio.Scanner, mgr *library.LibraryManager) {
	id, ok := promptInt(sc, "ID")
	if !ok {
		return
	}
	title, ok := promptString(sc, "Title")
	if !ok {
		return
	}
	publisher, ok := promptString(sc, "Publisher")
	if !ok {
		return
	}
	volume, ok := promptInt(sc, "Volume")
	if !ok {
		return
	}

	if err := mgr.Add(library.NewJournal(id, title, publisher, volume)); err != nil {
		reportCatalogError(err)
		return
	}
	fmt.Println("Item added successfully.")
}

func handleSearch(sc *bufio.Scanner, mgr *library.LibraryManager) {
	keyword, ok := promptString(sc, "Keyword")
	if !ok {
		return
	}

	results := mgr.Search(keyword)
	if len(results) == 0 {
		fmt.Printf("No items found matching '%s'.\n", keyword)
		return
	}
	fmt.Println("--- Search Results ---")
	for _, it := range results {
		fmt.Println(it.Display())
	}
}

func handleToggleBorrow(sc *bufio.Scanner, mgr *library.LibraryManager) {
	id, ok := promptInt(sc, "ID to borrow/return")
	if !ok {
		return
	}

	borrowed, err := mgr.ToggleBorrow(id)
	if err != nil {
		reportCatalogError(err)
		return
	}
	label := "Available"
	if borrowed {
		label = "Borrowed"
	}
	fmt.Printf("Item status updated to: %s\n", label)
}

func handleRemove(sc *bufio.Scanner, mgr *library.LibraryManager) {
	id, ok := promptInt(sc, "ID to remove")
	if !ok {
		return
	}

	if err := mgr.Remove(id); err != nil {
		reportCatalogError(err)
		return
	}
	fmt.Println("Item removed.")
}

func reportCatalogError(err error) {
	switch {
	case errors.Is(err, library.ErrDuplicateID):
		fmt.Println("Error: ID already exists!")
	case errors.Is(err, library.ErrNotFound):
		fmt.Println("Item not found.")
	default:
		fmt.Printf("Error: %v\n", err)
	}
}
