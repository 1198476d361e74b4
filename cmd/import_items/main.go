// import_items bulk-seeds a catalog data file from a records file in the
// same TYPE,id,title,0|1,field1,field2 format, reporting each line.
package main

import (
	"bufio"
	"fmt"
	"os"

	"library-catalog/library"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <records-file> <data-file>\n", os.Args[0])
		os.Exit(1)
	}
	recordsPath, dataPath := os.Args[1], os.Args[2]

	mgr, err := library.NewLibraryManager(dataPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening catalog: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Open(recordsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading records file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	successCount := 0
	errorCount := 0

	sc := bufio.NewScanner(f)
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if text == "" {
			continue
		}

		item, err := library.ParseItem(text)
		if err != nil {
			fmt.Printf("line %d: SKIPPED - %v\n", line, err)
			errorCount++
			continue
		}

		if err := mgr.Add(item); err != nil {
			fmt.Printf("line %d: SKIPPED - %v\n", line, err)
			errorCount++
			continue
		}

		fmt.Printf("line %d: imported %s '%s' (ID: %d)\n", line, item.Kind, item.Title, item.ID)
		successCount++
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading records file: %v\n", err)
		os.Exit(1)
	}

	if err := mgr.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving catalog: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nImport complete!\n")
	fmt.Printf("Successfully imported: %d item(s)\n", successCount)
	fmt.Printf("Skipped: %d\n", errorCount)
}
