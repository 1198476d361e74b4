package library

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the two catalog item variants. The set is closed:
// every item is either a book or a journal, fixed at construction.
type Kind string

const (
	KindBook    Kind = "BOOK"
	KindJournal Kind = "JOURNAL"
)

// Item is a single catalog entry. Shared fields apply to both kinds;
// Author/Pages are meaningful only for books, Publisher/Volume only for
// journals. The zero value is not a valid item, use NewBook or NewJournal.
type Item struct {
	ID       int    `json:"id"`
	Kind     Kind   `json:"type"`
	Title    string `json:"title"`
	Borrowed bool   `json:"is_borrowed"`

	Author string `json:"author,omitempty"`
	Pages  int    `json:"pages,omitempty"`

	Publisher string `json:"publisher,omitempty"`
	Volume    int    `json:"volume,omitempty"`
}

// NewBook builds a book item. Titles and authors are stored as given,
// including empty strings; nothing is normalized.
func NewBook(id int, title, author string, pages int) Item {
	return Item{ID: id, Kind: KindBook, Title: title, Author: author, Pages: pages}
}

// NewJournal builds a journal item.
func NewJournal(id int, title, publisher string, volume int) Item {
	return Item{ID: id, Kind: KindJournal, Title: title, Publisher: publisher, Volume: volume}
}

// Status returns the human status label for the borrowed flag.
func (it Item) Status() string {
	if it.Borrowed {
		return "Borrowed"
	}
	return "Available"
}

// Display renders the item as a single aligned summary line.
func (it Item) Display() string {
	switch it.Kind {
	case KindJournal:
		return fmt.Sprintf("[Journal] ID: %d | Title: %-20s | Publisher: %-15s | Vol: %d | Status: %s",
			it.ID, it.Title, it.Publisher, it.Volume, it.Status())
	default:
		return fmt.Sprintf("[Book] ID: %d | Title: %-20s | Author: %-15s | Pages: %d | Status: %s",
			it.ID, it.Title, it.Author, it.Pages, it.Status())
	}
}

// Serialize flattens the item into the stored record format:
//
//	TYPE,id,title,0|1,field1,field2
//
// Fields are joined with bare commas and never escaped; a comma inside a
// title, author, or publisher misaligns the record on reload. That is a
// known limitation of the format, kept for compatibility with existing
// data files.
func (it Item) Serialize() string {
	borrowed := "0"
	if it.Borrowed {
		borrowed = "1"
	}
	switch it.Kind {
	case KindJournal:
		return strings.Join([]string{
			string(KindJournal), strconv.Itoa(it.ID), it.Title, borrowed,
			it.Publisher, strconv.Itoa(it.Volume),
		}, ",")
	default:
		return strings.Join([]string{
			string(KindBook), strconv.Itoa(it.ID), it.Title, borrowed,
			it.Author, strconv.Itoa(it.Pages),
		}, ",")
	}
}

// recordFields is the exact field count of a well-formed stored record.
const recordFields = 6

// ParseItem reconstructs an item from one stored record line.
//
// The first field selects the variant. A tag that is neither BOOK nor
// JOURNAL yields ErrUnknownType so callers can skip foreign lines without
// treating them as corruption. A recognized tag with the wrong field count
// or an unparseable numeric field yields ErrMalformedRecord. The borrowed
// flag is the literal "1"; any other value reads as not borrowed.
func ParseItem(line string) (Item, error) {
	parts := strings.Split(line, ",")

	switch Kind(parts[0]) {
	case KindBook, KindJournal:
	default:
		return Item{}, fmt.Errorf("%w: %q", ErrUnknownType, parts[0])
	}

	if len(parts) != recordFields {
		return Item{}, fmt.Errorf("%w: got %d fields, want %d", ErrMalformedRecord, len(parts), recordFields)
	}

	id, err := strconv.Atoi(parts[1])
	if err != nil {
		return Item{}, fmt.Errorf("%w: id %q", ErrMalformedRecord, parts[1])
	}
	count, err := strconv.Atoi(parts[5])
	if err != nil {
		return Item{}, fmt.Errorf("%w: numeric field %q", ErrMalformedRecord, parts[5])
	}

	var it Item
	if Kind(parts[0]) == KindBook {
		it = NewBook(id, parts[2], parts[4], count)
	} else {
		it = NewJournal(id, parts[2], parts[4], count)
	}
	it.Borrowed = parts[3] == "1"
	return it, nil
}
