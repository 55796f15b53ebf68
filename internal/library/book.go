package library

import "fmt"

// Book is one library entry. All fields are free text; the year is not parsed.
type Book struct {
	Title  string
	Author string
	Year   string
}

func (b Book) String() string {
	return fmt.Sprintf("Title: %s, Author: %s, Year: %s", b.Title, b.Author, b.Year)
}
