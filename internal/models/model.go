package models

import "time"

// User is a registered participant; owner of items, author of bookings,
// comments and item requests.
type User struct {
	ID    int64
	Name  string
	Email string
}

// Item is a shareable object listed by its owner. RequestID links the item to
// the ItemRequest it was created to fulfil, if any.
type Item struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64
}

// Booking is a time-bounded reservation of an item, subject to owner
// approval. Item and Booker are loaded alongside the row so responses can
// embed their summaries.
type Booking struct {
	ID     int64
	Start  time.Time
	End    time.Time
	Status BookingStatus
	Item   Item
	Booker User
}

// Comment is post-rental feedback, allowed only after a completed approved
// booking of the item by the author.
type Comment struct {
	ID         int64
	Text       string
	ItemID     int64
	AuthorID   int64
	AuthorName string
	Created    time.Time
}

// ItemRequest is a public ask for an item not currently listed. Items holds
// the listings created in response, joined at read time by request id.
type ItemRequest struct {
	ID          int64
	Description string
	RequesterID int64
	Created     time.Time
	Items       []Item
}
