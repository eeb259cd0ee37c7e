// model/history.go
package model

type HistoryStatus string

const (
	StatusReserved  HistoryStatus = "Reserved"
	StatusCompleted HistoryStatus = "Completed"
	StatusCancelled HistoryStatus = "Cancelled"
)

// HistoryEntry is a Car snapshot frozen at reservation time. Entries are
// immutable once written; re-reserving the same car id replaces the entry
// and moves it to the front of the log.
type HistoryEntry struct {
	Car
	Status HistoryStatus `json:"status"`
	Date   string        `json:"date"`
}
