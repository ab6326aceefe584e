package main

type HistoryEntry struct {
	Move      Move
	Stone     Stone
	ElapsedMs float64
	IsAi      bool
	Score     int
	Depth     int
}

type MoveHistory struct {
	entries []HistoryEntry
}

func (h *MoveHistory) Clear() {
	h.entries = nil
}

func (h *MoveHistory) Push(entry HistoryEntry) {
	h.entries = append(h.entries, entry)
}

func (h MoveHistory) Size() int {
	return len(h.entries)
}

func (h MoveHistory) All() []HistoryEntry {
	return append([]HistoryEntry(nil), h.entries...)
}

// LastBy returns the most recent entry placed with stone.
func (h MoveHistory) LastBy(stone Stone) (HistoryEntry, bool) {
	for i := len(h.entries) - 1; i >= 0; i-- {
		if h.entries[i].Stone == stone {
			return h.entries[i], true
		}
	}
	return HistoryEntry{}, false
}
