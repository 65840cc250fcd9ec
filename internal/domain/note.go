package domain

// NoteRowKey is the fixed row key under which each principal's single note
// entry lives in the key-value backend. One entry per principal; writes are
// full-replace.
const NoteRowKey = "notes"
