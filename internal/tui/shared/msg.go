package shared

// MsgOpenDetail asks the session to replace the selection with ID.
type MsgOpenDetail struct {
	ID int
}

// MsgCloseDetail asks the session to close the detail overlay.
type MsgCloseDetail struct{}

// MsgPlayerStarted reports the outcome of an external player hand-off.
type MsgPlayerStarted struct {
	Title string
	Err   error
}
